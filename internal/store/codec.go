// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// encodeValue serializes v with msgpack using the json struct tags, so the
// persisted field names match the wire models.
func encodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return buf.Bytes(), nil
}

func decodeValue(data []byte, dst any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingValue, err)
	}
	return nil
}
