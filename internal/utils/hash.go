// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashSHA256Header is the header carrying the message signature.
const HashSHA256Header = "HashSHA256"

// HashString computes an HMAC-SHA256 signature over data with hashKey and
// returns it hex-encoded.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashBytes([]byte(data), hashKey))
}

// SignMessage signs a coordinator message. The method and path are part of
// the signed content so a signature cannot be replayed against another
// command.
//
// Example usage:
//
//	sig := utils.SignMessage(http.MethodPost, "/api/messages/disableSync", body, key)
//	req.Header.Set(utils.HashSHA256Header, sig)
func SignMessage(method, path string, body []byte, hashKey string) string {
	payload := make([]byte, 0, len(method)+len(path)+len(body)+2)
	payload = append(payload, method...)
	payload = append(payload, ' ')
	payload = append(payload, path...)
	payload = append(payload, '\n')
	payload = append(payload, body...)

	return hex.EncodeToString(hashBytes(payload, hashKey))
}

// VerifyMessage reports whether signature matches the message, in constant time.
func VerifyMessage(method, path string, body []byte, hashKey, signature string) bool {
	expected := SignMessage(method, path, body, hashKey)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
