// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write([]byte("payload"))

	assert.Equal(t, hex.EncodeToString(h.Sum(nil)), HashString("payload", testHashKey))
}

func TestSignMessage_Deterministic(t *testing.T) {
	body := []byte(`{"run_sync":true}`)

	a := SignMessage(http.MethodPost, "/api/messages/syncBookmarks", body, testHashKey)
	b := SignMessage(http.MethodPost, "/api/messages/syncBookmarks", body, testHashKey)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestSignMessage_CoversMethodPathAndBody(t *testing.T) {
	base := SignMessage(http.MethodPost, "/api/messages/disableSync", nil, testHashKey)

	assert.NotEqual(t, base, SignMessage(http.MethodGet, "/api/messages/disableSync", nil, testHashKey))
	assert.NotEqual(t, base, SignMessage(http.MethodPost, "/api/messages/enableSync", nil, testHashKey))
	assert.NotEqual(t, base, SignMessage(http.MethodPost, "/api/messages/disableSync", []byte("{}"), testHashKey))
	assert.NotEqual(t, base, SignMessage(http.MethodPost, "/api/messages/disableSync", nil, "other-key"))
}

func TestVerifyMessage(t *testing.T) {
	body := []byte(`{}`)
	sig := SignMessage(http.MethodPost, "/api/messages/getStatus", body, testHashKey)

	assert.True(t, VerifyMessage(http.MethodPost, "/api/messages/getStatus", body, testHashKey, sig))
	assert.False(t, VerifyMessage(http.MethodPost, "/api/messages/getStatus", body, testHashKey, "deadbeef"))
	assert.False(t, VerifyMessage(http.MethodPost, "/api/messages/getStatus", []byte(`{"x":1}`), testHashKey, sig))
}
