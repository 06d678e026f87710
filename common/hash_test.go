// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	data := []byte{0x01, 0xab, 0xff}
	s := ToHex(data)
	assert.Equal(t, "0x01abff", s)
	back, err := FromHex(s)
	require.NoError(t, err)
	assert.Equal(t, data, back)

	back, err = FromHex("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0xbc}, back)
	assert.Equal(t, "", ToHex(nil))
}

func TestHashLen(t *testing.T) {
	assert.Len(t, Sha256([]byte("winter")), 32)
	assert.Len(t, Sha2Sum([]byte("winter")), 32)
	assert.Len(t, Rimp160AfterSha256([]byte("winter")), 20)
	assert.NotEqual(t, Sha256([]byte("winter")), Sha2Sum([]byte("winter")))
}

func TestInt64ToBytes(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 0}, Int64ToBytes(256))
}
