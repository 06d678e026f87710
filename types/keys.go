// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"strings"
)

//key prefixes
var (
	StatePrefix = []byte("mavl-")
	LocalPrefix = []byte("LODB")
	AssetPrefix = "asset"
)

//FindExecer the executor owning a state key, mavl-<execer>-...
func FindExecer(key []byte) (execer []byte, err error) {
	if !bytes.HasPrefix(key, StatePrefix) {
		return nil, ErrMavlKeyNotStartWithMavl
	}
	for i := len(StatePrefix); i < len(key); i++ {
		if key[i] == '-' {
			return key[len(StatePrefix):i], nil
		}
	}
	return nil, ErrNoExecerInMavlKey
}

//IsAssetKey keys of the shared token ledger, guarded by the minter check
func IsAssetKey(execer []byte) bool {
	return strings.HasPrefix(string(execer), AssetPrefix)
}

//ManageKey state key of a manage config item
func ManageKey(key string) string {
	return "mavl-" + ManageX + "-" + key
}

//CalcLocalPrefix LODB-<execer>-
func CalcLocalPrefix(execer []byte) []byte {
	var prefix []byte
	prefix = append(prefix, LocalPrefix...)
	prefix = append(prefix, '-')
	prefix = append(prefix, execer...)
	prefix = append(prefix, '-')
	return prefix
}

//CalcStatePrefix mavl-<execer>-
func CalcStatePrefix(execer []byte) []byte {
	var prefix []byte
	prefix = append(prefix, StatePrefix...)
	prefix = append(prefix, execer...)
	prefix = append(prefix, '-')
	return prefix
}
