// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/wintergame/types"
)

/*
权限控制规则:
1. 执行器只能修改执行器自己内部的数据 mavl-<execer>-
2. token 账本 mavl-asset*- 由 account 包的 minter 检查保护, 所有执行器可写
*/
func isAllowKeyWrite(key, execer []byte) bool {
	keyExecer, err := types.FindExecer(key)
	if err != nil {
		elog.Error("find execer ", "err", err, "key", string(key))
		return false
	}
	if bytes.Equal(keyExecer, execer) {
		return true
	}
	return types.IsAssetKey(keyExecer)
}

func isAllowLocalKey(execer []byte, key []byte) error {
	prefix := types.CalcLocalPrefix(execer)
	if len(key) <= len(prefix) {
		elog.Error("isAllowLocalKey too short", "key", string(key), "exec", string(execer))
		return types.ErrLocalPrefix
	}
	if !bytes.HasPrefix(key, prefix) {
		elog.Error("isAllowLocalKey key prefix not match", "key", string(key), "exec", string(execer))
		return types.ErrLocalPrefix
	}
	return nil
}
