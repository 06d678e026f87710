// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token user issued fungible tokens, approved by the token managers
package token

import (
	"github.com/33cn/wintergame/plugin/dapp/token/commands"
	"github.com/33cn/wintergame/plugin/dapp/token/executor"
	"github.com/33cn/wintergame/plugin/dapp/token/types"
	"github.com/33cn/wintergame/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "token",
		ExecName: types.TokenX,
		Exec:     executor.Init,
		Cmd:      commands.TokenCmd,
	})
}
