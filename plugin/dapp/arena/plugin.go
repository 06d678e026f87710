// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arena duels between combat units for an escrowed pot
package arena

import (
	"github.com/33cn/wintergame/plugin/dapp/arena/commands"
	"github.com/33cn/wintergame/plugin/dapp/arena/executor"
	"github.com/33cn/wintergame/plugin/dapp/arena/types"
	"github.com/33cn/wintergame/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "arena",
		ExecName: types.ArenaX,
		Exec:     executor.Init,
		Cmd:      commands.ArenaCmd,
	})
}
