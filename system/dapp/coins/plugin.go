// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins native currency transfers and genesis allocations
package coins

import (
	"github.com/33cn/wintergame/pluginmgr"
	"github.com/33cn/wintergame/system/dapp/coins/commands"
	"github.com/33cn/wintergame/system/dapp/coins/executor"
	ty "github.com/33cn/wintergame/system/dapp/coins/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "coins",
		ExecName: ty.CoinsX,
		Exec:     executor.Init,
		Cmd:      commands.CoinsCmd,
	})
}
