// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package staking pools that turn staked tokens into resource rewards
package staking

import (
	"github.com/33cn/wintergame/plugin/dapp/staking/commands"
	"github.com/33cn/wintergame/plugin/dapp/staking/executor"
	"github.com/33cn/wintergame/plugin/dapp/staking/types"
	"github.com/33cn/wintergame/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "staking",
		ExecName: types.StakingX,
		Exec:     executor.Init,
		Cmd:      commands.StakingCmd,
	})
}
