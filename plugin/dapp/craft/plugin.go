// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package craft request/claim workflows turning resources into units and equipment
package craft

import (
	"github.com/33cn/wintergame/plugin/dapp/craft/commands"
	"github.com/33cn/wintergame/plugin/dapp/craft/executor"
	"github.com/33cn/wintergame/plugin/dapp/craft/types"
	"github.com/33cn/wintergame/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "craft",
		ExecName: types.CraftX,
		Exec:     executor.Init,
		Cmd:      commands.CraftCmd,
	})
}
