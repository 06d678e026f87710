// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manage super manager controlled config items
package manage

import (
	"github.com/33cn/wintergame/pluginmgr"
	"github.com/33cn/wintergame/system/dapp/manage/commands"
	"github.com/33cn/wintergame/system/dapp/manage/executor"
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "manage",
		ExecName: mty.ManageX,
		Exec:     executor.Init,
		Cmd:      commands.ConfigCmd,
	})
}
