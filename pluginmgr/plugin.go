// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr registry of dapp plugins: executor init and cli commands
package pluginmgr

import (
	"github.com/33cn/wintergame/types"
	"github.com/spf13/cobra"
)

//Plugin one dapp
type Plugin interface {
	// 插件的包名
	GetName() string
	// 插件中执行器名
	GetExecutorName() string
	// 初始化执行器时会调用该接口
	InitExec(cfg *types.Config)
	AddCmd(rootCmd *cobra.Command)
}
