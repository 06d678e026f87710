// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/33cn/wintergame/types"
	"github.com/spf13/cobra"
)

//PluginBase plugin built from functions
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string, cfg *types.Config)
	Cmd      func() *cobra.Command
}

//GetName package name
func (p *PluginBase) GetName() string {
	return p.Name
}

//GetExecutorName executor name
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

//InitExec register the executor
func (p *PluginBase) InitExec(cfg *types.Config) {
	if p.Exec != nil {
		p.Exec(p.ExecName, cfg)
	}
}

//AddCmd add the command tree of the plugin
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}
