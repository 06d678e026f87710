// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"testing"

	"github.com/33cn/wintergame/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndInit(t *testing.T) {
	var inited []string
	Register(&PluginBase{
		Name:     "zeta",
		ExecName: "zetaexec",
		Exec:     func(name string, cfg *types.Config) { inited = append(inited, name) },
		Cmd:      func() *cobra.Command { return &cobra.Command{Use: "zeta"} },
	})
	Register(&PluginBase{
		Name:     "alpha",
		ExecName: "alphaexec",
		Exec:     func(name string, cfg *types.Config) { inited = append(inited, name) },
	})
	Register(&PluginBase{
		Name: "nocmd",
		Cmd:  func() *cobra.Command { return nil },
	})

	assert.True(t, HasExec("zetaexec"))
	assert.False(t, HasExec("none"))

	InitExec(&types.Config{})
	InitExec(&types.Config{})
	assert.Equal(t, []string{"alphaexec", "zetaexec"}, inited)

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	cmds := root.Commands()
	if assert.Len(t, cmds, 1) {
		assert.Equal(t, "zeta", cmds[0].Use)
	}

	assert.Panics(t, func() { Register(&PluginBase{Name: "alpha"}) })
	assert.Panics(t, func() { Register(&PluginBase{}) })
	assert.Panics(t, func() { Register(nil) })
}
