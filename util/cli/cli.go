// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/33cn/wintergame/common/log"
	"github.com/33cn/wintergame/pluginmgr"
	"github.com/33cn/wintergame/system/dapp/commands"
	commandtypes "github.com/33cn/wintergame/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wintergame-cli",
	Short: "wintergame client tools",
}

func init() {
	rootCmd.AddCommand(
		commands.BlockCmd(),
		commands.TxCmd(),
		commands.KeyCmd(),
		commands.EventsCmd(),
		commands.VersionCmd(),
	)
}

//Run : cli against the node at RPCAddr, dapp command trees come from the registered plugins
func Run(RPCAddr string) {
	pluginmgr.AddCmd(rootCmd)
	log.SetLogLevel("error")
	rootCmd.PersistentFlags().String("rpc_laddr", RPCAddr, "http url")
	rootCmd.PersistentFlags().String("key", "", "hex private key signing the tx, defaults to $"+commandtypes.KeyEnv)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
