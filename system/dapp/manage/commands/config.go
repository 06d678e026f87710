// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands cli of the manage dapp
package commands

import (
	commandtypes "github.com/33cn/wintergame/system/dapp/commands/types"
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
	"github.com/spf13/cobra"
)

// ConfigCmd config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		ConfigTxCmd(),
		QueryConfigCmd(),
	)
	return cmd
}

// ConfigTxCmd config transaction
func ConfigTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config_tx",
		Short: "Set system config, super managers only",
		Run:   configTx,
	}
	addConfigTxFlags(cmd)
	return cmd
}

func addConfigTxFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config_key", "c", "", "config key, e.g. token-manager, arena-min-fee")
	cmd.MarkFlagRequired("config_key")

	cmd.Flags().StringP("operation", "o", "", "adding or deletion operation")
	cmd.MarkFlagRequired("operation")

	cmd.Flags().StringP("value", "v", "", "operating object")
	cmd.MarkFlagRequired("value")
}

func configTx(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("config_key")
	op, _ := cmd.Flags().GetString("operation")
	opAddr, _ := cmd.Flags().GetString("value")
	action := &mty.ManageAction{
		Ty:     mty.ManageActionModifyConfig,
		Modify: &mty.ModifyConfig{Key: key, Op: op, Value: opAddr},
	}
	commandtypes.SendAction(cmd, mty.ManageX, action)
}

// QueryConfigCmd  query config
func QueryConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query config item",
		Run:   queryConfig,
	}
	cmd.Flags().StringP("key", "k", "", "key string")
	cmd.MarkFlagRequired("key")
	return cmd
}

func queryConfig(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")
	var res types.ConfigItem
	commandtypes.Query(cmd, mty.ManageX, "GetConfigItem", &types.ReqString{Data: key}, &res)
}
