// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/wintergame/rpc/jsonclient"
	rpctypes "github.com/33cn/wintergame/rpc/types"
	"github.com/spf13/cobra"
)

// BlockCmd block command
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Get block header or body info",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GetBlocksCmd(),
		GetLastHeaderCmd(),
	)
	return cmd
}

// GetBlocksCmd get blocks between start and end
func GetBlocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get blocks between [start, end]",
		Run:   getBlocks,
	}
	cmd.Flags().Int64P("start", "s", 0, "block start height")
	cmd.MarkFlagRequired("start")
	cmd.Flags().Int64P("end", "e", 0, "block end height")
	cmd.MarkFlagRequired("end")
	cmd.Flags().BoolP("detail", "d", false, "include receipts")
	return cmd
}

func getBlocks(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	startH, _ := cmd.Flags().GetInt64("start")
	endH, _ := cmd.Flags().GetInt64("end")
	isDetail, _ := cmd.Flags().GetBool("detail")
	params := rpctypes.BlockParam{Start: startH, End: endH, IsDetail: isDetail}
	var res rpctypes.BlockDetails
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Winter.GetBlocks", params, &res)
	ctx.Run()
}

// GetLastHeaderCmd get information of latest header
func GetLastHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last_header",
		Short: "View last block header",
		Run:   getLastHeader,
	}
	return cmd
}

func getLastHeader(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	var res rpctypes.Header
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Winter.GetLastHeader", nil, &res)
	ctx.Run()
}
