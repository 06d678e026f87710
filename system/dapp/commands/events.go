// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/wintergame/rpc/jsonclient"
	rpctypes "github.com/33cn/wintergame/rpc/types"
	"github.com/spf13/cobra"
)

// EventsCmd query the event index of the node
func EventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Query indexed events, the node needs [indexer] enable",
		Run:   getEvents,
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.Flags().StringP("name", "n", "", "event name, e.g. LogGameFinish")
	cmd.Flags().StringP("from", "f", "", "tx sender")
	cmd.Flags().StringP("hash", "s", "", "tx hash")
	cmd.Flags().Int64P("start", "", 0, "first height")
	cmd.Flags().Int64P("end", "", 0, "last height")
	cmd.Flags().Int32P("count", "c", 0, "max events")
	return cmd
}

func getEvents(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	var req rpctypes.ReqEvents
	req.Execer, _ = cmd.Flags().GetString("exec")
	req.Name, _ = cmd.Flags().GetString("name")
	req.From, _ = cmd.Flags().GetString("from")
	req.TxHash, _ = cmd.Flags().GetString("hash")
	req.HeightFrom, _ = cmd.Flags().GetInt64("start")
	req.HeightTo, _ = cmd.Flags().GetInt64("end")
	req.Count, _ = cmd.Flags().GetInt32("count")
	var res rpctypes.ReplyEvents
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Winter.GetEvents", req, &res)
	ctx.Run()
}
