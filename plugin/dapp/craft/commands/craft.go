// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands cli of the craft dapp
package commands

import (
	"fmt"
	"os"

	ct "github.com/33cn/wintergame/plugin/dapp/craft/types"
	commandtypes "github.com/33cn/wintergame/system/dapp/commands/types"
	"github.com/33cn/wintergame/types"
	"github.com/spf13/cobra"
)

// CraftCmd craft command tree
func CraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "craft",
		Short: "Time locked crafting and unit upgrades",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		RequestCmd(),
		ClaimCmd(),
		ShowRequestCmd(),
		WorkflowsCmd(),
		HistoryCmd(),
	)
	return cmd
}

func addWorkflowFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("workflow", "w", "", "workflow name")
	cmd.MarkFlagRequired("workflow")
}

// RequestCmd burn the inputs and start a workflow
func RequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Start a workflow, the --pay inputs are burned",
		Run:   request,
	}
	addWorkflowFlag(cmd)
	commandtypes.AddPayFlag(cmd)
	cmd.Flags().StringP("target", "t", "", "target nft class of an upgrade")
	cmd.Flags().Uint64P("nonce", "n", 0, "target nft nonce of an upgrade")
	return cmd
}

func request(cmd *cobra.Command, args []string) {
	workflow, _ := cmd.Flags().GetString("workflow")
	target, _ := cmd.Flags().GetString("target")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	payments, err := commandtypes.GetPayments(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &ct.CraftAction{
		Ty:      ct.CraftActionRequest,
		Request: &ct.CraftRequest{Workflow: workflow, TargetClass: target, TargetNonce: nonce},
	}
	commandtypes.SendAction(cmd, ct.CraftX, action, payments...)
}

// ClaimCmd collect the output of a workflow
func ClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the output of a pending request",
		Run:   claim,
	}
	addWorkflowFlag(cmd)
	return cmd
}

func claim(cmd *cobra.Command, args []string) {
	workflow, _ := cmd.Flags().GetString("workflow")
	action := &ct.CraftAction{Ty: ct.CraftActionClaim, Claim: &ct.CraftClaim{Workflow: workflow}}
	commandtypes.SendAction(cmd, ct.CraftX, action)
}

// ShowRequestCmd pending request of an address
func ShowRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the pending request of an address",
		Run:   showRequest,
	}
	addWorkflowFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "owner address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func showRequest(cmd *cobra.Command, args []string) {
	workflow, _ := cmd.Flags().GetString("workflow")
	addr, _ := cmd.Flags().GetString("addr")
	var res ct.ReplyCraftRequest
	commandtypes.Query(cmd, ct.CraftX, ct.FuncNameGetRequest, &ct.ReqCraftRequest{Owner: addr, Workflow: workflow}, &res)
}

// WorkflowsCmd catalog in use
func WorkflowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workflows",
		Short: "List the crafting workflows",
		Run: func(cmd *cobra.Command, args []string) {
			var res ct.ReplyWorkflows
			commandtypes.Query(cmd, ct.CraftX, ct.FuncNameListWorkflows, &types.ReqNil{}, &res)
		},
	}
}

// HistoryCmd claims of an address
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Crafted outputs of an address",
		Run:   history,
	}
	cmd.Flags().StringP("addr", "a", "", "owner address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int32P("count", "c", 0, "page size")
	cmd.Flags().Int32P("direction", "d", 0, "0 newest first, 1 oldest first")
	cmd.Flags().Int64P("index", "i", 0, "continue after this index")
	return cmd
}

func history(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")
	req := &ct.ReqCraftHistory{Owner: addr, Count: count, Direction: direction, Index: index}
	var res ct.ReplyCraftHistory
	commandtypes.Query(cmd, ct.CraftX, ct.FuncNameListCrafts, req, &res)
}
