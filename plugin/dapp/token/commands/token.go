// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands cli of the token dapp
package commands

import (
	"fmt"
	"os"

	tt "github.com/33cn/wintergame/plugin/dapp/token/types"
	commandtypes "github.com/33cn/wintergame/system/dapp/commands/types"
	"github.com/33cn/wintergame/types"
	"github.com/spf13/cobra"
)

// TokenCmd token command tree
func TokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Token issuance and transfers",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		IssueCmd(),
		CompleteCmd(),
		RejectCmd(),
		TransferCmd(),
		BurnCmd(),
		BalanceCmd(),
		GetIssueCmd(),
		ListIssuesCmd(),
		InfoCmd(),
		HoldersCmd(),
	)
	return cmd
}

// IssueCmd request a new token
func IssueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Request a new token, the fee is attached with --pay",
		Run:   issue,
	}
	cmd.Flags().StringP("name", "n", "", "token name")
	cmd.MarkFlagRequired("name")
	cmd.Flags().StringP("ticker", "t", "", "ticker, 3 to 10 upper case letters or digits")
	cmd.MarkFlagRequired("ticker")
	cmd.Flags().StringP("supply", "s", "", "total supply, decimal")
	cmd.MarkFlagRequired("supply")
	cmd.Flags().Int32P("decimals", "d", 2, "token decimals")
	commandtypes.AddPayFlag(cmd)
	cmd.MarkFlagRequired("pay")
	return cmd
}

func issue(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	ticker, _ := cmd.Flags().GetString("ticker")
	decimals, _ := cmd.Flags().GetInt32("decimals")
	supply, err := commandtypes.GetAmountValue(cmd, "supply", decimals)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payments, err := commandtypes.GetPayments(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &tt.TokenAction{
		Ty:    tt.TokenActionIssue,
		Issue: &tt.TokenIssue{Name: name, Ticker: ticker, Supply: supply, Decimals: decimals},
	}
	commandtypes.SendAction(cmd, tt.TokenX, action, payments...)
}

func addIdentifierFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("id", "i", "", "issue identifier TICKER-xxxxxx")
	cmd.MarkFlagRequired("id")
}

// CompleteCmd approve an issue
func CompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Approve a pending issue, token managers only",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetString("id")
			action := &tt.TokenAction{Ty: tt.TokenActionComplete, Complete: &tt.TokenComplete{Identifier: id}}
			commandtypes.SendAction(cmd, tt.TokenX, action)
		},
	}
	addIdentifierFlag(cmd)
	return cmd
}

// RejectCmd refuse an issue
func RejectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject",
		Short: "Reject a pending issue and refund its fee, token managers only",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetString("id")
			action := &tt.TokenAction{Ty: tt.TokenActionReject, Reject: &tt.TokenReject{Identifier: id}}
			commandtypes.SendAction(cmd, tt.TokenX, action)
		},
	}
	addIdentifierFlag(cmd)
	return cmd
}

// TransferCmd transfer a token instance
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer a token, amount in base units",
		Run:   transfer,
	}
	cmd.Flags().StringP("class", "c", "", "token class")
	cmd.MarkFlagRequired("class")
	cmd.Flags().Uint64P("nonce", "n", 0, "nft nonce, 0 for fungible tokens")
	cmd.Flags().StringP("to", "t", "", "receiver address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().Int64P("amount", "a", 1, "amount in base units")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	class, _ := cmd.Flags().GetString("class")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	to, _ := cmd.Flags().GetString("to")
	amount, _ := cmd.Flags().GetInt64("amount")
	action := &tt.TokenAction{
		Ty:       tt.TokenActionTransfer,
		Transfer: &tt.TokenTransfer{Class: class, Nonce: nonce, To: to, Amount: amount},
	}
	commandtypes.SendAction(cmd, tt.TokenX, action)
}

// BurnCmd burn own tokens
func BurnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burn",
		Short: "Burn issued tokens held by the key",
		Run: func(cmd *cobra.Command, args []string) {
			class, _ := cmd.Flags().GetString("class")
			amount, _ := cmd.Flags().GetInt64("amount")
			action := &tt.TokenAction{Ty: tt.TokenActionBurn, Burn: &tt.TokenBurn{Class: class, Amount: amount}}
			commandtypes.SendAction(cmd, tt.TokenX, action)
		},
	}
	cmd.Flags().StringP("class", "c", "", "token class")
	cmd.MarkFlagRequired("class")
	cmd.Flags().Int64P("amount", "a", 0, "amount in base units")
	cmd.MarkFlagRequired("amount")
	return cmd
}

// BalanceCmd balance of a token instance
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance of a token",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			class, _ := cmd.Flags().GetString("class")
			nonce, _ := cmd.Flags().GetUint64("nonce")
			var res types.Account
			commandtypes.Query(cmd, tt.TokenX, tt.FuncNameGetBalance, &types.ReqBalance{Addr: addr, Token: class, Nonce: nonce}, &res)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "holder address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("class", "c", "", "token class")
	cmd.MarkFlagRequired("class")
	cmd.Flags().Uint64P("nonce", "n", 0, "nft nonce")
	return cmd
}

// GetIssueCmd show an issue
func GetIssueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get_issue",
		Short: "Show an issue request",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetString("id")
			var res tt.IssueRequest
			commandtypes.Query(cmd, tt.TokenX, tt.FuncNameGetIssue, &tt.ReqIssue{Identifier: id}, &res)
		},
	}
	addIdentifierFlag(cmd)
	return cmd
}

// ListIssuesCmd issues by status
func ListIssuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list_issues",
		Short: "List issues by status: 1 pending, 2 complete, 3 rejected",
		Run: func(cmd *cobra.Command, args []string) {
			status, _ := cmd.Flags().GetInt32("status")
			count, _ := cmd.Flags().GetInt32("count")
			var res tt.ReplyIssues
			commandtypes.Query(cmd, tt.TokenX, tt.FuncNameListIssues, &tt.ReqIssues{Status: status, Count: count}, &res)
		},
	}
	cmd.Flags().Int32P("status", "s", tt.IssueStatusPending, "issue status")
	cmd.Flags().Int32P("count", "c", 20, "max issues")
	return cmd
}

// InfoCmd class record and supply
func InfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show a token class and its supply",
		Run: func(cmd *cobra.Command, args []string) {
			class, _ := cmd.Flags().GetString("class")
			var res tt.ReplyTokenInfo
			commandtypes.Query(cmd, tt.TokenX, tt.FuncNameGetTokenInfo, &tt.ReqTokenInfo{Class: class}, &res)
		},
	}
	cmd.Flags().StringP("class", "c", "", "token class or unique prefix")
	cmd.MarkFlagRequired("class")
	return cmd
}

// HoldersCmd top holders of every class under a prefix
func HoldersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holders",
		Short: "Top holders of every token under a class prefix",
		Run: func(cmd *cobra.Command, args []string) {
			prefix, _ := cmd.Flags().GetString("prefix")
			count, _ := cmd.Flags().GetInt32("count")
			var res types.ReplyHolders
			commandtypes.Query(cmd, tt.TokenX, tt.FuncNameTopHolders, &types.ReqHolders{Prefix: prefix, Count: count}, &res)
		},
	}
	cmd.Flags().StringP("prefix", "x", "WINTER-", "class prefix")
	cmd.Flags().Int32P("count", "c", 3, "holders per class")
	return cmd
}
