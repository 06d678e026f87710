// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands cli of the native currency
package commands

import (
	"fmt"
	"os"

	cty "github.com/33cn/wintergame/system/dapp/coins/types"
	commandtypes "github.com/33cn/wintergame/system/dapp/commands/types"
	"github.com/33cn/wintergame/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Native currency transfers and balances",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateRawTransferCmd(),
		BalanceCmd(),
		SupplyCmd(),
	)
	return cmd
}

// CreateRawTransferCmd create raw transfer tx
func CreateRawTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send native currency",
		Run:   createTransfer,
	}
	addCreateTransferFlags(cmd)
	return cmd
}

func addCreateTransferFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "transaction amount, decimal")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
}

func createTransfer(cmd *cobra.Command, args []string) {
	toAddr, _ := cmd.Flags().GetString("to")
	note, _ := cmd.Flags().GetString("note")
	amount, err := commandtypes.GetAmountValue(cmd, "amount", types.DefaultCoinDecimals)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &cty.CoinsAction{
		Ty:       cty.CoinsActionTransfer,
		Transfer: &cty.CoinsTransfer{To: toAddr, Amount: amount, Note: note},
	}
	commandtypes.SendAction(cmd, cty.CoinsX, action)
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("token", "c", "", "class identifier, native currency when empty")
	cmd.Flags().Uint64P("nonce", "", 0, "nft nonce")
	cmd.Flags().Int32P("decimals", "d", types.DefaultCoinDecimals, "decimals used to format the amount")
}

// BalanceCmd balance of an address
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance of an address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	addBalanceFlags(cmd)
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	token, _ := cmd.Flags().GetString("token")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	decimals, _ := cmd.Flags().GetInt32("decimals")
	var res types.Account
	commandtypes.QueryResult(cmd, cty.CoinsX, "GetBalance", &types.ReqBalance{Addr: addr, Token: token, Nonce: nonce}, &res,
		func(res interface{}) (interface{}, error) {
			return commandtypes.DecodeAccount(res.(*types.Account), decimals), nil
		})
}

// SupplyCmd minted minus burned amount of a class
func SupplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supply",
		Short: "Circulating supply of a class",
		Run:   supply,
	}
	addBalanceFlags(cmd)
	return cmd
}

func supply(cmd *cobra.Command, args []string) {
	token, _ := cmd.Flags().GetString("token")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	var res types.TokenSupply
	commandtypes.Query(cmd, cty.CoinsX, "GetSupply", &types.ReqBalance{Token: token, Nonce: nonce}, &res)
}
