// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统级dapp相关命令包
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/rpc/jsonclient"
	rpctypes "github.com/33cn/wintergame/rpc/types"
	commandtypes "github.com/33cn/wintergame/system/dapp/commands/types"
	"github.com/33cn/wintergame/types"
	"github.com/spf13/cobra"
)

// TxCmd transaction command
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		QueryTxCmd(),
		CreateRawTxCmd(),
		SignRawTxCmd(),
		SendRawTxCmd(),
		DecodeTxCmd(),
	)
	return cmd
}

// QueryTxCmd get tx by hash
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query transaction by hash",
		Run:   queryTx,
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	hash, _ := cmd.Flags().GetString("hash")
	var res rpctypes.TransactionDetail
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Winter.QueryTransaction", rpctypes.QueryParm{Hash: hash}, &res)
	ctx.Run()
}

// CreateRawTxCmd unsigned tx from the json form of an action
func CreateRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an unsigned transaction from a json payload",
		Run:   createRawTx,
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	cmd.Flags().StringP("action", "a", "", "action name, e.g. Transfer")
	cmd.MarkFlagRequired("action")
	cmd.Flags().StringP("payload", "d", "{}", "json payload of the action")
	commandtypes.AddPayFlag(cmd)
	return cmd
}

func createRawTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	execer, _ := cmd.Flags().GetString("exec")
	action, _ := cmd.Flags().GetString("action")
	payload, _ := cmd.Flags().GetString("payload")
	if !json.Valid([]byte(payload)) {
		fmt.Fprintln(os.Stderr, "payload is not valid json")
		return
	}
	payments, err := commandtypes.GetPayments(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := rpctypes.CreateTx{Execer: execer, ActionName: action, Payload: json.RawMessage(payload), Payments: payments}
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Winter.CreateRawTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

func addRawTxFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "", "hex encoded transaction")
	cmd.MarkFlagRequired("data")
}

func loadRawTx(cmd *cobra.Command) (*types.Transaction, error) {
	data, _ := cmd.Flags().GetString("data")
	b, err := common.FromHex(data)
	if err != nil {
		return nil, err
	}
	var tx types.Transaction
	if err := types.Decode(b, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// SignRawTxCmd sign a raw tx locally
func SignRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a raw transaction with --key",
		Run: func(cmd *cobra.Command, args []string) {
			tx, err := loadRawTx(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			priv, err := commandtypes.LoadKey(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println(commandtypes.SignTx(priv, tx))
		},
	}
	addRawTxFlag(cmd)
	return cmd
}

// SendRawTxCmd send a signed raw tx
func SendRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a signed raw transaction",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			data, _ := cmd.Flags().GetString("data")
			ctx := jsonclient.NewRpcCtx(rpcLaddr, "Winter.SendTransaction", rpctypes.RawParm{Data: data}, nil)
			ctx.RunWithoutMarshal()
		},
	}
	addRawTxFlag(cmd)
	return cmd
}

// DecodeTxCmd decode a raw tx offline
func DecodeTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a hex raw transaction",
		Run: func(cmd *cobra.Command, args []string) {
			tx, err := loadRawTx(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			res, err := rpctypes.DecodeTx(tx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			data, err := json.MarshalIndent(res, "", "    ")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println(string(data))
		},
	}
	addRawTxFlag(cmd)
	return cmd
}
