// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/common/crypto"
	"github.com/33cn/wintergame/rpc/jsonclient"
	rpctypes "github.com/33cn/wintergame/rpc/types"
	"github.com/33cn/wintergame/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//KeyEnv environment variable holding the signing key when --key is empty
const KeyEnv = "WINTER_KEY"

//AddPayFlag --pay CLASS:AMOUNT or CLASS:NONCE:AMOUNT, repeatable, amounts in base units
func AddPayFlag(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("pay", "p", nil, "attached payment CLASS:AMOUNT or CLASS:NONCE:AMOUNT, base units")
}

//ParsePayment one --pay value
func ParsePayment(s string) (*types.Payment, error) {
	parts := strings.Split(s, ":")
	var nonce uint64
	var err error
	switch len(parts) {
	case 2:
	case 3:
		nonce, err = strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "payment nonce %s", s)
		}
	default:
		return nil, errors.Errorf("payment %s: want CLASS:AMOUNT or CLASS:NONCE:AMOUNT", s)
	}
	amount, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil || !types.CheckAmount(amount) {
		return nil, errors.Errorf("payment %s: bad amount", s)
	}
	if parts[0] == "" {
		return nil, errors.Errorf("payment %s: empty class", s)
	}
	return &types.Payment{Token: parts[0], Nonce: nonce, Amount: amount}, nil
}

//GetPayments payments of the --pay flag
func GetPayments(cmd *cobra.Command) ([]*types.Payment, error) {
	specs, _ := cmd.Flags().GetStringArray("pay")
	payments := make([]*types.Payment, 0, len(specs))
	for _, s := range specs {
		p, err := ParsePayment(s)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

//GetAmountValue decimal flag converted to base units
func GetAmountValue(cmd *cobra.Command, field string, decimals int32) (int64, error) {
	s, _ := cmd.Flags().GetString(field)
	return types.ParseAmount(s, decimals)
}

//LoadKey signing key from --key or the environment
func LoadKey(cmd *cobra.Command) (crypto.PrivKey, error) {
	key, _ := cmd.Flags().GetString("key")
	if key == "" {
		key = os.Getenv(KeyEnv)
	}
	if key == "" {
		return crypto.PrivKey{}, errors.New("no signing key, use --key or " + KeyEnv)
	}
	b, err := common.FromHex(key)
	if err != nil {
		return crypto.PrivKey{}, errors.Wrap(err, "decode key")
	}
	return crypto.PrivKeyFromBytes(b)
}

//SignTx hex of the signed tx
func SignTx(priv crypto.PrivKey, tx *types.Transaction) string {
	tx.Sign(priv)
	return hex.EncodeToString(types.Encode(tx))
}

//SendAction sign an action of execer with the cli key and send it, prints the tx hash
func SendAction(cmd *cobra.Command, execer string, action types.Message, payments ...*types.Payment) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	priv, err := LoadKey(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx := types.NewTransaction(execer, action, payments...)
	params := rpctypes.RawParm{Data: SignTx(priv, tx)}
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Winter.SendTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

//Query call Query_<funcName> of execer and print the reply
func Query(cmd *cobra.Command, execer, funcName string, req, res interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	params := rpctypes.Query4Cli{Execer: execer, FuncName: funcName, Payload: req}
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Winter.Query", params, res)
	ctx.Run()
}

//QueryResult like Query, cb formats the reply before printing
func QueryResult(cmd *cobra.Command, execer, funcName string, req, res interface{}, cb jsonclient.Callback) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	params := rpctypes.Query4Cli{Execer: execer, FuncName: funcName, Payload: req}
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Winter.Query", params, res)
	ctx.SetResultCb(cb)
	ctx.Run()
}
