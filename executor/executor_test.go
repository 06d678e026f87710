// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"encoding/json"
	"testing"

	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/common/address"
	"github.com/33cn/wintergame/common/crypto"
	"github.com/33cn/wintergame/executor"
	cty "github.com/33cn/wintergame/system/dapp/coins/types"
	"github.com/33cn/wintergame/types"
	"github.com/33cn/wintergame/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChain(t *testing.T) (*util.Chain, string, crypto.PrivKey) {
	cfg := util.TestConfig()
	addr, priv := util.Genaddress()
	util.AddAlloc(cfg, addr, "", 0, 100*types.Coin)
	util.AddAlloc(cfg, addr, util.WinterClass, 0, 1000)
	chain, err := util.NewChain(cfg)
	require.NoError(t, err)
	return chain, addr, priv
}

func TestGenesis(t *testing.T) {
	chain, addr, _ := newChain(t)
	assert.Equal(t, int64(0), chain.Last.Height)
	assert.Equal(t, 100*types.Coin, chain.Balance("FROST", 0, addr))
	assert.Equal(t, int64(1000), chain.Balance(util.WinterClass, 0, addr))
	assert.Equal(t, 100*types.Coin, account.LoadSupply(chain.StateDB(), "FROST"))

	tc, err := account.LoadClass(chain.StateDB(), util.CitizenClass)
	require.NoError(t, err)
	assert.Equal(t, types.KindNonFungible, tc.Kind)
	assert.Equal(t, []string{"craft"}, tc.Minters)

	block, err := executor.GenesisBlock(chain.Cfg)
	require.NoError(t, err)
	assert.Equal(t, chain.Last.Hash(), block.Hash())
}

func TestGenesisTxRejectedAfterGenesis(t *testing.T) {
	chain, addr, priv := newChain(t)
	action := &cty.CoinsAction{
		Ty:      cty.CoinsActionGenesis,
		Genesis: &cty.CoinsGenesis{To: addr, Amount: types.Coin},
	}
	detail, err := chain.ExecAndCheck(types.ExecErr, util.CreateTx(priv, cty.CoinsX, action))
	require.NoError(t, err)
	assert.Equal(t, types.ErrGenesisHeight.Error(), util.ErrLog(detail.Receipts[0]))
	assert.Equal(t, 100*types.Coin, chain.Balance("FROST", 0, addr))
}

func TestTransferAndRollback(t *testing.T) {
	chain, addr, priv := newChain(t)
	to, _ := util.Genaddress()
	_, err := chain.ExecAndCheck(types.ExecOk, util.CreateCoinsTx(priv, to, types.Coin))
	require.NoError(t, err)
	assert.Equal(t, 99*types.Coin, chain.Balance("FROST", 0, addr))
	assert.Equal(t, types.Coin, chain.Balance("FROST", 0, to))

	detail, err := chain.ExecAndCheck(types.ExecErr, util.CreateCoinsTx(priv, to, 1000*types.Coin))
	require.NoError(t, err)
	assert.Equal(t, types.ErrNoBalance.Error(), util.ErrLog(detail.Receipts[0]))
	assert.Equal(t, 99*types.Coin, chain.Balance("FROST", 0, addr))
	assert.Equal(t, types.Coin, chain.Balance("FROST", 0, to))
}

func TestUnsignedTxFails(t *testing.T) {
	chain, addr, _ := newChain(t)
	to, _ := util.Genaddress()
	detail, err := chain.ExecAndCheck(types.ExecErr, util.CreateCoinsTx(crypto.PrivKey{}, to, types.Coin))
	require.NoError(t, err)
	assert.Equal(t, types.ErrSign.Error(), util.ErrLog(detail.Receipts[0]))
	assert.Equal(t, 100*types.Coin, chain.Balance("FROST", 0, addr))
}

func TestUnknownExecer(t *testing.T) {
	chain, _, priv := newChain(t)
	tx := util.CreateTx(priv, "nobody", &types.ReqString{Data: "x"})
	detail, err := chain.ExecAndCheck(types.ExecErr, tx)
	require.NoError(t, err)
	assert.Equal(t, types.ErrUnRegistedDriver.Error(), util.ErrLog(detail.Receipts[0]))
}

func TestPaymentIntake(t *testing.T) {
	chain, addr, priv := newChain(t)
	to, _ := util.Genaddress()
	execaddr := address.ExecAddress(cty.CoinsX)

	tx := util.CreateTx(priv, cty.CoinsX, &cty.CoinsAction{
		Ty:       cty.CoinsActionTransfer,
		Transfer: &cty.CoinsTransfer{To: to, Amount: types.Coin},
	}, &types.Payment{Token: util.WinterClass, Amount: 10})
	detail, err := chain.ExecAndCheck(types.ExecOk, tx)
	require.NoError(t, err)
	assert.Equal(t, int64(990), chain.Balance(util.WinterClass, 0, addr))
	assert.Equal(t, int64(10), chain.Balance(util.WinterClass, 0, execaddr))
	assert.Equal(t, int32(types.TyLogPaymentIntake), detail.Receipts[0].Logs[2].Ty)

	//failed action returns the payment
	bad := util.CreateTx(priv, cty.CoinsX, &cty.CoinsAction{
		Ty:       cty.CoinsActionTransfer,
		Transfer: &cty.CoinsTransfer{To: "bad address", Amount: types.Coin},
	}, &types.Payment{Token: util.WinterClass, Amount: 10})
	detail, err = chain.ExecAndCheck(types.ExecErr, bad)
	require.NoError(t, err)
	assert.Equal(t, types.ErrInvalidAddress.Error(), util.ErrLog(detail.Receipts[0]))
	assert.Equal(t, int64(990), chain.Balance(util.WinterClass, 0, addr))
	assert.Equal(t, int64(10), chain.Balance(util.WinterClass, 0, execaddr))

	//payment larger than the balance
	poor := util.CreateTx(priv, cty.CoinsX, &cty.CoinsAction{
		Ty:       cty.CoinsActionTransfer,
		Transfer: &cty.CoinsTransfer{To: to, Amount: types.Coin},
	}, &types.Payment{Token: util.WinterClass, Amount: 5000})
	detail, err = chain.ExecAndCheck(types.ExecErr, poor)
	require.NoError(t, err)
	assert.Equal(t, "Insufficient "+util.WinterClass+" balance", util.ErrLog(detail.Receipts[0]))
}

func TestFailedTxDoesNotBlockOthers(t *testing.T) {
	chain, addr, priv := newChain(t)
	to, _ := util.Genaddress()
	detail, err := chain.ExecTxs(
		util.CreateCoinsTx(priv, to, types.Coin),
		util.CreateCoinsTx(priv, to, 1000*types.Coin),
		util.CreateCoinsTx(priv, to, types.Coin),
	)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), detail.Receipts[0].Ty)
	assert.Equal(t, int32(types.ExecErr), detail.Receipts[1].Ty)
	assert.Equal(t, int32(types.ExecOk), detail.Receipts[2].Ty)
	assert.Equal(t, 98*types.Coin, chain.Balance("FROST", 0, addr))
}

func TestQueryAndCheckTx(t *testing.T) {
	chain, addr, priv := newChain(t)
	reply, err := chain.Query(cty.CoinsX, "GetBalance", &types.ReqBalance{Addr: addr})
	require.NoError(t, err)
	assert.Equal(t, 100*types.Coin, reply.(*types.Account).Balance)

	reply, err = chain.Query(cty.CoinsX, "GetSupply", &types.ReqBalance{Token: util.WinterClass})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), reply.(*types.TokenSupply).Total)

	_, err = chain.Exec.Query(cty.CoinsX, "Nothing", json.RawMessage(`{}`))
	assert.Equal(t, types.ErrQueryNotSupport, err)

	to, _ := util.Genaddress()
	assert.NoError(t, chain.Exec.CheckTx(util.CreateCoinsTx(priv, to, types.Coin)))
	assert.Equal(t, types.ErrSign, chain.Exec.CheckTx(util.CreateCoinsTx(crypto.PrivKey{}, to, types.Coin)))
	tx := util.CreateCoinsTx(crypto.PrivKey{}, to, types.Coin)
	tx.To = to
	tx.Sign(priv)
	assert.Equal(t, types.ErrToAddrNotSameToExecAddr, chain.Exec.CheckTx(tx))
}

func TestEvents(t *testing.T) {
	chain, addr, priv := newChain(t)
	to, _ := util.Genaddress()
	detail, err := chain.ExecAndCheck(types.ExecOk, util.CreateCoinsTx(priv, to, types.Coin))
	require.NoError(t, err)
	events := chain.Events(detail)
	require.Len(t, events, 2)
	assert.Equal(t, "LogTransfer", events[0].Name)
	assert.Equal(t, addr, events[0].From)
	assert.Equal(t, cty.CoinsX, events[0].Execer)
	assert.Equal(t, chain.Last.Height, events[0].Height)
	var rt types.ReceiptAccountTransfer
	require.NoError(t, json.Unmarshal(events[1].Data, &rt))
	assert.Equal(t, to, rt.Current.Addr)
	assert.Equal(t, types.Coin, rt.Current.Balance)
}
