// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"testing"

	"github.com/33cn/wintergame/common/crypto"
	cty "github.com/33cn/wintergame/system/dapp/coins/types"
	"github.com/33cn/wintergame/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTx(t *testing.T) {
	_, err := DecodeTx(nil)
	assert.Equal(t, types.ErrEmpty, err)

	priv, err := crypto.GenKey()
	require.NoError(t, err)
	action := &cty.CoinsAction{
		Ty:       cty.CoinsActionTransfer,
		Transfer: &cty.CoinsTransfer{To: "someone", Amount: types.Coin},
	}
	tx := types.NewTransaction(cty.CoinsX, action)
	tx.Sign(priv)

	data, err := DecodeTx(tx)
	require.NoError(t, err)
	assert.Equal(t, cty.CoinsX, data.Execer)
	assert.Equal(t, "Transfer", data.ActionName)
	assert.Equal(t, tx.From(), data.From)

	var payload cty.CoinsAction
	require.NoError(t, json.Unmarshal(data.Payload, &payload))
	assert.Equal(t, types.Coin, payload.Transfer.Amount)

	tx.Execer = []byte("nobody")
	data, err = DecodeTx(tx)
	require.NoError(t, err)
	assert.Equal(t, "unknown", data.ActionName)
	assert.Nil(t, data.Payload)
}

func TestDecodeLog(t *testing.T) {
	assert.Nil(t, DecodeLog(nil))
	r := &types.ReceiptData{
		Ty: types.ExecErr,
		Logs: []*types.ReceiptLog{
			types.NewLog(types.TyLogErr, &types.ReplyString{Data: "boom"}),
			{Ty: 99999, Log: []byte{1}},
		},
	}
	rd := DecodeLog(r)
	assert.Equal(t, "ExecErr", rd.TyName)
	require.Len(t, rd.Logs, 2)
	assert.Equal(t, "LogErr", rd.Logs[0].TyName)
	assert.JSONEq(t, `{"data":"boom"}`, string(rd.Logs[0].Log))
	assert.Equal(t, "unkownType", rd.Logs[1].TyName)
	assert.Equal(t, "0x01", rd.Logs[1].RawLog)
}

func TestDecodeBlockDetail(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	genesis := &types.Block{Height: 0, BlockTime: 1}
	block := types.NewBlock(priv, genesis, nil, 1, 2, 10)
	out, err := DecodeBlockDetail(&types.BlockDetail{Block: block}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Header.Height)
	assert.Equal(t, int64(0), out.Header.Epoch)
	assert.NotEmpty(t, out.Header.RandomSeed)
	_, err = DecodeBlockDetail(nil, false)
	assert.Equal(t, types.ErrEmpty, err)
}
