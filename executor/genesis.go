// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/common/address"
	cty "github.com/33cn/wintergame/system/dapp/coins/types"
	"github.com/33cn/wintergame/types"
)

func genesisTx(index int, action *cty.CoinsAction) *types.Transaction {
	tx := &types.Transaction{
		Execer:  cty.ExecerCoins,
		Payload: types.Encode(action),
		Nonce:   int64(index),
		To:      address.ExecAddress(cty.CoinsX),
	}
	return tx
}

//GenesisTxs unsigned genesis txs: the native coin class, the configured token classes, then the allocations
func GenesisTxs(cfg *types.Config) ([]*types.Transaction, error) {
	var txs []*types.Transaction
	coin := &types.TokenClass{
		Class:    cfg.Coin.Symbol,
		Name:     cfg.Coin.Symbol,
		Kind:     types.KindFungible,
		Decimals: cfg.Coin.Decimals,
	}
	txs = append(txs, genesisTx(len(txs), &cty.CoinsAction{Ty: cty.CoinsActionGenesisClass, GenesisClass: coin}))
	for _, tcfg := range cfg.Tokens {
		tc, err := account.ClassFromConfig(tcfg)
		if err != nil {
			return nil, err
		}
		txs = append(txs, genesisTx(len(txs), &cty.CoinsAction{Ty: cty.CoinsActionGenesisClass, GenesisClass: tc}))
	}
	for _, alloc := range cfg.Genesis.Allocations {
		g := &cty.CoinsGenesis{To: alloc.Addr, Token: alloc.Token, Nonce: alloc.Nonce, Amount: alloc.Amount}
		txs = append(txs, genesisTx(len(txs), &cty.CoinsAction{Ty: cty.CoinsActionGenesis, Genesis: g}))
	}
	return txs, nil
}

//GenesisBlock height 0 block of the config
func GenesisBlock(cfg *types.Config) (*types.Block, error) {
	txs, err := GenesisTxs(cfg)
	if err != nil {
		return nil, err
	}
	block := &types.Block{
		ParentHash: make([]byte, 32),
		BlockTime:  cfg.Genesis.BlockTime,
		Txs:        txs,
	}
	block.TxHash = types.CalcTxHash(txs)
	block.RandomSeed = types.GenesisSeed(block.TxHash, block.BlockTime)
	return block, nil
}
