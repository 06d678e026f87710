// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/wintergame/account"
	drivers "github.com/33cn/wintergame/system/dapp"
	cty "github.com/33cn/wintergame/system/dapp/coins/types"
	"github.com/33cn/wintergame/types"
)

//Exec_Transfer move native currency to another address
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := drivers.CheckAddress(transfer.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().Transfer(tx.From(), transfer.To, transfer.Amount)
}

//Exec_Genesis credit a genesis allocation
func (c *Coins) Exec_Genesis(genesis *cty.CoinsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	if c.GetHeight() != 0 {
		return nil, types.ErrGenesisHeight
	}
	if err := drivers.CheckAddress(genesis.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	token := genesis.Token
	if token == "" {
		token = c.GetCoinSymbol()
	}
	clog.Info("Exec_Genesis", "to", genesis.To, "token", token, "nonce", genesis.Nonce, "amount", genesis.Amount)
	return c.GetAccount(token, genesis.Nonce).GenesisInit(genesis.To, genesis.Amount)
}

//Exec_GenesisClass register a configured token class
func (c *Coins) Exec_GenesisClass(tc *types.TokenClass, tx *types.Transaction, index int) (*types.Receipt, error) {
	if c.GetHeight() != 0 {
		return nil, types.ErrGenesisHeight
	}
	return account.RegisterClass(c.GetStateDB(), tc)
}
