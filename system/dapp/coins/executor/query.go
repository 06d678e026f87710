// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/types"
)

//Query_GetBalance balance of a token instance, native currency by default
func (c *Coins) Query_GetBalance(req *types.ReqBalance) (types.Message, error) {
	if req.Addr == "" {
		return nil, types.ErrInvalidAddress
	}
	token := req.Token
	if token == "" {
		token = c.GetCoinSymbol()
	}
	return c.GetAccount(token, req.Nonce).LoadAccount(req.Addr), nil
}

//Query_GetSupply minted minus burned amount of a token instance
func (c *Coins) Query_GetSupply(req *types.ReqBalance) (types.Message, error) {
	token := req.Token
	if token == "" {
		token = c.GetCoinSymbol()
	}
	key := types.TokenKey(token, req.Nonce)
	return &types.TokenSupply{Token: key, Total: account.LoadSupply(c.GetStateDB(), key)}, nil
}
