// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types shared helpers of the dapp command trees
package types

import (
	"github.com/33cn/wintergame/types"
)

// AccountResult defines account result command
type AccountResult struct {
	Token   string `json:"token"`
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
}

//DecodeAccount balance formatted with the token decimals
func DecodeAccount(acc *types.Account, decimals int32) *AccountResult {
	return &AccountResult{
		Token:   acc.GetToken(),
		Addr:    acc.GetAddr(),
		Balance: types.FormatAmount(acc.GetBalance(), decimals),
	}
}

// KeyResult generated key pair
type KeyResult struct {
	Privkey string `json:"privkey"`
	Pubkey  string `json:"pubkey"`
	Addr    string `json:"addr"`
}
