// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	tt "github.com/33cn/wintergame/plugin/dapp/token/types"
	"github.com/33cn/wintergame/types"
)

//Exec_Issue request a new token
func (t *Token) Exec_Issue(payload *tt.TokenIssue, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(t, tx, index)
	return action.issue(payload)
}

//Exec_Complete approve a pending issue
func (t *Token) Exec_Complete(payload *tt.TokenComplete, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(t, tx, index)
	return action.complete(payload)
}

//Exec_Reject refuse a pending issue
func (t *Token) Exec_Reject(payload *tt.TokenReject, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(t, tx, index)
	return action.reject(payload)
}

//Exec_Transfer user transfer
func (t *Token) Exec_Transfer(payload *tt.TokenTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(t, tx, index)
	return action.transfer(payload)
}

//Exec_Burn holder burn
func (t *Token) Exec_Burn(payload *tt.TokenBurn, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(t, tx, index)
	return action.burn(payload)
}
