// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	tt "github.com/33cn/wintergame/plugin/dapp/token/types"
	"github.com/33cn/wintergame/types"
)

//ExecLocal_Issue index the pending issue
func (t *Token) ExecLocal_Issue(payload *tt.TokenIssue, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return t.execLocal(receipt)
}

//ExecLocal_Complete move the issue to the complete index
func (t *Token) ExecLocal_Complete(payload *tt.TokenComplete, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return t.execLocal(receipt)
}

//ExecLocal_Reject move the issue to the rejected index
func (t *Token) ExecLocal_Reject(payload *tt.TokenReject, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return t.execLocal(receipt)
}
