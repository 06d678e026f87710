// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ct "github.com/33cn/wintergame/plugin/dapp/craft/types"
	"github.com/33cn/wintergame/types"
)

//ExecLocal_Claim index the craft history
func (c *Craft) ExecLocal_Claim(payload *ct.CraftClaim, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(receipt)
}
