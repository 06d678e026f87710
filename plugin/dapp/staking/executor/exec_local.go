// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	st "github.com/33cn/wintergame/plugin/dapp/staking/types"
	"github.com/33cn/wintergame/types"
)

//ExecLocal_Claim index the reward history
func (s *Staking) ExecLocal_Claim(payload *st.StakeClaim, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return s.execLocal(receipt)
}
