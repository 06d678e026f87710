// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	st "github.com/33cn/wintergame/plugin/dapp/staking/types"
	"github.com/33cn/wintergame/types"
)

//Exec_Stake stake the attached tokens
func (s *Staking) Exec_Stake(payload *st.StakeDeposit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(s, tx, index)
	return action.stake(payload)
}

//Exec_Claim mint the accrued reward
func (s *Staking) Exec_Claim(payload *st.StakeClaim, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(s, tx, index)
	return action.claim(payload)
}

//Exec_SetBeneficiary register the reward receiver
func (s *Staking) Exec_SetBeneficiary(payload *st.StakeBeneficiary, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(s, tx, index)
	return action.setBeneficiary(payload)
}
