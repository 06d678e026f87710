// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
)

var (
	//ErrPoolNotFound unknown pool name
	ErrPoolNotFound = types.Validationf("Unknown staking pool")
	//ErrPoolConfig pool with a bad clock, cooldown, divisor or name
	ErrPoolConfig = types.NewError(types.ErrValidation, "ErrPoolConfig")
	//ErrStakePayment stake without a payment
	ErrStakePayment = types.Validationf("At least one payment is required")
	//ErrStakeNft nft attached to a stake
	ErrStakeNft = types.Validationf("Only fungible tokens can be staked")
	//ErrNothingStaked claim without a stake
	ErrNothingStaked = types.StateConflictf("Nothing staked in this pool")
	//ErrNoReward stake too small for a reward
	ErrNoReward = types.StateConflictf("Reward is zero")
	//ErrSelfBeneficiary beneficiary equal to the caller
	ErrSelfBeneficiary = types.Validationf("Beneficiary can't be the caller")
	//ErrRewardToken reward class of the pool is not registered or ambiguous
	ErrRewardToken = types.NewError(types.ErrValidation, "ErrRewardToken")
)
