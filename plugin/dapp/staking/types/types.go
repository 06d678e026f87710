// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/33cn/wintergame/types"
)

func init() {
	types.RegistorExecutor(StakingX, NewType())
}

//NewType new
func NewType() *StakingType {
	c := &StakingType{}
	c.SetChild(c)
	return c
}

//StakingType executor type of staking
type StakingType struct {
	types.ExecTypeBase
}

//GetName driver name
func (st *StakingType) GetName() string {
	return StakingX
}

//GetLogMap receipt logs
func (st *StakingType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogStake:            {Ty: reflect.TypeOf(ReceiptStake{}), Name: "LogStake"},
		TyLogStakeReward:      {Ty: reflect.TypeOf(ReceiptReward{}), Name: "LogStakeReward"},
		TyLogStakeBeneficiary: {Ty: reflect.TypeOf(ReceiptBeneficiary{}), Name: "LogStakeBeneficiary"},
	}
}

//GetPayload empty payload
func (st *StakingType) GetPayload() types.Message {
	return &StakingAction{}
}

//GetTypeMap action name to ty
func (st *StakingType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Stake":          StakingActionStake,
		"Claim":          StakingActionClaim,
		"SetBeneficiary": StakingActionSetBeneficiary,
	}
}
