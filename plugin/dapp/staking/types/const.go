// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
)

//staking action ty
const (
	StakingActionStake = iota + 1
	StakingActionClaim
	StakingActionSetBeneficiary
)

//staking log ty
const (
	TyLogStake            = 711
	TyLogStakeReward      = 712
	TyLogStakeBeneficiary = 713
)

//query names
const (
	FuncNameGetStake    = "GetStake"
	FuncNameGetPools    = "GetPools"
	FuncNameLeaderboard = "Leaderboard"
	FuncNameListClaims  = "ListClaims"
)

//StakingX driver name
const StakingX = types.StakeX

var (
	//ExecerStaking driver name bytes
	ExecerStaking = []byte(StakingX)
)

//DefaultPools pools used when [exec.sub.staking] lists none
func DefaultPools() []*PoolInfo {
	return []*PoolInfo{
		{Name: "snow", Clock: types.ClockTime, Cooldown: 86400, Divisor: 100, Reward: "SNOW-", Accept: "WINTER-"},
		{Name: "wood", Clock: types.ClockRound, Cooldown: 600, Divisor: 1000, Reward: "WOOD-", Accept: "WINTER-"},
		{Name: "food", Clock: types.ClockRound, Cooldown: 1200, Divisor: 1000, Reward: "FOOD-", Accept: "WINTER-"},
		{Name: "stone", Clock: types.ClockRound, Cooldown: 1800, Divisor: 1000, Reward: "STONE-", Accept: "WINTER-"},
		{Name: "gold", Clock: types.ClockRound, Cooldown: 2400, Divisor: 1000, Reward: "GOLD-", Accept: "WINTER-"},
	}
}

//CheckPool pool parameters usable by the executor
func CheckPool(p *PoolInfo) error {
	if p.Name == "" || p.Accept == "" || p.Reward == "" {
		return ErrPoolConfig
	}
	for _, c := range p.Name {
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return ErrPoolConfig
		}
	}
	if !types.ValidClock(p.Clock) {
		return ErrPoolConfig
	}
	if p.Cooldown <= 0 || p.Divisor <= 0 {
		return ErrPoolConfig
	}
	return nil
}
