// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	at "github.com/33cn/wintergame/plugin/dapp/arena/types"
)

const (
	baseChance     = int64(50)
	maxChance      = int64(100)
	maxScoreDiff   = int64(5000)
	scorePerChance = int64(100)
)

//Score attack plus defense
func Score(unit *at.CombatUnit) int64 {
	return int64(unit.GetAttack()) + int64(unit.GetDefense())
}

//WinChance percent chance of the initiator, every full 100 points of score gap moves it by one, capped at 50.
//The division truncates.
func WinChance(initiator, competitor int64) int64 {
	diff := initiator - competitor
	if diff < 0 {
		diff = -diff
	}
	if diff > maxScoreDiff {
		diff = maxScoreDiff
	}
	if initiator >= competitor {
		chance := baseChance + diff/scorePerChance
		if chance > maxChance {
			return maxChance
		}
		return chance
	}
	chance := baseChance - diff/scorePerChance
	if chance < 0 {
		return 0
	}
	return chance
}

//InitiatorWins the draw falls below the initiator chance
func InitiatorWins(random uint64, chance int64) bool {
	return int64(random%100) < chance
}
