// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	at "github.com/33cn/wintergame/plugin/dapp/arena/types"
	"github.com/stretchr/testify/assert"
)

func TestWinChance(t *testing.T) {
	cases := []struct {
		initiator, competitor, chance int64
	}{
		{15, 10, 50},
		{10, 15, 50},
		{0, 0, 50},
		{300, 100, 52},
		{100, 300, 48},
		{5100, 100, 100},
		{100, 5100, 0},
		{90000, 0, 100},
		{0, 90000, 0},
		{199, 100, 50},
		{100, 199, 50},
	}
	for _, c := range cases {
		assert.Equal(t, c.chance, WinChance(c.initiator, c.competitor), "%d vs %d", c.initiator, c.competitor)
	}
}

func TestWinChanceMonotonic(t *testing.T) {
	prev := int64(-1)
	for s := int64(0); s <= 12000; s += 37 {
		chance := WinChance(s, 6000)
		assert.True(t, chance >= 0 && chance <= 100)
		assert.True(t, chance >= prev, "score %d", s)
		prev = chance
	}
}

func TestScore(t *testing.T) {
	assert.Equal(t, int64(15), Score(&at.CombatUnit{Attack: 10, Defense: 5}))
	assert.Equal(t, int64(0), Score(nil))
}

func TestInitiatorWins(t *testing.T) {
	assert.True(t, InitiatorWins(149, 50))
	assert.False(t, InitiatorWins(150, 50))
	assert.False(t, InitiatorWins(0, 0))
	assert.True(t, InitiatorWins(99, 100))
}
