// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/wintergame/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Len(t, c.Workflows, 5)

	citizen, err := c.Get("citizen")
	require.NoError(t, err)
	assert.Equal(t, types.ClockTime, citizen.Clock)
	assert.Equal(t, int64(3600), citizen.Delay)
	rules := citizen.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "WOOD", rules[0].Name)
	assert.True(t, rules[0].Match("WOOD-7d3e21"))
	assert.False(t, rules[1].Match("WOOD-7d3e21"))

	soldier, err := c.Get("soldier")
	require.NoError(t, err)
	require.NotNil(t, soldier.Target)
	assert.Equal(t, "CITIZEN", soldier.Target.Kind)
	info := soldier.Info()
	assert.Equal(t, OutputUpgrade, info.Output)
	assert.Equal(t, "SOLDIER", info.Kind)
	assert.Equal(t, uint32(10), info.AttackRoll)
	assert.Equal(t, "CITIZEN-", info.TargetPrefix)
	assert.Equal(t, int64(5), info.Inputs[1].Min)

	equip, err := c.Get("equip")
	require.NoError(t, err)
	assert.True(t, equip.Output.InputDefense)

	_, err = c.Get("castle")
	assert.Equal(t, ErrWorkflowNotFound, err)
}

func TestParseCatalogErrors(t *testing.T) {
	cases := map[string]string{
		"empty":     `workflows: []`,
		"clock":     "workflows:\n  - {name: a, clock: weeks, delay: 1, inputs: [{prefix: X-, min: 1}], output: {type: mint, class: Y-, amount: 1}}",
		"min":       "workflows:\n  - {name: a, delay: 1, inputs: [{prefix: X-, min: 0}], output: {type: mint, class: Y-, amount: 1}}",
		"no inputs": "workflows:\n  - {name: a, delay: 1, output: {type: mint, class: Y-, amount: 1}}",
		"amount":    "workflows:\n  - {name: a, delay: 1, inputs: [{prefix: X-, min: 1}], output: {type: mint, class: Y-}}",
		"target":    "workflows:\n  - {name: a, delay: 1, inputs: [{prefix: X-, min: 1}], output: {type: upgrade}}",
		"type":      "workflows:\n  - {name: a, delay: 1, inputs: [{prefix: X-, min: 1}], output: {type: burn}}",
		"duplicate": "workflows:\n  - {name: a, delay: 1, inputs: [{prefix: X-, min: 1}], output: {type: nft, class: Y-}}\n  - {name: a, delay: 1, inputs: [{prefix: X-, min: 1}], output: {type: nft, class: Y-}}",
	}
	for name, raw := range cases {
		_, err := ParseCatalog([]byte(raw))
		assert.Equal(t, ErrCatalog, errors.Cause(err), name)
	}
	_, err := ParseCatalog([]byte("workflows: {"))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	raw := `
workflows:
  - name: plank
    clock: round
    delay: 10
    inputs:
      - {name: Wood, exact: WOOD-7d3e21, min: 3}
    output: {type: mint, class: ORE-3f7c35, amount: 2}
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))
	c, err := LoadCatalog(path)
	require.NoError(t, err)
	w, err := c.Get("plank")
	require.NoError(t, err)
	assert.Equal(t, types.ClockRound, w.Clock)
	assert.Equal(t, "Wood", w.Inputs[0].Name)
	assert.Equal(t, "WOOD-7d3e21", w.Info().Inputs[0].Prefix)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRoll(t *testing.T) {
	assert.Equal(t, uint32(5), Roll(5, 0, 12345))
	assert.Equal(t, uint32(17), Roll(10, 10, 12347))
	assert.Equal(t, uint32(7), Roll(5, 5, 12347))
}

func TestStatSeed(t *testing.T) {
	seed := make([]byte, 32)
	assert.Equal(t, StatSeed(seed, StatAttack), StatSeed(seed, StatAttack))
	//the stats of one block differ even when the block seed is the same
	same := 0
	for i := 0; i < 64; i++ {
		seed[0] = byte(i)
		if StatSeed(seed, StatAttack)%10 == StatSeed(seed, StatDefense)%10 {
			same++
		}
		assert.NotEqual(t, StatSeed(seed, StatAttack), StatSeed(seed, StatDefense))
		assert.NotEqual(t, types.SeedUint64(seed), StatSeed(seed, StatAttack))
	}
	assert.Less(t, same, 32)
}
