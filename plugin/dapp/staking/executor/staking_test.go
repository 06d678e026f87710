// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strings"
	"sync"
	"testing"

	"github.com/33cn/wintergame/common/crypto"
	st "github.com/33cn/wintergame/plugin/dapp/staking/types"
	"github.com/33cn/wintergame/types"
	"github.com/33cn/wintergame/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const winter2 = "WINTER-ffffff"

var registerOnce sync.Once

type stakingSuite struct {
	chain *util.Chain
	addr  string
	priv  crypto.PrivKey
	other string
	opriv crypto.PrivKey
}

func newSuite(t *testing.T) *stakingSuite {
	cfg := util.TestConfig()
	registerOnce.Do(func() { Init(st.StakingX, cfg) })
	cfg.Tokens = append(cfg.Tokens, &types.TokenConfig{Class: winter2, Name: "Winter Two", Tier: "stake"})
	s := &stakingSuite{}
	s.addr, s.priv = util.Genaddress()
	s.other, s.opriv = util.Genaddress()
	util.AddAlloc(cfg, s.addr, "", 0, 100*types.Coin)
	util.AddAlloc(cfg, s.other, util.WinterClass, 0, 500)
	util.AddAlloc(cfg, s.addr, util.WinterClass, 0, 10000)
	util.AddAlloc(cfg, s.addr, winter2, 0, 10000)
	chain, err := util.NewChain(cfg)
	require.NoError(t, err)
	s.chain = chain
	return s
}

func stakeTx(priv crypto.PrivKey, pool string, payments ...*types.Payment) *types.Transaction {
	action := &st.StakingAction{Ty: st.StakingActionStake, Stake: &st.StakeDeposit{Pool: pool}}
	return util.CreateTx(priv, st.StakingX, action, payments...)
}

func claimTx(priv crypto.PrivKey, pool string) *types.Transaction {
	action := &st.StakingAction{Ty: st.StakingActionClaim, Claim: &st.StakeClaim{Pool: pool}}
	return util.CreateTx(priv, st.StakingX, action)
}

func beneficiaryTx(priv crypto.PrivKey, addr string) *types.Transaction {
	action := &st.StakingAction{Ty: st.StakingActionSetBeneficiary, SetBeneficiary: &st.StakeBeneficiary{Address: addr}}
	return util.CreateTx(priv, st.StakingX, action)
}

func winter(amount int64) *types.Payment {
	return &types.Payment{Token: util.WinterClass, Amount: amount}
}

func (s *stakingSuite) expectErr(t *testing.T, tx *types.Transaction, msg string) {
	detail, err := s.chain.ExecAndCheck(types.ExecErr, tx)
	require.NoError(t, err)
	assert.Equal(t, msg, util.ErrLog(detail.Receipts[0]))
}

func (s *stakingSuite) getStake(t *testing.T, pool, owner string) *st.ReplyStake {
	reply, err := s.chain.Query(st.StakingX, st.FuncNameGetStake, &st.ReqStake{Pool: pool, Owner: owner})
	require.NoError(t, err)
	return reply.(*st.ReplyStake)
}

func TestRoundPoolReward(t *testing.T) {
	s := newSuite(t)
	_, err := s.chain.ExecAndCheck(types.ExecOk, stakeTx(s.priv, "wood", winter(1000)))
	require.NoError(t, err)
	anchor := s.chain.Last.Height
	assert.Equal(t, int64(9000), s.chain.Balance(util.WinterClass, 0, s.addr))

	reply := s.getStake(t, "wood", s.addr)
	assert.Equal(t, anchor, reply.Anchor)
	assert.Equal(t, anchor+600, reply.NextClaimAt)
	assert.Equal(t, int64(0), reply.Pending)
	require.Len(t, reply.Stakes, 1)
	assert.Equal(t, int64(1000), reply.Stakes[0].Amount)

	//one round short of the cooldown
	s.chain.Advance(598, 0)
	s.expectErr(t, claimTx(s.priv, "wood"), "Cooldown has not elapsed, 599 of 600 rounds")
	assert.Equal(t, int64(0), s.chain.Balance(util.WoodClass, 0, s.addr))

	//the last block is still inside the cooldown
	assert.Equal(t, int64(0), s.getStake(t, "wood", s.addr).Pending)
	_, err = s.chain.ExecAndCheck(types.ExecOk, claimTx(s.priv, "wood"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.chain.Balance(util.WoodClass, 0, s.addr))
	assert.Equal(t, s.chain.Last.Height, s.getStake(t, "wood", s.addr).LastClaimAt)

	//second immediate claim mints nothing
	s.expectErr(t, claimTx(s.priv, "wood"), "Cooldown has not elapsed, 1 of 600 rounds")
	assert.Equal(t, int64(1), s.chain.Balance(util.WoodClass, 0, s.addr))

	reply2, err := s.chain.Query(st.StakingX, st.FuncNameListClaims, &st.ReqClaims{Owner: s.addr})
	require.NoError(t, err)
	claims := reply2.(*st.ReplyClaims).Claims
	require.Len(t, claims, 1)
	assert.Equal(t, util.WoodClass, claims[0].Token)
	assert.Equal(t, int64(600), claims[0].Elapsed)
}

func TestTimePoolReward(t *testing.T) {
	s := newSuite(t)
	_, err := s.chain.ExecAndCheck(types.ExecOk, stakeTx(s.priv, "snow", winter(1000), &types.Payment{Token: winter2, Amount: 250}))
	require.NoError(t, err)
	//a later stake keeps the anchor
	anchor := s.getStake(t, "snow", s.addr).Anchor
	_, err = s.chain.ExecAndCheck(types.ExecOk, stakeTx(s.priv, "snow", winter(50)))
	require.NoError(t, err)
	reply := s.getStake(t, "snow", s.addr)
	assert.Equal(t, anchor, reply.Anchor)
	require.Len(t, reply.Stakes, 2)
	assert.Equal(t, int64(1050), reply.Stakes[0].Amount)
	assert.Equal(t, int64(250), reply.Stakes[1].Amount)

	s.chain.Advance(0, 86397)
	s.expectErr(t, claimTx(s.priv, "snow"), "Cooldown has not elapsed, 86399 of 86400 seconds")
	_, err = s.chain.ExecAndCheck(types.ExecOk, claimTx(s.priv, "snow"))
	require.NoError(t, err)
	//floor(1050/100) + floor(250/100)
	assert.Equal(t, int64(12), s.chain.Balance(util.SnowClass, 0, s.addr))

	//pools are independent
	s.expectErr(t, claimTx(s.priv, "wood"), st.ErrNothingStaked.Error())
}

func TestBeneficiary(t *testing.T) {
	s := newSuite(t)
	s.expectErr(t, beneficiaryTx(s.priv, s.addr), st.ErrSelfBeneficiary.Error())
	s.expectErr(t, beneficiaryTx(s.priv, "not an address"), types.ErrInvalidAddress.Error())
	_, err := s.chain.ExecAndCheck(types.ExecOk, beneficiaryTx(s.priv, s.other), stakeTx(s.priv, "gold", winter(7200)))
	require.NoError(t, err)
	assert.Equal(t, s.other, s.getStake(t, "gold", s.addr).Beneficiary)

	s.chain.Advance(2400, 0)
	_, err = s.chain.ExecAndCheck(types.ExecOk, claimTx(s.priv, "gold"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.chain.Balance(util.GoldClass, 0, s.other))
	assert.Equal(t, int64(0), s.chain.Balance(util.GoldClass, 0, s.addr))
}

func TestStakeChecks(t *testing.T) {
	s := newSuite(t)
	s.expectErr(t, stakeTx(s.priv, "lava", winter(10)), st.ErrPoolNotFound.Error())
	s.expectErr(t, stakeTx(s.priv, "wood"), st.ErrStakePayment.Error())
	s.expectErr(t, stakeTx(s.priv, "wood", winter(10), &types.Payment{Token: "FROST", Amount: 10}), "Only WINTER- tokens are accepted")
	s.expectErr(t, claimTx(s.priv, "wood"), st.ErrNothingStaked.Error())
	assert.Equal(t, int64(10000), s.chain.Balance(util.WinterClass, 0, s.addr))

	//too small for a reward
	_, err := s.chain.ExecAndCheck(types.ExecOk, stakeTx(s.priv, "food", winter(999)))
	require.NoError(t, err)
	s.chain.Advance(1200, 0)
	s.expectErr(t, claimTx(s.priv, "food"), st.ErrNoReward.Error())
	assert.Equal(t, int64(0), s.chain.Balance(util.FoodClass, 0, s.addr))
}

func TestLeaderboardAndPools(t *testing.T) {
	s := newSuite(t)
	_, err := s.chain.ExecAndCheck(types.ExecOk, stakeTx(s.priv, "stone", winter(1234)), stakeTx(s.opriv, "stone", winter(500)))
	require.NoError(t, err)

	reply, err := s.chain.Query(st.StakingX, st.FuncNameLeaderboard, &st.ReqLeaderboard{Pool: "stone", Class: util.WinterClass, Count: 5})
	require.NoError(t, err)
	entries := reply.(*st.ReplyLeaderboard).Entries
	require.Len(t, entries, 2)
	assert.Equal(t, s.addr, entries[0].Owner)
	assert.Equal(t, "12.34", entries[0].Formatted)
	assert.Equal(t, s.other, entries[1].Owner)
	assert.Equal(t, "5", entries[1].Formatted)

	_, err = s.chain.Query(st.StakingX, st.FuncNameLeaderboard, &st.ReqLeaderboard{Pool: "stone", Class: "NOPE-000000"})
	assert.Equal(t, types.ErrUnknownToken, err)

	reply, err = s.chain.Query(st.StakingX, st.FuncNameGetPools, &types.ReqNil{})
	require.NoError(t, err)
	pools := reply.(*st.ReplyPools).Pools
	require.Len(t, pools, 5)
	assert.Equal(t, "snow", pools[0].Name)
	assert.Equal(t, int64(86400), pools[0].Cooldown)
}

func TestConfiguredPools(t *testing.T) {
	cfg := util.TestConfig()
	registerOnce.Do(func() { Init(st.StakingX, cfg) })
	util.SetSubConfig(cfg, st.StakingX, map[string]interface{}{
		"pools": []map[string]interface{}{
			{"name": "fast", "clock": "round", "cooldown": 2, "divisor": 10, "reward": util.OreClass, "accept": "WINTER-"},
			{"name": "BAD", "clock": "round", "cooldown": 2, "divisor": 10, "reward": util.OreClass, "accept": "WINTER-"},
		},
	})
	addr, priv := util.Genaddress()
	util.AddAlloc(cfg, addr, util.WinterClass, 0, 100)
	chain, err := util.NewChain(cfg)
	require.NoError(t, err)

	reply, err := chain.Query(st.StakingX, st.FuncNameGetPools, &types.ReqNil{})
	require.NoError(t, err)
	require.Len(t, reply.(*st.ReplyPools).Pools, 1)

	_, err = chain.ExecAndCheck(types.ExecOk, stakeTx(priv, "fast", winter(100)))
	require.NoError(t, err)
	chain.Advance(1, 0)
	//ore is minted by craft only
	detail, err := chain.ExecAndCheck(types.ExecErr, claimTx(priv, "fast"))
	require.NoError(t, err)
	assert.Equal(t, types.ErrMintNotAllowed.Error(), util.ErrLog(detail.Receipts[0]))
}

func TestNodeConfigPools(t *testing.T) {
	node, err := types.InitCfg("../../../../wintergame.toml")
	require.NoError(t, err)

	cfg := util.TestConfig()
	registerOnce.Do(func() { Init(st.StakingX, cfg) })
	cfg.Exec.Sub[st.StakingX] = node.Exec.Sub[st.StakingX]
	chain, err := util.NewChain(cfg)
	require.NoError(t, err)
	reply, err := chain.Query(st.StakingX, st.FuncNameGetPools, &types.ReqNil{})
	require.NoError(t, err)
	pools := reply.(*st.ReplyPools).Pools
	defaults := st.DefaultPools()
	require.Len(t, pools, len(defaults))
	for i, p := range pools {
		assert.Equal(t, defaults[i].Name, p.Name)
		assert.Equal(t, defaults[i].Clock, p.Clock)
		assert.Equal(t, defaults[i].Cooldown, p.Cooldown)
		assert.Equal(t, defaults[i].Divisor, p.Divisor)
		assert.Equal(t, defaults[i].Reward, p.Reward)

		//every reward resolves to a node token the staking executor may mint
		var classes []string
		for _, tc := range node.Tokens {
			if strings.HasPrefix(tc.Class, p.Reward) {
				assert.Contains(t, tc.Minters, st.StakingX, tc.Class)
				classes = append(classes, tc.Class)
			}
		}
		assert.Len(t, classes, 1, p.Reward)
	}
}
