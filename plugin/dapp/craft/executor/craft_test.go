// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/common/crypto"
	ct "github.com/33cn/wintergame/plugin/dapp/craft/types"
	"github.com/33cn/wintergame/types"
	"github.com/33cn/wintergame/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registerOnce sync.Once

type craftSuite struct {
	chain *util.Chain
	addr  string
	priv  crypto.PrivKey
	other string
	opriv crypto.PrivKey
}

func newSuite(t *testing.T, cfg *types.Config) *craftSuite {
	registerOnce.Do(func() { Init(ct.CraftX, cfg) })
	s := &craftSuite{}
	s.addr, s.priv = util.Genaddress()
	s.other, s.opriv = util.Genaddress()
	for class, amount := range map[string]int64{
		util.StoneClass: 100,
		util.WoodClass:  50,
		util.FoodClass:  50,
		util.GoldClass:  20,
		util.OreClass:   10,
	} {
		util.AddAlloc(cfg, s.addr, class, 0, amount)
		util.AddAlloc(cfg, s.other, class, 0, amount)
	}
	util.AddAlloc(cfg, s.addr, "", 0, 10*types.Coin)
	chain, err := util.NewChain(cfg)
	require.NoError(t, err)
	s.chain = chain
	return s
}

func requestTx(priv crypto.PrivKey, workflow string, payments ...*types.Payment) *types.Transaction {
	action := &ct.CraftAction{Ty: ct.CraftActionRequest, Request: &ct.CraftRequest{Workflow: workflow}}
	return util.CreateTx(priv, ct.CraftX, action, payments...)
}

func upgradeTx(priv crypto.PrivKey, workflow, class string, nonce uint64, payments ...*types.Payment) *types.Transaction {
	action := &ct.CraftAction{
		Ty:      ct.CraftActionRequest,
		Request: &ct.CraftRequest{Workflow: workflow, TargetClass: class, TargetNonce: nonce},
	}
	return util.CreateTx(priv, ct.CraftX, action, payments...)
}

func claimTx(priv crypto.PrivKey, workflow string) *types.Transaction {
	action := &ct.CraftAction{Ty: ct.CraftActionClaim, Claim: &ct.CraftClaim{Workflow: workflow}}
	return util.CreateTx(priv, ct.CraftX, action)
}

func pay(class string, amount int64) *types.Payment {
	return &types.Payment{Token: class, Amount: amount}
}

func (s *craftSuite) expectErr(t *testing.T, tx *types.Transaction, msg string) {
	detail, err := s.chain.ExecAndCheck(types.ExecErr, tx)
	require.NoError(t, err)
	assert.Equal(t, msg, util.ErrLog(detail.Receipts[0]))
}

func (s *craftSuite) getRequest(t *testing.T, owner, workflow string) *ct.ReplyCraftRequest {
	reply, err := s.chain.Query(ct.CraftX, ct.FuncNameGetRequest, &ct.ReqCraftRequest{Owner: owner, Workflow: workflow})
	require.NoError(t, err)
	return reply.(*ct.ReplyCraftRequest)
}

func (s *craftSuite) claimAfterDelay(t *testing.T, priv crypto.PrivKey, workflows ...string) *types.BlockDetail {
	s.chain.Advance(0, 3600)
	txs := make([]*types.Transaction, 0, len(workflows))
	for _, w := range workflows {
		txs = append(txs, claimTx(priv, w))
	}
	detail, err := s.chain.ExecAndCheck(types.ExecOk, txs...)
	require.NoError(t, err)
	return detail
}

func TestRequestBelowMinimum(t *testing.T) {
	s := newSuite(t, util.TestConfig())
	s.expectErr(t, requestTx(s.priv, "shield", pay(util.OreClass, 1)), "Insufficient ORE tokens")
	assert.Equal(t, int64(10), s.chain.Balance(util.OreClass, 0, s.addr))
	assert.Equal(t, int64(20), account.LoadSupply(s.chain.StateDB(), util.OreClass))
	assert.False(t, s.getRequest(t, s.addr, "shield").Pending)
}

func TestOreLifecycle(t *testing.T) {
	s := newSuite(t, util.TestConfig())
	_, err := s.chain.ExecAndCheck(types.ExecOk, requestTx(s.priv, "ore", pay(util.StoneClass, 15), pay(util.StoneClass, 10)))
	require.NoError(t, err)
	requestedAt := s.chain.Last.BlockTime
	assert.Equal(t, int64(75), s.chain.Balance(util.StoneClass, 0, s.addr))
	assert.Equal(t, int64(175), account.LoadSupply(s.chain.StateDB(), util.StoneClass))

	reply := s.getRequest(t, s.addr, "ore")
	require.True(t, reply.Pending)
	assert.Equal(t, requestedAt, reply.Request.RequestedAt)
	assert.Equal(t, requestedAt+3600, reply.ReadyAt)
	assert.False(t, reply.Ready)
	require.Len(t, reply.Request.Burned, 2)

	s.expectErr(t, requestTx(s.priv, "ore", pay(util.StoneClass, 20)), ct.ErrRequestPending.Error())
	assert.Equal(t, int64(75), s.chain.Balance(util.StoneClass, 0, s.addr))

	s.chain.Advance(0, 3597)
	s.expectErr(t, claimTx(s.priv, "ore"), "Delay has not elapsed, 3599 of 3600 seconds")
	assert.Equal(t, int64(10), s.chain.Balance(util.OreClass, 0, s.addr))
	assert.True(t, s.getRequest(t, s.addr, "ore").Pending)

	_, err = s.chain.ExecAndCheck(types.ExecOk, claimTx(s.priv, "ore"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), s.chain.Balance(util.OreClass, 0, s.addr))
	assert.False(t, s.getRequest(t, s.addr, "ore").Pending)

	//the request is cleared
	s.expectErr(t, claimTx(s.priv, "ore"), ct.ErrNoRequest.Error())
	assert.Equal(t, int64(11), s.chain.Balance(util.OreClass, 0, s.addr))

	reply2, err := s.chain.Query(ct.CraftX, ct.FuncNameListCrafts, &ct.ReqCraftHistory{Owner: s.addr})
	require.NoError(t, err)
	claims := reply2.(*ct.ReplyCraftHistory).Claims
	require.Len(t, claims, 1)
	assert.Equal(t, util.OreClass, claims[0].Class)
	assert.Equal(t, int64(3600), claims[0].Elapsed)
	assert.Equal(t, ct.OutputMint, claims[0].Output)
}

func TestRequestChecks(t *testing.T) {
	s := newSuite(t, util.TestConfig())
	s.expectErr(t, requestTx(s.priv, "ore", pay(util.StoneClass, 20), pay("FROST", types.Coin)), "Only STONE tokens are accepted")
	s.expectErr(t, requestTx(s.priv, "citizen", pay(util.WoodClass, 10)), "FOOD token is missing")
	s.expectErr(t, requestTx(s.priv, "citizen", pay(util.WoodClass, 9), pay(util.FoodClass, 15)), "Insufficient WOOD tokens")
	s.expectErr(t, requestTx(s.priv, "citizen"), "WOOD token is missing")
	s.expectErr(t, requestTx(s.priv, "castle", pay(util.WoodClass, 10)), ct.ErrWorkflowNotFound.Error())
	s.expectErr(t, upgradeTx(s.priv, "ore", util.CitizenClass, 1, pay(util.StoneClass, 20)), ct.ErrTarget.Error())
	s.expectErr(t, upgradeTx(s.priv, "soldier", util.CitizenClass, 1, pay(util.GoldClass, 5), pay(util.OreClass, 5)), ct.ErrTarget.Error())
	s.expectErr(t, claimTx(s.priv, "citizen"), ct.ErrNoRequest.Error())

	assert.Equal(t, int64(100), s.chain.Balance(util.StoneClass, 0, s.addr))
	assert.Equal(t, int64(50), s.chain.Balance(util.WoodClass, 0, s.addr))
	assert.Equal(t, int64(10), s.chain.Balance(util.OreClass, 0, s.addr))
}

func TestUnitUpgradeChain(t *testing.T) {
	s := newSuite(t, util.TestConfig())
	_, err := s.chain.ExecAndCheck(types.ExecOk,
		requestTx(s.priv, "citizen", pay(util.WoodClass, 10), pay(util.FoodClass, 15)),
		requestTx(s.priv, "shield", pay(util.OreClass, 2)),
	)
	require.NoError(t, err)
	s.claimAfterDelay(t, s.priv, "citizen", "shield")

	citizen := account.LastNonce(s.chain.StateDB(), util.CitizenClass)
	require.Equal(t, uint64(1), citizen)
	assert.Equal(t, int64(1), s.chain.Balance(util.CitizenClass, citizen, s.addr))
	attrs, err := account.LoadNft(s.chain.StateDB(), util.CitizenClass, citizen)
	require.NoError(t, err)
	assert.Equal(t, "CITIZEN", attrs.Kind)
	assert.Equal(t, ct.CraftX, attrs.Creator)

	shield := account.LastNonce(s.chain.StateDB(), util.ShieldClass)
	shieldAttrs, err := account.LoadNft(s.chain.StateDB(), util.ShieldClass, shield)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), shieldAttrs.Defense)

	//equip needs a soldier
	s.expectErr(t, upgradeTx(s.priv, "equip", util.CitizenClass, citizen, &types.Payment{Token: util.ShieldClass, Nonce: shield, Amount: 1}), ct.ErrTarget.Error())
	//someone else's citizen
	s.expectErr(t, upgradeTx(s.opriv, "soldier", util.CitizenClass, citizen, pay(util.GoldClass, 5), pay(util.OreClass, 5)), ct.ErrTargetNotOwned.Error())

	_, err = s.chain.ExecAndCheck(types.ExecOk, upgradeTx(s.priv, "soldier", util.CitizenClass, citizen, pay(util.GoldClass, 5), pay(util.OreClass, 5)))
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.chain.Balance(util.OreClass, 0, s.addr))
	s.claimAfterDelay(t, s.priv, "soldier")
	seed := s.chain.Last.RandomSeed
	attrs, err = account.LoadNft(s.chain.StateDB(), util.CitizenClass, citizen)
	require.NoError(t, err)
	assert.Equal(t, "SOLDIER", attrs.Kind)
	assert.Equal(t, uint32(10+ct.StatSeed(seed, ct.StatAttack)%10), attrs.Attack)
	assert.Equal(t, uint32(5+ct.StatSeed(seed, ct.StatDefense)%5), attrs.Defense)
	defense := attrs.Defense

	_, err = s.chain.ExecAndCheck(types.ExecOk, upgradeTx(s.priv, "equip", util.CitizenClass, citizen, &types.Payment{Token: util.ShieldClass, Nonce: shield, Amount: 1}))
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.chain.Balance(util.ShieldClass, shield, s.addr))
	assert.Equal(t, uint32(5), s.getRequest(t, s.addr, "equip").Request.Bonus)
	s.claimAfterDelay(t, s.priv, "equip")
	attrs, err = account.LoadNft(s.chain.StateDB(), util.CitizenClass, citizen)
	require.NoError(t, err)
	assert.Equal(t, defense+5, attrs.Defense)
	assert.Equal(t, "SOLDIER", attrs.Kind)
}

func TestCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	raw := `
workflows:
  - name: plank
    clock: round
    delay: 10
    inputs:
      - {exact: WOOD-7d3e21, min: 3}
    output: {type: mint, class: ORE-3f7c35, amount: 2}
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))
	cfg := util.TestConfig()
	util.SetSubConfig(cfg, ct.CraftX, map[string]interface{}{"catalog": path})
	s := newSuite(t, cfg)

	reply, err := s.chain.Query(ct.CraftX, ct.FuncNameListWorkflows, &types.ReqNil{})
	require.NoError(t, err)
	workflows := reply.(*ct.ReplyWorkflows).Workflows
	require.Len(t, workflows, 1)
	assert.Equal(t, "plank", workflows[0].Name)

	s.expectErr(t, requestTx(s.priv, "ore", pay(util.StoneClass, 20)), ct.ErrWorkflowNotFound.Error())
	_, err = s.chain.ExecAndCheck(types.ExecOk, requestTx(s.priv, "plank", pay(util.WoodClass, 3)))
	require.NoError(t, err)
	s.chain.Advance(8, 0)
	s.expectErr(t, claimTx(s.priv, "plank"), "Delay has not elapsed, 9 of 10 rounds")
	_, err = s.chain.ExecAndCheck(types.ExecOk, claimTx(s.priv, "plank"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), s.chain.Balance(util.OreClass, 0, s.addr))
	assert.Equal(t, int64(47), s.chain.Balance(util.WoodClass, 0, s.addr))
}

func TestListWorkflowsDefault(t *testing.T) {
	s := newSuite(t, util.TestConfig())
	reply, err := s.chain.Query(ct.CraftX, ct.FuncNameListWorkflows, &types.ReqNil{})
	require.NoError(t, err)
	workflows := reply.(*ct.ReplyWorkflows).Workflows
	require.Len(t, workflows, 5)
	assert.Equal(t, "ore", workflows[0].Name)
	assert.Equal(t, "STONE-", workflows[0].Inputs[0].Prefix)

	_, err = s.chain.Query(ct.CraftX, ct.FuncNameGetRequest, &ct.ReqCraftRequest{Workflow: "ore"})
	assert.Equal(t, types.ErrInvalidAddress, err)
}
