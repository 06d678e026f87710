// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"
	"testing"

	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/common/crypto"
	at "github.com/33cn/wintergame/plugin/dapp/arena/types"
	drivers "github.com/33cn/wintergame/system/dapp"
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
	"github.com/33cn/wintergame/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coin = "FROST"

var registerOnce sync.Once

type player struct {
	addr string
	priv crypto.PrivKey
	unit uint64
}

type arenaSuite struct {
	chain     *util.Chain
	alice     *player
	bob       *player
	carol     *player
	execaddr  string
	initFunds int64
}

func newSuite(t *testing.T, setup func(cfg *types.Config, s *arenaSuite)) *arenaSuite {
	cfg := util.TestConfig()
	registerOnce.Do(func() { Init(at.ArenaX, cfg) })
	s := &arenaSuite{initFunds: 1000 * types.Coin, execaddr: drivers.ExecAddress(at.ArenaX)}
	for _, p := range []**player{&s.alice, &s.bob, &s.carol} {
		addr, priv := util.Genaddress()
		*p = &player{addr: addr, priv: priv}
		util.AddAlloc(cfg, addr, "", 0, s.initFunds)
		util.AddAlloc(cfg, addr, util.WinterClass, 0, 1000)
	}
	if setup != nil {
		setup(cfg, s)
	}
	chain, err := util.NewChain(cfg)
	require.NoError(t, err)
	s.chain = chain

	s.alice.unit = s.mintUnit(t, s.alice.addr, 10, 5)
	s.bob.unit = s.mintUnit(t, s.bob.addr, 5, 5)
	return s
}

func (s *arenaSuite) mintUnit(t *testing.T, owner string, attack, defense uint32) uint64 {
	nonce, err := s.chain.MintNft("craft", owner, &types.NftAttributes{
		Class:   util.CitizenClass,
		Kind:    at.UnitKindSoldier,
		Attack:  attack,
		Defense: defense,
	})
	require.NoError(t, err)
	return nonce
}

func createTx(p *player, id string, fee int64, payments ...*types.Payment) *types.Transaction {
	action := &at.ArenaAction{
		Ty:         at.ArenaActionCreateGame,
		CreateGame: &at.ArenaCreate{GameId: id, UnitClass: util.CitizenClass, UnitNonce: p.unit, EntranceFee: fee},
	}
	return util.CreateTx(p.priv, at.ArenaX, action, payments...)
}

func joinTx(p *player, id string, nonce uint64, payments ...*types.Payment) *types.Transaction {
	action := &at.ArenaAction{
		Ty:       at.ArenaActionJoinGame,
		JoinGame: &at.ArenaJoin{GameId: id, UnitClass: util.CitizenClass, UnitNonce: nonce},
	}
	return util.CreateTx(p.priv, at.ArenaX, action, payments...)
}

func fightTx(p *player, id string) *types.Transaction {
	action := &at.ArenaAction{Ty: at.ArenaActionStartFight, StartFight: &at.ArenaFight{GameId: id}}
	return util.CreateTx(p.priv, at.ArenaX, action)
}

func coins(amount int64) *types.Payment {
	return &types.Payment{Token: coin, Amount: amount}
}

func unit(nonce uint64) *types.Payment {
	return &types.Payment{Token: util.CitizenClass, Nonce: nonce, Amount: 1}
}

func (s *arenaSuite) game(t *testing.T, id string) *at.Game {
	reply, err := s.chain.Query(at.ArenaX, at.FuncNameGetGame, &at.ReqGame{GameId: id})
	require.NoError(t, err)
	return reply.(*at.Game)
}

func (s *arenaSuite) listGames(t *testing.T, status int32, addr string) []*at.Game {
	reply, err := s.chain.Query(at.ArenaX, at.FuncNameListGames, &at.ReqGameList{Status: status, Addr: addr})
	require.NoError(t, err)
	return reply.(*at.ReplyGameList).Games
}

func (s *arenaSuite) deposit(t *testing.T, addr string) int64 {
	reply, err := s.chain.Query(at.ArenaX, at.FuncNameGetDeposit, &types.ReqString{Data: addr})
	require.NoError(t, err)
	return reply.(*at.Deposit).Amount
}

func (s *arenaSuite) expectErr(t *testing.T, tx *types.Transaction, msg string) {
	detail, err := s.chain.ExecAndCheck(types.ExecErr, tx)
	require.NoError(t, err)
	assert.Equal(t, msg, util.ErrLog(detail.Receipts[0]))
}

func TestDuelLifecycle(t *testing.T) {
	s := newSuite(t, nil)
	chain := s.chain
	fee := int64(100)

	_, err := chain.ExecAndCheck(types.ExecOk, createTx(s.alice, "duel-1", fee, coins(fee), unit(s.alice.unit)))
	require.NoError(t, err)
	game := s.game(t, "duel-1")
	assert.Equal(t, at.GameStatusOpen, game.Status)
	assert.Equal(t, s.alice.addr, game.Initiator)
	assert.Equal(t, uint32(10), game.UnitInitiator.Attack)
	assert.Equal(t, s.initFunds-fee, chain.Balance(coin, 0, s.alice.addr))
	assert.Equal(t, fee, chain.Balance(coin, 0, s.execaddr))
	assert.Equal(t, int64(1), chain.Balance(util.CitizenClass, s.alice.unit, s.execaddr))
	assert.Equal(t, fee, s.deposit(t, s.alice.addr))
	assert.Len(t, s.listGames(t, at.GameStatusOpen, ""), 1)
	assert.Len(t, s.listGames(t, at.GameStatusOpen, s.alice.addr), 1)

	_, err = chain.ExecAndCheck(types.ExecOk, joinTx(s.bob, "duel-1", s.bob.unit, coins(fee)))
	require.NoError(t, err)
	game = s.game(t, "duel-1")
	assert.Equal(t, at.GameStatusStaged, game.Status)
	assert.Equal(t, s.bob.addr, game.Competitor)
	assert.Len(t, s.listGames(t, at.GameStatusOpen, ""), 0)
	assert.Len(t, s.listGames(t, at.GameStatusStaged, s.bob.addr), 1)
	assert.Equal(t, 2*fee, chain.Balance(coin, 0, s.execaddr))
	//the competitor keeps the unit
	assert.Equal(t, int64(1), chain.Balance(util.CitizenClass, s.bob.unit, s.bob.addr))

	//funds of both players plus the executor are conserved
	total := chain.Balance(coin, 0, s.alice.addr) + chain.Balance(coin, 0, s.bob.addr) + chain.Balance(coin, 0, s.execaddr)
	assert.Equal(t, 2*s.initFunds, total)

	//anybody may resolve
	detail, err := chain.ExecAndCheck(types.ExecOk, fightTx(s.carol, "duel-1"))
	require.NoError(t, err)
	game = s.game(t, "duel-1")
	assert.True(t, game.Completed)
	assert.Equal(t, at.GameStatusResolved, game.Status)
	assert.Equal(t, int64(50), game.Chance)
	assert.Equal(t, 2*fee, game.Pot)
	assert.Equal(t, types.SeedUint64(chain.Last.RandomSeed), game.Random)

	winner, loser := s.bob.addr, s.alice.addr
	if InitiatorWins(game.Random, game.Chance) {
		winner, loser = s.alice.addr, s.bob.addr
	}
	assert.Equal(t, winner, game.Winner)
	assert.Equal(t, s.initFunds+fee, chain.Balance(coin, 0, winner))
	assert.Equal(t, s.initFunds-fee, chain.Balance(coin, 0, loser))
	assert.Equal(t, int64(0), chain.Balance(coin, 0, s.execaddr))
	assert.Equal(t, int64(1), chain.Balance(util.CitizenClass, s.alice.unit, winner))
	assert.Equal(t, int64(0), chain.Balance(util.CitizenClass, s.alice.unit, s.execaddr))
	assert.Equal(t, int64(0), s.deposit(t, s.alice.addr))
	assert.Equal(t, int64(0), s.deposit(t, s.bob.addr))

	var fought bool
	for _, l := range detail.Receipts[0].Logs {
		if l.Ty != at.TyLogArenaFight {
			continue
		}
		var rf at.ReceiptFight
		require.NoError(t, types.Decode(l.Log, &rf))
		assert.Equal(t, winner, rf.Winner)
		assert.Equal(t, loser, rf.Loser)
		fought = true
	}
	assert.True(t, fought)
	assert.Len(t, s.listGames(t, at.GameStatusStaged, ""), 0)
	assert.Len(t, s.listGames(t, at.GameStatusResolved, ""), 1)
	assert.Len(t, s.listGames(t, at.GameStatusResolved, s.alice.addr), 1)

	//resolved games stay resolved
	s.expectErr(t, fightTx(s.alice, "duel-1"), at.ErrGameCompleted.Error())
	s.expectErr(t, joinTx(s.carol, "duel-1", s.bob.unit, coins(fee)), at.ErrGameNotOpen.Error())
	assert.Equal(t, s.initFunds+fee, chain.Balance(coin, 0, winner))
}

func TestCreateGameChecks(t *testing.T) {
	s := newSuite(t, nil)
	fee := int64(100)

	s.expectErr(t, createTx(s.alice, "", fee, coins(fee), unit(s.alice.unit)), at.ErrGameID.Error())
	s.expectErr(t, createTx(s.alice, "g", 0, unit(s.alice.unit)), at.ErrEntranceFee.Error())
	s.expectErr(t, createTx(s.alice, "g", fee, unit(s.alice.unit)), coin+" token is missing")
	s.expectErr(t, createTx(s.alice, "g", fee, coins(fee-1), unit(s.alice.unit)), "Insufficient "+coin+" tokens")
	s.expectErr(t, createTx(s.alice, "g", fee, coins(fee)), at.ErrUnitEscrow.Error())
	s.expectErr(t, createTx(s.alice, "g", fee, coins(fee), &types.Payment{Token: util.WinterClass, Amount: 1}),
		"Only "+coin+" and "+util.CitizenClass+" tokens are accepted")
	//unit owned by somebody else never reaches the executor
	bad := createTx(s.alice, "g", fee, coins(fee), unit(s.bob.unit))
	s.expectErr(t, bad, "Insufficient "+types.TokenKey(util.CitizenClass, s.bob.unit)+" balance")

	//a citizen that is not a soldier
	worker, err := s.chain.MintNft("craft", s.alice.addr, &types.NftAttributes{Class: util.CitizenClass, Kind: "WORKER"})
	require.NoError(t, err)
	soldier := s.alice.unit
	s.alice.unit = worker
	s.expectErr(t, createTx(s.alice, "g", fee, coins(fee), unit(worker)), at.ErrNotCombatUnit.Error())
	s.alice.unit = soldier

	//failed creations leave the funds with the caller
	assert.Equal(t, s.initFunds, s.chain.Balance(coin, 0, s.alice.addr))
	assert.Equal(t, int64(0), s.chain.Balance(coin, 0, s.execaddr))

	_, err = s.chain.ExecAndCheck(types.ExecOk, createTx(s.alice, "g", fee, coins(fee), unit(s.alice.unit)))
	require.NoError(t, err)
	s.expectErr(t, createTx(s.bob, "g", fee, coins(fee), unit(s.bob.unit)), at.ErrGameExist.Error())
}

func TestJoinAndFightChecks(t *testing.T) {
	s := newSuite(t, nil)
	fee := int64(100)
	_, err := s.chain.ExecAndCheck(types.ExecOk, createTx(s.alice, "g", fee, coins(fee), unit(s.alice.unit)))
	require.NoError(t, err)

	s.expectErr(t, joinTx(s.bob, "nothing", s.bob.unit, coins(fee)), at.ErrGameNotFound.Error())
	s.expectErr(t, joinTx(s.alice, "g", s.alice.unit, coins(fee)), at.ErrSelfJoin.Error())
	s.expectErr(t, joinTx(s.bob, "g", s.bob.unit, coins(fee-1)), "Insufficient "+coin+" tokens")
	s.expectErr(t, joinTx(s.bob, "g", s.bob.unit), coin+" token is missing")
	s.expectErr(t, joinTx(s.carol, "g", s.bob.unit, coins(fee)), at.ErrUnitNotOwned.Error())
	s.expectErr(t, joinTx(s.bob, "g", 99, coins(fee)), at.ErrNotCombatUnit.Error())
	s.expectErr(t, fightTx(s.bob, "g"), at.ErrGameNotStaged.Error())
	s.expectErr(t, fightTx(s.bob, "nothing"), at.ErrGameNotFound.Error())

	//overpaying escrows the whole payment and the winner takes it
	_, err = s.chain.ExecAndCheck(types.ExecOk, joinTx(s.bob, "g", s.bob.unit, coins(fee+50)))
	require.NoError(t, err)
	assert.Equal(t, fee+50, s.deposit(t, s.bob.addr))
	_, err = s.chain.ExecAndCheck(types.ExecOk, fightTx(s.bob, "g"))
	require.NoError(t, err)
	game := s.game(t, "g")
	assert.Equal(t, 2*fee+50, game.Pot)
	assert.Equal(t, int64(0), s.chain.Balance(coin, 0, s.execaddr))
}

func TestEntranceFeeLimits(t *testing.T) {
	var manager *player
	s := newSuite(t, func(cfg *types.Config, s *arenaSuite) {
		util.SetSubConfig(cfg, at.ArenaX, map[string]interface{}{"minEntranceFee": 10, "maxEntranceFee": 1000})
		util.SetSubConfig(cfg, mty.ManageX, map[string]interface{}{"superManager": []string{s.carol.addr}})
		manager = s.carol
	})
	s.expectErr(t, createTx(s.alice, "g", 5, coins(5), unit(s.alice.unit)), at.ErrEntranceFee.Error())
	s.expectErr(t, createTx(s.alice, "g", 1001, coins(1001), unit(s.alice.unit)), at.ErrEntranceFee.Error())

	_, err := s.chain.ExecAndCheck(types.ExecOk, util.CreateManageTx(manager.priv, mty.KeyArenaMaxFee, mty.OpAdd, "5000"))
	require.NoError(t, err)
	_, err = s.chain.ExecAndCheck(types.ExecOk, createTx(s.alice, "g", 1001, coins(1001), unit(s.alice.unit)))
	require.NoError(t, err)
}

func TestQueryErrors(t *testing.T) {
	s := newSuite(t, nil)
	_, err := s.chain.Query(at.ArenaX, at.FuncNameGetGame, &at.ReqGame{GameId: "none"})
	assert.Equal(t, at.ErrGameNotFound, err)
	_, err = s.chain.Query(at.ArenaX, at.FuncNameListGames, &at.ReqGameList{Status: 9})
	assert.Equal(t, at.ErrStatus, err)
	assert.Len(t, s.listGames(t, at.GameStatusResolved, ""), 0)
}

func TestJoinStagedGame(t *testing.T) {
	s := newSuite(t, nil)
	fee := int64(100)
	s.carol.unit = s.mintUnit(t, s.carol.addr, 7, 7)
	_, err := s.chain.ExecAndCheck(types.ExecOk, createTx(s.alice, "g", fee, coins(fee), unit(s.alice.unit)))
	require.NoError(t, err)
	_, err = s.chain.ExecAndCheck(types.ExecOk, joinTx(s.bob, "g", s.bob.unit, coins(fee)))
	require.NoError(t, err)
	before := s.game(t, "g")

	//no second competitor once staged
	s.expectErr(t, joinTx(s.carol, "g", s.carol.unit, coins(fee)), at.ErrGameNotOpen.Error())
	s.expectErr(t, joinTx(s.bob, "g", s.bob.unit, coins(fee)), at.ErrGameNotOpen.Error())

	after := s.game(t, "g")
	assert.Equal(t, at.GameStatusStaged, after.Status)
	assert.Equal(t, s.bob.addr, after.Competitor)
	assert.Equal(t, before.UnitCompetitor.Attack, after.UnitCompetitor.Attack)
	assert.Equal(t, s.initFunds, s.chain.Balance(coin, 0, s.carol.addr))
	assert.Equal(t, int64(0), s.deposit(t, s.carol.addr))
	assert.Equal(t, fee, s.deposit(t, s.bob.addr))
	assert.Equal(t, 2*fee, s.chain.Balance(coin, 0, s.execaddr))
}

func TestFightSeedIgnoresTx(t *testing.T) {
	s := newSuite(t, nil)
	tx := fightTx(s.bob, "g")
	seed := s.chain.NextBlock([]*types.Transaction{tx}).RandomSeed
	//re-signing the fight with other nonces cannot move the roll
	for i := int64(0); i < 200; i++ {
		tx.Nonce = i
		tx.Sign(s.bob.priv)
		assert.Equal(t, seed, s.chain.NextBlock([]*types.Transaction{tx}).RandomSeed)
	}
	assert.True(t, types.VerifySeed(s.chain.Producer.PubKey(), s.chain.Last.RandomSeed, s.chain.NextBlock(nil)))
}

func TestFightNeedsBackedPot(t *testing.T) {
	s := newSuite(t, nil)
	fee := int64(100)
	_, err := s.chain.ExecAndCheck(types.ExecOk, createTx(s.alice, "g", fee, coins(fee), unit(s.alice.unit)))
	require.NoError(t, err)
	_, err = s.chain.ExecAndCheck(types.ExecOk, joinTx(s.bob, "g", s.bob.unit, coins(fee)))
	require.NoError(t, err)
	assert.Equal(t, 2*fee, s.chain.Balance(coin, 0, s.execaddr))

	//the arena address lost funds behind the ledger's back
	stateDB := s.chain.StateDB()
	acc := account.NewTokenDB(coin, 0, stateDB)
	held := acc.LoadAccount(s.execaddr)
	held.Balance = fee
	require.NoError(t, acc.SaveAccount(held))
	util.SaveKVList(s.chain.DB, stateDB.KVs())

	s.expectErr(t, fightTx(s.bob, "g"), "Arena holds 100 FROST, below the escrowed 200")
	game := s.game(t, "g")
	assert.Equal(t, at.GameStatusStaged, game.Status)
	assert.Equal(t, fee, s.deposit(t, s.alice.addr))
	assert.Equal(t, fee, s.deposit(t, s.bob.addr))
}
