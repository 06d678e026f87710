// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/common"
	dbm "github.com/33cn/wintergame/common/db"
	at "github.com/33cn/wintergame/plugin/dapp/arena/types"
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
)

//action one arena tx, every check runs before the first write
type action struct {
	arena        *Arena
	coinsAccount *account.DB
	db           dbm.KV
	escrow       *escrow
	txhash       []byte
	fromaddr     string
	payments     []*types.Payment
	blocktime    int64
	height       int64
	seed         []byte
	execaddr     string
	index        int
}

func newAction(a *Arena, tx *types.Transaction, index int) *action {
	return &action{
		arena:        a,
		coinsAccount: a.GetCoinsAccount(),
		db:           a.GetStateDB(),
		escrow:       newEscrow(a.GetStateDB()),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		payments:     tx.Payments,
		blocktime:    a.GetBlockTime(),
		height:       a.GetHeight(),
		seed:         a.GetEnv().RandomSeed,
		execaddr:     a.GetExecAddr(),
		index:        index,
	}
}

func (action *action) getIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func (action *action) getReceiptLog(game *at.Game, prevStatus int32) *types.ReceiptLog {
	r := &at.ReceiptArena{
		GameId:     game.GameId,
		Status:     game.Status,
		PrevStatus: prevStatus,
		Addr:       action.fromaddr,
		Initiator:  game.Initiator,
		Competitor: game.Competitor,
		Index:      game.Index,
		PrevIndex:  game.PrevIndex,
	}
	ty := int32(at.TyLogArenaCreate)
	switch game.Status {
	case at.GameStatusStaged:
		ty = at.TyLogArenaJoin
	case at.GameStatusResolved:
		ty = at.TyLogArenaResolve
	}
	return types.NewLog(ty, r)
}

func (action *action) saveGame(game *at.Game) (*types.KeyValue, error) {
	kv := &types.KeyValue{Key: Key(game.GameId), Value: types.Encode(game)}
	if err := action.db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return kv, nil
}

func (action *action) feeRange() (int64, int64) {
	sub := action.arena.getSubConfig()
	minFee := mty.GetConfInt64(action.db, mty.KeyArenaMinFee, sub.MinEntranceFee)
	maxFee := mty.GetConfInt64(action.db, mty.KeyArenaMaxFee, sub.MaxEntranceFee)
	return minFee, maxFee
}

//loadUnit stats of a combat unit from the nft registry
func (action *action) loadUnit(class string, nonce uint64) (*at.CombatUnit, error) {
	if class == "" || nonce == 0 {
		return nil, at.ErrNotCombatUnit
	}
	attrs, err := account.LoadNft(action.db, class, nonce)
	if err != nil || attrs.Kind != at.UnitKindSoldier {
		return nil, at.ErrNotCombatUnit
	}
	return &at.CombatUnit{Class: class, Nonce: nonce, Attack: attrs.Attack, Defense: attrs.Defense}, nil
}

func checkGameID(id string) error {
	if id == "" || len(id) > at.MaxGameIDLen {
		return at.ErrGameID
	}
	return nil
}

func (action *action) createGame(create *at.ArenaCreate) (*types.Receipt, error) {
	if err := checkGameID(create.GameId); err != nil {
		return nil, err
	}
	if _, err := readGame(action.db, create.GameId); err == nil {
		alog.Error("createGame", "addr", action.fromaddr, "id", create.GameId, "err", at.ErrGameExist)
		return nil, at.ErrGameExist
	}
	minFee, maxFee := action.feeRange()
	if create.EntranceFee <= 0 || create.EntranceFee < minFee || create.EntranceFee > maxFee {
		alog.Error("createGame", "addr", action.fromaddr, "fee", create.EntranceFee, "min", minFee, "max", maxFee)
		return nil, at.ErrEntranceFee
	}
	coin := action.arena.GetCoinSymbol()
	if create.UnitClass == "" || create.UnitClass == coin {
		return nil, at.ErrNotCombatUnit
	}
	set, err := types.ValidatePayments(action.payments,
		types.PaymentRule{Name: coin, Exact: coin},
		types.PaymentRule{Name: create.UnitClass, Exact: create.UnitClass})
	if err != nil {
		return nil, err
	}
	if err := set.RequireMin(coin, create.EntranceFee); err != nil {
		return nil, err
	}
	units := set.Get(create.UnitClass)
	if len(units) != 1 || units[0].Nonce != create.UnitNonce || units[0].Amount != 1 {
		return nil, at.ErrUnitEscrow
	}
	unit, err := action.loadUnit(create.UnitClass, create.UnitNonce)
	if err != nil {
		return nil, err
	}

	receipt, err := action.escrow.Deposit(create.GameId, action.fromaddr, set.Total(coin))
	if err != nil {
		return nil, err
	}
	game := &at.Game{
		GameId:        create.GameId,
		Status:        at.GameStatusOpen,
		Initiator:     action.fromaddr,
		UnitInitiator: unit,
		EntranceFee:   create.EntranceFee,
		CreateTime:    action.blocktime,
		CreateTxHash:  common.ToHex(action.txhash),
		Index:         action.getIndex(),
	}
	kv, err := action.saveGame(game)
	if err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, action.getReceiptLog(game, 0))
	alog.Debug("createGame", "id", game.GameId, "initiator", game.Initiator, "fee", game.EntranceFee)
	return receipt, nil
}

func (action *action) joinGame(join *at.ArenaJoin) (*types.Receipt, error) {
	game, err := readGame(action.db, join.GameId)
	if err != nil {
		alog.Error("joinGame", "addr", action.fromaddr, "id", join.GameId, "err", err)
		return nil, at.ErrGameNotFound
	}
	if game.Status != at.GameStatusOpen || game.Completed {
		alog.Error("joinGame", "addr", action.fromaddr, "id", join.GameId, "status", game.Status)
		return nil, at.ErrGameNotOpen
	}
	if game.Initiator == action.fromaddr {
		return nil, at.ErrSelfJoin
	}
	coin := action.arena.GetCoinSymbol()
	set, err := types.ValidatePayments(action.payments, types.PaymentRule{Name: coin, Exact: coin})
	if err != nil {
		return nil, err
	}
	if err := set.RequireMin(coin, game.EntranceFee); err != nil {
		return nil, err
	}
	unit, err := action.loadUnit(join.UnitClass, join.UnitNonce)
	if err != nil {
		return nil, err
	}
	if !account.OwnsNft(action.db, unit.Class, unit.Nonce, action.fromaddr) {
		return nil, at.ErrUnitNotOwned
	}

	receipt, err := action.escrow.Deposit(game.GameId, action.fromaddr, set.Total(coin))
	if err != nil {
		return nil, err
	}
	game.Competitor = action.fromaddr
	game.UnitCompetitor = unit
	game.Status = at.GameStatusStaged
	game.PrevIndex = game.Index
	game.Index = action.getIndex()
	kv, err := action.saveGame(game)
	if err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, action.getReceiptLog(game, at.GameStatusOpen))
	return receipt, nil
}

func (action *action) startFight(fight *at.ArenaFight) (*types.Receipt, error) {
	game, err := readGame(action.db, fight.GameId)
	if err != nil {
		alog.Error("startFight", "addr", action.fromaddr, "id", fight.GameId, "err", err)
		return nil, at.ErrGameNotFound
	}
	if game.Completed || game.Status == at.GameStatusResolved {
		return nil, at.ErrGameCompleted
	}
	if game.Status != at.GameStatusStaged {
		return nil, at.ErrGameNotStaged
	}

	chance := WinChance(Score(game.UnitInitiator), Score(game.UnitCompetitor))
	random := types.SeedUint64(action.seed)
	winner, loser := game.Competitor, game.Initiator
	if InitiatorWins(random, chance) {
		winner, loser = game.Initiator, game.Competitor
	}

	expect := action.escrow.TotalOf(game.GameId, game.Initiator, game.Competitor)
	if held := action.coinsAccount.Balance(action.execaddr); held < expect {
		alog.Error("startFight", "id", game.GameId, "shares", expect, "held", held)
		return nil, types.InsufficientSupplyf("Arena holds %d %s, below the escrowed %d", held, action.coinsAccount.Token(), expect)
	}
	pot, receipt, err := action.escrow.Settle(game.GameId, game.Initiator, game.Competitor)
	if err != nil {
		return nil, err
	}
	if pot != expect {
		alog.Error("startFight", "id", game.GameId, "shares", expect, "pot", pot)
		return nil, types.StateConflictf("Pot %d does not match the escrowed %d", pot, expect)
	}
	if pot > 0 {
		r, err := action.coinsAccount.Transfer(action.execaddr, winner, pot)
		if err != nil {
			alog.Error("startFight.Transfer", "id", game.GameId, "winner", winner, "pot", pot, "err", err)
			return nil, err
		}
		receipt = types.AppendReceipt(receipt, r)
	}
	unit := game.UnitInitiator
	r, err := action.arena.GetAccount(unit.Class, unit.Nonce).Transfer(action.execaddr, winner, 1)
	if err != nil {
		alog.Error("startFight.TransferUnit", "id", game.GameId, "unit", types.TokenKey(unit.Class, unit.Nonce), "err", err)
		return nil, err
	}
	receipt = types.AppendReceipt(receipt, r)

	game.Completed = true
	game.Status = at.GameStatusResolved
	game.Winner = winner
	game.Pot = pot
	game.Random = random
	game.Chance = chance
	game.FightTime = action.blocktime
	game.PrevIndex = game.Index
	game.Index = action.getIndex()
	kv, err := action.saveGame(game)
	if err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, action.getReceiptLog(game, at.GameStatusStaged))
	flog := &at.ReceiptFight{
		GameId:    game.GameId,
		Winner:    winner,
		Loser:     loser,
		Pot:       pot,
		Random:    random,
		Chance:    chance,
		UnitClass: unit.Class,
		UnitNonce: unit.Nonce,
	}
	receipt.Logs = append(receipt.Logs, types.NewLog(at.TyLogArenaFight, flog))
	alog.Info("startFight", "id", game.GameId, "winner", winner, "pot", pot, "chance", chance, "random", random)
	return receipt, nil
}

func readGame(db dbm.KV, id string) (*at.Game, error) {
	data, err := db.Get(Key(id))
	if err != nil {
		return nil, err
	}
	var game at.Game
	if err := types.Decode(data, &game); err != nil {
		alog.Error("decode game", "id", id, "err", err)
		return nil, err
	}
	return &game, nil
}

//getGameList 安全批量查询, 跳过读不出的记录
func getGameList(db dbm.KV, ids []string) []*at.Game {
	var games []*at.Game
	for _, id := range ids {
		game, err := readGame(db, id)
		if err != nil {
			continue
		}
		games = append(games, game)
	}
	return games
}

func listGames(localDB dbm.KVDB, stateDB dbm.KV, param *at.ReqGameList) (types.Message, error) {
	switch param.Status {
	case at.GameStatusOpen, at.GameStatusStaged, at.GameStatusResolved:
	default:
		return nil, at.ErrStatus
	}
	direction := dbm.ListDESC
	if param.Direction == dbm.ListASC {
		direction = dbm.ListASC
	}
	count := DefaultCount
	if 0 < param.Count && param.Count <= MaxCount {
		count = param.Count
	}
	var prefix, key []byte
	if param.Addr == "" {
		prefix = calcGameStatusIndexPrefix(param.Status)
		key = calcGameStatusIndexKey(param.Status, param.Index)
	} else {
		prefix = calcGameAddrIndexPrefix(param.Status, param.Addr)
		key = calcGameAddrIndexKey(param.Status, param.Addr, param.Index)
	}
	if param.Index == 0 {
		key = nil
	}
	values, err := localDB.List(prefix, key, count, direction)
	if err == types.ErrNotFound {
		return &at.ReplyGameList{}, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, value := range values {
		var record at.GameRecord
		if err := types.Decode(value, &record); err != nil {
			continue
		}
		ids = append(ids, record.GameId)
	}
	return &at.ReplyGameList{Games: getGameList(stateDB, ids)}, nil
}
