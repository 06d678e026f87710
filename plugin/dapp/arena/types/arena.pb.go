// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//ArenaAction arena payload, Ty selects the action
type ArenaAction struct {
	Ty         int32        `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	CreateGame *ArenaCreate `protobuf:"bytes,2,opt,name=create_game,proto3" json:"createGame,omitempty"`
	JoinGame   *ArenaJoin   `protobuf:"bytes,3,opt,name=join_game,proto3" json:"joinGame,omitempty"`
	StartFight *ArenaFight  `protobuf:"bytes,4,opt,name=start_fight,proto3" json:"startFight,omitempty"`
}

func (m *ArenaAction) Reset()         { *m = ArenaAction{} }
func (m *ArenaAction) String() string { return proto.CompactTextString(m) }
func (*ArenaAction) ProtoMessage()    {}

//GetTy getter
func (m *ArenaAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetCreateGame getter
func (m *ArenaAction) GetCreateGame() *ArenaCreate {
	if m != nil {
		return m.CreateGame
	}
	return nil
}

//GetJoinGame getter
func (m *ArenaAction) GetJoinGame() *ArenaJoin {
	if m != nil {
		return m.JoinGame
	}
	return nil
}

//GetStartFight getter
func (m *ArenaAction) GetStartFight() *ArenaFight {
	if m != nil {
		return m.StartFight
	}
	return nil
}

//ArenaCreate open a duel, the fielded unit and the entrance fee are attached as payments
type ArenaCreate struct {
	GameId      string `protobuf:"bytes,1,opt,name=game_id,proto3" json:"gameId,omitempty"`
	UnitClass   string `protobuf:"bytes,2,opt,name=unit_class,proto3" json:"unitClass,omitempty"`
	UnitNonce   uint64 `protobuf:"varint,3,opt,name=unit_nonce,proto3" json:"unitNonce,omitempty"`
	EntranceFee int64  `protobuf:"varint,4,opt,name=entrance_fee,proto3" json:"entranceFee,omitempty"`
}

func (m *ArenaCreate) Reset()         { *m = ArenaCreate{} }
func (m *ArenaCreate) String() string { return proto.CompactTextString(m) }
func (*ArenaCreate) ProtoMessage()    {}

//GetGameId getter
func (m *ArenaCreate) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

//GetUnitClass getter
func (m *ArenaCreate) GetUnitClass() string {
	if m != nil {
		return m.UnitClass
	}
	return ""
}

//GetUnitNonce getter
func (m *ArenaCreate) GetUnitNonce() uint64 {
	if m != nil {
		return m.UnitNonce
	}
	return 0
}

//GetEntranceFee getter
func (m *ArenaCreate) GetEntranceFee() int64 {
	if m != nil {
		return m.EntranceFee
	}
	return 0
}

//ArenaJoin take the competitor slot of an open duel
type ArenaJoin struct {
	GameId    string `protobuf:"bytes,1,opt,name=game_id,proto3" json:"gameId,omitempty"`
	UnitClass string `protobuf:"bytes,2,opt,name=unit_class,proto3" json:"unitClass,omitempty"`
	UnitNonce uint64 `protobuf:"varint,3,opt,name=unit_nonce,proto3" json:"unitNonce,omitempty"`
}

func (m *ArenaJoin) Reset()         { *m = ArenaJoin{} }
func (m *ArenaJoin) String() string { return proto.CompactTextString(m) }
func (*ArenaJoin) ProtoMessage()    {}

//GetGameId getter
func (m *ArenaJoin) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

//GetUnitClass getter
func (m *ArenaJoin) GetUnitClass() string {
	if m != nil {
		return m.UnitClass
	}
	return ""
}

//GetUnitNonce getter
func (m *ArenaJoin) GetUnitNonce() uint64 {
	if m != nil {
		return m.UnitNonce
	}
	return 0
}

//ArenaFight resolve a staged duel
type ArenaFight struct {
	GameId string `protobuf:"bytes,1,opt,name=game_id,proto3" json:"gameId,omitempty"`
}

func (m *ArenaFight) Reset()         { *m = ArenaFight{} }
func (m *ArenaFight) String() string { return proto.CompactTextString(m) }
func (*ArenaFight) ProtoMessage()    {}

//GetGameId getter
func (m *ArenaFight) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

//CombatUnit fielded unit with the stats read when it entered the duel
type CombatUnit struct {
	Class   string `protobuf:"bytes,1,opt,name=class,proto3" json:"class,omitempty"`
	Nonce   uint64 `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Attack  uint32 `protobuf:"varint,3,opt,name=attack,proto3" json:"attack,omitempty"`
	Defense uint32 `protobuf:"varint,4,opt,name=defense,proto3" json:"defense,omitempty"`
}

func (m *CombatUnit) Reset()         { *m = CombatUnit{} }
func (m *CombatUnit) String() string { return proto.CompactTextString(m) }
func (*CombatUnit) ProtoMessage()    {}

//GetClass getter
func (m *CombatUnit) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetNonce getter
func (m *CombatUnit) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

//GetAttack getter
func (m *CombatUnit) GetAttack() uint32 {
	if m != nil {
		return m.Attack
	}
	return 0
}

//GetDefense getter
func (m *CombatUnit) GetDefense() uint32 {
	if m != nil {
		return m.Defense
	}
	return 0
}

//Game duel record
type Game struct {
	GameId         string      `protobuf:"bytes,1,opt,name=game_id,proto3" json:"gameId,omitempty"`
	Status         int32       `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	Initiator      string      `protobuf:"bytes,3,opt,name=initiator,proto3" json:"initiator,omitempty"`
	Competitor     string      `protobuf:"bytes,4,opt,name=competitor,proto3" json:"competitor,omitempty"`
	UnitInitiator  *CombatUnit `protobuf:"bytes,5,opt,name=unit_initiator,proto3" json:"unitInitiator,omitempty"`
	UnitCompetitor *CombatUnit `protobuf:"bytes,6,opt,name=unit_competitor,proto3" json:"unitCompetitor,omitempty"`
	EntranceFee    int64       `protobuf:"varint,7,opt,name=entrance_fee,proto3" json:"entranceFee,omitempty"`
	Completed      bool        `protobuf:"varint,8,opt,name=completed,proto3" json:"completed,omitempty"`
	Winner         string      `protobuf:"bytes,9,opt,name=winner,proto3" json:"winner,omitempty"`
	Pot            int64       `protobuf:"varint,10,opt,name=pot,proto3" json:"pot,omitempty"`
	Random         uint64      `protobuf:"varint,11,opt,name=random,proto3" json:"random,omitempty"`
	Chance         int64       `protobuf:"varint,12,opt,name=chance,proto3" json:"chance,omitempty"`
	CreateTime     int64       `protobuf:"varint,13,opt,name=create_time,proto3" json:"createTime,omitempty"`
	FightTime      int64       `protobuf:"varint,14,opt,name=fight_time,proto3" json:"fightTime,omitempty"`
	CreateTxHash   string      `protobuf:"bytes,15,opt,name=create_tx_hash,proto3" json:"createTxHash,omitempty"`
	Index          int64       `protobuf:"varint,16,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex      int64       `protobuf:"varint,17,opt,name=prev_index,proto3" json:"prevIndex,omitempty"`
}

func (m *Game) Reset()         { *m = Game{} }
func (m *Game) String() string { return proto.CompactTextString(m) }
func (*Game) ProtoMessage()    {}

//GetGameId getter
func (m *Game) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

//GetStatus getter
func (m *Game) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

//GetInitiator getter
func (m *Game) GetInitiator() string {
	if m != nil {
		return m.Initiator
	}
	return ""
}

//GetCompetitor getter
func (m *Game) GetCompetitor() string {
	if m != nil {
		return m.Competitor
	}
	return ""
}

//GetUnitInitiator getter
func (m *Game) GetUnitInitiator() *CombatUnit {
	if m != nil {
		return m.UnitInitiator
	}
	return nil
}

//GetUnitCompetitor getter
func (m *Game) GetUnitCompetitor() *CombatUnit {
	if m != nil {
		return m.UnitCompetitor
	}
	return nil
}

//GetEntranceFee getter
func (m *Game) GetEntranceFee() int64 {
	if m != nil {
		return m.EntranceFee
	}
	return 0
}

//GetCompleted getter
func (m *Game) GetCompleted() bool {
	if m != nil {
		return m.Completed
	}
	return false
}

//GetWinner getter
func (m *Game) GetWinner() string {
	if m != nil {
		return m.Winner
	}
	return ""
}

//GetPot getter
func (m *Game) GetPot() int64 {
	if m != nil {
		return m.Pot
	}
	return 0
}

//GetRandom getter
func (m *Game) GetRandom() uint64 {
	if m != nil {
		return m.Random
	}
	return 0
}

//GetChance getter
func (m *Game) GetChance() int64 {
	if m != nil {
		return m.Chance
	}
	return 0
}

//GetCreateTime getter
func (m *Game) GetCreateTime() int64 {
	if m != nil {
		return m.CreateTime
	}
	return 0
}

//GetFightTime getter
func (m *Game) GetFightTime() int64 {
	if m != nil {
		return m.FightTime
	}
	return 0
}

//GetCreateTxHash getter
func (m *Game) GetCreateTxHash() string {
	if m != nil {
		return m.CreateTxHash
	}
	return ""
}

//GetIndex getter
func (m *Game) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//GetPrevIndex getter
func (m *Game) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

//Deposit escrow balance of an account, total over every open duel
type Deposit struct {
	Addr   string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Deposit) Reset()         { *m = Deposit{} }
func (m *Deposit) String() string { return proto.CompactTextString(m) }
func (*Deposit) ProtoMessage()    {}

//GetAddr getter
func (m *Deposit) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

//GetAmount getter
func (m *Deposit) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//ReceiptArena duel state change, feeds the local indexes
type ReceiptArena struct {
	GameId     string `protobuf:"bytes,1,opt,name=game_id,proto3" json:"gameId,omitempty"`
	Status     int32  `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	PrevStatus int32  `protobuf:"varint,3,opt,name=prev_status,proto3" json:"prevStatus,omitempty"`
	Addr       string `protobuf:"bytes,4,opt,name=addr,proto3" json:"addr,omitempty"`
	Initiator  string `protobuf:"bytes,5,opt,name=initiator,proto3" json:"initiator,omitempty"`
	Competitor string `protobuf:"bytes,6,opt,name=competitor,proto3" json:"competitor,omitempty"`
	Index      int64  `protobuf:"varint,7,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex  int64  `protobuf:"varint,8,opt,name=prev_index,proto3" json:"prevIndex,omitempty"`
}

func (m *ReceiptArena) Reset()         { *m = ReceiptArena{} }
func (m *ReceiptArena) String() string { return proto.CompactTextString(m) }
func (*ReceiptArena) ProtoMessage()    {}

//GetGameId getter
func (m *ReceiptArena) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

//GetStatus getter
func (m *ReceiptArena) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

//GetPrevStatus getter
func (m *ReceiptArena) GetPrevStatus() int32 {
	if m != nil {
		return m.PrevStatus
	}
	return 0
}

//GetAddr getter
func (m *ReceiptArena) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

//GetInitiator getter
func (m *ReceiptArena) GetInitiator() string {
	if m != nil {
		return m.Initiator
	}
	return ""
}

//GetCompetitor getter
func (m *ReceiptArena) GetCompetitor() string {
	if m != nil {
		return m.Competitor
	}
	return ""
}

//GetIndex getter
func (m *ReceiptArena) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//GetPrevIndex getter
func (m *ReceiptArena) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

//ReceiptDeposit escrow change of one account in one duel
type ReceiptDeposit struct {
	GameId  string `protobuf:"bytes,1,opt,name=game_id,proto3" json:"gameId,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Share   int64  `protobuf:"varint,3,opt,name=share,proto3" json:"share,omitempty"`
	Prev    int64  `protobuf:"varint,4,opt,name=prev,proto3" json:"prev,omitempty"`
	Current int64  `protobuf:"varint,5,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptDeposit) Reset()         { *m = ReceiptDeposit{} }
func (m *ReceiptDeposit) String() string { return proto.CompactTextString(m) }
func (*ReceiptDeposit) ProtoMessage()    {}

//GetGameId getter
func (m *ReceiptDeposit) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

//GetAddr getter
func (m *ReceiptDeposit) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

//GetShare getter
func (m *ReceiptDeposit) GetShare() int64 {
	if m != nil {
		return m.Share
	}
	return 0
}

//GetPrev getter
func (m *ReceiptDeposit) GetPrev() int64 {
	if m != nil {
		return m.Prev
	}
	return 0
}

//GetCurrent getter
func (m *ReceiptDeposit) GetCurrent() int64 {
	if m != nil {
		return m.Current
	}
	return 0
}

//ReceiptFight resolution of a duel
type ReceiptFight struct {
	GameId    string `protobuf:"bytes,1,opt,name=game_id,proto3" json:"gameId,omitempty"`
	Winner    string `protobuf:"bytes,2,opt,name=winner,proto3" json:"winner,omitempty"`
	Loser     string `protobuf:"bytes,3,opt,name=loser,proto3" json:"loser,omitempty"`
	Pot       int64  `protobuf:"varint,4,opt,name=pot,proto3" json:"pot,omitempty"`
	Random    uint64 `protobuf:"varint,5,opt,name=random,proto3" json:"random,omitempty"`
	Chance    int64  `protobuf:"varint,6,opt,name=chance,proto3" json:"chance,omitempty"`
	UnitClass string `protobuf:"bytes,7,opt,name=unit_class,proto3" json:"unitClass,omitempty"`
	UnitNonce uint64 `protobuf:"varint,8,opt,name=unit_nonce,proto3" json:"unitNonce,omitempty"`
}

func (m *ReceiptFight) Reset()         { *m = ReceiptFight{} }
func (m *ReceiptFight) String() string { return proto.CompactTextString(m) }
func (*ReceiptFight) ProtoMessage()    {}

//GetGameId getter
func (m *ReceiptFight) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

//GetWinner getter
func (m *ReceiptFight) GetWinner() string {
	if m != nil {
		return m.Winner
	}
	return ""
}

//GetLoser getter
func (m *ReceiptFight) GetLoser() string {
	if m != nil {
		return m.Loser
	}
	return ""
}

//GetPot getter
func (m *ReceiptFight) GetPot() int64 {
	if m != nil {
		return m.Pot
	}
	return 0
}

//GetRandom getter
func (m *ReceiptFight) GetRandom() uint64 {
	if m != nil {
		return m.Random
	}
	return 0
}

//GetChance getter
func (m *ReceiptFight) GetChance() int64 {
	if m != nil {
		return m.Chance
	}
	return 0
}

//GetUnitClass getter
func (m *ReceiptFight) GetUnitClass() string {
	if m != nil {
		return m.UnitClass
	}
	return ""
}

//GetUnitNonce getter
func (m *ReceiptFight) GetUnitNonce() uint64 {
	if m != nil {
		return m.UnitNonce
	}
	return 0
}

//GameRecord local index value
type GameRecord struct {
	GameId string `protobuf:"bytes,1,opt,name=game_id,proto3" json:"gameId,omitempty"`
	Index  int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *GameRecord) Reset()         { *m = GameRecord{} }
func (m *GameRecord) String() string { return proto.CompactTextString(m) }
func (*GameRecord) ProtoMessage()    {}

//GetGameId getter
func (m *GameRecord) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

//GetIndex getter
func (m *GameRecord) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//ReqGame game by id
type ReqGame struct {
	GameId string `protobuf:"bytes,1,opt,name=game_id,proto3" json:"gameId,omitempty"`
}

func (m *ReqGame) Reset()         { *m = ReqGame{} }
func (m *ReqGame) String() string { return proto.CompactTextString(m) }
func (*ReqGame) ProtoMessage()    {}

//GetGameId getter
func (m *ReqGame) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

//ReqGameList page of games by status, optionally of one address
type ReqGameList struct {
	Status    int32  `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Addr      string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Count     int32  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,4,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,5,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqGameList) Reset()         { *m = ReqGameList{} }
func (m *ReqGameList) String() string { return proto.CompactTextString(m) }
func (*ReqGameList) ProtoMessage()    {}

//GetStatus getter
func (m *ReqGameList) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

//GetAddr getter
func (m *ReqGameList) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

//GetCount getter
func (m *ReqGameList) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

//GetDirection getter
func (m *ReqGameList) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

//GetIndex getter
func (m *ReqGameList) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//ReplyGameList page of games
type ReplyGameList struct {
	Games []*Game `protobuf:"bytes,1,rep,name=games,proto3" json:"games,omitempty"`
}

func (m *ReplyGameList) Reset()         { *m = ReplyGameList{} }
func (m *ReplyGameList) String() string { return proto.CompactTextString(m) }
func (*ReplyGameList) ProtoMessage()    {}

//GetGames getter
func (m *ReplyGameList) GetGames() []*Game {
	if m != nil {
		return m.Games
	}
	return nil
}
