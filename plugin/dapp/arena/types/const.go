// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//arena action ty
const (
	ArenaActionCreateGame = iota + 1
	ArenaActionJoinGame
	ArenaActionStartFight
)

//game status: Open 1 -> Staged 2 -> Resolved 3
const (
	GameStatusOpen = int32(iota + 1)
	GameStatusStaged
	GameStatusResolved
)

//arena log ty
const (
	TyLogArenaCreate  = 701
	TyLogArenaJoin    = 702
	TyLogArenaResolve = 703
	TyLogArenaDeposit = 704
	TyLogArenaFight   = 705
)

//query names
const (
	FuncNameGetGame    = "GetGame"
	FuncNameListGames  = "ListGames"
	FuncNameGetDeposit = "GetDeposit"
)

const (
	//ArenaX driver name
	ArenaX = "arena"
	//UnitKindSoldier nft kind allowed to fight
	UnitKindSoldier = "SOLDIER"
	//MaxGameIDLen longest accepted game id
	MaxGameIDLen = 64
)

var (
	//ExecerArena driver name bytes
	ExecerArena = []byte(ArenaX)
)
