// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", ArenaX)

func init() {
	types.RegistorExecutor(ArenaX, NewType())
}

//NewType new
func NewType() *ArenaType {
	c := &ArenaType{}
	c.SetChild(c)
	return c
}

//ArenaType executor type of arena
type ArenaType struct {
	types.ExecTypeBase
}

//GetName driver name
func (at *ArenaType) GetName() string {
	return ArenaX
}

//GetLogMap receipt logs
func (at *ArenaType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogArenaCreate:  {Ty: reflect.TypeOf(ReceiptArena{}), Name: "LogArenaCreate"},
		TyLogArenaJoin:    {Ty: reflect.TypeOf(ReceiptArena{}), Name: "LogArenaJoin"},
		TyLogArenaResolve: {Ty: reflect.TypeOf(ReceiptArena{}), Name: "LogArenaResolve"},
		TyLogArenaDeposit: {Ty: reflect.TypeOf(ReceiptDeposit{}), Name: "LogArenaDeposit"},
		TyLogArenaFight:   {Ty: reflect.TypeOf(ReceiptFight{}), Name: "LogArenaFight"},
	}
}

//GetPayload empty payload
func (at *ArenaType) GetPayload() types.Message {
	return &ArenaAction{}
}

//GetTypeMap action name to ty
func (at *ArenaType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"CreateGame": ArenaActionCreateGame,
		"JoinGame":   ArenaActionJoinGame,
		"StartFight": ArenaActionStartFight,
	}
}

//StatusName printable game status
func StatusName(status int32) string {
	switch status {
	case GameStatusOpen:
		return "open"
	case GameStatusStaged:
		return "staged"
	case GameStatusResolved:
		return "resolved"
	}
	tlog.Debug("StatusName", "status", status)
	return "unknown"
}
