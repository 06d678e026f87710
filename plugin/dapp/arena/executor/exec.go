// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	at "github.com/33cn/wintergame/plugin/dapp/arena/types"
	"github.com/33cn/wintergame/types"
)

//Exec_CreateGame open a duel
func (a *Arena) Exec_CreateGame(payload *at.ArenaCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(a, tx, index)
	return action.createGame(payload)
}

//Exec_JoinGame take the competitor slot
func (a *Arena) Exec_JoinGame(payload *at.ArenaJoin, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(a, tx, index)
	return action.joinGame(payload)
}

//Exec_StartFight resolve a staged duel
func (a *Arena) Exec_StartFight(payload *at.ArenaFight, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(a, tx, index)
	return action.startFight(payload)
}
