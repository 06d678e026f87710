// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	at "github.com/33cn/wintergame/plugin/dapp/arena/types"
	"github.com/33cn/wintergame/types"
)

//ExecLocal_CreateGame index the open game
func (a *Arena) ExecLocal_CreateGame(payload *at.ArenaCreate, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return a.execLocal(receipt)
}

//ExecLocal_JoinGame move the game to the staged index
func (a *Arena) ExecLocal_JoinGame(payload *at.ArenaJoin, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return a.execLocal(receipt)
}

//ExecLocal_StartFight move the game to the resolved index
func (a *Arena) ExecLocal_StartFight(payload *at.ArenaFight, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return a.execLocal(receipt)
}
