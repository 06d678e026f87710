// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	at "github.com/33cn/wintergame/plugin/dapp/arena/types"
	"github.com/33cn/wintergame/types"
)

//Query_GetGame game by id
func (a *Arena) Query_GetGame(in *at.ReqGame) (types.Message, error) {
	if err := checkGameID(in.GameId); err != nil {
		return nil, err
	}
	game, err := readGame(a.GetStateDB(), in.GameId)
	if err != nil {
		return nil, at.ErrGameNotFound
	}
	return game, nil
}

//Query_ListGames page of games by status and address
func (a *Arena) Query_ListGames(in *at.ReqGameList) (types.Message, error) {
	return listGames(a.GetLocalDB(), a.GetStateDB(), in)
}

//Query_GetDeposit escrowed total of an address
func (a *Arena) Query_GetDeposit(in *types.ReqString) (types.Message, error) {
	if in.Data == "" {
		return nil, types.ErrInvalidAddress
	}
	return &at.Deposit{Addr: in.Data, Amount: newEscrow(a.GetStateDB()).BalanceOf(in.Data)}, nil
}
