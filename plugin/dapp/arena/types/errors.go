// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
)

var (
	//ErrGameID empty or oversized game id
	ErrGameID = types.NewError(types.ErrValidation, "ErrGameID")
	//ErrGameExist game id already in use
	ErrGameExist = types.StateConflictf("Game id is already in use")
	//ErrGameNotFound no game with this id
	ErrGameNotFound = types.StateConflictf("Game does not exist")
	//ErrGameNotOpen join on a staged or resolved game
	ErrGameNotOpen = types.StateConflictf("Game is not open")
	//ErrGameNotStaged fight on an open game
	ErrGameNotStaged = types.StateConflictf("Game is not staged")
	//ErrGameCompleted fight on a resolved game
	ErrGameCompleted = types.StateConflictf("Game is already completed")
	//ErrSelfJoin initiator joining its own game
	ErrSelfJoin = types.Validationf("Can't join a game you created")
	//ErrEntranceFee fee outside the configured range
	ErrEntranceFee = types.Validationf("Entrance fee out of range")
	//ErrUnitEscrow the unit payment is not exactly one fielded unit
	ErrUnitEscrow = types.Validationf("Exactly one fielded unit must be attached")
	//ErrNotCombatUnit the nft is not a soldier
	ErrNotCombatUnit = types.Validationf("Unit is not a combat unit")
	//ErrUnitNotOwned competitor does not hold the unit
	ErrUnitNotOwned = types.Validationf("Unit is not owned by the caller")
	//ErrStatus unknown status in a list query
	ErrStatus = types.NewError(types.ErrValidation, "ErrStatus")
)
