// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
)

//coins actions
const (
	CoinsActionTransfer     = 1
	CoinsActionGenesis      = 2
	CoinsActionGenesisClass = 3
)

var (
	//CoinsX driver name
	CoinsX = types.CoinsX
	//ExecerCoins driver name bytes
	ExecerCoins = []byte(CoinsX)
	actionName  = map[string]int32{
		"Transfer":     CoinsActionTransfer,
		"Genesis":      CoinsActionGenesis,
		"GenesisClass": CoinsActionGenesisClass,
	}
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

//CoinsType executor type of coins
type CoinsType struct {
	types.ExecTypeBase
}

//NewType new
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

//GetName driver name
func (c *CoinsType) GetName() string {
	return CoinsX
}

//GetPayload empty payload
func (c *CoinsType) GetPayload() types.Message {
	return &CoinsAction{}
}

//GetLogMap coins only emits system logs
func (c *CoinsType) GetLogMap() map[int64]*types.LogInfo {
	return nil
}

//GetTypeMap action name to ty
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}
