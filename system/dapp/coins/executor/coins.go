// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 内置货币的执行器

Transfer     -> 转移原生货币
Genesis      -> 创世分配, 仅高度 0
GenesisClass -> 创世注册 token 类型, 仅高度 0
*/

import (
	drivers "github.com/33cn/wintergame/system/dapp"
	cty "github.com/33cn/wintergame/system/dapp/coins/types"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var (
	clog       = log.New("module", "execs.coins")
	driverName = cty.CoinsX
)

//Init register the driver
func Init(name string, cfg *types.Config) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newCoins)
}

//GetName driver name
func GetName() string {
	return newCoins().GetName()
}

//Coins native currency executor
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

//GetDriverName driver name
func (c *Coins) GetDriverName() string {
	return driverName
}

//CheckTx genesis txs are unsigned and only valid at height 0
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	if err := c.DriverBase.CheckTx(tx, index); err != nil {
		return err
	}
	action := c.GetActionName(tx)
	if (action == "Genesis" || action == "GenesisClass") && c.GetHeight() != 0 {
		return types.ErrGenesisHeight
	}
	return nil
}
