// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
manage 负责管理配置
 1. 超级管理员修改配置项
 1. 其他合约读取配置项
*/

import (
	drivers "github.com/33cn/wintergame/system/dapp"
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var (
	clog       = log.New("module", "execs.manage")
	driverName = mty.ManageX
)

type subConfig struct {
	SuperManager []string `json:"superManager"`
}

//Init register the driver
func Init(name string, cfg *types.Config) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newManage)
}

//GetName driver name
func GetName() string {
	return newManage().GetName()
}

//Manage config executor
type Manage struct {
	drivers.DriverBase
}

func newManage() drivers.Driver {
	c := &Manage{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

//GetDriverName driver name
func (c *Manage) GetDriverName() string {
	return driverName
}

func (c *Manage) getSubConfig() *subConfig {
	var sub subConfig
	if cfg := c.GetConfig(); cfg != nil {
		cfg.MustDecodeSubConfig(driverName, &sub)
	}
	return &sub
}

//IsSuperManager addr listed in [exec.sub.manage] superManager
func (c *Manage) IsSuperManager(addr string) bool {
	for _, m := range c.getSubConfig().SuperManager {
		if addr == m {
			return true
		}
	}
	return false
}
