// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	ct "github.com/33cn/wintergame/plugin/dapp/craft/types"
	drivers "github.com/33cn/wintergame/system/dapp"
	"github.com/33cn/wintergame/types"
	lru "github.com/hashicorp/golang-lru"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.craft")

var driverName = ct.CraftX

//list limits
const (
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

var (
	defaultCatalog = ct.DefaultCatalog()
	//parsed catalog files by path
	catalogCache, _ = lru.New(16)
)

type subConfig struct {
	Catalog string `json:"catalog"`
}

//Init register the driver, a configured catalog file must load
func Init(name string, cfg *types.Config) {
	sub := &subConfig{}
	cfg.MustDecodeSubConfig(driverName, sub)
	if sub.Catalog != "" {
		if _, err := loadCatalog(sub.Catalog); err != nil {
			panic(err)
		}
	}
	drivers.Register(GetName(), newCraft)
}

func loadCatalog(path string) (*ct.Catalog, error) {
	if c, ok := catalogCache.Get(path); ok {
		return c.(*ct.Catalog), nil
	}
	c, err := ct.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	catalogCache.Add(path, c)
	clog.Info("loadCatalog", "path", path, "workflows", len(c.Workflows))
	return c, nil
}

//GetName driver name
func GetName() string {
	return newCraft().GetName()
}

//Craft request/claim crafting executor
type Craft struct {
	drivers.DriverBase
}

func newCraft() drivers.Driver {
	c := &Craft{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

//GetDriverName driver name
func (c *Craft) GetDriverName() string {
	return driverName
}

//catalog workflows of [exec.sub.craft] catalog, the built in ones when unset
func (c *Craft) catalog() (*ct.Catalog, error) {
	sub := &subConfig{}
	if cfg := c.GetConfig(); cfg != nil {
		cfg.MustDecodeSubConfig(driverName, sub)
	}
	if sub.Catalog == "" {
		return defaultCatalog, nil
	}
	return loadCatalog(sub.Catalog)
}

func (c *Craft) getWorkflow(name string) (*ct.Workflow, error) {
	catalog, err := c.catalog()
	if err != nil {
		return nil, err
	}
	return catalog.Get(name)
}

func requestKey(owner, workflow string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-request-%s-%s", ct.CraftX, owner, workflow))
}

func calcCraftKey(owner string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-craft-claim:%s:%018d", owner, index))
}

func calcCraftPrefix(owner string) []byte {
	return []byte(fmt.Sprintf("LODB-craft-claim:%s:", owner))
}

func (c *Craft) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != ct.TyLogCraftClaim {
			continue
		}
		var rlog ct.ReceiptCraftClaim
		if err := types.Decode(item.Log, &rlog); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, &types.KeyValue{Key: calcCraftKey(rlog.Owner, rlog.Index), Value: item.Log})
	}
	return set, nil
}
