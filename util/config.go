// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"github.com/33cn/wintergame/types"
)

//token classes of the test config
const (
	WinterClass  = "WINTER-1a2b3c"
	SnowClass    = "SNOW-5f2c1a"
	WoodClass    = "WOOD-7d3e21"
	FoodClass    = "FOOD-8c4f02"
	StoneClass   = "STONE-9b5a13"
	GoldClass    = "GOLD-0e6b24"
	OreClass     = "ORE-3f7c35"
	CitizenClass = "CITIZEN-4a8d46"
	ShieldClass  = "SHIELD-5b9e57"
)

//TestConfigString node config used by tests and the in process node
var TestConfigString = `
title = "wintergame-test"

[log]
loglevel = "error"
logConsoleLevel = "error"
logFile = ""

[blockchain]
driver = "memdb"
dbPath = ""
blockInterval = 1
roundsPerEpoch = 100

[rpc]
jrpcBindAddr = "localhost:0"
whitelist = ["127.0.0.1"]

[coin]
symbol = "FROST"
decimals = 8

[genesis]
blockTime = 1700000000

[[token]]
class = "WINTER-1a2b3c"
name = "Winter"
decimals = 2
tier = "stake"

[[token]]
class = "SNOW-5f2c1a"
name = "Snow"
decimals = 2
tier = "reward"
minters = ["staking", "token"]

[[token]]
class = "WOOD-7d3e21"
name = "Wood"
tier = "resource"
minters = ["staking", "craft"]

[[token]]
class = "FOOD-8c4f02"
name = "Food"
tier = "resource"
minters = ["staking", "craft"]

[[token]]
class = "STONE-9b5a13"
name = "Stone"
tier = "resource"
minters = ["staking", "craft"]

[[token]]
class = "GOLD-0e6b24"
name = "Gold"
tier = "resource"
minters = ["staking", "craft"]

[[token]]
class = "ORE-3f7c35"
name = "Ore"
tier = "refined"
minters = ["craft"]

[[token]]
class = "CITIZEN-4a8d46"
name = "Citizen"
kind = "nft"
tier = "unit"
minters = ["craft"]

[[token]]
class = "SHIELD-5b9e57"
name = "Shield"
kind = "nft"
tier = "tool"
minters = ["craft"]
`

//TestConfig parsed TestConfigString, panics on a broken config
func TestConfig() *types.Config {
	cfg, err := types.InitCfgString(TestConfigString)
	if err != nil {
		panic(err)
	}
	return cfg
}

//AddAlloc add a genesis allocation to cfg
func AddAlloc(cfg *types.Config, addr, token string, nonce uint64, amount int64) {
	cfg.Genesis.Allocations = append(cfg.Genesis.Allocations, &types.GenesisAlloc{
		Addr:   addr,
		Token:  token,
		Nonce:  nonce,
		Amount: amount,
	})
}

//SetSubConfig set [exec.sub.<name>]
func SetSubConfig(cfg *types.Config, name string, sub interface{}) {
	cfg.Exec.Sub[name] = sub
}
