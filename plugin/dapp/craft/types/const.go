// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
)

//craft action ty
const (
	CraftActionRequest = iota + 1
	CraftActionClaim
)

//craft log ty
const (
	TyLogCraftRequest = 721
	TyLogCraftClaim   = 722
)

//query names
const (
	FuncNameGetRequest    = "GetRequest"
	FuncNameListWorkflows = "ListWorkflows"
	FuncNameListCrafts    = "ListCrafts"
)

//workflow outputs
const (
	//OutputMint fungible mint of Amount
	OutputMint = "mint"
	//OutputNft new nft instance
	OutputNft = "nft"
	//OutputUpgrade attribute change of the target nft
	OutputUpgrade = "upgrade"
)

//rolled stats, salt of StatSeed
const (
	StatAttack  = "attack"
	StatDefense = "defense"
)

//CraftX driver name
const CraftX = types.CraftX

var (
	//ExecerCraft driver name bytes
	ExecerCraft = []byte(CraftX)
)
