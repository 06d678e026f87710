// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", CraftX)

func init() {
	types.RegistorExecutor(CraftX, NewType())
}

//NewType new
func NewType() *CraftType {
	c := &CraftType{}
	c.SetChild(c)
	return c
}

//CraftType executor type of craft
type CraftType struct {
	types.ExecTypeBase
}

//GetName driver name
func (ct *CraftType) GetName() string {
	return CraftX
}

//GetLogMap receipt logs
func (ct *CraftType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogCraftRequest: {Ty: reflect.TypeOf(ReceiptCraftRequest{}), Name: "LogCraftRequest"},
		TyLogCraftClaim:   {Ty: reflect.TypeOf(ReceiptCraftClaim{}), Name: "LogCraftClaim"},
	}
}

//GetPayload empty payload
func (ct *CraftType) GetPayload() types.Message {
	return &CraftAction{}
}

//GetTypeMap action name to ty
func (ct *CraftType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Request": CraftActionRequest,
		"Claim":   CraftActionClaim,
	}
}
