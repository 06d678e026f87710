// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
)

//manage actions
const (
	ManageActionModifyConfig = 1
)

//config ops
const (
	OpAdd    = "add"
	OpDelete = "delete"
)

//config item keys read by other dapps
const (
	KeyArenaMinFee  = "arena-min-fee"
	KeyArenaMaxFee  = "arena-max-fee"
	KeyTokenManager = "token-manager"
)

var (
	//ManageX driver name
	ManageX    = types.ManageX
	actionName = map[string]int32{
		"Modify": ManageActionModifyConfig,
	}
)

func init() {
	types.RegistorExecutor(ManageX, NewType())
}

//ManageType executor type of manage
type ManageType struct {
	types.ExecTypeBase
}

//NewType new
func NewType() *ManageType {
	c := &ManageType{}
	c.SetChild(c)
	return c
}

//GetName driver name
func (m *ManageType) GetName() string {
	return ManageX
}

//GetPayload empty payload
func (m *ManageType) GetPayload() types.Message {
	return &ManageAction{}
}

//GetLogMap manage only emits system logs
func (m *ManageType) GetLogMap() map[int64]*types.LogInfo {
	return nil
}

//GetTypeMap action name to ty
func (m *ManageType) GetTypeMap() map[string]int32 {
	return actionName
}
