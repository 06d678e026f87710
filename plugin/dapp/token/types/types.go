// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/33cn/wintergame/types"
)

func init() {
	types.RegistorExecutor(TokenX, NewType())
}

//NewType new
func NewType() *TokenType {
	c := &TokenType{}
	c.SetChild(c)
	return c
}

//TokenType executor type of token
type TokenType struct {
	types.ExecTypeBase
}

//GetName driver name
func (t *TokenType) GetName() string {
	return TokenX
}

//GetLogMap receipt logs
func (t *TokenType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogTokenIssue:    {Ty: reflect.TypeOf(ReceiptIssue{}), Name: "LogTokenIssue"},
		TyLogTokenComplete: {Ty: reflect.TypeOf(ReceiptIssue{}), Name: "LogTokenComplete"},
		TyLogTokenReject:   {Ty: reflect.TypeOf(ReceiptIssue{}), Name: "LogTokenReject"},
		TyLogTokenTransfer: {Ty: reflect.TypeOf(ReceiptTokenTransfer{}), Name: "LogTokenTransfer"},
	}
}

//GetPayload empty payload
func (t *TokenType) GetPayload() types.Message {
	return &TokenAction{}
}

//GetTypeMap action name to ty
func (t *TokenType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Issue":    TokenActionIssue,
		"Complete": TokenActionComplete,
		"Reject":   TokenActionReject,
		"Transfer": TokenActionTransfer,
		"Burn":     TokenActionBurn,
	}
}
