// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
)

//token action ty
const (
	TokenActionIssue = iota + 1
	TokenActionComplete
	TokenActionReject
	TokenActionTransfer
	TokenActionBurn
)

//token log ty
const (
	TyLogTokenIssue    = 731
	TyLogTokenComplete = 732
	TyLogTokenReject   = 733
	TyLogTokenTransfer = 734
)

//issue status
const (
	IssueStatusPending  = 1
	IssueStatusComplete = 2
	IssueStatusRejected = 3
)

//query names
const (
	FuncNameGetBalance   = "GetBalance"
	FuncNameGetIssue     = "GetIssue"
	FuncNameListIssues   = "ListIssues"
	FuncNameGetTokenInfo = "GetTokenInfo"
	FuncNameTopHolders   = "TopHolders"
)

//DefaultIssueCost issuance fee in coin units, 0.05 coin
const DefaultIssueCost = types.Coin / 20

//MaxDecimals decimals accepted for an issued token
const MaxDecimals = 18

//TokenX driver name
const TokenX = types.TokenX

var (
	//ExecerToken driver name bytes
	ExecerToken = []byte(TokenX)
)

//StatusName printable issue status
func StatusName(status int32) string {
	switch status {
	case IssueStatusPending:
		return "pending"
	case IssueStatusComplete:
		return "complete"
	case IssueStatusRejected:
		return "rejected"
	}
	return "unknown"
}
