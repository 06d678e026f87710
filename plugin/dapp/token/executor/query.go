// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/wintergame/account"
	dbm "github.com/33cn/wintergame/common/db"
	tt "github.com/33cn/wintergame/plugin/dapp/token/types"
	"github.com/33cn/wintergame/types"
)

//Query_GetBalance balance of any token instance
func (t *Token) Query_GetBalance(in *types.ReqBalance) (types.Message, error) {
	if in.Addr == "" {
		return nil, types.ErrInvalidAddress
	}
	if in.Token == "" {
		return nil, types.ErrInvalidParam
	}
	return account.NewTokenDB(in.Token, in.Nonce, t.GetStateDB()).LoadAccount(in.Addr), nil
}

//Query_GetIssue issue by identifier
func (t *Token) Query_GetIssue(in *tt.ReqIssue) (types.Message, error) {
	return loadIssue(t.GetStateDB(), in.Identifier)
}

//Query_ListIssues issues of a status, newest first unless asked otherwise
func (t *Token) Query_ListIssues(in *tt.ReqIssues) (types.Message, error) {
	status := in.Status
	if status == 0 {
		status = tt.IssueStatusPending
	}
	direction := dbm.ListDESC
	if in.Direction == dbm.ListASC {
		direction = dbm.ListASC
	}
	count := DefaultCount
	if 0 < in.Count && in.Count <= MaxCount {
		count = in.Count
	}
	var key []byte
	if in.Index != 0 {
		key = calcIssueStatusKey(status, in.Index)
	}
	values, err := t.GetLocalDB().List(calcIssueStatusPrefix(status), key, count, direction)
	if err == types.ErrNotFound {
		return &tt.ReplyIssues{}, nil
	}
	if err != nil {
		return nil, err
	}
	db := t.GetStateDB()
	reply := &tt.ReplyIssues{}
	for _, value := range values {
		var record tt.IssueRecord
		if err := types.Decode(value, &record); err != nil {
			continue
		}
		issue, err := loadIssue(db, record.Identifier)
		if err != nil {
			tlog.Error("ListIssues", "identifier", record.Identifier, "err", err)
			continue
		}
		reply.Issues = append(reply.Issues, issue)
	}
	return reply, nil
}

//Query_GetTokenInfo class record and supply, the class may be a unique prefix
func (t *Token) Query_GetTokenInfo(in *tt.ReqTokenInfo) (types.Message, error) {
	db := t.GetStateDB()
	tc, err := account.ResolveClass(t.GetStateLister(), db, in.Class)
	if err != nil {
		return nil, err
	}
	supply := account.LoadSupply(db, tc.Class)
	return &tt.ReplyTokenInfo{Class: tc, Supply: supply, Amount: types.FormatAmount(supply, tc.Decimals)}, nil
}

//Query_TopHolders largest holders of every fungible class under a prefix, formatted with the class decimals
func (t *Token) Query_TopHolders(in *types.ReqHolders) (types.Message, error) {
	if in.Prefix == "" {
		return nil, types.ErrInvalidParam
	}
	lister := t.GetStateLister()
	if lister == nil {
		return nil, types.ErrActionNotSupport
	}
	count := DefaultHolders
	if 0 < in.Count && in.Count <= MaxCount {
		count = in.Count
	}
	classes, err := account.ListClasses(lister, in.Prefix)
	if err != nil {
		return nil, err
	}
	reply := &types.ReplyHolders{}
	for _, tc := range classes {
		if tc.Kind != types.KindFungible {
			continue
		}
		accs, err := account.TopHolders(lister, tc.Class, int(count))
		if err != nil {
			return nil, err
		}
		for _, acc := range accs {
			reply.Holders = append(reply.Holders, &types.HolderEntry{
				Token:   tc.Class,
				Addr:    acc.Addr,
				Balance: acc.Balance,
				Amount:  types.FormatAmount(acc.Balance, tc.Decimals),
			})
		}
	}
	return reply, nil
}
