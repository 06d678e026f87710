// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"sort"
	"strings"

	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
)

//TopHolders largest non zero balances of a token key, ties ordered by address
func TopHolders(db dbm.Lister, token string, count int) ([]*types.Account, error) {
	kvs, err := db.PrefixScan([]byte(SymbolPrefix(token)))
	if err != nil {
		return nil, err
	}
	accs := make([]*types.Account, 0, len(kvs))
	for _, kv := range kvs {
		var acc types.Account
		if err := types.Decode(kv.Value, &acc); err != nil {
			return nil, err
		}
		if acc.Balance <= 0 || acc.Token != token {
			continue
		}
		accs = append(accs, &acc)
	}
	sort.Slice(accs, func(i, j int) bool {
		if accs[i].Balance != accs[j].Balance {
			return accs[i].Balance > accs[j].Balance
		}
		return accs[i].Addr < accs[j].Addr
	})
	if count > 0 && len(accs) > count {
		accs = accs[:count]
	}
	return accs, nil
}

//ListClasses registered classes whose identifier starts with prefix
func ListClasses(db dbm.Lister, prefix string) ([]*types.TokenClass, error) {
	kvs, err := db.PrefixScan([]byte(ClassPrefix + prefix))
	if err != nil {
		return nil, err
	}
	classes := make([]*types.TokenClass, 0, len(kvs))
	for _, kv := range kvs {
		var tc types.TokenClass
		if err := types.Decode(kv.Value, &tc); err != nil {
			return nil, err
		}
		classes = append(classes, &tc)
	}
	return classes, nil
}

//ResolveClass class named exactly by name, else the single registered class starting with name when it ends in "-"
func ResolveClass(lister dbm.Lister, db dbm.KV, name string) (*types.TokenClass, error) {
	if tc, err := LoadClass(db, name); err == nil {
		return tc, nil
	}
	if lister == nil || !strings.HasSuffix(name, "-") {
		return nil, types.ErrUnknownToken
	}
	classes, err := ListClasses(lister, name)
	if err != nil {
		return nil, err
	}
	if len(classes) != 1 {
		alog.Error("ResolveClass", "prefix", name, "classes", len(classes))
		return nil, types.ErrUnknownToken
	}
	return classes[0], nil
}
