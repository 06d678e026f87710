// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
)

//ClassPrefix state key prefix of token classes
const ClassPrefix = "mavl-assetclass-"

func classKey(class string) []byte {
	return []byte(ClassPrefix + class)
}

//LoadClass registered class, ErrUnknownToken when missing
func LoadClass(db dbm.KV, class string) (*types.TokenClass, error) {
	value, err := db.Get(classKey(class))
	if err != nil {
		return nil, types.ErrUnknownToken
	}
	var tc types.TokenClass
	if err := types.Decode(value, &tc); err != nil {
		return nil, err
	}
	return &tc, nil
}

//RegisterClass add a new class, classes are immutable once registered
func RegisterClass(db dbm.KV, tc *types.TokenClass) (*types.Receipt, error) {
	if tc.GetClass() == "" {
		return nil, types.ErrInvalidParam
	}
	if tc.Kind != types.KindFungible && tc.Kind != types.KindNonFungible {
		return nil, types.ErrTokenKind
	}
	if _, err := LoadClass(db, tc.Class); err == nil {
		return nil, types.ErrTokenExist
	}
	kv := &types.KeyValue{Key: classKey(tc.Class), Value: types.Encode(tc)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{types.NewLog(types.TyLogTokenClass, tc)},
	}, nil
}

//CanMint executor listed as a minter of the class
func CanMint(tc *types.TokenClass, executor string) bool {
	for _, m := range tc.GetMinters() {
		if m == executor {
			return true
		}
	}
	return false
}

//ClassFromConfig token class of a [[token]] entry
func ClassFromConfig(cfg *types.TokenConfig) (*types.TokenClass, error) {
	kind, err := types.ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	return &types.TokenClass{
		Class:    cfg.Class,
		Name:     cfg.Name,
		Kind:     kind,
		Decimals: cfg.Decimals,
		Tier:     cfg.Tier,
		Minters:  cfg.Minters,
	}, nil
}
