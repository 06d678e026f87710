// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
)

func nftKey(class string, nonce uint64) []byte {
	return []byte("mavl-assetnft-" + types.TokenKey(class, nonce))
}

func nonceKey(class string) []byte {
	return []byte("mavl-assetnonce-" + class)
}

//LastNonce highest nonce minted in a class
func LastNonce(db dbm.KV, class string) uint64 {
	value, err := db.Get(nonceKey(class))
	if err != nil {
		return 0
	}
	var n types.Int64
	if err := types.Decode(value, &n); err != nil {
		panic(err)
	}
	return uint64(n.Data)
}

//LoadNft attributes of one instance
func LoadNft(db dbm.KV, class string, nonce uint64) (*types.NftAttributes, error) {
	value, err := db.Get(nftKey(class, nonce))
	if err != nil {
		return nil, types.ErrNotFound
	}
	var attrs types.NftAttributes
	if err := types.Decode(value, &attrs); err != nil {
		return nil, err
	}
	return &attrs, nil
}

//SaveNft write attributes, prev is nil for a new instance
func SaveNft(db dbm.KV, prev, attrs *types.NftAttributes) (*types.Receipt, error) {
	kv := &types.KeyValue{Key: nftKey(attrs.Class, attrs.Nonce), Value: types.Encode(attrs)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	log := &types.ReceiptNftAttributes{Prev: prev, Current: attrs}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{types.NewLog(types.TyLogNftAttributes, log)},
	}, nil
}

//MintNft create the next instance of an nft class for owner
func MintNft(db dbm.KV, executor, owner string, attrs *types.NftAttributes) (uint64, *types.Receipt, error) {
	tc, err := LoadClass(db, attrs.Class)
	if err != nil {
		return 0, nil, err
	}
	if tc.Kind != types.KindNonFungible {
		return 0, nil, types.ErrTokenKind
	}
	nonce := LastNonce(db, attrs.Class) + 1
	receipt, err := NewTokenDB(attrs.Class, nonce, db).Mint(executor, owner, 1)
	if err != nil {
		return 0, nil, err
	}
	kv := &types.KeyValue{Key: nonceKey(attrs.Class), Value: types.Encode(&types.Int64{Data: int64(nonce)})}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		return 0, nil, err
	}
	receipt.KV = append(receipt.KV, kv)

	attrs.Nonce = nonce
	attrs.Creator = executor
	rattrs, err := SaveNft(db, nil, attrs)
	if err != nil {
		return 0, nil, err
	}
	return nonce, types.AppendReceipt(receipt, rattrs), nil
}

//OwnsNft addr holds the instance
func OwnsNft(db dbm.KV, class string, nonce uint64, addr string) bool {
	return NewTokenDB(class, nonce, db).Balance(addr) >= 1
}
