// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
)

func supplyKey(token string) []byte {
	return []byte("mavl-assetsupply-" + token)
}

//LoadSupply minted minus burned amount of a token key
func LoadSupply(db dbm.KV, token string) int64 {
	value, err := db.Get(supplyKey(token))
	if err != nil {
		return 0
	}
	var supply types.TokenSupply
	if err := types.Decode(value, &supply); err != nil {
		panic(err)
	}
	return supply.Total
}

func addSupply(db dbm.KV, token string, delta int64) (prev int64, kv []*types.KeyValue, err error) {
	prev = LoadSupply(db, token)
	total := prev + delta
	if total < 0 || (delta > 0 && total < prev) {
		return prev, nil, types.ErrSupplyOverflow
	}
	kv = []*types.KeyValue{{Key: supplyKey(token), Value: types.Encode(&types.TokenSupply{Token: token, Total: total})}}
	if err := db.Set(kv[0].Key, kv[0].Value); err != nil {
		return prev, nil, err
	}
	return prev, kv, nil
}

//Mint create amount for addr, executor must be a minter of the class
func (acc *DB) Mint(executor, addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	class, _, err := types.ParseTokenKey(acc.token)
	if err != nil {
		return nil, err
	}
	tc, err := LoadClass(acc.db, class)
	if err != nil {
		return nil, err
	}
	if !CanMint(tc, executor) {
		alog.Error("Mint", "token", acc.token, "executor", executor, "err", types.ErrMintNotAllowed)
		return nil, types.ErrMintNotAllowed
	}
	acc1 := acc.LoadAccount(addr)
	if acc1.Balance+amount < acc1.Balance {
		return nil, types.ErrSupplyOverflow
	}
	prev, kvSupply, err := addSupply(acc.db, acc.token, amount)
	if err != nil {
		return nil, err
	}
	acc1.Balance += amount
	if err := acc.SaveAccount(acc1); err != nil {
		return nil, err
	}
	log := &types.ReceiptTokenSupply{
		Token:    acc.token,
		Executor: executor,
		Addr:     addr,
		Amount:   amount,
		Prev:     prev,
		Current:  prev + amount,
	}
	kv := append(acc.GetKVSet(acc1), kvSupply...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{types.NewLog(types.TyLogMint, log)}}, nil
}

//Burn destroy amount held by addr, executor must be a minter of the class
func (acc *DB) Burn(executor, addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	class, _, err := types.ParseTokenKey(acc.token)
	if err != nil {
		return nil, err
	}
	tc, err := LoadClass(acc.db, class)
	if err != nil {
		return nil, err
	}
	if !CanMint(tc, executor) {
		alog.Error("Burn", "token", acc.token, "executor", executor, "err", types.ErrMintNotAllowed)
		return nil, types.ErrMintNotAllowed
	}
	acc1 := acc.LoadAccount(addr)
	if acc1.Balance < amount {
		return nil, types.InsufficientSupplyf("Insufficient %s balance to burn", acc.token)
	}
	prev, kvSupply, err := addSupply(acc.db, acc.token, -amount)
	if err != nil {
		return nil, err
	}
	acc1.Balance -= amount
	if err := acc.SaveAccount(acc1); err != nil {
		return nil, err
	}
	log := &types.ReceiptTokenSupply{
		Token:    acc.token,
		Executor: executor,
		Addr:     addr,
		Amount:   amount,
		Prev:     prev,
		Current:  prev - amount,
	}
	kv := append(acc.GetKVSet(acc1), kvSupply...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{types.NewLog(types.TyLogBurn, log)}}, nil
}
