// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package account token ledger: balances, transfers, mint and burn with supply tracking
package account

//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. Mint / Burn
//6. balance query

import (
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB ledger of one token instance
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	token            string
}

//NewTokenDB ledger of a fungible token or one nft instance
func NewTokenDB(class string, nonce uint64, db dbm.KV) *DB {
	return NewAccountDB(types.TokenKey(class, nonce), db)
}

//NewAccountDB ledger by token key
func NewAccountDB(token string, db dbm.KV) *DB {
	return &DB{
		db:               db,
		accountKeyPerfix: []byte(SymbolPrefix(token)),
		token:            token,
	}
}

//SymbolPrefix state key prefix of the balances of a token
func SymbolPrefix(token string) string {
	return "mavl-asset-" + token + "-"
}

//SetDB switch the state view
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

//Token token key of this ledger
func (acc *DB) Token() string {
	return acc.token
}

//LoadAccount balance record, zero when missing
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Token: acc.token, Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err)
	}
	return &acc1
}

//Balance shortcut
func (acc *DB) Balance(addr string) int64 {
	return acc.LoadAccount(addr).GetBalance()
}

//CheckTransfer dry run of Transfer
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrInvalidParam
	}
	if acc.LoadAccount(from).GetBalance() < amount {
		return types.ErrNoBalance
	}
	return nil
}

//Transfer move amount between two addresses
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance = accFrom.GetBalance() - amount
	accTo.Balance = accTo.GetBalance() + amount

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	if err := acc.SaveAccount(accFrom); err != nil {
		return nil, err
	}
	if err := acc.SaveAccount(accTo); err != nil {
		return nil, err
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: kv,
		Logs: []*types.ReceiptLog{
			types.NewLog(types.TyLogTransfer, receiptBalanceFrom),
			types.NewLog(types.TyLogTransfer, receiptBalanceTo),
		},
	}, nil
}

//GenesisInit credit an allocation without minter checks, only valid at height 0
func (acc *DB) GenesisInit(addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	copyacc := *acc1
	acc1.Balance += amount
	if err := acc.SaveAccount(acc1); err != nil {
		return nil, err
	}
	_, kvSupply, err := addSupply(acc.db, acc.token, amount)
	if err != nil {
		return nil, err
	}
	receipt := &types.ReceiptAccountTransfer{Prev: &copyacc, Current: acc1}
	kv := append(acc.GetKVSet(acc1), kvSupply...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{types.NewLog(types.TyLogGenesis, receipt)},
	}, nil
}

//SaveAccount write the record into the state view
func (acc *DB) SaveAccount(acc1 *types.Account) error {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		if err := acc.db.Set(set[i].GetKey(), set[i].Value); err != nil {
			return err
		}
	}
	return nil
}

//GetKVSet kv of a record
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	acc1.Token = acc.token
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

//LoadAccounts records of several addresses
func (acc *DB) LoadAccounts(addrs []string) (accs []*types.Account) {
	for i := 0; i < len(addrs); i++ {
		accs = append(accs, acc.LoadAccount(addrs[i]))
	}
	return accs
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}
