// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp executor driver base: action dispatch by reflection, env and db access
package dapp

import (
	"encoding/json"
	"reflect"

	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/common/address"
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

//tx index direction
const (
	TxIndexFrom = 1
	TxIndexTo   = 2
)

//Driver executor of one dapp
type Driver interface {
	SetStateDB(dbm.KV)
	SetLocalDB(dbm.KVDB)
	//driver name, fixed per dapp
	GetDriverName() string
	GetName() string
	SetName(string)
	SetEnv(env *types.BlockEnv)
	SetConfig(cfg *types.Config)
	Allow(tx *types.Transaction, index int) error
	GetActionName(tx *types.Transaction) string
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	QueryJSON(funcName string, params json.RawMessage) (types.Message, error)
	SetTxs(txs []*types.Transaction)
	GetTxs() []*types.Transaction
	GetPayloadValue() types.Message
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

//DriverBase shared driver state, embedded by every dapp
type DriverBase struct {
	statedb    dbm.KV
	localdb    dbm.KVDB
	env        *types.BlockEnv
	cfg        *types.Config
	name       string
	child      Driver
	childValue reflect.Value
	txs        []*types.Transaction
	ety        types.ExecutorType
	funcmap    map[string]reflect.Method
}

//GetPayloadValue empty payload of the executor type
func (d *DriverBase) GetPayloadValue() types.Message {
	if d.ety == nil {
		return nil
	}
	return d.ety.GetPayload()
}

//GetExecutorType executor type
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

//GetFuncMap exported methods of the child driver
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

//SetEnv block environment
func (d *DriverBase) SetEnv(env *types.BlockEnv) {
	d.env = env
}

//SetConfig node config
func (d *DriverBase) SetConfig(cfg *types.Config) {
	d.cfg = cfg
}

//GetConfig node config
func (d *DriverBase) GetConfig() *types.Config {
	return d.cfg
}

//SetExecutorType executor type
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

//SetChild must be called by the child constructor
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcmap = types.ListMethod(e)
}

//ExecLocal dispatch to ExecLocal_<Action>, missing handlers produce an empty set
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	lset, err := d.callLocal("ExecLocal_", tx, receipt, index)
	if err != nil {
		if err != types.ErrActionNotSupport {
			blog.Error("call ExecLocal", "tx.Execer", string(tx.Execer), "err", err)
			return nil, err
		}
		return &set, nil
	}
	if lset != nil && lset.KV != nil {
		set.KV = append(set.KV, lset.KV...)
	}
	return &set, nil
}

func (d *DriverBase) callLocal(prefix string, tx *types.Transaction, receipt *types.ReceiptData, index int) (set *types.LocalDBSet, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call localexec error", "prefix", prefix, "tx.exec", string(tx.Execer), "info", r)
			err = types.ErrActionNotSupport
			set = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcname := prefix + name
	method, ok := d.funcmap[funcname]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.LocalDBSet); ok {
			set = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return set, err
}

//CheckAddress user or executor address
func CheckAddress(addr string) error {
	if IsDriverAddress(addr) {
		return nil
	}
	return address.CheckAddress(addr)
}

//Exec dispatch to Exec_<Action>
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", string(tx.Execer), "info", r)
			err = types.ErrActionNotSupport
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcname := "Exec_" + name
	method, ok := d.funcmap[funcname]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.Receipt); ok {
			receipt = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return receipt, err
}

//CheckTx tx.To must be the executor address
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if ExecAddress(string(tx.Execer)) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

//Allow the tx targets this driver
func (d *DriverBase) Allow(tx *types.Transaction, index int) error {
	if d.child.GetDriverName() == string(tx.Execer) {
		return nil
	}
	return types.ErrNotAllow
}

//SetStateDB state view of the running block
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
}

//GetStateDB state view
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//GetStateLister prefix listing over the state view, nil when the view cannot list
func (d *DriverBase) GetStateLister() dbm.Lister {
	if l, ok := d.statedb.(dbm.Lister); ok {
		return l
	}
	return nil
}

//SetLocalDB local index view
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

//GetLocalDB local index view
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

//GetEnv block environment
func (d *DriverBase) GetEnv() *types.BlockEnv {
	if d.env == nil {
		return &types.BlockEnv{}
	}
	return d.env
}

//GetHeight block height
func (d *DriverBase) GetHeight() int64 {
	return d.GetEnv().Height
}

//GetBlockTime block time in seconds
func (d *DriverBase) GetBlockTime() int64 {
	return d.GetEnv().BlockTime
}

//GetName executor name
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

//SetName executor name
func (d *DriverBase) SetName(name string) {
	d.name = name
}

//GetActionName action name of a tx
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	return tx.ActionName()
}

//GetExecAddr address of this executor
func (d *DriverBase) GetExecAddr() string {
	return ExecAddress(d.GetName())
}

//GetAccount ledger of a token instance over the state view
func (d *DriverBase) GetAccount(class string, nonce uint64) *account.DB {
	return account.NewTokenDB(class, nonce, d.statedb)
}

//GetCoinsAccount ledger of the native currency
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.GetAccount(d.GetCoinSymbol(), 0)
}

//GetCoinSymbol native currency class
func (d *DriverBase) GetCoinSymbol() string {
	if d.cfg == nil || d.cfg.Coin == nil || d.cfg.Coin.Symbol == "" {
		return types.DefaultCoinSymbol
	}
	return d.cfg.Coin.Symbol
}

//GetTxs txs of the running block
func (d *DriverBase) GetTxs() []*types.Transaction {
	return d.txs
}

//SetTxs txs of the running block
func (d *DriverBase) SetTxs(txs []*types.Transaction) {
	d.txs = txs
}
