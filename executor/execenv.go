// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/metrics"
	drivers "github.com/33cn/wintergame/system/dapp"
	"github.com/33cn/wintergame/types"
)

//executor execution context of one block
type executor struct {
	cfg     *types.Config
	stateDB *StateDB
	localDB *LocalDB
	env     *types.BlockEnv
	txs     []*types.Transaction
	drivers map[string]drivers.Driver
}

func newExecutor(cfg *types.Config, stateDB *StateDB, localDB *LocalDB, env *types.BlockEnv, txs []*types.Transaction) *executor {
	return &executor{
		cfg:     cfg,
		stateDB: stateDB,
		localDB: localDB,
		env:     env,
		txs:     txs,
		drivers: make(map[string]drivers.Driver),
	}
}

func (e *executor) loadDriver(tx *types.Transaction) (drivers.Driver, error) {
	name := string(tx.Execer)
	if d, ok := e.drivers[name]; ok {
		return d, nil
	}
	d, err := drivers.LoadDriver(name)
	if err != nil {
		return nil, err
	}
	d.SetName(name)
	d.SetStateDB(e.stateDB)
	d.SetLocalDB(e.localDB)
	d.SetEnv(e.env)
	d.SetConfig(e.cfg)
	d.SetTxs(e.txs)
	e.drivers[name] = d
	return d, nil
}

func (e *executor) checkTx(tx *types.Transaction, index int) error {
	if e.env.Height != 0 {
		if err := tx.Check(); err != nil {
			return err
		}
	}
	d, err := e.loadDriver(tx)
	if err != nil {
		return err
	}
	if err := d.Allow(tx, index); err != nil {
		return err
	}
	return d.CheckTx(tx, index)
}

//paymentIntake move the attached payments from the caller to the executor address
func (e *executor) paymentIntake(tx *types.Transaction) (*types.Receipt, error) {
	receipt := &types.Receipt{Ty: types.ExecOk}
	if len(tx.Payments) == 0 {
		return receipt, nil
	}
	from := tx.From()
	if from == "" {
		return nil, types.ErrSign
	}
	execaddr := drivers.ExecAddress(string(tx.Execer))
	for _, p := range tx.Payments {
		acc := account.NewTokenDB(p.Token, p.Nonce, e.stateDB)
		r, err := acc.Transfer(from, execaddr, p.Amount)
		if err == types.ErrNoBalance {
			return nil, types.InsufficientSupplyf("Insufficient %s balance", acc.Token())
		}
		if err != nil {
			return nil, err
		}
		receipt = types.AppendReceipt(receipt, r)
	}
	log := &types.ReceiptPaymentIntake{From: from, Execer: string(tx.Execer), Payments: tx.Payments}
	receipt.Logs = append(receipt.Logs, types.NewLog(types.TyLogPaymentIntake, log))
	return receipt, nil
}

func (e *executor) execTxOne(tx *types.Transaction, index int) (*types.Receipt, error) {
	feelog, err := e.paymentIntake(tx)
	if err != nil {
		return nil, err
	}
	d, err := e.loadDriver(tx)
	if err != nil {
		return nil, err
	}
	receipt, err := d.Exec(tx, index)
	if err != nil {
		elog.Error("exec tx error = ", "err", err, "exec", string(tx.Execer), "action", tx.ActionName())
		return nil, err
	}
	if receipt != nil {
		feelog.KV = append(feelog.KV, receipt.KV...)
		feelog.Logs = append(feelog.Logs, receipt.Logs...)
	}
	//1. statedb 中 Set的 key 必须是 在 receipt.GetKV() 这个集合中
	//2. receipt.GetKV() 中的 key, 必须符合权限控制要求
	if err := e.checkKV(e.stateDB.GetSetKeys(), feelog.KV); err != nil {
		return nil, err
	}
	if err := e.checkKeyAllow(tx, feelog.KV); err != nil {
		return nil, err
	}
	return feelog, nil
}

func (e *executor) checkKV(memset []string, kvs []*types.KeyValue) error {
	keys := make(map[string]bool)
	for _, kv := range kvs {
		keys[string(kv.GetKey())] = true
	}
	for _, key := range memset {
		if _, ok := keys[key]; !ok {
			elog.Error("err memset key", "key", key)
			return types.ErrNotAllowMemSetKey
		}
	}
	return nil
}

func (e *executor) checkKeyAllow(tx *types.Transaction, kvs []*types.KeyValue) error {
	for _, kv := range kvs {
		if !isAllowKeyWrite(kv.GetKey(), tx.Execer) {
			elog.Error("err receipt key", "key", string(kv.GetKey()), "tx.exec", string(tx.GetExecer()),
				"tx.action", tx.ActionName())
			return types.ErrNotAllowKey
		}
	}
	return nil
}

func errReceipt(err error) *types.Receipt {
	return &types.Receipt{
		Ty:   types.ExecErr,
		Logs: []*types.ReceiptLog{types.NewLog(types.TyLogErr, &types.ReplyString{Data: err.Error()})},
	}
}

//execTx run one tx atomically, a failed tx leaves the state untouched and records the diagnostic
func (e *executor) execTx(tx *types.Transaction, index int) (*types.Receipt, error) {
	execer := string(tx.Execer)
	if err := e.checkTx(tx, index); err != nil {
		if e.env.Height == 0 {
			return nil, err
		}
		metrics.TxCounter(execer, false).Inc(1)
		return errReceipt(err), nil
	}
	e.stateDB.Begin()
	receipt, err := e.execTxOne(tx, index)
	if err != nil {
		e.stateDB.Rollback()
		if e.env.Height == 0 {
			return nil, err
		}
		metrics.TxCounter(execer, false).Inc(1)
		elog.Debug("exec tx = ", "index", index, "execer", execer, "err", err)
		return errReceipt(err), nil
	}
	if err := e.stateDB.Commit(); err != nil {
		return nil, err
	}
	metrics.TxCounter(execer, true).Inc(1)
	return receipt, nil
}

func (e *executor) checkPrefix(execer []byte, kvs []*types.KeyValue) error {
	for i := 0; i < len(kvs); i++ {
		if err := isAllowLocalKey(execer, kvs[i].Key); err != nil {
			return err
		}
	}
	return nil
}

func (e *executor) execLocalTx(tx *types.Transaction, r *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	d, err := e.loadDriver(tx)
	if err != nil {
		return nil, err
	}
	set, err := d.ExecLocal(tx, r, index)
	if err != nil {
		return nil, err
	}
	if set == nil || len(set.KV) == 0 {
		return set, nil
	}
	if err := e.checkPrefix(tx.Execer, set.KV); err != nil {
		return nil, err
	}
	for _, kv := range set.KV {
		if err := e.localDB.Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	return set, nil
}
