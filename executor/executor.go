// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor runs the txs of a block against the state and local index
package executor

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/33cn/wintergame/common"
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/metrics"
	drivers "github.com/33cn/wintergame/system/dapp"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

//Executor block executor over one database
type Executor struct {
	cfg *types.Config
	db  dbm.DB

	mu      sync.RWMutex
	lastEnv *types.BlockEnv
}

//New executor, db holds both the state and the local index
func New(cfg *types.Config, db dbm.DB) *Executor {
	return &Executor{cfg: cfg, db: db, lastEnv: &types.BlockEnv{}}
}

//SetLastEnv environment of the last committed block, used by queries and pool checks
func (exec *Executor) SetLastEnv(env *types.BlockEnv) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	exec.lastEnv = env
}

//LastEnv environment of the last committed block
func (exec *Executor) LastEnv() *types.BlockEnv {
	exec.mu.RLock()
	defer exec.mu.RUnlock()
	return exec.lastEnv
}

//ExecBlock execute the txs in order, returns the receipts and the kvs to persist, nil values are deletions.
//Nothing is written to the database.
func (exec *Executor) ExecBlock(block *types.Block) (*types.BlockDetail, []*types.KeyValue, error) {
	beg := time.Now()
	defer func() {
		metrics.Timer(metrics.BlockExecTimer).UpdateSince(beg)
	}()
	stateDB := NewStateDB(exec.db)
	localDB := NewLocalDB(exec.db)
	e := newExecutor(exec.cfg, stateDB, localDB, block.Env(), block.Txs)

	detail := &types.BlockDetail{Block: block}
	receipts := make([]*types.Receipt, len(block.Txs))
	for i, tx := range block.Txs {
		receipt, err := e.execTx(tx, i)
		if err != nil {
			elog.Error("ExecBlock", "height", block.Height, "index", i, "err", err)
			return nil, nil, err
		}
		receipts[i] = receipt
		detail.Receipts = append(detail.Receipts, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs})
	}
	for i, tx := range block.Txs {
		if receipts[i].Ty != types.ExecOk {
			continue
		}
		if _, err := e.execLocalTx(tx, detail.Receipts[i], i); err != nil {
			elog.Error("ExecBlock local", "height", block.Height, "index", i, "err", err)
			return nil, nil, err
		}
	}
	kvs := append(stateDB.KVs(), localDB.KVs()...)
	elog.Debug("ExecBlock", "height", block.Height, "txs", len(block.Txs), "kvs", len(kvs), "cost", time.Since(beg))
	return detail, kvs, nil
}

//CheckTx pool admission check against the last committed state
func (exec *Executor) CheckTx(tx *types.Transaction) error {
	if err := tx.Check(); err != nil {
		return err
	}
	env := *exec.LastEnv()
	env.Height++
	e := newExecutor(exec.cfg, NewStateDB(exec.db), NewLocalDB(exec.db), &env, nil)
	return e.checkTx(tx, 0)
}

//Query call Query_<funcName> of an executor with json params
func (exec *Executor) Query(execer, funcName string, params json.RawMessage) (types.Message, error) {
	d, err := drivers.LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	d.SetStateDB(NewStateDB(exec.db))
	d.SetLocalDB(NewLocalDB(exec.db))
	d.SetEnv(exec.LastEnv())
	d.SetConfig(exec.cfg)
	return d.QueryJSON(funcName, params)
}

//Events structured events of the receipt logs of an executed block
func Events(detail *types.BlockDetail) []*types.Event {
	var events []*types.Event
	block := detail.Block
	for i, tx := range block.Txs {
		if i >= len(detail.Receipts) {
			break
		}
		hash := common.ToHex(tx.Hash())
		for _, l := range detail.Receipts[i].Logs {
			name, msg, err := types.DecodeLog(l.Ty, l.Log)
			if err != nil {
				elog.Debug("Events decode", "ty", l.Ty, "err", err)
				continue
			}
			events = append(events, &types.Event{
				Height:    block.Height,
				BlockTime: block.BlockTime,
				TxHash:    hash,
				Index:     i,
				Execer:    string(tx.Execer),
				From:      tx.From(),
				Name:      name,
				Ty:        l.Ty,
				Data:      types.MustPBToJSON(msg),
			})
		}
	}
	metrics.Counter(metrics.EventCounter).Inc(int64(len(events)))
	return events
}
