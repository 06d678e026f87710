// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"sync"

	"github.com/33cn/wintergame/metrics"
	"github.com/33cn/wintergame/types"
)

//Mempool txs waiting for the next block, in arrival order
type Mempool struct {
	mu     sync.Mutex
	txs    []*types.Transaction
	hashes map[string]bool
	size   int
}

//NewMempool pool holding at most size txs
func NewMempool(size int) *Mempool {
	return &Mempool{hashes: make(map[string]bool), size: size}
}

//Push add a tx, ErrTxDup when already pooled, ErrMempoolFull at capacity
func (mem *Mempool) Push(tx *types.Transaction) error {
	hash := string(tx.Hash())
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if mem.hashes[hash] {
		return types.ErrTxDup
	}
	if len(mem.txs) >= mem.size {
		return types.ErrMempoolFull
	}
	mem.txs = append(mem.txs, tx)
	mem.hashes[hash] = true
	metrics.Gauge(metrics.MempoolGauge).Update(int64(len(mem.txs)))
	return nil
}

//Pull remove and return the oldest txs, at most max
func (mem *Mempool) Pull(max int) []*types.Transaction {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	n := len(mem.txs)
	if max > 0 && n > max {
		n = max
	}
	txs := make([]*types.Transaction, n)
	copy(txs, mem.txs[:n])
	mem.txs = mem.txs[n:]
	for _, tx := range txs {
		delete(mem.hashes, string(tx.Hash()))
	}
	metrics.Gauge(metrics.MempoolGauge).Update(int64(len(mem.txs)))
	return txs
}

//Size pooled txs
func (mem *Mempool) Size() int {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	return len(mem.txs)
}
