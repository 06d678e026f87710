// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockchain single producer chain: mempool, block production, block store and event fan out
package blockchain

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/33cn/wintergame/common/crypto"
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/executor"
	"github.com/33cn/wintergame/metrics"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var chainlog = log.New("module", "blockchain")

//BlockChain orders txs into blocks, executes them and persists the result.
//It only supplies ordering, clocks and seeds: there is a single local producer.
type BlockChain struct {
	cfg     *types.Config
	db      dbm.DB
	store   *BlockStore
	mempool *Mempool
	exec    *executor.Executor
	sink    types.EventSink
	now     func() int64

	// 区块随机种子由出块者私钥签名链生成
	producer crypto.PrivKey

	procMu sync.Mutex

	subMu   sync.Mutex
	subs    map[int]chan *types.Event
	nextSub int

	closed int32
	wg     sync.WaitGroup
}

//New chain over db, the genesis block of cfg is executed when db is empty.
//Executors must be registered before.
func New(cfg *types.Config, db dbm.DB) (*BlockChain, error) {
	bc := cfg.BlockChain
	store, err := NewBlockStore(db, int(bc.BlockCacheSize))
	if err != nil {
		return nil, err
	}
	producer, err := loadProducer(bc, db)
	if err != nil {
		return nil, err
	}
	chain := &BlockChain{
		cfg:     cfg,
		db:      db,
		store:   store,
		mempool: NewMempool(int(bc.MempoolSize)),
		exec:    executor.New(cfg, db),
		sink:    types.LogSink{},
		now:     func() int64 { return time.Now().Unix() },
		subs:    make(map[int]chan *types.Event),

		producer: producer,
	}
	if last := store.LastBlock(); last != nil {
		chain.exec.SetLastEnv(last.Env())
		chainlog.Info("New", "height", last.Height)
		return chain, nil
	}
	genesis, err := executor.GenesisBlock(cfg)
	if err != nil {
		return nil, err
	}
	detail, err := chain.ProcessBlock(genesis)
	if err != nil {
		return nil, errors.Wrap(err, "genesis")
	}
	for i, r := range detail.Receipts {
		if r.Ty != types.ExecOk {
			return nil, errors.Errorf("genesis tx %d failed", i)
		}
	}
	chainlog.Info("New genesis", "txs", len(genesis.Txs), "hash", genesis.Hash())
	return chain, nil
}

//SetEventSink sink receiving the events of every new block
func (chain *BlockChain) SetEventSink(sink types.EventSink) {
	chain.sink = sink
}

//Store block store
func (chain *BlockChain) Store() *BlockStore {
	return chain.store
}

//Mempool pending txs
func (chain *BlockChain) Mempool() *Mempool {
	return chain.mempool
}

//Executor block executor
func (chain *BlockChain) Executor() *executor.Executor {
	return chain.exec
}

//SendTx admit a signed tx to the mempool, returns its hash
func (chain *BlockChain) SendTx(tx *types.Transaction) ([]byte, error) {
	if atomic.LoadInt32(&chain.closed) == 1 {
		return nil, types.ErrChainClosed
	}
	if err := chain.exec.CheckTx(tx); err != nil {
		chainlog.Debug("SendTx check", "err", err)
		return nil, err
	}
	hash := tx.Hash()
	if chain.store.HasTx(hash) {
		return nil, types.ErrTxDup
	}
	if err := chain.mempool.Push(tx); err != nil {
		return nil, err
	}
	return hash, nil
}

//CreateBlock produce the next block from the mempool, the block time never goes backwards
func (chain *BlockChain) CreateBlock() (*types.BlockDetail, error) {
	last := chain.store.LastBlock()
	blockTime := chain.now()
	if blockTime <= last.BlockTime {
		blockTime = last.BlockTime + 1
	}
	txs := chain.mempool.Pull(int(chain.cfg.BlockChain.MaxTxsPerBlock))
	block := types.NewBlock(chain.producer, last, txs, last.Height+1, blockTime, chain.cfg.BlockChain.RoundsPerEpoch)
	return chain.ProcessBlock(block)
}

//ProcessBlock execute block, write its state and the block itself in one batch, then publish its events
func (chain *BlockChain) ProcessBlock(block *types.Block) (*types.BlockDetail, error) {
	chain.procMu.Lock()
	defer chain.procMu.Unlock()
	if last := chain.store.LastBlock(); last != nil && block.Height <= last.Height {
		return nil, types.ErrHeightOutOfRange
	}
	detail, kvs, err := chain.exec.ExecBlock(block)
	if err != nil {
		return nil, err
	}
	batch := chain.db.NewBatch(true)
	for _, kv := range kvs {
		if kv.Value == nil {
			batch.Delete(kv.Key)
			continue
		}
		batch.Set(kv.Key, kv.Value)
	}
	chain.store.SaveBlock(batch, detail)
	if err := batch.Write(); err != nil {
		return nil, errors.Wrap(err, "write block")
	}
	chain.store.UpdateLast(detail)
	chain.exec.SetLastEnv(block.Env())
	metrics.Counter(metrics.BlockCounter).Inc(1)
	chainlog.Debug("ProcessBlock", "height", block.Height, "txs", len(block.Txs), "kvs", len(kvs))
	chain.publish(executor.Events(detail))
	return detail, nil
}

func (chain *BlockChain) publish(events []*types.Event) {
	for _, ev := range events {
		if chain.sink != nil {
			chain.sink.Publish(ev)
		}
	}
	chain.subMu.Lock()
	defer chain.subMu.Unlock()
	for _, ev := range events {
		for id, ch := range chain.subs {
			select {
			case ch <- ev:
			default:
				chainlog.Debug("publish drop", "sub", id, "height", ev.Height)
			}
		}
	}
}

//Subscribe events of the blocks produced from now on, slow readers lose events.
//The returned func cancels the subscription and closes the channel.
func (chain *BlockChain) Subscribe(buffer int) (<-chan *types.Event, func()) {
	ch := make(chan *types.Event, buffer)
	chain.subMu.Lock()
	id := chain.nextSub
	chain.nextSub++
	chain.subs[id] = ch
	chain.subMu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			chain.subMu.Lock()
			delete(chain.subs, id)
			chain.subMu.Unlock()
			close(ch)
		})
	}
}

//Start produce a block every blockInterval seconds until ctx is done or Close is called
func (chain *BlockChain) Start(ctx context.Context) {
	interval := time.Duration(chain.cfg.BlockChain.BlockInterval) * time.Second
	chain.wg.Add(1)
	go func() {
		defer chain.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if atomic.LoadInt32(&chain.closed) == 1 {
					return
				}
				if _, err := chain.CreateBlock(); err != nil {
					chainlog.Error("CreateBlock", "err", err)
				}
			}
		}
	}()
}

//Close stop accepting txs and wait for the producer
func (chain *BlockChain) Close() {
	atomic.StoreInt32(&chain.closed, 1)
	chain.wg.Wait()
}

//ProducerPubKey public key verifying the block seeds, see types.VerifySeed
func (chain *BlockChain) ProducerPubKey() crypto.PubKey {
	return chain.producer.PubKey()
}

//LastBlock last produced block
func (chain *BlockChain) LastBlock() *types.Block {
	return chain.store.LastBlock()
}

//GetBlockDetail block and receipts at height
func (chain *BlockChain) GetBlockDetail(height int64) (*types.BlockDetail, error) {
	if height < 0 || height > chain.store.Height() {
		return nil, types.ErrHeightOutOfRange
	}
	return chain.store.LoadBlockByHeight(height)
}

//GetTx executed tx by hash
func (chain *BlockChain) GetTx(hash []byte) (*types.TxResult, error) {
	return chain.store.GetTx(hash)
}

//Query executor query against the last state
func (chain *BlockChain) Query(execer, funcName string, params json.RawMessage) (types.Message, error) {
	return chain.exec.Query(execer, funcName, params)
}
