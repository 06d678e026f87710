// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/33cn/wintergame/common"
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
	"github.com/golang/snappy"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

var (
	blockLastHeight = []byte("blockLastHeight")
	storeLog        = chainlog.New("submodule", "store")
)

//存储 block height 对应的 block detail, snappy 压缩
func calcHeightToBlockKey(height int64) []byte {
	return []byte(fmt.Sprintf("Block:%012d", height))
}

//存储 block hash 对应的 block height
func calcHashToHeightKey(hash []byte) []byte {
	return []byte(fmt.Sprintf("Hash:%x", hash))
}

//存储 tx hash 对应的执行结果
func calcTxKey(hash []byte) []byte {
	return []byte(fmt.Sprintf("TX:%x", hash))
}

//BlockStore executed blocks and the tx index, sharing the database of the state
type BlockStore struct {
	db     dbm.DB
	height int64
	cache  *lru.Cache

	mu        sync.RWMutex
	lastBlock *types.Block
}

//NewBlockStore store over db, the last block is loaded when the db is not empty
func NewBlockStore(db dbm.DB, cacheSize int) (*BlockStore, error) {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	bs := &BlockStore{db: db, height: -1, cache: cache}
	height, err := LoadBlockStoreHeight(db)
	if err == types.ErrBlockNotFound {
		storeLog.Info("NewBlockStore empty database")
		return bs, nil
	}
	if err != nil {
		return nil, err
	}
	detail, err := bs.LoadBlockByHeight(height)
	if err != nil {
		storeLog.Error("NewBlockStore last block", "height", height, "err", err)
		return nil, err
	}
	bs.height = height
	bs.lastBlock = detail.Block
	return bs, nil
}

//LoadBlockStoreHeight height of the last saved block
func LoadBlockStoreHeight(db dbm.DB) (int64, error) {
	value, err := db.Get(blockLastHeight)
	if err != nil || value == nil {
		return -1, types.ErrBlockNotFound
	}
	var height types.Int64
	if err := types.Decode(value, &height); err != nil {
		return -1, errors.Wrap(err, "decode last height")
	}
	return height.Data, nil
}

//Height height of the last block, -1 before genesis
func (bs *BlockStore) Height() int64 {
	return atomic.LoadInt64(&bs.height)
}

//LastBlock last saved block
func (bs *BlockStore) LastBlock() *types.Block {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return bs.lastBlock
}

//SaveBlock add the block, its hash and tx index to the batch
func (bs *BlockStore) SaveBlock(batch dbm.Batch, detail *types.BlockDetail) {
	block := detail.Block
	batch.Set(calcHeightToBlockKey(block.Height), snappy.Encode(nil, types.Encode(detail)))
	batch.Set(calcHashToHeightKey(block.Hash()), types.Encode(&types.Int64{Data: block.Height}))
	for i, tx := range block.Txs {
		result := &types.TxResult{
			Height:    block.Height,
			Index:     int32(i),
			BlockTime: block.BlockTime,
			Tx:        tx,
		}
		if i < len(detail.Receipts) {
			result.Receipt = detail.Receipts[i]
		}
		batch.Set(calcTxKey(tx.Hash()), types.Encode(result))
	}
	batch.Set(blockLastHeight, types.Encode(&types.Int64{Data: block.Height}))
}

//UpdateLast the batch of SaveBlock is written, detail becomes the last block
func (bs *BlockStore) UpdateLast(detail *types.BlockDetail) {
	bs.mu.Lock()
	bs.lastBlock = detail.Block
	bs.mu.Unlock()
	atomic.StoreInt64(&bs.height, detail.Block.Height)
	bs.cache.Add(detail.Block.Height, detail)
	storeLog.Debug("UpdateLast", "height", detail.Block.Height, "hash", common.ToHex(detail.Block.Hash()))
}

//LoadBlockByHeight block detail at height
func (bs *BlockStore) LoadBlockByHeight(height int64) (*types.BlockDetail, error) {
	if v, ok := bs.cache.Get(height); ok {
		return v.(*types.BlockDetail), nil
	}
	value, err := bs.db.Get(calcHeightToBlockKey(height))
	if err != nil || value == nil {
		return nil, types.ErrBlockNotFound
	}
	data, err := snappy.Decode(nil, value)
	if err != nil {
		return nil, errors.Wrapf(err, "snappy block %d", height)
	}
	var detail types.BlockDetail
	if err := types.Decode(data, &detail); err != nil {
		return nil, errors.Wrapf(err, "decode block %d", height)
	}
	bs.cache.Add(height, &detail)
	return &detail, nil
}

//LoadBlockByHash block detail with the given hash
func (bs *BlockStore) LoadBlockByHash(hash []byte) (*types.BlockDetail, error) {
	value, err := bs.db.Get(calcHashToHeightKey(hash))
	if err != nil || value == nil {
		return nil, types.ErrBlockNotFound
	}
	var height types.Int64
	if err := types.Decode(value, &height); err != nil {
		return nil, err
	}
	return bs.LoadBlockByHeight(height.Data)
}

//GetTx executed tx by hash
func (bs *BlockStore) GetTx(hash []byte) (*types.TxResult, error) {
	value, err := bs.db.Get(calcTxKey(hash))
	if err != nil || value == nil {
		return nil, types.ErrTxNotExist
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

//HasTx tx already executed in a saved block
func (bs *BlockStore) HasTx(hash []byte) bool {
	value, err := bs.db.Get(calcTxKey(hash))
	return err == nil && value != nil
}
