// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/common/crypto"
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/executor"
	"github.com/33cn/wintergame/pluginmgr"
	"github.com/33cn/wintergame/types"
	"github.com/33cn/wintergame/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkRecorder struct {
	events []*types.Event
}

func (s *sinkRecorder) Publish(ev *types.Event) {
	s.events = append(s.events, ev)
}

func newTestChain(t *testing.T) (*BlockChain, dbm.DB, string, crypto.PrivKey) {
	cfg := util.TestConfig()
	addr, priv := util.Genaddress()
	util.AddAlloc(cfg, addr, "", 0, 100*types.Coin)
	pluginmgr.InitExec(cfg)
	db, err := dbm.NewGoMemDB("chain", "", 0)
	require.NoError(t, err)
	chain, err := New(cfg, db)
	require.NoError(t, err)
	chain.now = func() int64 { return cfg.Genesis.BlockTime + 10 }
	return chain, db, addr, priv
}

func balance(db dbm.DB, addr string) int64 {
	return account.NewTokenDB("FROST", 0, executor.NewStateDB(db)).Balance(addr)
}

func TestGenesisAndReopen(t *testing.T) {
	chain, db, addr, _ := newTestChain(t)
	last := chain.LastBlock()
	require.NotNil(t, last)
	assert.Equal(t, int64(0), last.Height)
	assert.Equal(t, int64(0), chain.Store().Height())
	assert.Equal(t, 100*types.Coin, balance(db, addr))

	detail, err := chain.CreateBlock()
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Block.Height)
	assert.Len(t, detail.Block.Txs, 0)
	assert.Equal(t, last.Hash(), detail.Block.ParentHash)

	reopened, err := New(util.TestConfig(), db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reopened.Store().Height())
	assert.Equal(t, detail.Block.Hash(), reopened.LastBlock().Hash())
	assert.Equal(t, int64(1), reopened.Executor().LastEnv().Height)
}

func TestSendTxAndCreateBlock(t *testing.T) {
	chain, db, addr, priv := newTestChain(t)
	sink := &sinkRecorder{}
	chain.SetEventSink(sink)
	events, cancel := chain.Subscribe(16)
	defer cancel()

	to, _ := util.Genaddress()
	tx := util.CreateCoinsTx(priv, to, types.Coin)
	hash, err := chain.SendTx(tx)
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), hash)
	_, err = chain.SendTx(tx)
	assert.Equal(t, types.ErrTxDup, err)
	_, err = chain.SendTx(util.CreateCoinsTx(crypto.PrivKey{}, to, types.Coin))
	assert.Equal(t, types.ErrSign, err)
	assert.Equal(t, 1, chain.Mempool().Size())

	detail, err := chain.CreateBlock()
	require.NoError(t, err)
	require.Len(t, detail.Receipts, 1)
	assert.Equal(t, int32(types.ExecOk), detail.Receipts[0].Ty)
	assert.Equal(t, 0, chain.Mempool().Size())
	assert.Equal(t, 99*types.Coin, balance(db, addr))
	assert.Equal(t, types.Coin, balance(db, to))

	result, err := chain.GetTx(hash)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Height)
	assert.Equal(t, int32(0), result.Index)
	assert.Equal(t, int32(types.ExecOk), result.Receipt.Ty)
	_, err = chain.SendTx(tx)
	assert.Equal(t, types.ErrTxDup, err)
	_, err = chain.GetTx([]byte("none"))
	assert.Equal(t, types.ErrTxNotExist, err)

	require.Len(t, sink.events, 2)
	assert.Equal(t, "LogTransfer", sink.events[0].Name)
	ev := <-events
	assert.Equal(t, int64(1), ev.Height)

	got, err := chain.GetBlockDetail(1)
	require.NoError(t, err)
	assert.Equal(t, detail.Block.Hash(), got.Block.Hash())
	_, err = chain.GetBlockDetail(2)
	assert.Equal(t, types.ErrHeightOutOfRange, err)

	reply, err := chain.Query("coins", "GetBalance", json.RawMessage(`{"addr":"`+to+`"}`))
	require.NoError(t, err)
	assert.Equal(t, types.Coin, reply.(*types.Account).Balance)
}

func TestBlockTimeMonotonic(t *testing.T) {
	chain, _, _, _ := newTestChain(t)
	chain.now = func() int64 { return 0 }
	first, err := chain.CreateBlock()
	require.NoError(t, err)
	second, err := chain.CreateBlock()
	require.NoError(t, err)
	assert.Equal(t, first.Block.BlockTime+1, second.Block.BlockTime)
	assert.Equal(t, int64(2), second.Block.Round)

	_, err = chain.ProcessBlock(first.Block)
	assert.Equal(t, types.ErrHeightOutOfRange, err)
}

func TestClosedChainRejectsTx(t *testing.T) {
	chain, _, _, priv := newTestChain(t)
	chain.Close()
	to, _ := util.Genaddress()
	_, err := chain.SendTx(util.CreateCoinsTx(priv, to, 1))
	assert.Equal(t, types.ErrChainClosed, err)
}

func TestMempool(t *testing.T) {
	_, priv := util.Genaddress()
	to, _ := util.Genaddress()
	mem := NewMempool(2)
	tx1 := util.CreateCoinsTx(priv, to, 1)
	tx2 := util.CreateCoinsTx(priv, to, 2)
	require.NoError(t, mem.Push(tx1))
	assert.Equal(t, types.ErrTxDup, mem.Push(tx1))
	require.NoError(t, mem.Push(tx2))
	assert.Equal(t, types.ErrMempoolFull, mem.Push(util.CreateCoinsTx(priv, to, 3)))

	txs := mem.Pull(1)
	require.Len(t, txs, 1)
	assert.Equal(t, tx1.Hash(), txs[0].Hash())
	require.NoError(t, mem.Push(tx1))
	txs = mem.Pull(0)
	require.Len(t, txs, 2)
	assert.Equal(t, tx2.Hash(), txs[0].Hash())
	assert.Equal(t, 0, mem.Size())
}

func TestBlockStoreCacheMiss(t *testing.T) {
	chain, db, _, _ := newTestChain(t)
	_, err := chain.CreateBlock()
	require.NoError(t, err)

	store, err := NewBlockStore(db, 1)
	require.NoError(t, err)
	genesis, err := store.LoadBlockByHeight(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), genesis.Block.Height)
	byHash, err := store.LoadBlockByHash(genesis.Block.Hash())
	require.NoError(t, err)
	assert.Equal(t, int64(0), byHash.Block.Height)
	_, err = store.LoadBlockByHeight(5)
	assert.Equal(t, types.ErrBlockNotFound, err)

	empty, err := dbm.NewGoMemDB("empty", "", 0)
	require.NoError(t, err)
	store, err = NewBlockStore(empty, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), store.Height())
	assert.Nil(t, store.LastBlock())
}

func TestSeedChain(t *testing.T) {
	chain, db, _, priv := newTestChain(t)
	genesis := chain.LastBlock()
	to, _ := util.Genaddress()
	_, err := chain.SendTx(util.CreateCoinsTx(priv, to, types.Coin))
	require.NoError(t, err)
	first, err := chain.CreateBlock()
	require.NoError(t, err)
	second, err := chain.CreateBlock()
	require.NoError(t, err)

	pub := chain.ProducerPubKey()
	assert.True(t, types.VerifySeed(pub, genesis.RandomSeed, first.Block))
	assert.True(t, types.VerifySeed(pub, first.Block.RandomSeed, second.Block))
	assert.False(t, types.VerifySeed(pub, genesis.RandomSeed, second.Block))

	//the generated key is kept in the db
	reopened, err := New(util.TestConfig(), db)
	require.NoError(t, err)
	assert.Equal(t, pub.Bytes(), reopened.ProducerPubKey().Bytes())

	cfg := util.TestConfig()
	key, err := crypto.GenKey()
	require.NoError(t, err)
	cfg.BlockChain.ProducerKey = common.ToHex(key.Bytes())
	configured, err := New(cfg, db)
	require.NoError(t, err)
	assert.Equal(t, key.PubKey().Bytes(), configured.ProducerPubKey().Bytes())

	cfg.BlockChain.ProducerKey = "0xzz"
	_, err = New(cfg, db)
	assert.True(t, errors.Is(err, types.ErrInvalidParam))
}
