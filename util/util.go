// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util helpers to build, execute and inspect blocks without a running node
package util

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/common/address"
	"github.com/33cn/wintergame/common/crypto"
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/executor"
	"github.com/33cn/wintergame/pluginmgr"
	_ "github.com/33cn/wintergame/system" // coins and manage
	cty "github.com/33cn/wintergame/system/dapp/coins/types"
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var ulog = log.New("module", "util")

//Genaddress : generate a address
func Genaddress() (string, crypto.PrivKey) {
	privto, err := crypto.GenKey()
	if err != nil {
		panic(err)
	}
	addrto := address.PubKeyToAddress(privto.PubKey().Bytes())
	return addrto.String(), privto
}

//CreateTx : signed tx calling execer with payload, a zero priv leaves it unsigned
func CreateTx(priv crypto.PrivKey, execer string, payload types.Message, payments ...*types.Payment) *types.Transaction {
	tx := types.NewTransaction(execer, payload, payments...)
	if priv != (crypto.PrivKey{}) {
		tx.Sign(priv)
	}
	return tx
}

//CreateCoinsTx : native currency transfer
func CreateCoinsTx(priv crypto.PrivKey, to string, amount int64) *types.Transaction {
	action := &cty.CoinsAction{
		Ty:       cty.CoinsActionTransfer,
		Transfer: &cty.CoinsTransfer{To: to, Amount: amount},
	}
	return CreateTx(priv, cty.CoinsX, action)
}

//CreateManageTx : manage config modification
func CreateManageTx(priv crypto.PrivKey, key, op, value string) *types.Transaction {
	action := &mty.ManageAction{
		Ty:     mty.ManageActionModifyConfig,
		Modify: &mty.ModifyConfig{Key: key, Op: op, Value: value},
	}
	return CreateTx(priv, mty.ManageX, action)
}

// JSONPrint : print in json format
func JSONPrint(t *testing.T, input interface{}) {
	data, err := json.MarshalIndent(input, "", "\t")
	if err != nil {
		t.Error(err)
		return
	}
	if t == nil {
		fmt.Println(string(data))
	} else {
		t.Log(string(data))
	}
}

//SaveKVList 保存kvs to database
func SaveKVList(kvdb dbm.DB, kvs []*types.KeyValue) {
	batch := kvdb.NewBatch(true)
	for i := 0; i < len(kvs); i++ {
		if kvs[i].Value == nil {
			batch.Delete(kvs[i].Key)
			continue
		}
		batch.Set(kvs[i].Key, kvs[i].Value)
	}
	err := batch.Write()
	if err != nil {
		panic(err)
	}
}

//PrintKV 打印KVList
func PrintKV(kvs []*types.KeyValue) {
	for i := 0; i < len(kvs); i++ {
		fmt.Printf("KV %d %s(%s)\n", i, string(kvs[i].Key), common.ToHex(kvs[i].Value))
	}
}

//ErrLog diagnostic of a failed receipt, empty for a successful one
func ErrLog(receipt *types.ReceiptData) string {
	if receipt == nil || receipt.Ty != types.ExecErr {
		return ""
	}
	for _, l := range receipt.Logs {
		if l.Ty != types.TyLogErr {
			continue
		}
		var reply types.ReplyString
		if err := types.Decode(l.Log, &reply); err == nil {
			return reply.Data
		}
	}
	return ""
}

//Chain in memory chain: executes blocks on top of a GoMemDB and keeps the last block
type Chain struct {
	Cfg  *types.Config
	DB   dbm.DB
	Exec *executor.Executor
	Last *types.Block
	// signs the seed chain of the produced blocks
	Producer crypto.PrivKey

	skipRounds  int64
	skipSeconds int64
}

//NewChain chain with the genesis block of cfg executed, every registered plugin is initialized
func NewChain(cfg *types.Config) (*Chain, error) {
	pluginmgr.InitExec(cfg)
	db, err := dbm.NewGoMemDB("testchain", "", 0)
	if err != nil {
		return nil, err
	}
	producer, err := crypto.GenKey()
	if err != nil {
		return nil, err
	}
	chain := &Chain{Cfg: cfg, DB: db, Exec: executor.New(cfg, db), Producer: producer}
	genesis, err := executor.GenesisBlock(cfg)
	if err != nil {
		return nil, err
	}
	detail, kvs, err := chain.Exec.ExecBlock(genesis)
	if err != nil {
		return nil, errors.Wrap(err, "exec genesis")
	}
	for i, r := range detail.Receipts {
		if r.Ty != types.ExecOk {
			return nil, errors.Errorf("genesis tx %d failed: %s", i, ErrLog(r))
		}
	}
	SaveKVList(db, kvs)
	chain.setLast(genesis)
	ulog.Debug("NewChain", "genesis txs", len(genesis.Txs), "kvs", len(kvs))
	return chain, nil
}

func (chain *Chain) setLast(block *types.Block) {
	chain.Last = block
	chain.Exec.SetLastEnv(block.Env())
}

//Advance the next block is produced rounds heights and seconds later than usual
func (chain *Chain) Advance(rounds, seconds int64) {
	chain.skipRounds += rounds
	chain.skipSeconds += seconds
}

//NextBlock block following the last one, one height and one second later plus any advance
func (chain *Chain) NextBlock(txs []*types.Transaction) *types.Block {
	height := chain.Last.Height + 1 + chain.skipRounds
	blockTime := chain.Last.BlockTime + 1 + chain.skipSeconds
	chain.skipRounds, chain.skipSeconds = 0, 0
	return types.NewBlock(chain.Producer, chain.Last, txs, height, blockTime, chain.Cfg.BlockChain.RoundsPerEpoch)
}

//ExecTxs execute txs in a new block and persist it
func (chain *Chain) ExecTxs(txs ...*types.Transaction) (*types.BlockDetail, error) {
	block := chain.NextBlock(txs)
	detail, kvs, err := chain.Exec.ExecBlock(block)
	if err != nil {
		return nil, err
	}
	SaveKVList(chain.DB, kvs)
	chain.setLast(block)
	return detail, nil
}

//ExecAndCheck execute txs in a new block, every receipt must have status
func (chain *Chain) ExecAndCheck(status int32, txs ...*types.Transaction) (*types.BlockDetail, error) {
	detail, err := chain.ExecTxs(txs...)
	if err != nil {
		return nil, err
	}
	for i, r := range detail.Receipts {
		if r.Ty != status {
			return detail, errors.Errorf("tx %d status %d want %d: %s", i, r.Ty, status, ErrLog(r))
		}
	}
	return detail, nil
}

//Balance balance of a token instance at the last block
func (chain *Chain) Balance(class string, nonce uint64, addr string) int64 {
	return account.NewTokenDB(class, nonce, executor.NewStateDB(chain.DB)).Balance(addr)
}

//StateDB read only view of the last state
func (chain *Chain) StateDB() *executor.StateDB {
	return executor.NewStateDB(chain.DB)
}

//Query call a query with a json encoded request
func (chain *Chain) Query(execer, funcName string, req interface{}) (types.Message, error) {
	params, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return chain.Exec.Query(execer, funcName, params)
}

//Events events of an executed block
func (chain *Chain) Events(detail *types.BlockDetail) []*types.Event {
	return executor.Events(detail)
}

//MintNft mint an nft instance straight into the last state, minter must be allowed by the class
func (chain *Chain) MintNft(minter, owner string, attrs *types.NftAttributes) (uint64, error) {
	stateDB := executor.NewStateDB(chain.DB)
	nonce, _, err := account.MintNft(stateDB, minter, owner, attrs)
	if err != nil {
		return 0, err
	}
	SaveKVList(chain.DB, stateDB.KVs())
	return nonce, nil
}
