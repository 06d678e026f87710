// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	at "github.com/33cn/wintergame/plugin/dapp/arena/types"
	drivers "github.com/33cn/wintergame/system/dapp"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "execs.arena")

var driverName = at.ArenaX

//defaults of [exec.sub.arena], overridden by the manage items arena-min-fee and arena-max-fee
const (
	DefaultMinEntranceFee = int64(1)
	DefaultMaxEntranceFee = 1000 * types.Coin
	DefaultCount          = int32(20)
	MaxCount              = int32(100)
)

type subConfig struct {
	MinEntranceFee int64 `json:"minEntranceFee"`
	MaxEntranceFee int64 `json:"maxEntranceFee"`
}

//Init register the driver
func Init(name string, cfg *types.Config) {
	drivers.Register(GetName(), newArena)
}

//GetName driver name
func GetName() string {
	return newArena().GetName()
}

//Arena duel executor
type Arena struct {
	drivers.DriverBase
}

func newArena() drivers.Driver {
	a := &Arena{}
	a.SetChild(a)
	a.SetExecutorType(types.LoadExecutorType(driverName))
	return a
}

//GetDriverName driver name
func (a *Arena) GetDriverName() string {
	return driverName
}

func (a *Arena) getSubConfig() *subConfig {
	sub := &subConfig{MinEntranceFee: DefaultMinEntranceFee, MaxEntranceFee: DefaultMaxEntranceFee}
	if cfg := a.GetConfig(); cfg != nil {
		cfg.MustDecodeSubConfig(driverName, sub)
	}
	return sub
}

//Key state key of a game
func Key(id string) (key []byte) {
	key = append(key, []byte("mavl-"+at.ArenaX+"-game-")...)
	key = append(key, []byte(id)...)
	return key
}

func calcGameStatusIndexKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-arena-status:%d:%018d", status, index))
}

func calcGameStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-arena-status:%d:", status))
}

func calcGameAddrIndexKey(status int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-arena-addr:%d:%s:%018d", status, addr, index))
}

func calcGameAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-arena-addr:%d:%s:", status, addr))
}

func addGameStatusIndex(status int32, gameID string, index int64) *types.KeyValue {
	record := &at.GameRecord{GameId: gameID, Index: index}
	return &types.KeyValue{Key: calcGameStatusIndexKey(status, index), Value: types.Encode(record)}
}

func addGameAddrIndex(status int32, gameID, addr string, index int64) *types.KeyValue {
	record := &at.GameRecord{GameId: gameID, Index: index}
	return &types.KeyValue{Key: calcGameAddrIndexKey(status, addr, index), Value: types.Encode(record)}
}

func delGameStatusIndex(status int32, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcGameStatusIndexKey(status, index)}
}

func delGameAddrIndex(status int32, addr string, index int64) *types.KeyValue {
	//value 为 nil, 提交时删除
	return &types.KeyValue{Key: calcGameAddrIndexKey(status, addr, index)}
}

//updateIndex 建立新状态的索引, 删除旧状态的索引
func (a *Arena) updateIndex(log *at.ReceiptArena) (kvs []*types.KeyValue) {
	kvs = append(kvs, addGameStatusIndex(log.Status, log.GameId, log.Index))
	kvs = append(kvs, addGameAddrIndex(log.Status, log.GameId, log.Initiator, log.Index))
	switch log.Status {
	case at.GameStatusStaged:
		kvs = append(kvs, addGameAddrIndex(log.Status, log.GameId, log.Competitor, log.Index))
		kvs = append(kvs, delGameStatusIndex(at.GameStatusOpen, log.PrevIndex))
		kvs = append(kvs, delGameAddrIndex(at.GameStatusOpen, log.Initiator, log.PrevIndex))
	case at.GameStatusResolved:
		kvs = append(kvs, addGameAddrIndex(log.Status, log.GameId, log.Competitor, log.Index))
		kvs = append(kvs, delGameStatusIndex(at.GameStatusStaged, log.PrevIndex))
		kvs = append(kvs, delGameAddrIndex(at.GameStatusStaged, log.Initiator, log.PrevIndex))
		kvs = append(kvs, delGameAddrIndex(at.GameStatusStaged, log.Competitor, log.PrevIndex))
	}
	return kvs
}

func (a *Arena) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case at.TyLogArenaCreate, at.TyLogArenaJoin, at.TyLogArenaResolve:
			var gamelog at.ReceiptArena
			if err := types.Decode(item.Log, &gamelog); err != nil {
				return nil, err
			}
			set.KV = append(set.KV, a.updateIndex(&gamelog)...)
		}
	}
	return set, nil
}
