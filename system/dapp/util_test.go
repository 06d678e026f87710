// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"errors"
	"testing"

	"github.com/33cn/wintergame/common/address"
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//stateKV state view over a memory db, Set fails once failAt keys were written
type stateKV struct {
	dbm.DB
	sets   int
	failAt int
}

func (s *stateKV) Set(key, value []byte) error {
	if s.failAt > 0 && s.sets >= s.failAt {
		return errors.New("disk full")
	}
	s.sets++
	return s.DB.Set(key, value)
}

func (s *stateKV) Begin()        {}
func (s *stateKV) Rollback()     {}
func (s *stateKV) Commit() error { return nil }

func newStateKV(t *testing.T, failAt int) *stateKV {
	mem, err := dbm.NewGoMemDB("test", "", 0)
	require.Nil(t, err)
	return &stateKV{DB: mem, failAt: failAt}
}

func TestKVCreator(t *testing.T) {
	kvdb := newStateKV(t, 0)
	creator := NewKVCreator(kvdb)
	creator.AddKVOnly([]byte("a"), []byte("b"))
	_, err := kvdb.Get([]byte("a"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	creator.Add([]byte("a"), []byte("b"))
	value, err := kvdb.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("b"), value)

	creator.AddEncode([]byte("n"), &types.Int64{Data: 7})
	creator.AddList([]*types.KeyValue{{Key: []byte("l1"), Value: []byte("vl1")}})
	assert.Equal(t, 4, len(creator.KVList()))
	value, err = kvdb.Get([]byte("n"))
	require.Nil(t, err)
	var n types.Int64
	require.Nil(t, types.Decode(value, &n))
	assert.Equal(t, int64(7), n.Data)

	log := types.NewLog(types.TyLogErr, &types.ReqString{Data: "x"})
	receipt, err := creator.Receipt(log)
	require.Nil(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.KV, 4)
	assert.Equal(t, []*types.ReceiptLog{log}, receipt.Logs)
}

func TestKVCreatorSetError(t *testing.T) {
	kvdb := newStateKV(t, 1)
	creator := NewKVCreator(kvdb).Add([]byte("a"), []byte("1")).Add([]byte("b"), []byte("2")).Add([]byte("c"), []byte("3"))
	assert.EqualError(t, creator.Err(), "disk full")
	assert.Len(t, creator.KVList(), 1)
	_, err := kvdb.Get([]byte("c"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	receipt, err := creator.Receipt()
	assert.Nil(t, receipt)
	assert.EqualError(t, err, "disk full")
}

func TestHeightIndexStr(t *testing.T) {
	assert.Equal(t, "000000000000001001", HeightIndexStr(1, 1))
}

func TestRegister(t *testing.T) {
	Register("dapptest", func() Driver { return nil })
	assert.Panics(t, func() { Register("dapptest", func() Driver { return nil }) })
	addr := ExecAddress("dapptest")
	assert.Equal(t, address.ExecAddress("dapptest"), addr)
	assert.True(t, IsDriverAddress(addr))
	assert.Nil(t, CheckAddress(addr))
	assert.False(t, IsDriverAddress(address.ExecAddress("nobody")))
	assert.Contains(t, ListDrivers(), "dapptest")

	_, err := LoadDriver("nobody")
	assert.Equal(t, types.ErrUnRegistedDriver, err)
}
