// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"fmt"

	"github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
)

// HeightIndexStr height and index format string
func HeightIndexStr(height, index int64) string {
	v := height*types.MaxTxsPerBlock + index
	return fmt.Sprintf("%018d", v)
}

//KVCreator collects the kvs of a receipt while writing them through to the state view.
//The first write error sticks: later adds are skipped and Receipt returns it.
type KVCreator struct {
	kvs  []*types.KeyValue
	kvdb db.KV
	err  error
}

//NewKVCreator new
func NewKVCreator(kv db.KV) *KVCreator {
	return &KVCreator{kvdb: kv}
}

func (c *KVCreator) add(key, value []byte, set bool) *KVCreator {
	if c.err != nil {
		return c
	}
	if set {
		if err := c.kvdb.Set(key, value); err != nil {
			c.err = err
			return c
		}
	}
	c.kvs = append(c.kvs, &types.KeyValue{Key: key, Value: value})
	return c
}

//Add add and set to kvdb
func (c *KVCreator) Add(key, value []byte) *KVCreator {
	return c.add(key, value, true)
}

//AddEncode add the encoding of a message
func (c *KVCreator) AddEncode(key []byte, msg types.Message) *KVCreator {
	return c.add(key, types.Encode(msg), true)
}

//AddKVOnly only add KV
func (c *KVCreator) AddKVOnly(key, value []byte) *KVCreator {
	return c.add(key, value, false)
}

//AddList add kvs already written
func (c *KVCreator) AddList(list []*types.KeyValue) *KVCreator {
	if c.err == nil {
		c.kvs = append(c.kvs, list...)
	}
	return c
}

//KVList all kvs
func (c *KVCreator) KVList() []*types.KeyValue {
	return c.kvs
}

//Err first write error
func (c *KVCreator) Err() error {
	return c.err
}

//Receipt successful receipt of the collected kvs, or the first write error
func (c *KVCreator) Receipt(logs ...*types.ReceiptLog) (*types.Receipt, error) {
	if c.err != nil {
		return nil, c.err
	}
	return types.NewReceipt(c.kvs, logs), nil
}
