// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/wintergame/common/db"
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
)

type action struct {
	db       dbm.KV
	txhash   []byte
	fromaddr string
	height   int64
	index    int32
}

func newAction(m *Manage, tx *types.Transaction, index int32) *action {
	return &action{m.GetStateDB(), tx.Hash(), tx.From(), m.GetHeight(), index}
}

func (a *action) modifyConfig(modify *mty.ModifyConfig) (*types.Receipt, error) {
	if len(modify.Key) == 0 {
		return nil, mty.ErrBadConfigKey
	}
	if modify.Op != mty.OpAdd && modify.Op != mty.OpDelete {
		return nil, mty.ErrBadConfigOp
	}
	if len(modify.Value) == 0 {
		return nil, mty.ErrBadConfigValue
	}

	item, err := mty.LoadConfigItem(a.db, modify.Key)
	if err != nil {
		// if config item not exist, create a new empty
		item = &types.ConfigItem{Key: modify.Key, Value: make([]string, 0)}
	}
	copyItem := &types.ConfigItem{Key: item.Key, Value: append([]string{}, item.Value...)}

	switch modify.Op {
	case mty.OpAdd:
		item.Value = append(item.Value, modify.Value)
		clog.Info("modifyConfig", "add key", modify.Key, "from", copyItem.Value, "to", item.Value)
	case mty.OpDelete:
		item.Value = make([]string, 0)
		for _, value := range copyItem.Value {
			if value != modify.Value {
				item.Value = append(item.Value, value)
			}
		}
		clog.Info("modifyConfig", "delete key", modify.Key, "from", copyItem.Value, "to", item.Value)
	}

	key := []byte(types.ManageKey(modify.Key))
	valueSave := types.Encode(item)
	if err := a.db.Set(key, valueSave); err != nil {
		return nil, err
	}
	kv := []*types.KeyValue{{Key: key, Value: valueSave}}
	log := &types.ReceiptConfig{Prev: copyItem, Current: item}
	return types.NewReceipt(kv, []*types.ReceiptLog{types.NewLog(types.TyLogModifyConfig, log)}), nil
}
