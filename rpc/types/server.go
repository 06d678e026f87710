// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/wintergame/types"
)

//ChainAPI node functions served over rpc
type ChainAPI interface {
	SendTx(tx *types.Transaction) ([]byte, error)
	LastBlock() *types.Block
	GetBlockDetail(height int64) (*types.BlockDetail, error)
	GetTx(hash []byte) (*types.TxResult, error)
	Query(execer, funcName string, params json.RawMessage) (types.Message, error)
	Subscribe(buffer int) (<-chan *types.Event, func())
}

//EventQuerier index of past events
type EventQuerier interface {
	QueryEvents(req *ReqEvents) ([]*types.Event, error)
}
