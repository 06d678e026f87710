// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"

	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/common/version"
	rpctypes "github.com/33cn/wintergame/rpc/types"
	"github.com/33cn/wintergame/types"
)

//MaxBlockRange blocks returned by one GetBlocks call
const MaxBlockRange = 100

//Winter json rpc service, methods are called as Winter.<Method>
type Winter struct {
	api    rpctypes.ChainAPI
	events rpctypes.EventQuerier
	title  string
}

//SendTransaction hex encoded signed tx, replies the tx hash
func (c *Winter) SendTransaction(in rpctypes.RawParm, result *interface{}) error {
	data, err := common.FromHex(in.Data)
	if err != nil {
		return types.ErrDecode
	}
	var tx types.Transaction
	if err := types.Decode(data, &tx); err != nil {
		return types.ErrDecode
	}
	hash, err := c.api.SendTx(&tx)
	if err != nil {
		log.Debug("SendTransaction", "err", err)
		return err
	}
	*result = common.ToHex(hash)
	return nil
}

//CreateRawTransaction unsigned tx built from the json form of an action, hex encoded
func (c *Winter) CreateRawTransaction(in rpctypes.CreateTx, result *interface{}) error {
	exec := types.LoadExecutorType(in.Execer)
	if exec == nil {
		return types.ErrActionNotSupport
	}
	tx, err := exec.CreateTx(in.ActionName, in.Payload, in.Payments...)
	if err != nil {
		return err
	}
	*result = common.ToHex(types.Encode(tx))
	return nil
}

//Query call a query of an executor against the last state
func (c *Winter) Query(in rpctypes.Query4Jrpc, result *interface{}) error {
	if in.Execer == "" || in.FuncName == "" {
		return types.ErrInvalidParam
	}
	reply, err := c.api.Query(in.Execer, in.FuncName, in.Payload)
	if err != nil {
		log.Debug("Query", "execer", in.Execer, "func", in.FuncName, "err", err)
		return err
	}
	*result = json.RawMessage(types.MustPBToJSON(reply))
	return nil
}

//GetLastHeader header of the last block
func (c *Winter) GetLastHeader(in *types.ReqNil, result *interface{}) error {
	block := c.api.LastBlock()
	if block == nil {
		return types.ErrBlockNotFound
	}
	*result = rpctypes.DecodeHeader(block)
	return nil
}

//GetBlocks blocks in [start, end], receipts only with isDetail
func (c *Winter) GetBlocks(in rpctypes.BlockParam, result *interface{}) error {
	if in.Start < 0 || in.End < in.Start || in.End-in.Start >= MaxBlockRange {
		return types.ErrInvalidParam
	}
	var reply rpctypes.BlockDetails
	for h := in.Start; h <= in.End; h++ {
		detail, err := c.api.GetBlockDetail(h)
		if err != nil {
			return err
		}
		item, err := rpctypes.DecodeBlockDetail(detail, in.IsDetail)
		if err != nil {
			return err
		}
		reply.Items = append(reply.Items, item)
	}
	*result = &reply
	return nil
}

//QueryTransaction executed tx by hash
func (c *Winter) QueryTransaction(in rpctypes.QueryParm, result *interface{}) error {
	hash, err := common.FromHex(in.Hash)
	if err != nil {
		return types.ErrDecode
	}
	res, err := c.api.GetTx(hash)
	if err != nil {
		return err
	}
	detail, err := rpctypes.DecodeTxResult(res)
	if err != nil {
		return err
	}
	*result = detail
	return nil
}

//GetEvents indexed events matching the filter
func (c *Winter) GetEvents(in rpctypes.ReqEvents, result *interface{}) error {
	if c.events == nil {
		return types.ErrActionNotSupport
	}
	events, err := c.events.QueryEvents(&in)
	if err != nil {
		return err
	}
	if events == nil {
		events = []*types.Event{}
	}
	*result = &rpctypes.ReplyEvents{Events: events}
	return nil
}

//Version node version and height
func (c *Winter) Version(in *types.ReqNil, result *interface{}) error {
	reply := &rpctypes.NodeVersion{Title: c.title, Version: version.GetAppVersion(), Height: -1}
	if block := c.api.LastBlock(); block != nil {
		reply.Height = block.Height
	}
	*result = reply
	return nil
}
