// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/wintergame/common/db"
	ct "github.com/33cn/wintergame/plugin/dapp/craft/types"
	"github.com/33cn/wintergame/types"
)

//Query_GetRequest pending request of an owner and when it becomes claimable
func (c *Craft) Query_GetRequest(in *ct.ReqCraftRequest) (types.Message, error) {
	if in.Owner == "" {
		return nil, types.ErrInvalidAddress
	}
	w, err := c.getWorkflow(in.Workflow)
	if err != nil {
		return nil, err
	}
	mreq := loadRequest(c.GetStateDB(), in.Owner, w.Name)
	if mreq == nil {
		return &ct.ReplyCraftRequest{}, nil
	}
	reply := &ct.ReplyCraftRequest{Request: mreq, Pending: true, ReadyAt: mreq.RequestedAt + w.Delay}
	reply.Ready = c.GetEnv().Clock(mreq.Clock) >= reply.ReadyAt
	return reply, nil
}

//Query_ListWorkflows catalog in use
func (c *Craft) Query_ListWorkflows(in *types.ReqNil) (types.Message, error) {
	catalog, err := c.catalog()
	if err != nil {
		return nil, err
	}
	reply := &ct.ReplyWorkflows{}
	for _, w := range catalog.Workflows {
		reply.Workflows = append(reply.Workflows, w.Info())
	}
	return reply, nil
}

//Query_ListCrafts claims of an owner
func (c *Craft) Query_ListCrafts(in *ct.ReqCraftHistory) (types.Message, error) {
	if in.Owner == "" {
		return nil, types.ErrInvalidAddress
	}
	direction := dbm.ListDESC
	if in.Direction == dbm.ListASC {
		direction = dbm.ListASC
	}
	count := DefaultCount
	if 0 < in.Count && in.Count <= MaxCount {
		count = in.Count
	}
	var key []byte
	if in.Index != 0 {
		key = calcCraftKey(in.Owner, in.Index)
	}
	values, err := c.GetLocalDB().List(calcCraftPrefix(in.Owner), key, count, direction)
	if err == types.ErrNotFound {
		return &ct.ReplyCraftHistory{}, nil
	}
	if err != nil {
		return nil, err
	}
	reply := &ct.ReplyCraftHistory{}
	for _, value := range values {
		var r ct.ReceiptCraftClaim
		if err := types.Decode(value, &r); err != nil {
			continue
		}
		reply.Claims = append(reply.Claims, &r)
	}
	return reply, nil
}
