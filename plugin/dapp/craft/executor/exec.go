// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ct "github.com/33cn/wintergame/plugin/dapp/craft/types"
	"github.com/33cn/wintergame/types"
)

//Exec_Request burn the inputs and start the delay
func (c *Craft) Exec_Request(payload *ct.CraftRequest, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(c, tx, index)
	return action.request(payload)
}

//Exec_Claim produce the output of a request whose delay elapsed
func (c *Craft) Exec_Claim(payload *ct.CraftClaim, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(c, tx, index)
	return action.claim(payload)
}
