// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
)

// Exec_Modify modify config
func (c *Manage) Exec_Modify(manageAction *mty.ModifyConfig, tx *types.Transaction, index int) (*types.Receipt, error) {
	clog.Info("manage.Exec", "start index", index)
	if !c.IsSuperManager(tx.From()) {
		return nil, types.ErrNoPermission
	}
	action := newAction(c, tx, int32(index))
	return action.modifyConfig(manageAction)
}
