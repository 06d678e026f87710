// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
)

// Query_GetConfigItem current value of a config item
func (c *Manage) Query_GetConfigItem(in *types.ReqString) (types.Message, error) {
	if in.Data == "" {
		return nil, mty.ErrBadConfigKey
	}
	item, err := mty.LoadConfigItem(c.GetStateDB(), in.Data)
	if err == types.ErrNotFound {
		return &types.ConfigItem{Key: in.Data}, nil
	}
	return item, err
}
