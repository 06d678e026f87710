// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"testing"

	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
	"github.com/33cn/wintergame/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifyConfig(t *testing.T) {
	cfg := util.TestConfig()
	admin, adminPriv := util.Genaddress()
	user, userPriv := util.Genaddress()
	util.AddAlloc(cfg, admin, "", 0, types.Coin)
	util.AddAlloc(cfg, user, "", 0, types.Coin)
	util.SetSubConfig(cfg, mty.ManageX, map[string]interface{}{"superManager": []string{admin}})
	chain, err := util.NewChain(cfg)
	require.NoError(t, err)

	_, err = chain.ExecAndCheck(types.ExecOk,
		util.CreateManageTx(adminPriv, mty.KeyArenaMinFee, mty.OpAdd, "10"),
		util.CreateManageTx(adminPriv, mty.KeyArenaMinFee, mty.OpAdd, "20"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20"}, mty.GetConfValue(chain.StateDB(), mty.KeyArenaMinFee))
	assert.Equal(t, int64(20), mty.GetConfInt64(chain.StateDB(), mty.KeyArenaMinFee, 1))
	assert.True(t, mty.IsConfValue(chain.StateDB(), mty.KeyArenaMinFee, "10"))

	detail, err := chain.ExecAndCheck(types.ExecErr, util.CreateManageTx(userPriv, mty.KeyArenaMinFee, mty.OpAdd, "1"))
	require.NoError(t, err)
	assert.Equal(t, types.ErrNoPermission.Error(), util.ErrLog(detail.Receipts[0]))

	detail, err = chain.ExecAndCheck(types.ExecErr, util.CreateManageTx(adminPriv, mty.KeyArenaMinFee, "replace", "1"))
	require.NoError(t, err)
	assert.Equal(t, mty.ErrBadConfigOp.Error(), util.ErrLog(detail.Receipts[0]))

	_, err = chain.ExecAndCheck(types.ExecOk, util.CreateManageTx(adminPriv, mty.KeyArenaMinFee, mty.OpDelete, "20"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), mty.GetConfInt64(chain.StateDB(), mty.KeyArenaMinFee, 1))

	msg, err := chain.Query(mty.ManageX, "GetConfigItem", &types.ReqString{Data: mty.KeyArenaMinFee})
	require.NoError(t, err)
	assert.Equal(t, []string{"10"}, msg.(*types.ConfigItem).Value)

	msg, err = chain.Query(mty.ManageX, "GetConfigItem", &types.ReqString{Data: mty.KeyArenaMaxFee})
	require.NoError(t, err)
	assert.Empty(t, msg.(*types.ConfigItem).Value)

	_, err = chain.Query(mty.ManageX, "GetConfigItem", &types.ReqString{})
	assert.Equal(t, mty.ErrBadConfigKey, err)
	assert.Equal(t, int64(7), mty.GetConfInt64(chain.StateDB(), "unset-key", 7))
}
