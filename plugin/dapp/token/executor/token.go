// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
token 执行器: 用户申请发行 token, 由 token-manager 审核

发行流程
Issue    提交申请并附带手续费, 申请处于 pending 状态
Complete 管理员通过, 注册 token 并把全部发行量铸造给申请人
Reject   管理员拒绝, 手续费退回申请人
*/

import (
	"fmt"

	tt "github.com/33cn/wintergame/plugin/dapp/token/types"
	drivers "github.com/33cn/wintergame/system/dapp"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "execs.token")

var driverName = tt.TokenX

//list limits
const (
	DefaultCount = int32(20)
	MaxCount     = int32(100)
	//DefaultHolders holders per class in TopHolders
	DefaultHolders = int32(3)
)

type subConfig struct {
	IssueCost int64 `json:"issueCost"`
}

//Init register the driver
func Init(name string, cfg *types.Config) {
	drivers.Register(GetName(), newToken)
}

//GetName driver name
func GetName() string {
	return newToken().GetName()
}

//Token issuance and transfer executor
type Token struct {
	drivers.DriverBase
}

func newToken() drivers.Driver {
	t := &Token{}
	t.SetChild(t)
	t.SetExecutorType(types.LoadExecutorType(driverName))
	return t
}

//GetDriverName driver name
func (t *Token) GetDriverName() string {
	return driverName
}

func (t *Token) issueCost() int64 {
	sub := &subConfig{IssueCost: tt.DefaultIssueCost}
	if cfg := t.GetConfig(); cfg != nil {
		cfg.MustDecodeSubConfig(driverName, sub)
	}
	if sub.IssueCost < 0 {
		return tt.DefaultIssueCost
	}
	return sub.IssueCost
}

func calcIssueKey(identifier string) []byte {
	return []byte("mavl-" + tt.TokenX + "-issue-" + identifier)
}

func calcIssueStatusKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-token-issue:%d:%018d", status, index))
}

func calcIssueStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-token-issue:%d:", status))
}

func (t *Token) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case tt.TyLogTokenIssue, tt.TyLogTokenComplete, tt.TyLogTokenReject:
			var ilog tt.ReceiptIssue
			if err := types.Decode(item.Log, &ilog); err != nil {
				return nil, err
			}
			record := &tt.IssueRecord{Identifier: ilog.Identifier, Index: ilog.Index}
			set.KV = append(set.KV, &types.KeyValue{Key: calcIssueStatusKey(ilog.Status, ilog.Index), Value: types.Encode(record)})
			if ilog.PrevStatus != 0 {
				//value 为 nil, 提交时删除
				set.KV = append(set.KV, &types.KeyValue{Key: calcIssueStatusKey(ilog.PrevStatus, ilog.PrevIndex)})
			}
		}
	}
	return set, nil
}
