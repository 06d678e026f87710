// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	st "github.com/33cn/wintergame/plugin/dapp/staking/types"
	drivers "github.com/33cn/wintergame/system/dapp"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var slog = log.New("module", "execs.staking")

var driverName = st.StakingX

//list limits
const (
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

type subConfig struct {
	Pools []*st.PoolInfo `json:"pools"`
}

//Init register the driver
func Init(name string, cfg *types.Config) {
	drivers.Register(GetName(), newStaking)
}

//GetName driver name
func GetName() string {
	return newStaking().GetName()
}

//Staking stake-and-accrue executor
type Staking struct {
	drivers.DriverBase
}

func newStaking() drivers.Driver {
	s := &Staking{}
	s.SetChild(s)
	s.SetExecutorType(types.LoadExecutorType(driverName))
	return s
}

//GetDriverName driver name
func (s *Staking) GetDriverName() string {
	return driverName
}

//pools configured pools, the defaults when none are configured, invalid entries are skipped
func (s *Staking) pools() []*st.PoolInfo {
	sub := &subConfig{}
	if cfg := s.GetConfig(); cfg != nil {
		cfg.MustDecodeSubConfig(driverName, sub)
	}
	if len(sub.Pools) == 0 {
		return st.DefaultPools()
	}
	pools := make([]*st.PoolInfo, 0, len(sub.Pools))
	for _, p := range sub.Pools {
		if err := st.CheckPool(p); err != nil {
			slog.Error("pools", "pool", p.Name, "err", err)
			continue
		}
		pools = append(pools, p)
	}
	return pools
}

func (s *Staking) getPool(name string) (*st.PoolInfo, error) {
	for _, p := range s.pools() {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, st.ErrPoolNotFound
}

//stake records of a pool share the prefix mavl-staking-stake-<pool>-
func stakePrefix(pool string) []byte {
	return []byte("mavl-" + st.StakingX + "-stake-" + pool + "-")
}

func stakeKey(pool, owner, class string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-stake-%s-%s-%s", st.StakingX, pool, owner, class))
}

func accountKey(pool, owner string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-account-%s-%s", st.StakingX, pool, owner))
}

func beneficiaryKey(owner string) []byte {
	return []byte("mavl-" + st.StakingX + "-beneficiary-" + owner)
}

func calcClaimKey(owner string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-staking-claim:%s:%018d", owner, index))
}

func calcClaimPrefix(owner string) []byte {
	return []byte(fmt.Sprintf("LODB-staking-claim:%s:", owner))
}

func (s *Staking) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != st.TyLogStakeReward {
			continue
		}
		var rlog st.ReceiptReward
		if err := types.Decode(item.Log, &rlog); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, &types.KeyValue{Key: calcClaimKey(rlog.Owner, rlog.Index), Value: item.Log})
	}
	return set, nil
}
