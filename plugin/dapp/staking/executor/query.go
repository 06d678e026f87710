// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	"github.com/33cn/wintergame/account"
	dbm "github.com/33cn/wintergame/common/db"
	st "github.com/33cn/wintergame/plugin/dapp/staking/types"
	"github.com/33cn/wintergame/types"
)

//Query_GetStake stakes and markers of an owner, with the reward claimable now
func (s *Staking) Query_GetStake(in *st.ReqStake) (types.Message, error) {
	pool, err := s.getPool(in.Pool)
	if err != nil {
		return nil, err
	}
	if in.Owner == "" {
		return nil, types.ErrInvalidAddress
	}
	db := s.GetStateDB()
	acc := loadAccount(db, pool.Name, in.Owner)
	reply := &st.ReplyStake{
		Pool:        pool.Name,
		Owner:       in.Owner,
		Anchor:      acc.Anchor,
		LastClaimAt: acc.LastClaimAt,
		Beneficiary: loadBeneficiary(db, in.Owner),
	}
	if len(acc.Classes) == 0 {
		return reply, nil
	}
	for _, class := range acc.Classes {
		reply.Stakes = append(reply.Stakes, loadStake(db, pool.Name, in.Owner, class))
	}
	reply.NextClaimAt = since(acc) + pool.Cooldown
	if s.GetEnv().Clock(pool.Clock) >= reply.NextClaimAt {
		reply.Pending = accrued(db, pool, acc)
	}
	return reply, nil
}

//Query_GetPools configured pools
func (s *Staking) Query_GetPools(in *types.ReqNil) (types.Message, error) {
	return &st.ReplyPools{Pools: s.pools()}, nil
}

//Query_Leaderboard top stakers of a class in a pool, formatted with the class decimals
func (s *Staking) Query_Leaderboard(in *st.ReqLeaderboard) (types.Message, error) {
	pool, err := s.getPool(in.Pool)
	if err != nil {
		return nil, err
	}
	lister := s.GetStateLister()
	if lister == nil {
		return nil, types.ErrActionNotSupport
	}
	tc, err := account.LoadClass(s.GetStateDB(), in.Class)
	if err != nil {
		return nil, types.ErrUnknownToken
	}
	kvs, err := lister.PrefixScan(stakePrefix(pool.Name))
	if err != nil {
		return nil, err
	}
	entries := leaders(kvs, in.Class)
	count := int(DefaultCount)
	if 0 < in.Count && in.Count <= MaxCount {
		count = int(in.Count)
	}
	if len(entries) > count {
		entries = entries[:count]
	}
	for _, e := range entries {
		e.Formatted = types.FormatAmount(e.Amount, tc.Decimals)
	}
	return &st.ReplyLeaderboard{Entries: entries}, nil
}

func leaders(kvs []dbm.KeyValue, class string) []*st.LeaderEntry {
	var entries []*st.LeaderEntry
	for _, kv := range kvs {
		var rec st.StakeRecord
		if err := types.Decode(kv.Value, &rec); err != nil {
			slog.Error("leaders decode", "key", string(kv.Key), "err", err)
			continue
		}
		if rec.Class != class || rec.Amount <= 0 {
			continue
		}
		entries = append(entries, &st.LeaderEntry{Owner: rec.Owner, Amount: rec.Amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount != entries[j].Amount {
			return entries[i].Amount > entries[j].Amount
		}
		return entries[i].Owner < entries[j].Owner
	})
	return entries
}

//Query_ListClaims reward history of an owner
func (s *Staking) Query_ListClaims(in *st.ReqClaims) (types.Message, error) {
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
		key = calcClaimKey(in.Owner, in.Index)
	}
	values, err := s.GetLocalDB().List(calcClaimPrefix(in.Owner), key, count, direction)
	if err == types.ErrNotFound {
		return &st.ReplyClaims{}, nil
	}
	if err != nil {
		return nil, err
	}
	reply := &st.ReplyClaims{}
	for _, value := range values {
		var r st.ReceiptReward
		if err := types.Decode(value, &r); err != nil {
			continue
		}
		reply.Claims = append(reply.Claims, &r)
	}
	return reply, nil
}
