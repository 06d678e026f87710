// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/wintergame/account"
	"github.com/33cn/wintergame/common/address"
	dbm "github.com/33cn/wintergame/common/db"
	st "github.com/33cn/wintergame/plugin/dapp/staking/types"
	drivers "github.com/33cn/wintergame/system/dapp"
	"github.com/33cn/wintergame/types"
)

type action struct {
	staking  *Staking
	db       dbm.KV
	fromaddr string
	payments []*types.Payment
	env      *types.BlockEnv
	execaddr string
	index    int
}

func newAction(s *Staking, tx *types.Transaction, index int) *action {
	return &action{
		staking:  s,
		db:       s.GetStateDB(),
		fromaddr: tx.From(),
		payments: tx.Payments,
		env:      s.GetEnv(),
		execaddr: s.GetExecAddr(),
		index:    index,
	}
}

func (action *action) getIndex() int64 {
	return action.env.Height*types.MaxTxsPerBlock + int64(action.index)
}

//stake add every attached payment to the caller's stake of its class, the first stake anchors the cooldown
func (action *action) stake(deposit *st.StakeDeposit) (*types.Receipt, error) {
	pool, err := action.staking.getPool(deposit.Pool)
	if err != nil {
		return nil, err
	}
	if len(action.payments) == 0 {
		return nil, st.ErrStakePayment
	}
	set, err := types.ValidatePayments(action.payments, types.PaymentRule{Name: pool.Accept, Prefix: pool.Accept})
	if err != nil {
		return nil, err
	}
	amounts := make(map[string]int64)
	var classes []string
	for _, p := range set.Get(pool.Accept) {
		if p.Nonce != 0 {
			return nil, st.ErrStakeNft
		}
		if _, ok := amounts[p.Token]; !ok {
			classes = append(classes, p.Token)
		}
		amounts[p.Token] += p.Amount
	}

	acc := loadAccount(action.db, pool.Name, action.fromaddr)
	if acc.Anchor == 0 && len(acc.Classes) == 0 {
		acc.Anchor = action.env.Clock(pool.Clock)
	}
	kvc := drivers.NewKVCreator(action.db)
	var logs []*types.ReceiptLog
	for _, class := range classes {
		rec := loadStake(action.db, pool.Name, action.fromaddr, class)
		total := rec.Amount + amounts[class]
		if total < rec.Amount || total >= types.MaxCoin {
			return nil, types.ErrSupplyOverflow
		}
		if rec.Amount == 0 && !contains(acc.Classes, class) {
			acc.Classes = append(acc.Classes, class)
		}
		rec.Amount = total
		kvc.AddEncode(stakeKey(pool.Name, action.fromaddr, class), rec)
		log := &st.ReceiptStake{
			Pool:   pool.Name,
			Owner:  action.fromaddr,
			Class:  class,
			Amount: amounts[class],
			Total:  total,
			Anchor: acc.Anchor,
		}
		logs = append(logs, types.NewLog(st.TyLogStake, log))
	}
	kvc.AddEncode(accountKey(pool.Name, action.fromaddr), acc)
	slog.Debug("stake", "pool", pool.Name, "owner", action.fromaddr, "classes", len(classes))
	return kvc.Receipt(logs...)
}

//claim mint the reward accrued since the last claim (or the anchor) once the cooldown elapsed
func (action *action) claim(claim *st.StakeClaim) (*types.Receipt, error) {
	pool, err := action.staking.getPool(claim.Pool)
	if err != nil {
		return nil, err
	}
	acc := loadAccount(action.db, pool.Name, action.fromaddr)
	if len(acc.Classes) == 0 {
		return nil, st.ErrNothingStaked
	}
	now := action.env.Clock(pool.Clock)
	elapsed := now - since(acc)
	if elapsed < pool.Cooldown {
		return nil, types.TemporalGatef("Cooldown has not elapsed, %d of %d %s", elapsed, pool.Cooldown, types.ClockUnit(pool.Clock))
	}
	reward := accrued(action.db, pool, acc)
	if reward <= 0 {
		return nil, st.ErrNoReward
	}
	token, err := rewardToken(action.staking.GetStateLister(), action.db, pool)
	if err != nil {
		return nil, err
	}

	to := action.fromaddr
	if b := loadBeneficiary(action.db, action.fromaddr); b != "" {
		to = b
	}
	tokenDB := account.NewTokenDB(token, 0, action.db)
	receipt, err := tokenDB.Mint(st.StakingX, action.execaddr, reward)
	if err != nil {
		slog.Error("claim.Mint", "pool", pool.Name, "token", token, "reward", reward, "err", err)
		return nil, err
	}
	r, err := tokenDB.Transfer(action.execaddr, to, reward)
	if err != nil {
		return nil, err
	}
	receipt = types.AppendReceipt(receipt, r)

	acc.LastClaimAt = now
	log := &st.ReceiptReward{
		Pool:    pool.Name,
		Owner:   action.fromaddr,
		To:      to,
		Token:   token,
		Reward:  reward,
		Elapsed: elapsed,
		ClaimAt: now,
		Index:   action.getIndex(),
	}
	r, err = drivers.NewKVCreator(action.db).AddEncode(accountKey(pool.Name, action.fromaddr), acc).Receipt(types.NewLog(st.TyLogStakeReward, log))
	if err != nil {
		return nil, err
	}
	receipt = types.AppendReceipt(receipt, r)
	slog.Info("claim", "pool", pool.Name, "owner", action.fromaddr, "to", to, "reward", reward, "token", token)
	return receipt, nil
}

func (action *action) setBeneficiary(b *st.StakeBeneficiary) (*types.Receipt, error) {
	if err := address.CheckAddress(b.Address); err != nil {
		return nil, types.ErrInvalidAddress
	}
	if b.Address == action.fromaddr {
		return nil, st.ErrSelfBeneficiary
	}
	prev := loadBeneficiary(action.db, action.fromaddr)
	log := &st.ReceiptBeneficiary{Owner: action.fromaddr, Prev: prev, Current: b.Address}
	return drivers.NewKVCreator(action.db).
		AddEncode(beneficiaryKey(action.fromaddr), &st.Beneficiary{Owner: action.fromaddr, Address: b.Address}).
		Receipt(types.NewLog(st.TyLogStakeBeneficiary, log))
}

func since(acc *st.StakeAccount) int64 {
	if acc.LastClaimAt != 0 {
		return acc.LastClaimAt
	}
	return acc.Anchor
}

//accrued sum of floor(stake / divisor) over the classes of the account
func accrued(db dbm.KV, pool *st.PoolInfo, acc *st.StakeAccount) int64 {
	var reward int64
	for _, class := range acc.Classes {
		reward += loadStake(db, pool.Name, acc.Owner, class).Amount / pool.Divisor
	}
	return reward
}

//rewardToken the reward class of a pool: an exact registered class, else the single registered class with that prefix
func rewardToken(lister dbm.Lister, db dbm.KV, pool *st.PoolInfo) (string, error) {
	tc, err := account.ResolveClass(lister, db, pool.Reward)
	if err != nil {
		slog.Error("rewardToken", "pool", pool.Name, "reward", pool.Reward, "err", err)
		return "", st.ErrRewardToken
	}
	return tc.Class, nil
}

func loadAccount(db dbm.KV, pool, owner string) *st.StakeAccount {
	acc := &st.StakeAccount{Pool: pool, Owner: owner}
	value, err := db.Get(accountKey(pool, owner))
	if err != nil || value == nil {
		return acc
	}
	if err := types.Decode(value, acc); err != nil {
		panic(err)
	}
	return acc
}

func loadStake(db dbm.KV, pool, owner, class string) *st.StakeRecord {
	rec := &st.StakeRecord{Pool: pool, Owner: owner, Class: class}
	value, err := db.Get(stakeKey(pool, owner, class))
	if err != nil || value == nil {
		return rec
	}
	if err := types.Decode(value, rec); err != nil {
		panic(err)
	}
	return rec
}

func loadBeneficiary(db dbm.KV, owner string) string {
	value, err := db.Get(beneficiaryKey(owner))
	if err != nil || value == nil {
		return ""
	}
	var b st.Beneficiary
	if err := types.Decode(value, &b); err != nil {
		panic(err)
	}
	return b.Address
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
