// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//StakingAction staking payload, Ty selects the action
type StakingAction struct {
	Ty             int32             `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Stake          *StakeDeposit     `protobuf:"bytes,2,opt,name=stake,proto3" json:"stake,omitempty"`
	Claim          *StakeClaim       `protobuf:"bytes,3,opt,name=claim,proto3" json:"claim,omitempty"`
	SetBeneficiary *StakeBeneficiary `protobuf:"bytes,4,opt,name=set_beneficiary,proto3" json:"setBeneficiary,omitempty"`
}

func (m *StakingAction) Reset()         { *m = StakingAction{} }
func (m *StakingAction) String() string { return proto.CompactTextString(m) }
func (*StakingAction) ProtoMessage()    {}

//GetTy getter
func (m *StakingAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetStake getter
func (m *StakingAction) GetStake() *StakeDeposit {
	if m != nil {
		return m.Stake
	}
	return nil
}

//GetClaim getter
func (m *StakingAction) GetClaim() *StakeClaim {
	if m != nil {
		return m.Claim
	}
	return nil
}

//GetSetBeneficiary getter
func (m *StakingAction) GetSetBeneficiary() *StakeBeneficiary {
	if m != nil {
		return m.SetBeneficiary
	}
	return nil
}

//StakeDeposit stake the attached tokens into a pool
type StakeDeposit struct {
	Pool string `protobuf:"bytes,1,opt,name=pool,proto3" json:"pool,omitempty"`
}

func (m *StakeDeposit) Reset()         { *m = StakeDeposit{} }
func (m *StakeDeposit) String() string { return proto.CompactTextString(m) }
func (*StakeDeposit) ProtoMessage()    {}

//GetPool getter
func (m *StakeDeposit) GetPool() string {
	if m != nil {
		return m.Pool
	}
	return ""
}

//StakeClaim mint the accrued reward of a pool
type StakeClaim struct {
	Pool string `protobuf:"bytes,1,opt,name=pool,proto3" json:"pool,omitempty"`
}

func (m *StakeClaim) Reset()         { *m = StakeClaim{} }
func (m *StakeClaim) String() string { return proto.CompactTextString(m) }
func (*StakeClaim) ProtoMessage()    {}

//GetPool getter
func (m *StakeClaim) GetPool() string {
	if m != nil {
		return m.Pool
	}
	return ""
}

//StakeBeneficiary receiver of every later reward of the caller
type StakeBeneficiary struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *StakeBeneficiary) Reset()         { *m = StakeBeneficiary{} }
func (m *StakeBeneficiary) String() string { return proto.CompactTextString(m) }
func (*StakeBeneficiary) ProtoMessage()    {}

//GetAddress getter
func (m *StakeBeneficiary) GetAddress() string {
	if m != nil {
		return m.Address
	}
	return ""
}

//StakeRecord staked amount of one class by one owner in one pool
type StakeRecord struct {
	Pool   string `protobuf:"bytes,1,opt,name=pool,proto3" json:"pool,omitempty"`
	Owner  string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Class  string `protobuf:"bytes,3,opt,name=class,proto3" json:"class,omitempty"`
	Amount int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *StakeRecord) Reset()         { *m = StakeRecord{} }
func (m *StakeRecord) String() string { return proto.CompactTextString(m) }
func (*StakeRecord) ProtoMessage()    {}

//GetPool getter
func (m *StakeRecord) GetPool() string {
	if m != nil {
		return m.Pool
	}
	return ""
}

//GetOwner getter
func (m *StakeRecord) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetClass getter
func (m *StakeRecord) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetAmount getter
func (m *StakeRecord) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//StakeAccount per pool markers of an owner
type StakeAccount struct {
	Pool        string   `protobuf:"bytes,1,opt,name=pool,proto3" json:"pool,omitempty"`
	Owner       string   `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Anchor      int64    `protobuf:"varint,3,opt,name=anchor,proto3" json:"anchor,omitempty"`
	LastClaimAt int64    `protobuf:"varint,4,opt,name=last_claim_at,proto3" json:"lastClaimAt,omitempty"`
	Classes     []string `protobuf:"bytes,5,rep,name=classes,proto3" json:"classes,omitempty"`
}

func (m *StakeAccount) Reset()         { *m = StakeAccount{} }
func (m *StakeAccount) String() string { return proto.CompactTextString(m) }
func (*StakeAccount) ProtoMessage()    {}

//GetPool getter
func (m *StakeAccount) GetPool() string {
	if m != nil {
		return m.Pool
	}
	return ""
}

//GetOwner getter
func (m *StakeAccount) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetAnchor getter
func (m *StakeAccount) GetAnchor() int64 {
	if m != nil {
		return m.Anchor
	}
	return 0
}

//GetLastClaimAt getter
func (m *StakeAccount) GetLastClaimAt() int64 {
	if m != nil {
		return m.LastClaimAt
	}
	return 0
}

//GetClasses getter
func (m *StakeAccount) GetClasses() []string {
	if m != nil {
		return m.Classes
	}
	return nil
}

//Beneficiary registered reward receiver
type Beneficiary struct {
	Owner   string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Address string `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *Beneficiary) Reset()         { *m = Beneficiary{} }
func (m *Beneficiary) String() string { return proto.CompactTextString(m) }
func (*Beneficiary) ProtoMessage()    {}

//GetOwner getter
func (m *Beneficiary) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetAddress getter
func (m *Beneficiary) GetAddress() string {
	if m != nil {
		return m.Address
	}
	return ""
}

//ReceiptStake stake log
type ReceiptStake struct {
	Pool   string `protobuf:"bytes,1,opt,name=pool,proto3" json:"pool,omitempty"`
	Owner  string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Class  string `protobuf:"bytes,3,opt,name=class,proto3" json:"class,omitempty"`
	Amount int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Total  int64  `protobuf:"varint,5,opt,name=total,proto3" json:"total,omitempty"`
	Anchor int64  `protobuf:"varint,6,opt,name=anchor,proto3" json:"anchor,omitempty"`
}

func (m *ReceiptStake) Reset()         { *m = ReceiptStake{} }
func (m *ReceiptStake) String() string { return proto.CompactTextString(m) }
func (*ReceiptStake) ProtoMessage()    {}

//GetPool getter
func (m *ReceiptStake) GetPool() string {
	if m != nil {
		return m.Pool
	}
	return ""
}

//GetOwner getter
func (m *ReceiptStake) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetClass getter
func (m *ReceiptStake) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetAmount getter
func (m *ReceiptStake) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//GetTotal getter
func (m *ReceiptStake) GetTotal() int64 {
	if m != nil {
		return m.Total
	}
	return 0
}

//GetAnchor getter
func (m *ReceiptStake) GetAnchor() int64 {
	if m != nil {
		return m.Anchor
	}
	return 0
}

//ReceiptReward reward claim log
type ReceiptReward struct {
	Pool    string `protobuf:"bytes,1,opt,name=pool,proto3" json:"pool,omitempty"`
	Owner   string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	To      string `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	Token   string `protobuf:"bytes,4,opt,name=token,proto3" json:"token,omitempty"`
	Reward  int64  `protobuf:"varint,5,opt,name=reward,proto3" json:"reward,omitempty"`
	Elapsed int64  `protobuf:"varint,6,opt,name=elapsed,proto3" json:"elapsed,omitempty"`
	ClaimAt int64  `protobuf:"varint,7,opt,name=claim_at,proto3" json:"claimAt,omitempty"`
	Index   int64  `protobuf:"varint,8,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReceiptReward) Reset()         { *m = ReceiptReward{} }
func (m *ReceiptReward) String() string { return proto.CompactTextString(m) }
func (*ReceiptReward) ProtoMessage()    {}

//GetPool getter
func (m *ReceiptReward) GetPool() string {
	if m != nil {
		return m.Pool
	}
	return ""
}

//GetOwner getter
func (m *ReceiptReward) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetTo getter
func (m *ReceiptReward) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

//GetToken getter
func (m *ReceiptReward) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

//GetReward getter
func (m *ReceiptReward) GetReward() int64 {
	if m != nil {
		return m.Reward
	}
	return 0
}

//GetElapsed getter
func (m *ReceiptReward) GetElapsed() int64 {
	if m != nil {
		return m.Elapsed
	}
	return 0
}

//GetClaimAt getter
func (m *ReceiptReward) GetClaimAt() int64 {
	if m != nil {
		return m.ClaimAt
	}
	return 0
}

//GetIndex getter
func (m *ReceiptReward) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//ReceiptBeneficiary beneficiary change log
type ReceiptBeneficiary struct {
	Owner   string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Prev    string `protobuf:"bytes,2,opt,name=prev,proto3" json:"prev,omitempty"`
	Current string `protobuf:"bytes,3,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptBeneficiary) Reset()         { *m = ReceiptBeneficiary{} }
func (m *ReceiptBeneficiary) String() string { return proto.CompactTextString(m) }
func (*ReceiptBeneficiary) ProtoMessage()    {}

//GetOwner getter
func (m *ReceiptBeneficiary) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetPrev getter
func (m *ReceiptBeneficiary) GetPrev() string {
	if m != nil {
		return m.Prev
	}
	return ""
}

//GetCurrent getter
func (m *ReceiptBeneficiary) GetCurrent() string {
	if m != nil {
		return m.Current
	}
	return ""
}

//ReqStake stake of an owner in a pool
type ReqStake struct {
	Pool  string `protobuf:"bytes,1,opt,name=pool,proto3" json:"pool,omitempty"`
	Owner string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (m *ReqStake) Reset()         { *m = ReqStake{} }
func (m *ReqStake) String() string { return proto.CompactTextString(m) }
func (*ReqStake) ProtoMessage()    {}

//GetPool getter
func (m *ReqStake) GetPool() string {
	if m != nil {
		return m.Pool
	}
	return ""
}

//GetOwner getter
func (m *ReqStake) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//ReplyStake stakes, markers and the reward claimable now
type ReplyStake struct {
	Pool        string         `protobuf:"bytes,1,opt,name=pool,proto3" json:"pool,omitempty"`
	Owner       string         `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Anchor      int64          `protobuf:"varint,3,opt,name=anchor,proto3" json:"anchor,omitempty"`
	LastClaimAt int64          `protobuf:"varint,4,opt,name=last_claim_at,proto3" json:"lastClaimAt,omitempty"`
	NextClaimAt int64          `protobuf:"varint,5,opt,name=next_claim_at,proto3" json:"nextClaimAt,omitempty"`
	Pending     int64          `protobuf:"varint,6,opt,name=pending,proto3" json:"pending,omitempty"`
	Beneficiary string         `protobuf:"bytes,7,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
	Stakes      []*StakeRecord `protobuf:"bytes,8,rep,name=stakes,proto3" json:"stakes,omitempty"`
}

func (m *ReplyStake) Reset()         { *m = ReplyStake{} }
func (m *ReplyStake) String() string { return proto.CompactTextString(m) }
func (*ReplyStake) ProtoMessage()    {}

//GetPool getter
func (m *ReplyStake) GetPool() string {
	if m != nil {
		return m.Pool
	}
	return ""
}

//GetOwner getter
func (m *ReplyStake) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetAnchor getter
func (m *ReplyStake) GetAnchor() int64 {
	if m != nil {
		return m.Anchor
	}
	return 0
}

//GetLastClaimAt getter
func (m *ReplyStake) GetLastClaimAt() int64 {
	if m != nil {
		return m.LastClaimAt
	}
	return 0
}

//GetNextClaimAt getter
func (m *ReplyStake) GetNextClaimAt() int64 {
	if m != nil {
		return m.NextClaimAt
	}
	return 0
}

//GetPending getter
func (m *ReplyStake) GetPending() int64 {
	if m != nil {
		return m.Pending
	}
	return 0
}

//GetBeneficiary getter
func (m *ReplyStake) GetBeneficiary() string {
	if m != nil {
		return m.Beneficiary
	}
	return ""
}

//GetStakes getter
func (m *ReplyStake) GetStakes() []*StakeRecord {
	if m != nil {
		return m.Stakes
	}
	return nil
}

//PoolInfo staking pool parameters
type PoolInfo struct {
	Name     string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Clock    string `protobuf:"bytes,2,opt,name=clock,proto3" json:"clock,omitempty"`
	Cooldown int64  `protobuf:"varint,3,opt,name=cooldown,proto3" json:"cooldown,omitempty"`
	Divisor  int64  `protobuf:"varint,4,opt,name=divisor,proto3" json:"divisor,omitempty"`
	Reward   string `protobuf:"bytes,5,opt,name=reward,proto3" json:"reward,omitempty"`
	Accept   string `protobuf:"bytes,6,opt,name=accept,proto3" json:"accept,omitempty"`
}

func (m *PoolInfo) Reset()         { *m = PoolInfo{} }
func (m *PoolInfo) String() string { return proto.CompactTextString(m) }
func (*PoolInfo) ProtoMessage()    {}

//GetName getter
func (m *PoolInfo) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

//GetClock getter
func (m *PoolInfo) GetClock() string {
	if m != nil {
		return m.Clock
	}
	return ""
}

//GetCooldown getter
func (m *PoolInfo) GetCooldown() int64 {
	if m != nil {
		return m.Cooldown
	}
	return 0
}

//GetDivisor getter
func (m *PoolInfo) GetDivisor() int64 {
	if m != nil {
		return m.Divisor
	}
	return 0
}

//GetReward getter
func (m *PoolInfo) GetReward() string {
	if m != nil {
		return m.Reward
	}
	return ""
}

//GetAccept getter
func (m *PoolInfo) GetAccept() string {
	if m != nil {
		return m.Accept
	}
	return ""
}

//ReplyPools configured pools
type ReplyPools struct {
	Pools []*PoolInfo `protobuf:"bytes,1,rep,name=pools,proto3" json:"pools,omitempty"`
}

func (m *ReplyPools) Reset()         { *m = ReplyPools{} }
func (m *ReplyPools) String() string { return proto.CompactTextString(m) }
func (*ReplyPools) ProtoMessage()    {}

//GetPools getter
func (m *ReplyPools) GetPools() []*PoolInfo {
	if m != nil {
		return m.Pools
	}
	return nil
}

//ReqLeaderboard top stakers of a class in a pool
type ReqLeaderboard struct {
	Pool  string `protobuf:"bytes,1,opt,name=pool,proto3" json:"pool,omitempty"`
	Class string `protobuf:"bytes,2,opt,name=class,proto3" json:"class,omitempty"`
	Count int32  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *ReqLeaderboard) Reset()         { *m = ReqLeaderboard{} }
func (m *ReqLeaderboard) String() string { return proto.CompactTextString(m) }
func (*ReqLeaderboard) ProtoMessage()    {}

//GetPool getter
func (m *ReqLeaderboard) GetPool() string {
	if m != nil {
		return m.Pool
	}
	return ""
}

//GetClass getter
func (m *ReqLeaderboard) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetCount getter
func (m *ReqLeaderboard) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

//LeaderEntry one staker
type LeaderEntry struct {
	Owner     string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Amount    int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Formatted string `protobuf:"bytes,3,opt,name=formatted,proto3" json:"formatted,omitempty"`
}

func (m *LeaderEntry) Reset()         { *m = LeaderEntry{} }
func (m *LeaderEntry) String() string { return proto.CompactTextString(m) }
func (*LeaderEntry) ProtoMessage()    {}

//GetOwner getter
func (m *LeaderEntry) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetAmount getter
func (m *LeaderEntry) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//GetFormatted getter
func (m *LeaderEntry) GetFormatted() string {
	if m != nil {
		return m.Formatted
	}
	return ""
}

//ReplyLeaderboard stakers by amount, largest first
type ReplyLeaderboard struct {
	Entries []*LeaderEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (m *ReplyLeaderboard) Reset()         { *m = ReplyLeaderboard{} }
func (m *ReplyLeaderboard) String() string { return proto.CompactTextString(m) }
func (*ReplyLeaderboard) ProtoMessage()    {}

//GetEntries getter
func (m *ReplyLeaderboard) GetEntries() []*LeaderEntry {
	if m != nil {
		return m.Entries
	}
	return nil
}

//ReqClaims reward history of an owner
type ReqClaims struct {
	Owner     string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Count     int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqClaims) Reset()         { *m = ReqClaims{} }
func (m *ReqClaims) String() string { return proto.CompactTextString(m) }
func (*ReqClaims) ProtoMessage()    {}

//GetOwner getter
func (m *ReqClaims) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetCount getter
func (m *ReqClaims) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

//GetDirection getter
func (m *ReqClaims) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

//GetIndex getter
func (m *ReqClaims) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//ReplyClaims reward claims
type ReplyClaims struct {
	Claims []*ReceiptReward `protobuf:"bytes,1,rep,name=claims,proto3" json:"claims,omitempty"`
}

func (m *ReplyClaims) Reset()         { *m = ReplyClaims{} }
func (m *ReplyClaims) String() string { return proto.CompactTextString(m) }
func (*ReplyClaims) ProtoMessage()    {}

//GetClaims getter
func (m *ReplyClaims) GetClaims() []*ReceiptReward {
	if m != nil {
		return m.Claims
	}
	return nil
}
