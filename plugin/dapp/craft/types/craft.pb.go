// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
	proto "github.com/golang/protobuf/proto"
)

//CraftAction craft payload, Ty selects the action
type CraftAction struct {
	Ty      int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Request *CraftRequest `protobuf:"bytes,2,opt,name=request,proto3" json:"request,omitempty"`
	Claim   *CraftClaim   `protobuf:"bytes,3,opt,name=claim,proto3" json:"claim,omitempty"`
}

func (m *CraftAction) Reset()         { *m = CraftAction{} }
func (m *CraftAction) String() string { return proto.CompactTextString(m) }
func (*CraftAction) ProtoMessage()    {}

//GetTy getter
func (m *CraftAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetRequest getter
func (m *CraftAction) GetRequest() *CraftRequest {
	if m != nil {
		return m.Request
	}
	return nil
}

//GetClaim getter
func (m *CraftAction) GetClaim() *CraftClaim {
	if m != nil {
		return m.Claim
	}
	return nil
}

//CraftRequest start a workflow, the inputs are attached as payments. Upgrade workflows name their target nft
type CraftRequest struct {
	Workflow    string `protobuf:"bytes,1,opt,name=workflow,proto3" json:"workflow,omitempty"`
	TargetClass string `protobuf:"bytes,2,opt,name=target_class,proto3" json:"targetClass,omitempty"`
	TargetNonce uint64 `protobuf:"varint,3,opt,name=target_nonce,proto3" json:"targetNonce,omitempty"`
}

func (m *CraftRequest) Reset()         { *m = CraftRequest{} }
func (m *CraftRequest) String() string { return proto.CompactTextString(m) }
func (*CraftRequest) ProtoMessage()    {}

//GetWorkflow getter
func (m *CraftRequest) GetWorkflow() string {
	if m != nil {
		return m.Workflow
	}
	return ""
}

//GetTargetClass getter
func (m *CraftRequest) GetTargetClass() string {
	if m != nil {
		return m.TargetClass
	}
	return ""
}

//GetTargetNonce getter
func (m *CraftRequest) GetTargetNonce() uint64 {
	if m != nil {
		return m.TargetNonce
	}
	return 0
}

//CraftClaim collect the output of a pending request
type CraftClaim struct {
	Workflow string `protobuf:"bytes,1,opt,name=workflow,proto3" json:"workflow,omitempty"`
}

func (m *CraftClaim) Reset()         { *m = CraftClaim{} }
func (m *CraftClaim) String() string { return proto.CompactTextString(m) }
func (*CraftClaim) ProtoMessage()    {}

//GetWorkflow getter
func (m *CraftClaim) GetWorkflow() string {
	if m != nil {
		return m.Workflow
	}
	return ""
}

//MintRequest outstanding request of one owner in one workflow
type MintRequest struct {
	Owner       string           `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Workflow    string           `protobuf:"bytes,2,opt,name=workflow,proto3" json:"workflow,omitempty"`
	RequestedAt int64            `protobuf:"varint,3,opt,name=requested_at,proto3" json:"requestedAt,omitempty"`
	Clock       string           `protobuf:"bytes,4,opt,name=clock,proto3" json:"clock,omitempty"`
	TargetClass string           `protobuf:"bytes,5,opt,name=target_class,proto3" json:"targetClass,omitempty"`
	TargetNonce uint64           `protobuf:"varint,6,opt,name=target_nonce,proto3" json:"targetNonce,omitempty"`
	Bonus       uint32           `protobuf:"varint,7,opt,name=bonus,proto3" json:"bonus,omitempty"`
	Burned      []*types.Payment `protobuf:"bytes,8,rep,name=burned,proto3" json:"burned,omitempty"`
}

func (m *MintRequest) Reset()         { *m = MintRequest{} }
func (m *MintRequest) String() string { return proto.CompactTextString(m) }
func (*MintRequest) ProtoMessage()    {}

//GetOwner getter
func (m *MintRequest) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetWorkflow getter
func (m *MintRequest) GetWorkflow() string {
	if m != nil {
		return m.Workflow
	}
	return ""
}

//GetRequestedAt getter
func (m *MintRequest) GetRequestedAt() int64 {
	if m != nil {
		return m.RequestedAt
	}
	return 0
}

//GetClock getter
func (m *MintRequest) GetClock() string {
	if m != nil {
		return m.Clock
	}
	return ""
}

//GetTargetClass getter
func (m *MintRequest) GetTargetClass() string {
	if m != nil {
		return m.TargetClass
	}
	return ""
}

//GetTargetNonce getter
func (m *MintRequest) GetTargetNonce() uint64 {
	if m != nil {
		return m.TargetNonce
	}
	return 0
}

//GetBonus getter
func (m *MintRequest) GetBonus() uint32 {
	if m != nil {
		return m.Bonus
	}
	return 0
}

//GetBurned getter
func (m *MintRequest) GetBurned() []*types.Payment {
	if m != nil {
		return m.Burned
	}
	return nil
}

//ReceiptCraftRequest request recorded, the burned inputs are listed
type ReceiptCraftRequest struct {
	Request *MintRequest `protobuf:"bytes,1,opt,name=request,proto3" json:"request,omitempty"`
}

func (m *ReceiptCraftRequest) Reset()         { *m = ReceiptCraftRequest{} }
func (m *ReceiptCraftRequest) String() string { return proto.CompactTextString(m) }
func (*ReceiptCraftRequest) ProtoMessage()    {}

//GetRequest getter
func (m *ReceiptCraftRequest) GetRequest() *MintRequest {
	if m != nil {
		return m.Request
	}
	return nil
}

//ReceiptCraftClaim output produced by a claim
type ReceiptCraftClaim struct {
	Owner       string               `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Workflow    string               `protobuf:"bytes,2,opt,name=workflow,proto3" json:"workflow,omitempty"`
	Output      string               `protobuf:"bytes,3,opt,name=output,proto3" json:"output,omitempty"`
	Class       string               `protobuf:"bytes,4,opt,name=class,proto3" json:"class,omitempty"`
	Nonce       uint64               `protobuf:"varint,5,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Amount      int64                `protobuf:"varint,6,opt,name=amount,proto3" json:"amount,omitempty"`
	Attributes  *types.NftAttributes `protobuf:"bytes,7,opt,name=attributes,proto3" json:"attributes,omitempty"`
	RequestedAt int64                `protobuf:"varint,8,opt,name=requested_at,proto3" json:"requestedAt,omitempty"`
	ClaimedAt   int64                `protobuf:"varint,9,opt,name=claimed_at,proto3" json:"claimedAt,omitempty"`
	Elapsed     int64                `protobuf:"varint,10,opt,name=elapsed,proto3" json:"elapsed,omitempty"`
	Index       int64                `protobuf:"varint,11,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReceiptCraftClaim) Reset()         { *m = ReceiptCraftClaim{} }
func (m *ReceiptCraftClaim) String() string { return proto.CompactTextString(m) }
func (*ReceiptCraftClaim) ProtoMessage()    {}

//GetOwner getter
func (m *ReceiptCraftClaim) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetWorkflow getter
func (m *ReceiptCraftClaim) GetWorkflow() string {
	if m != nil {
		return m.Workflow
	}
	return ""
}

//GetOutput getter
func (m *ReceiptCraftClaim) GetOutput() string {
	if m != nil {
		return m.Output
	}
	return ""
}

//GetClass getter
func (m *ReceiptCraftClaim) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetNonce getter
func (m *ReceiptCraftClaim) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

//GetAmount getter
func (m *ReceiptCraftClaim) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//GetAttributes getter
func (m *ReceiptCraftClaim) GetAttributes() *types.NftAttributes {
	if m != nil {
		return m.Attributes
	}
	return nil
}

//GetRequestedAt getter
func (m *ReceiptCraftClaim) GetRequestedAt() int64 {
	if m != nil {
		return m.RequestedAt
	}
	return 0
}

//GetClaimedAt getter
func (m *ReceiptCraftClaim) GetClaimedAt() int64 {
	if m != nil {
		return m.ClaimedAt
	}
	return 0
}

//GetElapsed getter
func (m *ReceiptCraftClaim) GetElapsed() int64 {
	if m != nil {
		return m.Elapsed
	}
	return 0
}

//GetIndex getter
func (m *ReceiptCraftClaim) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//ReqCraftRequest request of an owner in a workflow
type ReqCraftRequest struct {
	Owner    string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Workflow string `protobuf:"bytes,2,opt,name=workflow,proto3" json:"workflow,omitempty"`
}

func (m *ReqCraftRequest) Reset()         { *m = ReqCraftRequest{} }
func (m *ReqCraftRequest) String() string { return proto.CompactTextString(m) }
func (*ReqCraftRequest) ProtoMessage()    {}

//GetOwner getter
func (m *ReqCraftRequest) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetWorkflow getter
func (m *ReqCraftRequest) GetWorkflow() string {
	if m != nil {
		return m.Workflow
	}
	return ""
}

//ReplyCraftRequest pending request and the clock reading it can be claimed at
type ReplyCraftRequest struct {
	Request *MintRequest `protobuf:"bytes,1,opt,name=request,proto3" json:"request,omitempty"`
	Pending bool         `protobuf:"varint,2,opt,name=pending,proto3" json:"pending,omitempty"`
	ReadyAt int64        `protobuf:"varint,3,opt,name=ready_at,proto3" json:"readyAt,omitempty"`
	Ready   bool         `protobuf:"varint,4,opt,name=ready,proto3" json:"ready,omitempty"`
}

func (m *ReplyCraftRequest) Reset()         { *m = ReplyCraftRequest{} }
func (m *ReplyCraftRequest) String() string { return proto.CompactTextString(m) }
func (*ReplyCraftRequest) ProtoMessage()    {}

//GetRequest getter
func (m *ReplyCraftRequest) GetRequest() *MintRequest {
	if m != nil {
		return m.Request
	}
	return nil
}

//GetPending getter
func (m *ReplyCraftRequest) GetPending() bool {
	if m != nil {
		return m.Pending
	}
	return false
}

//GetReadyAt getter
func (m *ReplyCraftRequest) GetReadyAt() int64 {
	if m != nil {
		return m.ReadyAt
	}
	return 0
}

//GetReady getter
func (m *ReplyCraftRequest) GetReady() bool {
	if m != nil {
		return m.Ready
	}
	return false
}

//WorkflowInput accepted input class and its minimum quantity
type WorkflowInput struct {
	Name   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Prefix string `protobuf:"bytes,2,opt,name=prefix,proto3" json:"prefix,omitempty"`
	Min    int64  `protobuf:"varint,3,opt,name=min,proto3" json:"min,omitempty"`
}

func (m *WorkflowInput) Reset()         { *m = WorkflowInput{} }
func (m *WorkflowInput) String() string { return proto.CompactTextString(m) }
func (*WorkflowInput) ProtoMessage()    {}

//GetName getter
func (m *WorkflowInput) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

//GetPrefix getter
func (m *WorkflowInput) GetPrefix() string {
	if m != nil {
		return m.Prefix
	}
	return ""
}

//GetMin getter
func (m *WorkflowInput) GetMin() int64 {
	if m != nil {
		return m.Min
	}
	return 0
}

//WorkflowInfo one workflow of the catalog
type WorkflowInfo struct {
	Name         string           `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Clock        string           `protobuf:"bytes,2,opt,name=clock,proto3" json:"clock,omitempty"`
	Delay        int64            `protobuf:"varint,3,opt,name=delay,proto3" json:"delay,omitempty"`
	Inputs       []*WorkflowInput `protobuf:"bytes,4,rep,name=inputs,proto3" json:"inputs,omitempty"`
	Output       string           `protobuf:"bytes,5,opt,name=output,proto3" json:"output,omitempty"`
	Class        string           `protobuf:"bytes,6,opt,name=class,proto3" json:"class,omitempty"`
	Amount       int64            `protobuf:"varint,7,opt,name=amount,proto3" json:"amount,omitempty"`
	Kind         string           `protobuf:"bytes,8,opt,name=kind,proto3" json:"kind,omitempty"`
	Attack       uint32           `protobuf:"varint,9,opt,name=attack,proto3" json:"attack,omitempty"`
	AttackRoll   uint32           `protobuf:"varint,10,opt,name=attack_roll,proto3" json:"attackRoll,omitempty"`
	Defense      uint32           `protobuf:"varint,11,opt,name=defense,proto3" json:"defense,omitempty"`
	DefenseRoll  uint32           `protobuf:"varint,12,opt,name=defense_roll,proto3" json:"defenseRoll,omitempty"`
	TargetPrefix string           `protobuf:"bytes,13,opt,name=target_prefix,proto3" json:"targetPrefix,omitempty"`
	TargetKind   string           `protobuf:"bytes,14,opt,name=target_kind,proto3" json:"targetKind,omitempty"`
	InputDefense bool             `protobuf:"varint,15,opt,name=input_defense,proto3" json:"inputDefense,omitempty"`
}

func (m *WorkflowInfo) Reset()         { *m = WorkflowInfo{} }
func (m *WorkflowInfo) String() string { return proto.CompactTextString(m) }
func (*WorkflowInfo) ProtoMessage()    {}

//GetName getter
func (m *WorkflowInfo) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

//GetClock getter
func (m *WorkflowInfo) GetClock() string {
	if m != nil {
		return m.Clock
	}
	return ""
}

//GetDelay getter
func (m *WorkflowInfo) GetDelay() int64 {
	if m != nil {
		return m.Delay
	}
	return 0
}

//GetInputs getter
func (m *WorkflowInfo) GetInputs() []*WorkflowInput {
	if m != nil {
		return m.Inputs
	}
	return nil
}

//GetOutput getter
func (m *WorkflowInfo) GetOutput() string {
	if m != nil {
		return m.Output
	}
	return ""
}

//GetClass getter
func (m *WorkflowInfo) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetAmount getter
func (m *WorkflowInfo) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//GetKind getter
func (m *WorkflowInfo) GetKind() string {
	if m != nil {
		return m.Kind
	}
	return ""
}

//GetAttack getter
func (m *WorkflowInfo) GetAttack() uint32 {
	if m != nil {
		return m.Attack
	}
	return 0
}

//GetAttackRoll getter
func (m *WorkflowInfo) GetAttackRoll() uint32 {
	if m != nil {
		return m.AttackRoll
	}
	return 0
}

//GetDefense getter
func (m *WorkflowInfo) GetDefense() uint32 {
	if m != nil {
		return m.Defense
	}
	return 0
}

//GetDefenseRoll getter
func (m *WorkflowInfo) GetDefenseRoll() uint32 {
	if m != nil {
		return m.DefenseRoll
	}
	return 0
}

//GetTargetPrefix getter
func (m *WorkflowInfo) GetTargetPrefix() string {
	if m != nil {
		return m.TargetPrefix
	}
	return ""
}

//GetTargetKind getter
func (m *WorkflowInfo) GetTargetKind() string {
	if m != nil {
		return m.TargetKind
	}
	return ""
}

//GetInputDefense getter
func (m *WorkflowInfo) GetInputDefense() bool {
	if m != nil {
		return m.InputDefense
	}
	return false
}

//ReplyWorkflows catalog in use
type ReplyWorkflows struct {
	Workflows []*WorkflowInfo `protobuf:"bytes,1,rep,name=workflows,proto3" json:"workflows,omitempty"`
}

func (m *ReplyWorkflows) Reset()         { *m = ReplyWorkflows{} }
func (m *ReplyWorkflows) String() string { return proto.CompactTextString(m) }
func (*ReplyWorkflows) ProtoMessage()    {}

//GetWorkflows getter
func (m *ReplyWorkflows) GetWorkflows() []*WorkflowInfo {
	if m != nil {
		return m.Workflows
	}
	return nil
}

//ReqCraftHistory page of the claims of an owner
type ReqCraftHistory struct {
	Owner     string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Count     int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqCraftHistory) Reset()         { *m = ReqCraftHistory{} }
func (m *ReqCraftHistory) String() string { return proto.CompactTextString(m) }
func (*ReqCraftHistory) ProtoMessage()    {}

//GetOwner getter
func (m *ReqCraftHistory) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

//GetCount getter
func (m *ReqCraftHistory) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

//GetDirection getter
func (m *ReqCraftHistory) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

//GetIndex getter
func (m *ReqCraftHistory) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//ReplyCraftHistory claims, newest first unless asked otherwise
type ReplyCraftHistory struct {
	Claims []*ReceiptCraftClaim `protobuf:"bytes,1,rep,name=claims,proto3" json:"claims,omitempty"`
}

func (m *ReplyCraftHistory) Reset()         { *m = ReplyCraftHistory{} }
func (m *ReplyCraftHistory) String() string { return proto.CompactTextString(m) }
func (*ReplyCraftHistory) ProtoMessage()    {}

//GetClaims getter
func (m *ReplyCraftHistory) GetClaims() []*ReceiptCraftClaim {
	if m != nil {
		return m.Claims
	}
	return nil
}
