// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
	proto "github.com/golang/protobuf/proto"
)

//TokenAction token payload, Ty selects the action
type TokenAction struct {
	Ty       int32          `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Issue    *TokenIssue    `protobuf:"bytes,2,opt,name=issue,proto3" json:"issue,omitempty"`
	Complete *TokenComplete `protobuf:"bytes,3,opt,name=complete,proto3" json:"complete,omitempty"`
	Reject   *TokenReject   `protobuf:"bytes,4,opt,name=reject,proto3" json:"reject,omitempty"`
	Transfer *TokenTransfer `protobuf:"bytes,5,opt,name=transfer,proto3" json:"transfer,omitempty"`
	Burn     *TokenBurn     `protobuf:"bytes,6,opt,name=burn,proto3" json:"burn,omitempty"`
}

func (m *TokenAction) Reset()         { *m = TokenAction{} }
func (m *TokenAction) String() string { return proto.CompactTextString(m) }
func (*TokenAction) ProtoMessage()    {}

//GetTy getter
func (m *TokenAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetIssue getter
func (m *TokenAction) GetIssue() *TokenIssue {
	if m != nil {
		return m.Issue
	}
	return nil
}

//GetComplete getter
func (m *TokenAction) GetComplete() *TokenComplete {
	if m != nil {
		return m.Complete
	}
	return nil
}

//GetReject getter
func (m *TokenAction) GetReject() *TokenReject {
	if m != nil {
		return m.Reject
	}
	return nil
}

//GetTransfer getter
func (m *TokenAction) GetTransfer() *TokenTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

//GetBurn getter
func (m *TokenAction) GetBurn() *TokenBurn {
	if m != nil {
		return m.Burn
	}
	return nil
}

//TokenIssue request a new fungible token, the issuance fee is attached as a coin payment
type TokenIssue struct {
	Name     string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Ticker   string `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Supply   int64  `protobuf:"varint,3,opt,name=supply,proto3" json:"supply,omitempty"`
	Decimals int32  `protobuf:"varint,4,opt,name=decimals,proto3" json:"decimals,omitempty"`
}

func (m *TokenIssue) Reset()         { *m = TokenIssue{} }
func (m *TokenIssue) String() string { return proto.CompactTextString(m) }
func (*TokenIssue) ProtoMessage()    {}

//GetName getter
func (m *TokenIssue) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

//GetTicker getter
func (m *TokenIssue) GetTicker() string {
	if m != nil {
		return m.Ticker
	}
	return ""
}

//GetSupply getter
func (m *TokenIssue) GetSupply() int64 {
	if m != nil {
		return m.Supply
	}
	return 0
}

//GetDecimals getter
func (m *TokenIssue) GetDecimals() int32 {
	if m != nil {
		return m.Decimals
	}
	return 0
}

//TokenComplete manager approves a pending issue
type TokenComplete struct {
	Identifier string `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
}

func (m *TokenComplete) Reset()         { *m = TokenComplete{} }
func (m *TokenComplete) String() string { return proto.CompactTextString(m) }
func (*TokenComplete) ProtoMessage()    {}

//GetIdentifier getter
func (m *TokenComplete) GetIdentifier() string {
	if m != nil {
		return m.Identifier
	}
	return ""
}

//TokenReject manager refuses a pending issue, the fee is refunded
type TokenReject struct {
	Identifier string `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
}

func (m *TokenReject) Reset()         { *m = TokenReject{} }
func (m *TokenReject) String() string { return proto.CompactTextString(m) }
func (*TokenReject) ProtoMessage()    {}

//GetIdentifier getter
func (m *TokenReject) GetIdentifier() string {
	if m != nil {
		return m.Identifier
	}
	return ""
}

//TokenTransfer move a token instance to another address
type TokenTransfer struct {
	Class  string `protobuf:"bytes,1,opt,name=class,proto3" json:"class,omitempty"`
	Nonce  uint64 `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
	To     string `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TokenTransfer) Reset()         { *m = TokenTransfer{} }
func (m *TokenTransfer) String() string { return proto.CompactTextString(m) }
func (*TokenTransfer) ProtoMessage()    {}

//GetClass getter
func (m *TokenTransfer) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetNonce getter
func (m *TokenTransfer) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

//GetTo getter
func (m *TokenTransfer) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

//GetAmount getter
func (m *TokenTransfer) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//TokenBurn holder destroys its own tokens
type TokenBurn struct {
	Class  string `protobuf:"bytes,1,opt,name=class,proto3" json:"class,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TokenBurn) Reset()         { *m = TokenBurn{} }
func (m *TokenBurn) String() string { return proto.CompactTextString(m) }
func (*TokenBurn) ProtoMessage()    {}

//GetClass getter
func (m *TokenBurn) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetAmount getter
func (m *TokenBurn) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//IssueRequest issue waiting for a manager
type IssueRequest struct {
	Identifier string `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Name       string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Ticker     string `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Supply     int64  `protobuf:"varint,4,opt,name=supply,proto3" json:"supply,omitempty"`
	Decimals   int32  `protobuf:"varint,5,opt,name=decimals,proto3" json:"decimals,omitempty"`
	Issuer     string `protobuf:"bytes,6,opt,name=issuer,proto3" json:"issuer,omitempty"`
	Fee        int64  `protobuf:"varint,7,opt,name=fee,proto3" json:"fee,omitempty"`
	Status     int32  `protobuf:"varint,8,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt  int64  `protobuf:"varint,9,opt,name=created_at,proto3" json:"createdAt,omitempty"`
	DecidedAt  int64  `protobuf:"varint,10,opt,name=decided_at,proto3" json:"decidedAt,omitempty"`
	Manager    string `protobuf:"bytes,11,opt,name=manager,proto3" json:"manager,omitempty"`
	Index      int64  `protobuf:"varint,12,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *IssueRequest) Reset()         { *m = IssueRequest{} }
func (m *IssueRequest) String() string { return proto.CompactTextString(m) }
func (*IssueRequest) ProtoMessage()    {}

//GetIdentifier getter
func (m *IssueRequest) GetIdentifier() string {
	if m != nil {
		return m.Identifier
	}
	return ""
}

//GetName getter
func (m *IssueRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

//GetTicker getter
func (m *IssueRequest) GetTicker() string {
	if m != nil {
		return m.Ticker
	}
	return ""
}

//GetSupply getter
func (m *IssueRequest) GetSupply() int64 {
	if m != nil {
		return m.Supply
	}
	return 0
}

//GetDecimals getter
func (m *IssueRequest) GetDecimals() int32 {
	if m != nil {
		return m.Decimals
	}
	return 0
}

//GetIssuer getter
func (m *IssueRequest) GetIssuer() string {
	if m != nil {
		return m.Issuer
	}
	return ""
}

//GetFee getter
func (m *IssueRequest) GetFee() int64 {
	if m != nil {
		return m.Fee
	}
	return 0
}

//GetStatus getter
func (m *IssueRequest) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

//GetCreatedAt getter
func (m *IssueRequest) GetCreatedAt() int64 {
	if m != nil {
		return m.CreatedAt
	}
	return 0
}

//GetDecidedAt getter
func (m *IssueRequest) GetDecidedAt() int64 {
	if m != nil {
		return m.DecidedAt
	}
	return 0
}

//GetManager getter
func (m *IssueRequest) GetManager() string {
	if m != nil {
		return m.Manager
	}
	return ""
}

//GetIndex getter
func (m *IssueRequest) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//ReceiptIssue issue state change
type ReceiptIssue struct {
	Identifier string `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Issuer     string `protobuf:"bytes,2,opt,name=issuer,proto3" json:"issuer,omitempty"`
	Status     int32  `protobuf:"varint,3,opt,name=status,proto3" json:"status,omitempty"`
	PrevStatus int32  `protobuf:"varint,4,opt,name=prev_status,proto3" json:"prevStatus,omitempty"`
	Index      int64  `protobuf:"varint,5,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex  int64  `protobuf:"varint,6,opt,name=prev_index,proto3" json:"prevIndex,omitempty"`
}

func (m *ReceiptIssue) Reset()         { *m = ReceiptIssue{} }
func (m *ReceiptIssue) String() string { return proto.CompactTextString(m) }
func (*ReceiptIssue) ProtoMessage()    {}

//GetIdentifier getter
func (m *ReceiptIssue) GetIdentifier() string {
	if m != nil {
		return m.Identifier
	}
	return ""
}

//GetIssuer getter
func (m *ReceiptIssue) GetIssuer() string {
	if m != nil {
		return m.Issuer
	}
	return ""
}

//GetStatus getter
func (m *ReceiptIssue) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

//GetPrevStatus getter
func (m *ReceiptIssue) GetPrevStatus() int32 {
	if m != nil {
		return m.PrevStatus
	}
	return 0
}

//GetIndex getter
func (m *ReceiptIssue) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//GetPrevIndex getter
func (m *ReceiptIssue) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

//ReceiptTokenTransfer user transfer of a token instance
type ReceiptTokenTransfer struct {
	Class  string `protobuf:"bytes,1,opt,name=class,proto3" json:"class,omitempty"`
	Nonce  uint64 `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
	From   string `protobuf:"bytes,3,opt,name=from,proto3" json:"from,omitempty"`
	To     string `protobuf:"bytes,4,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ReceiptTokenTransfer) Reset()         { *m = ReceiptTokenTransfer{} }
func (m *ReceiptTokenTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptTokenTransfer) ProtoMessage()    {}

//GetClass getter
func (m *ReceiptTokenTransfer) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetNonce getter
func (m *ReceiptTokenTransfer) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

//GetFrom getter
func (m *ReceiptTokenTransfer) GetFrom() string {
	if m != nil {
		return m.From
	}
	return ""
}

//GetTo getter
func (m *ReceiptTokenTransfer) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

//GetAmount getter
func (m *ReceiptTokenTransfer) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//ReqIssue issue by identifier
type ReqIssue struct {
	Identifier string `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
}

func (m *ReqIssue) Reset()         { *m = ReqIssue{} }
func (m *ReqIssue) String() string { return proto.CompactTextString(m) }
func (*ReqIssue) ProtoMessage()    {}

//GetIdentifier getter
func (m *ReqIssue) GetIdentifier() string {
	if m != nil {
		return m.Identifier
	}
	return ""
}

//ReqIssues issues of a status, paged by index
type ReqIssues struct {
	Status    int32 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Count     int32 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32 `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64 `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqIssues) Reset()         { *m = ReqIssues{} }
func (m *ReqIssues) String() string { return proto.CompactTextString(m) }
func (*ReqIssues) ProtoMessage()    {}

//GetStatus getter
func (m *ReqIssues) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

//GetCount getter
func (m *ReqIssues) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

//GetDirection getter
func (m *ReqIssues) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

//GetIndex getter
func (m *ReqIssues) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//ReplyIssues issue list
type ReplyIssues struct {
	Issues []*IssueRequest `protobuf:"bytes,1,rep,name=issues,proto3" json:"issues,omitempty"`
}

func (m *ReplyIssues) Reset()         { *m = ReplyIssues{} }
func (m *ReplyIssues) String() string { return proto.CompactTextString(m) }
func (*ReplyIssues) ProtoMessage()    {}

//GetIssues getter
func (m *ReplyIssues) GetIssues() []*IssueRequest {
	if m != nil {
		return m.Issues
	}
	return nil
}

//IssueRecord local index entry of an issue
type IssueRecord struct {
	Identifier string `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Index      int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *IssueRecord) Reset()         { *m = IssueRecord{} }
func (m *IssueRecord) String() string { return proto.CompactTextString(m) }
func (*IssueRecord) ProtoMessage()    {}

//GetIdentifier getter
func (m *IssueRecord) GetIdentifier() string {
	if m != nil {
		return m.Identifier
	}
	return ""
}

//GetIndex getter
func (m *IssueRecord) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

//ReqTokenInfo class by identifier
type ReqTokenInfo struct {
	Class string `protobuf:"bytes,1,opt,name=class,proto3" json:"class,omitempty"`
}

func (m *ReqTokenInfo) Reset()         { *m = ReqTokenInfo{} }
func (m *ReqTokenInfo) String() string { return proto.CompactTextString(m) }
func (*ReqTokenInfo) ProtoMessage()    {}

//GetClass getter
func (m *ReqTokenInfo) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//ReplyTokenInfo class record with its supply
type ReplyTokenInfo struct {
	Class  *types.TokenClass `protobuf:"bytes,1,opt,name=class,proto3" json:"class,omitempty"`
	Supply int64             `protobuf:"varint,2,opt,name=supply,proto3" json:"supply,omitempty"`
	Amount string            `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ReplyTokenInfo) Reset()         { *m = ReplyTokenInfo{} }
func (m *ReplyTokenInfo) String() string { return proto.CompactTextString(m) }
func (*ReplyTokenInfo) ProtoMessage()    {}

//GetClass getter
func (m *ReplyTokenInfo) GetClass() *types.TokenClass {
	if m != nil {
		return m.Class
	}
	return nil
}

//GetSupply getter
func (m *ReplyTokenInfo) GetSupply() int64 {
	if m != nil {
		return m.Supply
	}
	return 0
}

//GetAmount getter
func (m *ReplyTokenInfo) GetAmount() string {
	if m != nil {
		return m.Amount
	}
	return ""
}
