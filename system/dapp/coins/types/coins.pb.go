// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
	proto "github.com/golang/protobuf/proto"
)

//CoinsAction coins payload, Ty selects the action
type CoinsAction struct {
	Ty           int32             `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Transfer     *CoinsTransfer    `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
	Genesis      *CoinsGenesis     `protobuf:"bytes,3,opt,name=genesis,proto3" json:"genesis,omitempty"`
	GenesisClass *types.TokenClass `protobuf:"bytes,4,opt,name=genesis_class,proto3" json:"genesisClass,omitempty"`
}

func (m *CoinsAction) Reset()         { *m = CoinsAction{} }
func (m *CoinsAction) String() string { return proto.CompactTextString(m) }
func (*CoinsAction) ProtoMessage()    {}

//GetTy getter
func (m *CoinsAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetTransfer getter
func (m *CoinsAction) GetTransfer() *CoinsTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

//GetGenesis getter
func (m *CoinsAction) GetGenesis() *CoinsGenesis {
	if m != nil {
		return m.Genesis
	}
	return nil
}

//GetGenesisClass getter
func (m *CoinsAction) GetGenesisClass() *types.TokenClass {
	if m != nil {
		return m.GenesisClass
	}
	return nil
}

//CoinsTransfer move native currency
type CoinsTransfer struct {
	To     string `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Note   string `protobuf:"bytes,3,opt,name=note,proto3" json:"note,omitempty"`
}

func (m *CoinsTransfer) Reset()         { *m = CoinsTransfer{} }
func (m *CoinsTransfer) String() string { return proto.CompactTextString(m) }
func (*CoinsTransfer) ProtoMessage()    {}

//GetTo getter
func (m *CoinsTransfer) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

//GetAmount getter
func (m *CoinsTransfer) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//GetNote getter
func (m *CoinsTransfer) GetNote() string {
	if m != nil {
		return m.Note
	}
	return ""
}

//CoinsGenesis genesis allocation of any token
type CoinsGenesis struct {
	To     string `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Token  string `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	Nonce  uint64 `protobuf:"varint,3,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Amount int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *CoinsGenesis) Reset()         { *m = CoinsGenesis{} }
func (m *CoinsGenesis) String() string { return proto.CompactTextString(m) }
func (*CoinsGenesis) ProtoMessage()    {}

//GetTo getter
func (m *CoinsGenesis) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

//GetToken getter
func (m *CoinsGenesis) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

//GetNonce getter
func (m *CoinsGenesis) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

//GetAmount getter
func (m *CoinsGenesis) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}
