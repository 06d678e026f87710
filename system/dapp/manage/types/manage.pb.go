// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//ManageAction manage payload, Ty selects the action
type ManageAction struct {
	Ty     int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Modify *ModifyConfig `protobuf:"bytes,2,opt,name=modify,proto3" json:"modify,omitempty"`
}

func (m *ManageAction) Reset()         { *m = ManageAction{} }
func (m *ManageAction) String() string { return proto.CompactTextString(m) }
func (*ManageAction) ProtoMessage()    {}

//GetTy getter
func (m *ManageAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetModify getter
func (m *ManageAction) GetModify() *ModifyConfig {
	if m != nil {
		return m.Modify
	}
	return nil
}

//ModifyConfig add or delete a value of a config item
type ModifyConfig struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Op    string `protobuf:"bytes,3,opt,name=op,proto3" json:"op,omitempty"`
}

func (m *ModifyConfig) Reset()         { *m = ModifyConfig{} }
func (m *ModifyConfig) String() string { return proto.CompactTextString(m) }
func (*ModifyConfig) ProtoMessage()    {}

//GetKey getter
func (m *ModifyConfig) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

//GetValue getter
func (m *ModifyConfig) GetValue() string {
	if m != nil {
		return m.Value
	}
	return ""
}

//GetOp getter
func (m *ModifyConfig) GetOp() string {
	if m != nil {
		return m.Op
	}
	return ""
}
