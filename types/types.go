// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types shared messages, config, errors and executor type plumbing
package types

import (
	"encoding/json"

	proto "github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "types")

//Message proto message
type Message proto.Message

//Encode proto encoding, panics on error as every message here is well formed
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size encoded size
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode proto decoding
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//Clone deep copy
func Clone(data proto.Message) proto.Message {
	return proto.Clone(data)
}

//MustPBToJSON json view of a message for logs and rpc
func MustPBToJSON(req Message) []byte {
	data, err := json.Marshal(req)
	if err != nil {
		tlog.Error("MustPBToJSON", "err", err)
		return nil
	}
	return data
}

//AppendReceipt merge b into a
func AppendReceipt(a *Receipt, b *Receipt) *Receipt {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	a.KV = append(a.KV, b.KV...)
	a.Logs = append(a.Logs, b.Logs...)
	return a
}

//NewReceipt successful receipt
func NewReceipt(kv []*KeyValue, logs []*ReceiptLog) *Receipt {
	return &Receipt{Ty: ExecOk, KV: kv, Logs: logs}
}

//NewLog encode a typed receipt log
func NewLog(ty int32, msg Message) *ReceiptLog {
	return &ReceiptLog{Ty: ty, Log: Encode(msg)}
}
