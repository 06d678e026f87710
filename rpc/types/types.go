// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types json forms of the rpc requests and replies
package types

import (
	"encoding/json"

	"github.com/33cn/wintergame/types"
)

//Query4Cli query sent by the cli, payload is any json value
type Query4Cli struct {
	Execer   string      `json:"execer"`
	FuncName string      `json:"funcName"`
	Payload  interface{} `json:"payload"`
}

//Query4Jrpc query received by the server
type Query4Jrpc struct {
	Execer   string          `json:"execer"`
	FuncName string          `json:"funcName"`
	Payload  json.RawMessage `json:"payload"`
}

//RawParm hex encoded data
type RawParm struct {
	Data string `json:"data"`
}

//QueryParm tx hash
type QueryParm struct {
	Hash string `json:"hash"`
}

//ReplyHash tx hash
type ReplyHash struct {
	Hash string `json:"hash"`
}

//BlockParam height range, both ends included
type BlockParam struct {
	Start    int64 `json:"start"`
	End      int64 `json:"end"`
	IsDetail bool  `json:"isDetail"`
}

//CreateTx unsigned tx built by the node from the json form of an action
type CreateTx struct {
	Execer     string           `json:"execer"`
	ActionName string           `json:"actionName"`
	Payload    json.RawMessage  `json:"payload"`
	Payments   []*types.Payment `json:"payments,omitempty"`
}

//Signature hex form
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    string `json:"pubkey"`
	Signature string `json:"signature"`
}

//Transaction json form of a tx
type Transaction struct {
	Execer     string           `json:"execer"`
	ActionName string           `json:"actionName"`
	Payload    json.RawMessage  `json:"payload"`
	RawPayload string           `json:"rawPayload"`
	Payments   []*types.Payment `json:"payments,omitempty"`
	Signature  *Signature       `json:"signature"`
	Nonce      int64            `json:"nonce"`
	To         string           `json:"to"`
	From       string           `json:"from,omitempty"`
	Hash       string           `json:"hash,omitempty"`
}

//Header block header
type Header struct {
	Height     int64  `json:"height"`
	BlockTime  int64  `json:"blockTime"`
	Round      int64  `json:"round"`
	Epoch      int64  `json:"epoch"`
	Hash       string `json:"hash"`
	ParentHash string `json:"parentHash"`
	TxHash     string `json:"txHash"`
	RandomSeed string `json:"randomSeed"`
	SeedProof  string `json:"seedProof"`
	TxCount    int64  `json:"txCount"`
}

//BlockDetail block with decoded txs and receipts
type BlockDetail struct {
	Header   *Header              `json:"header"`
	Txs      []*Transaction       `json:"txs"`
	Receipts []*ReceiptDataResult `json:"receipts"`
}

//BlockDetails block range
type BlockDetails struct {
	Items []*BlockDetail `json:"items"`
}

//ReceiptLogResult decoded receipt log
type ReceiptLogResult struct {
	Ty     int32           `json:"ty"`
	TyName string          `json:"tyName"`
	Log    json.RawMessage `json:"log"`
	RawLog string          `json:"rawLog"`
}

//ReceiptDataResult decoded receipt
type ReceiptDataResult struct {
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyName"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

//TransactionDetail executed tx
type TransactionDetail struct {
	Tx        *Transaction       `json:"tx"`
	Receipt   *ReceiptDataResult `json:"receipt"`
	Height    int64              `json:"height"`
	Index     int32              `json:"index"`
	BlockTime int64              `json:"blockTime"`
}

//ReqEvents filter over indexed events, zero fields match everything
type ReqEvents struct {
	Execer     string `json:"execer,omitempty"`
	Name       string `json:"name,omitempty"`
	From       string `json:"from,omitempty"`
	TxHash     string `json:"txHash,omitempty"`
	HeightFrom int64  `json:"heightFrom,omitempty"`
	HeightTo   int64  `json:"heightTo,omitempty"`
	Count      int32  `json:"count,omitempty"`
}

//ReplyEvents matching events
type ReplyEvents struct {
	Events []*types.Event `json:"events"`
}

//NodeVersion version info
type NodeVersion struct {
	Title   string `json:"title"`
	Version string `json:"version"`
	Height  int64  `json:"height"`
}
