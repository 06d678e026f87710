// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/types"
)

var execResultNames = map[int32]string{
	types.ExecErr: "ExecErr",
	types.ExecOk:  "ExecOk",
}

// DecodeLog decode log
func DecodeLog(rlog *types.ReceiptData) *ReceiptDataResult {
	if rlog == nil {
		return nil
	}
	rTy, ok := execResultNames[rlog.Ty]
	if !ok {
		rTy = "Unknown"
	}
	rd := &ReceiptDataResult{Ty: rlog.Ty, TyName: rTy}
	for _, l := range rlog.Logs {
		lTy := "unkownType"
		var logIns json.RawMessage
		name, msg, err := types.DecodeLog(l.Ty, l.Log)
		if err == nil {
			lTy = name
			logIns = types.MustPBToJSON(msg)
		}
		rd.Logs = append(rd.Logs, &ReceiptLogResult{Ty: l.Ty, TyName: lTy, Log: logIns, RawLog: common.ToHex(l.Log)})
	}
	return rd
}

// DecodeTx docode transaction
func DecodeTx(tx *types.Transaction) (*Transaction, error) {
	if tx == nil {
		return nil, types.ErrEmpty
	}
	var pljson json.RawMessage
	actionName := "unknown"
	if plType := types.LoadExecutorType(string(tx.Execer)); plType != nil {
		if pl, err := plType.DecodePayload(tx); err == nil {
			pljson = types.MustPBToJSON(pl)
			actionName = plType.ActionName(tx)
		}
	}
	result := &Transaction{
		Execer:     string(tx.Execer),
		ActionName: actionName,
		Payload:    pljson,
		RawPayload: common.ToHex(tx.GetPayload()),
		Payments:   tx.Payments,
		Signature: &Signature{
			Ty:        tx.GetSignature().GetTy(),
			Pubkey:    common.ToHex(tx.GetSignature().GetPubkey()),
			Signature: common.ToHex(tx.GetSignature().GetSignature()),
		},
		Nonce: tx.Nonce,
		To:    tx.To,
		From:  tx.From(),
		Hash:  common.ToHex(tx.Hash()),
	}
	return result, nil
}

//DecodeHeader header of a block
func DecodeHeader(block *types.Block) *Header {
	return &Header{
		Height:     block.Height,
		BlockTime:  block.BlockTime,
		Round:      block.Round,
		Epoch:      block.Epoch,
		Hash:       common.ToHex(block.Hash()),
		ParentHash: common.ToHex(block.ParentHash),
		TxHash:     common.ToHex(block.TxHash),
		RandomSeed: common.ToHex(block.RandomSeed),
		SeedProof:  common.ToHex(block.SeedProof),
		TxCount:    int64(len(block.Txs)),
	}
}

//DecodeBlockDetail block with decoded txs, receipts only when detail is set
func DecodeBlockDetail(in *types.BlockDetail, detail bool) (*BlockDetail, error) {
	if in == nil || in.Block == nil {
		return nil, types.ErrEmpty
	}
	out := &BlockDetail{Header: DecodeHeader(in.Block)}
	for _, tx := range in.Block.Txs {
		t, err := DecodeTx(tx)
		if err != nil {
			return nil, err
		}
		out.Txs = append(out.Txs, t)
	}
	if detail {
		for _, r := range in.Receipts {
			out.Receipts = append(out.Receipts, DecodeLog(r))
		}
	}
	return out, nil
}

//DecodeTxResult executed tx
func DecodeTxResult(in *types.TxResult) (*TransactionDetail, error) {
	tx, err := DecodeTx(in.GetTx())
	if err != nil {
		return nil, err
	}
	return &TransactionDetail{
		Tx:        tx,
		Receipt:   DecodeLog(in.GetReceipt()),
		Height:    in.Height,
		Index:     in.Index,
		BlockTime: in.BlockTime,
	}, nil
}
