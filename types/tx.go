// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math/rand"

	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/common/address"
	"github.com/33cn/wintergame/common/crypto"
)

//signature types
const (
	SECP256K1 = 1
)

//NewTransaction unsigned tx calling execer with payload
func NewTransaction(execer string, payload Message, payments ...*Payment) *Transaction {
	return &Transaction{
		Execer:   []byte(execer),
		Payload:  Encode(payload),
		Nonce:    rand.Int63(),
		To:       address.ExecAddress(execer),
		Payments: payments,
	}
}

//Hash sha256 of the tx without its signature
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

//Sign sign with a secp256k1 key
func (tx *Transaction) Sign(priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	tx.Signature = &Signature{
		Ty:        SECP256K1,
		Pubkey:    pub.Bytes(),
		Signature: priv.Sign(data),
	}
}

//CheckSign verify the signature
func (tx *Transaction) CheckSign() bool {
	if tx.Signature == nil || tx.Signature.Ty != SECP256K1 {
		return false
	}
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	pub, err := crypto.PubKeyFromBytes(tx.Signature.Pubkey)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, tx.Signature.Signature)
}

//From caller address, empty for unsigned txs
func (tx *Transaction) From() string {
	if tx.Signature == nil {
		return ""
	}
	return address.PubKeyToAddress(tx.Signature.Pubkey).String()
}

//ActionName name of the payload action
func (tx *Transaction) ActionName() string {
	ety := LoadExecutorType(string(tx.Execer))
	if ety == nil {
		return "unknown"
	}
	return ety.ActionName(tx)
}

//Size encoded size
func (tx *Transaction) Size() int {
	return Size(tx)
}

//Check format checks before a tx enters the pool
func (tx *Transaction) Check() error {
	if len(tx.Execer) == 0 || len(tx.Payload) == 0 {
		return ErrTxEmpty
	}
	if !tx.CheckSign() {
		return ErrSign
	}
	for _, p := range tx.Payments {
		if p.GetToken() == "" || !CheckAmount(p.GetAmount()) {
			return ErrAmount
		}
	}
	return nil
}
