// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto secp256k1 keys and signatures for transactions
package crypto

import (
	"bytes"
	"errors"

	"github.com/33cn/wintergame/common"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

//NameSecp256k1 name of the only supported signature scheme
const NameSecp256k1 = "secp256k1"

var (
	//ErrPrivKeyLen private key must be 32 bytes
	ErrPrivKeyLen = errors.New("ErrPrivKeyLen")
	//ErrPubKeyLen compressed public key must be 33 bytes
	ErrPubKeyLen = errors.New("ErrPubKeyLen")
)

//PrivKey secp256k1 private key
type PrivKey [32]byte

//PubKey compressed secp256k1 public key
type PubKey [33]byte

//GenKey new random key
func GenKey() (PrivKey, error) {
	var key PrivKey
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return key, err
	}
	copy(key[:], priv.Serialize())
	return key, nil
}

//PrivKeyFromBytes load private key
func PrivKeyFromBytes(b []byte) (PrivKey, error) {
	var key PrivKey
	if len(b) != 32 {
		return key, ErrPrivKeyLen
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	copy(key[:], priv.Serialize())
	return key, nil
}

//Bytes raw bytes
func (key PrivKey) Bytes() []byte {
	s := make([]byte, 32)
	copy(s, key[:])
	return s
}

//Sign DER signature over sha256(msg)
func (key PrivKey) Sign(msg []byte) []byte {
	priv, _ := btcec.PrivKeyFromBytes(key[:])
	sig := ecdsa.Sign(priv, common.Sha256(msg))
	return sig.Serialize()
}

//PubKey derive the compressed public key
func (key PrivKey) PubKey() PubKey {
	_, pub := btcec.PrivKeyFromBytes(key[:])
	var out PubKey
	copy(out[:], pub.SerializeCompressed())
	return out
}

//Equals compare two private keys
func (key PrivKey) Equals(other PrivKey) bool {
	return bytes.Equal(key[:], other[:])
}

//PubKeyFromBytes load public key
func PubKeyFromBytes(b []byte) (PubKey, error) {
	var pub PubKey
	if len(b) != 33 {
		return pub, ErrPubKeyLen
	}
	copy(pub[:], b)
	return pub, nil
}

//Bytes raw bytes
func (pub PubKey) Bytes() []byte {
	s := make([]byte, 33)
	copy(s, pub[:])
	return s
}

//VerifyBytes check a DER signature over sha256(msg)
func (pub PubKey) VerifyBytes(msg []byte, sig []byte) bool {
	key, err := btcec.ParsePubKey(pub[:])
	if err != nil {
		return false
	}
	signature, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return signature.Verify(common.Sha256(msg), key)
}
