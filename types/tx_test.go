// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"sync"
	"testing"

	"github.com/33cn/wintergame/common/address"
	"github.com/33cn/wintergame/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxSign(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	tx := NewTransaction("coins", &ReqString{Data: "hello"}, &Payment{Token: "FROST", Amount: 5})
	hash := tx.Hash()
	tx.Sign(priv)
	assert.True(t, tx.CheckSign())
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, address.PubKeyToAddress(priv.PubKey().Bytes()).String(), tx.From())
	assert.NoError(t, tx.Check())

	tx.Payments[0].Amount = 6
	assert.False(t, tx.CheckSign())
	assert.Equal(t, ErrSign, tx.Check())
}

func TestTxEncodeDecode(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	tx := NewTransaction("arena", &ReqString{Data: "g1"})
	tx.Sign(priv)
	var back Transaction
	require.NoError(t, Decode(Encode(tx), &back))
	assert.Equal(t, tx.Hash(), back.Hash())
	assert.True(t, back.CheckSign())
}

func TestUnsignedTx(t *testing.T) {
	tx := NewTransaction("coins", &ReqString{Data: "x"})
	assert.Equal(t, "", tx.From())
	assert.False(t, tx.CheckSign())
	assert.Equal(t, ErrTxEmpty, (&Transaction{}).Check())
}

func TestNewTransactionConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	nonces := make([][]int64, 8)
	for i := range nonces {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				nonces[i] = append(nonces[i], NewTransaction("coins", &ReqString{Data: "x"}).Nonce)
			}
		}(i)
	}
	wg.Wait()
	seen := make(map[int64]bool)
	for _, list := range nonces {
		for _, n := range list {
			seen[n] = true
		}
	}
	assert.True(t, len(seen) > 790)
}

func TestBlockSeed(t *testing.T) {
	txs := []*Transaction{NewTransaction("coins", &ReqString{Data: "a"})}
	root := CalcTxHash(txs)
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	s1, proof := CalcRandomSeed(priv, []byte("parent"), 10)
	s2, _ := CalcRandomSeed(priv, []byte("parent"), 11)
	again, _ := CalcRandomSeed(priv, []byte("parent"), 10)
	assert.Len(t, s1, 32)
	assert.NotEmpty(t, proof)
	assert.NotEqual(t, s1, s2)
	assert.Equal(t, s1, again)
	assert.Equal(t, int64(2), CalcEpoch(250, 100))
	assert.Equal(t, int64(0), CalcEpoch(5, 0))

	block := &Block{Height: 1, Txs: txs, TxHash: root}
	h := block.Hash()
	block.Txs = nil
	assert.Equal(t, h, block.Hash())
}
