// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/common/crypto"
	"github.com/33cn/wintergame/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayment(t *testing.T) {
	p, err := ParsePayment("FROST:100")
	require.NoError(t, err)
	assert.Equal(t, &types.Payment{Token: "FROST", Amount: 100}, p)

	p, err = ParsePayment("CITIZEN-4a8d46:3:1")
	require.NoError(t, err)
	assert.Equal(t, &types.Payment{Token: "CITIZEN-4a8d46", Nonce: 3, Amount: 1}, p)

	for _, bad := range []string{"FROST", "FROST:x", ":10", "A:b:1", "FROST:-1", "A:1:2:3"} {
		_, err = ParsePayment(bad)
		assert.Error(t, err, bad)
	}
}

func TestGetPaymentsAndKey(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("key", "", "")
	AddPayFlag(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--pay", "FROST:5", "-p", "WINTER-1a2b3c:7", "--key", common.ToHex(priv.Bytes())}))

	payments, err := GetPayments(cmd)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, int64(7), payments[1].Amount)

	key, err := LoadKey(cmd)
	require.NoError(t, err)
	assert.True(t, key.Equals(priv))
}

func TestDecodeAccount(t *testing.T) {
	res := DecodeAccount(&types.Account{Token: "FROST", Addr: "a", Balance: 150000000}, 8)
	assert.Equal(t, "1.5", res.Balance)
}
