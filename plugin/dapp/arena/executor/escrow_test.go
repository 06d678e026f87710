// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	dbm "github.com/33cn/wintergame/common/db"
	wexec "github.com/33cn/wintergame/executor"
	"github.com/33cn/wintergame/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEscrow(t *testing.T) *escrow {
	db, err := dbm.NewGoMemDB("escrow", "", 0)
	require.NoError(t, err)
	return newEscrow(wexec.NewStateDB(db))
}

func TestEscrowDeposit(t *testing.T) {
	e := newTestEscrow(t)
	receipt, err := e.Deposit("g1", "alice", 100)
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 2)
	assert.Len(t, receipt.Logs, 1)
	_, err = e.Deposit("g2", "alice", 50)
	require.NoError(t, err)

	assert.Equal(t, int64(150), e.BalanceOf("alice"))
	assert.Equal(t, int64(100), e.ShareOf("g1", "alice"))
	assert.Equal(t, int64(50), e.ShareOf("g2", "alice"))
	assert.Equal(t, int64(0), e.BalanceOf("bob"))

	receipt, err = e.Deposit("g1", "alice", 0)
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 0)
	_, err = e.Deposit("g1", "alice", -1)
	assert.Equal(t, types.ErrAmount, err)
}

func TestEscrowSettle(t *testing.T) {
	e := newTestEscrow(t)
	_, err := e.Deposit("g1", "alice", 100)
	require.NoError(t, err)
	_, err = e.Deposit("g1", "bob", 120)
	require.NoError(t, err)
	_, err = e.Deposit("g2", "bob", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(220), e.TotalOf("g1", "alice", "bob"))
	assert.Equal(t, int64(30), e.TotalOf("g2", "alice", "bob"))

	pot, receipt, err := e.Settle("g1", "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(220), pot)
	assert.Len(t, receipt.Logs, 2)
	assert.Equal(t, int64(0), e.BalanceOf("alice"))
	assert.Equal(t, int64(30), e.BalanceOf("bob"))
	assert.Equal(t, int64(30), e.ShareOf("g2", "bob"))

	//settled shares are gone
	pot, receipt, err = e.Settle("g1", "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), pot)
	assert.Len(t, receipt.KV, 0)
}
