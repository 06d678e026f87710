// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexer

import (
	"encoding/json"
	"path/filepath"
	"testing"

	rpctypes "github.com/33cn/wintergame/rpc/types"
	"github.com/33cn/wintergame/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishSample(idx *Indexer) {
	idx.Publish(&types.Event{Height: 1, BlockTime: 100, TxHash: "0x01", Index: 0, Execer: "coins", From: "alice", Name: "LogTransfer", Ty: 3, Data: json.RawMessage(`{"amount":1}`)})
	idx.Publish(&types.Event{Height: 2, BlockTime: 101, TxHash: "0x02", Index: 0, Execer: "arena", From: "bob", Name: "LogGameCreate", Ty: 801})
	idx.Publish(&types.Event{Height: 2, BlockTime: 101, TxHash: "0x03", Index: 1, Execer: "arena", From: "alice", Name: "LogGameJoin", Ty: 802})
	idx.Publish(&types.Event{Height: 3, BlockTime: 102, TxHash: "0x04", Index: 0, Execer: "staking", From: "alice", Name: "LogStake", Ty: 901})
}

func TestQueryEvents(t *testing.T) {
	idx, err := Open(":memory:")
	require.NoError(t, err)
	defer idx.Close()
	publishSample(idx)
	idx.Flush()

	all, err := idx.QueryEvents(nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "LogTransfer", all[0].Name)
	assert.JSONEq(t, `{"amount":1}`, string(all[0].Data))
	assert.Equal(t, "null", string(all[1].Data))

	arena, err := idx.QueryEvents(&rpctypes.ReqEvents{Execer: "arena"})
	require.NoError(t, err)
	require.Len(t, arena, 2)
	assert.Equal(t, 1, arena[1].Index)

	alice, err := idx.QueryEvents(&rpctypes.ReqEvents{From: "alice", HeightFrom: 2})
	require.NoError(t, err)
	require.Len(t, alice, 2)
	assert.Equal(t, "LogGameJoin", alice[0].Name)
	assert.Equal(t, "LogStake", alice[1].Name)

	ranged, err := idx.QueryEvents(&rpctypes.ReqEvents{HeightFrom: 1, HeightTo: 2, Count: 2})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	byTx, err := idx.QueryEvents(&rpctypes.ReqEvents{TxHash: "0x04", Name: "LogStake"})
	require.NoError(t, err)
	require.Len(t, byTx, 1)
	assert.Equal(t, int64(3), byTx[0].Height)

	_, err = idx.QueryEvents(&rpctypes.ReqEvents{HeightFrom: 5, HeightTo: 2})
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index", "events.db")
	idx, err := Open(path)
	require.NoError(t, err)
	publishSample(idx)
	require.NoError(t, idx.Close())
	require.NoError(t, idx.Close())
	idx.Publish(&types.Event{Height: 9})

	idx, err = Open(path)
	require.NoError(t, err)
	defer idx.Close()
	events, err := idx.QueryEvents(&rpctypes.ReqEvents{})
	require.NoError(t, err)
	assert.Len(t, events, 4)
	assert.Equal(t, int64(0), idx.Dropped())
}

func TestSinkInterface(t *testing.T) {
	var sink types.EventSink = (*Indexer)(nil)
	sink.Publish(&types.Event{})
	var _ rpctypes.EventQuerier = (*Indexer)(nil)
}
