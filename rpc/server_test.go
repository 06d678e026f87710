// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/33cn/wintergame/blockchain"
	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/common/crypto"
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/indexer"
	"github.com/33cn/wintergame/pluginmgr"
	"github.com/33cn/wintergame/rpc/jsonclient"
	rpctypes "github.com/33cn/wintergame/rpc/types"
	"github.com/33cn/wintergame/types"
	"github.com/33cn/wintergame/util"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	chain  *blockchain.BlockChain
	index  *indexer.Indexer
	server *JSONRPCServer
	http   *httptest.Server
	client *jsonclient.JSONClient
	addr   string
	priv   crypto.PrivKey
}

func newTestNode(t *testing.T, index bool) *testNode {
	cfg := util.TestConfig()
	cfg.RPC.EnableWS = true
	cfg.RPC.Whitelist = []string{"192.168.1.2"}
	addr, priv := util.Genaddress()
	util.AddAlloc(cfg, addr, "", 0, 100*types.Coin)
	pluginmgr.InitExec(cfg)
	db, err := dbm.NewGoMemDB("rpc", "", 0)
	require.NoError(t, err)
	chain, err := blockchain.New(cfg, db)
	require.NoError(t, err)
	node := &testNode{chain: chain, addr: addr, priv: priv}
	var events rpctypes.EventQuerier
	if index {
		node.index, err = indexer.Open(":memory:")
		require.NoError(t, err)
		chain.SetEventSink(node.index)
		events = node.index
	}
	node.server = NewJSONRPCServer(cfg, chain, events)
	node.http = httptest.NewServer(node.server.Handler())
	node.client, err = jsonclient.NewJSONClient(node.http.URL)
	require.NoError(t, err)
	t.Cleanup(func() {
		node.server.Close()
		node.http.Close()
		chain.Close()
		if node.index != nil {
			node.index.Close()
		}
	})
	return node
}

func (n *testNode) send(t *testing.T, tx *types.Transaction) string {
	var hash string
	err := n.client.Call("Winter.SendTransaction", rpctypes.RawParm{Data: common.ToHex(types.Encode(tx))}, &hash)
	require.NoError(t, err)
	return hash
}

func TestSendAndQueryTransaction(t *testing.T) {
	node := newTestNode(t, true)
	to, _ := util.Genaddress()
	tx := util.CreateCoinsTx(node.priv, to, 3*types.Coin)
	hash := node.send(t, tx)
	assert.Equal(t, common.ToHex(tx.Hash()), hash)

	err := node.client.Call("Winter.SendTransaction", rpctypes.RawParm{Data: common.ToHex(types.Encode(tx))}, nil)
	assert.EqualError(t, err, types.ErrTxDup.Error())
	err = node.client.Call("Winter.SendTransaction", rpctypes.RawParm{Data: "0xzz"}, nil)
	assert.Error(t, err)

	_, err = node.chain.CreateBlock()
	require.NoError(t, err)

	var detail rpctypes.TransactionDetail
	require.NoError(t, node.client.Call("Winter.QueryTransaction", rpctypes.QueryParm{Hash: hash}, &detail))
	assert.Equal(t, int64(1), detail.Height)
	assert.Equal(t, "ExecOk", detail.Receipt.TyName)
	assert.Equal(t, node.addr, detail.Tx.From)
	assert.Equal(t, "coins", detail.Tx.Execer)

	var acc types.Account
	req := rpctypes.Query4Cli{Execer: "coins", FuncName: "GetBalance", Payload: map[string]string{"addr": to}}
	require.NoError(t, node.client.Call("Winter.Query", req, &acc))
	assert.Equal(t, 3*types.Coin, acc.Balance)

	err = node.client.Call("Winter.Query", rpctypes.Query4Cli{Execer: "coins"}, &acc)
	assert.EqualError(t, err, types.ErrInvalidParam.Error())

	node.index.Flush()
	var events rpctypes.ReplyEvents
	require.NoError(t, node.client.Call("Winter.GetEvents", rpctypes.ReqEvents{Execer: "coins", TxHash: hash}, &events))
	require.NotEmpty(t, events.Events)
	assert.Equal(t, int64(1), events.Events[0].Height)
}

func TestBlocksAndVersion(t *testing.T) {
	node := newTestNode(t, false)
	to, _ := util.Genaddress()
	node.send(t, util.CreateCoinsTx(node.priv, to, types.Coin))
	_, err := node.chain.CreateBlock()
	require.NoError(t, err)

	var header rpctypes.Header
	require.NoError(t, node.client.Call("Winter.GetLastHeader", nil, &header))
	assert.Equal(t, int64(1), header.Height)
	assert.Equal(t, int64(1), header.TxCount)

	var blocks rpctypes.BlockDetails
	require.NoError(t, node.client.Call("Winter.GetBlocks", rpctypes.BlockParam{Start: 0, End: 1, IsDetail: true}, &blocks))
	require.Len(t, blocks.Items, 2)
	assert.Equal(t, header.Hash, blocks.Items[1].Header.Hash)
	require.Len(t, blocks.Items[1].Receipts, 1)
	assert.Equal(t, "LogTransfer", blocks.Items[1].Receipts[0].Logs[0].TyName)

	err = node.client.Call("Winter.GetBlocks", rpctypes.BlockParam{Start: 0, End: MaxBlockRange}, &blocks)
	assert.EqualError(t, err, types.ErrInvalidParam.Error())
	err = node.client.Call("Winter.GetBlocks", rpctypes.BlockParam{Start: 0, End: 5}, &blocks)
	assert.EqualError(t, err, types.ErrHeightOutOfRange.Error())

	var ver rpctypes.NodeVersion
	require.NoError(t, node.client.Call("Winter.Version", nil, &ver))
	assert.Equal(t, int64(1), ver.Height)
	assert.NotEmpty(t, ver.Version)

	err = node.client.Call("Winter.GetEvents", rpctypes.ReqEvents{}, nil)
	assert.EqualError(t, err, types.ErrActionNotSupport.Error())
}

func TestCreateRawTransaction(t *testing.T) {
	node := newTestNode(t, false)
	to, _ := util.Genaddress()
	var raw string
	req := rpctypes.CreateTx{
		Execer:     "coins",
		ActionName: "Transfer",
		Payload:    json.RawMessage(`{"to":"` + to + `","amount":100}`),
	}
	require.NoError(t, node.client.Call("Winter.CreateRawTransaction", req, &raw))
	data, err := common.FromHex(raw)
	require.NoError(t, err)
	var tx types.Transaction
	require.NoError(t, types.Decode(data, &tx))
	assert.Equal(t, "coins", string(tx.Execer))

	tx.Sign(node.priv)
	node.send(t, &tx)
	_, err = node.chain.CreateBlock()
	require.NoError(t, err)

	err = node.client.Call("Winter.CreateRawTransaction", rpctypes.CreateTx{Execer: "none"}, &raw)
	assert.EqualError(t, err, types.ErrActionNotSupport.Error())
}

func TestIPWhitelist(t *testing.T) {
	node := newTestNode(t, false)
	handler := node.server.Handler()
	body := `{"method":"Winter.Version","params":[null],"id":1}`

	for remote, code := range map[string]int{
		"10.0.0.1:5000":    http.StatusForbidden,
		"192.168.1.2:5000": http.StatusOK,
		"127.0.0.1:5000":   http.StatusOK,
	} {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		r.RemoteAddr = remote
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, code, w.Code, remote)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "127.0.0.1:5000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	wl := InitIPWhitelist(&types.RPC{Whitelist: []string{"*"}})
	assert.True(t, wl["0.0.0.0"])
}

func TestWebsocketFeed(t *testing.T) {
	node := newTestNode(t, false)
	url := "ws" + strings.TrimPrefix(node.http.URL, "http") + "/ws?execer=coins"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// wait for the handler to subscribe
	time.Sleep(100 * time.Millisecond)
	to, _ := util.Genaddress()
	node.send(t, util.CreateCoinsTx(node.priv, to, types.Coin))
	_, err = node.chain.CreateBlock()
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var ev types.Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "coins", ev.Execer)
	assert.Equal(t, int64(1), ev.Height)
	assert.Equal(t, node.addr, ev.From)
}
