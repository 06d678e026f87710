// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"
	"testing"

	"github.com/33cn/wintergame/common/crypto"
	tt "github.com/33cn/wintergame/plugin/dapp/token/types"
	drivers "github.com/33cn/wintergame/system/dapp"
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
	"github.com/33cn/wintergame/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coin = "FROST"

var registerOnce sync.Once

type user struct {
	addr string
	priv crypto.PrivKey
}

type tokenSuite struct {
	chain    *util.Chain
	alice    *user
	bob      *user
	carol    *user
	execaddr string
}

func newSuite(t *testing.T, setup func(cfg *types.Config, s *tokenSuite)) *tokenSuite {
	cfg := util.TestConfig()
	registerOnce.Do(func() { Init(tt.TokenX, cfg) })
	s := &tokenSuite{execaddr: drivers.ExecAddress(tt.TokenX)}
	winter := []int64{1000, 500, 300}
	for i, u := range []**user{&s.alice, &s.bob, &s.carol} {
		addr, priv := util.Genaddress()
		*u = &user{addr: addr, priv: priv}
		util.AddAlloc(cfg, addr, "", 0, types.Coin)
		util.AddAlloc(cfg, addr, util.WinterClass, 0, winter[i])
	}
	util.AddAlloc(cfg, s.alice.addr, util.SnowClass, 0, 200)
	util.SetSubConfig(cfg, mty.ManageX, map[string]interface{}{"superManager": []string{s.carol.addr}})
	if setup != nil {
		setup(cfg, s)
	}
	chain, err := util.NewChain(cfg)
	require.NoError(t, err)
	s.chain = chain
	_, err = s.chain.ExecAndCheck(types.ExecOk, util.CreateManageTx(s.carol.priv, mty.KeyTokenManager, mty.OpAdd, s.carol.addr))
	require.NoError(t, err)
	return s
}

func fee(amount int64) *types.Payment {
	return &types.Payment{Token: coin, Amount: amount}
}

func issueTx(u *user, ticker string, supply int64, payments ...*types.Payment) *types.Transaction {
	action := &tt.TokenAction{
		Ty:    tt.TokenActionIssue,
		Issue: &tt.TokenIssue{Name: "Ice", Ticker: ticker, Supply: supply, Decimals: 2},
	}
	return util.CreateTx(u.priv, tt.TokenX, action, payments...)
}

func completeTx(u *user, id string) *types.Transaction {
	action := &tt.TokenAction{Ty: tt.TokenActionComplete, Complete: &tt.TokenComplete{Identifier: id}}
	return util.CreateTx(u.priv, tt.TokenX, action)
}

func rejectTx(u *user, id string) *types.Transaction {
	action := &tt.TokenAction{Ty: tt.TokenActionReject, Reject: &tt.TokenReject{Identifier: id}}
	return util.CreateTx(u.priv, tt.TokenX, action)
}

func transferTx(u *user, class string, nonce uint64, to string, amount int64) *types.Transaction {
	action := &tt.TokenAction{
		Ty:       tt.TokenActionTransfer,
		Transfer: &tt.TokenTransfer{Class: class, Nonce: nonce, To: to, Amount: amount},
	}
	return util.CreateTx(u.priv, tt.TokenX, action)
}

func burnTx(u *user, class string, amount int64) *types.Transaction {
	action := &tt.TokenAction{Ty: tt.TokenActionBurn, Burn: &tt.TokenBurn{Class: class, Amount: amount}}
	return util.CreateTx(u.priv, tt.TokenX, action)
}

func (s *tokenSuite) expectErr(t *testing.T, tx *types.Transaction, msg string) {
	detail, err := s.chain.ExecAndCheck(types.ExecErr, tx)
	require.NoError(t, err)
	assert.Equal(t, msg, util.ErrLog(detail.Receipts[0]))
}

func (s *tokenSuite) issue(t *testing.T, u *user, ticker string, supply, paid int64) string {
	tx := issueTx(u, ticker, supply, fee(paid))
	_, err := s.chain.ExecAndCheck(types.ExecOk, tx)
	require.NoError(t, err)
	return types.TokenIdentifier(ticker, tx.Hash())
}

func (s *tokenSuite) getIssue(t *testing.T, id string) *tt.IssueRequest {
	reply, err := s.chain.Query(tt.TokenX, tt.FuncNameGetIssue, &tt.ReqIssue{Identifier: id})
	require.NoError(t, err)
	return reply.(*tt.IssueRequest)
}

func (s *tokenSuite) listIssues(t *testing.T, status int32) []*tt.IssueRequest {
	reply, err := s.chain.Query(tt.TokenX, tt.FuncNameListIssues, &tt.ReqIssues{Status: status})
	require.NoError(t, err)
	return reply.(*tt.ReplyIssues).Issues
}

func TestIssueLifecycle(t *testing.T) {
	s := newSuite(t, nil)
	id := s.issue(t, s.alice, "ICE", 100000, tt.DefaultIssueCost)
	assert.Regexp(t, "^ICE-[0-9a-f]{6}$", id)
	assert.Equal(t, types.Coin-tt.DefaultIssueCost, s.chain.Balance(coin, 0, s.alice.addr))
	assert.Equal(t, tt.DefaultIssueCost, s.chain.Balance(coin, 0, s.execaddr))

	issue := s.getIssue(t, id)
	assert.Equal(t, int32(tt.IssueStatusPending), issue.Status)
	assert.Equal(t, s.alice.addr, issue.Issuer)
	assert.Equal(t, tt.DefaultIssueCost, issue.Fee)
	require.Len(t, s.listIssues(t, tt.IssueStatusPending), 1)

	s.expectErr(t, completeTx(s.bob, id), tt.ErrTokenManager.Error())
	_, err := s.chain.ExecAndCheck(types.ExecOk, completeTx(s.carol, id))
	require.NoError(t, err)
	s.expectErr(t, completeTx(s.carol, id), tt.ErrIssueStatus.Error())
	s.expectErr(t, rejectTx(s.carol, id), tt.ErrIssueStatus.Error())

	assert.Equal(t, int64(100000), s.chain.Balance(id, 0, s.alice.addr))
	assert.Equal(t, tt.DefaultIssueCost, s.chain.Balance(coin, 0, s.execaddr))
	issue = s.getIssue(t, id)
	assert.Equal(t, int32(tt.IssueStatusComplete), issue.Status)
	assert.Equal(t, s.carol.addr, issue.Manager)
	assert.Len(t, s.listIssues(t, tt.IssueStatusPending), 0)
	require.Len(t, s.listIssues(t, tt.IssueStatusComplete), 1)

	reply, err := s.chain.Query(tt.TokenX, tt.FuncNameGetTokenInfo, &tt.ReqTokenInfo{Class: "ICE-"})
	require.NoError(t, err)
	info := reply.(*tt.ReplyTokenInfo)
	assert.Equal(t, id, info.Class.Class)
	assert.Equal(t, []string{tt.TokenX}, info.Class.Minters)
	assert.Equal(t, int64(100000), info.Supply)
	assert.Equal(t, "1000", info.Amount)

	_, err = s.chain.ExecAndCheck(types.ExecOk, transferTx(s.alice, id, 0, s.bob.addr, 250))
	require.NoError(t, err)
	_, err = s.chain.ExecAndCheck(types.ExecOk, burnTx(s.bob, id, 50))
	require.NoError(t, err)
	assert.Equal(t, int64(99750), s.chain.Balance(id, 0, s.alice.addr))
	assert.Equal(t, int64(200), s.chain.Balance(id, 0, s.bob.addr))

	reply, err = s.chain.Query(tt.TokenX, tt.FuncNameGetTokenInfo, &tt.ReqTokenInfo{Class: id})
	require.NoError(t, err)
	assert.Equal(t, int64(99950), reply.(*tt.ReplyTokenInfo).Supply)
	s.expectErr(t, burnTx(s.bob, id, 201), "Insufficient "+id+" balance to burn")
}

func TestRejectRefundsFee(t *testing.T) {
	s := newSuite(t, nil)
	id := s.issue(t, s.alice, "FIRE", 500, 2*tt.DefaultIssueCost)
	assert.Equal(t, 2*tt.DefaultIssueCost, s.chain.Balance(coin, 0, s.execaddr))

	s.expectErr(t, rejectTx(s.alice, id), tt.ErrTokenManager.Error())
	_, err := s.chain.ExecAndCheck(types.ExecOk, rejectTx(s.carol, id))
	require.NoError(t, err)
	assert.Equal(t, types.Coin, s.chain.Balance(coin, 0, s.alice.addr))
	assert.Equal(t, int64(0), s.chain.Balance(coin, 0, s.execaddr))
	assert.Equal(t, int32(tt.IssueStatusRejected), s.getIssue(t, id).Status)
	require.Len(t, s.listIssues(t, tt.IssueStatusRejected), 1)

	s.expectErr(t, completeTx(s.carol, id), tt.ErrIssueStatus.Error())
	_, err = s.chain.Query(tt.TokenX, tt.FuncNameGetTokenInfo, &tt.ReqTokenInfo{Class: id})
	assert.Equal(t, types.ErrUnknownToken, err)
}

func TestIssueChecks(t *testing.T) {
	s := newSuite(t, nil)
	s.expectErr(t, issueTx(s.alice, "ICE", 100), "FROST token is missing")
	s.expectErr(t, issueTx(s.alice, "ICE", 100, fee(tt.DefaultIssueCost-1)), "Insufficient FROST tokens")
	s.expectErr(t, issueTx(s.alice, "ICE", 100, fee(tt.DefaultIssueCost), &types.Payment{Token: util.WinterClass, Amount: 1}),
		"Only FROST tokens are accepted")
	s.expectErr(t, issueTx(s.alice, "ice", 100, fee(tt.DefaultIssueCost)), tt.ErrTokenTicker.Error())
	s.expectErr(t, issueTx(s.alice, "IC", 100, fee(tt.DefaultIssueCost)), tt.ErrTokenTicker.Error())
	s.expectErr(t, issueTx(s.alice, "ICE", 0, fee(tt.DefaultIssueCost)), tt.ErrTokenSupply.Error())
	s.expectErr(t, issueTx(s.alice, "SNOW", 100, fee(tt.DefaultIssueCost)), tt.ErrTickerTaken.Error())
	s.expectErr(t, issueTx(s.alice, "FROST", 100, fee(tt.DefaultIssueCost)), tt.ErrTickerTaken.Error())
	assert.Equal(t, types.Coin, s.chain.Balance(coin, 0, s.alice.addr))

	s.expectErr(t, completeTx(s.carol, "NONE-000000"), tt.ErrIssueNotFound.Error())
	_, err := s.chain.Query(tt.TokenX, tt.FuncNameGetIssue, &tt.ReqIssue{Identifier: "NONE-000000"})
	assert.Equal(t, tt.ErrIssueNotFound, err)
}

func TestTickerStaysUnique(t *testing.T) {
	s := newSuite(t, nil)
	first := s.issue(t, s.alice, "ICE", 100, tt.DefaultIssueCost)
	second := s.issue(t, s.bob, "ICE", 200, tt.DefaultIssueCost)
	require.NotEqual(t, first, second)

	_, err := s.chain.ExecAndCheck(types.ExecOk, completeTx(s.carol, first))
	require.NoError(t, err)
	s.expectErr(t, completeTx(s.carol, second), tt.ErrTickerTaken.Error())
	s.expectErr(t, issueTx(s.bob, "ICE", 100, fee(tt.DefaultIssueCost)), tt.ErrTickerTaken.Error())
	assert.Equal(t, int32(tt.IssueStatusPending), s.getIssue(t, second).Status)
	assert.Equal(t, int64(0), s.chain.Balance(second, 0, s.bob.addr))

	//the prefix still names a single class
	reply, err := s.chain.Query(tt.TokenX, tt.FuncNameGetTokenInfo, &tt.ReqTokenInfo{Class: "ICE-"})
	require.NoError(t, err)
	assert.Equal(t, first, reply.(*tt.ReplyTokenInfo).Class.Class)
	reply, err = s.chain.Query(tt.TokenX, tt.FuncNameGetTokenInfo, &tt.ReqTokenInfo{Class: "SNOW-"})
	require.NoError(t, err)
	assert.Equal(t, util.SnowClass, reply.(*tt.ReplyTokenInfo).Class.Class)

	//a pending issue that lost its ticker can still be rejected for the refund
	_, err = s.chain.ExecAndCheck(types.ExecOk, rejectTx(s.carol, second))
	require.NoError(t, err)
	assert.Equal(t, types.Coin, s.chain.Balance(coin, 0, s.bob.addr))
}

func TestConfiguredIssueCost(t *testing.T) {
	s := newSuite(t, func(cfg *types.Config, s *tokenSuite) {
		util.SetSubConfig(cfg, tt.TokenX, map[string]interface{}{"issueCost": types.Coin / 2})
	})
	s.expectErr(t, issueTx(s.alice, "ICE", 100, fee(tt.DefaultIssueCost)), "Insufficient FROST tokens")
	s.issue(t, s.alice, "ICE", 100, types.Coin/2)
}

func TestTransferChecks(t *testing.T) {
	s := newSuite(t, nil)
	s.expectErr(t, transferTx(s.alice, util.WinterClass, 0, s.alice.addr, 1), tt.ErrSelfTransfer.Error())
	s.expectErr(t, transferTx(s.alice, util.WinterClass, 0, "bad address", 1), types.ErrInvalidAddress.Error())
	s.expectErr(t, transferTx(s.alice, "NONE-000000", 0, s.bob.addr, 1), types.ErrUnknownToken.Error())
	s.expectErr(t, transferTx(s.alice, util.WinterClass, 1, s.bob.addr, 1), types.ErrInvalidParam.Error())
	s.expectErr(t, transferTx(s.alice, util.WinterClass, 0, s.bob.addr, 1001), types.ErrNoBalance.Error())

	_, err := s.chain.ExecAndCheck(types.ExecOk, transferTx(s.alice, util.WinterClass, 0, s.bob.addr, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(900), s.chain.Balance(util.WinterClass, 0, s.alice.addr))
	assert.Equal(t, int64(600), s.chain.Balance(util.WinterClass, 0, s.bob.addr))

	nonce, err := s.chain.MintNft("craft", s.alice.addr, &types.NftAttributes{Class: util.CitizenClass, Kind: "CITIZEN"})
	require.NoError(t, err)
	s.expectErr(t, transferTx(s.alice, util.CitizenClass, nonce, s.bob.addr, 2), types.ErrAmount.Error())
	s.expectErr(t, transferTx(s.alice, util.CitizenClass, 0, s.bob.addr, 1), types.ErrAmount.Error())
	detail, err := s.chain.ExecAndCheck(types.ExecOk, transferTx(s.alice, util.CitizenClass, nonce, s.bob.addr, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.chain.Balance(util.CitizenClass, nonce, s.bob.addr))
	events := s.chain.Events(detail)
	require.Len(t, events, 3)
	assert.Equal(t, "LogTokenTransfer", events[2].Name)
}

func TestBurnChecks(t *testing.T) {
	s := newSuite(t, nil)
	s.expectErr(t, burnTx(s.alice, util.WinterClass, 1), tt.ErrBurnNotIssued.Error())
	s.expectErr(t, burnTx(s.alice, util.CitizenClass, 1), tt.ErrBurnNotIssued.Error())
	s.expectErr(t, burnTx(s.alice, "NONE-000000", 1), types.ErrUnknownToken.Error())

	_, err := s.chain.ExecAndCheck(types.ExecOk, burnTx(s.alice, util.SnowClass, 50))
	require.NoError(t, err)
	assert.Equal(t, int64(150), s.chain.Balance(util.SnowClass, 0, s.alice.addr))
}

func TestTopHolders(t *testing.T) {
	s := newSuite(t, nil)
	reply, err := s.chain.Query(tt.TokenX, tt.FuncNameTopHolders, &types.ReqHolders{Prefix: "WINTER-"})
	require.NoError(t, err)
	holders := reply.(*types.ReplyHolders).Holders
	require.Len(t, holders, 3)
	assert.Equal(t, s.alice.addr, holders[0].Addr)
	assert.Equal(t, "10", holders[0].Amount)
	assert.Equal(t, "5", holders[1].Amount)
	assert.Equal(t, "3", holders[2].Amount)

	reply, err = s.chain.Query(tt.TokenX, tt.FuncNameTopHolders, &types.ReqHolders{Prefix: "WINTER-", Count: 1})
	require.NoError(t, err)
	assert.Len(t, reply.(*types.ReplyHolders).Holders, 1)

	reply, err = s.chain.Query(tt.TokenX, tt.FuncNameTopHolders, &types.ReqHolders{Prefix: "CITIZEN-"})
	require.NoError(t, err)
	assert.Len(t, reply.(*types.ReplyHolders).Holders, 0)

	_, err = s.chain.Query(tt.TokenX, tt.FuncNameTopHolders, &types.ReqHolders{})
	assert.Equal(t, types.ErrInvalidParam, err)

	reply, err = s.chain.Query(tt.TokenX, tt.FuncNameGetBalance, &types.ReqBalance{Addr: s.bob.addr, Token: util.WinterClass})
	require.NoError(t, err)
	assert.Equal(t, int64(500), reply.(*types.Account).Balance)
}
