// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"unicode/utf8"

	"github.com/33cn/wintergame/account"
	dbm "github.com/33cn/wintergame/common/db"
	tt "github.com/33cn/wintergame/plugin/dapp/token/types"
	drivers "github.com/33cn/wintergame/system/dapp"
	mty "github.com/33cn/wintergame/system/dapp/manage/types"
	"github.com/33cn/wintergame/types"
)

const maxNameLen = 64

type tokenDB struct {
	issue tt.IssueRequest
}

func newTokenDB(issue *tt.IssueRequest) *tokenDB {
	return &tokenDB{issue: *issue}
}

func (t *tokenDB) save(db dbm.KV) (*types.KeyValue, error) {
	kv := &types.KeyValue{Key: calcIssueKey(t.issue.Identifier), Value: types.Encode(&t.issue)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return kv, nil
}

func (t *tokenDB) getLog(ty int32, prevStatus int32, prevIndex int64) *types.ReceiptLog {
	log := &tt.ReceiptIssue{
		Identifier: t.issue.Identifier,
		Issuer:     t.issue.Issuer,
		Status:     t.issue.Status,
		PrevStatus: prevStatus,
		Index:      t.issue.Index,
		PrevIndex:  prevIndex,
	}
	return types.NewLog(ty, log)
}

func loadIssue(db dbm.KV, identifier string) (*tt.IssueRequest, error) {
	value, err := db.Get(calcIssueKey(identifier))
	if err != nil || value == nil {
		return nil, tt.ErrIssueNotFound
	}
	var issue tt.IssueRequest
	if err := types.Decode(value, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

type action struct {
	token     *Token
	db        dbm.KV
	fromaddr  string
	payments  []*types.Payment
	txhash    []byte
	blocktime int64
	height    int64
	execaddr  string
	index     int
}

func newAction(t *Token, tx *types.Transaction, index int) *action {
	return &action{
		token:     t,
		db:        t.GetStateDB(),
		fromaddr:  tx.From(),
		payments:  tx.Payments,
		txhash:    tx.Hash(),
		blocktime: t.GetBlockTime(),
		height:    t.GetHeight(),
		execaddr:  t.GetExecAddr(),
		index:     index,
	}
}

//tickerTaken the native coin, or a registered class named ticker or ticker-*.
//Prefix lookups like "SNOW-" stay unambiguous as long as every ticker has a single class.
func (action *action) tickerTaken(ticker string) bool {
	if ticker == action.token.GetCoinSymbol() {
		return true
	}
	if _, err := account.LoadClass(action.db, ticker); err == nil {
		return true
	}
	lister := action.token.GetStateLister()
	if lister == nil {
		return false
	}
	classes, err := account.ListClasses(lister, ticker+"-")
	return err != nil || len(classes) > 0
}

func (action *action) getIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func checkIssue(issue *tt.TokenIssue) error {
	if n := utf8.RuneCountInString(issue.Name); n == 0 || n > maxNameLen {
		return tt.ErrTokenName
	}
	if err := types.CheckTicker(issue.Ticker); err != nil {
		return tt.ErrTokenTicker
	}
	if !types.CheckAmount(issue.Supply) {
		return tt.ErrTokenSupply
	}
	if issue.Decimals < 0 || issue.Decimals > tt.MaxDecimals {
		return tt.ErrTokenDecimals
	}
	return nil
}

//issue 记录发行申请, 手续费留在 token 执行器地址直到审核
func (action *action) issue(req *tt.TokenIssue) (*types.Receipt, error) {
	if err := checkIssue(req); err != nil {
		tlog.Error("issue", "addr", action.fromaddr, "ticker", req.Ticker, "err", err)
		return nil, err
	}
	if action.tickerTaken(req.Ticker) {
		tlog.Error("issue", "addr", action.fromaddr, "ticker", req.Ticker, "err", tt.ErrTickerTaken)
		return nil, tt.ErrTickerTaken
	}
	coin := action.token.GetCoinSymbol()
	set, err := types.ValidatePayments(action.payments, types.PaymentRule{Name: coin, Exact: coin})
	if err != nil {
		return nil, err
	}
	if err := set.RequireMin(coin, action.token.issueCost()); err != nil {
		return nil, err
	}
	identifier := types.TokenIdentifier(req.Ticker, action.txhash)
	if _, err := loadIssue(action.db, identifier); err == nil {
		return nil, tt.ErrIssueExist
	}
	if _, err := account.LoadClass(action.db, identifier); err == nil {
		return nil, types.ErrTokenExist
	}
	t := newTokenDB(&tt.IssueRequest{
		Identifier: identifier,
		Name:       req.Name,
		Ticker:     req.Ticker,
		Supply:     req.Supply,
		Decimals:   req.Decimals,
		Issuer:     action.fromaddr,
		Fee:        set.Total(coin),
		Status:     tt.IssueStatusPending,
		CreatedAt:  action.blocktime,
		Index:      action.getIndex(),
	})
	kv, err := t.save(action.db)
	if err != nil {
		return nil, err
	}
	tlog.Debug("issue", "identifier", identifier, "issuer", action.fromaddr, "fee", t.issue.Fee)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{t.getLog(tt.TyLogTokenIssue, 0, 0)},
	}, nil
}

//pending 管理员权限和申请状态检查
func (action *action) pending(identifier string) (*tt.IssueRequest, error) {
	if !mty.IsConfValue(action.db, mty.KeyTokenManager, action.fromaddr) {
		tlog.Error("pending", "addr", action.fromaddr, "identifier", identifier, "err", tt.ErrTokenManager)
		return nil, tt.ErrTokenManager
	}
	issue, err := loadIssue(action.db, identifier)
	if err != nil {
		return nil, err
	}
	if issue.Status != tt.IssueStatusPending {
		return nil, tt.ErrIssueStatus
	}
	return issue, nil
}

func (action *action) decide(issue *tt.IssueRequest, status int32, ty int32) (*types.Receipt, error) {
	prevIndex := issue.Index
	t := newTokenDB(issue)
	t.issue.Status = status
	t.issue.DecidedAt = action.blocktime
	t.issue.Manager = action.fromaddr
	t.issue.Index = action.getIndex()
	kv, err := t.save(action.db)
	if err != nil {
		return nil, err
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{t.getLog(ty, tt.IssueStatusPending, prevIndex)},
	}, nil
}

//complete 注册 token 并铸造全部发行量给申请人
func (action *action) complete(req *tt.TokenComplete) (*types.Receipt, error) {
	issue, err := action.pending(req.Identifier)
	if err != nil {
		return nil, err
	}
	//two pending issues may share a ticker, only the first completed one gets it
	if action.tickerTaken(issue.Ticker) {
		tlog.Error("complete", "identifier", issue.Identifier, "err", tt.ErrTickerTaken)
		return nil, tt.ErrTickerTaken
	}
	receipt, err := account.RegisterClass(action.db, &types.TokenClass{
		Class:    issue.Identifier,
		Name:     issue.Name,
		Kind:     types.KindFungible,
		Decimals: issue.Decimals,
		Issuer:   issue.Issuer,
		Minters:  []string{tt.TokenX},
	})
	if err != nil {
		return nil, err
	}
	mint, err := account.NewTokenDB(issue.Identifier, 0, action.db).Mint(tt.TokenX, issue.Issuer, issue.Supply)
	if err != nil {
		return nil, err
	}
	decided, err := action.decide(issue, tt.IssueStatusComplete, tt.TyLogTokenComplete)
	if err != nil {
		return nil, err
	}
	return mergeReceipt(receipt, mint, decided), nil
}

//reject 退回手续费
func (action *action) reject(req *tt.TokenReject) (*types.Receipt, error) {
	issue, err := action.pending(req.Identifier)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	if issue.Fee > 0 {
		refund, err := action.token.GetCoinsAccount().Transfer(action.execaddr, issue.Issuer, issue.Fee)
		if err != nil {
			tlog.Error("reject", "identifier", issue.Identifier, "fee", issue.Fee, "err", err)
			return nil, err
		}
		receipt = refund
	}
	decided, err := action.decide(issue, tt.IssueStatusRejected, tt.TyLogTokenReject)
	if err != nil {
		return nil, err
	}
	return mergeReceipt(receipt, decided), nil
}

//transfer 用户间转账, nft 只能整个转移
func (action *action) transfer(req *tt.TokenTransfer) (*types.Receipt, error) {
	if err := drivers.CheckAddress(req.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	if req.To == action.fromaddr {
		return nil, tt.ErrSelfTransfer
	}
	tc, err := account.LoadClass(action.db, req.Class)
	if err != nil {
		return nil, err
	}
	if tc.Kind == types.KindNonFungible {
		if req.Nonce == 0 || req.Amount != 1 {
			return nil, types.ErrAmount
		}
	} else if req.Nonce != 0 {
		return nil, types.ErrInvalidParam
	}
	receipt, err := account.NewTokenDB(req.Class, req.Nonce, action.db).Transfer(action.fromaddr, req.To, req.Amount)
	if err != nil {
		return nil, err
	}
	log := &tt.ReceiptTokenTransfer{
		Class:  req.Class,
		Nonce:  req.Nonce,
		From:   action.fromaddr,
		To:     req.To,
		Amount: req.Amount,
	}
	receipt.Logs = append(receipt.Logs, types.NewLog(tt.TyLogTokenTransfer, log))
	return receipt, nil
}

//burn 持有人销毁自己的 token, 只限 token 执行器发行的类别
func (action *action) burn(req *tt.TokenBurn) (*types.Receipt, error) {
	tc, err := account.LoadClass(action.db, req.Class)
	if err != nil {
		return nil, err
	}
	if tc.Kind != types.KindFungible || !account.CanMint(tc, tt.TokenX) {
		return nil, tt.ErrBurnNotIssued
	}
	return account.NewTokenDB(req.Class, 0, action.db).Burn(tt.TokenX, action.fromaddr, req.Amount)
}

func mergeReceipt(receipts ...*types.Receipt) *types.Receipt {
	out := &types.Receipt{Ty: types.ExecOk}
	for _, r := range receipts {
		out.KV = append(out.KV, r.KV...)
		out.Logs = append(out.Logs, r.Logs...)
	}
	return out
}
