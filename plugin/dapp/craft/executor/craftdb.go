// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strings"

	"github.com/33cn/wintergame/account"
	dbm "github.com/33cn/wintergame/common/db"
	ct "github.com/33cn/wintergame/plugin/dapp/craft/types"
	"github.com/33cn/wintergame/types"
)

type action struct {
	craft    *Craft
	db       dbm.KV
	fromaddr string
	payments []*types.Payment
	env      *types.BlockEnv
	execaddr string
	index    int
}

func newAction(c *Craft, tx *types.Transaction, index int) *action {
	return &action{
		craft:    c,
		db:       c.GetStateDB(),
		fromaddr: tx.From(),
		payments: tx.Payments,
		env:      c.GetEnv(),
		execaddr: c.GetExecAddr(),
		index:    index,
	}
}

func (action *action) getIndex() int64 {
	return action.env.Height*types.MaxTxsPerBlock + int64(action.index)
}

//request Idle -> Pending: validate and burn the inputs, record the request time in the workflow clock
func (action *action) request(req *ct.CraftRequest) (*types.Receipt, error) {
	w, err := action.craft.getWorkflow(req.Workflow)
	if err != nil {
		return nil, err
	}
	if loadRequest(action.db, action.fromaddr, w.Name) != nil {
		return nil, ct.ErrRequestPending
	}
	set, err := types.ValidatePayments(action.payments, w.Rules()...)
	if err != nil {
		return nil, err
	}
	for _, in := range w.Inputs {
		if err := set.RequireMin(in.Name, in.Min); err != nil {
			return nil, err
		}
	}
	if err := action.checkTarget(w, req.TargetClass, req.TargetNonce); err != nil {
		return nil, err
	}

	mreq := &ct.MintRequest{
		Owner:       action.fromaddr,
		Workflow:    w.Name,
		RequestedAt: action.env.Clock(w.Clock),
		Clock:       w.Clock,
		TargetClass: req.TargetClass,
		TargetNonce: req.TargetNonce,
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	for _, p := range action.payments {
		if w.Output.InputDefense && p.Nonce != 0 {
			attrs, err := account.LoadNft(action.db, p.Token, p.Nonce)
			if err == nil {
				mreq.Bonus += attrs.Defense * uint32(p.Amount)
			}
		}
		r, err := account.NewTokenDB(p.Token, p.Nonce, action.db).Burn(ct.CraftX, action.execaddr, p.Amount)
		if err != nil {
			clog.Error("request.Burn", "workflow", w.Name, "token", p.Token, "nonce", p.Nonce, "err", err)
			return nil, err
		}
		receipt = types.AppendReceipt(receipt, r)
		mreq.Burned = append(mreq.Burned, p)
	}
	kv := &types.KeyValue{Key: requestKey(action.fromaddr, w.Name), Value: types.Encode(mreq)}
	if err := action.db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, types.NewLog(ct.TyLogCraftRequest, &ct.ReceiptCraftRequest{Request: mreq}))
	clog.Debug("request", "owner", action.fromaddr, "workflow", w.Name, "at", mreq.RequestedAt)
	return receipt, nil
}

//checkTarget upgrade workflows need an owned nft of the target class and kind, the others take none
func (action *action) checkTarget(w *ct.Workflow, class string, nonce uint64) error {
	if w.Target == nil {
		if class != "" || nonce != 0 {
			return ct.ErrTarget
		}
		return nil
	}
	if !strings.HasPrefix(class, w.Target.Prefix) || nonce == 0 {
		return ct.ErrTarget
	}
	attrs, err := account.LoadNft(action.db, class, nonce)
	if err != nil {
		return ct.ErrTarget
	}
	if w.Target.Kind != "" && attrs.Kind != w.Target.Kind {
		return ct.ErrTarget
	}
	if !account.OwnsNft(action.db, class, nonce, action.fromaddr) {
		return ct.ErrTargetNotOwned
	}
	return nil
}

//claim Pending -> Idle once the delay elapsed
func (action *action) claim(claim *ct.CraftClaim) (*types.Receipt, error) {
	w, err := action.craft.getWorkflow(claim.Workflow)
	if err != nil {
		return nil, err
	}
	mreq := loadRequest(action.db, action.fromaddr, w.Name)
	if mreq == nil {
		return nil, ct.ErrNoRequest
	}
	now := action.env.Clock(mreq.Clock)
	elapsed := now - mreq.RequestedAt
	if elapsed < w.Delay {
		return nil, types.TemporalGatef("Delay has not elapsed, %d of %d %s", elapsed, w.Delay, types.ClockUnit(mreq.Clock))
	}

	log := &ct.ReceiptCraftClaim{
		Owner:       action.fromaddr,
		Workflow:    w.Name,
		Output:      w.Output.Type,
		RequestedAt: mreq.RequestedAt,
		ClaimedAt:   now,
		Elapsed:     elapsed,
		Index:       action.getIndex(),
	}
	var receipt *types.Receipt
	switch w.Output.Type {
	case ct.OutputMint:
		receipt, err = action.mint(w, log)
	case ct.OutputNft:
		receipt, err = action.mintNft(w, log)
	case ct.OutputUpgrade:
		receipt, err = action.upgrade(w, mreq, log)
	default:
		err = ct.ErrCatalog
	}
	if err != nil {
		return nil, err
	}

	kv := &types.KeyValue{Key: requestKey(action.fromaddr, w.Name)}
	if err := action.db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, types.NewLog(ct.TyLogCraftClaim, log))
	clog.Info("claim", "owner", action.fromaddr, "workflow", w.Name, "class", log.Class, "nonce", log.Nonce, "amount", log.Amount)
	return receipt, nil
}

func (action *action) outputClass(w *ct.Workflow) (string, error) {
	tc, err := account.ResolveClass(action.craft.GetStateLister(), action.db, w.Output.Class)
	if err != nil {
		clog.Error("outputClass", "workflow", w.Name, "class", w.Output.Class, "err", err)
		return "", err
	}
	return tc.Class, nil
}

func (action *action) mint(w *ct.Workflow, log *ct.ReceiptCraftClaim) (*types.Receipt, error) {
	class, err := action.outputClass(w)
	if err != nil {
		return nil, err
	}
	receipt, err := account.NewTokenDB(class, 0, action.db).Mint(ct.CraftX, action.fromaddr, w.Output.Amount)
	if err != nil {
		return nil, err
	}
	log.Class, log.Amount = class, w.Output.Amount
	return receipt, nil
}

func (action *action) mintNft(w *ct.Workflow, log *ct.ReceiptCraftClaim) (*types.Receipt, error) {
	class, err := action.outputClass(w)
	if err != nil {
		return nil, err
	}
	seed := action.env.RandomSeed
	attrs := &types.NftAttributes{
		Class:   class,
		Kind:    w.Output.Kind,
		Attack:  ct.Roll(w.Output.Attack, w.Output.AttackRoll, ct.StatSeed(seed, ct.StatAttack)),
		Defense: ct.Roll(w.Output.Defense, w.Output.DefenseRoll, ct.StatSeed(seed, ct.StatDefense)),
	}
	nonce, receipt, err := account.MintNft(action.db, ct.CraftX, action.fromaddr, attrs)
	if err != nil {
		return nil, err
	}
	log.Class, log.Nonce, log.Amount, log.Attributes = class, nonce, 1, attrs
	return receipt, nil
}

//upgrade the target must still be held and still be of the target kind
func (action *action) upgrade(w *ct.Workflow, mreq *ct.MintRequest, log *ct.ReceiptCraftClaim) (*types.Receipt, error) {
	if err := action.checkTarget(w, mreq.TargetClass, mreq.TargetNonce); err != nil {
		return nil, err
	}
	prev, err := account.LoadNft(action.db, mreq.TargetClass, mreq.TargetNonce)
	if err != nil {
		return nil, err
	}
	seed := action.env.RandomSeed
	attrs := *prev
	if w.Output.Kind != "" {
		attrs.Kind = w.Output.Kind
	}
	if w.Output.Attack != 0 || w.Output.AttackRoll != 0 {
		attrs.Attack = ct.Roll(w.Output.Attack, w.Output.AttackRoll, ct.StatSeed(seed, ct.StatAttack))
	}
	if w.Output.Defense != 0 || w.Output.DefenseRoll != 0 {
		attrs.Defense = ct.Roll(w.Output.Defense, w.Output.DefenseRoll, ct.StatSeed(seed, ct.StatDefense))
	}
	if w.Output.InputDefense {
		attrs.Defense += mreq.Bonus
	}
	receipt, err := account.SaveNft(action.db, prev, &attrs)
	if err != nil {
		return nil, err
	}
	log.Class, log.Nonce, log.Attributes = attrs.Class, attrs.Nonce, &attrs
	return receipt, nil
}

func loadRequest(db dbm.KV, owner, workflow string) *ct.MintRequest {
	value, err := db.Get(requestKey(owner, workflow))
	if err != nil || value == nil {
		return nil
	}
	var mreq ct.MintRequest
	if err := types.Decode(value, &mreq); err != nil {
		panic(err)
	}
	return &mreq
}
