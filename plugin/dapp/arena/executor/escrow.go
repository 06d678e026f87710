// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	dbm "github.com/33cn/wintergame/common/db"
	at "github.com/33cn/wintergame/plugin/dapp/arena/types"
	"github.com/33cn/wintergame/types"
)

//escrow deposits backing the duels. Every deposit is kept twice: in the account total and in the
//share of the game it was paid for. The funds themselves sit in the arena executor address.
type escrow struct {
	db dbm.KV
}

func newEscrow(db dbm.KV) *escrow {
	return &escrow{db: db}
}

func depositKey(addr string) []byte {
	return []byte("mavl-" + at.ArenaX + "-deposit-" + addr)
}

func shareKey(gameID, addr string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-share-%s:%s", at.ArenaX, gameID, addr))
}

func (e *escrow) load(key []byte) int64 {
	value, err := e.db.Get(key)
	if err != nil || value == nil {
		return 0
	}
	var d at.Deposit
	if err := types.Decode(value, &d); err != nil {
		panic(err)
	}
	return d.Amount
}

func (e *escrow) save(key []byte, addr string, amount int64) (*types.KeyValue, error) {
	kv := &types.KeyValue{Key: key}
	if amount != 0 {
		kv.Value = types.Encode(&at.Deposit{Addr: addr, Amount: amount})
	}
	if err := e.db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return kv, nil
}

//BalanceOf escrowed total of an account over every duel
func (e *escrow) BalanceOf(addr string) int64 {
	return e.load(depositKey(addr))
}

//ShareOf escrowed amount of an account in one duel
func (e *escrow) ShareOf(gameID, addr string) int64 {
	return e.load(shareKey(gameID, addr))
}

//TotalOf escrowed shares of the participants in one duel, the pot a settlement pays out
func (e *escrow) TotalOf(gameID string, addrs ...string) int64 {
	var total int64
	for _, addr := range addrs {
		total += e.ShareOf(gameID, addr)
	}
	return total
}

//Deposit add amount to the account, additive and a no-op for zero
func (e *escrow) Deposit(gameID, addr string, amount int64) (*types.Receipt, error) {
	if amount < 0 {
		return nil, types.ErrAmount
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	if amount == 0 {
		return receipt, nil
	}
	prev := e.BalanceOf(addr)
	share := e.ShareOf(gameID, addr) + amount
	if prev+amount < prev || share < amount {
		return nil, types.ErrSupplyOverflow
	}
	kvTotal, err := e.save(depositKey(addr), addr, prev+amount)
	if err != nil {
		return nil, err
	}
	kvShare, err := e.save(shareKey(gameID, addr), addr, share)
	if err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, kvTotal, kvShare)
	log := &at.ReceiptDeposit{GameId: gameID, Addr: addr, Share: share, Prev: prev, Current: prev + amount}
	receipt.Logs = append(receipt.Logs, types.NewLog(at.TyLogArenaDeposit, log))
	return receipt, nil
}

//Settle drain the shares of the duel participants, returns the pot.
//Shares are zeroed so a second settlement of the same game pays nothing.
func (e *escrow) Settle(gameID string, addrs ...string) (int64, *types.Receipt, error) {
	receipt := &types.Receipt{Ty: types.ExecOk}
	var pot int64
	for _, addr := range addrs {
		share := e.ShareOf(gameID, addr)
		if share == 0 {
			continue
		}
		prev := e.BalanceOf(addr)
		if prev < share {
			alog.Error("Settle", "gameID", gameID, "addr", addr, "total", prev, "share", share)
			return 0, nil, types.InsufficientSupplyf("Escrow of %s is below its share", addr)
		}
		kvTotal, err := e.save(depositKey(addr), addr, prev-share)
		if err != nil {
			return 0, nil, err
		}
		kvShare, err := e.save(shareKey(gameID, addr), addr, 0)
		if err != nil {
			return 0, nil, err
		}
		receipt.KV = append(receipt.KV, kvTotal, kvShare)
		log := &at.ReceiptDeposit{GameId: gameID, Addr: addr, Share: 0, Prev: prev, Current: prev - share}
		receipt.Logs = append(receipt.Logs, types.NewLog(at.TyLogArenaDeposit, log))
		pot += share
	}
	return pot, receipt, nil
}
