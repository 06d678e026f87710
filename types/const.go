// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//amount units
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e17
)

//receipt types
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

//system log types, dapp log types start at 100
const (
	TyLogErr           = 1
	TyLogTransfer      = 2
	TyLogGenesis       = 3
	TyLogMint          = 4
	TyLogBurn          = 5
	TyLogPaymentIntake = 6
	TyLogTokenClass    = 7
	TyLogNftAttributes = 8
	TyLogModifyConfig  = 9
)

//executor names
const (
	CoinsX  = "coins"
	ManageX = "manage"
	TokenX  = "token"
	ArenaX  = "arena"
	StakeX  = "staking"
	CraftX  = "craft"
)

//token kinds
const (
	KindFungible    = int32(0)
	KindNonFungible = int32(1)
)

//MaxTxsPerBlock default block capacity
const MaxTxsPerBlock = 1000

//DefaultRoundsPerEpoch default epoch length in rounds
const DefaultRoundsPerEpoch = 2400

//DefaultCoinSymbol native currency class
const DefaultCoinSymbol = "FROST"

//DefaultCoinDecimals decimals of the native currency, types.Coin base units per coin
const DefaultCoinDecimals = 8
