// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
)

var (
	//ErrTokenName empty or oversized token name
	ErrTokenName = types.Validationf("Token name must be 1 to 64 characters")
	//ErrTokenTicker ticker outside 3 to 10 upper case letters or digits
	ErrTokenTicker = types.Validationf("Ticker must be 3 to 10 upper case letters or digits")
	//ErrTokenSupply supply not positive or too large
	ErrTokenSupply = types.Validationf("Invalid token supply")
	//ErrTokenDecimals decimals outside 0 to 18
	ErrTokenDecimals = types.Validationf("Invalid token decimals")
	//ErrIssueExist identifier already used by an issue
	ErrIssueExist = types.StateConflictf("Issue already exists")
	//ErrTickerTaken ticker of the native coin or of a registered class
	ErrTickerTaken = types.StateConflictf("Ticker is already registered")
	//ErrIssueNotFound no issue with this identifier
	ErrIssueNotFound = types.Validationf("Unknown issue")
	//ErrIssueStatus issue already completed or rejected
	ErrIssueStatus = types.StateConflictf("Issue is not pending")
	//ErrTokenManager caller is not a token manager
	ErrTokenManager = types.Validationf("Only token managers can decide issues")
	//ErrBurnNotIssued burn of a class not issued through the token executor
	ErrBurnNotIssued = types.Validationf("Only issued tokens can be burned")
	//ErrSelfTransfer transfer to the caller
	ErrSelfTransfer = types.Validationf("Can't transfer to yourself")
)
