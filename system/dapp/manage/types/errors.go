// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
)

var (
	// ErrBadConfigKey error bad config key
	ErrBadConfigKey = types.NewError(types.ErrValidation, "ErrBadConfigKey")
	// ErrBadConfigOp error bad config op
	ErrBadConfigOp = types.NewError(types.ErrValidation, "ErrBadConfigOp")
	// ErrBadConfigValue error bad config value
	ErrBadConfigValue = types.NewError(types.ErrValidation, "ErrBadConfigValue")
)
