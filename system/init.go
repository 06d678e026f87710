// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system registers the system dapps
package system

import (
	_ "github.com/33cn/wintergame/system/dapp/coins"  // coins
	_ "github.com/33cn/wintergame/system/dapp/manage" // manage
)
