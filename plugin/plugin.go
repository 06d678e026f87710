// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin registers every game dapp
package plugin

import (
	_ "github.com/33cn/wintergame/plugin/dapp/arena"   // arena
	_ "github.com/33cn/wintergame/plugin/dapp/craft"   // craft
	_ "github.com/33cn/wintergame/plugin/dapp/staking" // staking
	_ "github.com/33cn/wintergame/plugin/dapp/token"   // token
)
