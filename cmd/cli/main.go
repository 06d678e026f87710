// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	_ "github.com/33cn/wintergame/plugin"
	_ "github.com/33cn/wintergame/system"
	"github.com/33cn/wintergame/util/cli"
)

func main() {
	addr := os.Getenv("WINTER_RPC_URL")
	if addr == "" {
		addr = "http://localhost:8801"
	}
	cli.Run(addr)
}
