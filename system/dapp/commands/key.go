// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/common/address"
	"github.com/33cn/wintergame/common/crypto"
	commandtypes "github.com/33cn/wintergame/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// KeyCmd local key management, keys never reach the node
func KeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Generate keys and derive addresses",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GenKeyCmd(),
		KeyAddrCmd(),
		ExecAddrCmd(),
	)
	return cmd
}

// GenKeyCmd new secp256k1 key
func GenKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen",
		Short: "Generate a new private key",
		Run: func(cmd *cobra.Command, args []string) {
			priv, err := crypto.GenKey()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			printKey(priv)
		},
	}
}

// KeyAddrCmd address of --key or WINTER_KEY
func KeyAddrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addr",
		Short: "Show the address of the signing key",
		Run: func(cmd *cobra.Command, args []string) {
			priv, err := commandtypes.LoadKey(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			printKey(priv)
		},
	}
}

// ExecAddrCmd escrow address of an executor
func ExecAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec_addr",
		Short: "Address holding the escrow of an executor",
		Run: func(cmd *cobra.Command, args []string) {
			execer, _ := cmd.Flags().GetString("exec")
			fmt.Println(address.ExecAddress(execer))
		},
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	return cmd
}

func printKey(priv crypto.PrivKey) {
	pub := priv.PubKey()
	res := commandtypes.KeyResult{
		Privkey: common.ToHex(priv.Bytes()),
		Pubkey:  common.ToHex(pub.Bytes()),
		Addr:    address.PubKeyToAddress(pub.Bytes()).String(),
	}
	data, err := json.MarshalIndent(res, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}
