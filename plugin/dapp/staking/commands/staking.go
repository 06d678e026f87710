// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands cli of the staking dapp
package commands

import (
	"fmt"
	"os"

	st "github.com/33cn/wintergame/plugin/dapp/staking/types"
	commandtypes "github.com/33cn/wintergame/system/dapp/commands/types"
	"github.com/33cn/wintergame/types"
	"github.com/spf13/cobra"
)

// StakingCmd staking command tree
func StakingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staking",
		Short: "Stake tokens into pools and claim the rewards",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		StakeCmd(),
		ClaimCmd(),
		BeneficiaryCmd(),
		ShowStakeCmd(),
		PoolsCmd(),
		LeaderboardCmd(),
		ClaimsCmd(),
	)
	return cmd
}

func addPoolFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("pool", "o", "", "pool name")
	cmd.MarkFlagRequired("pool")
}

// StakeCmd stake the attached payments
func StakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake",
		Short: "Stake every --pay payment into a pool",
		Run:   stake,
	}
	addPoolFlag(cmd)
	commandtypes.AddPayFlag(cmd)
	cmd.MarkFlagRequired("pay")
	return cmd
}

func stake(cmd *cobra.Command, args []string) {
	pool, _ := cmd.Flags().GetString("pool")
	payments, err := commandtypes.GetPayments(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &st.StakingAction{Ty: st.StakingActionStake, Stake: &st.StakeDeposit{Pool: pool}}
	commandtypes.SendAction(cmd, st.StakingX, action, payments...)
}

// ClaimCmd claim the reward of a pool
func ClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the accrued reward of a pool",
		Run:   claim,
	}
	addPoolFlag(cmd)
	return cmd
}

func claim(cmd *cobra.Command, args []string) {
	pool, _ := cmd.Flags().GetString("pool")
	action := &st.StakingAction{Ty: st.StakingActionClaim, Claim: &st.StakeClaim{Pool: pool}}
	commandtypes.SendAction(cmd, st.StakingX, action)
}

// BeneficiaryCmd route rewards to another address
func BeneficiaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beneficiary",
		Short: "Set the address receiving the rewards",
		Run:   setBeneficiary,
	}
	cmd.Flags().StringP("addr", "a", "", "beneficiary address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func setBeneficiary(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	action := &st.StakingAction{
		Ty:             st.StakingActionSetBeneficiary,
		SetBeneficiary: &st.StakeBeneficiary{Address: addr},
	}
	commandtypes.SendAction(cmd, st.StakingX, action)
}

// ShowStakeCmd stakes of an address
func ShowStakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stakes and the pending reward of an address",
		Run:   showStake,
	}
	addPoolFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "owner address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func showStake(cmd *cobra.Command, args []string) {
	pool, _ := cmd.Flags().GetString("pool")
	addr, _ := cmd.Flags().GetString("addr")
	var res st.ReplyStake
	commandtypes.Query(cmd, st.StakingX, st.FuncNameGetStake, &st.ReqStake{Pool: pool, Owner: addr}, &res)
}

// PoolsCmd configured pools
func PoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "List the staking pools",
		Run: func(cmd *cobra.Command, args []string) {
			var res st.ReplyPools
			commandtypes.Query(cmd, st.StakingX, st.FuncNameGetPools, &types.ReqNil{}, &res)
		},
	}
}

// LeaderboardCmd top stakers
func LeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Top stakers of a class in a pool",
		Run:   leaderboard,
	}
	addPoolFlag(cmd)
	cmd.Flags().StringP("class", "t", "", "staked token class")
	cmd.MarkFlagRequired("class")
	cmd.Flags().Int32P("count", "n", 0, "entries")
	return cmd
}

func leaderboard(cmd *cobra.Command, args []string) {
	pool, _ := cmd.Flags().GetString("pool")
	class, _ := cmd.Flags().GetString("class")
	count, _ := cmd.Flags().GetInt32("count")
	var res st.ReplyLeaderboard
	commandtypes.Query(cmd, st.StakingX, st.FuncNameLeaderboard, &st.ReqLeaderboard{Pool: pool, Class: class, Count: count}, &res)
}

// ClaimsCmd reward history
func ClaimsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claims",
		Short: "Reward history of an address",
		Run:   listClaims,
	}
	cmd.Flags().StringP("addr", "a", "", "owner address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int32P("count", "n", 0, "page size")
	cmd.Flags().Int32P("direction", "d", 0, "0 newest first, 1 oldest first")
	cmd.Flags().Int64P("index", "i", 0, "continue after this index")
	return cmd
}

func listClaims(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")
	var res st.ReplyClaims
	commandtypes.Query(cmd, st.StakingX, st.FuncNameListClaims, &st.ReqClaims{Owner: addr, Count: count, Direction: direction, Index: index}, &res)
}
