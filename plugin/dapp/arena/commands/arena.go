// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands cli of the arena dapp
package commands

import (
	"fmt"
	"os"

	at "github.com/33cn/wintergame/plugin/dapp/arena/types"
	commandtypes "github.com/33cn/wintergame/system/dapp/commands/types"
	"github.com/33cn/wintergame/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ArenaCmd arena command tree
func ArenaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Duel games between combat units",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateGameCmd(),
		JoinGameCmd(),
		StartFightCmd(),
		ShowGameCmd(),
		ListGamesCmd(),
		ShowDepositCmd(),
	)
	return cmd
}

// CreateGameCmd open a game
func CreateGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a game, escrows the entrance fee and the fielded unit",
		Run:   createGame,
	}
	cmd.Flags().StringP("id", "g", "", "game id, a new uuid when empty")
	cmd.Flags().StringP("fee", "f", "", "entrance fee in coins")
	cmd.MarkFlagRequired("fee")
	addUnitFlags(cmd)
	cmd.Flags().StringP("coin", "c", types.DefaultCoinSymbol, "native coin symbol")
	return cmd
}

func addUnitFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("class", "u", "", "unit nft class")
	cmd.MarkFlagRequired("class")
	cmd.Flags().Uint64P("nonce", "n", 0, "unit nft nonce")
	cmd.MarkFlagRequired("nonce")
}

func createGame(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	class, _ := cmd.Flags().GetString("class")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	coin, _ := cmd.Flags().GetString("coin")
	fee, err := commandtypes.GetAmountValue(cmd, "fee", types.DefaultCoinDecimals)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if id == "" {
		id = uuid.New().String()
		fmt.Fprintln(os.Stderr, "game id:", id)
	}
	action := &at.ArenaAction{
		Ty:         at.ArenaActionCreateGame,
		CreateGame: &at.ArenaCreate{GameId: id, UnitClass: class, UnitNonce: nonce, EntranceFee: fee},
	}
	commandtypes.SendAction(cmd, at.ArenaX, action,
		&types.Payment{Token: coin, Amount: fee},
		&types.Payment{Token: class, Nonce: nonce, Amount: 1})
}

// JoinGameCmd join an open game
func JoinGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join an open game, escrows the entrance fee",
		Run:   joinGame,
	}
	addGameIDFlag(cmd)
	addUnitFlags(cmd)
	cmd.Flags().StringP("fee", "f", "", "entrance fee in coins")
	cmd.MarkFlagRequired("fee")
	cmd.Flags().StringP("coin", "c", types.DefaultCoinSymbol, "native coin symbol")
	return cmd
}

func addGameIDFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("id", "g", "", "game id")
	cmd.MarkFlagRequired("id")
}

func joinGame(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	class, _ := cmd.Flags().GetString("class")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	coin, _ := cmd.Flags().GetString("coin")
	fee, err := commandtypes.GetAmountValue(cmd, "fee", types.DefaultCoinDecimals)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &at.ArenaAction{
		Ty:       at.ArenaActionJoinGame,
		JoinGame: &at.ArenaJoin{GameId: id, UnitClass: class, UnitNonce: nonce},
	}
	commandtypes.SendAction(cmd, at.ArenaX, action, &types.Payment{Token: coin, Amount: fee})
}

// StartFightCmd resolve a staged game
func StartFightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fight",
		Short: "Resolve a staged game",
		Run:   startFight,
	}
	addGameIDFlag(cmd)
	return cmd
}

func startFight(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	action := &at.ArenaAction{Ty: at.ArenaActionStartFight, StartFight: &at.ArenaFight{GameId: id}}
	commandtypes.SendAction(cmd, at.ArenaX, action)
}

// ShowGameCmd game by id
func ShowGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Show a game",
		Run:   showGame,
	}
	addGameIDFlag(cmd)
	return cmd
}

func showGame(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	var res at.Game
	commandtypes.Query(cmd, at.ArenaX, at.FuncNameGetGame, &at.ReqGame{GameId: id}, &res)
}

// ListGamesCmd games by status
func ListGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by status (1 open, 2 staged, 3 resolved)",
		Run:   listGames,
	}
	cmd.Flags().Int32P("status", "s", at.GameStatusOpen, "game status")
	cmd.Flags().StringP("addr", "a", "", "only games of this address")
	cmd.Flags().Int32P("count", "n", 0, "page size")
	cmd.Flags().Int32P("direction", "d", 0, "0 newest first, 1 oldest first")
	cmd.Flags().Int64P("index", "i", 0, "continue after this index")
	return cmd
}

func listGames(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetInt32("status")
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")
	req := &at.ReqGameList{Status: status, Addr: addr, Count: count, Direction: direction, Index: index}
	var res at.ReplyGameList
	commandtypes.Query(cmd, at.ArenaX, at.FuncNameListGames, req, &res)
}

// ShowDepositCmd escrowed total of an address
func ShowDepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Show the escrowed deposit of an address",
		Run:   showDeposit,
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func showDeposit(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	var res at.Deposit
	commandtypes.Query(cmd, at.ArenaX, at.FuncNameGetDeposit, &types.ReqString{Data: addr}, &res)
}
