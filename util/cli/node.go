// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli RunNode 加载各个模块，组合成节点程序:
// 存储, 执行器, 出块, 事件索引, rpc.
// 执行器以插件形式注册, 由调用方通过 import 引入.
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/33cn/wintergame/blockchain"
	clog "github.com/33cn/wintergame/common/log"
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/common/version"
	"github.com/33cn/wintergame/indexer"
	"github.com/33cn/wintergame/metrics"
	"github.com/33cn/wintergame/pluginmgr"
	"github.com/33cn/wintergame/rpc"
	rpctypes "github.com/33cn/wintergame/rpc/types"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var (
	configPath = flag.String("f", "", "configfile")
	datadir    = flag.String("datadir", "", "data dir of the node, include logs, datas and the event index")
	versionCmd = flag.Bool("v", false, "version")
)

//RunNode : run the node until SIGINT or SIGTERM
func RunNode(name string) {
	flag.Parse()
	if *versionCmd {
		fmt.Println(version.GetVersion())
		return
	}
	if *configPath == "" {
		if name == "" {
			*configPath = "wintergame.toml"
		} else {
			*configPath = name + ".toml"
		}
	}
	cfg, err := types.InitCfg(*configPath)
	if err != nil {
		panic(err)
	}
	if *datadir != "" {
		ResetDatadir(cfg, *datadir)
	}
	clog.SetFileLog(cfg.Log)
	log.Info(cfg.Title + "-app:" + version.GetAppVersion() + " node:" + version.GetVersion())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		log.Error("RunNode", "err", err)
		os.Exit(1)
	}
}

//ResetDatadir relative paths of cfg are moved under datadir
func ResetDatadir(cfg *types.Config, datadir string) {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(datadir, p)
	}
	cfg.BlockChain.DbPath = join(cfg.BlockChain.DbPath)
	cfg.Log.LogFile = join(cfg.Log.LogFile)
	cfg.Indexer.Path = join(cfg.Indexer.Path)
}

func run(ctx context.Context, cfg *types.Config) error {
	log.Info("loading execs module")
	pluginmgr.InitExec(cfg)

	log.Info("loading blockchain module", "driver", cfg.BlockChain.Driver, "path", cfg.BlockChain.DbPath)
	db, err := dbm.NewDB("wintergame", cfg.BlockChain.Driver, cfg.BlockChain.DbPath, int(cfg.BlockChain.DbCache))
	if err != nil {
		return err
	}
	defer db.Close()
	chain, err := blockchain.New(cfg, db)
	if err != nil {
		return err
	}

	var events rpctypes.EventQuerier
	if cfg.Indexer.Enable {
		log.Info("loading indexer module", "path", cfg.Indexer.Path)
		idx, err := indexer.Open(cfg.Indexer.Path)
		if err != nil {
			return err
		}
		defer idx.Close()
		chain.SetEventSink(types.MultiSink{types.LogSink{}, idx})
		events = idx
	}

	log.Info("loading rpc module")
	rpcapi := rpc.NewJSONRPCServer(cfg, chain, events)
	if _, err := rpcapi.Listen(); err != nil {
		return err
	}

	metrics.StartMetrics(ctx, cfg.Metrics)
	go watching(ctx)
	chain.Start(ctx)

	<-ctx.Done()
	log.Info("begin close rpc module")
	rpcapi.Close()
	log.Info("begin close blockchain module")
	chain.Close()
	return nil
}

func watching(ctx context.Context) {
	t := time.NewTicker(10 * time.Second)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			log.Debug("info:", "NumGoroutine:", runtime.NumGoroutine(), "Mem:", m.Sys/(1024*1024), "HeapAlloc:", m.HeapAlloc/(1024*1024))
		}
	}
}
