// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

//Config node config
type Config struct {
	Title      string         `toml:"title"`
	Log        *Log           `toml:"log"`
	BlockChain *BlockChain    `toml:"blockchain"`
	RPC        *RPC           `toml:"rpc"`
	Coin       *CoinConfig    `toml:"coin"`
	Genesis    *Genesis       `toml:"genesis"`
	Metrics    *Metrics       `toml:"metrics"`
	Indexer    *Indexer       `toml:"indexer"`
	Tokens     []*TokenConfig `toml:"token"`
	Exec       *Exec          `toml:"exec"`
}

//Log log config
type Log struct {
	Loglevel        string `toml:"loglevel" env:"WINTER_LOG_LEVEL"`
	LogConsoleLevel string `toml:"logConsoleLevel" env:"WINTER_LOG_CONSOLE_LEVEL"`
	LogFile         string `toml:"logFile" env:"WINTER_LOG_FILE"`
	MaxFileSize     uint32 `toml:"maxFileSize"`
	MaxBackups      uint32 `toml:"maxBackups"`
	MaxAge          uint32 `toml:"maxAge"`
	LocalTime       bool   `toml:"localTime"`
	Compress        bool   `toml:"compress"`
	CallerFile      bool   `toml:"callerFile"`
	CallerFunction  bool   `toml:"callerFunction"`
}

//BlockChain storage and block production config
type BlockChain struct {
	Driver         string `toml:"driver" env:"WINTER_DB_DRIVER"`
	DbPath         string `toml:"dbPath" env:"WINTER_DB_PATH"`
	DbCache        int32  `toml:"dbCache"`
	BlockInterval  int64  `toml:"blockInterval"`
	MaxTxsPerBlock int32  `toml:"maxTxsPerBlock"`
	RoundsPerEpoch int64  `toml:"roundsPerEpoch"`
	BlockCacheSize int32  `toml:"blockCacheSize"`
	MempoolSize    int32  `toml:"mempoolSize"`
	// hex secp256k1 key signing the block seeds, kept in the db when empty
	ProducerKey    string `toml:"producerKey" env:"WINTER_PRODUCER_KEY"`
}

//RPC json rpc config
type RPC struct {
	JrpcBindAddr string   `toml:"jrpcBindAddr" env:"WINTER_RPC_ADDR"`
	Whitelist    []string `toml:"whitelist" env:"WINTER_RPC_WHITELIST"`
	CorsOrigins  []string `toml:"corsOrigins"`
	EnableWS     bool     `toml:"enableWS" env:"WINTER_RPC_WS"`
}

//CoinConfig native currency
type CoinConfig struct {
	Symbol   string `toml:"symbol"`
	Decimals int32  `toml:"decimals"`
}

//Genesis genesis block
type Genesis struct {
	BlockTime   int64           `toml:"blockTime"`
	Allocations []*GenesisAlloc `toml:"alloc"`
}

//GenesisAlloc initial balance
type GenesisAlloc struct {
	Addr   string `toml:"addr" json:"addr"`
	Token  string `toml:"token" json:"token"`
	Nonce  uint64 `toml:"nonce" json:"nonce"`
	Amount int64  `toml:"amount" json:"amount"`
}

//Metrics metrics reporter
type Metrics struct {
	Enable         bool  `toml:"enable" env:"WINTER_METRICS"`
	ReportInterval int64 `toml:"reportInterval"`
}

//Indexer sqlite event index
type Indexer struct {
	Enable bool   `toml:"enable" env:"WINTER_INDEXER"`
	Path   string `toml:"path" env:"WINTER_INDEXER_PATH"`
}

//TokenConfig token class registered at genesis
type TokenConfig struct {
	Class    string   `toml:"class" json:"class"`
	Name     string   `toml:"name" json:"name"`
	Kind     string   `toml:"kind" json:"kind"`
	Decimals int32    `toml:"decimals" json:"decimals"`
	Tier     string   `toml:"tier" json:"tier"`
	Minters  []string `toml:"minters" json:"minters"`
}

//Exec executor sub configs
type Exec struct {
	Sub map[string]interface{} `toml:"sub"`
}

//InitCfg read a toml file, apply env overrides and defaults
func InitCfg(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return InitCfgString(string(data))
}

//InitCfgString parse toml text, apply env overrides and defaults
func InitCfgString(cfgstring string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(cfgstring, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	fillDefault(cfg)
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "wintergame"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.BlockChain == nil {
		cfg.BlockChain = &BlockChain{}
	}
	bc := cfg.BlockChain
	if bc.Driver == "" {
		bc.Driver = "leveldb"
	}
	if bc.DbPath == "" {
		bc.DbPath = "datadir"
	}
	if bc.BlockInterval <= 0 {
		bc.BlockInterval = 1
	}
	if bc.MaxTxsPerBlock <= 0 {
		bc.MaxTxsPerBlock = MaxTxsPerBlock
	}
	if bc.RoundsPerEpoch <= 0 {
		bc.RoundsPerEpoch = DefaultRoundsPerEpoch
	}
	if bc.BlockCacheSize <= 0 {
		bc.BlockCacheSize = 128
	}
	if bc.MempoolSize <= 0 {
		bc.MempoolSize = 10240
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPC{}
	}
	if cfg.RPC.JrpcBindAddr == "" {
		cfg.RPC.JrpcBindAddr = "localhost:8801"
	}
	if cfg.Coin == nil {
		cfg.Coin = &CoinConfig{}
	}
	if cfg.Coin.Symbol == "" {
		cfg.Coin.Symbol = DefaultCoinSymbol
	}
	if cfg.Coin.Decimals == 0 {
		cfg.Coin.Decimals = DefaultCoinDecimals
	}
	if cfg.Genesis == nil {
		cfg.Genesis = &Genesis{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.ReportInterval <= 0 {
		cfg.Metrics.ReportInterval = 60
	}
	if cfg.Indexer == nil {
		cfg.Indexer = &Indexer{}
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Exec.Sub == nil {
		cfg.Exec.Sub = make(map[string]interface{})
	}
}

//GetSubConfig json form of [exec.sub.<name>], nil when absent
func (cfg *Config) GetSubConfig(name string) []byte {
	if cfg == nil || cfg.Exec == nil {
		return nil
	}
	sub, ok := cfg.Exec.Sub[name]
	if !ok {
		return nil
	}
	data, err := json.Marshal(sub)
	if err != nil {
		tlog.Error("GetSubConfig", "name", name, "err", err)
		return nil
	}
	return data
}

//MustDecodeSubConfig decode [exec.sub.<name>] into v, keeps v when absent
func (cfg *Config) MustDecodeSubConfig(name string, v interface{}) {
	data := cfg.GetSubConfig(name)
	if data == nil {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		panic("bad sub config " + name + ": " + err.Error())
	}
}
