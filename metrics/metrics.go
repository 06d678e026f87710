// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics counters and timers of block production and tx execution
package metrics

import (
	"context"
	"time"

	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
	gometrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

//metric names
const (
	BlockExecTimer = "block.exec"
	BlockCounter   = "block.count"
	MempoolGauge   = "mempool.size"
	EventCounter   = "event.count"
)

//TxCounter executed txs of one executor, ok selects the success or failure counter
func TxCounter(execer string, ok bool) gometrics.Counter {
	name := "tx." + execer + ".fail"
	if ok {
		name = "tx." + execer + ".ok"
	}
	return gometrics.GetOrRegisterCounter(name, gometrics.DefaultRegistry)
}

//Timer timer of the default registry
func Timer(name string) gometrics.Timer {
	return gometrics.GetOrRegisterTimer(name, gometrics.DefaultRegistry)
}

//Counter counter of the default registry
func Counter(name string) gometrics.Counter {
	return gometrics.GetOrRegisterCounter(name, gometrics.DefaultRegistry)
}

//Gauge gauge of the default registry
func Gauge(name string) gometrics.Gauge {
	return gometrics.GetOrRegisterGauge(name, gometrics.DefaultRegistry)
}

//StartMetrics report the default registry to the log until ctx is done
func StartMetrics(ctx context.Context, cfg *types.Metrics) {
	if cfg == nil || !cfg.Enable {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	interval := time.Duration(cfg.ReportInterval) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				Report(gometrics.DefaultRegistry)
			}
		}
	}()
}

//Report log one line per metric of r
func Report(r gometrics.Registry) {
	r.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case gometrics.Counter:
			mlog.Info("counter", "name", name, "count", m.Count())
		case gometrics.Gauge:
			mlog.Info("gauge", "name", name, "value", m.Value())
		case gometrics.Timer:
			t := m.Snapshot()
			mlog.Info("timer", "name", name, "count", t.Count(), "mean", time.Duration(int64(t.Mean())),
				"p95", time.Duration(int64(t.Percentile(0.95))))
		}
	})
}
