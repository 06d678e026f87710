// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/33cn/wintergame/types"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

func TestTxCounter(t *testing.T) {
	TxCounter("metricstest", true).Inc(2)
	TxCounter("metricstest", false).Inc(1)
	assert.Equal(t, int64(2), TxCounter("metricstest", true).Count())
	assert.Equal(t, int64(1), TxCounter("metricstest", false).Count())
	assert.NotNil(t, gometrics.DefaultRegistry.Get("tx.metricstest.ok"))
}

func TestReport(t *testing.T) {
	r := gometrics.NewRegistry()
	gometrics.GetOrRegisterCounter("c", r).Inc(1)
	gometrics.GetOrRegisterGauge("g", r).Update(3)
	gometrics.GetOrRegisterTimer("t", r).Update(time.Millisecond)
	assert.NotPanics(t, func() { Report(r) })
}

func TestStartMetrics(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartMetrics(ctx, nil)
	StartMetrics(ctx, &types.Metrics{Enable: true, ReportInterval: 1})
	Timer(BlockExecTimer).Update(time.Millisecond)
	assert.Equal(t, int64(1), Timer(BlockExecTimer).Count())
}
