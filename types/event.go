// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
)

//Event structured notification derived from a receipt log
type Event struct {
	Height    int64           `json:"height"`
	BlockTime int64           `json:"blockTime"`
	TxHash    string          `json:"txHash"`
	Index     int             `json:"index"`
	Execer    string          `json:"execer"`
	From      string          `json:"from"`
	Name      string          `json:"name"`
	Ty        int32           `json:"ty"`
	Data      json.RawMessage `json:"data"`
}

//EventSink fire and forget consumer of events, must never block execution
type EventSink interface {
	Publish(ev *Event)
}

//MultiSink fan out to several sinks
type MultiSink []EventSink

//Publish publish to every sink
func (m MultiSink) Publish(ev *Event) {
	for _, s := range m {
		if s != nil {
			s.Publish(ev)
		}
	}
}

//LogSink writes events to a log
type LogSink struct{}

//Publish log the event at debug level
func (LogSink) Publish(ev *Event) {
	tlog.Debug("event", "height", ev.Height, "name", ev.Name, "execer", ev.Execer, "data", string(ev.Data))
}
