// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"net/http"
	"time"

	"github.com/33cn/wintergame/types"
	"github.com/gorilla/websocket"
)

const (
	wsBuffer     = 256
	wsWriteWait  = 5 * time.Second
	wsPingPeriod = 30 * time.Second
)

//事件订阅: /ws?execer=arena&name=LogGameFinish, 参数为空表示全部
type wsFilter struct {
	execer string
	name   string
	from   string
}

func (f *wsFilter) match(ev *types.Event) bool {
	if f.execer != "" && f.execer != ev.Execer {
		return false
	}
	if f.name != "" && f.name != ev.Name {
		return false
	}
	if f.from != "" && f.from != ev.From {
		return false
	}
	return true
}

func (s *JSONRPCServer) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug("ws upgrade", "err", err)
		return
	}
	q := r.URL.Query()
	filter := &wsFilter{execer: q.Get("execer"), name: q.Get("name"), from: q.Get("from")}
	events, cancel := s.api.Subscribe(wsBuffer)
	s.wg.Add(1)
	defer s.wg.Done()
	defer cancel()
	defer conn.Close()
	log.Debug("ws subscribe", "remote", r.RemoteAddr, "execer", filter.execer, "name", filter.name)

	// reader only detects the close of the peer
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-s.wsDone:
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"), time.Now().Add(time.Second))
			return
		case <-closed:
			return
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !filter.match(ev) {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				log.Debug("ws write", "err", err)
				return
			}
		}
	}
}
