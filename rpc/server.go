// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc json rpc over http and the websocket event feed of the node
package rpc

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	rpctypes "github.com/33cn/wintergame/rpc/types"
	"github.com/33cn/wintergame/types"
	"github.com/gorilla/websocket"
	log15 "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

var log = log15.New("module", "rpc")

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

// Read rewrite the read of http
func (c *HTTPConn) Read(p []byte) (n int, err error) { return c.in.Read(p) }

// Write rewrite the write of http
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

// Close rewrite the close of http
func (c *HTTPConn) Close() error { return nil }

// JSONRPCServer json rpc and websocket server of the node
type JSONRPCServer struct {
	cfg       *types.RPC
	s         *rpc.Server
	whitelist map[string]bool
	upgrader  websocket.Upgrader
	api       rpctypes.ChainAPI

	l    net.Listener
	http *http.Server

	wsDone chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// NewJSONRPCServer server over api, events may be nil when the indexer is disabled
func NewJSONRPCServer(cfg *types.Config, api rpctypes.ChainAPI, events rpctypes.EventQuerier) *JSONRPCServer {
	server := rpc.NewServer()
	err := server.RegisterName("Winter", &Winter{api: api, events: events, title: cfg.Title})
	if err != nil {
		panic(err)
	}
	s := &JSONRPCServer{
		cfg:       cfg.RPC,
		s:         server,
		whitelist: InitIPWhitelist(cfg.RPC),
		api:       api,
		wsDone:    make(chan struct{}),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 64 * 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// InitIPWhitelist remote ips allowed to call, "*" or "0.0.0.0" allows everyone
func InitIPWhitelist(cfg *types.RPC) map[string]bool {
	wl := make(map[string]bool)
	for _, ip := range cfg.Whitelist {
		if ip == "*" {
			ip = "0.0.0.0"
		}
		wl[ip] = true
	}
	return wl
}

func (s *JSONRPCServer) checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	if ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	return s.whitelist["0.0.0.0"] || s.whitelist[addr]
}

func (s *JSONRPCServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range s.cfg.CorsOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Handler http routes: json rpc on "/", event feed on "/ws" when enabled
func (s *JSONRPCServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveJSONRPC)
	if s.cfg.EnableWS {
		mux.HandleFunc("/ws", s.serveWS)
	}
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.checkIPWhitelist(remoteIP(r)) {
			log.Warn("rpc call rejected", "remote", r.RemoteAddr)
			http.Error(w, types.ErrRPCWhitelist.Error(), http.StatusForbidden)
			return
		}
		mux.ServeHTTP(w, r)
	})
	if len(s.cfg.CorsOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins: s.cfg.CorsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler(handler)
	}
	return handler
}

func (s *JSONRPCServer) serveJSONRPC(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	serverCodec := jsonrpc.NewServerCodec(&HTTPConn{in: r.Body, out: w})
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := s.s.ServeRequest(serverCodec); err != nil {
		log.Debug("Error while serving JSON request", "err", err)
	}
}

// Listen start serving on the configured address, returns the bound port
func (s *JSONRPCServer) Listen() (int, error) {
	l, err := net.Listen("tcp", s.cfg.JrpcBindAddr)
	if err != nil {
		return 0, errors.Wrap(err, "rpc listen")
	}
	s.l = l
	s.http = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.http.Serve(l); err != nil && err != http.ErrServerClosed {
			log.Error("rpc serve", "err", err)
		}
	}()
	log.Info("JSONRPCServer listen", "addr", l.Addr().String(), "ws", s.cfg.EnableWS)
	return l.Addr().(*net.TCPAddr).Port, nil
}

// Close stop the server and every websocket feed
func (s *JSONRPCServer) Close() {
	s.once.Do(func() {
		close(s.wsDone)
		if s.http != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.http.Shutdown(ctx); err != nil {
				log.Error("JSONRPCServer close", "err", err)
			}
		}
		s.wg.Wait()
	})
}
