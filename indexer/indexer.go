// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indexer keeps a sqlite copy of the chain events so that clients can
// filter them by execer, name, sender, tx or height range.
// The chain never waits on it: events are queued and dropped when the writer falls behind.
package indexer

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	rpctypes "github.com/33cn/wintergame/rpc/types"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	_ "modernc.org/sqlite" //register sqlite driver
)

var ilog = log.New("module", "indexer")

const (
	defaultCount = 100
	maxCount     = 1000
	queueSize    = 8192
	commitEvery  = 500
	commitWait   = time.Second
)

type request struct {
	ev    *types.Event
	flush chan struct{}
}

//Indexer sqlite event store fed by the chain
type Indexer struct {
	db *sql.DB
	ch chan request

	wg      sync.WaitGroup
	once    sync.Once
	closed  atomic.Bool
	dropped int64
}

//Open open or create the index at path, ":memory:" keeps it in memory
func Open(path string) (*Indexer, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "mkdir index dir")
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// one writer, and an in-memory database only lives on one connection
	db.SetMaxOpenConns(1)
	idx := &Indexer{db: db, ch: make(chan request, queueSize)}
	if err := idx.initPragmas(path); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := idx.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	idx.wg.Add(1)
	go idx.loop()
	ilog.Info("Open", "path", path)
	return idx, nil
}

func (idx *Indexer) initPragmas(path string) error {
	pragmas := []string{
		`PRAGMA synchronous=NORMAL;`,
		`PRAGMA busy_timeout=5000;`,
	}
	if path != ":memory:" {
		pragmas = append([]string{`PRAGMA journal_mode=WAL;`}, pragmas...)
	}
	for _, p := range pragmas {
		if _, err := idx.db.Exec(p); err != nil {
			return errors.Wrapf(err, "pragma %s", p)
		}
	}
	return nil
}

func (idx *Indexer) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			height INTEGER NOT NULL,
			block_time INTEGER NOT NULL,
			tx_hash TEXT NOT NULL,
			idx INTEGER NOT NULL,
			execer TEXT NOT NULL,
			from_addr TEXT NOT NULL,
			name TEXT NOT NULL,
			ty INTEGER NOT NULL,
			data TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS events_height ON events(height);`,
		`CREATE INDEX IF NOT EXISTS events_execer_name ON events(execer, name);`,
		`CREATE INDEX IF NOT EXISTS events_from ON events(from_addr);`,
		`CREATE INDEX IF NOT EXISTS events_tx ON events(tx_hash);`,
	}
	for _, s := range stmts {
		if _, err := idx.db.Exec(s); err != nil {
			return errors.Wrap(err, "init schema")
		}
	}
	return nil
}

//Publish queue ev for writing, never blocks
func (idx *Indexer) Publish(ev *types.Event) {
	if idx == nil || ev == nil || idx.closed.Load() {
		return
	}
	select {
	case idx.ch <- request{ev: ev}:
	default:
		if n := atomic.AddInt64(&idx.dropped, 1); n%1000 == 1 {
			ilog.Warn("Publish queue full, event dropped", "dropped", n, "height", ev.Height)
		}
	}
}

//Dropped events lost because the queue was full
func (idx *Indexer) Dropped() int64 {
	return atomic.LoadInt64(&idx.dropped)
}

//Flush wait until every queued event is committed
func (idx *Indexer) Flush() {
	if idx == nil || idx.closed.Load() {
		return
	}
	done := make(chan struct{})
	idx.ch <- request{flush: done}
	<-done
}

//Close commit queued events and close the database
func (idx *Indexer) Close() error {
	var err error
	idx.once.Do(func() {
		idx.closed.Store(true)
		close(idx.ch)
		idx.wg.Wait()
		err = idx.db.Close()
	})
	return err
}

func (idx *Indexer) loop() {
	defer idx.wg.Done()
	ctx := context.Background()
	insert, err := idx.db.Prepare(`INSERT INTO events(height,block_time,tx_hash,idx,execer,from_addr,name,ty,data) VALUES(?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		ilog.Error("loop prepare", "err", err)
		for r := range idx.ch {
			if r.flush != nil {
				close(r.flush)
			}
		}
		return
	}
	defer insert.Close()

	var (
		tx         *sql.Tx
		pending    int
		lastCommit = time.Now()
	)
	commit := func() {
		if tx == nil {
			return
		}
		if err := tx.Commit(); err != nil {
			ilog.Error("commit", "err", err)
		}
		tx = nil
		pending = 0
		lastCommit = time.Now()
	}
	defer commit()

	ticker := time.NewTicker(commitWait)
	defer ticker.Stop()
	for {
		select {
		case r, ok := <-idx.ch:
			if !ok {
				return
			}
			if r.flush != nil {
				commit()
				close(r.flush)
				continue
			}
			if tx == nil {
				tx, err = idx.db.BeginTx(ctx, nil)
				if err != nil {
					ilog.Error("begin", "err", err)
					tx = nil
					continue
				}
			}
			ev := r.ev
			data := string(ev.Data)
			if data == "" {
				data = "null"
			}
			_, err := tx.Stmt(insert).Exec(ev.Height, ev.BlockTime, ev.TxHash, ev.Index, ev.Execer, ev.From, ev.Name, ev.Ty, data)
			if err != nil {
				ilog.Error("insert", "height", ev.Height, "name", ev.Name, "err", err)
				_ = tx.Rollback()
				tx = nil
				pending = 0
				continue
			}
			pending++
			if pending >= commitEvery {
				commit()
			}
		case <-ticker.C:
			if time.Since(lastCommit) >= commitWait {
				commit()
			}
		}
	}
}

//QueryEvents committed events matching req in (height, index) order
func (idx *Indexer) QueryEvents(req *rpctypes.ReqEvents) ([]*types.Event, error) {
	if req == nil {
		req = &rpctypes.ReqEvents{}
	}
	if req.HeightFrom < 0 || req.HeightTo < 0 || (req.HeightTo > 0 && req.HeightTo < req.HeightFrom) {
		return nil, types.ErrInvalidParam
	}
	var (
		where []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		where = append(where, cond)
		args = append(args, arg)
	}
	if req.Execer != "" {
		add("execer = ?", req.Execer)
	}
	if req.Name != "" {
		add("name = ?", req.Name)
	}
	if req.From != "" {
		add("from_addr = ?", req.From)
	}
	if req.TxHash != "" {
		add("tx_hash = ?", req.TxHash)
	}
	if req.HeightFrom > 0 {
		add("height >= ?", req.HeightFrom)
	}
	if req.HeightTo > 0 {
		add("height <= ?", req.HeightTo)
	}
	count := int(req.Count)
	if count <= 0 {
		count = defaultCount
	}
	if count > maxCount {
		count = maxCount
	}
	q := `SELECT height,block_time,tx_hash,idx,execer,from_addr,name,ty,data FROM events`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id ASC LIMIT ?"
	args = append(args, count)

	rows, err := idx.db.Query(q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query events")
	}
	defer rows.Close()
	var events []*types.Event
	for rows.Next() {
		var (
			ev   types.Event
			data string
		)
		if err := rows.Scan(&ev.Height, &ev.BlockTime, &ev.TxHash, &ev.Index, &ev.Execer, &ev.From, &ev.Name, &ev.Ty, &data); err != nil {
			return nil, errors.Wrap(err, "scan event")
		}
		ev.Data = []byte(data)
		events = append(events, &ev)
	}
	return events, rows.Err()
}
