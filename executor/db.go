// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"
	"strings"

	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
)

// StateDB block scoped write cache over the state store with per tx rollback.
// A nil value in a cache marks a deleted key.
type StateDB struct {
	db      dbm.DB
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB new state db, db may be nil for a purely in memory state
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{
		db:    db,
		cache: make(map[string][]byte),
	}
}

// Begin start a memory transaction
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback drop the writes of the current transaction
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit move the writes of the current transaction into the block cache
func (s *StateDB) Commit() error {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
	return nil
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return nilToNotFound(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return nilToNotFound(value)
	}
	return getFromDB(s.db, key)
}

func nilToNotFound(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

func getFromDB(db dbm.DB, key []byte) ([]byte, error) {
	if db == nil {
		return nil, types.ErrNotFound
	}
	value, err := db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	return value, err
}

// Set set key value, nil deletes
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// GetSetKeys keys set in the current transaction
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// KVs block cache as an ordered kv list, nil values are deletions
func (s *StateDB) KVs() []*types.KeyValue {
	return sortedKVs(s.cache)
}

// Reset forget the block cache after it has been flushed
func (s *StateDB) Reset() {
	s.cache = make(map[string][]byte)
	s.resetTx()
}

// PrefixScan merged view of the store and the caches
func (s *StateDB) PrefixScan(prefix []byte) ([]dbm.KeyValue, error) {
	return dbm.NewListHelper(s).PrefixScan(prefix), nil
}

// List merged view of the store and the caches
func (s *StateDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return dbm.NewListHelper(s).List(prefix, key, count, direction), nil
}

// Iterator snapshot iterator merging the store and the caches
func (s *StateDB) Iterator(prefix []byte, reverse bool) dbm.Iterator {
	if s.intx {
		return newMergedIterator(s.db, prefix, reverse, s.cache, s.txcache)
	}
	return newMergedIterator(s.db, prefix, reverse, s.cache)
}

func newMergedIterator(db dbm.DB, prefix []byte, reverse bool, layers ...map[string][]byte) dbm.Iterator {
	merged, _ := dbm.NewGoMemDB("merged", "", 0)
	if db != nil {
		for _, kv := range dbm.NewListHelper(db).PrefixScan(prefix) {
			_ = merged.Set(kv.Key, kv.Value)
		}
	}
	for _, layer := range layers {
		for k, v := range layer {
			if !strings.HasPrefix(k, string(prefix)) {
				continue
			}
			// nil deletes
			_ = merged.Set([]byte(k), v)
		}
	}
	return merged.Iterator(prefix, reverse)
}

func sortedKVs(cache map[string][]byte) []*types.KeyValue {
	keys := make([]string, 0, len(cache))
	for k := range cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kvs := make([]*types.KeyValue, 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, &types.KeyValue{Key: []byte(k), Value: cache[k]})
	}
	return kvs
}

// LocalDB local index view, writes are cached until the block is stored
type LocalDB struct {
	db    dbm.DB
	cache map[string][]byte
}

// NewLocalDB new local db
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{db: db, cache: make(map[string][]byte)}
}

// Get get value from local db
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	if value, ok := l.cache[string(key)]; ok {
		return nilToNotFound(value)
	}
	return getFromDB(l.db, key)
}

// Set set key value to local db
func (l *LocalDB) Set(key []byte, value []byte) error {
	l.cache[string(key)] = value
	return nil
}

// List merged view of the store and the cache
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := dbm.NewListHelper(l).List(prefix, key, count, direction)
	if values == nil {
		return nil, types.ErrNotFound
	}
	return values, nil
}

// Iterator snapshot iterator merging the store and the cache
func (l *LocalDB) Iterator(prefix []byte, reverse bool) dbm.Iterator {
	return newMergedIterator(l.db, prefix, reverse, l.cache)
}

// KVs cached writes
func (l *LocalDB) KVs() []*types.KeyValue {
	return sortedKVs(l.cache)
}

// Reset forget cached writes
func (l *LocalDB) Reset() {
	l.cache = make(map[string][]byte)
}
