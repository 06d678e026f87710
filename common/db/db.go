// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db key value backends (memory, leveldb, badger) and list helpers
package db

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

//ErrNotFoundInDb key missing
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV state view used by executors, with per transaction rollback
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Begin()
	Rollback()
	Commit() error
}

//KVDB local index view used by executors and queries
type KVDB interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

//Lister read only prefix listing
type Lister interface {
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
	PrefixScan(prefix []byte) ([]KeyValue, error)
}

//KeyValue scan result
type KeyValue struct {
	Key   []byte
	Value []byte
}

//IteratorDB iterator factory
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

//DB storage backend
type DB interface {
	KVDB
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

//Batch atomic write batch
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator prefix bounded iterator, reverse walks from the last key
type Iterator interface {
	Rewind() bool
	// Seek forward: first key >= key, reverse: last key <= key
	Seek(key []byte) bool
	Next() bool
	Valid() bool
	Key() []byte
	Value() []byte
	Error() error
	Close()
}

//const backend names
const (
	GoLevelDBBackendStr  = "leveldb"
	GoBadgerDBBackendStr = "badger"
	MemDBBackendStr      = "memdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB open a backend by name
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	dbCreator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %s", backend)
	}
	return dbCreator(name, dir, cache)
}

func cloneByte(v []byte) []byte {
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

func bytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}

func hasPrefix(key, prefix []byte) bool {
	return bytes.HasPrefix(key, prefix)
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
