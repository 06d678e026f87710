// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"sort"
	"strconv"
	"sync"
)

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB map backed db, used by tests and the memdb backend
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: make(map[string][]byte)}, nil
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	if entry, ok := db.db[string(key)]; ok {
		return cloneByte(entry), nil
	}
	return nil, ErrNotFoundInDb
}

//Set set, nil value deletes
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	if value == nil {
		delete(db.db, string(key))
		return nil
	}
	db.db[string(key)] = cloneByte(value)
	return nil
}

//SetSync same as Set
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete delete
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	delete(db.db, string(key))
	return nil
}

//DeleteSync same as Delete
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close nothing to release
func (db *GoMemDB) Close() {}

//Stats number of keys
func (db *GoMemDB) Stats() map[string]string {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return map[string]string{"database.type": "memDB", "database.keys": strconv.Itoa(len(db.db))}
}

//List list helper
func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return NewListHelper(db).List(prefix, key, count, direction), nil
}

//Iterator snapshot iterator over the prefix
func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()
	var keys []string
	for k := range db.db {
		if hasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = db.db[k]
	}
	return &memIterator{keys: keys, values: values, reverse: reverse, index: -1}
}

type memIterator struct {
	keys    []string
	values  [][]byte
	reverse bool
	index   int
}

func (it *memIterator) Rewind() bool {
	if it.reverse {
		it.index = len(it.keys) - 1
	} else {
		it.index = 0
	}
	return it.Valid()
}

func (it *memIterator) Seek(key []byte) bool {
	i := sort.SearchStrings(it.keys, string(key))
	if it.reverse {
		if i < len(it.keys) && bytes.Equal([]byte(it.keys[i]), key) {
			it.index = i
		} else {
			it.index = i - 1
		}
	} else {
		it.index = i
	}
	return it.Valid()
}

func (it *memIterator) Next() bool {
	if it.reverse {
		it.index--
	} else {
		it.index++
	}
	return it.Valid()
}

func (it *memIterator) Valid() bool {
	return it.index >= 0 && it.index < len(it.keys)
}

func (it *memIterator) Key() []byte {
	return []byte(it.keys[it.index])
}

func (it *memIterator) Value() []byte {
	return it.values[it.index]
}

func (it *memIterator) Error() error { return nil }

func (it *memIterator) Close() {}

type kv struct {
	k []byte
	v []byte
}

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

//NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size++
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, kv := range b.writes {
		if kv.v == nil {
			delete(b.db.db, string(kv.k))
		} else {
			b.db.db[string(kv.k)] = kv.v
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
