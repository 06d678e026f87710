// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB badger backend
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB open <dir>/<name>.db
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(path.Join(dir, name+".db"))
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, errors.Wrap(err, "badger open")
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, errors.Wrap(err, "badger get")
	}
	return val, nil
}

//Set set, nil value deletes
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	if value == nil {
		return db.Delete(key)
	}
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
		return errors.Wrap(err, "badger set")
	}
	return nil
}

//SetSync badger syncs according to its options
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete delete
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
		return errors.Wrap(err, "badger delete")
	}
	return nil
}

//DeleteSync same as Delete
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close close
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats lsm and value log sizes
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"database.type": "badger",
		"lsm.size":      formatInt(lsm),
		"vlog.size":     formatInt(vlog),
	}
}

//List list helper
func (db *GoBadgerDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return NewListHelper(db).List(prefix, key, count, direction), nil
}

//Iterator prefix iterator inside a read only transaction
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	return &goBadgerIt{txn: txn, it: txn.NewIterator(opts), prefix: cloneByte(prefix), reverse: reverse}
}

type goBadgerIt struct {
	txn     *badger.Txn
	it      *badger.Iterator
	prefix  []byte
	reverse bool
	err     error
}

func (it *goBadgerIt) Rewind() bool {
	if !it.reverse {
		it.it.Seek(it.prefix)
		return it.Valid()
	}
	end := bytesPrefix(it.prefix)
	if end == nil {
		it.it.Rewind()
		return it.Valid()
	}
	it.it.Seek(end)
	if it.it.Valid() && bytes.Equal(it.it.Item().Key(), end) {
		it.it.Next()
	}
	return it.Valid()
}

func (it *goBadgerIt) Seek(key []byte) bool {
	it.it.Seek(key)
	return it.Valid()
}

func (it *goBadgerIt) Next() bool {
	it.it.Next()
	return it.Valid()
}

func (it *goBadgerIt) Valid() bool {
	return it.it.ValidForPrefix(it.prefix)
}

func (it *goBadgerIt) Key() []byte {
	return it.it.Item().Key()
}

func (it *goBadgerIt) Value() []byte {
	value, err := it.it.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *goBadgerIt) Error() error {
	return it.err
}

func (it *goBadgerIt) Close() {
	it.it.Close()
	it.txn.Discard()
}

//NewBatch writes are applied in one update transaction
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), cloneByte(value)})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), nil})
	mBatch.size++
}

func (mBatch *goBadgerDBBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, w := range mBatch.writes {
			var err error
			if w.v == nil {
				err = txn.Delete(w.k)
			} else {
				err = txn.Set(w.k, w.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
		return errors.Wrap(err, "badger batch write")
	}
	return nil
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
	mBatch.size = 0
}
