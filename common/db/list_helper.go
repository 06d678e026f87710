// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	log "github.com/inconshreveable/log15"
)

//ListHelper list on top of an IteratorDB
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//PrefixScan all keys and values under prefix, ascending
func (db *ListHelper) PrefixScan(prefix []byte) (kvs []KeyValue) {
	it := db.db.Iterator(prefix, false)
	defer it.Close()
	for ok := it.Rewind(); ok; ok = it.Next() {
		if it.Error() != nil {
			listlog.Error("PrefixScan", "error", it.Error())
			return nil
		}
		kvs = append(kvs, KeyValue{Key: cloneByte(it.Key()), Value: cloneByte(it.Value())})
	}
	return kvs
}

//List values under prefix; empty key starts at the first (ASC) or last (DESC) entry,
//otherwise the scan starts after key. count <= 0 means no limit.
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	reverse := direction == ListDESC
	it := db.db.Iterator(prefix, reverse)
	defer it.Close()

	var ok bool
	if len(key) == 0 {
		ok = it.Rewind()
	} else {
		ok = it.Seek(key)
		if ok && bytes.Equal(it.Key(), key) {
			ok = it.Next()
		}
	}
	for ; ok; ok = it.Next() {
		if it.Error() != nil {
			listlog.Error("List", "error", it.Error())
			return nil
		}
		values = append(values, cloneByte(it.Value()))
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	return values
}

//PrefixCount number of keys under prefix
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, false)
	defer it.Close()
	for ok := it.Rewind(); ok; ok = it.Next() {
		count++
	}
	return count
}
