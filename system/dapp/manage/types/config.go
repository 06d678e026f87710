// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strconv"

	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
)

//LoadConfigItem config item stored by manage, ErrNotFound when never set
func LoadConfigItem(db dbm.KV, key string) (*types.ConfigItem, error) {
	value, err := db.Get([]byte(types.ManageKey(key)))
	if err != nil {
		return nil, types.ErrNotFound
	}
	var item types.ConfigItem
	if err := types.Decode(value, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

//GetConfValue values of a config item, empty when never set
func GetConfValue(db dbm.KV, key string) []string {
	item, err := LoadConfigItem(db, key)
	if err != nil {
		return nil
	}
	return item.Value
}

//IsConfValue value is listed in the config item
func IsConfValue(db dbm.KV, key, value string) bool {
	for _, v := range GetConfValue(db, key) {
		if v == value {
			return true
		}
	}
	return false
}

//GetConfInt64 last value of an integer config item, def when unset or malformed
func GetConfInt64(db dbm.KV, key string, def int64) int64 {
	values := GetConfValue(db, key)
	if len(values) == 0 {
		return def
	}
	n, err := strconv.ParseInt(values[len(values)-1], 10, 64)
	if err != nil {
		return def
	}
	return n
}
