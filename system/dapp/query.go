// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"encoding/json"
	"reflect"

	"github.com/33cn/wintergame/types"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
)

func (d *DriverBase) queryMethod(funcname string) (reflect.Method, error) {
	method, ok := d.funcmap["Query_"+funcname]
	if !ok {
		blog.Error(funcname+" funcname not find", "func", funcname)
		return method, types.ErrQueryNotSupport
	}
	ty := method.Type
	if ty.NumIn() != 2 {
		blog.Error(funcname+" err num in param", "num", ty.NumIn())
		return method, types.ErrQueryNotSupport
	}
	if ty.In(1).Kind() != reflect.Ptr {
		blog.Error(funcname + "  param is not pointer")
		return method, types.ErrQueryNotSupport
	}
	return method, nil
}

// NewQueryParam empty param message of a query
func (d *DriverBase) NewQueryParam(funcname string) (types.Message, error) {
	method, err := d.queryMethod(funcname)
	if err != nil {
		return nil, err
	}
	in, ok := reflect.New(method.Type.In(1).Elem()).Interface().(proto.Message)
	if !ok {
		blog.Error(funcname + " in param is not proto.Message")
		return nil, types.ErrQueryNotSupport
	}
	return in, nil
}

// Query defines query function, params is the encoded param message
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	in, err := d.NewQueryParam(funcname)
	if err != nil {
		return nil, err
	}
	if err := types.Decode(params, in); err != nil {
		return nil, types.ErrDecode
	}
	return d.callQuery(funcname, in)
}

// QueryJSON query with the json form of the param message
func (d *DriverBase) QueryJSON(funcname string, params json.RawMessage) (types.Message, error) {
	in, err := d.NewQueryParam(funcname)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, in); err != nil {
			return nil, errors.Wrapf(types.ErrInvalidParam, "%s: %v", funcname, err)
		}
	}
	return d.callQuery(funcname, in)
}

func (d *DriverBase) callQuery(funcname string, in types.Message) (reply types.Message, err error) {
	method, err := d.queryMethod(funcname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call query error", "func", funcname, "info", r)
			reply = nil
			err = types.ErrQueryNotSupport
		}
	}()
	valueret := method.Func.Call([]reflect.Value{d.childValue, reflect.ValueOf(in)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	if r2 := valueret[1].Interface(); r2 != nil {
		if r, ok := r2.(error); ok {
			return nil, r
		}
		return nil, types.ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	if r1 == nil {
		return nil, types.ErrNotFound
	}
	if r, ok := r1.(types.Message); ok {
		return r, nil
	}
	return nil, types.ErrMethodReturnType
}

// ListQuery names of the queries of a driver
func ListQuery(d Driver) []string {
	var names []string
	for name := range d.GetFuncMap() {
		if len(name) > len("Query_") && name[:len("Query_")] == "Query_" {
			names = append(names, name[len("Query_"):])
		}
	}
	return names
}
