// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
)

//ExecutorType payload and log type information of one executor
type ExecutorType interface {
	GetName() string
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	ActionName(tx *Transaction) string
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	CreateTx(action string, message json.RawMessage, payments ...*Payment) (*Transaction, error)
}

//LogInfo receipt log type, Ty is the message type
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

//ExecutorAction payload with an action selector
type ExecutorAction interface {
	GetTy() int32
}

var (
	executorMap = map[string]ExecutorType{}
	logMap      = map[int64]*LogInfo{}
	execMu      sync.RWMutex
)

//RegistorExecutor register an executor type, logs included
func RegistorExecutor(exec string, util ExecutorType) {
	execMu.Lock()
	defer execMu.Unlock()
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType " + exec)
	}
	executorMap[exec] = util
	for ty, info := range util.GetLogMap() {
		if old, exist := logMap[ty]; exist && old.Name != info.Name {
			panic(fmt.Sprintf("DupLogType %d %s %s", ty, old.Name, info.Name))
		}
		logMap[ty] = info
	}
}

//LoadExecutorType executor type by name
func LoadExecutorType(exec string) ExecutorType {
	execMu.RLock()
	defer execMu.RUnlock()
	return executorMap[exec]
}

//ListExecutorTypes names of registered executors
func ListExecutorTypes() []string {
	execMu.RLock()
	defer execMu.RUnlock()
	names := make([]string, 0, len(executorMap))
	for name := range executorMap {
		names = append(names, name)
	}
	return names
}

var systemLogs = map[int64]*LogInfo{
	TyLogErr:           {reflect.TypeOf(ReplyString{}), "LogErr"},
	TyLogTransfer:      {reflect.TypeOf(ReceiptAccountTransfer{}), "LogTransfer"},
	TyLogGenesis:       {reflect.TypeOf(ReceiptAccountTransfer{}), "LogGenesis"},
	TyLogMint:          {reflect.TypeOf(ReceiptTokenSupply{}), "LogMint"},
	TyLogBurn:          {reflect.TypeOf(ReceiptTokenSupply{}), "LogBurn"},
	TyLogPaymentIntake: {reflect.TypeOf(ReceiptPaymentIntake{}), "LogPaymentIntake"},
	TyLogTokenClass:    {reflect.TypeOf(TokenClass{}), "LogTokenClass"},
	TyLogNftAttributes: {reflect.TypeOf(ReceiptNftAttributes{}), "LogNftAttributes"},
	TyLogModifyConfig:  {reflect.TypeOf(ReceiptConfig{}), "LogModifyConfig"},
}

//DecodeLog decode a receipt log into its message
func DecodeLog(ty int32, data []byte) (string, Message, error) {
	execMu.RLock()
	info, ok := logMap[int64(ty)]
	execMu.RUnlock()
	if !ok {
		info, ok = systemLogs[int64(ty)]
	}
	if !ok {
		return "", nil, ErrNotFound
	}
	msg := reflect.New(info.Ty).Interface().(Message)
	if err := Decode(data, msg); err != nil {
		return "", nil, err
	}
	return info.Name, msg, nil
}

//ExecTypeBase shared implementation, children provide name, payload and maps
type ExecTypeBase struct {
	child      ExecutorType
	actionFunc map[string]reflect.Method
	rTypeMap   map[int32]string
}

//SetChild must be called by the child constructor
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.rTypeMap = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.rTypeMap[ty] = name
	}
	base.actionFunc = ListMethod(child.GetPayload())
}

//ActionName action name of the payload, unknown on decode failure
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "unknown"
	}
	if a, ok := payload.(ExecutorAction); ok {
		if name, ok := base.rTypeMap[a.GetTy()]; ok {
			return name
		}
	}
	return "unknown"
}

//DecodePayload decode into a fresh payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	if err := Decode(tx.Payload, payload); err != nil {
		return nil, ErrDecode
	}
	return payload, nil
}

//DecodePayloadValue action name and the action message selected by Ty
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "", nilValue, err
	}
	a, ok := payload.(ExecutorAction)
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	name, ok := base.rTypeMap[a.GetTy()]
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	getter, ok := base.actionFunc["Get"+name]
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	val := getter.Func.Call([]reflect.Value{reflect.ValueOf(payload)})
	if !IsOK(val, 1) || IsNilVal(val[0]) {
		return "", nilValue, ErrActionNotSupport
	}
	return name, val[0], nil
}

//CreateTx build an unsigned tx from the json form of an action
func (base *ExecTypeBase) CreateTx(action string, message json.RawMessage, payments ...*Payment) (*Transaction, error) {
	ty, ok := base.child.GetTypeMap()[action]
	if !ok {
		return nil, ErrActionNotSupport
	}
	payload := base.child.GetPayload()
	pv := reflect.ValueOf(payload).Elem()
	field := pv.FieldByName(action)
	if !field.IsValid() || field.Kind() != reflect.Ptr {
		return nil, ErrActionNotSupport
	}
	value := reflect.New(field.Type().Elem())
	if len(message) > 0 {
		if err := json.Unmarshal(message, value.Interface()); err != nil {
			return nil, ErrInvalidParam
		}
	}
	field.Set(value)
	tyField := pv.FieldByName("Ty")
	if !tyField.IsValid() || !tyField.CanSet() {
		return nil, ErrActionNotSupport
	}
	tyField.SetInt(int64(ty))
	return NewTransaction(base.child.GetName(), payload, payments...), nil
}
