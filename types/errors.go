// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"fmt"
)

//error categories, every domain error belongs to one of them
var (
	ErrValidation         = errors.New("ValidationError")
	ErrStateConflict      = errors.New("StateConflictError")
	ErrTemporalGate       = errors.New("TemporalGateError")
	ErrInsufficientSupply = errors.New("InsufficientSupplyError")
)

//Error categorized error, matched with errors.Is against its category
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

//Is category match
func (e *Error) Is(target error) bool {
	return target == e.kind
}

//Kind category
func (e *Error) Kind() error {
	return e.kind
}

//NewError categorized error
func NewError(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}

//Validationf wrong token class, amount or missing payment
func Validationf(format string, args ...interface{}) error {
	return NewError(ErrValidation, fmt.Sprintf(format, args...))
}

//StateConflictf operation attempted in the wrong state
func StateConflictf(format string, args ...interface{}) error {
	return NewError(ErrStateConflict, fmt.Sprintf(format, args...))
}

//TemporalGatef claim before the minimum delay
func TemporalGatef(format string, args ...interface{}) error {
	return NewError(ErrTemporalGate, fmt.Sprintf(format, args...))
}

//InsufficientSupplyf mint/burn/transfer cannot be satisfied
func InsufficientSupplyf(format string, args ...interface{}) error {
	return NewError(ErrInsufficientSupply, fmt.Sprintf(format, args...))
}

//ErrorKind category name of err, empty for uncategorized errors
func ErrorKind(err error) string {
	for _, kind := range []error{ErrValidation, ErrStateConflict, ErrTemporalGate, ErrInsufficientSupply} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ""
}

//system errors
var (
	ErrActionNotSupport        = NewError(ErrValidation, "ErrActionNotSupport")
	ErrMethodReturnType        = errors.New("ErrMethodReturnType")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrUnRegistedDriver        = NewError(ErrValidation, "ErrUnRegistedDriver")
	ErrDecode                  = NewError(ErrValidation, "ErrDecode")
	ErrInvalidParam            = NewError(ErrValidation, "ErrInvalidParam")
	ErrAmount                  = NewError(ErrValidation, "ErrAmount")
	ErrInvalidAddress          = NewError(ErrValidation, "ErrInvalidAddress")
	ErrSign                    = NewError(ErrValidation, "ErrSign")
	ErrNoPayment               = NewError(ErrValidation, "ErrNoPayment")
	ErrUnknownToken            = NewError(ErrValidation, "ErrUnknownToken")
	ErrTokenKind               = NewError(ErrValidation, "ErrTokenKind")
	ErrMintNotAllowed          = NewError(ErrValidation, "ErrMintNotAllowed")
	ErrNoPermission            = NewError(ErrValidation, "ErrNoPermission")
	ErrNoBalance               = NewError(ErrInsufficientSupply, "ErrNoBalance")
	ErrSupplyOverflow          = NewError(ErrInsufficientSupply, "ErrSupplyOverflow")
	ErrTokenExist              = NewError(ErrStateConflict, "ErrTokenExist")
	ErrTxDup                   = NewError(ErrStateConflict, "ErrTxDup")
	ErrGenesisHeight           = NewError(ErrStateConflict, "ErrGenesisHeight")
	ErrNotAllowMemSetKey       = errors.New("ErrNotAllowMemSetKey")
	ErrNotAllowKey             = errors.New("ErrNotAllowKey")
	ErrLocalPrefix             = errors.New("ErrLocalPrefix")
	ErrNotAllow                = NewError(ErrValidation, "ErrNotAllow")
	ErrToAddrNotSameToExecAddr = NewError(ErrValidation, "ErrToAddrNotSameToExecAddr")
	ErrMavlKeyNotStartWithMavl = errors.New("ErrMavlKeyNotStartWithMavl")
	ErrNoExecerInMavlKey       = errors.New("ErrNoExecerInMavlKey")
	ErrNotFound                = errors.New("ErrNotFound")
	ErrTxEmpty                 = errors.New("ErrTxEmpty")
	ErrBlockNotFound           = errors.New("ErrBlockNotFound")
	ErrChainClosed             = errors.New("ErrChainClosed")
	ErrMempoolFull             = errors.New("ErrMempoolFull")
	ErrEmpty                   = errors.New("ErrEmpty")
	ErrTxNotExist              = errors.New("ErrTxNotExist")
	ErrHeightOutOfRange        = NewError(ErrValidation, "ErrHeightOutOfRange")
	ErrRPCWhitelist            = errors.New("ErrRPCWhitelist")
)
