// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

//TokenKey state key fragment of a token instance, fungible tokens have nonce 0
func TokenKey(class string, nonce uint64) string {
	if nonce == 0 {
		return class
	}
	return fmt.Sprintf("%s:%02x", class, nonce)
}

//ParseTokenKey inverse of TokenKey
func ParseTokenKey(key string) (string, uint64, error) {
	i := strings.LastIndex(key, ":")
	if i < 0 {
		return key, 0, nil
	}
	nonce, err := strconv.ParseUint(key[i+1:], 16, 64)
	if err != nil {
		return "", 0, ErrInvalidParam
	}
	return key[:i], nonce, nil
}

//TokenIdentifier TICKER-xxxxxx derived from a seed, usually a tx hash
func TokenIdentifier(ticker string, seed []byte) string {
	if len(seed) < 3 {
		return ticker
	}
	return ticker + "-" + hex.EncodeToString(seed[:3])
}

//Ticker the part of an identifier before the random suffix
func Ticker(class string) string {
	if i := strings.Index(class, "-"); i >= 0 {
		return class[:i]
	}
	return class
}

//CheckTicker 3 to 10 upper case letters or digits
func CheckTicker(ticker string) error {
	if len(ticker) < 3 || len(ticker) > 10 {
		return ErrInvalidParam
	}
	for _, c := range ticker {
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return ErrInvalidParam
		}
	}
	return nil
}

//CheckAmount positive and below MaxCoin
func CheckAmount(amount int64) bool {
	return amount > 0 && amount < MaxCoin
}

//FormatAmount integer amount to a decimal string
func FormatAmount(amount int64, decimals int32) string {
	return decimal.New(amount, -decimals).String()
}

//ParseAmount decimal string to integer amount, rejects extra precision
func ParseAmount(s string, decimals int32) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrAmount
	}
	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, ErrAmount
	}
	return shifted.IntPart(), nil
}

//KindName printable token kind
func KindName(kind int32) string {
	if kind == KindNonFungible {
		return "nft"
	}
	return "fungible"
}

//ParseKind inverse of KindName
func ParseKind(name string) (int32, error) {
	switch name {
	case "", "fungible":
		return KindFungible, nil
	case "nft":
		return KindNonFungible, nil
	}
	return 0, ErrTokenKind
}
