// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/wintergame/common/address"
	"github.com/33cn/wintergame/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	registedExecDriver = make(map[string]DriverCreate)
	execDrivers        = make(map[string]string)
	execAddressNameMap = make(map[string]string)
	regMu              sync.RWMutex
)

// Register register a driver under its name
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
	addr := address.ExecAddress(name)
	execAddressNameMap[name] = addr
	execDrivers[addr] = name
}

// LoadDriver new driver instance by name
func LoadDriver(name string) (driver Driver, err error) {
	regMu.RLock()
	c, ok := registedExecDriver[name]
	regMu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	return c(), nil
}

// IsDriverAddress address of a registered executor
func IsDriverAddress(addr string) bool {
	regMu.RLock()
	defer regMu.RUnlock()
	_, ok := execDrivers[addr]
	return ok
}

// ExecAddress return exec address
func ExecAddress(name string) string {
	regMu.RLock()
	addr, ok := execAddressNameMap[name]
	regMu.RUnlock()
	if ok {
		return addr
	}
	return address.ExecAddress(name)
}

// ListDrivers names of registered drivers, sorted
func ListDrivers() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
