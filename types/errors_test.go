// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	pkgerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorCategories(t *testing.T) {
	err := TemporalGatef("%d hour must pass before claiming", 1)
	assert.True(t, errors.Is(err, ErrTemporalGate))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "1 hour must pass before claiming", err.Error())
	assert.Equal(t, "TemporalGateError", ErrorKind(err))

	wrapped := pkgerr.Wrap(ErrNoBalance, "transfer")
	assert.True(t, errors.Is(wrapped, ErrInsufficientSupply))
	assert.Equal(t, "InsufficientSupplyError", ErrorKind(wrapped))
	assert.Equal(t, "", ErrorKind(ErrNotFound))
	assert.Equal(t, "StateConflictError", ErrorKind(StateConflictf("no pending request")))
}
