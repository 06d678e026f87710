// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	woodRule = PaymentRule{Name: "WOOD", Prefix: "WOOD-"}
	foodRule = PaymentRule{Name: "FOOD", Prefix: "FOOD-"}
)

func TestValidatePaymentsPartition(t *testing.T) {
	set, err := ValidatePayments([]*Payment{
		{Token: "WOOD-a1b2c3", Amount: 4},
		{Token: "FOOD-ffffff", Amount: 15},
		{Token: "WOOD-a1b2c3", Amount: 6},
	}, woodRule, foodRule)
	require.NoError(t, err)
	assert.Equal(t, int64(10), set.Total("WOOD"))
	assert.Equal(t, int64(15), set.Total("FOOD"))
	assert.Len(t, set.Get("WOOD"), 2)
	assert.NoError(t, set.RequireMin("WOOD", 10))
	assert.NoError(t, set.RequireMin("FOOD", 15))
}

func TestValidatePaymentsRejectsUnknown(t *testing.T) {
	_, err := ValidatePayments([]*Payment{
		{Token: "WOOD-a1b2c3", Amount: 10},
		{Token: "STONE-000000", Amount: 1},
	}, woodRule, foodRule)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "Only WOOD and FOOD tokens are accepted", err.Error())
}

func TestValidatePaymentsAmount(t *testing.T) {
	_, err := ValidatePayments([]*Payment{{Token: "WOOD-a1b2c3", Amount: 0}}, woodRule)
	assert.Equal(t, ErrAmount, err)
	_, err = ValidatePayments([]*Payment{{Token: "WOOD-a1b2c3", Amount: -5}}, woodRule)
	assert.Equal(t, ErrAmount, err)
}

func TestRequireMin(t *testing.T) {
	set, err := ValidatePayments([]*Payment{{Token: "WOOD-a1b2c3", Amount: 1}}, woodRule, foodRule)
	require.NoError(t, err)
	err = set.RequireMin("WOOD", 2)
	assert.Equal(t, "Insufficient WOOD tokens", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	err = set.RequireMin("FOOD", 1)
	assert.Equal(t, "FOOD token is missing", err.Error())
}

func TestExactRule(t *testing.T) {
	rule := PaymentRule{Name: "FROST", Exact: "FROST"}
	assert.True(t, rule.Match("FROST"))
	assert.False(t, rule.Match("FROSTY"))
	assert.False(t, PaymentRule{Name: "none"}.Match("FROST"))
}
