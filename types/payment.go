// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strings"
)

//PaymentRule an accepted token class, matched exactly or by prefix
type PaymentRule struct {
	Name   string `json:"name" yaml:"name"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Exact  string `json:"exact,omitempty" yaml:"exact,omitempty"`
}

//Match token class
func (r PaymentRule) Match(token string) bool {
	if r.Exact != "" {
		return token == r.Exact
	}
	return r.Prefix != "" && strings.HasPrefix(token, r.Prefix)
}

//PaymentSet validated payments grouped by rule name
type PaymentSet struct {
	Totals map[string]int64
	Items  map[string][]*Payment
}

//Total accumulated amount of a rule
func (s *PaymentSet) Total(name string) int64 {
	return s.Totals[name]
}

//Get payments of a rule
func (s *PaymentSet) Get(name string) []*Payment {
	return s.Items[name]
}

//RequireMin presence and minimum quantity of one rule
func (s *PaymentSet) RequireMin(name string, min int64) error {
	total, ok := s.Totals[name]
	if !ok {
		return Validationf("%s token is missing", name)
	}
	if total < min {
		return Validationf("Insufficient %s tokens", name)
	}
	return nil
}

//ValidatePayments partition payments by rules, the first payment matching no rule aborts the whole set
func ValidatePayments(payments []*Payment, rules ...PaymentRule) (*PaymentSet, error) {
	set := &PaymentSet{Totals: make(map[string]int64), Items: make(map[string][]*Payment)}
	for _, p := range payments {
		rule, ok := matchRule(p.GetToken(), rules)
		if !ok {
			return nil, Validationf("Only %s tokens are accepted", ruleNames(rules))
		}
		if !CheckAmount(p.GetAmount()) {
			return nil, ErrAmount
		}
		total := set.Totals[rule.Name] + p.GetAmount()
		if total >= MaxCoin {
			return nil, ErrAmount
		}
		set.Totals[rule.Name] = total
		set.Items[rule.Name] = append(set.Items[rule.Name], p)
	}
	return set, nil
}

func matchRule(token string, rules []PaymentRule) (PaymentRule, bool) {
	for _, r := range rules {
		if r.Match(token) {
			return r, true
		}
	}
	return PaymentRule{}, false
}

func ruleNames(rules []PaymentRule) string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	return strings.Join(names, " and ")
}
