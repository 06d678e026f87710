// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"crypto/sha256"
	"os"
	"strings"

	"github.com/33cn/wintergame/types"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//DefaultCatalogYAML workflows used when [exec.sub.craft] names no catalog file
const DefaultCatalogYAML = `
workflows:
  - name: ore
    clock: time
    delay: 3600
    inputs:
      - {prefix: STONE-, min: 20}
    output: {type: mint, class: ORE-, amount: 1}

  - name: citizen
    clock: time
    delay: 3600
    inputs:
      - {prefix: WOOD-, min: 10}
      - {prefix: FOOD-, min: 15}
    output: {type: nft, class: CITIZEN-, kind: CITIZEN}

  - name: soldier
    clock: time
    delay: 3600
    inputs:
      - {prefix: GOLD-, min: 5}
      - {prefix: ORE-, min: 5}
    target: {prefix: CITIZEN-, kind: CITIZEN}
    output: {type: upgrade, kind: SOLDIER, attack: 10, attack_roll: 10, defense: 5, defense_roll: 5}

  - name: shield
    clock: time
    delay: 3600
    inputs:
      - {prefix: ORE-, min: 2}
    output: {type: nft, class: SHIELD-, kind: SHIELD, defense: 5}

  - name: equip
    clock: time
    delay: 3600
    inputs:
      - {prefix: SHIELD-, min: 1}
    target: {prefix: CITIZEN-, kind: SOLDIER}
    output: {type: upgrade, input_defense: true}
`

//Catalog crafting workflows
type Catalog struct {
	Workflows []*Workflow `yaml:"workflows"`
}

//Workflow one request/claim recipe
type Workflow struct {
	Name   string  `yaml:"name"`
	Clock  string  `yaml:"clock"`
	Delay  int64   `yaml:"delay"`
	Inputs []Input `yaml:"inputs"`
	Target *Target `yaml:"target,omitempty"`
	Output Output  `yaml:"output"`
}

//Input accepted class and the minimum total to attach
type Input struct {
	types.PaymentRule `yaml:",inline"`
	Min               int64 `yaml:"min"`
}

//Target nft an upgrade workflow applies to
type Target struct {
	Prefix string `yaml:"prefix"`
	Kind   string `yaml:"kind"`
}

//Output what a claim produces. Attack and defense are base values plus seed % roll
type Output struct {
	Type         string `yaml:"type"`
	Class        string `yaml:"class,omitempty"`
	Amount       int64  `yaml:"amount,omitempty"`
	Kind         string `yaml:"kind,omitempty"`
	Attack       uint32 `yaml:"attack,omitempty"`
	AttackRoll   uint32 `yaml:"attack_roll,omitempty"`
	Defense      uint32 `yaml:"defense,omitempty"`
	DefenseRoll  uint32 `yaml:"defense_roll,omitempty"`
	InputDefense bool   `yaml:"input_defense,omitempty"`
}

//ParseCatalog decode and check a yaml catalog
func ParseCatalog(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, errors.Wrap(err, "craft catalog")
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return &c, nil
}

//LoadCatalog catalog file at path
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "craft catalog")
	}
	c, err := ParseCatalog(raw)
	if err != nil {
		tlog.Error("LoadCatalog", "path", path, "err", err)
		return nil, err
	}
	return c, nil
}

//DefaultCatalog built in workflows
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog([]byte(DefaultCatalogYAML))
	if err != nil {
		panic(err)
	}
	return c
}

//Check every workflow is executable, input names default to the prefix without its dash
func (c *Catalog) Check() error {
	if len(c.Workflows) == 0 {
		return errors.Wrap(ErrCatalog, "no workflows")
	}
	seen := make(map[string]bool)
	for _, w := range c.Workflows {
		if err := w.check(); err != nil {
			return errors.Wrapf(err, "workflow %q", w.Name)
		}
		if seen[w.Name] {
			return errors.Wrapf(ErrCatalog, "duplicate workflow %q", w.Name)
		}
		seen[w.Name] = true
	}
	return nil
}

func (w *Workflow) check() error {
	if w.Name == "" || w.Delay < 0 || len(w.Inputs) == 0 {
		return ErrCatalog
	}
	if w.Clock == "" {
		w.Clock = types.ClockTime
	}
	if !types.ValidClock(w.Clock) {
		return errors.Wrapf(ErrCatalog, "clock %s", w.Clock)
	}
	for i := range w.Inputs {
		in := &w.Inputs[i]
		if (in.Prefix == "" && in.Exact == "") || in.Min <= 0 {
			return errors.Wrapf(ErrCatalog, "input %d", i)
		}
		if in.Name == "" {
			in.Name = strings.TrimSuffix(in.Prefix+in.Exact, "-")
		}
	}
	switch w.Output.Type {
	case OutputMint:
		if w.Output.Class == "" || w.Output.Amount <= 0 {
			return errors.Wrap(ErrCatalog, "mint output")
		}
	case OutputNft:
		if w.Output.Class == "" {
			return errors.Wrap(ErrCatalog, "nft output")
		}
	case OutputUpgrade:
		if w.Target == nil || w.Target.Prefix == "" {
			return errors.Wrap(ErrCatalog, "upgrade without target")
		}
	default:
		return errors.Wrapf(ErrCatalog, "output type %s", w.Output.Type)
	}
	if w.Target != nil && w.Output.Type != OutputUpgrade {
		return errors.Wrap(ErrCatalog, "target on a non upgrade workflow")
	}
	return nil
}

//Get workflow by name
func (c *Catalog) Get(name string) (*Workflow, error) {
	for _, w := range c.Workflows {
		if w.Name == name {
			return w, nil
		}
	}
	return nil, ErrWorkflowNotFound
}

//Rules payment rules of the inputs
func (w *Workflow) Rules() []types.PaymentRule {
	rules := make([]types.PaymentRule, 0, len(w.Inputs))
	for _, in := range w.Inputs {
		rules = append(rules, in.PaymentRule)
	}
	return rules
}

//Info query form of the workflow
func (w *Workflow) Info() *WorkflowInfo {
	info := &WorkflowInfo{
		Name:         w.Name,
		Clock:        w.Clock,
		Delay:        w.Delay,
		Output:       w.Output.Type,
		Class:        w.Output.Class,
		Amount:       w.Output.Amount,
		Kind:         w.Output.Kind,
		Attack:       w.Output.Attack,
		AttackRoll:   w.Output.AttackRoll,
		Defense:      w.Output.Defense,
		DefenseRoll:  w.Output.DefenseRoll,
		InputDefense: w.Output.InputDefense,
	}
	for _, in := range w.Inputs {
		info.Inputs = append(info.Inputs, &WorkflowInput{Name: in.Name, Prefix: in.Prefix + in.Exact, Min: in.Min})
	}
	if w.Target != nil {
		info.TargetPrefix = w.Target.Prefix
		info.TargetKind = w.Target.Kind
	}
	return info
}

//StatSeed roll seed of one stat, every stat hashes the block seed with its own name
//so attack and defense come out independent
func StatSeed(seed []byte, stat string) uint64 {
	h := sha256.New()
	h.Write(seed)
	h.Write([]byte(stat))
	return types.SeedUint64(h.Sum(nil))
}

//Roll base + seed % roll, a zero roll adds nothing
func Roll(base, roll uint32, seed uint64) uint32 {
	if roll == 0 {
		return base
	}
	return base + uint32(seed%uint64(roll))
}
