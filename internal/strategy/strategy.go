// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package strategy derives typed wrapper signatures for NEON operations.
//
// Each strategy is a pure function from (abbreviation, element-type domain,
// arity) to an ordered list of signatures. The set of strategies is closed:
// every Kind maps to exactly one constructor in New.
//
// Strategies that emit both register widths iterate D before Q and, within a
// width, the domain in the order given. Output order is part of the contract.
package strategy

import (
	"fmt"
	"strings"

	"github.com/ajroetker/neonapi/internal/neon"
)

// Param is one operand of a generated declaration.
type Param struct {
	Name string
	Type neon.VectorShape
}

// Signature describes one generated overload.
type Signature struct {
	Name      string    // e.g. "vaddq_s8"
	Result    neon.Type // vector shape, or scalar element type for reductions
	Params    []Param
	Primitive string // provider function the wrapper delegates to

	// Template, when non-nil, is passed as an explicit template argument to
	// the primitive to pick between overloads with identical operand types.
	Template neon.Type
}

// Strategy generates the overload set for one operation.
type Strategy interface {
	Kind() Kind
	Generate(abbrev string, domain []neon.ElementType, arity int) ([]Signature, error)
}

// Kind identifies a strategy variant.
type Kind int

const (
	KindPointwise Kind = iota
	KindWiden
	KindWidenHigh
	KindWidenAcc
	KindWidenAccHigh
	KindNarrow
	KindNarrowHigh
	KindReduce
	KindSelect
	KindCompare
	KindConvert

	numKinds
)

var kindNames = [numKinds]string{
	KindPointwise:    "pointwise",
	KindWiden:        "widen",
	KindWidenHigh:    "widen-high",
	KindWidenAcc:     "widen-acc",
	KindWidenAccHigh: "widen-acc-high",
	KindNarrow:       "narrow",
	KindNarrowHigh:   "narrow-high",
	KindReduce:       "reduce",
	KindSelect:       "select",
	KindCompare:      "compare",
	KindConvert:      "convert",
}

func (k Kind) String() string {
	if k >= 0 && k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns every strategy kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind maps a strategy name such as "widen-acc-high" to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(kindNames[:], ", "))
}

// New returns the strategy for k. Reductions use DefaultReducePolicy.
func New(k Kind) (Strategy, error) {
	switch k {
	case KindPointwise:
		return Pointwise{}, nil
	case KindWiden:
		return Widen{}, nil
	case KindWidenHigh:
		return Widen{High: true}, nil
	case KindWidenAcc:
		return WidenAccumulate{}, nil
	case KindWidenAccHigh:
		return WidenAccumulate{High: true}, nil
	case KindNarrow:
		return Narrow{}, nil
	case KindNarrowHigh:
		return Narrow{High: true}, nil
	case KindReduce:
		return Reduce{Policy: DefaultReducePolicy()}, nil
	case KindSelect:
		return Select{}, nil
	case KindCompare:
		return Compare{}, nil
	case KindConvert:
		return Convert{}, nil
	}
	return nil, fmt.Errorf("no strategy for %v", k)
}

// funcName builds "<abbrev><q>_<suffix>".
func funcName(abbrev string, w neon.Width, suffix string) string {
	return abbrev + w.Suffix() + "_" + suffix
}

// sameParams returns n operands of one shape. A single operand is named "a";
// several are named a0, a1, ...
func sameParams(shape neon.VectorShape, n int) []Param {
	if n == 1 {
		return []Param{{Name: "a", Type: shape}}
	}
	return indexed(repeat(shape, n)...)
}

// indexed names the given shapes a0, a1, ... in order.
func indexed(shapes ...neon.VectorShape) []Param {
	params := make([]Param, len(shapes))
	for i, s := range shapes {
		params[i] = Param{Name: fmt.Sprintf("a%d", i), Type: s}
	}
	return params
}

func repeat(shape neon.VectorShape, n int) []neon.VectorShape {
	out := make([]neon.VectorShape, n)
	for i := range out {
		out[i] = shape
	}
	return out
}

func checkArity(abbrev string, arity int) error {
	if arity < 1 {
		return fmt.Errorf("%s: arity must be at least 1, got %d", abbrev, arity)
	}
	return nil
}
