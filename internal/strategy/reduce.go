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

package strategy

import "github.com/ajroetker/neonapi/internal/neon"

// Exclusion removes one (element type, width) pair from a reduction.
// A zero Width excludes the element type at every width.
type Exclusion struct {
	Elem   neon.ElementType
	Width  neon.Width
	Reason string
}

// ReducePolicy lists the pairs a horizontal reduction does not emit.
type ReducePolicy []Exclusion

// DefaultReducePolicy matches the primitive provider: f16 has no scalar
// reduction, and float64x1_t holds a single lane so reducing it is a no-op.
//
// Note that int64x1_t and uint64x1_t are single-lane too but are emitted,
// since the provider implements them.
func DefaultReducePolicy() ReducePolicy {
	return ReducePolicy{
		{Elem: neon.F16, Reason: "no scalar reduction target"},
		{Elem: neon.F64, Width: neon.D, Reason: "single lane"},
	}
}

// Excludes reports whether the pair is excluded, and why.
func (p ReducePolicy) Excludes(t neon.ElementType, w neon.Width) (string, bool) {
	for _, e := range p {
		if e.Elem == t && (e.Width == 0 || e.Width == w) {
			return e.Reason, true
		}
	}
	return "", false
}

// Reduce emits horizontal reductions (vaddv) from a vector to its scalar
// element type, at both widths, skipping whatever Policy excludes.
type Reduce struct {
	Policy ReducePolicy
}

func (Reduce) Kind() Kind { return KindReduce }

func (s Reduce) Generate(abbrev string, domain []neon.ElementType, _ int) ([]Signature, error) {
	var sigs []Signature
	for _, w := range neon.Widths() {
		for _, t := range domain {
			if _, skip := s.Policy.Excludes(t, w); skip {
				continue
			}
			sigs = append(sigs, Signature{
				Name:      funcName(abbrev, w, t.Abbrev()),
				Result:    t,
				Params:    sameParams(neon.Resolve(t, w), 1),
				Primitive: abbrev,
			})
		}
	}
	return sigs, nil
}
