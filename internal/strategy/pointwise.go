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

// Pointwise emits lane-wise operations whose operands and result all share
// one shape: vadd_s8(int8x8_t, int8x8_t) -> int8x8_t, at both widths.
type Pointwise struct{}

func (Pointwise) Kind() Kind { return KindPointwise }

func (Pointwise) Generate(abbrev string, domain []neon.ElementType, arity int) ([]Signature, error) {
	if err := checkArity(abbrev, arity); err != nil {
		return nil, err
	}
	var sigs []Signature
	for _, w := range neon.Widths() {
		for _, t := range domain {
			shape := neon.Resolve(t, w)
			sigs = append(sigs, Signature{
				Name:      funcName(abbrev, w, t.Abbrev()),
				Result:    shape,
				Params:    sameParams(shape, arity),
				Primitive: abbrev,
			})
		}
	}
	return sigs, nil
}

// Select emits bitwise-select (vbsl). Operand 0 is the lane mask, typed as
// the unsigned representation of the element; operands 1 and 2 and the
// result use the element's own shape. The primitive takes the scalar element
// type as a template argument because the mask type alone cannot tell, e.g.,
// uint32 from float32 selection apart.
//
// Arity is always 3.
type Select struct{}

func (Select) Kind() Kind { return KindSelect }

func (Select) Generate(abbrev string, domain []neon.ElementType, _ int) ([]Signature, error) {
	var sigs []Signature
	for _, w := range neon.Widths() {
		for _, t := range domain {
			rep, err := t.Representation()
			if err != nil {
				return nil, err
			}
			shape := neon.Resolve(t, w)
			sigs = append(sigs, Signature{
				Name:      funcName(abbrev, w, t.Abbrev()),
				Result:    shape,
				Params:    indexed(neon.Resolve(rep, w), shape, shape),
				Primitive: abbrev,
				Template:  t,
			})
		}
	}
	return sigs, nil
}

// Compare emits lane-wise comparisons (arity 2) and comparisons against zero
// (arity 1). The result is always the unsigned mask vector of the same lane
// count.
type Compare struct{}

func (Compare) Kind() Kind { return KindCompare }

func (Compare) Generate(abbrev string, domain []neon.ElementType, arity int) ([]Signature, error) {
	if err := checkArity(abbrev, arity); err != nil {
		return nil, err
	}
	var sigs []Signature
	for _, w := range neon.Widths() {
		for _, t := range domain {
			rep, err := t.Representation()
			if err != nil {
				return nil, err
			}
			sigs = append(sigs, Signature{
				Name:      funcName(abbrev, w, t.Abbrev()),
				Result:    neon.Resolve(rep, w),
				Params:    sameParams(neon.Resolve(t, w), arity),
				Primitive: abbrev,
			})
		}
	}
	return sigs, nil
}

// Convert emits float-to-integer conversions. Each float type converts to the
// signed and the unsigned integer of the same width, e.g. vcvtq_s32_f32 and
// vcvtq_u32_f32. The target scalar type is the template argument.
type Convert struct{}

func (Convert) Kind() Kind { return KindConvert }

func (Convert) Generate(abbrev string, domain []neon.ElementType, _ int) ([]Signature, error) {
	var sigs []Signature
	for _, w := range neon.Widths() {
		for _, t := range domain {
			targets, err := t.ConversionTargets()
			if err != nil {
				return nil, err
			}
			for _, target := range targets {
				sigs = append(sigs, Signature{
					Name:      funcName(abbrev, w, target.Abbrev()+"_"+t.Abbrev()),
					Result:    neon.Resolve(target, w),
					Params:    sameParams(neon.Resolve(t, w), 1),
					Primitive: abbrev,
					Template:  target,
				})
			}
		}
	}
	return sigs, nil
}
