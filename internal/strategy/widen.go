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

// The widening and narrowing strategies below emit a single form per element
// type and never add a "q" suffix: the register widths are fixed by the
// operation, so the table's arity is ignored.
//
// The High variants take a Q register where the plain form takes a D
// register. The provider reads only the upper half of that operand; at this
// level the difference is in the operand shape and the name.

// Widen emits long operations such as vaddl and vaddl_high that combine two
// narrow operands into a widened Q result.
//
//	vaddl_s8(int8x8_t, int8x8_t) -> int16x8_t
//	vaddl_high_s8(int8x16_t, int8x16_t) -> int16x8_t
type Widen struct {
	High bool
}

func (s Widen) Kind() Kind {
	if s.High {
		return KindWidenHigh
	}
	return KindWiden
}

func (s Widen) Generate(abbrev string, domain []neon.ElementType, _ int) ([]Signature, error) {
	sigs := make([]Signature, 0, len(domain))
	for _, t := range domain {
		wide, err := t.Widen()
		if err != nil {
			return nil, err
		}
		in := neon.Resolve(t, halfWidth(s.High))
		sigs = append(sigs, Signature{
			Name:      abbrev + "_" + t.Abbrev(),
			Result:    neon.Resolve(wide, neon.Q),
			Params:    indexed(in, in),
			Primitive: abbrev,
		})
	}
	return sigs, nil
}

// WidenAccumulate emits wide operations such as vaddw and vaddw_high that add
// a narrow operand into a wide accumulator.
//
//	vaddw_s8(int16x8_t, int8x8_t) -> int16x8_t
//	vaddw_high_s8(int16x8_t, int8x16_t) -> int16x8_t
type WidenAccumulate struct {
	High bool
}

func (s WidenAccumulate) Kind() Kind {
	if s.High {
		return KindWidenAccHigh
	}
	return KindWidenAcc
}

func (s WidenAccumulate) Generate(abbrev string, domain []neon.ElementType, _ int) ([]Signature, error) {
	sigs := make([]Signature, 0, len(domain))
	for _, t := range domain {
		wide, err := t.Widen()
		if err != nil {
			return nil, err
		}
		acc := neon.Resolve(wide, neon.Q)
		sigs = append(sigs, Signature{
			Name:      abbrev + "_" + t.Abbrev(),
			Result:    acc,
			Params:    indexed(acc, neon.Resolve(t, halfWidth(s.High))),
			Primitive: abbrev,
		})
	}
	return sigs, nil
}

// Narrow emits narrowing operations such as vaddhn and vaddhn_high.
//
// The plain form combines two Q operands into a D result of the narrowed
// type. The High form also takes that D value as an accumulator in operand 0
// and returns a Q result whose low half is the accumulator and whose high half
// is the newly narrowed value.
//
//	vaddhn_s16(int16x8_t, int16x8_t) -> int8x8_t
//	vaddhn_high_s16(int8x8_t, int16x8_t, int16x8_t) -> int8x16_t
type Narrow struct {
	High bool
}

func (s Narrow) Kind() Kind {
	if s.High {
		return KindNarrowHigh
	}
	return KindNarrow
}

func (s Narrow) Generate(abbrev string, domain []neon.ElementType, _ int) ([]Signature, error) {
	sigs := make([]Signature, 0, len(domain))
	for _, t := range domain {
		narrow, err := t.Narrow()
		if err != nil {
			return nil, err
		}
		in := neon.Resolve(t, neon.Q)
		sig := Signature{
			Name:      abbrev + "_" + t.Abbrev(),
			Result:    neon.Resolve(narrow, neon.D),
			Params:    indexed(in, in),
			Primitive: abbrev,
		}
		if s.High {
			sig.Result = neon.Resolve(narrow, neon.Q)
			sig.Params = indexed(neon.Resolve(narrow, neon.D), in, in)
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

func halfWidth(high bool) neon.Width {
	if high {
		return neon.Q
	}
	return neon.D
}
