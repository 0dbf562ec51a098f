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

package optable

import (
	"github.com/ajroetker/neonapi/internal/neon"
	"github.com/ajroetker/neonapi/internal/strategy"
)

const (
	needsSHA3 = "requires armv8.2-a+sha3"
	needsBF16 = "requires armv8.6-a+bf16"
)

// Default returns the built-in NEON operation table.
func Default() *Table {
	all := neon.All()
	ints := neon.Integers()
	floats := neon.Floats()
	widenable := neon.Widenable()
	narrowable := neon.Narrowable()
	signedAndFloats := append(neon.SignedInts(), floats...)

	t, err := New(
		Entry{Abbrev: "vabd", Strategy: strategy.Pointwise{}, Domain: all, Arity: 2},
		Entry{Abbrev: "vabs", Strategy: strategy.Pointwise{}, Domain: signedAndFloats, Arity: 1},
		Entry{Abbrev: "vadd", Strategy: strategy.Pointwise{}, Domain: all, Arity: 2},
		Entry{Abbrev: "vaddl", Strategy: strategy.Widen{}, Domain: widenable, Arity: 2},
		Entry{Abbrev: "vaddl_high", Strategy: strategy.Widen{High: true}, Domain: widenable, Arity: 2},
		Entry{Abbrev: "vaddw", Strategy: strategy.WidenAccumulate{}, Domain: widenable, Arity: 2},
		Entry{Abbrev: "vaddw_high", Strategy: strategy.WidenAccumulate{High: true}, Domain: widenable, Arity: 2},
		Entry{Abbrev: "vaddhn", Strategy: strategy.Narrow{}, Domain: narrowable, Arity: 2},
		Entry{Abbrev: "vaddhn_high", Strategy: strategy.Narrow{High: true}, Domain: narrowable, Arity: 2},
		Entry{Abbrev: "vaddv", Strategy: strategy.Reduce{Policy: strategy.DefaultReducePolicy()}, Domain: all, Arity: 1},

		Entry{Abbrev: "vbic", Strategy: strategy.Pointwise{}, Domain: ints, Arity: 2},
		Entry{Abbrev: "vbsl", Strategy: strategy.Select{}, Domain: all, Arity: 3},
		Entry{Abbrev: "vbcax", Strategy: strategy.Pointwise{}, Domain: ints, Arity: 3, Unsupported: needsSHA3},
		Entry{Abbrev: "vbfdot", Strategy: strategy.Pointwise{}, Domain: []neon.ElementType{neon.F32}, Arity: 3, Unsupported: needsBF16},
		Entry{Abbrev: "vbfdot_lane", Strategy: strategy.Pointwise{}, Domain: []neon.ElementType{neon.F32}, Arity: 4, Unsupported: needsBF16},
		Entry{Abbrev: "vbfmmlaq", Strategy: strategy.Pointwise{}, Domain: []neon.ElementType{neon.F32}, Arity: 3, Unsupported: needsBF16},
		Entry{Abbrev: "vbfmlalbq", Strategy: strategy.Pointwise{}, Domain: []neon.ElementType{neon.F32}, Arity: 3, Unsupported: needsBF16},
		Entry{Abbrev: "vbfmlaltq", Strategy: strategy.Pointwise{}, Domain: []neon.ElementType{neon.F32}, Arity: 3, Unsupported: needsBF16},
		Entry{Abbrev: "vbfmlalt_lane", Strategy: strategy.Pointwise{}, Domain: []neon.ElementType{neon.F32}, Arity: 4, Unsupported: needsBF16},

		Entry{Abbrev: "vceq", Strategy: strategy.Compare{}, Domain: all, Arity: 2},
		Entry{Abbrev: "vceqz", Strategy: strategy.Compare{}, Domain: all, Arity: 1},
		Entry{Abbrev: "vcge", Strategy: strategy.Compare{}, Domain: all, Arity: 2},
		Entry{Abbrev: "vcgez", Strategy: strategy.Compare{}, Domain: all, Arity: 1},
		Entry{Abbrev: "vcle", Strategy: strategy.Compare{}, Domain: all, Arity: 2},
		Entry{Abbrev: "vclez", Strategy: strategy.Compare{}, Domain: all, Arity: 1},

		Entry{Abbrev: "vcgt", Strategy: strategy.Compare{}, Domain: all, Arity: 2},
		Entry{Abbrev: "vcgtz", Strategy: strategy.Compare{}, Domain: all, Arity: 1},
		Entry{Abbrev: "vclt", Strategy: strategy.Compare{}, Domain: all, Arity: 2},
		Entry{Abbrev: "vcltz", Strategy: strategy.Compare{}, Domain: all, Arity: 1},

		// Absolute-value comparisons exist for floats only.
		Entry{Abbrev: "vcage", Strategy: strategy.Compare{}, Domain: floats, Arity: 2},
		Entry{Abbrev: "vcale", Strategy: strategy.Compare{}, Domain: floats, Arity: 2},
		Entry{Abbrev: "vcagt", Strategy: strategy.Compare{}, Domain: floats, Arity: 2},
		Entry{Abbrev: "vcalt", Strategy: strategy.Compare{}, Domain: floats, Arity: 2},

		Entry{Abbrev: "vcvt", Strategy: strategy.Convert{}, Domain: floats, Arity: 1},
	)
	if err != nil {
		panic(err) // the literal above is static
	}
	return t
}
