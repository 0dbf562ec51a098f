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

package neon

import "fmt"

// Width is a total register width in bits.
type Width int

const (
	D Width = 64  // 64-bit doubleword register
	Q Width = 128 // 128-bit quadword register
)

// Widths returns the register widths in emission order.
func Widths() []Width { return []Width{D, Q} }

// Suffix returns the intrinsic name suffix for the width: "" for D and "q"
// for Q, as in vadd_s8 / vaddq_s8.
func (w Width) Suffix() string {
	if w == Q {
		return "q"
	}
	return ""
}

// Type is anything that can appear as a parameter or result type in a
// generated declaration: a VectorShape or a scalar ElementType.
type Type interface {
	Name() string
}

// VectorShape is an element type packed into a register of a given width.
// Two shapes with equal fields are the same C++ vector type.
type VectorShape struct {
	Elem  ElementType
	Width Width
}

// Resolve returns the vector shape for elem in a register of width w.
// w must be a positive multiple of the element bit width, which holds for
// every registered type at D and Q.
func Resolve(elem ElementType, w Width) VectorShape {
	return VectorShape{Elem: elem, Width: w}
}

// Lanes returns the number of lanes in the vector.
func (v VectorShape) Lanes() int {
	return int(v.Width) / v.Elem.Bits
}

// Name returns the C++ vector type name, e.g. "int8x8_t" or "float32x4_t".
func (v VectorShape) Name() string {
	return fmt.Sprintf("%sx%d_t", v.Elem.CType(), v.Lanes())
}

func (v VectorShape) String() string { return v.Name() }
