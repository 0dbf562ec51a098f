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

// Package neon describes the NEON element-type system: the scalar lane types,
// the widen/narrow/representation relations between them, and the 64-bit (D)
// and 128-bit (Q) vector shapes built from them.
//
// Everything in this package is immutable. The registry is a fixed table and
// every accessor returns values or fresh slices.
package neon

import "fmt"

// Kind is the numeric kind of a lane type.
type Kind uint8

const (
	Signed Kind = iota
	Unsigned
	Float
)

func (k Kind) String() string {
	switch k {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float:
		return "float"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ElementType is a scalar lane type such as int8 or float32.
type ElementType struct {
	Kind Kind
	Bits int
}

// The registered element types.
var (
	S8  = ElementType{Signed, 8}
	S16 = ElementType{Signed, 16}
	S32 = ElementType{Signed, 32}
	S64 = ElementType{Signed, 64}

	U8  = ElementType{Unsigned, 8}
	U16 = ElementType{Unsigned, 16}
	U32 = ElementType{Unsigned, 32}
	U64 = ElementType{Unsigned, 64}

	F16 = ElementType{Float, 16}
	F32 = ElementType{Float, 32}
	F64 = ElementType{Float, 64}
)

// registry lists every element type in declaration order. Emission order of
// the default table follows this order.
var registry = [...]ElementType{S8, S16, S32, S64, U8, U16, U32, U64, F16, F32, F64}

// Valid reports whether t is one of the registered element types.
func (t ElementType) Valid() bool {
	for _, r := range registry {
		if r == t {
			return true
		}
	}
	return false
}

// Abbrev returns the short NEON suffix, e.g. "s8", "u32", "f16".
func (t ElementType) Abbrev() string {
	switch t.Kind {
	case Signed:
		return fmt.Sprintf("s%d", t.Bits)
	case Unsigned:
		return fmt.Sprintf("u%d", t.Bits)
	case Float:
		return fmt.Sprintf("f%d", t.Bits)
	}
	return fmt.Sprintf("?%d", t.Bits)
}

// CType returns the base C type name without the _t suffix, e.g. "int8",
// "uint32", "float16".
func (t ElementType) CType() string {
	switch t.Kind {
	case Signed:
		return fmt.Sprintf("int%d", t.Bits)
	case Unsigned:
		return fmt.Sprintf("uint%d", t.Bits)
	case Float:
		return fmt.Sprintf("float%d", t.Bits)
	}
	return fmt.Sprintf("invalid%d", t.Bits)
}

// Name returns the scalar C type name, e.g. "int8_t".
// It makes ElementType usable as a function result Type.
func (t ElementType) Name() string {
	return t.CType() + "_t"
}

func (t ElementType) String() string {
	return t.Abbrev()
}

// ByAbbrev looks up a registered element type by its NEON suffix.
func ByAbbrev(abbrev string) (ElementType, bool) {
	for _, t := range registry {
		if t.Abbrev() == abbrev {
			return t, true
		}
	}
	return ElementType{}, false
}

// All returns every registered element type in declaration order.
func All() []ElementType {
	out := make([]ElementType, len(registry))
	copy(out, registry[:])
	return out
}

// SignedInts returns the signed integer types.
func SignedInts() []ElementType { return ofKind(Signed) }

// UnsignedInts returns the unsigned integer types.
func UnsignedInts() []ElementType { return ofKind(Unsigned) }

// Floats returns the floating-point types.
func Floats() []ElementType { return ofKind(Float) }

// Integers returns the signed then the unsigned integer types.
func Integers() []ElementType {
	return append(SignedInts(), UnsignedInts()...)
}

// Widenable returns the integer types with a defined Widen relation.
func Widenable() []ElementType {
	return filter(func(t ElementType) bool {
		_, err := t.Widen()
		return err == nil
	})
}

// Narrowable returns the integer types with a defined Narrow relation.
func Narrowable() []ElementType {
	return filter(func(t ElementType) bool {
		_, err := t.Narrow()
		return err == nil
	})
}

func ofKind(k Kind) []ElementType {
	return filter(func(t ElementType) bool { return t.Kind == k })
}

func filter(keep func(ElementType) bool) []ElementType {
	var out []ElementType
	for _, t := range registry {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
