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

// Relation names a type relation that may be undefined for some inputs.
type Relation string

const (
	RelWiden          Relation = "widen"
	RelNarrow         Relation = "narrow"
	RelRepresentation Relation = "representation"
	RelConvert        Relation = "conversion"
)

// UndefinedRelationError reports a relation queried outside its domain, e.g.
// widening a 64-bit integer. It always indicates a misconfigured operation
// table.
type UndefinedRelationError struct {
	Relation Relation
	Elem     ElementType
}

func (e *UndefinedRelationError) Error() string {
	return fmt.Sprintf("%s relation undefined for element type %s", e.Relation, e.Elem)
}

// Widen returns the next larger integer type of the same signedness.
// Defined for 8, 16 and 32-bit integers only.
func (t ElementType) Widen() (ElementType, error) {
	if !t.Valid() || t.Kind == Float || t.Bits >= 64 {
		return ElementType{}, &UndefinedRelationError{Relation: RelWiden, Elem: t}
	}
	return ElementType{Kind: t.Kind, Bits: t.Bits * 2}, nil
}

// Narrow returns the next smaller integer type of the same signedness.
// Defined for 16, 32 and 64-bit integers only.
func (t ElementType) Narrow() (ElementType, error) {
	if !t.Valid() || t.Kind == Float || t.Bits <= 8 {
		return ElementType{}, &UndefinedRelationError{Relation: RelNarrow, Elem: t}
	}
	return ElementType{Kind: t.Kind, Bits: t.Bits / 2}, nil
}

// Representation returns the unsigned integer type with the same bit width,
// used for lane masks. It is the identity on unsigned types and fails only for
// types outside the registry.
func (t ElementType) Representation() (ElementType, error) {
	if !t.Valid() {
		return ElementType{}, &UndefinedRelationError{Relation: RelRepresentation, Elem: t}
	}
	return ElementType{Kind: Unsigned, Bits: t.Bits}, nil
}

// ConversionTargets returns the signed and unsigned integer types a float
// type converts to, in that order. Defined for float types only.
func (t ElementType) ConversionTargets() ([]ElementType, error) {
	if !t.Valid() || t.Kind != Float {
		return nil, &UndefinedRelationError{Relation: RelConvert, Elem: t}
	}
	return []ElementType{{Kind: Signed, Bits: t.Bits}, {Kind: Unsigned, Bits: t.Bits}}, nil
}
