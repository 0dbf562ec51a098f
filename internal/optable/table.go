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

// Package optable holds the ordered table of NEON operations to generate.
//
// A Table is built once, either from the literal default in Default or from a
// YAML document with Load, and is read-only afterwards. Entry order is the
// emission order.
package optable

import (
	"fmt"

	"github.com/ajroetker/neonapi/internal/neon"
	"github.com/ajroetker/neonapi/internal/strategy"
)

// Entry binds an operation abbreviation to the strategy that generates it.
type Entry struct {
	Abbrev   string
	Strategy strategy.Strategy
	Domain   []neon.ElementType
	Arity    int

	// Unsupported, when set, marks a known operation that is not generated
	// yet and says why (e.g. the extension it needs).
	Unsupported string
}

// Supported reports whether the entry is generated.
func (e Entry) Supported() bool { return e.Unsupported == "" }

// Table is an immutable, ordered list of entries with unique abbreviations.
type Table struct {
	entries []Entry
}

// New builds a table from entries, in order. It copies its input.
func New(entries ...Entry) (*Table, error) {
	seen := make(map[string]bool, len(entries))
	t := &Table{entries: make([]Entry, 0, len(entries))}
	for i, e := range entries {
		if e.Abbrev == "" {
			return nil, fmt.Errorf("entry %d: missing abbreviation", i)
		}
		if seen[e.Abbrev] {
			return nil, fmt.Errorf("entry %d: duplicate abbreviation %q", i, e.Abbrev)
		}
		seen[e.Abbrev] = true
		if e.Strategy == nil {
			return nil, fmt.Errorf("%s: missing strategy", e.Abbrev)
		}
		if e.Arity < 1 {
			return nil, fmt.Errorf("%s: arity must be at least 1, got %d", e.Abbrev, e.Arity)
		}
		e.Domain = append([]neon.ElementType(nil), e.Domain...)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// Len returns the number of entries, supported or not.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		e.Domain = append([]neon.ElementType(nil), e.Domain...)
		out[i] = e
	}
	return out
}

// Lookup returns the entry for abbrev.
func (t *Table) Lookup(abbrev string) (Entry, bool) {
	for _, e := range t.entries {
		if e.Abbrev == abbrev {
			e.Domain = append([]neon.ElementType(nil), e.Domain...)
			return e, true
		}
	}
	return Entry{}, false
}
