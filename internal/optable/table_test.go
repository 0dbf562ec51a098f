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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/neonapi/internal/neon"
	"github.com/ajroetker/neonapi/internal/strategy"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	entries := table.Entries()
	require.Equal(t, table.Len(), len(entries))

	assert.Equal(t, "vabd", entries[0].Abbrev)
	assert.Equal(t, "vcvt", entries[len(entries)-1].Abbrev)

	var unsupported []string
	for _, e := range entries {
		if !e.Supported() {
			unsupported = append(unsupported, e.Abbrev)
		}
	}
	assert.Equal(t, []string{
		"vbcax", "vbfdot", "vbfdot_lane", "vbfmmlaq", "vbfmlalbq", "vbfmlaltq", "vbfmlalt_lane",
	}, unsupported)

	cage, ok := table.Lookup("vcage")
	require.True(t, ok)
	assert.Equal(t, neon.Floats(), cage.Domain)
	assert.Equal(t, strategy.KindCompare, cage.Strategy.Kind())

	_, ok = table.Lookup("vmul")
	assert.False(t, ok)
}

func TestTableIsImmutable(t *testing.T) {
	table := Default()
	e := table.Entries()
	e[0].Abbrev = "changed"
	e[0].Domain[0] = neon.F64

	again := table.Entries()
	assert.Equal(t, "vabd", again[0].Abbrev)
	assert.Equal(t, neon.S8, again[0].Domain[0])

	domain := []neon.ElementType{neon.S8}
	table, err := New(Entry{Abbrev: "vadd", Strategy: strategy.Pointwise{}, Domain: domain, Arity: 2})
	require.NoError(t, err)
	domain[0] = neon.U8
	got, _ := table.Lookup("vadd")
	assert.Equal(t, neon.S8, got.Domain[0])
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr string
	}{
		{
			name:    "missing abbreviation",
			entries: []Entry{{Strategy: strategy.Pointwise{}, Arity: 1}},
			wantErr: "missing abbreviation",
		},
		{
			name: "duplicate",
			entries: []Entry{
				{Abbrev: "vadd", Strategy: strategy.Pointwise{}, Arity: 2},
				{Abbrev: "vadd", Strategy: strategy.Pointwise{}, Arity: 2},
			},
			wantErr: `duplicate abbreviation "vadd"`,
		},
		{
			name:    "missing strategy",
			entries: []Entry{{Abbrev: "vadd", Arity: 2}},
			wantErr: "missing strategy",
		},
		{
			name:    "zero arity",
			entries: []Entry{{Abbrev: "vadd", Strategy: strategy.Pointwise{}}},
			wantErr: "arity must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadFileMatchesDefault(t *testing.T) {
	loaded, err := LoadFile("testdata/neon.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default().Entries(), loaded.Entries())
}

func TestLoad(t *testing.T) {
	src := `
reduce_exclusions:
  - {type: f16, reason: none}
operations:
  - {abbrev: vmax, strategy: pointwise, domain: [s8, floats], arity: 2}
  - {abbrev: vmaxv, strategy: reduce, domain: [f16, f32], arity: 1}
  - {abbrev: vsha, strategy: pointwise, domain: [u32], arity: 3, unsupported: requires sha2}
`
	table, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	vmax, _ := table.Lookup("vmax")
	assert.Equal(t, []neon.ElementType{neon.S8, neon.F16, neon.F32, neon.F64}, vmax.Domain)
	assert.True(t, vmax.Supported())

	vmaxv, _ := table.Lookup("vmaxv")
	assert.Equal(t, strategy.Reduce{Policy: strategy.ReducePolicy{{Elem: neon.F16, Reason: "none"}}}, vmaxv.Strategy)

	vsha, _ := table.Lookup("vsha")
	assert.Equal(t, "requires sha2", vsha.Unsupported)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"empty", "", "empty table"},
		{"bad yaml", "operations: [", "decode table"},
		{"unknown field", "operations:\n  - {abbrev: vadd, strat: pointwise}\n", "field strat not found"},
		{"unknown strategy", "operations:\n  - {abbrev: vadd, strategy: gather, domain: [all], arity: 2}\n", `vadd: unknown strategy "gather"`},
		{"unknown type", "operations:\n  - {abbrev: vadd, strategy: pointwise, domain: [s128], arity: 2}\n", `unknown element type or group "s128"`},
		{"empty domain", "operations:\n  - {abbrev: vadd, strategy: pointwise, arity: 2}\n", "vadd: empty domain"},
		{"bad width", "reduce_exclusions:\n  - {type: f64, width: 32}\noperations: []\n", "width must be 64 or 128"},
		{"bad exclusion type", "reduce_exclusions:\n  - {type: bf16}\noperations: []\n", `unknown element type "bf16"`},
		{"duplicate", "operations:\n  - {abbrev: vadd, strategy: pointwise, domain: [all], arity: 2}\n  - {abbrev: vadd, strategy: pointwise, domain: [all], arity: 2}\n", "duplicate abbreviation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	_, err := LoadFile("testdata/missing.yaml")
	assert.ErrorContains(t, err, "read table")
}
