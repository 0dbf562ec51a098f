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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	if args == nil {
		args = []string{} // nil would make cobra read os.Args
	}
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateDefault(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	assert.Len(t, lines, 408)
	assert.Equal(t, `#include "neon.h"`, lines[0])
	assert.Equal(t, "inline int8x8_t vabd_s8(int8x8_t const& a0, int8x8_t const& a1) { return neon::vabd(a0, a1); }", lines[1])
	assert.Contains(t, stderr, "generation complete")
	assert.NotContains(t, stderr, "skipping unsupported", "debug records need --verbose")
}

func TestGenerateVerbose(t *testing.T) {
	_, stderr, err := execute(t, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "op=vbcax")
	assert.Contains(t, stderr, "skipping unsupported operation")
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neon_api.h")
	table := writeTable(t, "operations:\n  - {abbrev: vneg, strategy: pointwise, domain: [s32], arity: 1}\n")

	stdout, _, err := execute(t, "--out", path, "--table", table, "--include", "neon_impl.h", "--namespace", "impl")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `#include "neon_impl.h"
inline int32x2_t vneg_s32(int32x2_t const& a) { return impl::vneg(a); }
inline int32x4_t vnegq_s32(int32x4_t const& a) { return impl::vneg(a); }
`, string(data))
}

func TestExitCodes(t *testing.T) {
	badTable := writeTable(t, "operations:\n  - {abbrev: vaddl, strategy: widen, domain: [u64], arity: 2}\n")
	brokenYAML := writeTable(t, "operations: [")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"relation undefined", []string{"--table", badTable}, exitGenerate, "generate: vaddl: widen relation undefined for element type u64"},
		{"broken yaml", []string{"--table", brokenYAML}, exitCommandError, "load table"},
		{"missing table", []string{"--table", filepath.Join(t.TempDir(), "nope.yaml")}, exitCommandError, "load table"},
		{"unwritable output", []string{"--out", filepath.Join(t.TempDir(), "missing", "out.h")}, exitCommandError, "create output"},
		{"unexpected argument", []string{"extra"}, exitCommandError, "unknown command"},
		{"bad list format", []string{"list", "--format", "xml"}, exitCommandError, `invalid format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, exitCode(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitCommandError, exitCode(errors.New("plain")))
}

func TestListText(t *testing.T) {
	stdout, _, err := execute(t, "list")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "OP"))
	assert.Regexp(t, `(?m)^vcage\s+compare\s+2\s+f16,f32,f64\s+ok$`, stdout)
	assert.Regexp(t, `(?m)^vbcax\s+pointwise\s+3\s+\S+\s+unsupported: requires armv8.2-a\+sha3$`, stdout)
	assert.Contains(t, stdout, "Pointwise: 4\n")
	assert.Contains(t, stdout, "Compare: 14\n")
	assert.Contains(t, stdout, "Convert: 1\n")
}

func TestListJSON(t *testing.T) {
	table := writeTable(t, `operations:
  - {abbrev: vmin, strategy: pointwise, domain: [u8, f32], arity: 2}
  - {abbrev: vsm3, strategy: pointwise, domain: [u32], arity: 3, unsupported: requires sm4}
`)
	stdout, _, err := execute(t, "list", "--format", "json", "--table", table)
	require.NoError(t, err)

	var rows []listedOp
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	assert.Equal(t, []listedOp{
		{Abbrev: "vmin", Strategy: "pointwise", Arity: 2, Domain: []string{"u8", "f32"}},
		{Abbrev: "vsm3", Strategy: "pointwise", Arity: 3, Domain: []string{"u32"}, Unsupported: "requires sm4"},
	}, rows)
}
