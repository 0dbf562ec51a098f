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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/neonapi/internal/neon"
	"github.com/ajroetker/neonapi/internal/strategy"
)

// fileSpec is the YAML form of a table.
//
//	reduce_exclusions:
//	  - {type: f16, reason: no scalar reduction target}
//	  - {type: f64, width: 64, reason: single lane}
//	operations:
//	  - {abbrev: vadd, strategy: pointwise, domain: [all], arity: 2}
type fileSpec struct {
	ReduceExclusions []exclusionSpec `yaml:"reduce_exclusions"`
	Operations       []entrySpec     `yaml:"operations"`
}

type exclusionSpec struct {
	Type   string `yaml:"type"`
	Width  int    `yaml:"width"`
	Reason string `yaml:"reason"`
}

type entrySpec struct {
	Abbrev      string   `yaml:"abbrev"`
	Strategy    string   `yaml:"strategy"`
	Domain      []string `yaml:"domain"`
	Arity       int      `yaml:"arity"`
	Unsupported string   `yaml:"unsupported"`
}

// groups are the domain names accepted besides single type abbreviations.
var groups = map[string]func() []neon.ElementType{
	"all":        neon.All,
	"signed":     neon.SignedInts,
	"unsigned":   neon.UnsignedInts,
	"ints":       neon.Integers,
	"floats":     neon.Floats,
	"widenable":  neon.Widenable,
	"narrowable": neon.Narrowable,
}

// LoadFile reads a YAML table from path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	t, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Load decodes a YAML table. When reduce_exclusions is present it replaces
// the default reduction policy for every reduce entry in the table.
func Load(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec fileSpec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty table")
		}
		return nil, fmt.Errorf("decode table: %w", err)
	}

	policy := strategy.DefaultReducePolicy()
	if spec.ReduceExclusions != nil {
		var err error
		if policy, err = parsePolicy(spec.ReduceExclusions); err != nil {
			return nil, err
		}
	}

	entries := make([]Entry, 0, len(spec.Operations))
	for _, op := range spec.Operations {
		kind, err := strategy.ParseKind(op.Strategy)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Abbrev, err)
		}
		s, err := strategy.New(kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Abbrev, err)
		}
		if kind == strategy.KindReduce {
			s = strategy.Reduce{Policy: policy}
		}
		domain, err := parseDomain(op.Domain)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Abbrev, err)
		}
		entries = append(entries, Entry{
			Abbrev:      op.Abbrev,
			Strategy:    s,
			Domain:      domain,
			Arity:       op.Arity,
			Unsupported: op.Unsupported,
		})
	}
	return New(entries...)
}

func parseDomain(items []string) ([]neon.ElementType, error) {
	if len(items) == 0 {
		return nil, errors.New("empty domain")
	}
	var out []neon.ElementType
	for _, item := range items {
		if group, ok := groups[item]; ok {
			out = append(out, group()...)
			continue
		}
		t, ok := neon.ByAbbrev(item)
		if !ok {
			return nil, fmt.Errorf("unknown element type or group %q", item)
		}
		out = append(out, t)
	}
	return out, nil
}

func parsePolicy(specs []exclusionSpec) (strategy.ReducePolicy, error) {
	policy := make(strategy.ReducePolicy, 0, len(specs))
	for _, s := range specs {
		t, ok := neon.ByAbbrev(s.Type)
		if !ok {
			return nil, fmt.Errorf("reduce_exclusions: unknown element type %q", s.Type)
		}
		w := neon.Width(s.Width)
		if w != 0 && w != neon.D && w != neon.Q {
			return nil, fmt.Errorf("reduce_exclusions: %s: width must be 64 or 128, got %d", s.Type, s.Width)
		}
		policy = append(policy, strategy.Exclusion{Elem: t, Width: w, Reason: s.Reason})
	}
	return policy, nil
}
