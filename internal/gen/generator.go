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

// Package gen drives wrapper generation: it walks an operation table in order,
// asks each entry's strategy for its signatures, and streams the rendered
// declarations to a writer.
package gen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ajroetker/neonapi/internal/optable"
)

// Options configures the emitted text.
type Options struct {
	Include   string // header named by the #include directive
	Namespace string // namespace of the primitive provider
}

// DefaultOptions returns the options matching the stock provider, neon.h.
func DefaultOptions() Options {
	return Options{Include: "neon.h", Namespace: "neon"}
}

// Stats summarizes a run.
type Stats struct {
	Entries      int // entries generated
	Skipped      int // entries marked unsupported
	Declarations int // declarations written
}

// Generator orchestrates one generation run.
type Generator struct {
	Table   *optable.Table
	Options Options
	Logger  *slog.Logger // defaults to slog.Default()
}

// New returns a generator over table with default options.
func New(table *optable.Table) *Generator {
	return &Generator{Table: table, Options: DefaultOptions()}
}

// Run writes the include directive followed by every declaration the table
// implies, entry by entry in table order.
//
// The first strategy error aborts the run. Lines of earlier entries have
// already been written at that point; the failing entry contributes none.
func (g *Generator) Run(w io.Writer) (Stats, error) {
	var stats Stats
	if g.Table == nil {
		return stats, errors.New("no operation table")
	}
	log := g.Logger
	if log == nil {
		log = slog.Default()
	}

	out := bufio.NewWriter(w)
	log.Info("generating wrappers", "entries", g.Table.Len(), "include", g.Options.Include)

	if _, err := fmt.Fprintln(out, IncludeDirective(g.Options.Include)); err != nil {
		return stats, fmt.Errorf("write directive: %w", err)
	}

	for _, e := range g.Table.Entries() {
		if !e.Supported() {
			log.Debug("skipping unsupported operation", "op", e.Abbrev, "reason", e.Unsupported)
			stats.Skipped++
			continue
		}

		sigs, err := e.Strategy.Generate(e.Abbrev, e.Domain, e.Arity)
		if err != nil {
			if ferr := out.Flush(); ferr != nil {
				return stats, errors.Join(fmt.Errorf("%s: %w", e.Abbrev, err), ferr)
			}
			return stats, fmt.Errorf("%s: %w", e.Abbrev, err)
		}

		for _, sig := range sigs {
			if _, err := fmt.Fprintln(out, FormatDecl(sig, g.Options.Namespace)); err != nil {
				return stats, fmt.Errorf("%s: write: %w", e.Abbrev, err)
			}
		}
		stats.Entries++
		stats.Declarations += len(sigs)
		log.Debug("generated operation", "op", e.Abbrev, "strategy", e.Strategy.Kind(), "declarations", len(sigs))

		if err := out.Flush(); err != nil {
			return stats, fmt.Errorf("flush: %w", err)
		}
	}

	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("flush: %w", err)
	}
	log.Info("generation complete", "declarations", stats.Declarations, "skipped", stats.Skipped)
	return stats, nil
}
