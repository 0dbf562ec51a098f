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
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/neonapi/internal/optable"
	"github.com/ajroetker/neonapi/internal/strategy"
)

// listedOp is one row of `neongen list`.
type listedOp struct {
	Abbrev      string   `json:"abbrev"`
	Strategy    string   `json:"strategy"`
	Arity       int      `json:"arity"`
	Domain      []string `json:"domain"`
	Unsupported string   `json:"unsupported,omitempty"`
}

func newListCommand(opts *rootOptions, stdout io.Writer) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the operation table",
		Long: "Print every operation in table order with its strategy, arity and element types.\n" +
			"Known operations that are not generated yet are listed with the reason.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(opts.TableFile)
			if err != nil {
				return err
			}
			switch format {
			case "text":
				return writeListText(stdout, table)
			case "json":
				return writeListJSON(stdout, table)
			}
			return wrapExit(exitCommandError, fmt.Sprintf("invalid format %q: must be text or json", format), nil)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")
	return cmd
}

func listRows(table *optable.Table) []listedOp {
	entries := table.Entries()
	rows := make([]listedOp, len(entries))
	for i, e := range entries {
		rows[i] = rowFor(e)
	}
	return rows
}

func rowFor(e optable.Entry) listedOp {
	domain := make([]string, len(e.Domain))
	for i, t := range e.Domain {
		domain[i] = t.Abbrev()
	}
	return listedOp{
		Abbrev:      e.Abbrev,
		Strategy:    e.Strategy.Kind().String(),
		Arity:       e.Arity,
		Domain:      domain,
		Unsupported: e.Unsupported,
	}
}

func writeListJSON(w io.Writer, table *optable.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listRows(table))
}

// writeListText prints an aligned table followed by a per-strategy summary.
func writeListText(w io.Writer, table *optable.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OP\tSTRATEGY\tARITY\tDOMAIN\tSTATUS")

	counts := make(map[strategy.Kind]int)
	for _, e := range table.Entries() {
		row := rowFor(e)
		status := "ok"
		if row.Unsupported != "" {
			status = "unsupported: " + row.Unsupported
		} else {
			counts[e.Strategy.Kind()]++
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			row.Abbrev, row.Strategy, row.Arity, strings.Join(row.Domain, ","), status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	title := cases.Title(language.English)
	fmt.Fprintln(w)
	for _, k := range strategy.Kinds() {
		if n := counts[k]; n > 0 {
			fmt.Fprintf(w, "%s: %d\n", title.String(k.String()), n)
		}
	}
	return nil
}
