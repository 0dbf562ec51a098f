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
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/neonapi/internal/gen"
	"github.com/ajroetker/neonapi/internal/optable"
)

// rootOptions holds flags shared by all commands.
type rootOptions struct {
	Verbose   bool
	TableFile string // YAML table; empty selects the built-in table
}

// generateOptions holds flags of the generating root command.
type generateOptions struct {
	OutFile   string
	Include   string
	Namespace string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	genOpts := &generateOptions{}
	defaults := gen.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "neongen",
		Short: "Generate typed NEON intrinsic wrappers",
		Long: "neongen expands an operation table into inline C++ wrappers named after the\n" +
			"NEON intrinsics (vadd_s8, vaddq_f32, ...) that forward to the neon:: primitives.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, genOpts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.TableFile, "table", "", "YAML operation table (default: built-in NEON table)")

	cmd.Flags().StringVarP(&genOpts.OutFile, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&genOpts.Include, "include", defaults.Include, "header named by the #include directive")
	cmd.Flags().StringVar(&genOpts.Namespace, "namespace", defaults.Namespace, "namespace of the primitive provider")

	cmd.AddCommand(newListCommand(opts, stdout))
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadTable(path string) (*optable.Table, error) {
	if path == "" {
		return optable.Default(), nil
	}
	t, err := optable.LoadFile(path)
	if err != nil {
		return nil, wrapExit(exitCommandError, "load table", err)
	}
	return t, nil
}

func runGenerate(opts *rootOptions, genOpts *generateOptions, stdout, stderr io.Writer) (err error) {
	table, err := loadTable(opts.TableFile)
	if err != nil {
		return err
	}

	out := stdout
	if genOpts.OutFile != "" {
		f, ferr := os.Create(genOpts.OutFile)
		if ferr != nil {
			return wrapExit(exitCommandError, "create output", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = wrapExit(exitCommandError, "close output", cerr)
			}
		}()
		out = f
	}

	g := gen.New(table)
	g.Options = gen.Options{Include: genOpts.Include, Namespace: genOpts.Namespace}
	g.Logger = newLogger(stderr, opts.Verbose)

	if _, err := g.Run(out); err != nil {
		return wrapExit(exitGenerate, "generate", err)
	}
	return nil
}
