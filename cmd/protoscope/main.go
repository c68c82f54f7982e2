// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Command protoscope reports legacy prototype composition patterns in JavaScript sources.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fillmore-labs.com/protoscope/internal/level"
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

// errFindings signals that diagnostics were reported.
var errFindings = errors.New("diagnostics reported")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	switch err := cmd.ExecuteContext(ctx); {
	case err == nil:
		return exitOK

	case errors.Is(err, errFindings):
		return exitFindings

	default:
		_, _ = fmt.Fprintf(stderr, "protoscope: %v\n", err)

		return exitError
	}
}

// globalOptions holds the flags shared by all commands.
type globalOptions struct {
	config  string
	format  level.Format
	color   level.Color
	verbose bool

	stdout, stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalOptions{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "protoscope",
		Short:         "Report legacy prototype composition in JavaScript",
		Long:          "protoscope recognizes merged objects, synthetic inheritance helpers,\nsuperclass dispatch calls and implicit this usage in JavaScript sources.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.config, "config", "", "YAML configuration file")
	flags.Var(&g.format, "format", "output format (text|json)")
	flags.Var(&g.color, "color", "colorize output (auto|on|off)")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newCheckCmd(g))
	cmd.AddCommand(newMembersCmd(g))

	return cmd
}

// logger returns a text logger on stderr.
func (g *globalOptions) logger() *slog.Logger {
	lvl := slog.LevelWarn
	if g.verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(g.stderr, &slog.HandlerOptions{Level: lvl}))
}

// colored reports whether output to stdout is colored.
func (g *globalOptions) colored() bool {
	terminal := false
	if f, ok := g.stdout.(*os.File); ok {
		terminal = term.IsTerminal(int(f.Fd()))
	}

	return g.color.Enabled(terminal)
}
