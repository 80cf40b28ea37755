// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitFailure  = 2
)

// errFindings indicates that diagnostics with error severity have been printed.
var errFindings = errors.New("errors found")

// Main runs the refescape tool and returns the code for passing to [os.Exit].
func Main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
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
		fmt.Fprintln(stderr, "refescape:", err) // ignore error

		return exitFailure
	}
}

// newRootCmd creates the base command when called without any subcommands.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refescape",
		Short: "refescape checks that by-ref-like values never outlive the variables they reference.",
		Long: `refescape analyzes bound C# method bodies for values of by-ref-like types
(ref structs such as Span<T>) and references that could escape the scope of
the variables they refer to. Diagnostics follow the C# compiler's rules for
the selected language version.

Bound files are YAML or JSON documents produced by a binder front end, see
the documentation of package fillmore-labs.com/refescape/boundfile.`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.AddCommand(
		newCheckCmd(),
		newVersionCmd(),
	)

	return cmd
}
