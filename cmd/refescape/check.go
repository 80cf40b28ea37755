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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fillmore-labs.com/refescape/analyzer"
	"fillmore-labs.com/refescape/boundfile"
	"fillmore-labs.com/refescape/diag"
	"fillmore-labs.com/refescape/internal/report"
	"fillmore-labs.com/refescape/settings"
)

var (
	errUnknownFormat = errors.New("unknown output format")
	errUnknownColor  = errors.New("unknown color mode")
	errNoFiles       = errors.New("no bound files found")
)

type checkFlags struct {
	format  string
	color   string
	config  string
	watch   bool
	verbose bool
}

func newCheckCmd() *cobra.Command {
	var f checkFlags

	// base carries the analyzer flags and their defaults
	base := analyzer.New()

	cmd := &cobra.Command{
		Use:   "check [flags] path...",
		Short: "analyze bound files",
		Long: `check analyzes the given bound files and directories and prints one line
per diagnostic. Settings are read from --config or from .refescape.yaml,
.refescape.yml or .refescape.json in the current directory; command line
flags take precedence.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, base, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.format, "format", "text", "output format: text or json")
	fs.StringVar(&f.color, "color", "auto", "colorize text output: auto, always or never")
	fs.StringVar(&f.config, "config", "", "configuration file")
	fs.BoolVarP(&f.watch, "watch", "w", false, "re-run the analysis when an input file changes")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.AddGoFlagSet(&base.Flags)

	return cmd
}

type writer func(w io.Writer, run uuid.UUID, version string, r *diag.Result) error

func (f *checkFlags) run(cmd *cobra.Command, base *analyzer.Analyzer, args []string) error {
	ctx := cmd.Context()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	logLevel := slog.LevelWarn
	if f.verbose {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	write, err := f.writer(stdout)
	if err != nil {
		return err
	}

	opts, err := f.options()
	if err != nil {
		return err
	}

	a := analyzer.New(opts...)

	// command line flags override the configuration file
	cmd.Flags().Visit(func(fl *pflag.Flag) {
		if base.Flags.Lookup(fl.Name) != nil {
			err = errors.Join(err, a.Flags.Set(fl.Name, fl.Value.String()))
		}
	})

	if err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "configured", opts.LogAttr(), slog.String("version", a.Version().String()))

	// directories are expanded on every run, so watch mode sees added files
	check := func() error {
		paths, err := boundfile.Expand(args)
		if err != nil {
			return err
		}

		if len(paths) == 0 {
			return errNoFiles
		}

		runID, start := uuid.New(), time.Now()

		r, err := a.Check(ctx, paths...)
		if err != nil {
			return err
		}

		logger.LogAttrs(ctx, slog.LevelInfo, "analyzed",
			slog.String("run", runID.String()),
			slog.Int("files", len(paths)),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("summary", report.Summary(r)))

		if err := write(stdout, runID, a.Version().String(), r); err != nil {
			return err
		}

		if errs, _ := r.Counts(); errs > 0 {
			return errFindings
		}

		return nil
	}

	if f.watch {
		return watch(ctx, logger, args, check)
	}

	return check()
}

// options reads the configuration file, if any.
func (f *checkFlags) options() (analyzer.Options, error) {
	name := f.config
	if name == "" {
		var ok bool
		if name, ok = settings.Find("."); !ok {
			return nil, nil
		}
	}

	s, err := settings.Load(name)
	if err != nil {
		return nil, err
	}

	return s.Options(), nil
}

func (f *checkFlags) writer(stdout io.Writer) (writer, error) {
	switch f.format {
	case "text":
		color, err := useColor(f.color, stdout)
		if err != nil {
			return nil, err
		}

		return func(w io.Writer, _ uuid.UUID, _ string, r *diag.Result) error {
			return report.WriteText(w, r, color)
		}, nil

	case "json":
		return func(w io.Writer, run uuid.UUID, version string, r *diag.Result) error {
			return report.WriteJSON(w, report.NewDocument(run, version, r))
		}, nil

	default:
		return nil, fmt.Errorf("%w %q", errUnknownFormat, f.format)
	}
}

// useColor decides whether text output is colorized.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil

	case "never":
		return false, nil

	case "auto":
		f, ok := w.(interface{ Fd() uintptr })

		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil

	default:
		return false, fmt.Errorf("%w %q", errUnknownColor, mode)
	}
}
