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
// Package run drives the analyses over a bound compilation.
package run

import (
	"context"
	"errors"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/refescape/analyzer/level"
	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
	"fillmore-labs.com/refescape/internal/boundutil"
	"fillmore-labs.com/refescape/internal/config"
	"fillmore-labs.com/refescape/internal/escape"
	"fillmore-labs.com/refescape/internal/guard"
	"fillmore-labs.com/refescape/internal/report"
)

// unit is a method selected for analysis.
type unit struct {
	file   *bound.File
	method *bound.Method
}

// Run executes the refescape pipeline over all files of c.
//
// Methods are analyzed in parallel. The result lists every file of c in order, each with
// the diagnostics of its methods in declaration order. The returned error is non-nil only
// when ctx is canceled.
func (o *Options) Run(ctx context.Context, c *bound.Compilation) (*diag.Result, error) {
	ctx, task := trace.NewTask(ctx, "RefEscape")
	defer task.End()

	units := o.selectUnits(c)
	bags := make([]*report.Bag, len(units))

	g, ctx := errgroup.WithContext(ctx)

	limit := o.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g.SetLimit(limit)

	for i, u := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			bags[i] = o.analyze(ctx, u)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return assemble(c, units, bags), nil
}

// selectUnits returns the methods to analyze, skipping generated files and nolint directives.
func (o *Options) selectUnits(c *bound.Compilation) []unit {
	if o.Checks.Empty() {
		return nil
	}

	var (
		units       []unit
		currentFile boundutil.CurrentFile
		current     = -1
	)

	for i, m := range boundutil.AllMethods(c.Files) {
		f := c.Files[i]

		// Remember the current file over all methods declared in it
		if i != current {
			currentFile, current = boundutil.NewCurrentFile(f), i
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		if currentFile.Skip(m) {
			continue
		}

		units = append(units, unit{file: f, method: m})
	}

	return units
}

// analyze runs the enabled checks on one method.
func (o *Options) analyze(ctx context.Context, u unit) *report.Bag {
	defer trace.StartRegion(ctx, "Method").End()

	trace.Log(ctx, "file", u.file.Name)

	bag := report.NewBag(u.method.Name())

	if o.Checks.Enabled(config.EscapeCheck) {
		cfg := escape.Config{Version: o.Version, StrictUnsafe: o.Unsafe == level.UnsafeStrict}

		if err := escape.Method(cfg, u.method, bag); err != nil {
			pos, msg := u.method.At, err.Error()

			var ie *escape.InternalAnalysisError
			if errors.As(err, &ie) {
				msg = ie.Msg
				if ie.Pos.IsValid() {
					pos = ie.Pos
				}
			}

			boundutil.InternalError(bag, pos, "%s in %s", msg, u.method.Name())
		}
	}

	guard.Method(guard.Config{
		Boundary:    o.Checks.Enabled(config.BoundaryCheck),
		Categorical: o.Checks.Enabled(config.CategoricalCheck),
	}, u.method, bag)

	return bag
}

func assemble(c *bound.Compilation, units []unit, bags []*report.Bag) *diag.Result {
	result := &diag.Result{Files: make([]diag.FileResult, len(c.Files))}

	index := make(map[*bound.File]int, len(c.Files))
	for i, f := range c.Files {
		if f == nil {
			continue
		}

		index[f] = i
		result.Files[i] = diag.FileResult{Name: f.Name, Diagnostics: []diag.Diagnostic{}}
	}

	for i, u := range units {
		fr := &result.Files[index[u.file]]
		fr.Diagnostics = append(fr.Diagnostics, bags[i].Diagnostics()...)
	}

	return result
}
