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

package escape

import (
	"slices"

	"fillmore-labs.com/refescape/analyzer/level"
	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
	"fillmore-labs.com/refescape/internal/report"
	"fillmore-labs.com/refescape/internal/scope"
)

// Config selects the rule set of an analysis.
type Config struct {
	Version      level.Version
	StrictUnsafe bool
}

// env is the analysis state of one function body.
type env struct {
	cfg Config
	bag *report.Bag

	fn       *bound.Function
	receiver *bound.Type
	outer    *env

	locals   map[*bound.Local]scope.Pair
	depth    scope.Scope
	returnTo scope.Scope
	unsafe   bool

	err *InternalAnalysisError
}

func newEnv(cfg Config, bag *report.Bag, fn *bound.Function, receiver *bound.Type) *env {
	returnTo := scope.CallingMethod
	if cfg.Version == level.RefFields {
		returnTo = scope.ReturnOnly
	}

	return &env{
		cfg:      cfg,
		bag:      bag,
		fn:       fn,
		receiver: receiver,
		locals:   make(map[*bound.Local]scope.Pair),
		depth:    scope.CurrentMethod,
		returnTo: returnTo,
		unsafe:   fn.Unsafe,
	}
}

func (w *env) refFields() bool {
	return w.cfg.Version == level.RefFields
}

// fail reports a scope violation. Inside unsafe code a downgradable violation is
// reported as a warning and the check counts as passed.
func (w *env) fail(pos bound.Pos, kind diag.Kind, args ...string) bool {
	if w.unsafe && !w.cfg.StrictUnsafe && kind.Downgradable() {
		w.bag.Report(pos, kind, diag.Warning, args...)

		return true
	}

	w.bag.Report(pos, kind, diag.Error, args...)

	return false
}

// reject reports a violation that is never downgraded.
func (w *env) reject(pos bound.Pos, kind diag.Kind, args ...string) {
	w.bag.Report(pos, kind, diag.Error, args...)
}

// internal records the first inconsistency of the bound tree.
func (w *env) internal(pos bound.Pos, format string, args ...any) {
	if w.err == nil {
		w.err = newInternalError(pos, format, args...)
	}
}

// nested analyzes a lambda or local function as a separate body.
func (w *env) nested(fn *bound.Function) {
	if fn == nil {
		return
	}

	inner := newEnv(w.cfg, w.bag, fn, w.receiver)
	inner.outer = w
	inner.unsafe = w.unsafe || fn.Unsafe
	inner.body()

	if inner.err != nil {
		w.internal(inner.err.Pos, "%s", inner.err.Msg)
	}
}

// scoped runs f one block deeper.
func (w *env) scoped(f func()) {
	saved := w.depth
	w.depth = w.depth.Nested()

	f()

	w.depth = saved
}

// local returns the scopes of l. Locals captured from an enclosing body are hoisted
// and escape everywhere.
func (w *env) local(l *bound.Local, pos bound.Pos) scope.Pair {
	if p, ok := w.locals[l]; ok {
		return p
	}

	for o := w.outer; o != nil; o = o.outer {
		if _, ok := o.locals[l]; ok {
			return scope.Uniform(scope.CallingMethod)
		}
	}

	w.internal(pos, "local %q used before its declaration", l.Name)

	return scope.Uniform(scope.CallingMethod)
}

// ownParam reports whether p is a parameter of the analyzed body, not a captured one.
func (w *env) ownParam(p *bound.Parameter) bool {
	if w.outer == nil {
		return true
	}

	return w.fn.Sig != nil && slices.Contains(w.fn.Sig.Params, p)
}

func (w *env) thisIsValue() bool {
	return w.receiver.IsValueType()
}
