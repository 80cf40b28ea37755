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

// Package guard rejects by-ref-like values in places they can never live: across suspension
// points of async methods and iterators, captured by nested functions, and in type positions
// that would move them to the heap.
//
// The checks are independent of escape scopes. Any appearance of a by-ref-like type in one of
// these positions is an error.
package guard

import (
	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
	"fillmore-labs.com/refescape/internal/report"
)

// Config selects the checks to run.
type Config struct {
	// Boundary enables the suspension point and capture checks.
	Boundary bool

	// Categorical enables the array element, type argument and nullable checks.
	Categorical bool
}

// Method checks m, reporting violations to bag.
func Method(cfg Config, m *bound.Method, bag *report.Bag) {
	if !cfg.Boundary && !cfg.Categorical {
		return
	}

	c := checker{cfg: cfg, bag: bag}
	c.function(&m.Function, nil)
}

type checker struct {
	cfg Config
	bag *report.Bag
}

// function checks fn and the functions nested in it.
func (c *checker) function(fn *bound.Function, outer *frame) {
	if fn == nil {
		return
	}

	f := newFrame(fn, outer)

	if fn.Sig != nil {
		for _, p := range fn.Sig.Params {
			c.typ(fn.At, p.Type)

			if c.cfg.Boundary && f.suspension != nil && p.Type.IsRefLike() {
				c.bag.Report(fn.At, f.suspension.byRefLike, diag.Error, p.Type.String())
			}
		}

		c.typ(fn.At, fn.Sig.Return)
	}

	if fn.Body == nil {
		return
	}

	bound.Inspect(fn.Body, func(n bound.Node) bool {
		switch n := n.(type) {
		case *bound.Function:
			c.function(n, f)

			return false

		case *bound.LocalDecl:
			c.declare(f, n.Local, n.At)

		case *bound.Foreach:
			if n.Local != nil {
				c.declare(f, n.Local, n.At)
			}

		case *bound.SwitchSection:
			for _, l := range n.Declared {
				c.declare(f, l, l.At)
			}

		case *bound.IsPattern:
			for _, l := range n.Declared {
				c.declare(f, l, l.At)
			}

		case *bound.OutVar:
			c.declare(f, n.Local, n.At)

		case *bound.LocalRef:
			if !f.ownsLocal(n.Local) {
				c.capture(f, n.At, n.Local.Type)
			}

		case *bound.ParamRef:
			if !f.ownsParam(n.Param) {
				c.capture(f, n.At, n.Param.Type)
			}

		case *bound.ThisRef:
			c.capture(f, n.At, n.T)

		case *bound.Call:
			c.typeArgs(n.At, n.TypeArgs)

		case *bound.ArrayCreation:
			c.element(n.At, n.Elem)

		case *bound.ObjectCreation, *bound.DefaultValue, *bound.Conversion:
			c.typ(n.Pos(), n.(bound.Expr).Type())
		}

		return true
	})
}

// declare checks a local declared in f.
func (c *checker) declare(f *frame, l *bound.Local, pos bound.Pos) {
	f.locals[l] = struct{}{}

	c.typ(pos, l.Type)

	if !c.cfg.Boundary || f.suspension == nil {
		return
	}

	if l.RefKind.IsRef() {
		c.bag.Report(pos, f.suspension.refLocal, diag.Error)
	}

	if l.Type.IsRefLike() {
		c.bag.Report(pos, f.suspension.byRefLike, diag.Error, l.Type.String())
	}
}

// capture checks a variable of type t used in f. Only nested functions capture.
func (c *checker) capture(f *frame, pos bound.Pos, t *bound.Type) {
	if !c.cfg.Boundary || f.outer == nil || !t.IsRefLike() {
		return
	}

	c.bag.Report(pos, diag.SpecialByRefInLambda, diag.Error, t.String())
}
