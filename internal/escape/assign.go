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
	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
	"fillmore-labs.com/refescape/internal/scope"
)

// assign validates a value or ref assignment.
func (w *env) assign(e *bound.Assignment) {
	if e.IsRef {
		w.refAssign(e)

		return
	}

	switch e.Target.(type) {
	case *bound.Discard:
		return

	case *bound.ThisRef:
		if !w.thisIsValue() {
			w.reject(e.Target.Pos(), diag.AssignReadonlyThis)

			return
		}
	}

	if !e.Target.Type().IsRefLike() {
		return
	}

	w.checkVal(e.Value, w.valEscape(e.Target), false)
}

// refAssign validates target = ref value. The target keeps its declared scopes.
func (w *env) refAssign(e *bound.Assignment) {
	var name string

	switch t := e.Target.(type) {
	case *bound.LocalRef:
		if t.Local.RefKind.IsRef() {
			name = t.Local.Name
		}

	case *bound.ParamRef:
		if t.Param.RefKind.IsRef() {
			name = t.Param.Name
		}

	case *bound.FieldAccess:
		if t.Field.RefKind.IsRef() {
			name = bound.Text(t)
		}
	}

	if name == "" {
		w.reject(e.Target.Pos(), diag.RefLocalOrParamExpected)

		return
	}

	if !w.isLValue(e.Value) {
		w.reject(e.Value.Pos(), diag.RefLvalueExpected)

		return
	}

	if w.refEscape(e.Value).NarrowerThan(w.refEscape(e.Target)) {
		w.fail(e.At, diag.RefAssignNarrower, name, bound.Text(e.Value))

		return
	}

	if e.Target.Type().IsRefLike() {
		w.checkVal(e.Value, w.valEscape(e.Target), false)
	}
}

// checkRefTernary requires both branches of a ref ternary to have the same safe-to-escape scope.
func (w *env) checkRefTernary(e *bound.Conditional) {
	t, f := w.valEscape(e.WhenTrue), w.valEscape(e.WhenFalse)
	if t == f {
		return
	}

	if t.NarrowerThan(f) {
		w.checkVal(e.WhenTrue, f, false)
	} else {
		w.checkVal(e.WhenFalse, t, false)
	}

	w.fail(e.At, diag.MismatchedRefEscapeInTernary)
}

// deconstruct validates (targets) = source.
func (w *env) deconstruct(e *bound.Deconstruction) {
	w.expr(e.Source)
	w.visitTargets(e.Targets)

	if e.Method == nil {
		w.deconstructInto(e.Targets, e.Source)

		return
	}

	if e.Extension && len(e.Method.Params) > 0 && e.Method.Params[0].RefKind == bound.RefRef {
		// the receiver of a deconstruction is not a variable
		w.reject(e.At, diag.RefLvalueExpected)

		return
	}

	if !w.deconstructAll(e.Targets, e.Source) {
		return
	}

	receiver := e.Source

	args := make([]*bound.Argument, 0, len(e.Targets)+1)
	if e.Extension {
		receiver = nil

		var kind bound.RefKind
		if len(e.Method.Params) > 0 {
			kind = e.Method.Params[0].RefKind
		}

		args = append(args, &bound.Argument{Expr: e.Source, RefKind: kind})
	}

	for _, t := range e.Targets {
		if _, ok := t.(*bound.Tuple); ok {
			// nested deconstruction receives a temporary
			t = &bound.Discard{Base: bound.Base{At: t.Pos()}}
		}

		args = append(args, &bound.Argument{Expr: t, RefKind: bound.RefOut})
	}

	w.checkArgMixing(e, e.Method, receiver, args)
}

// deconstructInto assigns a tuple literal element-wise and anything else as a whole.
func (w *env) deconstructInto(targets []bound.Expr, source bound.Expr) {
	tuple, ok := source.(*bound.Tuple)
	if !ok || len(tuple.Elements) != len(targets) {
		w.deconstructAll(targets, source)

		return
	}

	for i, t := range targets {
		el := tuple.Elements[i]

		switch t := t.(type) {
		case *bound.Tuple:
			w.deconstructInto(t.Elements, el)

		case *bound.Discard:

		case *bound.OutVar:
			w.declarePattern(t.Local, w.valEscape(el))

		default:
			if t.Type().IsRefLike() {
				w.checkVal(el, w.valEscape(t), false)
			}
		}
	}
}

// deconstructAll declares the target variables from source and checks source against
// the widest ref-like target.
func (w *env) deconstructAll(targets []bound.Expr, source bound.Expr) bool {
	val := w.valEscape(source)
	escapeTo := w.depth
	checked := false

	var walk func([]bound.Expr)
	walk = func(targets []bound.Expr) {
		for _, t := range targets {
			switch t := t.(type) {
			case *bound.Tuple:
				walk(t.Elements)

			case *bound.Discard:

			case *bound.OutVar:
				w.declarePattern(t.Local, val)

			default:
				if t.Type().IsRefLike() {
					escapeTo = scope.Widest(escapeTo, w.valEscape(t))
					checked = true
				}
			}
		}
	}
	walk(targets)

	if !checked {
		return true
	}

	return w.checkVal(source, escapeTo, false)
}

// declareTargets declares the out variables of a deconstructing foreach.
func (w *env) declareTargets(t bound.Expr, val scope.Scope) {
	switch t := t.(type) {
	case *bound.Tuple:
		for _, el := range t.Elements {
			w.declareTargets(el, val)
		}

	case *bound.OutVar:
		w.declarePattern(t.Local, val)

	default:
		w.expr(t)
	}
}

// visitTargets walks the subexpressions of assignable targets.
func (w *env) visitTargets(targets []bound.Expr) {
	for _, t := range targets {
		switch t := t.(type) {
		case *bound.Tuple:
			w.visitTargets(t.Elements)

		case *bound.OutVar, *bound.Discard:

		default:
			w.expr(t)
		}
	}
}
