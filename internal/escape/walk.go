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

// body walks the function body at method depth.
func (w *env) body() {
	if w.fn.Body == nil {
		return
	}

	w.stmts(w.fn.Body.Stmts)
}

func (w *env) stmts(list []bound.Stmt) {
	for _, s := range list {
		w.stmt(s)
	}
}

// embedded walks the body of a compound statement in its own block.
func (w *env) embedded(s bound.Stmt) {
	if s == nil {
		return
	}

	if _, ok := s.(*bound.Block); ok {
		w.stmt(s)

		return
	}

	w.scoped(func() { w.stmt(s) })
}

func (w *env) stmt(s bound.Stmt) {
	switch s := s.(type) {
	case nil:

	case *bound.Block:
		w.scoped(func() { w.stmts(s.Stmts) })

	case *bound.LocalDecl:
		w.declare(s)

	case *bound.ExprStmt:
		w.expr(s.X)

	case *bound.Return:
		w.ret(s)

	case *bound.YieldReturn:
		w.expr(s.Value)
		w.checkVal(s.Value, scope.CallingMethod, false)

	case *bound.YieldBreak:

	case *bound.If:
		w.expr(s.Cond)
		w.embedded(s.Then)
		w.embedded(s.Else)

	case *bound.While:
		w.expr(s.Cond)
		w.embedded(s.Body)

	case *bound.For:
		w.scoped(func() {
			w.stmts(s.Init)
			w.expr(s.Cond)
			w.embedded(s.Body)

			for _, e := range s.Post {
				w.expr(e)
			}
		})

	case *bound.Foreach:
		w.foreach(s)

	case *bound.Switch:
		w.expr(s.Subject)

		val := w.valEscape(s.Subject)
		for _, sec := range s.Sections {
			w.scoped(func() {
				for _, l := range sec.Declared {
					w.declarePattern(l, val)
				}

				w.stmts(sec.Stmts)
			})
		}

	case *bound.Unsafe:
		saved := w.unsafe
		w.unsafe = true
		w.stmt(s.Body)
		w.unsafe = saved

	case *bound.LocalFunction:
		w.nested(s.Func)

	case *bound.Throw:
		w.expr(s.Value)

	default:
		w.internal(s.Pos(), "unexpected statement %T", s)
	}
}

func (w *env) ret(s *bound.Return) {
	w.expr(s.Value)

	if s.Value == nil {
		return
	}

	if s.IsRef {
		if !w.checkRef(s.Value, w.returnTo, false) {
			return
		}
	}

	w.checkVal(s.Value, w.returnTo, false)
}

// declare computes the scopes of a local from its initializer.
func (w *env) declare(d *bound.LocalDecl) {
	l := d.Local

	// visible in its own initializer
	w.locals[l] = scope.Uniform(w.depth)

	if d.Init == nil {
		w.locals[l] = scope.Pair{Ref: w.depth, Val: scope.CallingMethod}

		return
	}

	w.expr(d.Init)

	if l.RefKind.IsRef() {
		if !w.isLValue(d.Init) {
			w.reject(d.Init.Pos(), diag.RefLvalueExpected)
			w.locals[l] = scope.Pair{Ref: w.depth, Val: w.localVal(l, d.Init)}

			return
		}

		ref := w.refEscape(d.Init)
		if l.Scoped {
			ref = w.depth
		}

		w.locals[l] = scope.Pair{Ref: ref, Val: w.localVal(l, d.Init)}.ForLocal()

		return
	}

	val := w.localVal(l, d.Init)
	if l.Scoped && l.Type.IsRefLike() {
		val = w.depth
	}

	w.locals[l] = scope.Pair{Ref: w.depth, Val: val}.ForLocal()
}

func (w *env) localVal(l *bound.Local, init bound.Expr) scope.Scope {
	if !l.Type.IsRefLike() {
		return scope.CallingMethod
	}

	return w.valEscape(init)
}

// declarePattern declares a local bound from a value with scope val.
func (w *env) declarePattern(l *bound.Local, val scope.Scope) {
	p := scope.Pair{Ref: w.depth, Val: scope.CallingMethod}
	if l.Type.IsRefLike() {
		p.Val = val
	}

	w.locals[l] = p.ForLocal()
}

func (w *env) foreach(s *bound.Foreach) {
	w.expr(s.Collection)

	val := w.valEscape(s.Collection)

	w.scoped(func() {
		if l := s.Local; l != nil {
			w.declarePattern(l, val)

			if l.RefKind.IsRef() {
				p := w.locals[l]
				p.Ref = val
				w.locals[l] = p.ForLocal()
			}
		}

		for _, t := range s.Targets {
			w.declareTargets(t, val)
		}

		w.embedded(s.Body)
	})
}

// expr walks e, declaring out variables and pattern locals and validating
// nested assignments, invocations and ternaries.
func (w *env) expr(e bound.Expr) {
	switch e := e.(type) {
	case nil:

	case *bound.Literal, *bound.DefaultValue, *bound.LocalRef, *bound.ParamRef,
		*bound.ThisRef, *bound.Discard:

	case *bound.StackAlloc:
		w.expr(e.Count)
		w.exprs(e.Init)

	case *bound.FieldAccess:
		w.expr(e.Receiver)

	case *bound.ArrayElement:
		w.expr(e.Array)
		w.exprs(e.Indices)

	case *bound.PointerDeref:
		w.expr(e.Operand)

	case *bound.Call:
		w.expr(e.Receiver)
		w.args(e.Args)
		w.checkArgMixing(e, e.Sig, e.Receiver, e.Args)

	case *bound.ObjectCreation:
		w.args(e.Args)

		for _, init := range e.Init {
			w.expr(init.Value)
			w.args(init.Args)
		}

		w.checkArgMixing(e, e.Sig, nil, e.Args)

		for _, init := range e.Init {
			if init.Add != nil {
				w.checkArgMixing(init, init.Add, nil, init.Args)
			}
		}

	case *bound.Conditional:
		w.expr(e.Cond)
		w.expr(e.WhenTrue)
		w.expr(e.WhenFalse)

		if e.IsRef {
			w.checkRefTernary(e)
		}

	case *bound.Coalesce:
		w.expr(e.Left)
		w.expr(e.Right)

	case *bound.Assignment:
		w.expr(e.Target)
		w.expr(e.Value)
		w.assign(e)

	case *bound.OutVar:
		w.locals[e.Local] = scope.Pair{Ref: w.depth, Val: scope.CallingMethod}

	case *bound.Unary:
		w.expr(e.Operand)

		if e.Method != nil {
			w.checkArgMixing(e, e.Method, nil, operands(e.Operand))
		}

	case *bound.Binary:
		w.expr(e.Left)
		w.expr(e.Right)

		if e.Method != nil {
			w.checkArgMixing(e, e.Method, nil, operands(e.Left, e.Right))
		}

	case *bound.Conversion:
		w.expr(e.Operand)

		if e.Method != nil {
			w.checkArgMixing(e, e.Method, nil, operands(e.Operand))
		}

	case *bound.Tuple:
		w.exprs(e.Elements)

	case *bound.Deconstruction:
		w.deconstruct(e)

	case *bound.Lambda:
		w.nested(e.Func)

	case *bound.Await:
		w.expr(e.Operand)

	case *bound.ThrowExpr:
		w.expr(e.Operand)

	case *bound.IsPattern:
		w.expr(e.Operand)

		val := w.valEscape(e.Operand)
		for _, l := range e.Declared {
			w.declarePattern(l, val)
		}

	case *bound.ArrayCreation:
		w.exprs(e.Sizes)
		w.exprs(e.Init)

	case *bound.BadExpr:
		w.exprs(e.Children)

	default:
		w.internal(e.Pos(), "unexpected expression %T", e)
	}
}

func (w *env) exprs(list []bound.Expr) {
	for _, e := range list {
		w.expr(e)
	}
}

func (w *env) args(list []*bound.Argument) {
	for _, a := range list {
		if !a.Omitted {
			w.expr(a.Expr)
		}
	}
}
