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
	"fillmore-labs.com/refescape/internal/scope"
)

// valEscape computes the safe-to-escape scope of e.
func (w *env) valEscape(e bound.Expr) scope.Scope {
	if e == nil {
		return scope.CallingMethod
	}

	if t, ok := e.(*bound.Tuple); ok {
		s := scope.CallingMethod
		for _, el := range t.Elements {
			s = scope.Narrowest(s, w.valEscape(el))
		}

		return s
	}

	if !e.Type().IsRefLike() {
		return scope.CallingMethod
	}

	switch e := e.(type) {
	case *bound.StackAlloc:
		return scope.CurrentMethod

	case *bound.LocalRef:
		return w.local(e.Local, e.At).Val

	case *bound.OutVar:
		return w.local(e.Local, e.At).Val

	case *bound.ParamRef:
		return w.paramValEscape(e.Param)

	case *bound.FieldAccess:
		if e.Receiver == nil || e.Field.Static {
			return scope.CallingMethod
		}

		return w.valEscape(e.Receiver)

	case *bound.Call:
		return w.invocationEscape(e.Sig, e.Receiver, e.Args, false)

	case *bound.ObjectCreation:
		return w.creationEscape(e)

	case *bound.Conditional:
		return scope.Narrowest(w.valEscape(e.WhenTrue), w.valEscape(e.WhenFalse))

	case *bound.Coalesce:
		return scope.Narrowest(w.valEscape(e.Left), w.valEscape(e.Right))

	case *bound.Assignment:
		return w.valEscape(e.Target)

	case *bound.Unary:
		if e.Method != nil {
			return w.invocationEscape(e.Method, nil, operands(e.Operand), false)
		}

		return w.valEscape(e.Operand)

	case *bound.Binary:
		if e.Method != nil {
			return w.invocationEscape(e.Method, nil, operands(e.Left, e.Right), false)
		}

		return scope.Narrowest(w.valEscape(e.Left), w.valEscape(e.Right))

	case *bound.Conversion:
		if e.Method != nil {
			return w.invocationEscape(e.Method, nil, operands(e.Operand), false)
		}

		return w.valEscape(e.Operand)

	case *bound.Literal, *bound.DefaultValue, *bound.ThisRef, *bound.Discard,
		*bound.ArrayElement, *bound.PointerDeref, *bound.Await, *bound.ThrowExpr,
		*bound.Lambda, *bound.IsPattern, *bound.Deconstruction, *bound.ArrayCreation,
		*bound.BadExpr:
		return scope.CallingMethod

	default:
		w.internal(e.Pos(), "unexpected expression %T", e)

		return scope.CallingMethod
	}
}

// refEscape computes the ref-safe-to-escape scope of e. Expressions that are not
// variables are temporaries of the current block.
func (w *env) refEscape(e bound.Expr) scope.Scope {
	switch e := e.(type) {
	case *bound.LocalRef:
		return w.local(e.Local, e.At).Ref

	case *bound.OutVar:
		return w.local(e.Local, e.At).Ref

	case *bound.ParamRef:
		return w.paramRefEscape(e.Param)

	case *bound.ThisRef:
		if w.thisIsValue() {
			return scope.CurrentMethod
		}

	case *bound.FieldAccess:
		switch {
		case e.Receiver == nil || e.Field.Static:
			return scope.CallingMethod

		case e.Field.RefKind.IsRef():
			return w.valEscape(e.Receiver)

		case !e.Receiver.Type().IsValueType():
			return scope.CallingMethod

		default:
			return w.refEscape(e.Receiver)
		}

	case *bound.ArrayElement, *bound.PointerDeref:
		return scope.CallingMethod

	case *bound.Call:
		if e.Sig.RefReturn.IsRef() {
			return w.invocationEscape(e.Sig, e.Receiver, e.Args, true)
		}

	case *bound.Conditional:
		if e.IsRef {
			return scope.Narrowest(w.refEscape(e.WhenTrue), w.refEscape(e.WhenFalse))
		}

	case *bound.Assignment:
		if e.IsRef {
			return w.refEscape(e.Target)
		}
	}

	return w.depth
}

func (w *env) paramValEscape(p *bound.Parameter) scope.Scope {
	if w.ownParam(p) && p.Scoped && p.RefKind == bound.RefNone {
		return scope.CurrentMethod
	}

	return scope.CallingMethod
}

func (w *env) paramRefEscape(p *bound.Parameter) scope.Scope {
	switch {
	case !w.ownParam(p):
		return scope.CallingMethod

	case p.RefKind == bound.RefNone, p.Scoped:
		return scope.CurrentMethod

	case !w.refFields():
		return scope.CallingMethod

	case p.RefKind == bound.RefOut:
		return scope.CurrentMethod

	default:
		return scope.ReturnOnly
	}
}

// isLValue reports whether e denotes a variable that can be passed or returned by reference.
func (w *env) isLValue(e bound.Expr) bool {
	switch e := e.(type) {
	case *bound.LocalRef, *bound.ParamRef, *bound.FieldAccess, *bound.ArrayElement,
		*bound.PointerDeref, *bound.OutVar:
		return true

	case *bound.ThisRef:
		return w.thisIsValue()

	case *bound.Call:
		return e.Sig.RefReturn.IsRef()

	case *bound.Conditional:
		return e.IsRef

	case *bound.Assignment:
		return e.IsRef

	default:
		return false
	}
}

// operands wraps the operands of a user-defined operator as by-value arguments.
func operands(es ...bound.Expr) []*bound.Argument {
	args := make([]*bound.Argument, 0, len(es))
	for _, e := range es {
		args = append(args, &bound.Argument{Expr: e})
	}

	return args
}
