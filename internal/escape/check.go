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

// pick selects the member variant of a diagnostic while a receiver is checked.
func pick(checkingReceiver bool, direct, member diag.Kind) diag.Kind {
	if checkingReceiver {
		return member
	}

	return direct
}

// checkVal reports whether the value of e can escape to scope to, reporting the
// innermost offending operand otherwise.
func (w *env) checkVal(e bound.Expr, to scope.Scope, checkingReceiver bool) bool {
	if e == nil || w.depth.ConvertibleTo(to) {
		return true
	}

	if t, ok := e.(*bound.Tuple); ok {
		for _, el := range t.Elements {
			if !w.checkVal(el, to, checkingReceiver) {
				return false
			}
		}

		return true
	}

	if !e.Type().IsRefLike() {
		return true
	}

	switch e := e.(type) {
	case *bound.LocalRef:
		return w.local(e.Local, e.At).Val.ConvertibleTo(to) || w.fail(e.At, diag.EscapeVariable, e.Local.Name)

	case *bound.OutVar:
		return w.local(e.Local, e.At).Val.ConvertibleTo(to) || w.fail(e.At, diag.EscapeVariable, e.Local.Name)

	case *bound.ParamRef:
		return w.paramValEscape(e.Param).ConvertibleTo(to) || w.fail(e.At, diag.EscapeVariable, e.Param.Name)

	case *bound.StackAlloc:
		return scope.CurrentMethod.ConvertibleTo(to) || w.fail(e.At, diag.EscapeStackAlloc, e.T.String())

	case *bound.FieldAccess:
		if e.Receiver == nil || e.Field.Static {
			return true
		}

		return w.checkVal(e.Receiver, to, true)

	case *bound.Call:
		return w.checkInvocation(e, e.Sig, e.Receiver, e.Args, to, false, checkingReceiver)

	case *bound.ObjectCreation:
		return w.checkCreation(e, to, checkingReceiver)

	case *bound.Conditional:
		return w.checkVal(e.WhenTrue, to, checkingReceiver) && w.checkVal(e.WhenFalse, to, checkingReceiver)

	case *bound.Coalesce:
		return w.checkVal(e.Left, to, checkingReceiver) && w.checkVal(e.Right, to, checkingReceiver)

	case *bound.Assignment:
		return w.checkVal(e.Target, to, checkingReceiver)

	case *bound.Unary:
		if e.Method != nil {
			return w.checkInvocation(e, e.Method, nil, operands(e.Operand), to, false, checkingReceiver)
		}

		return w.checkVal(e.Operand, to, checkingReceiver)

	case *bound.Binary:
		if e.Method != nil {
			return w.checkInvocation(e, e.Method, nil, operands(e.Left, e.Right), to, false, checkingReceiver)
		}

		return w.checkVal(e.Left, to, checkingReceiver) && w.checkVal(e.Right, to, checkingReceiver)

	case *bound.Conversion:
		if e.Method != nil {
			return w.checkInvocation(e, e.Method, nil, operands(e.Operand), to, false, checkingReceiver)
		}

		return w.checkVal(e.Operand, to, checkingReceiver)

	default:
		return w.valEscape(e).ConvertibleTo(to) || w.fail(e.Pos(), diag.EscapeOther)
	}
}

// checkRef reports whether a reference to e can escape to scope to.
func (w *env) checkRef(e bound.Expr, to scope.Scope, checkingReceiver bool) bool {
	if e == nil || w.depth.ConvertibleTo(to) {
		return true
	}

	switch e := e.(type) {
	case *bound.LocalRef:
		return w.checkLocalRef(e.Local, e.At, to, checkingReceiver)

	case *bound.OutVar:
		return w.checkLocalRef(e.Local, e.At, to, checkingReceiver)

	case *bound.ParamRef:
		return w.checkParamRef(e.Param, e.At, to, checkingReceiver)

	case *bound.ThisRef:
		if !w.thisIsValue() {
			break
		}

		if scope.CurrentMethod.ConvertibleTo(to) {
			return true
		}

		if to.Returnable() {
			return w.fail(e.At, diag.RefReturnStructThis)
		}

		return w.fail(e.At, diag.EscapeVariable, "this")

	case *bound.FieldAccess:
		switch {
		case e.Receiver == nil || e.Field.Static:
			return true

		case e.Field.RefKind.IsRef():
			return w.checkVal(e.Receiver, to, true)

		case !e.Receiver.Type().IsValueType():
			return true

		default:
			return w.checkRef(e.Receiver, to, true)
		}

	case *bound.ArrayElement, *bound.PointerDeref:
		return true

	case *bound.Call:
		if e.Sig.RefReturn.IsRef() {
			return w.checkInvocation(e, e.Sig, e.Receiver, e.Args, to, true, checkingReceiver)
		}

	case *bound.Conditional:
		if e.IsRef {
			return w.checkRef(e.WhenTrue, to, checkingReceiver) && w.checkRef(e.WhenFalse, to, checkingReceiver)
		}

	case *bound.Assignment:
		if e.IsRef {
			return w.checkRef(e.Target, to, checkingReceiver)
		}

	case *bound.Discard:
		w.reject(e.At, diag.RefReturnLvalueExpected)

		return false
	}

	// not a variable
	if to.Returnable() {
		w.reject(e.Pos(), diag.RefReturnLvalueExpected)

		return false
	}

	return w.fail(e.Pos(), diag.EscapeOther)
}

func (w *env) checkLocalRef(l *bound.Local, pos bound.Pos, to scope.Scope, checkingReceiver bool) bool {
	if w.local(l, pos).Ref.ConvertibleTo(to) {
		return true
	}

	switch {
	case !to.Returnable():
		return w.fail(pos, diag.EscapeVariable, l.Name)

	case l.RefKind == bound.RefNone:
		return w.fail(pos, pick(checkingReceiver, diag.RefReturnLocal, diag.RefReturnLocal2), l.Name)

	default:
		return w.fail(pos, pick(checkingReceiver, diag.RefReturnNonreturnableLocal, diag.RefReturnNonreturnableLocal2), l.Name)
	}
}

func (w *env) checkParamRef(p *bound.Parameter, pos bound.Pos, to scope.Scope, checkingReceiver bool) bool {
	s := w.paramRefEscape(p)
	if s.ConvertibleTo(to) {
		return true
	}

	switch {
	case s == scope.ReturnOnly:
		return w.fail(pos, pick(checkingReceiver, diag.RefReturnOnlyParameter, diag.RefReturnOnlyParameter2), p.Name)

	case !to.Returnable():
		return w.fail(pos, diag.EscapeVariable, p.Name)

	case p.RefKind == bound.RefNone && !p.Scoped:
		return w.fail(pos, pick(checkingReceiver, diag.RefReturnParameter, diag.RefReturnParameter2), p.Name)

	default:
		return w.fail(pos, pick(checkingReceiver, diag.RefReturnScopedParameter, diag.RefReturnScopedParameter2), p.Name)
	}
}
