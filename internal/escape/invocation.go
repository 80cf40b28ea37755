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
	"iter"

	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
	"fillmore-labs.com/refescape/internal/scope"
)

// contribution is an operand whose escape scope bounds the result of an invocation.
type contribution struct {
	expr  bound.Expr
	param *bound.Parameter // nil for the receiver

	// ref selects the ref-safe-to-escape scope instead of the safe-to-escape scope.
	ref bool

	// omitted is an optional argument, which is a temporary of the current block.
	omitted bool
}

// contributions yields the operands that may be captured by the result of invoking sig,
// receiver first, then each argument with its value before its reference.
func (w *env) contributions(sig *bound.Signature, receiver bound.Expr, args []*bound.Argument, isRef bool) iter.Seq[contribution] {
	return func(yield func(contribution) bool) {
		if receiver != nil && !sig.Static && receiver.Type().IsRefLike() {
			if !yield(contribution{expr: receiver}) {
				return
			}
		}

		refFields := w.refFields()
		refArgs := isRef || refFields

		for i, arg := range args {
			p, ok := sig.Param(i)
			if !ok {
				w.internal(arg.Pos(), "argument %d without parameter in %s", i, sig)

				return
			}

			if refFields && p.RefKind == bound.RefOut {
				continue
			}

			if !(p.Scoped && p.RefKind == bound.RefNone) && arg.Expr.Type().IsRefLike() && !arg.Omitted {
				if !yield(contribution{expr: arg.Expr, param: p}) {
					return
				}
			}

			if refArgs && p.RefKind.IsRef() && !p.Scoped {
				if !yield(contribution{expr: arg.Expr, param: p, ref: true, omitted: arg.Omitted}) {
					return
				}
			}
		}
	}
}

// invocationEscape is the narrowest scope of all contributions.
func (w *env) invocationEscape(sig *bound.Signature, receiver bound.Expr, args []*bound.Argument, isRef bool) scope.Scope {
	if sig == nil {
		return scope.CallingMethod
	}

	s := scope.CallingMethod

	for c := range w.contributions(sig, receiver, args, isRef) {
		switch {
		case c.omitted:
			s = scope.Narrowest(s, w.depth)

		case c.ref:
			s = scope.Narrowest(s, w.refEscape(c.expr))

		default:
			s = scope.Narrowest(s, w.valEscape(c.expr))
		}
	}

	return s
}

// creationEscape narrows the constructor result by ref-like member initializers.
func (w *env) creationEscape(e *bound.ObjectCreation) scope.Scope {
	s := w.invocationEscape(e.Sig, nil, e.Args, false)

	for _, init := range e.Init {
		switch {
		case init.Field != nil:
			if init.Field.Type.IsRefLike() {
				s = scope.Narrowest(s, w.valEscape(init.Value))
			}

		case init.Add != nil:
			s = scope.Narrowest(s, w.invocationEscape(init.Add, nil, init.Args, false))
		}
	}

	return s
}

// checkInvocation validates all contributions of an invocation against to. The first
// failing argument is reported as escaping through the call.
func (w *env) checkInvocation(node bound.Node, sig *bound.Signature, receiver bound.Expr, args []*bound.Argument,
	to scope.Scope, isRef, checkingReceiver bool,
) bool {
	if sig == nil {
		return true
	}

	for c := range w.contributions(sig, receiver, args, isRef) {
		var ok bool

		switch {
		case c.omitted:
			ok = w.depth.ConvertibleTo(to)

		case c.ref:
			ok = w.checkRef(c.expr, to, false)

		default:
			ok = w.checkVal(c.expr, to, c.param == nil)
		}

		if ok {
			continue
		}

		if c.param != nil {
			kind := diag.EscapeCall
			if checkingReceiver {
				kind = diag.EscapeCall2
			}

			w.fail(node.Pos(), kind, sig.String(), c.param.Name)
		}

		return false
	}

	return true
}

func (w *env) checkCreation(e *bound.ObjectCreation, to scope.Scope, checkingReceiver bool) bool {
	if !w.checkInvocation(e, e.Sig, nil, e.Args, to, false, checkingReceiver) {
		return false
	}

	for _, init := range e.Init {
		switch {
		case init.Field != nil:
			if init.Field.Type.IsRefLike() && !w.checkVal(init.Value, to, false) {
				return false
			}

		case init.Add != nil:
			if !w.checkInvocation(init, init.Add, nil, init.Args, to, false, checkingReceiver) {
				return false
			}
		}
	}

	return true
}
