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

// destination is an operand an invocation may write a ref-like value into.
type destination struct {
	expr  bound.Expr
	index int // argument index, -1 for the receiver
	typ   *bound.Type
}

// checkArgMixing validates that no argument can be captured by a destination that
// outlives it. Only the first violation is reported.
func (w *env) checkArgMixing(node bound.Node, sig *bound.Signature, receiver bound.Expr, args []*bound.Argument) bool {
	if sig == nil {
		return true
	}

	refLikeReceiver := receiver != nil && !sig.Static && receiver.Type().IsRefLike()

	var dests []destination
	if refLikeReceiver && !sig.ReadOnly && !receiver.Type().ReadOnly {
		dests = append(dests, destination{expr: receiver, index: -1, typ: receiver.Type()})
	}

	params := make([]*bound.Parameter, len(args))

	for i, arg := range args {
		p, ok := sig.Param(i)
		if !ok {
			w.internal(arg.Pos(), "argument %d without parameter in %s", i, sig)

			return true
		}

		params[i] = p

		if _, discard := arg.Expr.(*bound.Discard); discard {
			continue
		}

		if (p.RefKind == bound.RefRef || p.RefKind == bound.RefOut) && p.Type.IsRefLike() && !arg.Omitted {
			dests = append(dests, destination{expr: arg.Expr, index: i, typ: p.Type})
		}
	}

	if len(dests) == 0 {
		return true
	}

	escapeTo := w.depth
	for _, d := range dests {
		escapeTo = scope.Widest(escapeTo, w.valEscape(d.expr))
	}

	if refLikeReceiver && !w.checkVal(receiver, escapeTo, false) {
		w.fail(node.Pos(), diag.CallArgMixing, sig.String(), "this")

		return false
	}

	refFields := w.refFields()

	for i, arg := range args {
		p := params[i]

		switch {
		case refFields && p.RefKind == bound.RefOut,
			p.Scoped && p.RefKind == bound.RefNone,
			arg.Omitted,
			!arg.Expr.Type().IsRefLike():
			continue
		}

		if !w.checkVal(arg.Expr, escapeTo, false) {
			w.fail(node.Pos(), diag.CallArgMixing, sig.String(), p.Name)

			return false
		}
	}

	if !refFields {
		return true
	}

	for i, arg := range args {
		p := params[i]
		if p.RefKind == bound.RefNone || p.RefKind == bound.RefOut || p.Scoped || arg.Omitted {
			continue
		}

		for _, d := range dests {
			if d.index == i || !d.typ.HasRefFields() {
				continue
			}

			if !w.checkRef(arg.Expr, w.valEscape(d.expr), false) {
				w.fail(node.Pos(), diag.CallArgMixing, sig.String(), p.Name)

				return false
			}
		}
	}

	return true
}
