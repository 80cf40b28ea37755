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

package bound

import "strings"

// Text returns an approximate source rendering of e for diagnostic arguments.
func Text(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)

	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case nil:
		b.WriteString("<nil>") // ignore error

	case *Literal:
		b.WriteString(e.Value) // ignore error

	case *DefaultValue:
		b.WriteString("default") // ignore error

	case *StackAlloc:
		b.WriteString("stackalloc ")    // ignore error
		b.WriteString(e.Elem.String()) // ignore error
		b.WriteByte('[')               // ignore error
		if e.Count != nil {
			writeExpr(b, e.Count)
		}
		b.WriteByte(']') // ignore error

	case *LocalRef:
		b.WriteString(e.Local.Name) // ignore error

	case *ParamRef:
		b.WriteString(e.Param.Name) // ignore error

	case *ThisRef:
		b.WriteString("this") // ignore error

	case *FieldAccess:
		if e.Receiver != nil {
			writeExpr(b, e.Receiver)
			b.WriteByte('.') // ignore error
		}
		b.WriteString(e.Field.Name) // ignore error

	case *ArrayElement:
		writeExpr(b, e.Array)
		writeList(b, '[', e.Indices, ']')

	case *PointerDeref:
		b.WriteByte('*') // ignore error
		writeExpr(b, e.Operand)

	case *Call:
		if e.Receiver != nil {
			writeExpr(b, e.Receiver)
		}

		switch e.Sig.Kind {
		case IndexerMember:
			writeArgs(b, '[', e.Args, ']')

		case DelegateMember:
			writeArgs(b, '(', e.Args, ')')

		default:
			if e.Receiver != nil {
				b.WriteByte('.') // ignore error
			}
			b.WriteString(e.Sig.Name) // ignore error
			writeArgs(b, '(', e.Args, ')')
		}

	case *ObjectCreation:
		b.WriteString("new ")        // ignore error
		b.WriteString(e.T.String()) // ignore error
		writeArgs(b, '(', e.Args, ')')

	case *Conditional:
		writeExpr(b, e.Cond)
		b.WriteString(" ? ") // ignore error
		if e.IsRef {
			b.WriteString("ref ") // ignore error
		}
		writeExpr(b, e.WhenTrue)
		b.WriteString(" : ") // ignore error
		if e.IsRef {
			b.WriteString("ref ") // ignore error
		}
		writeExpr(b, e.WhenFalse)

	case *Coalesce:
		writeExpr(b, e.Left)
		b.WriteString(" ?? ") // ignore error
		writeExpr(b, e.Right)

	case *Assignment:
		writeExpr(b, e.Target)
		b.WriteString(" = ") // ignore error
		if e.IsRef {
			b.WriteString("ref ") // ignore error
		}
		writeExpr(b, e.Value)

	case *Discard:
		b.WriteByte('_') // ignore error

	case *OutVar:
		b.WriteString("var ")       // ignore error
		b.WriteString(e.Local.Name) // ignore error

	case *Unary:
		b.WriteString(e.Op) // ignore error
		writeExpr(b, e.Operand)

	case *Binary:
		writeExpr(b, e.Left)
		b.WriteByte(' ')    // ignore error
		b.WriteString(e.Op) // ignore error
		b.WriteByte(' ')    // ignore error
		writeExpr(b, e.Right)

	case *Conversion:
		writeExpr(b, e.Operand)

	case *Tuple:
		writeList(b, '(', e.Elements, ')')

	case *Deconstruction:
		writeList(b, '(', e.Targets, ')')
		b.WriteString(" = ") // ignore error
		writeExpr(b, e.Source)

	case *Lambda:
		b.WriteString("lambda expression") // ignore error

	case *Await:
		b.WriteString("await ") // ignore error
		writeExpr(b, e.Operand)

	case *ThrowExpr:
		b.WriteString("throw ") // ignore error
		writeExpr(b, e.Operand)

	case *IsPattern:
		writeExpr(b, e.Operand)
		b.WriteString(" is ...") // ignore error

	case *ArrayCreation:
		b.WriteString("new ")           // ignore error
		b.WriteString(e.Elem.String()) // ignore error
		writeList(b, '[', e.Sizes, ']')

	default:
		b.WriteString("?") // ignore error
	}
}

func writeList(b *strings.Builder, open byte, es []Expr, closing byte) {
	b.WriteByte(open) // ignore error

	for i, e := range es {
		if i > 0 {
			b.WriteString(", ") // ignore error
		}

		writeExpr(b, e)
	}

	b.WriteByte(closing) // ignore error
}

func writeArgs(b *strings.Builder, open byte, args []*Argument, closing byte) {
	b.WriteByte(open) // ignore error

	first := true

	for _, a := range args {
		if a.Omitted {
			continue
		}

		if !first {
			b.WriteString(", ") // ignore error
		}

		first = false

		if a.RefKind.IsRef() {
			b.WriteString(a.RefKind.String()) // ignore error
			b.WriteByte(' ')                  // ignore error
		}

		writeExpr(b, a.Expr)
	}

	b.WriteByte(closing) // ignore error
}
