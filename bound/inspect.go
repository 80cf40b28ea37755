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

// Inspect traverses the tree rooted at n in depth-first order. It calls f(n) for each node;
// if f returns true, Inspect visits the children of n.
//
// Nested functions are visited as a [*Function] node below their [*Lambda] or [*LocalFunction].
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	for _, c := range children(n) {
		Inspect(c, f)
	}
}

type nodes []Node

func (ns nodes) expr(es ...Expr) nodes {
	for _, e := range es {
		if e != nil {
			ns = append(ns, e)
		}
	}

	return ns
}

func (ns nodes) stmt(ss ...Stmt) nodes {
	for _, s := range ss {
		if s != nil {
			ns = append(ns, s)
		}
	}

	return ns
}

func (ns nodes) args(as []*Argument) nodes {
	for _, a := range as {
		if a != nil && a.Expr != nil {
			ns = append(ns, a.Expr)
		}
	}

	return ns
}

func children(n Node) nodes {
	var ns nodes

	switch n := n.(type) {
	case *StackAlloc:
		return ns.expr(n.Count).expr(n.Init...)

	case *FieldAccess:
		return ns.expr(n.Receiver)

	case *ArrayElement:
		return ns.expr(n.Array).expr(n.Indices...)

	case *PointerDeref:
		return ns.expr(n.Operand)

	case *Call:
		return ns.expr(n.Receiver).args(n.Args)

	case *ObjectCreation:
		ns = ns.args(n.Args)
		for _, i := range n.Init {
			ns = ns.expr(i.Value).args(i.Args)
		}

		return ns

	case *Conditional:
		return ns.expr(n.Cond, n.WhenTrue, n.WhenFalse)

	case *Coalesce:
		return ns.expr(n.Left, n.Right)

	case *Assignment:
		return ns.expr(n.Target, n.Value)

	case *Unary:
		return ns.expr(n.Operand)

	case *Binary:
		return ns.expr(n.Left, n.Right)

	case *Conversion:
		return ns.expr(n.Operand)

	case *Tuple:
		return ns.expr(n.Elements...)

	case *Deconstruction:
		return ns.expr(n.Targets...).expr(n.Source)

	case *Lambda:
		if n.Func != nil {
			ns = append(ns, n.Func)
		}

		return ns

	case *Await:
		return ns.expr(n.Operand)

	case *ThrowExpr:
		return ns.expr(n.Operand)

	case *IsPattern:
		return ns.expr(n.Operand)

	case *ArrayCreation:
		return ns.expr(n.Sizes...).expr(n.Init...)

	case *BadExpr:
		return ns.expr(n.Children...)

	case *Function:
		if n.Body != nil {
			ns = append(ns, n.Body)
		}

		return ns

	case *Block:
		return ns.stmt(n.Stmts...)

	case *LocalDecl:
		return ns.expr(n.Init)

	case *ExprStmt:
		return ns.expr(n.X)

	case *Return:
		return ns.expr(n.Value)

	case *YieldReturn:
		return ns.expr(n.Value)

	case *If:
		return ns.expr(n.Cond).stmt(n.Then, n.Else)

	case *While:
		return ns.expr(n.Cond).stmt(n.Body)

	case *For:
		return ns.stmt(n.Init...).expr(n.Cond).expr(n.Post...).stmt(n.Body)

	case *Foreach:
		return ns.expr(n.Targets...).expr(n.Collection).stmt(n.Body)

	case *Switch:
		ns = ns.expr(n.Subject)
		for _, s := range n.Sections {
			if s != nil {
				ns = append(ns, s)
			}
		}

		return ns

	case *SwitchSection:
		return ns.stmt(n.Stmts...)

	case *Unsafe:
		if n.Body != nil {
			ns = append(ns, n.Body)
		}

		return ns

	case *LocalFunction:
		if n.Func != nil {
			ns = append(ns, n.Func)
		}

		return ns

	case *Throw:
		return ns.expr(n.Value)

	default:
		return nil
	}
}
