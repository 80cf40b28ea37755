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

import (
	"cmp"
	"strconv"
)

// Pos is a 1-based source position.
type Pos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// IsValid reports whether the position is known.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Compare orders positions by line, then column.
func (p Pos) Compare(o Pos) int {
	if c := cmp.Compare(p.Line, o.Line); c != 0 {
		return c
	}

	return cmp.Compare(p.Column, o.Column)
}

// String returns "line:column".
func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Node is any element of the bound tree.
type Node interface {
	Pos() Pos
}

// Expr is a bound expression. The set of implementations is closed.
type Expr interface {
	Node

	// Type returns the resolved type of the expression, nil for typeless expressions.
	Type() *Type

	exprNode()
}

// Base holds the position and type shared by all expressions.
type Base struct {
	At Pos
	T  *Type
}

// Pos implements [Node].
func (b *Base) Pos() Pos { return b.At }

// Type implements [Expr].
func (b *Base) Type() *Type { return b.T }

func (*Base) exprNode() {}

type (
	// Literal is a constant, including null.
	Literal struct {
		Base
		Value string
	}

	// DefaultValue is a default literal or default(T).
	DefaultValue struct {
		Base
	}

	// StackAlloc allocates Count elements of Elem on the stack.
	// Its type is either a span or a pointer.
	StackAlloc struct {
		Base
		Elem  *Type
		Count Expr
		Init  []Expr
	}

	// LocalRef reads a local variable.
	LocalRef struct {
		Base
		Local *Local
	}

	// ParamRef reads a parameter.
	ParamRef struct {
		Base
		Param *Parameter
	}

	// ThisRef is the receiver of an instance member.
	ThisRef struct {
		Base
	}

	// FieldAccess reads Field of Receiver, Receiver is nil for static fields.
	FieldAccess struct {
		Base
		Receiver Expr
		Field    *Field
	}

	// ArrayElement indexes an array.
	ArrayElement struct {
		Base
		Array   Expr
		Indices []Expr
	}

	// PointerDeref dereferences an unmanaged pointer.
	PointerDeref struct {
		Base
		Operand Expr
	}

	// Call invokes a method, indexer or delegate.
	Call struct {
		Base
		Sig      *Signature
		Receiver Expr
		Args     []*Argument
		TypeArgs []*Type
	}

	// ObjectCreation constructs an object, optionally followed by an object or collection initializer.
	// Sig is nil for the implicit parameterless struct constructor.
	ObjectCreation struct {
		Base
		Sig  *Signature
		Args []*Argument
		Init []*Initializer
	}

	// Conditional is c ? a : b, or c ? ref a : ref b when IsRef is set.
	Conditional struct {
		Base
		Cond      Expr
		WhenTrue  Expr
		WhenFalse Expr
		IsRef     bool
	}

	// Coalesce is left ?? right.
	Coalesce struct {
		Base
		Left, Right Expr
	}

	// Assignment is target = value, or target = ref value when IsRef is set.
	Assignment struct {
		Base
		Target Expr
		Value  Expr
		IsRef  bool
	}

	// Discard is _.
	Discard struct {
		Base
	}

	// OutVar declares a local in an argument or deconstruction position.
	OutVar struct {
		Base
		Local *Local
	}

	// Unary is a unary operator, Method is set for user-defined operators.
	Unary struct {
		Base
		Op      string
		Operand Expr
		Method  *Signature
	}

	// Binary is a binary operator, Method is set for user-defined operators.
	Binary struct {
		Base
		Op          string
		Left, Right Expr
		Method      *Signature
	}

	// Conversion converts Operand to the expression type, Method is set for user-defined conversions.
	Conversion struct {
		Base
		Operand Expr
		Method  *Signature
	}

	// Tuple is a tuple literal.
	Tuple struct {
		Base
		Elements []Expr
	}

	// Deconstruction assigns the parts of Source to Targets.
	//
	// Targets are assignable expressions, [Discard], [OutVar] declarations or nested [Tuple]s.
	// Method is the Deconstruct method, nil for tuples. An extension Deconstruct method
	// receives Source as its first argument.
	Deconstruction struct {
		Base
		Targets   []Expr
		Source    Expr
		Method    *Signature
		Extension bool
	}

	// Lambda is an anonymous function.
	Lambda struct {
		Base
		Func *Function
	}

	// Await suspends on Operand.
	Await struct {
		Base
		Operand Expr
	}

	// ThrowExpr is a throw expression.
	ThrowExpr struct {
		Base
		Operand Expr
	}

	// IsPattern tests Operand against a pattern, declaring locals.
	IsPattern struct {
		Base
		Operand  Expr
		Declared []*Local
	}

	// ArrayCreation allocates an array of Elem.
	ArrayCreation struct {
		Base
		Elem  *Type
		Sizes []Expr
		Init  []Expr
	}

	// BadExpr is an expression the binder could not bind.
	BadExpr struct {
		Base
		Children []Expr
	}
)

// Argument is an argument to an invocation.
type Argument struct {
	Expr    Expr
	RefKind RefKind

	// Omitted marks an optional argument filled in from the parameter default.
	Omitted bool
}

// Pos implements [Node].
func (a *Argument) Pos() Pos { return a.Expr.Pos() }

// Initializer is one element of an object or collection initializer.
// Member initializers set Field, collection initializers call Add.
type Initializer struct {
	At    Pos
	Field *Field
	Value Expr
	Add   *Signature
	Args  []*Argument
}

// Pos implements [Node].
func (i *Initializer) Pos() Pos { return i.At }
