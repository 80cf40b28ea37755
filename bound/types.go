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

// TypeKind classifies a [Type].
type TypeKind uint8

const (
	// ClassType is a reference type.
	ClassType TypeKind = iota

	// StructType is an ordinary value type.
	StructType

	// RefStructType is a by-ref-like (stack-only) value type.
	RefStructType

	// ArrayType is an array of [Type.Elem].
	ArrayType

	// PointerType is an unmanaged pointer to [Type.Elem].
	PointerType

	// NullableType is a nullable value type wrapping [Type.Elem].
	NullableType

	// TypeParameter is an unsubstituted generic type parameter.
	TypeParameter

	// TupleType is a value tuple with elements [Type.Args].
	TupleType
)

// Type is a resolved type.
type Type struct {
	// Name is the display name, e.g. "System.Span<int>".
	Name string

	Kind TypeKind

	// ReadOnly marks a readonly struct.
	ReadOnly bool

	// RefFields marks a ref struct containing ref fields.
	RefFields bool

	// Elem is the element type of arrays, pointers and nullable types.
	Elem *Type

	// Args are the type arguments of a constructed generic type, or the elements of a tuple.
	Args []*Type
}

// IsRefLike reports whether values of this type are stack-only.
func (t *Type) IsRefLike() bool {
	return t != nil && t.Kind == RefStructType
}

// IsValueType reports whether the type has value semantics.
func (t *Type) IsValueType() bool {
	if t == nil {
		return false
	}

	switch t.Kind {
	case StructType, RefStructType, NullableType, TupleType, PointerType:
		return true

	default:
		return false
	}
}

// HasRefFields reports whether values of this type may hold references.
func (t *Type) HasRefFields() bool {
	return t.IsRefLike() && t.RefFields
}

// String returns the display name.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	return t.Name
}

// RefKind is the passing mode of a parameter, argument, local or return value.
type RefKind uint8

//go:generate go tool stringer -type RefKind -linecomment
const (
	RefNone     RefKind = iota //
	RefRef                     // ref
	RefIn                      // in
	RefOut                     // out
	RefReadOnly                // ref readonly
)

// IsRef reports whether k passes by reference.
func (k RefKind) IsRef() bool {
	return k != RefNone
}

// Parameter is a declared parameter.
type Parameter struct {
	Name    string
	Type    *Type
	RefKind RefKind

	// Scoped pins the parameter's scope to the current method.
	Scoped bool

	// HasDefault marks an optional parameter.
	HasDefault bool
}

// MemberKind classifies a [Signature].
type MemberKind uint8

const (
	MethodMember MemberKind = iota
	ConstructorMember
	IndexerMember
	OperatorMember
	ConversionMember
	DelegateMember
)

// Signature is a resolved member signature.
type Signature struct {
	// Container is the display name of the declaring type.
	Container string

	Name string
	Kind MemberKind

	Static bool

	// ReadOnly marks a readonly member, whose receiver can't be written.
	ReadOnly bool

	Params []*Parameter

	// Return is the return type, nil for void.
	Return *Type

	// RefReturn is the return passing mode, [RefNone], [RefRef] or [RefReadOnly].
	RefReturn RefKind
}

// Param returns the i-th parameter. The last parameter absorbs excess arguments.
func (s *Signature) Param(i int) (*Parameter, bool) {
	switch n := len(s.Params); {
	case i < n:
		return s.Params[i], true

	case n > 0:
		return s.Params[n-1], true

	default:
		return nil, false
	}
}

// String returns the display text used in diagnostics, e.g. "Program.MayWrap(ref System.Span<int>)".
func (s *Signature) String() string {
	var b strings.Builder

	open, closing := byte('('), byte(')')

	b.WriteString(s.Container) // ignore error
	b.WriteByte('.')           // ignore error

	switch s.Kind {
	case ConstructorMember:
		b.WriteString(simpleName(s.Container)) // ignore error

	case IndexerMember:
		b.WriteString("this") // ignore error

		open, closing = '[', ']'

	case OperatorMember, ConversionMember:
		b.WriteString("operator ") // ignore error
		b.WriteString(s.Name)      // ignore error

	case DelegateMember:
		b.WriteString("Invoke") // ignore error

	default:
		b.WriteString(s.Name) // ignore error
	}

	b.WriteByte(open) // ignore error

	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ") // ignore error
		}

		if p.Scoped {
			b.WriteString("scoped ") // ignore error
		}

		if p.RefKind.IsRef() {
			b.WriteString(p.RefKind.String()) // ignore error
			b.WriteByte(' ')                  // ignore error
		}

		b.WriteString(p.Type.String()) // ignore error
	}

	b.WriteByte(closing) // ignore error

	return b.String()
}

func simpleName(container string) string {
	if i := strings.IndexByte(container, '<'); i >= 0 {
		container = container[:i]
	}

	if i := strings.LastIndexByte(container, '.'); i >= 0 {
		container = container[i+1:]
	}

	return container
}

// Field is a resolved field.
type Field struct {
	Name   string
	Type   *Type
	Static bool

	// RefKind is [RefRef] or [RefReadOnly] for ref fields.
	RefKind RefKind
}

// Local is a local variable declared in a method body.
type Local struct {
	Name string
	Type *Type

	// RefKind is [RefRef] or [RefReadOnly] for ref locals.
	RefKind RefKind

	// Scoped pins the local to its declaring block.
	Scoped bool

	At Pos
}

// Pos implements [Node].
func (l *Local) Pos() Pos { return l.At }
