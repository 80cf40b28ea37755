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

package boundfile

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/refescape/bound"
)

// decoder resolves names while building the bound tree. The first error is sticky,
// later failures return placeholders.
type decoder struct {
	name string

	types   map[string]*bound.Type
	fields  map[string]*bound.Field
	members map[string]*bound.Signature

	scopes []map[string]*bound.Local
	funcs  []*bound.Function
	this   *bound.Type

	err error
}

func newDecoder(name string) *decoder {
	d := &decoder{
		name:    name,
		types:   make(map[string]*bound.Type),
		fields:  make(map[string]*bound.Field),
		members: make(map[string]*bound.Signature),
	}

	for _, name := range []string{"bool", "byte", "sbyte", "char", "short", "ushort", "int", "uint",
		"long", "ulong", "nint", "nuint", "float", "double", "decimal"} {
		d.types[name] = &bound.Type{Name: name, Kind: bound.StructType, ReadOnly: true}
	}

	for _, name := range []string{"object", "string"} {
		d.types[name] = &bound.Type{Name: name, Kind: bound.ClassType}
	}

	return d
}

// failf records an error at the position of n, which may be nil.
func (d *decoder) failf(n *yaml.Node, err error, format string, args ...any) {
	if d.err != nil {
		return
	}

	msg := fmt.Sprintf(format, args...)

	if n != nil {
		d.err = fmt.Errorf("%s:%d:%d: %w %s", d.name, n.Line, n.Column, err, msg)
	} else {
		d.err = fmt.Errorf("%s: %w %s", d.name, err, msg)
	}
}

var typeKinds = map[string]bound.TypeKind{
	"class":          bound.ClassType,
	"struct":         bound.StructType,
	"ref-struct":     bound.RefStructType,
	"array":          bound.ArrayType,
	"pointer":        bound.PointerType,
	"nullable":       bound.NullableType,
	"type-parameter": bound.TypeParameter,
	"tuple":          bound.TupleType,
}

var memberKinds = map[string]bound.MemberKind{
	"":            bound.MethodMember,
	"method":      bound.MethodMember,
	"constructor": bound.ConstructorMember,
	"indexer":     bound.IndexerMember,
	"operator":    bound.OperatorMember,
	"conversion":  bound.ConversionMember,
	"delegate":    bound.DelegateMember,
}

// declare creates the declared types, fields and members. Types are created
// before they are linked, so declarations may refer to each other in any order.
func (d *decoder) declare(raw *rawFile) {
	for name, rt := range raw.Types {
		kind, ok := typeKinds[rt.Kind]
		if !ok {
			d.failf(nil, ErrSyntax, "type %q: unknown kind %q", name, rt.Kind)

			continue
		}

		d.types[name] = &bound.Type{Name: name, Kind: kind, ReadOnly: rt.ReadOnly, RefFields: rt.RefFields}
	}

	for name, rt := range raw.Types {
		t := d.types[name]
		if rt.Elem != "" {
			t.Elem = d.typ(nil, rt.Elem)
		}

		for _, arg := range rt.Args {
			t.Args = append(t.Args, d.typ(nil, arg))
		}
	}

	for name, rf := range raw.Fields {
		_, simple, ok := splitMember(name)
		if !ok {
			d.failf(nil, ErrSyntax, "field %q is not qualified", name)

			continue
		}

		d.fields[name] = &bound.Field{
			Name:    simple,
			Type:    d.typ(nil, rf.Type),
			Static:  rf.Static,
			RefKind: d.refKind(nil, rf.Ref),
		}
	}

	for name, rm := range raw.Members {
		d.members[name] = d.signature(name, &rm)
	}
}

func (d *decoder) signature(key string, rm *rawMember) *bound.Signature {
	container, name, ok := splitMember(key)
	if !ok {
		d.failf(nil, ErrSyntax, "member %q is not qualified", key)

		return &bound.Signature{Name: key}
	}

	kind, ok := memberKinds[rm.Kind]
	if !ok {
		d.failf(nil, ErrSyntax, "member %q: unknown kind %q", key, rm.Kind)
	}

	if rm.Name != "" {
		name = rm.Name
	}

	sig := &bound.Signature{
		Container: container,
		Name:      name,
		Kind:      kind,
		Static:    rm.Static,
		ReadOnly:  rm.ReadOnly,
		RefReturn: d.refKind(nil, rm.RefReturn),
		Params:    d.params(rm.Params),
	}

	if rm.Returns != "" {
		sig.Return = d.typ(nil, rm.Returns)
	}

	return sig
}

func (d *decoder) params(raw []rawParam) []*bound.Parameter {
	params := make([]*bound.Parameter, 0, len(raw))
	for _, rp := range raw {
		params = append(params, &bound.Parameter{
			Name:       rp.Name,
			Type:       d.typ(nil, rp.Type),
			RefKind:    d.refKind(nil, rp.Ref),
			Scoped:     rp.Scoped,
			HasDefault: rp.Default,
		})
	}

	return params
}

// splitMember splits "Container.Name" at the last dot outside of type arguments.
func splitMember(key string) (container, name string, ok bool) {
	depth := 0
	for i := len(key) - 1; i >= 0; i-- {
		switch key[i] {
		case '>', ']', ')':
			depth++

		case '<', '[', '(':
			depth--

		case '.':
			if depth == 0 && i > 0 && i < len(key)-1 {
				return key[:i], key[i+1:], true
			}
		}
	}

	return "", key, false
}

// typ resolves a type name. Array, pointer and nullable types of known
// element types are created on demand, "void" is the nil type.
func (d *decoder) typ(n *yaml.Node, name string) *bound.Type {
	if t, ok := d.types[name]; ok {
		return t
	}

	var kind bound.TypeKind

	elem := name

	switch {
	case name == "void":
		return nil

	case strings.HasSuffix(name, "[]"):
		kind, elem = bound.ArrayType, strings.TrimSuffix(name, "[]")

	case strings.HasSuffix(name, "*"):
		kind, elem = bound.PointerType, strings.TrimSuffix(name, "*")

	case strings.HasSuffix(name, "?"):
		kind, elem = bound.NullableType, strings.TrimSuffix(name, "?")

	default:
		d.failf(n, ErrUnknownType, "%q", name)

		return nil
	}

	t := &bound.Type{Name: name, Kind: kind, Elem: d.typ(n, elem)}
	if kind == bound.NullableType {
		t.Args = []*bound.Type{t.Elem}
	}

	d.types[name] = t

	return t
}

// tupleType returns the tuple type of the element types.
func (d *decoder) tupleType(elems []bound.Expr) *bound.Type {
	args := make([]*bound.Type, 0, len(elems))
	names := make([]string, 0, len(elems))

	for _, e := range elems {
		t := e.Type()
		args = append(args, t)
		names = append(names, t.String())
	}

	name := "(" + strings.Join(names, ", ") + ")"
	if t, ok := d.types[name]; ok {
		return t
	}

	t := &bound.Type{Name: name, Kind: bound.TupleType, Args: args}
	d.types[name] = t

	return t
}

func (d *decoder) refKind(n *yaml.Node, text string) bound.RefKind {
	switch text {
	case "":
		return bound.RefNone

	case "ref":
		return bound.RefRef

	case "in":
		return bound.RefIn

	case "out":
		return bound.RefOut

	case "ref readonly", "readonly":
		return bound.RefReadOnly

	default:
		d.failf(n, ErrSyntax, "unknown ref kind %q", text)

		return bound.RefNone
	}
}

func (d *decoder) member(n *yaml.Node, key string) *bound.Signature {
	if sig, ok := d.members[key]; ok {
		return sig
	}

	d.failf(n, ErrUnknownMember, "%q", key)

	return &bound.Signature{Name: key}
}

func (d *decoder) field(n *yaml.Node, key string) *bound.Field {
	if f, ok := d.fields[key]; ok {
		return f
	}

	d.failf(n, ErrUnknownField, "%q", key)

	return &bound.Field{Name: key}
}

func (d *decoder) pushScope() {
	d.scopes = append(d.scopes, make(map[string]*bound.Local))
}

func (d *decoder) popScope() {
	d.scopes = d.scopes[:len(d.scopes)-1]
}

func (d *decoder) scoped(f func()) {
	d.pushScope()
	defer d.popScope()

	f()
}

func (d *decoder) addLocal(n *yaml.Node, l *bound.Local) {
	if len(d.scopes) == 0 {
		d.failf(n, ErrSyntax, "local %q outside of a body", l.Name)

		return
	}

	d.scopes[len(d.scopes)-1][l.Name] = l
}

// lookup resolves a name to a local or parameter, innermost first.
func (d *decoder) lookup(name string) (*bound.Local, *bound.Parameter) {
	for _, s := range slices.Backward(d.scopes) {
		if l, ok := s[name]; ok {
			return l, nil
		}
	}

	for _, fn := range slices.Backward(d.funcs) {
		if fn.Sig == nil {
			continue
		}

		for _, p := range fn.Sig.Params {
			if p.Name == name {
				return nil, p
			}
		}
	}

	return nil, nil
}

var errPos = errors.New("invalid position")

func parsePos(text string) (bound.Pos, error) {
	line, col, ok := strings.Cut(text, ":")
	if !ok {
		return bound.Pos{}, errPos
	}

	l, err := strconv.Atoi(line)
	if err != nil || l < 1 {
		return bound.Pos{}, errPos
	}

	c, err := strconv.Atoi(col)
	if err != nil || c < 1 {
		return bound.Pos{}, errPos
	}

	return bound.Pos{Line: l, Column: c}, nil
}
