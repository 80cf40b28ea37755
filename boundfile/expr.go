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
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/refescape/bound"
)

var exprKinds = map[string]bool{
	"literal": true, "default": true, "stackalloc": true, "local": true, "param": true, "this": true,
	"field": true, "element": true, "deref": true, "call": true, "new": true, "cond": true,
	"coalesce": true, "assign": true, "discard": true, "out-var": true, "unary": true, "binary": true,
	"convert": true, "tuple": true, "deconstruct": true, "lambda": true, "await": true, "throw": true,
	"is": true, "new-array": true, "bad": true,
}

func (d *decoder) expr(n *yaml.Node) bound.Expr {
	if n == nil {
		return nil
	}

	if n.Kind == yaml.ScalarNode {
		return d.scalar(n)
	}

	m := d.mapping(n)
	defer m.done()

	return d.exprOf(m)
}

func (d *decoder) exprs(list []*yaml.Node) []bound.Expr {
	es := make([]bound.Expr, 0, len(list))
	for _, n := range list {
		es = append(es, d.expr(n))
	}

	return es
}

// scalar resolves a name or a constant.
func (d *decoder) scalar(n *yaml.Node) bound.Expr {
	base := bound.Base{At: nodePos(n)}

	switch n.Value {
	case "this":
		base.T = d.this

		return &bound.ThisRef{Base: base}

	case "_":
		return &bound.Discard{Base: base}
	}

	switch n.Tag {
	case "!!int":
		base.T = d.types["int"]

		return &bound.Literal{Base: base, Value: n.Value}

	case "!!float":
		base.T = d.types["double"]

		return &bound.Literal{Base: base, Value: n.Value}

	case "!!bool":
		base.T = d.types["bool"]

		return &bound.Literal{Base: base, Value: n.Value}

	case "!!null":
		return &bound.Literal{Base: base, Value: "null"}
	}

	return d.named(n, n.Value, base)
}

func (d *decoder) named(n *yaml.Node, name string, base bound.Base) bound.Expr {
	l, p := d.lookup(name)

	switch {
	case l != nil:
		if base.T == nil {
			base.T = l.Type
		}

		return &bound.LocalRef{Base: base, Local: l}

	case p != nil:
		if base.T == nil {
			base.T = p.Type
		}

		return &bound.ParamRef{Base: base, Param: p}

	default:
		d.failf(n, ErrUnknownLocal, "%q", name)

		return &bound.BadExpr{Base: base}
	}
}

func (d *decoder) exprOf(m *mapping) bound.Expr {
	kind, v := m.kind(exprKinds)
	base := bound.Base{At: m.pos()}

	if t := m.get("type"); t != nil {
		base.T = d.typ(t, t.Value)
	}

	typed := func(t *bound.Type) {
		if base.T == nil {
			base.T = t
		}
	}

	switch kind {
	case "literal":
		if v == nil {
			return &bound.Literal{Base: base, Value: "null"}
		}

		typed(d.types["int"])

		return &bound.Literal{Base: base, Value: v.Value}

	case "default":
		if v != nil {
			typed(d.typ(v, v.Value))
		}

		return &bound.DefaultValue{Base: base}

	case "stackalloc":
		if v == nil {
			break
		}

		e := &bound.StackAlloc{Elem: d.typ(v, v.Value), Count: d.expr(m.get("count")), Init: d.exprs(m.list("init"))}
		if base.T == nil {
			base.T = d.typ(v, "Span<"+v.Value+">")
		}

		e.Base = base

		return e

	case "local", "param":
		if v == nil {
			break
		}

		return d.named(v, v.Value, base)

	case "this":
		typed(d.this)

		return &bound.ThisRef{Base: base}

	case "field":
		if v == nil {
			break
		}

		e := &bound.FieldAccess{Receiver: d.expr(m.get("of"))}

		key := v.Value
		if e.Receiver != nil {
			key = e.Receiver.Type().String() + "." + v.Value
		}

		e.Field = d.field(v, key)
		typed(e.Field.Type)
		e.Base = base

		return e

	case "element":
		e := &bound.ArrayElement{Array: d.expr(v), Indices: d.exprs(m.list("index"))}
		if e.Array != nil && e.Array.Type() != nil {
			typed(e.Array.Type().Elem)
		}

		e.Base = base

		return e

	case "deref":
		e := &bound.PointerDeref{Operand: d.expr(v)}
		if e.Operand != nil && e.Operand.Type() != nil {
			typed(e.Operand.Type().Elem)
		}

		e.Base = base

		return e

	case "call":
		if v == nil {
			break
		}

		sig := d.member(v, v.Value)
		e := &bound.Call{
			Sig:      sig,
			Receiver: d.expr(m.get("receiver")),
			Args:     d.args(m.list("args"), sig),
			TypeArgs: d.typeList(m.list("type-args")),
		}
		typed(sig.Return)
		e.Base = base

		return e

	case "new":
		if v == nil {
			break
		}

		typed(d.typ(v, v.Value))

		e := &bound.ObjectCreation{}
		if ctor := m.get("ctor"); ctor != nil {
			e.Sig = d.member(ctor, ctor.Value)
		}

		if e.Sig != nil {
			e.Args = d.args(m.list("args"), e.Sig)
		} else if m.has("args") {
			d.failf(m.node, ErrSyntax, "new: arguments without constructor")
		}

		for _, in := range m.list("init") {
			e.Init = append(e.Init, d.initializer(in, base.T))
		}

		e.Base = base

		return e

	case "cond":
		e := &bound.Conditional{
			Cond:      d.expr(v),
			WhenTrue:  d.expr(m.get("then")),
			WhenFalse: d.expr(m.get("else")),
			IsRef:     m.flag("ref"),
		}
		if e.WhenTrue != nil {
			typed(e.WhenTrue.Type())
		}

		e.Base = base

		return e

	case "coalesce":
		e := &bound.Coalesce{Left: d.expr(v), Right: d.expr(m.get("else"))}
		if e.Left != nil {
			typed(e.Left.Type())
		}

		e.Base = base

		return e

	case "assign":
		e := &bound.Assignment{Target: d.expr(v), Value: d.expr(m.get("value")), IsRef: m.flag("ref")}
		if e.Target != nil {
			typed(e.Target.Type())
		}

		if e.Target == nil || e.Value == nil {
			d.failf(m.node, ErrSyntax, "assign needs a target and a value")
		}

		e.Base = base

		return e

	case "discard":
		if v != nil {
			typed(d.typ(v, v.Value))
		}

		return &bound.Discard{Base: base}

	case "out-var":
		if v == nil || base.T == nil {
			d.failf(m.node, ErrSyntax, "out-var needs a name and a type")

			break
		}

		l := &bound.Local{Name: v.Value, Type: base.T, Scoped: m.flag("scoped"), At: base.At}
		d.addLocal(v, l)

		return &bound.OutVar{Base: base, Local: l}

	case "unary":
		if v == nil {
			break
		}

		e := &bound.Unary{Op: v.Value, Operand: d.expr(m.get("operand"))}
		if meth := m.get("method"); meth != nil {
			e.Method = d.member(meth, meth.Value)
			typed(e.Method.Return)
		}

		if e.Operand != nil {
			typed(e.Operand.Type())
		}

		e.Base = base

		return e

	case "binary":
		if v == nil {
			break
		}

		e := &bound.Binary{Op: v.Value, Left: d.expr(m.get("left")), Right: d.expr(m.get("right"))}
		if meth := m.get("method"); meth != nil {
			e.Method = d.member(meth, meth.Value)
			typed(e.Method.Return)
		}

		if e.Left != nil {
			typed(e.Left.Type())
		}

		e.Base = base

		return e

	case "convert":
		e := &bound.Conversion{Operand: d.expr(v)}
		if meth := m.get("method"); meth != nil {
			e.Method = d.member(meth, meth.Value)
			typed(e.Method.Return)
		}

		if base.T == nil {
			d.failf(m.node, ErrSyntax, "convert needs a type")
		}

		e.Base = base

		return e

	case "tuple":
		e := &bound.Tuple{}
		if v != nil {
			e.Elements = d.exprs(v.Content)
		}

		if base.T == nil {
			base.T = d.tupleType(e.Elements)
		}

		e.Base = base

		return e

	case "deconstruct":
		e := &bound.Deconstruction{Source: d.expr(m.get("source")), Extension: m.flag("extension")}
		if v != nil {
			e.Targets = d.exprs(v.Content)
		}

		if meth := m.get("method"); meth != nil {
			e.Method = d.member(meth, meth.Value)
		}

		e.Base = base

		return e

	case "lambda":
		if v == nil {
			break
		}

		lm := d.mapping(v)
		fn := d.function(lm, "<lambda>", nodePos(v))
		lm.done()

		return &bound.Lambda{Base: base, Func: fn}

	case "await":
		return &bound.Await{Base: base, Operand: d.expr(v)}

	case "throw":
		return &bound.ThrowExpr{Base: base, Operand: d.expr(v)}

	case "is":
		typed(d.types["bool"])

		return &bound.IsPattern{Base: base, Operand: d.expr(v), Declared: d.patternLocals(m.list("declare"))}

	case "new-array":
		if v == nil {
			break
		}

		e := &bound.ArrayCreation{Elem: d.typ(v, v.Value), Sizes: d.exprs(m.list("sizes")), Init: d.exprs(m.list("init"))}
		typed(d.typ(v, v.Value+"[]"))
		e.Base = base

		return e

	case "bad":
		e := &bound.BadExpr{Base: base}
		if v != nil {
			e.Children = d.exprs(v.Content)
		}

		return e
	}

	d.failf(m.node, ErrSyntax, "unknown expression")

	return &bound.BadExpr{Base: base}
}

// args decodes invocation arguments. An argument is an expression, optionally with
// "pass" (ref, in or out) and "omitted" keys. The passing mode defaults to the parameter's.
func (d *decoder) args(list []*yaml.Node, sig *bound.Signature) []*bound.Argument {
	args := make([]*bound.Argument, 0, len(list))

	for i, n := range list {
		a := &bound.Argument{}

		if n.Kind == yaml.MappingNode {
			m := d.mapping(n)
			a.RefKind = d.refKind(n, m.str("pass"))

			if a.Omitted = m.flag("omitted"); a.Omitted {
				a.Expr = &bound.DefaultValue{Base: bound.Base{At: m.pos()}}
				if p, ok := sig.Param(i); ok {
					a.Expr.(*bound.DefaultValue).T = p.Type
				}
			} else {
				a.Expr = d.exprOf(m)
			}

			m.done()
		} else {
			a.Expr = d.expr(n)
		}

		if p, ok := sig.Param(i); ok && a.RefKind == bound.RefNone {
			a.RefKind = p.RefKind
		}

		args = append(args, a)
	}

	return args
}

// initializer decodes {field: name, value: expr} or {add: member, args: [...]}.
func (d *decoder) initializer(n *yaml.Node, t *bound.Type) *bound.Initializer {
	m := d.mapping(n)
	defer m.done()

	init := &bound.Initializer{At: m.pos()}

	switch {
	case m.get("field") != nil:
		name := m.get("field")
		init.Field = d.field(name, t.String()+"."+name.Value)
		init.Value = d.expr(m.get("value"))

	case m.get("add") != nil:
		add := m.get("add")
		init.Add = d.member(add, add.Value)
		init.Args = d.args(m.list("args"), init.Add)

	default:
		d.failf(n, ErrSyntax, "initializer needs a field or an add method")
	}

	return init
}

func (d *decoder) typeList(list []*yaml.Node) []*bound.Type {
	if len(list) == 0 {
		return nil
	}

	ts := make([]*bound.Type, 0, len(list))
	for _, n := range list {
		ts = append(ts, d.typ(n, n.Value))
	}

	return ts
}
