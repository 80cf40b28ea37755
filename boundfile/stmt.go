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

func (d *decoder) method(n *yaml.Node) *bound.Method {
	m := d.mapping(n)
	defer m.done()

	key := m.get("member")
	if key == nil {
		d.failf(n, ErrSyntax, "method without member")

		return nil
	}

	sig := d.member(key, key.Value)

	meth := &bound.Method{
		Function: bound.Function{
			Sig:    sig,
			Async:  m.flag("async"),
			Unsafe: m.flag("unsafe"),
			At:     m.pos(),
		},
		Directives: m.strs("directives"),
	}

	if r := m.get("receiver"); r != nil {
		meth.Receiver = d.typ(r, r.Value)
	} else if !sig.Static {
		meth.Receiver = d.types[sig.Container]
	}

	d.this = meth.Receiver
	d.funcs = []*bound.Function{&meth.Function}
	d.scopes = nil

	d.scoped(func() {
		meth.Body = d.body(m.get("body"), meth.At)
	})

	return meth
}

// function decodes a lambda or local function.
func (d *decoder) function(m *mapping, name string, pos bound.Pos) *bound.Function {
	var raw []rawParam
	if p := m.get("params"); p != nil {
		if err := p.Decode(&raw); err != nil {
			d.failf(p, ErrSyntax, "params: %v", err)
		}
	}

	sig := &bound.Signature{
		Container: d.container(),
		Name:      name,
		Static:    m.flag("static"),
		Params:    d.params(raw),
		RefReturn: d.refKind(m.node, m.str("ref-return")),
	}

	if r := m.get("returns"); r != nil {
		sig.Return = d.typ(r, r.Value)
	}

	fn := &bound.Function{Sig: sig, Async: m.flag("async"), Unsafe: m.flag("unsafe"), At: pos}

	d.funcs = append(d.funcs, fn)
	d.scoped(func() {
		fn.Body = d.body(m.get("body"), pos)
	})
	d.funcs = d.funcs[:len(d.funcs)-1]

	return fn
}

func (d *decoder) container() string {
	if len(d.funcs) == 0 || d.funcs[0].Sig == nil {
		return ""
	}

	return d.funcs[0].Sig.Container
}

// body decodes a statement list in the current scope.
func (d *decoder) body(n *yaml.Node, pos bound.Pos) *bound.Block {
	if n == nil {
		return nil
	}

	b := &bound.Block{StmtBase: bound.StmtBase{At: pos}}

	if n.Kind != yaml.SequenceNode {
		d.failf(n, ErrSyntax, "expected a statement list")

		return b
	}

	b.At = nodePos(n)
	b.Stmts = d.stmts(n.Content)

	return b
}

// block decodes a statement list in a new scope.
func (d *decoder) block(n *yaml.Node) *bound.Block {
	var b *bound.Block

	d.scoped(func() {
		b = d.body(n, nodePos(n))
	})

	return b
}

func (d *decoder) stmts(list []*yaml.Node) []bound.Stmt {
	stmts := make([]bound.Stmt, 0, len(list))
	for _, n := range list {
		stmts = append(stmts, d.stmt(n))
	}

	return stmts
}

var stmtKinds = map[string]bool{
	"block": true, "declare": true, "expr": true, "return": true, "yield": true, "yield-break": true,
	"if": true, "while": true, "for": true, "foreach": true, "switch": true, "unsafe": true,
	"local-function": true, "throw": true,
}

func (d *decoder) stmt(n *yaml.Node) bound.Stmt {
	if n == nil {
		return nil
	}

	if n.Kind == yaml.SequenceNode {
		return d.block(n)
	}

	m := d.mapping(n)
	defer m.done()

	kind, v := m.kind(stmtKinds)
	base := bound.StmtBase{At: m.pos()}

	switch kind {
	case "block", "declare", "unsafe", "local-function":
		if v == nil {
			d.failf(n, ErrSyntax, "%s: missing value", kind)

			return &bound.ExprStmt{StmtBase: base}
		}
	}

	switch kind {
	case "block":
		b := d.block(v)
		if b == nil {
			b = &bound.Block{}
		}

		b.StmtBase = base

		return b

	case "declare":
		return d.declareLocal(m, v, base)

	case "expr":
		return &bound.ExprStmt{StmtBase: base, X: d.expr(v)}

	case "return":
		return &bound.Return{StmtBase: base, Value: d.expr(v), IsRef: m.flag("ref")}

	case "yield":
		return &bound.YieldReturn{StmtBase: base, Value: d.expr(v)}

	case "yield-break":
		return &bound.YieldBreak{StmtBase: base}

	case "if":
		return &bound.If{StmtBase: base, Cond: d.expr(v), Then: d.stmt(m.get("then")), Else: d.stmt(m.get("else"))}

	case "while":
		return &bound.While{StmtBase: base, Cond: d.expr(v), Body: d.stmt(m.get("body"))}

	case "for":
		s := &bound.For{StmtBase: base}

		d.scoped(func() {
			if v != nil {
				s.Init = d.stmts(v.Content)
			}

			s.Cond = d.expr(m.get("cond"))
			s.Body = d.stmt(m.get("body"))
			s.Post = d.exprs(m.list("post"))
		})

		return s

	case "foreach":
		return d.foreach(m, v, base)

	case "switch":
		s := &bound.Switch{StmtBase: base, Subject: d.expr(v)}
		for _, sn := range m.list("sections") {
			s.Sections = append(s.Sections, d.section(sn))
		}

		return s

	case "unsafe":
		return &bound.Unsafe{StmtBase: base, Body: d.block(v)}

	case "local-function":
		return &bound.LocalFunction{StmtBase: base, Func: d.function(m, v.Value, base.At)}

	case "throw":
		return &bound.Throw{StmtBase: base, Value: d.expr(v)}

	default:
		d.failf(n, ErrSyntax, "unknown statement")

		return &bound.ExprStmt{StmtBase: base}
	}
}

func (d *decoder) declareLocal(m *mapping, v *yaml.Node, base bound.StmtBase) bound.Stmt {
	l := &bound.Local{
		Name:    v.Value,
		RefKind: d.refKind(m.node, m.str("ref")),
		Scoped:  m.flag("scoped"),
		At:      base.At,
	}

	// in scope in its own initializer
	typ := m.get("type")
	if typ != nil {
		l.Type = d.typ(typ, typ.Value)
		d.addLocal(v, l)
	}

	init := d.expr(m.get("init"))

	if typ == nil {
		if init == nil {
			d.failf(m.node, ErrSyntax, "declaration of %q needs a type or an initializer", l.Name)
		} else {
			l.Type = init.Type()
		}

		d.addLocal(v, l)
	}

	return &bound.LocalDecl{StmtBase: base, Local: l, Init: init}
}

func (d *decoder) foreach(m *mapping, v *yaml.Node, base bound.StmtBase) bound.Stmt {
	s := &bound.Foreach{StmtBase: base, Collection: d.expr(m.get("in"))}

	d.scoped(func() {
		switch {
		case v == nil:
			d.failf(m.node, ErrSyntax, "foreach without iteration variable")

		case v.Kind == yaml.SequenceNode:
			s.Targets = d.exprs(v.Content)

		default:
			l := &bound.Local{Name: v.Value, RefKind: d.refKind(m.node, m.str("ref")), At: base.At}

			if typ := m.get("type"); typ != nil {
				l.Type = d.typ(typ, typ.Value)
			} else if ct := s.Collection.Type(); ct != nil {
				l.Type = ct.Elem
			}

			d.addLocal(v, l)
			s.Local = l
		}

		s.Body = d.stmt(m.get("body"))
	})

	return s
}

func (d *decoder) section(n *yaml.Node) *bound.SwitchSection {
	m := d.mapping(n)
	defer m.done()

	sec := &bound.SwitchSection{At: m.pos()}

	d.scoped(func() {
		sec.Declared = d.patternLocals(m.list("declare"))

		if body := m.get("body"); body != nil {
			sec.Stmts = d.stmts(body.Content)
		}
	})

	return sec
}

// patternLocals declares the locals of a pattern, given as {name, type} mappings.
func (d *decoder) patternLocals(list []*yaml.Node) []*bound.Local {
	locals := make([]*bound.Local, 0, len(list))

	for _, n := range list {
		m := d.mapping(n)

		l := &bound.Local{Name: m.str("name"), At: m.pos()}
		if typ := m.get("type"); typ != nil {
			l.Type = d.typ(typ, typ.Value)
		}

		m.done()

		d.addLocal(n, l)
		locals = append(locals, l)
	}

	return locals
}
