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
	"strconv"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/refescape/bound"
)

// mapping is a YAML mapping whose keys are consumed while decoding.
type mapping struct {
	d     *decoder
	node  *yaml.Node
	keys  []string
	vals  map[string]*yaml.Node
	taken map[string]bool
}

func (d *decoder) mapping(n *yaml.Node) *mapping {
	m := &mapping{d: d, node: n, vals: make(map[string]*yaml.Node), taken: make(map[string]bool)}

	if n.Kind != yaml.MappingNode {
		d.failf(n, ErrSyntax, "expected a mapping")

		return m
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if _, dup := m.vals[key]; dup {
			d.failf(n.Content[i], ErrSyntax, "duplicate key %q", key)
		}

		m.keys = append(m.keys, key)
		m.vals[key] = n.Content[i+1]
	}

	return m
}

// kind returns the first key contained in kinds.
func (m *mapping) kind(kinds map[string]bool) (string, *yaml.Node) {
	for _, key := range m.keys {
		if kinds[key] {
			return key, m.get(key)
		}
	}

	return "", nil
}

// get returns the value of key, or nil.
func (m *mapping) get(key string) *yaml.Node {
	n, ok := m.vals[key]
	if !ok {
		return nil
	}

	m.taken[key] = true

	// explicit null
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil
	}

	return n
}

func (m *mapping) has(key string) bool {
	_, ok := m.vals[key]

	return ok
}

func (m *mapping) str(key string) string {
	n := m.get(key)
	if n == nil {
		return ""
	}

	if n.Kind != yaml.ScalarNode {
		m.d.failf(n, ErrSyntax, "%s: expected a scalar", key)

		return ""
	}

	return n.Value
}

func (m *mapping) flag(key string) bool {
	n := m.get(key)
	if n == nil {
		return false
	}

	b, err := strconv.ParseBool(n.Value)
	if err != nil || n.Kind != yaml.ScalarNode {
		m.d.failf(n, ErrSyntax, "%s: expected a boolean", key)
	}

	return b
}

func (m *mapping) list(key string) []*yaml.Node {
	n := m.get(key)
	if n == nil {
		return nil
	}

	if n.Kind != yaml.SequenceNode {
		m.d.failf(n, ErrSyntax, "%s: expected a sequence", key)

		return nil
	}

	return n.Content
}

func (m *mapping) strs(key string) []string {
	var ss []string
	for _, n := range m.list(key) {
		ss = append(ss, n.Value)
	}

	return ss
}

// pos returns the "at" override or the position of the mapping.
func (m *mapping) pos() bound.Pos {
	if at := m.get("at"); at != nil {
		p, err := parsePos(at.Value)
		if err != nil {
			m.d.failf(at, ErrSyntax, "%q: %v", at.Value, err)
		}

		return p
	}

	return nodePos(m.node)
}

// done fails on keys that were not consumed.
func (m *mapping) done() {
	for _, key := range m.keys {
		if !m.taken[key] {
			m.d.failf(m.vals[key], ErrSyntax, "unexpected key %q", key)

			return
		}
	}
}

func nodePos(n *yaml.Node) bound.Pos {
	return bound.Pos{Line: n.Line, Column: n.Column}
}
