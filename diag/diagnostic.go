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

// Package diag defines the diagnostic records produced by the ref-escape analysis.
package diag

import (
	"fmt"
	"strings"

	"fillmore-labs.com/refescape/bound"
)

// Severity is the severity of a [Diagnostic].
type Severity uint8

const (
	// Error is the default severity.
	Error Severity = iota

	// Warning is used for scope violations in unsafe contexts.
	Warning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"

	case Warning:
		return "warning"

	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case Error, Warning:
		return []byte(s.String()), nil

	default:
		return nil, fmt.Errorf("unknown severity %d", s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "error":
		*s = Error

	case "warning":
		*s = Warning

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}

// Diagnostic is a single finding at a source position.
type Diagnostic struct {
	Pos      bound.Pos `json:"pos"`
	Kind     Kind      `json:"kind"`
	Severity Severity  `json:"severity"`

	// Args are the substituted message arguments: names, signature text, parameter names.
	Args []string `json:"args,omitempty"`

	// Method is the qualified name of the analyzed method.
	Method string `json:"method,omitempty"`
}

// Message returns the formatted message text.
func (d Diagnostic) Message() string {
	return d.Kind.Format(d.Severity, d.Args...)
}

// String returns "line:col: severity kind: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s %s: %s", d.Pos, d.Severity, d.Kind, d.Message())
}

// FileResult holds the diagnostics of one file in report order.
type FileResult struct {
	Name        string       `json:"name"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Result is the outcome of analyzing a compilation.
type Result struct {
	Files []FileResult `json:"files"`
}

// Counts returns the number of errors and warnings.
func (r *Result) Counts() (errors, warnings int) {
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			switch d.Severity {
			case Error:
				errors++

			case Warning:
				warnings++
			}
		}
	}

	return errors, warnings
}
