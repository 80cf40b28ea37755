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

package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"fillmore-labs.com/refescape/diag"
)

const (
	colorError   = "\x1b[31m"
	colorWarning = "\x1b[33m"
	colorReset   = "\x1b[39m"
)

// WriteText writes one line per diagnostic: "file:line:col: severity kind: message".
// With color set, severities are highlighted with ANSI escape sequences.
func WriteText(w io.Writer, r *diag.Result, color bool) error {
	bw := bufio.NewWriter(w)

	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			severity := d.Severity.String()
			if color {
				switch d.Severity {
				case diag.Error:
					severity = colorError + severity + colorReset

				case diag.Warning:
					severity = colorWarning + severity + colorReset
				}
			}

			fmt.Fprintf(bw, "%s:%s: %s %s: %s\n", f.Name, d.Pos, severity, d.Kind, d.Message()) // ignore error
		}
	}

	return bw.Flush()
}

// Document is the JSON report of one run.
type Document struct {
	Run      uuid.UUID  `json:"run"`
	Version  string     `json:"version"`
	Files    []jsonFile `json:"files"`
	Errors   int        `json:"errors"`
	Warnings int        `json:"warnings"`
}

type jsonFile struct {
	Name        string           `json:"name"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	diag.Diagnostic
	Message string `json:"message"`
}

// NewDocument creates the JSON report for r, identified by run.
func NewDocument(run uuid.UUID, version string, r *diag.Result) Document {
	doc := Document{Run: run, Version: version, Files: make([]jsonFile, 0, len(r.Files))}

	for _, f := range r.Files {
		jf := jsonFile{Name: f.Name, Diagnostics: make([]jsonDiagnostic, 0, len(f.Diagnostics))}
		for _, d := range f.Diagnostics {
			jf.Diagnostics = append(jf.Diagnostics, jsonDiagnostic{Diagnostic: d, Message: d.Message()})
		}

		doc.Files = append(doc.Files, jf)
	}

	doc.Errors, doc.Warnings = r.Counts()

	return doc
}

// WriteJSON writes the indented JSON report of r.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// Summary returns a one-line summary, e.g. "2 errors and 1 warning in 'a.bound.yaml'".
func Summary(r *diag.Result) string {
	errors, warnings := r.Counts()
	if errors == 0 && warnings == 0 {
		return "no issues"
	}

	var files []string

	for _, f := range r.Files {
		if len(f.Diagnostics) > 0 {
			files = append(files, f.Name)
		}
	}

	var counts []string
	if errors > 0 {
		counts = append(counts, plural(errors, "error"))
	}

	if warnings > 0 {
		counts = append(counts, plural(warnings, "warning"))
	}

	return strings.Join(counts, " and ") + " in " + concatNames(files)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}

// concatNames formats a list of names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(names []string) string {
	var all strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			all.WriteString(separator) // ignore error
		}

		all.WriteByte('\'')   // ignore error
		all.WriteString(name) // ignore error
		all.WriteByte('\'')   // ignore error
	}

	return all.String()
}
