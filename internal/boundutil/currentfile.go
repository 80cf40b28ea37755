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

package boundutil

import (
	"regexp"
	"strings"

	"fillmore-labs.com/refescape/bound"
)

// refescape is the name of the analysis in nolint directives.
const refescape = "refescape"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file   *bound.File
	nolint bool
}

// NewCurrentFile creates a new [CurrentFile] from a *[bound.File].
func NewCurrentFile(file *bound.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	return CurrentFile{file: file, nolint: HasNoLint(file.Directives)}
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.file != nil && c.file.Generated
}

// Skip reports whether m is excluded by a nolint directive on the file or the method.
func (c CurrentFile) Skip(m *bound.Method) bool {
	return c.nolint || HasNoLint(m.Directives)
}

var nolintPattern = regexp.MustCompile(`^(?://)?\s*nolint:([a-zA-Z0-9,_-]+)`)

// HasNoLint checks if one of the directives is a `nolint:refescape` or `nolint:all` directive.
func HasNoLint(directives []string) bool {
	for _, d := range directives {
		matches := nolintPattern.FindStringSubmatch(d)
		if matches == nil {
			continue
		}

		// Parse comma-separated linter list
		for linter := range strings.SplitSeq(matches[1], ",") {
			if l := strings.ToLower(strings.TrimSpace(linter)); l == refescape || l == "all" {
				return true
			}
		}
	}

	return false
}
