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

package analyzer

import (
	"flag"

	"fillmore-labs.com/refescape/internal/run"
)

// Public API constants for the refescape analyzer.
const (
	name = "refescape"
	doc  = `refescape checks that by-ref-like values never outlive the variables they reference`
	url  = "https://pkg.go.dev/fillmore-labs.com/refescape"
)

// Analyzer is a configured ref-escape analysis. It must not be copied after first use.
type Analyzer struct {
	// Name of the analysis, used in nolint directives.
	Name string

	// Doc is a one-line description.
	Doc string

	// URL holds the documentation link.
	URL string

	// Flags binds the configuration to command line flags.
	Flags flag.FlagSet

	r *run.Options
}

// New creates a new instance of the refescape analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. Command line tools bind
// [Analyzer.Flags] instead.
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		r:    r,
	}

	a.Flags.Init(name, flag.ContinueOnError)
	registerFlags(r, &a.Flags)

	return a
}
