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

package settings

import (
	"fillmore-labs.com/refescape/analyzer"
	"fillmore-labs.com/refescape/analyzer/level"
)

// Settings represents the configuration options of a refescape run.
type Settings struct {
	// Version selects the rule set.
	Version *level.Version `json:"version,omitempty" yaml:"version,omitempty"`
	// Unsafe selects how violations in unsafe contexts are reported.
	Unsafe *level.Unsafe `json:"unsafe,omitempty" yaml:"unsafe,omitempty"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitempty" yaml:"generated,omitempty"`
	// Escape enables the escape analysis.
	Escape *bool `json:"escape,omitempty" yaml:"escape,omitempty"`
	// Boundary enables suspension point and capture checks.
	Boundary *bool `json:"boundary,omitempty" yaml:"boundary,omitempty"`
	// Categorical enables array element, type argument and nullable checks.
	Categorical *bool `json:"categorical,omitempty" yaml:"categorical,omitempty"`
	// Concurrency limits the number of methods analyzed in parallel.
	Concurrency *int `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the refescape analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() analyzer.Options {
	var opts analyzer.Options

	opts = appendOption(opts, s.Version, analyzer.WithVersion)
	opts = appendOption(opts, s.Unsafe, analyzer.WithUnsafe)
	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.Escape, analyzer.WithEscape)
	opts = appendOption(opts, s.Boundary, analyzer.WithBoundary)
	opts = appendOption(opts, s.Categorical, analyzer.WithCategorical)
	opts = appendOption(opts, s.Concurrency, analyzer.WithConcurrency)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts analyzer.Options, value *T, constructor func(T) analyzer.Option) analyzer.Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
