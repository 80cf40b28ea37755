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
	"log/slog"

	"fillmore-labs.com/refescape/analyzer/level"
	"fillmore-labs.com/refescape/internal/config"
	"fillmore-labs.com/refescape/internal/run"
)

// Option configures specific behavior of a [New] refescape analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithVersion is an [Option] to select the rule set.
func WithVersion(version level.Version) Option { return versionOption{version: version} }

type versionOption struct{ version level.Version }

func (o versionOption) apply(r *run.Options) {
	r.Version = o.version
}

func (o versionOption) LogAttr() slog.Attr {
	return slog.String("version", o.version.String())
}

// WithUnsafe is an [Option] to configure how violations in unsafe contexts are reported.
func WithUnsafe(unsafe level.Unsafe) Option { return unsafeOption{unsafe: unsafe} }

type unsafeOption struct{ unsafe level.Unsafe }

func (o unsafeOption) apply(r *run.Options) {
	r.Unsafe = o.unsafe
}

func (o unsafeOption) LogAttr() slog.Attr {
	return slog.String("unsafe", o.unsafe.String())
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithEscape is an [Option] to configure whether the escape analysis is enabled.
func WithEscape(escape bool) Option { return checkOption{check: config.EscapeCheck, name: "escape", enabled: escape} }

// WithBoundary is an [Option] to configure whether suspension point and capture checks are enabled.
func WithBoundary(boundary bool) Option {
	return checkOption{check: config.BoundaryCheck, name: "boundary", enabled: boundary}
}

// WithCategorical is an [Option] to configure whether array element, type argument and nullable checks are enabled.
func WithCategorical(categorical bool) Option {
	return checkOption{check: config.CategoricalCheck, name: "categorical", enabled: categorical}
}

type checkOption struct {
	check   config.Checks
	name    string
	enabled bool
}

func (o checkOption) apply(r *run.Options) {
	r.Checks.Set(o.check, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithConcurrency is an [Option] to limit the number of methods analyzed in parallel.
func WithConcurrency(concurrency int) Option { return concurrencyOption{concurrency: concurrency} }

type concurrencyOption struct{ concurrency int }

func (o concurrencyOption) apply(r *run.Options) {
	r.Concurrency = o.concurrency
}

func (o concurrencyOption) LogAttr() slog.Attr {
	return slog.Int("concurrency", o.concurrency)
}
