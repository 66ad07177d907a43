// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
	"strings"

	"fillmore-labs.com/exclusivity/internal/config"
	"fillmore-labs.com/exclusivity/internal/run"
)

// Option configures specific behavior of a [New] exclusivity analyzer.
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

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithStatic is an [Option] to turn static exclusivity enforcement on or off.
func WithStatic(static bool) Option { return staticOption{static: static} }

type staticOption struct{ static bool }

func (o staticOption) apply(r *run.Options) {
	r.Behavior.Set(config.StaticEnforcement, o.static)
}

func (o staticOption) LogAttr() slog.Attr {
	return slog.Bool("static", o.static)
}

// WithSwapFuncs is an [Option] to configure the functions recognized as
// swapping their two pointer arguments, by name or as "import/path.name".
func WithSwapFuncs(names ...string) Option { return swapFuncsOption{names: names} }

type swapFuncsOption struct{ names []string }

func (o swapFuncsOption) apply(r *run.Options) {
	r.SwapFuncs = o.names
}

func (o swapFuncsOption) LogAttr() slog.Attr {
	return slog.String("swap", strings.Join(o.names, ","))
}

// WithSwapMethod is an [Option] to configure the method name suggested by fixes.
// Collections with a method of this name and signature func(i, j int) get a
// suggestion to call it instead of swapping two element addresses.
func WithSwapMethod(method string) Option { return swapMethodOption{method: method} }

type swapMethodOption struct{ method string }

func (o swapMethodOption) apply(r *run.Options) {
	r.SwapMethod = o.method
}

func (o swapMethodOption) LogAttr() slog.Attr {
	return slog.String("swap-method", o.method)
}

// WithWarnBelow is an [Option] to report violations in files with a Go
// version lower than version, like "go1.22", as warnings.
func WithWarnBelow(version string) Option { return warnBelowOption{version: version} }

type warnBelowOption struct{ version string }

func (o warnBelowOption) apply(r *run.Options) {
	if v := run.GoVersion(o.version); v != "" {
		r.WarnBelow = v
	} else {
		r.WarnBelow = o.version // rejected by Run
	}
}

func (o warnBelowOption) LogAttr() slog.Attr {
	return slog.String("warn-below", o.version)
}

// WithLogger is an [Option] to configure a logger for debug output.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
