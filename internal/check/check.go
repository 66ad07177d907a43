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

// Package check runs the static exclusivity check on a single function.
package check

import (
	"log/slog"

	"fillmore-labs.com/exclusivity/internal/access"
	"fillmore-labs.com/exclusivity/internal/ir"
	"fillmore-labs.com/exclusivity/internal/report"
)

// Options configure [Analyze].
type Options struct {
	// Enabled turns static enforcement on. When false, Analyze reports nothing.
	Enabled bool

	// IsSwap recognizes calls to the swap primitive.
	IsSwap func(callee *ir.Func) bool

	Env    report.Env
	Logger *slog.Logger
}

// Analyze checks fn for exclusivity violations and returns the diagnostics
// in a deterministic order.
//
// A malformed function yields an error wrapping [ir.ErrContract] and no
// diagnostics.
func Analyze(fn *ir.Function, opts Options) ([]report.Diagnostic, error) {
	if !opts.Enabled {
		return nil, nil
	}

	res, err := access.Walk(fn, access.Options{IsSwap: opts.IsSwap, Logger: opts.Logger})
	if err != nil {
		return nil, err
	}

	return report.Emit(res, opts.Env), nil
}
