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

// Package run drives the exclusivity check over an analysis pass.
package run

import (
	"log/slog"
	"strings"

	"golang.org/x/mod/semver"

	"fillmore-labs.com/exclusivity/internal/config"
	"fillmore-labs.com/exclusivity/internal/ir"
)

// Options represent the configuration of the exclusivity analyzer.
type Options struct {
	// Behavior holds behavioral flags.
	Behavior config.Behavior

	// SwapFuncs are the functions recognized as swap primitives, either by
	// plain name or qualified by import path ("example.com/pkg.swap").
	SwapFuncs []string

	// SwapMethod is the element swapping method of mutable collections.
	SwapMethod string

	// WarnBelow is the Go version below which violations are reported as
	// warnings, like "v1.22". Empty means always errors.
	WarnBelow string

	// Logger receives debug output, may be nil.
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior:   config.DefaultBehavior(),
		SwapFuncs:  []string{"swap"},
		SwapMethod: "Swap",
	}
}

// isSwap reports whether callee is one of the configured swap functions.
func (r *Options) isSwap(callee *ir.Func) bool {
	for _, name := range r.SwapFuncs {
		if name == callee.Name || name == callee.String() {
			return true
		}
	}

	return false
}

// compatMode reports whether a file with the given Go version ("go1.21")
// is checked in compatibility mode.
func (r *Options) compatMode(version string) bool {
	if r.WarnBelow == "" {
		return false
	}

	v := GoVersion(version)
	if v == "" {
		return false
	}

	return semver.Compare(v, r.WarnBelow) < 0
}

// GoVersion converts a Go version like "go1.21" or "1.21.3" to a semantic
// version like "v1.21" or "v1.21.3", pre-releases like "go1.21rc1"
// become "v1.21.0-rc1". It returns "" for invalid versions.
func GoVersion(version string) string {
	v := "v" + strings.TrimPrefix(strings.TrimPrefix(version, "go"), "v")

	// pre-release versions like go1.21rc1
	if i := strings.IndexAny(v[1:], "abcdefghijklmnopqrstuvwxyz-") + 1; i > 0 {
		release, pre := v[:i], strings.TrimPrefix(v[i:], "-")
		if strings.Count(release, ".") == 1 {
			release += ".0"
		}

		v = release + "-" + pre
	}

	if !semver.IsValid(v) {
		return ""
	}

	return v
}
