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

package gclplugin

import "fillmore-labs.com/exclusivity/analyzer"

// Settings represents the configuration options for the exclusivity linter.
type Settings struct {
	// Static enables static exclusivity enforcement.
	Static *bool `json:"static,omitzero"`
	// Swap lists the functions swapping their two pointer arguments.
	Swap *[]string `json:"swap,omitzero"`
	// SwapMethod is the element swapping method suggested by fixes.
	SwapMethod *string `json:"swap-method,omitzero"`
	// WarnBelow reports violations as warnings in files below this Go version.
	WarnBelow *string `json:"warn-below,omitzero"`
}

// Options converts the settings to a list of [analyzer.Option].
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Static, analyzer.WithStatic)
	opts = appendOption(opts, s.Swap, func(names []string) analyzer.Option { return analyzer.WithSwapFuncs(names...) })
	opts = appendOption(opts, s.SwapMethod, analyzer.WithSwapMethod)
	opts = appendOption(opts, s.WarnBelow, analyzer.WithWarnBelow)

	return opts
}

func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
