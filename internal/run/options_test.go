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

package run

import (
	"testing"

	"fillmore-labs.com/exclusivity/internal/ir"
)

func TestGoVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version, want string
	}{
		{"go1.22", "v1.22"},
		{"1.21.3", "v1.21.3"},
		{"v1.20", "v1.20"},
		{"go1.23rc1", "v1.23.0-rc1"},
		{"latest", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := GoVersion(tt.version); got != tt.want {
			t.Errorf("Got GoVersion(%q) = %q, expected %q", tt.version, got, tt.want)
		}
	}
}

func TestCompatMode(t *testing.T) {
	t.Parallel()

	r := DefaultOptions()

	if r.compatMode("go1.20") {
		t.Error("Expected no compatibility mode by default")
	}

	r.WarnBelow = "v1.22"

	tests := []struct {
		version string
		want    bool
	}{
		{"go1.21", true},
		{"go1.22", false},
		{"go1.22.5", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := r.compatMode(tt.version); got != tt.want {
			t.Errorf("Got compatMode(%q) = %t, expected %t", tt.version, got, tt.want)
		}
	}
}

func TestIsSwap(t *testing.T) {
	t.Parallel()

	r := DefaultOptions()
	r.SwapFuncs = []string{"swap", "example.com/util.Exchange"}

	tests := []struct {
		fn   ir.Func
		want bool
	}{
		{ir.Func{Pkg: "test", Name: "swap"}, true},
		{ir.Func{Pkg: "example.com/util", Name: "Exchange"}, true},
		{ir.Func{Pkg: "other", Name: "Exchange"}, false},
	}

	for _, tt := range tests {
		if got := r.isSwap(&tt.fn); got != tt.want {
			t.Errorf("Got isSwap(%s) = %t, expected %t", &tt.fn, got, tt.want)
		}
	}
}
