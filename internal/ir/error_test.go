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

package ir_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/exclusivity/internal/ir"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := Errorf(&Function{Name: "f"}, 0, "no record for %s", "%1")

	if !errors.Is(err, ErrContract) {
		t.Errorf("Expected %v to wrap ErrContract", err)
	}

	if got, want := err.Error(), "Internal Error in f: no record for %1"; got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}

	var ie *InternalError
	if !errors.As(err, &ie) || ie.Func != "f" {
		t.Errorf("Got %#v, expected an internal error for f", err)
	}
}
