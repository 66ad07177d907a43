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

package ir

import (
	"errors"
	"fmt"
	"go/token"
)

// ErrContract is wrapped by every [InternalError].
var ErrContract = errors.New("IR contract violation")

// InternalError is a broken invariant of the input IR. It indicates a bug in
// the producer of the IR, never a problem in the user's code.
type InternalError struct {
	Func string
	Pos  token.Pos
	Msg  string
}

// Errorf returns an [InternalError] for fn at pos.
func Errorf(fn *Function, pos token.Pos, format string, args ...any) error {
	var name string
	if fn != nil {
		name = fn.Name
	}

	return &InternalError{Func: name, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *InternalError) Error() string {
	msg := []byte("Internal Error")
	if e.Func != "" {
		msg = fmt.Appendf(msg, " in %s", e.Func)
	}

	msg = fmt.Appendf(msg, ": %s", e.Msg)

	return string(msg)
}

// Unwrap returns [ErrContract].
func (e *InternalError) Unwrap() error { return ErrContract }
