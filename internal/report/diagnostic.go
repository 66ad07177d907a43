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

package report

import (
	"fmt"
	"go/token"
)

// Diagnostic is a message about a source range, with optional notes and fix.
type Diagnostic struct {
	Severity Severity
	Pos, End token.Pos
	ID       MessageID
	Args     []any
	Notes    []Diagnostic
	Fix      *Fix
}

// Message renders the message template with its arguments.
func (d *Diagnostic) Message() string {
	if len(d.Args) == 0 {
		return d.ID.Template()
	}

	return fmt.Sprintf(d.ID.Template(), d.Args...)
}

// Fix replaces the source range Pos to End with NewText.
type Fix struct {
	Pos, End token.Pos
	NewText  string
	Message  string
}
