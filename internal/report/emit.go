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
	"go/token"

	"fillmore-labs.com/exclusivity/internal/access"
	"fillmore-labs.com/exclusivity/internal/ir"
)

// Source extracts the literal source text of a range.
type Source interface {
	Text(pos, end token.Pos) (string, bool)
}

// Env provides the services used to build diagnostics.
type Env struct {
	// Severity of primary diagnostics, [Error] by default.
	Severity Severity

	// Source is used by fixes. Without it no fixes are suggested.
	Source Source

	// MutableCollection reports whether the subscript decl belongs to a
	// collection with an element swapping method.
	MutableCollection func(decl *ir.Decl) bool

	// SwapMethod is the name of the element swapping method, "swapAt" by default.
	SwapMethod string
}

// Emit returns the diagnostics for the conflicts of result, in order.
//
// The primary diagnostic is placed at the first access, unless it is a read;
// the other access is attached as a note.
func Emit(result *access.Result, env Env) []Diagnostic {
	if len(result.Conflicts) == 0 {
		return nil
	}

	diagnostics := make([]Diagnostic, 0, len(result.Conflicts))
	for _, c := range result.Conflicts {
		diagnostics = append(diagnostics, env.diagnose(c, result.SwapCalls))
	}

	return diagnostics
}

func (env *Env) diagnose(c access.Conflict, swapCalls []*ir.Call) Diagnostic {
	main, other := c.First, c.Second
	if main.Kind.IsRead() {
		main, other = other, main
	}

	d := Diagnostic{
		Severity: env.Severity,
		Pos:      main.Pos(),
		End:      main.End(),
		Notes: []Diagnostic{{
			Severity: Note,
			Pos:      other.Pos(),
			End:      other.End(),
			ID:       ConflictingAccess,
		}},
	}

	if decl := c.Storage.Decl(); decl != nil {
		d.ID = AccessRequired
		d.Args = []any{decl.Kind, decl.Name, main.Kind}
		d.Fix = env.swapFix(c.First, c.Second, swapCalls)
	} else {
		d.ID = AccessRequiredUnknown
		d.Args = []any{main.Kind}
	}

	return d
}
