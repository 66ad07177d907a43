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

package lower

import (
	"go/token"

	"golang.org/x/tools/go/ssa"
)

// readOnlyParam reports whether the parameter i of fn is a pointer only
// ever dereferenced for loading, possibly through field and element
// projections.
func readOnlyParam(fn *ssa.Function, i int) bool {
	if fn == nil {
		return false
	}

	if len(fn.Blocks) == 0 && fn.Origin() != nil {
		fn = fn.Origin()
	}

	if len(fn.Blocks) == 0 || i >= len(fn.Params) {
		return false
	}

	return onlyLoaded(fn.Params[i])
}

func onlyLoaded(v ssa.Value) bool {
	refs := v.Referrers()
	if refs == nil {
		return false
	}

	for _, instr := range *refs {
		switch instr := instr.(type) {
		case *ssa.UnOp:
			if instr.Op != token.MUL {
				return false
			}

		case *ssa.FieldAddr:
			if !onlyLoaded(instr) {
				return false
			}

		case *ssa.IndexAddr:
			if instr.X != v || !onlyLoaded(instr) {
				return false
			}

		case *ssa.DebugRef:

		default:
			return false
		}
	}

	return true
}
