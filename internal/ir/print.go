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
	"fmt"
	"strings"
)

func declName(d *Decl) string {
	if d == nil {
		return "_"
	}

	return d.Name
}

func (v *Param) String() string { return fmt.Sprintf("%s = param %s", v.Name(), declName(v.Decl)) }

func (v *Opaque) String() string { return fmt.Sprintf("%s = opaque %q", v.Name(), v.Comment) }

func (v *Alloc) String() string {
	op := "alloc_stack"
	if v.Heap {
		op = "alloc_box"
	}

	return fmt.Sprintf("%s = %s %s", v.Name(), op, declName(v.Decl))
}

func (v *PointerToAddress) String() string {
	return fmt.Sprintf("%s = pointer_to_address %s", v.Name(), v.X.Name())
}

func (v *GlobalAddr) String() string {
	return fmt.Sprintf("%s = global_addr %s", v.Name(), v.Global.Name)
}

func (v *RefFieldAddr) String() string {
	return fmt.Sprintf("%s = ref_element_addr %s, #%d", v.Name(), v.Object.Name(), v.Field.Index)
}

func (v *Project) String() string {
	if v.Index != nil {
		return fmt.Sprintf("%s = %s %s, %s", v.Name(), v.Op, v.X.Name(), v.Index.Name())
	}

	return fmt.Sprintf("%s = %s %s", v.Name(), v.Op, v.X.Name())
}

func (v *BeginBorrow) String() string { return fmt.Sprintf("%s = begin_borrow %s", v.Name(), v.X.Name()) }

func (v *BeginAccess) String() string {
	return fmt.Sprintf("%s = begin_access [%s] %s", v.Name(), v.Kind, v.Addr.Name())
}

func (v *EndAccess) String() string { return "end_access " + v.Begin.Name() }

func (v *Call) String() string {
	var b strings.Builder

	b.WriteString("apply ")

	if v.Callee != nil {
		b.WriteString(v.Callee.String())
	} else {
		b.WriteString("<dynamic>")
	}

	b.WriteByte('(')

	for i, a := range v.Args {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(a.Name())
	}

	b.WriteByte(')')

	return b.String()
}

func (v *Return) String() string { return "return" }

func (v *Unreachable) String() string { return "unreachable" }

// String returns a textual dump of the function, one instruction per line.
func (f *Function) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "func %s(", f.Name)

	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%s %s", p.Name(), declName(p.Decl))
	}

	b.WriteString(")\n")

	for i := range f.Blocks {
		blk := &f.Blocks[i]
		fmt.Fprintf(&b, "bb%d: preds=%v succs=%v\n", blk.Index, blk.Preds, blk.Succs)

		for _, instr := range blk.Instrs {
			fmt.Fprintf(&b, "\t%s\n", instr)
		}
	}

	return b.String()
}
