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

package access_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/exclusivity/internal/access"
	"fillmore-labs.com/exclusivity/internal/ir"
	"fillmore-labs.com/exclusivity/internal/storage"
)

type event struct {
	end  bool
	kind ir.AccessKind
	ref  int // index of the begin event to end
}

func begin(kind ir.AccessKind) event { return event{kind: kind} }

func end(ref int) event { return event{end: true, ref: ref} }

func TestWalkStraightLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		events    []event
		conflicts [][2]int // indices of the begin events
	}{
		{"ReadRead", []event{begin(ir.Read), begin(ir.Read), end(1), end(0)}, nil},
		{"ReadModify", []event{begin(ir.Read), begin(ir.Modify), end(1), end(0)}, [][2]int{{0, 1}}},
		{"ModifyRead", []event{begin(ir.Modify), begin(ir.Read), end(1), end(0)}, [][2]int{{0, 1}}},
		{"InitDeinit", []event{begin(ir.Init), begin(ir.Deinit), end(1), end(0)}, [][2]int{{0, 1}}},
		{"Sequential", []event{begin(ir.Modify), end(0), begin(ir.Modify), end(2)}, nil},
		{
			"Dedup",
			[]event{begin(ir.Modify), begin(ir.Modify), begin(ir.Modify), end(2), end(1), end(0)},
			[][2]int{{0, 1}},
		},
		{
			"DedupReadsAfterConflict",
			[]event{begin(ir.Read), begin(ir.Modify), begin(ir.Read), end(2), end(1), end(0)},
			[][2]int{{0, 1}},
		},
		{
			"ReadsThenWrite",
			[]event{begin(ir.Read), begin(ir.Read), begin(ir.Modify), end(2), end(1), end(0)},
			[][2]int{{0, 2}},
		},
		{
			"DrainResetsEpisode",
			[]event{begin(ir.Modify), end(0), begin(ir.Modify), begin(ir.Modify), end(3), end(2)},
			[][2]int{{2, 3}},
		},
		{
			"FirstStaysOpen",
			[]event{begin(ir.Modify), begin(ir.Read), end(1), begin(ir.Read), end(3), end(0)},
			[][2]int{{0, 1}, {0, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := ir.NewBuilder(tt.name, 0)
			x := b.Alloc(&ir.Decl{Kind: "var", Name: "x"}, false, 0)

			accesses := make([]*ir.BeginAccess, len(tt.events))
			for i, e := range tt.events {
				if e.end {
					b.EndAccess(accesses[e.ref], 0)

					continue
				}

				accesses[i] = b.BeginAccess(e.kind, x, nil, 0)
			}

			b.Return(0)

			res, err := Walk(b.Function(), Options{})
			if err != nil {
				t.Fatalf("Walk failed: %v", err)
			}

			if got, want := len(res.Conflicts), len(tt.conflicts); got != want {
				t.Fatalf("Got %d conflicts, expected %d", got, want)
			}

			for i, c := range res.Conflicts {
				if c.First != accesses[tt.conflicts[i][0]] || c.Second != accesses[tt.conflicts[i][1]] {
					t.Errorf("Got conflict %s / %s, expected events %v", c.First, c.Second, tt.conflicts[i])
				}

				if c.Storage != storage.ForValue(x) {
					t.Errorf("Got storage %s, expected %s", c.Storage, x.Name())
				}
			}
		})
	}
}

func TestWalkGlobal(t *testing.T) {
	t.Parallel()

	g := &ir.Global{Name: "g", Decl: &ir.Decl{Kind: "var", Name: "g"}}

	b := ir.NewBuilder("f", 0)
	read := b.BeginAccess(ir.Read, b.GlobalAddr(g, 0), nil, 1)
	write := b.BeginAccess(ir.Modify, b.GlobalAddr(g, 0), nil, 2)
	b.EndAccess(write, 3)
	b.EndAccess(read, 4)
	b.Return(5)

	res, err := Walk(b.Function(), Options{})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(res.Conflicts) != 1 {
		t.Fatalf("Got %d conflicts, expected 1", len(res.Conflicts))
	}

	c := res.Conflicts[0]
	if c.First != read || c.Second != write {
		t.Errorf("Got conflict %s / %s, expected read then write", c.First, c.Second)
	}

	if got := c.Storage.Decl(); got != g.Decl {
		t.Errorf("Got decl %v, expected %v", got, g.Decl)
	}
}

func TestWalkBranches(t *testing.T) {
	t.Parallel()

	// The entry opens x, both arms read x, the join closes x.
	b := ir.NewBuilder("f", 0)
	x := b.Alloc(&ir.Decl{Kind: "var", Name: "x"}, false, 0)
	y := b.Alloc(&ir.Decl{Kind: "var", Name: "y"}, false, 0)
	ax := b.BeginAccess(ir.Modify, x, nil, 0)

	then, els, join := b.NewBlock(), b.NewBlock(), b.NewBlock()
	b.Branch(then, els)

	for _, arm := range []int{then, els} {
		b.SetBlock(arm)
		ay := b.BeginAccess(ir.Modify, y, nil, 0)
		rx := b.BeginAccess(ir.Read, x, nil, 0)
		b.EndAccess(rx, 0)
		b.EndAccess(ay, 0)
		b.Jump(join)
	}

	b.SetBlock(join)
	b.EndAccess(ax, 0)
	b.Return(0)

	fn := b.Function()

	res, err := Walk(fn, Options{})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if got, want := len(res.Conflicts), 2; got != want {
		t.Errorf("Got %d conflicts, expected %d", got, want)
	}
}

func TestWalkSwapCalls(t *testing.T) {
	t.Parallel()

	b := ir.NewBuilder("f", 0)
	call := b.Call(&ir.Func{Name: "swap"}, nil, nil, 0)
	b.Call(&ir.Func{Name: "other"}, nil, nil, 0)
	b.Call(nil, nil, nil, 0)
	custom := b.Call(&ir.Func{Pkg: "slices", Name: "Swap"}, nil, nil, 0)
	b.Return(0)

	res, err := Walk(b.Function(), Options{})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(res.SwapCalls) != 1 || res.SwapCalls[0] != call {
		t.Errorf("Got swap calls %v, expected [%s]", res.SwapCalls, call)
	}

	isSwap := func(f *ir.Func) bool { return f.Pkg == "slices" && f.Name == "Swap" }

	res, err = Walk(b.Function(), Options{IsSwap: isSwap})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(res.SwapCalls) != 1 || res.SwapCalls[0] != custom {
		t.Errorf("Got swap calls %v, expected [%s]", res.SwapCalls, custom)
	}
}

func TestWalkContractViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *ir.Builder)
	}{
		{"OpenAtReturn", func(b *ir.Builder) {
			b.BeginAccess(ir.Modify, b.Alloc(nil, false, 0), nil, 0)
			b.Return(0)
		}},
		{"EndWithoutBegin", func(b *ir.Builder) {
			x := b.Alloc(nil, false, 0)
			b.EndAccess(&ir.BeginAccess{Kind: ir.Read, Addr: x}, 0)
			b.Return(0)
		}},
		{"EndOfOtherKind", func(b *ir.Builder) {
			x := b.Alloc(nil, false, 0)
			b.BeginAccess(ir.Modify, x, nil, 0)
			b.EndAccess(&ir.BeginAccess{Kind: ir.Read, Addr: x}, 0)
			b.Return(0)
		}},
		{"UnknownAddress", func(b *ir.Builder) {
			b.BeginAccess(ir.Read, b.Opaque("value", 0), nil, 0)
			b.Return(0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := ir.NewBuilder(tt.name, 0)
			tt.build(b)

			res, err := Walk(b.Function(), Options{})
			if !errors.Is(err, ir.ErrContract) {
				t.Fatalf("Got error %v, expected contract violation", err)
			}

			if res != nil {
				t.Errorf("Got result %v on error", res)
			}

			var ie *ir.InternalError
			if !errors.As(err, &ie) || ie.Func != tt.name {
				t.Errorf("Got error %v, expected it to name function %s", err, tt.name)
			}
		})
	}
}

func TestRecord(t *testing.T) {
	t.Parallel()

	var r Record

	a := &ir.BeginAccess{Kind: ir.Read}
	r.Begin(a)

	if r.First != a || r.Reads != 1 {
		t.Errorf("Got %+v after begin", r)
	}

	if err := r.End(a); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	if r.First != nil || r.InProgress() {
		t.Errorf("Got %+v after draining, expected zero record", r)
	}

	if err := r.End(a); !errors.Is(err, ir.ErrContract) {
		t.Errorf("Got error %v on underflow, expected contract violation", err)
	}
}
