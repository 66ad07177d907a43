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

package access

import (
	"context"
	"errors"
	"log/slog"

	"fillmore-labs.com/exclusivity/internal/ir"
	"fillmore-labs.com/exclusivity/internal/storage"
)

// Options configure [Walk].
type Options struct {
	// IsSwap recognizes calls to the swap primitive. Defaults to functions named "swap".
	IsSwap func(callee *ir.Func) bool

	// Logger receives debug output. Defaults to discarding.
	Logger *slog.Logger
}

// Conflict is a violation of exclusivity between the first in-progress
// access to Storage and a new access.
type Conflict struct {
	Storage storage.Storage
	First   *ir.BeginAccess
	Second  *ir.BeginAccess
}

// Result is the outcome of [Walk].
type Result struct {
	// Conflicts in traversal order, at most one per conflict episode.
	Conflicts []Conflict

	// SwapCalls are the calls recognized as the swap primitive, in traversal order.
	SwapCalls []*ir.Call
}

// Walk traverses the blocks of fn in reverse post order, tracking the
// accesses in progress, and returns the conflicts found.
//
// The entry block starts with no accesses in progress; every other block
// starts with the state at the end of its first processed predecessor.
//
// A malformed function results in an error wrapping [ir.ErrContract].
func Walk(fn *ir.Function, opts Options) (*Result, error) {
	w := walker{
		fn:      fn,
		isSwap:  opts.IsSwap,
		logger:  opts.Logger,
		storage: make(map[*ir.BeginAccess]storage.Storage),
		result:  &Result{},
	}

	if w.isSwap == nil {
		w.isSwap = isSwapFunc
	}

	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}

	if err := w.walk(); err != nil {
		return nil, inFunction(fn, err)
	}

	return w.result, nil
}

func isSwapFunc(callee *ir.Func) bool { return callee.Name == "swap" }

type walker struct {
	fn      *ir.Function
	isSwap  func(*ir.Func) bool
	logger  *slog.Logger
	storage map[*ir.BeginAccess]storage.Storage
	result  *Result
}

func (w *walker) walk() error {
	out := make([]State, len(w.fn.Blocks))

	for _, i := range w.fn.ReversePostorder() {
		state, err := w.input(i, out)
		if err != nil {
			return err
		}

		for _, instr := range w.fn.Blocks[i].Instrs {
			if err := w.visit(state, instr); err != nil {
				return err
			}
		}

		out[i] = state
	}

	return nil
}

// input returns the state at the start of block i.
func (w *walker) input(i int, out []State) (State, error) {
	if i == 0 {
		return make(State), nil
	}

	for _, p := range w.fn.Blocks[i].Preds {
		if out[p] != nil {
			return out[p].Clone(), nil
		}
	}

	return nil, ir.Errorf(w.fn, 0, "block %d has no processed predecessor", i)
}

func (w *walker) visit(state State, instr ir.Instruction) error {
	switch instr := instr.(type) {
	case *ir.BeginAccess:
		loc, err := w.resolve(instr)
		if err != nil {
			return err
		}

		w.begin(state, loc, instr)

	case *ir.EndAccess:
		loc, err := w.resolve(instr.Begin)
		if err != nil {
			return err
		}

		r, ok := state[loc]
		if !ok {
			return ir.Errorf(w.fn, instr.Pos(), "end of access %s to %s without record", instr.Begin.Name(), loc)
		}

		if err := r.End(instr.Begin); err != nil {
			return err
		}

		if !r.InProgress() {
			delete(state, loc)
		}

	case *ir.Call:
		if instr.Callee != nil && w.isSwap(instr.Callee) {
			w.result.SwapCalls = append(w.result.SwapCalls, instr)
		}

	case *ir.Return:
		if n := len(state); n > 0 {
			return ir.Errorf(w.fn, instr.Pos(), "%d storage locations with accesses in progress at return", n)
		}
	}

	return nil
}

func (w *walker) begin(state State, loc storage.Storage, access *ir.BeginAccess) {
	r := state.Record(loc)

	if r.ConflictsWith(access.Kind) && !r.AlreadyHadConflict() {
		c := Conflict{Storage: loc, First: r.First, Second: access}
		w.result.Conflicts = append(w.result.Conflicts, c)

		w.logger.LogAttrs(context.Background(), slog.LevelDebug, "exclusivity conflict",
			slog.String("func", w.fn.Name),
			slog.String("storage", loc.String()),
			slog.String("first", r.First.Kind.String()),
			slog.String("second", access.Kind.String()))
	}

	r.Begin(access)
}

// resolve returns the storage accessed by access.
// End markers resolve through their begin, so results are cached.
func (w *walker) resolve(access *ir.BeginAccess) (storage.Storage, error) {
	if loc, ok := w.storage[access]; ok {
		return loc, nil
	}

	loc, err := storage.Resolve(access.Addr)
	if err != nil {
		return storage.Storage{}, err
	}

	w.storage[access] = loc

	return loc, nil
}

func inFunction(fn *ir.Function, err error) error {
	var ie *ir.InternalError
	if errors.As(err, &ie) && ie.Func == "" {
		ie.Func = fn.Name
	}

	return err
}
