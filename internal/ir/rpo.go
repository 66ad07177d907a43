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

import "slices"

// ReversePostorder returns the indices of all blocks reachable from the entry
// in reverse post order. Each block except the entry is preceded by at least
// one of its predecessors. The order is deterministic: successors are visited
// in the order they appear in [Block.Succs].
func (f *Function) ReversePostorder() []int {
	if len(f.Blocks) == 0 {
		return nil
	}

	type frame struct{ block, next int }

	visited := make([]bool, len(f.Blocks))
	post := make([]int, 0, len(f.Blocks))

	visited[0] = true
	stack := []frame{{block: 0}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if succs := f.Blocks[top.block].Succs; top.next < len(succs) {
			s := succs[top.next]
			top.next++

			if !visited[s] {
				visited[s] = true
				stack = append(stack, frame{block: s})
			}

			continue
		}

		post = append(post, top.block)
		stack = stack[:len(stack)-1]
	}

	slices.Reverse(post)

	return post
}
