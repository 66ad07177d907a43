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

import "fillmore-labs.com/exclusivity/internal/storage"

// State maps storage locations to the accesses in progress.
// Drained records are removed.
type State map[storage.Storage]*Record

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := make(State, len(s))
	for loc, r := range s {
		rc := *r
		c[loc] = &rc
	}

	return c
}

// Record returns the record for loc, creating it if needed.
func (s State) Record(loc storage.Storage) *Record {
	r, ok := s[loc]
	if !ok {
		r = &Record{}
		s[loc] = r
	}

	return r
}

