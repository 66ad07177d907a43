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

import "fillmore-labs.com/exclusivity/internal/ir"

// Record counts the in-progress accesses to one storage location.
//
// First is set iff Reads+NonReads > 0.
type Record struct {
	Reads    int
	NonReads int
	First    *ir.BeginAccess
}

// InProgress reports whether any access is in progress.
func (r *Record) InProgress() bool { return r.Reads+r.NonReads > 0 }

// ConflictsWith reports whether beginning an access of the given kind
// violates exclusivity with the accesses in progress.
func (r *Record) ConflictsWith(kind ir.AccessKind) bool {
	if kind.IsRead() {
		return r.NonReads > 0
	}

	return r.InProgress()
}

// AlreadyHadConflict reports whether the accesses in progress already
// contain a violation.
func (r *Record) AlreadyHadConflict() bool {
	return (r.NonReads > 0 && r.Reads > 0) || r.NonReads > 1
}

// Begin adds a started access.
func (r *Record) Begin(access *ir.BeginAccess) {
	if !r.InProgress() {
		r.First = access
	}

	if access.Kind.IsRead() {
		r.Reads++
	} else {
		r.NonReads++
	}
}

// End removes the finished access started by access.
func (r *Record) End(access *ir.BeginAccess) error {
	count := &r.NonReads
	if access.Kind.IsRead() {
		count = &r.Reads
	}

	if *count == 0 {
		return ir.Errorf(nil, access.Pos(), "end of %s access %s without matching begin", access.Kind, access.Name())
	}

	*count--

	if !r.InProgress() {
		r.First = nil
	}

	return nil
}
