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

//go:generate go tool stringer -type Severity,MessageID -linecomment

// Severity of a [Diagnostic].
type Severity uint8

const (
	Error   Severity = iota // error
	Warning                 // warning
	Note                    // note
)

// MessageID identifies a message template.
type MessageID uint8

const (
	// AccessRequired takes the declaration kind, the declaration name and the access kind.
	AccessRequired MessageID = iota // exclusivity_access_required
	// AccessRequiredUnknown takes the access kind.
	AccessRequiredUnknown // exclusivity_access_required_unknown_decl
	// ConflictingAccess takes no arguments.
	ConflictingAccess // exclusivity_conflicting_access
)

var templates = [...]string{
	AccessRequired:        "overlapping accesses to %s '%s'; %s requires exclusive access",
	AccessRequiredUnknown: "overlapping accesses to an unidentified location; %s requires exclusive access",
	ConflictingAccess:     "conflicting access is here",
}

// Template returns the format string of the message.
func (id MessageID) Template() string { return templates[id] }
