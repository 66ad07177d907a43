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

package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/exclusivity/internal/config"
	"fillmore-labs.com/exclusivity/internal/run"
)

// behaviorValue is a boolean [flag.Value] for a single behavior flag.
type behaviorValue struct {
	flags *config.Behavior
	value config.Flags
}

// Set implements [flag.Value].
func (f behaviorValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f behaviorValue) String() string {
	if f.flags == nil {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f behaviorValue) Get() any {
	if f.flags == nil {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f behaviorValue) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// listValue is a comma separated list [flag.Value].
type listValue []string

// Set implements [flag.Value].
func (l *listValue) Set(s string) error {
	var names []string

	for name := range strings.SplitSeq(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	*l = names

	return nil
}

// String implements [flag.Value].
func (l *listValue) String() string {
	if l == nil {
		return ""
	}

	return strings.Join(*l, ",")
}

// versionValue is a Go version [flag.Value], stored as semantic version.
type versionValue string

// Set implements [flag.Value].
func (v *versionValue) Set(s string) error {
	if s == "" {
		*v = ""

		return nil
	}

	sv := run.GoVersion(s)
	if sv == "" {
		return fmt.Errorf("invalid Go version %q", s)
	}

	*v = versionValue(sv)

	return nil
}

// String implements [flag.Value].
func (v *versionValue) String() string {
	if v == nil {
		return ""
	}

	return string(*v)
}
