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

/*
Package gclplugin provides golangci-lint plugin integration for the [exclusivity] analyzer.

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: fillmore-labs.com/exclusivity
	    import: fillmore-labs.com/exclusivity/gclplugin
	    version: v0.1.0

2. Run `golangci-lint custom` from your project root.

3. Configure the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - exclusivity
	  settings:
	    custom:
	      exclusivity:
	        type: module
	        description: "exclusivity finds overlapping accesses to the same variable."
	        original-url: "https://fillmore-labs.com/exclusivity"
	        settings:
	          swap: ["swap", "example.com/util.Swap"]
	          swap-method: Swap
	          warn-below: go1.22

4. Run the linter:

	./golangci-lint run .

[exclusivity]: https://pkg.go.dev/fillmore-labs.com/exclusivity
*/
package gclplugin
