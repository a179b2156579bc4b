// Copyright 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"strings"

	"github.com/netdevops/hier-config/hierconfig"
)

// ParseJunosBraced translates a braced Junos "show configuration" style
// document -- nested "key { ... }" blocks terminated with ";" statements --
// into flat "set" lines and hands the result to ParseJunosFlat. This is the
// two-stage design called out in spec §4.1: the brace grammar carries no
// information the flat grammar lacks, so the tree builder only needs to
// know the flat form.
func ParseJunosBraced(d *hierconfig.Driver, text string) (*hierconfig.Node, hierconfig.Errors) {
	flat, errs := bracedToFlat(text)
	if errs != nil {
		return hierconfig.NewRoot(), errs
	}
	root, parseErrs := ParseJunosFlat(d, flat)
	return root, parseErrs
}

// bracedToFlat walks the brace-delimited text, accumulating the current
// path segments on a stack, and emits one "set <path> <statement>" line
// per ";"-terminated statement.
func bracedToFlat(text string) (string, hierconfig.Errors) {
	var errs hierconfig.Errors
	var out strings.Builder
	var stack []string

	lineNo := 0
	for _, raw := range splitLines(text) {
		lineNo++
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "/*") {
			continue
		}

		for line != "" {
			switch {
			case line == "}":
				if len(stack) == 0 {
					errs = hierconfig.AppendErr(errs, &hierconfig.ParseError{Line: lineNo, Text: raw, Msg: "unbalanced closing brace"})
				} else {
					stack = stack[:len(stack)-1]
				}
				line = ""

			case strings.HasSuffix(line, "{"):
				head := strings.TrimSpace(strings.TrimSuffix(line, "{"))
				if head != "" {
					stack = append(stack, head)
				}
				line = ""

			case strings.HasSuffix(line, ";"):
				stmt := strings.TrimSpace(strings.TrimSuffix(line, ";"))
				if stmt != "" {
					path := append(append([]string{}, stack...), stmt)
					out.WriteString("set ")
					out.WriteString(strings.Join(path, " "))
					out.WriteString("\n")
				}
				line = ""

			default:
				errs = hierconfig.AppendErr(errs, &hierconfig.ParseError{Line: lineNo, Text: raw, Msg: "expected statement to end in \";\" or block to end in \"{\"/\"}\""})
				line = ""
			}
		}
	}

	if len(stack) != 0 {
		errs = hierconfig.AppendErr(errs, &hierconfig.ParseError{Line: lineNo, Text: "", Msg: "unclosed block at end of input"})
	}

	return out.String(), errs
}
