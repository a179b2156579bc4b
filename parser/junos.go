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

// JunosDeletedTag marks a leaf node produced by a "delete" statement (or by
// a remediation negation on a Junos-flavored tree) rather than a "set"
// statement. render.JunosStyleText consults it to choose the statement
// verb.
const JunosDeletedTag = "_junos_deleted"

// ParseJunosFlat parses lines of the form "set a b c" / "delete a b c"
// into a tree with one node per whitespace-delimited path segment, per
// spec §4.1. Quoted segments (e.g. `set interfaces ge-0/0/0 description
// "uplink to core"`) are kept atomic.
func ParseJunosFlat(d *hierconfig.Driver, text string) (*hierconfig.Node, hierconfig.Errors) {
	var errs hierconfig.Errors
	root := hierconfig.NewRoot()

	text = applyFullTextSub(d, text)
	lineNo := 0
	for _, raw := range splitLines(text) {
		lineNo++
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line, ok := applyPerLineSub(d, line)
		if !ok {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tokens := tokenizeQuoted(line)
		if len(tokens) == 0 {
			continue
		}

		verb := tokens[0]
		deleted := false
		switch verb {
		case "set":
		case "delete":
			deleted = true
		default:
			errs = hierconfig.AppendErr(errs, &hierconfig.ParseError{
				Line: lineNo, Text: line, Msg: "expected line to begin with \"set\" or \"delete\"",
			})
			continue
		}
		path := tokens[1:]
		if len(path) == 0 {
			errs = hierconfig.AppendErr(errs, &hierconfig.ParseError{Line: lineNo, Text: line, Msg: "missing path after verb"})
			continue
		}

		cur := root
		for _, seg := range path {
			cur = cur.AddChild(seg, d.ParentAllowsDuplicate(cur))
		}
		if deleted {
			cur.AddTags(JunosDeletedTag)
		}
	}

	d.RunPostLoadCallbacks(root)
	d.ApplyOrdering(root)
	return root, errs
}

// tokenizeQuoted splits line on whitespace, treating a double-quoted
// region as a single atomic token (quotes are stripped).
func tokenizeQuoted(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuotes := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
