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

// Package parser turns raw device-configuration text into a
// hierconfig.Node tree, following a platform's Driver for indentation
// width, per-line rewriting, and virtual indent adjustment.
package parser

import (
	"strings"

	"github.com/netdevops/hier-config/hierconfig"
)

// ParseCisco parses indentation-delimited, Cisco-IOS-style text into a
// tree rooted at a fresh sentinel node, per spec §4.1.
func ParseCisco(d *hierconfig.Driver, text string) (*hierconfig.Node, hierconfig.Errors) {
	var errs hierconfig.Errors

	text = applyFullTextSub(d, text)
	lines := splitLines(text)

	root := hierconfig.NewRoot()
	type frame struct {
		depth int
		node  *hierconfig.Node
	}
	stack := []frame{{depth: -1, node: root}}
	adjust := 0

	lineNo := 0
	for _, raw := range lines {
		lineNo++
		line := strings.TrimRight(raw, " \t")
		if line == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "!") || strings.HasPrefix(trimmed, "#") {
			continue
		}

		line, ok := applyPerLineSub(d, line)
		if !ok {
			continue
		}
		if line == "" {
			continue
		}

		realIndent := leadingSpaces(raw)
		depth := realIndent/maxInt(d.Indentation, 1) + adjust

		for _, r := range d.IndentAdjust {
			if r.StartExpr != nil && r.StartExpr.MatchString(line) {
				adjust++
			}
			if r.EndExpr != nil && r.EndExpr.MatchString(line) {
				adjust--
			}
		}

		for len(stack) > 1 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}

		parentFrame := stack[len(stack)-1]
		if depth > parentFrame.depth+1 {
			errs = hierconfig.AppendErr(errs, &hierconfig.ParseError{
				Line: lineNo,
				Text: line,
				Msg:  "indentation increased by more than one step; attaching to nearest ancestor",
			})
			depth = parentFrame.depth + 1
		}

		child := parentFrame.node.AddChild(strings.TrimLeft(line, " \t"), d.ParentAllowsDuplicate(parentFrame.node))
		stack = append(stack, frame{depth: depth, node: child})
	}

	d.RunPostLoadCallbacks(root)
	d.ApplyOrdering(root)

	return root, errs
}

func applyFullTextSub(d *hierconfig.Driver, text string) string {
	for _, r := range d.FullTextSub {
		text = r.Search.ReplaceAllString(text, r.Replace)
	}
	return text
}

// applyPerLineSub applies the driver's per-line substitution rules in
// order and reports whether the line survives (a substitution that
// empties the line drops it, per spec §4.1 step 3).
func applyPerLineSub(d *hierconfig.Driver, line string) (string, bool) {
	for _, r := range d.PerLineSub {
		line = r.Search.ReplaceAllString(line, r.Replace)
	}
	return line, strings.TrimSpace(line) != ""
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func leadingSpaces(line string) int {
	n := 0
	for _, r := range line {
		if r == ' ' {
			n++
		} else if r == '\t' {
			n += 1
		} else {
			break
		}
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
