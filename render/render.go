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

// Package render turns a hierconfig.Node tree back into device-configuration
// text, per spec §4.2.
package render

import (
	"strings"

	"github.com/netdevops/hier-config/hierconfig"
	"github.com/netdevops/hier-config/parser"
)

// CiscoStyleText renders root's children, in AllChildrenSorted order, as
// indentation-delimited text using the driver's indentation width. The
// sentinel root itself produces no line.
func CiscoStyleText(d *hierconfig.Driver, root *hierconfig.Node) string {
	var b strings.Builder
	pad := strings.Repeat(" ", d.Indentation)
	for _, n := range root.AllChildrenSorted() {
		b.WriteString(strings.Repeat(pad, n.Depth()-1))
		b.WriteString(n.Text())
		b.WriteString("\n")
	}
	return b.String()
}

// JunosStyleText renders a per-segment Junos tree as flat "set"/"delete"
// lines, one per leaf node, in AllChildrenSorted order. A leaf tagged with
// parser.JunosDeletedTag renders as "delete"; all others render as "set".
// Non-leaf nodes contribute no line of their own -- their segment is part
// of every descendant leaf's path.
func JunosStyleText(root *hierconfig.Node) string {
	var b strings.Builder
	for _, n := range root.AllChildrenSorted() {
		if len(n.Children()) != 0 {
			continue
		}
		verb := "set"
		if n.HasTag(parser.JunosDeletedTag) {
			verb = "delete"
		}
		b.WriteString(verb)
		for _, seg := range n.Path() {
			b.WriteString(" ")
			b.WriteString(quoteIfNeeded(seg))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// quoteIfNeeded wraps seg in double quotes if it contains whitespace, the
// way Junos itself re-quotes multi-word arguments on display.
func quoteIfNeeded(seg string) string {
	if strings.ContainsAny(seg, " \t") {
		return `"` + seg + `"`
	}
	return seg
}
