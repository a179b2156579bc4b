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

// Package diff computes a tree-aware unified diff between two
// hierconfig.Node trees, per spec §4.5.
package diff

import (
	"strings"

	"github.com/netdevops/hier-config/hierconfig"
	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a tree-aware diff of a against b: lines present only in
// a are prefixed "- ", lines present only in b are prefixed "+ ", and
// lines common to both (by text, recursively) are emitted once,
// unprefixed, each indented by driver.Indentation * depth.
func Unified(d *hierconfig.Driver, a, b *hierconfig.Node) string {
	var buf strings.Builder
	diffLevel(&buf, d, a, b, 0)
	return buf.String()
}

// diffLevel aligns a and b's children with a Ratcliff/Obershelp sequence
// match (the same alignment pmezard/go-difflib would use for text lines,
// applied here to child node text so duplicate-children-allowed sections
// are paired by position, not just by set membership) and recurses into
// every matched pair.
func diffLevel(buf *strings.Builder, d *hierconfig.Driver, a, b *hierconfig.Node, depth int) {
	aChildren, bChildren := a.Children(), b.Children()
	matcher := difflib.NewMatcher(textsOf(aChildren), textsOf(bChildren))

	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for k := 0; k < op.I2-op.I1; k++ {
				ca, cb := aChildren[op.I1+k], bChildren[op.J1+k]
				writeLine(buf, d, depth, ' ', ca.Text())
				diffLevel(buf, d, ca, cb, depth+1)
			}
		case 'd':
			for i := op.I1; i < op.I2; i++ {
				writeSubtree(buf, d, depth, '-', aChildren[i])
			}
		case 'i':
			for j := op.J1; j < op.J2; j++ {
				writeSubtree(buf, d, depth, '+', bChildren[j])
			}
		case 'r':
			for i := op.I1; i < op.I2; i++ {
				writeSubtree(buf, d, depth, '-', aChildren[i])
			}
			for j := op.J1; j < op.J2; j++ {
				writeSubtree(buf, d, depth, '+', bChildren[j])
			}
		}
	}
}

func writeSubtree(buf *strings.Builder, d *hierconfig.Driver, depth int, sign byte, n *hierconfig.Node) {
	writeLine(buf, d, depth, sign, n.Text())
	for _, c := range n.Children() {
		writeSubtree(buf, d, depth+1, sign, c)
	}
}

func writeLine(buf *strings.Builder, d *hierconfig.Driver, depth int, sign byte, text string) {
	buf.WriteString(strings.Repeat(" ", d.Indentation*depth))
	switch sign {
	case '-':
		buf.WriteString("- ")
	case '+':
		buf.WriteString("+ ")
	default:
		buf.WriteString("  ")
	}
	buf.WriteString(text)
	buf.WriteString("\n")
}

func textsOf(nodes []*hierconfig.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Text()
	}
	return out
}
