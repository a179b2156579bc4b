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

// Package tagrules applies lineage-matched tags to a hierconfig.Node tree
// and renders a tag-filtered subset of it, per spec §4.4.
package tagrules

import (
	"strings"

	"github.com/netdevops/hier-config/hierconfig"
)

// Rule unions Tags into the tag set of every node whose lineage matches.
type Rule struct {
	Lineage hierconfig.Lineage
	Tags    []string
}

// Apply walks root and, for every node, unions in the tags of every rule
// whose lineage matches it. Tag rules are additive and order-independent,
// so applying the same rules twice is a no-op the second time.
func Apply(root *hierconfig.Node, rules []Rule, mode hierconfig.MatchMode) {
	for _, n := range root.AllChildren() {
		path := n.Path()
		for _, r := range rules {
			if r.Lineage.Matches(path, mode) {
				n.AddTags(r.Tags...)
			}
		}
	}
}

// FilteredText renders root's children as indented text, keeping a node
// iff either include is empty or its tag set intersects include, AND its
// tag set is disjoint from exclude. A parent with any kept descendant is
// itself kept so the rendered tree stays structurally valid; the
// propagation is for rendering only and never mutates the tree's own tags.
func FilteredText(d *hierconfig.Driver, root *hierconfig.Node, include, exclude map[string]struct{}) string {
	var b strings.Builder
	renderFiltered(&b, d, root, 0, include, exclude)
	return b.String()
}

func renderFiltered(b *strings.Builder, d *hierconfig.Driver, node *hierconfig.Node, depth int, include, exclude map[string]struct{}) bool {
	wrote := false
	pad := strings.Repeat(" ", d.Indentation)
	for _, c := range sortedByWeight(node.Children()) {
		keptHere := isKept(c, include, exclude)

		var childBuf strings.Builder
		childHadDescendant := renderFiltered(&childBuf, d, c, depth+1, include, exclude)

		if !keptHere && !childHadDescendant {
			continue
		}
		b.WriteString(strings.Repeat(pad, depth))
		b.WriteString(c.Text())
		b.WriteString("\n")
		b.WriteString(childBuf.String())
		wrote = true
	}
	return wrote
}

// isKept reports whether a single node (ignoring its descendants) passes
// the include/exclude filter on its own tags.
func isKept(n *hierconfig.Node, include, exclude map[string]struct{}) bool {
	if !n.TagsDisjoint(exclude) {
		return false
	}
	if len(include) == 0 {
		return true
	}
	return n.TagsIntersect(include)
}

// sortedByWeight orders siblings the same way Node.AllChildrenSorted does,
// without requiring Driver.ApplyOrdering to have already run.
func sortedByWeight(siblings []*hierconfig.Node) []*hierconfig.Node {
	out := make([]*hierconfig.Node, len(siblings))
	copy(out, siblings)
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && out[j-1].OrderWeight() > out[j].OrderWeight() {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}
