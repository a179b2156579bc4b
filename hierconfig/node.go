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

package hierconfig

// DefaultOrderWeight is the order weight assigned to a node when no
// Ordering rule matches its lineage.
const DefaultOrderWeight = 500

// Instance is attached to a node by the multi-device reporter to remember
// which device contributed it when trees from several devices are merged.
type Instance struct {
	ID       int
	Tags     map[string]struct{}
	Comments map[string]struct{}
}

// Node is a single line of configuration in the tree. Children are owned
// uniquely by their parent; Parent is a non-owning back reference whose
// validity is tied to the lifetime of the tree's root.
type Node struct {
	text   string
	parent *Node

	children   []*Node
	childIndex map[string][]*Node

	tags     map[string]struct{}
	comments map[string]struct{}

	orderWeight  int
	isNewInConfig bool
	instance     *Instance
}

// NewRoot returns a detached sentinel root node: Text is empty, Parent is
// nil, and Depth is 0.
func NewRoot() *Node {
	return newNode("")
}

func newNode(text string) *Node {
	return &Node{
		text:        text,
		childIndex:  map[string][]*Node{},
		tags:        map[string]struct{}{},
		comments:    map[string]struct{}{},
		orderWeight: DefaultOrderWeight,
	}
}

// Text returns the node's canonical command text.
func (n *Node) Text() string { return n.text }

// SetText overwrites the node's text and re-indexes it under its parent,
// keeping its position among its siblings.
func (n *Node) SetText(text string) {
	if n.parent != nil {
		n.parent.reindexChild(n, text)
	}
	n.text = text
}

// Parent returns the node's parent, or nil if n is a root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Depth returns the number of ancestors between n and the root, inclusive
// of n itself; the root has depth 0.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Path returns the ordered root-to-self chain of node texts, inclusive of
// n's own text as the last element, and excluding the sentinel root.
func (n *Node) Path() []string {
	var rev []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		rev = append(rev, cur.text)
	}
	path := make([]string, len(rev))
	for i, t := range rev {
		path[len(rev)-1-i] = t
	}
	return path
}

// Children returns n's direct children in insertion order. The returned
// slice must not be mutated by the caller.
func (n *Node) Children() []*Node { return n.children }

// OrderWeight returns the node's sort weight; lower values sort earlier
// among siblings. The default is DefaultOrderWeight (500).
func (n *Node) OrderWeight() int { return n.orderWeight }

// SetOrderWeight overrides the node's sort weight.
func (n *Node) SetOrderWeight(w int) { n.orderWeight = w }

// IsNewInConfig reports whether the node was created as part of a
// remediation's output rather than parsed from an input.
func (n *Node) IsNewInConfig() bool { return n.isNewInConfig }

// SetIsNewInConfig sets the new-in-config flag.
func (n *Node) SetIsNewInConfig(v bool) { n.isNewInConfig = v }

// Instance returns the device instance that contributed this node during
// multi-device report aggregation, or nil if unset.
func (n *Node) Instance() *Instance { return n.instance }

// SetInstance sets the device instance that contributed this node.
func (n *Node) SetInstance(i *Instance) { n.instance = i }

// Tags returns the node's tag set as a sorted-on-demand-by-caller slice.
func (n *Node) Tags() []string { return keys(n.tags) }

// HasTag reports whether tag is present on the node.
func (n *Node) HasTag(tag string) bool {
	_, ok := n.tags[tag]
	return ok
}

// AddTags unions tags into the node's tag set.
func (n *Node) AddTags(tags ...string) {
	for _, t := range tags {
		n.tags[t] = struct{}{}
	}
}

// TagsIntersect reports whether the node's tag set intersects other.
func (n *Node) TagsIntersect(other map[string]struct{}) bool {
	for t := range other {
		if _, ok := n.tags[t]; ok {
			return true
		}
	}
	return false
}

// TagsDisjoint reports whether the node's tag set is disjoint from other.
func (n *Node) TagsDisjoint(other map[string]struct{}) bool {
	return !n.TagsIntersect(other)
}

// Comments returns the node's free-form comment set.
func (n *Node) Comments() []string { return keys(n.comments) }

// AddComments unions comments into the node's comment set.
func (n *Node) AddComments(comments ...string) {
	for _, c := range comments {
		n.comments[c] = struct{}{}
	}
}

func keys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// ChildByText returns the first child with the given text and true, or nil
// and false if no such child exists.
func (n *Node) ChildByText(text string) (*Node, bool) {
	if matches := n.childIndex[text]; len(matches) > 0 {
		return matches[0], true
	}
	return nil, false
}

// ChildrenByText returns every child with the given text, in insertion
// order; used when the driver allows duplicate children.
func (n *Node) ChildrenByText(text string) []*Node {
	return n.childIndex[text]
}

// AddChild adds a new child with the given text, or -- when allowDuplicate
// is false and a child with that text already exists -- returns the
// existing child. This is the idempotent-insert behavior the parser relies
// on: re-encountering the same command line attaches to the same node.
func (n *Node) AddChild(text string, allowDuplicate bool) *Node {
	if !allowDuplicate {
		if existing, ok := n.ChildByText(text); ok {
			return existing
		}
	}
	child := newNode(text)
	n.appendChild(child)
	return child
}

// AddChildChecked behaves like AddChild but returns a DuplicateChildError
// instead of silently reusing an existing child, for callers building a
// tree by hand who want to be told about an unexpected second insert.
// Merge does not use this; its union semantics treat a same-text
// collision as the same section, not a conflict.
func (n *Node) AddChildChecked(text string, allowDuplicate bool) (*Node, error) {
	if !allowDuplicate {
		if _, ok := n.ChildByText(text); ok {
			return nil, &DuplicateChildError{Parent: n.text, Text: text}
		}
	}
	child := newNode(text)
	n.appendChild(child)
	return child, nil
}

// appendChild attaches an already-constructed, detached child node to n.
func (n *Node) appendChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
	n.childIndex[child.text] = append(n.childIndex[child.text], child)
}

// removeChild detaches child from n's children and index. It is a no-op if
// child is not a direct child of n.
func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	matches := n.childIndex[child.text]
	for i, c := range matches {
		if c == child {
			n.childIndex[child.text] = append(matches[:i], matches[i+1:]...)
			break
		}
	}
}

func (n *Node) reindexChild(child *Node, newText string) {
	matches := n.childIndex[child.text]
	for i, c := range matches {
		if c == child {
			n.childIndex[child.text] = append(matches[:i], matches[i+1:]...)
			break
		}
	}
	child.text = newText
	n.childIndex[newText] = append(n.childIndex[newText], child)
}

// ShallowCopy returns a new, detached node with the same text, tags, order
// weight, and comments as n, but no children.
func (n *Node) ShallowCopy() *Node {
	c := newNode(n.text)
	c.orderWeight = n.orderWeight
	for t := range n.tags {
		c.tags[t] = struct{}{}
	}
	for cm := range n.comments {
		c.comments[cm] = struct{}{}
	}
	return c
}

// AddShallowCopyOf attaches a shallow copy of other as a new child of n and
// returns it. If n already has a child with other's text and allowDuplicate
// is false, the existing child is returned unmodified (its children are
// left alone; this is used when recursion has already produced the
// relevant descendants separately).
func (n *Node) AddShallowCopyOf(other *Node, allowDuplicate bool) *Node {
	if !allowDuplicate {
		if existing, ok := n.ChildByText(other.text); ok {
			return existing
		}
	}
	c := other.ShallowCopy()
	n.appendChild(c)
	return c
}

// DeepCopy returns a new, detached, fully recursive copy of n. Every node
// in the copy -- n's copy and all descendants -- has IsNewInConfig set to
// markNew.
func (n *Node) DeepCopy(markNew bool) *Node {
	c := n.ShallowCopy()
	c.isNewInConfig = markNew
	for _, child := range n.children {
		cc := child.DeepCopy(markNew)
		c.appendChild(cc)
	}
	return c
}

// AddDeepCopyOf attaches a deep copy of other (with every copied node
// marked IsNewInConfig) as a new child of n and returns the new subtree's
// root.
func (n *Node) AddDeepCopyOf(other *Node) *Node {
	c := other.DeepCopy(true)
	n.appendChild(c)
	return c
}

// AllChildren returns every descendant of n (not including n itself) in
// depth-first pre-order, insertion order among siblings.
func (n *Node) AllChildren() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(node *Node) {
		for _, c := range node.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(n)
	return out
}

// AllChildrenSorted returns every descendant of n (not including n itself)
// in depth-first pre-order, with each sibling group ordered by
// (OrderWeight, insertion index).
func (n *Node) AllChildrenSorted() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(node *Node) {
		for _, c := range sortedSiblings(node.children) {
			out = append(out, c)
			walk(c)
		}
	}
	walk(n)
	return out
}

// sortedSiblings returns a stable copy of siblings ordered by
// (OrderWeight, original index).
func sortedSiblings(siblings []*Node) []*Node {
	out := make([]*Node, len(siblings))
	copy(out, siblings)
	// insertion sort: sibling counts are small (a handful of commands per
	// section) and stability matters more than asymptotic complexity here.
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && out[j-1].orderWeight > out[j].orderWeight {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}

// AdoptChild detaches child from its current parent, if any, and appends it
// to n, preserving the child's own fields (text, tags, IsNewInConfig,
// order weight, and its own subtree) untouched. Used by the remediation
// engine to build a subtree in isolation and only graft it onto the
// result once it is known to be non-empty.
//
// AdoptChild refuses to create a cycle: if child is n itself or one of n's
// own ancestors, it returns a CycleDetectedError and leaves both trees
// untouched.
func (n *Node) AdoptChild(child *Node) error {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == child {
			return &CycleDetectedError{Text: child.text}
		}
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	n.appendChild(child)
	return nil
}

// GetChild returns the first direct child of n that matches rule, or nil
// and false.
func (n *Node) GetChild(rule MatchRule) (*Node, bool) {
	for _, c := range n.children {
		if rule.Matches(c.text) {
			return c, true
		}
	}
	return nil, false
}

// ChildrenIterByMatchRule returns every direct child of n matching rule.
func (n *Node) ChildrenIterByMatchRule(rule MatchRule) []*Node {
	var out []*Node
	for _, c := range n.children {
		if rule.Matches(c.text) {
			out = append(out, c)
		}
	}
	return out
}

// ChildrenIterByLineage returns every descendant of n whose path (relative
// to n, inclusive of the descendant's own text) satisfies lineage under mode.
func (n *Node) ChildrenIterByLineage(lineage Lineage, mode MatchMode) []*Node {
	var out []*Node
	base := n.Depth()
	var walk func(*Node)
	walk = func(node *Node) {
		for _, c := range node.children {
			if lineage.Matches(c.Path()[base:], mode) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}
