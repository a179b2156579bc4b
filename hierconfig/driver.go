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

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// NegateWithRule gives the literal text to use when negating a node whose
// lineage matches.
type NegateWithRule struct {
	Lineage Lineage
	Use     string
}

// SectionalExitingRule names the closing token appended under a section
// whose lineage matches.
type SectionalExitingRule struct {
	Lineage  Lineage
	ExitText string
}

// OrderingRule overrides the default order weight for nodes whose lineage
// matches.
type OrderingRule struct {
	Lineage Lineage
	Weight  int
}

// PerLineSubRule is a regex rewrite applied to each line at parse time,
// before the indentation tree is built.
type PerLineSubRule struct {
	Search  *regexp.Regexp
	Replace string
}

// FullTextSubRule is a regex rewrite applied to the entire input text
// before it is split into lines.
type FullTextSubRule struct {
	Search  *regexp.Regexp
	Replace string
}

// IndentAdjustRule describes a pair of markers that virtually increment (on
// StartExpr) or decrement (on EndExpr) the indentation depth of subsequent
// lines, used by platforms whose grammar nests sections without changing
// real column indentation (e.g. FortiOS's "config"/"end").
type IndentAdjustRule struct {
	StartExpr *regexp.Regexp
	EndExpr   *regexp.Regexp
}

// PostLoadCallback runs once after a tree has been fully parsed, e.g. to
// insert ACL sequence numbers or normalize platform-specific quirks.
type PostLoadCallback func(root *Node)

// Driver is the immutable rule bundle for a single platform. Construct one
// via NewDriver and set its rule fields; platform factories in the
// sibling drivers package build and register the supported set.
type Driver struct {
	Name string

	Indentation       int
	NegationPrefix    string
	DeclarationPrefix string

	// MatchMode is the default lineage-matching mode used when evaluating
	// this driver's rule tables. Floating unless explicitly overridden.
	MatchMode MatchMode

	NegateWithRules []NegateWithRule
	// NegationDefaultWhen restricts when a bare negation_prefix negation
	// (as opposed to a NegateWith rule, or no negation at all) may be
	// emitted. When non-empty, a node not matched by any NegateWithRule is negated with
	// the default prefix only if its lineage also matches one of these;
	// otherwise the negation is silently skipped (the command has no
	// sensible inverse, e.g. a banner line or a remark). Empty means no
	// restriction: the prefix form always applies.
	NegationDefaultWhen []Lineage

	SectionalExitingRules      []SectionalExitingRule
	SectionalOverwrite         []Lineage
	SectionalOverwriteNoNegate []Lineage

	OrderingRules []OrderingRule

	PerLineSub  []PerLineSubRule
	FullTextSub []FullTextSubRule

	IdempotentCommands       []Lineage
	IdempotentCommandsAvoid  []Lineage
	IndentAdjust             []IndentAdjustRule
	ParentAllowsDuplicateChild []Lineage
	UnusedObjectRules        []Lineage

	PostLoadCallbacks []PostLoadCallback

	// IdempotentFor implements the driver-specific idempotency tie-break
	// of §4.3: given a node and its would-be siblings in the other tree,
	// find the sibling it supersedes, if any. The default compares the
	// lineage's final rule plus the common prefix of text up to the
	// argument portion; FortiOS overrides this to also require the
	// object name to match (see drivers/fortios.go).
	IdempotentFor func(d *Driver, node *Node, others []*Node) (*Node, bool)

	// SwapNegation reports whether text already begins with the driver's
	// negation prefix and, if so, returns the text with the prefix
	// removed. The default is a literal prefix strip; Junos overrides it
	// with a hook that never reports a swap (see drivers/junos.go).
	SwapNegation func(d *Driver, text string) (string, bool)

	// NegateNode builds and attaches, under parent, the synthetic node
	// that negates running (a node from the running tree that is absent
	// from generated). It returns nil if the command has no sensible
	// negation and should be skipped (see NegationDefaultWhen). The
	// default attaches a single node whose text is the prefixed/swapped
	// form; Junos overrides it to attach a copy of running's whole subtree,
	// with its leaves tagged as "delete" statements instead of "set" (see
	// drivers/junos.go and render.JunosStyleText).
	NegateNode func(d *Driver, parent, running *Node) *Node
}

// NewDriver returns a Driver with every scalar at its spec-mandated default
// and every hook set to the baseline behavior, under the given platform
// name. Platform factories in the sibling drivers package start from this
// and override fields before calling RegisterDriver.
func NewDriver(name string) *Driver {
	return defaultDriver(name)
}

// defaultDriver returns a Driver with every scalar at its spec-mandated
// default and every hook set to the baseline behavior. Platform factories
// start from this and override fields.
func defaultDriver(name string) *Driver {
	d := &Driver{
		Name:              name,
		Indentation:       2,
		NegationPrefix:    "no ",
		DeclarationPrefix: "",
		MatchMode:         MatchFloating,
	}
	d.IdempotentFor = defaultIdempotentFor
	d.SwapNegation = defaultSwapNegation
	d.NegateNode = defaultNegateNode
	return d
}

func defaultNegateNode(d *Driver, parent, running *Node) *Node {
	text, ok := d.NegationTextFor(running)
	if !ok {
		return nil
	}
	return parent.AddChild(text, d.ParentAllowsDuplicate(parent))
}

func defaultSwapNegation(d *Driver, text string) (string, bool) {
	if strings.HasPrefix(text, d.NegationPrefix) {
		return strings.TrimPrefix(text, d.NegationPrefix), true
	}
	return "", false
}

// defaultIdempotentFor matches the final rule of an idempotent_commands
// lineage plus the command prefix of text (every word but the final one,
// per commandPrefix) -- the final word being the argument portion.
func defaultIdempotentFor(d *Driver, node *Node, others []*Node) (*Node, bool) {
	for _, lineage := range d.IdempotentCommands {
		if !lineage.Matches(node.Path(), d.MatchMode) {
			continue
		}
		last := lineage[len(lineage)-1]
		for _, o := range others {
			if o.text == node.text {
				continue
			}
			if !last.Matches(o.text) {
				continue
			}
			if commandPrefix(node.text) == commandPrefix(o.text) {
				return o, true
			}
		}
	}
	return nil, false
}

// commandPrefix returns the leading whitespace-delimited words of text up
// to (but not including) the final token, which is treated as the
// argument. A single-word command's prefix is the command itself.
func commandPrefix(text string) string {
	fields := strings.Fields(text)
	if len(fields) <= 1 {
		return text
	}
	return strings.Join(fields[:len(fields)-1], " ")
}

// MatchesAny reports whether path matches any of the lineages in rules
// under the driver's match mode.
func (d *Driver) MatchesAny(rules []Lineage, path []string) bool {
	for _, l := range rules {
		if l.Matches(path, d.MatchMode) {
			return true
		}
	}
	return false
}

// ParentAllowsDuplicate reports whether parent's lineage matches one of the
// driver's parent_allows_duplicate_child rules.
func (d *Driver) ParentAllowsDuplicate(parent *Node) bool {
	if parent.IsRoot() {
		return false
	}
	return d.MatchesAny(d.ParentAllowsDuplicateChild, parent.Path())
}

// OrderWeightFor returns the order weight for a node given its path,
// taking the first matching OrderingRule, else DefaultOrderWeight.
func (d *Driver) OrderWeightFor(path []string) int {
	for _, r := range d.OrderingRules {
		if r.Lineage.Matches(path, d.MatchMode) {
			return r.Weight
		}
	}
	return DefaultOrderWeight
}

// ApplyOrdering walks every node under root and sets its OrderWeight from
// the driver's OrderingRules.
func (d *Driver) ApplyOrdering(root *Node) {
	for _, n := range root.AllChildren() {
		n.SetOrderWeight(d.OrderWeightFor(n.Path()))
	}
}

// NegationTextFor returns the text to emit when negating node, and whether
// a negation should be emitted at all (false means the command has no
// negation and should be skipped, per NegationDefaultWhen).
func (d *Driver) NegationTextFor(node *Node) (string, bool) {
	for _, r := range d.NegateWithRules {
		if r.Lineage.Matches(node.Path(), d.MatchMode) {
			return r.Use, true
		}
	}
	if swapped, ok := d.SwapNegation(d, node.text); ok {
		return swapped, true
	}
	if len(d.NegationDefaultWhen) > 0 && !d.MatchesAny(d.NegationDefaultWhen, node.Path()) {
		return "", false
	}
	return d.NegationPrefix + node.text, true
}

// SectionalExitFor returns the exit text for node's lineage, if any.
func (d *Driver) SectionalExitFor(node *Node) (string, bool) {
	for _, r := range d.SectionalExitingRules {
		if r.Lineage.Matches(node.Path(), d.MatchMode) {
			return r.ExitText, true
		}
	}
	return "", false
}

// ApplySectionalExits walks the tree and appends an exit-text leaf to
// every non-leaf node matching a SectionalExitingRule.
func (d *Driver) ApplySectionalExits(root *Node) {
	for _, n := range root.AllChildren() {
		if len(n.Children()) == 0 {
			continue
		}
		if exitText, ok := d.SectionalExitFor(n); ok {
			n.AddChild(exitText, d.ParentAllowsDuplicate(n))
		}
	}
}

// RunPostLoadCallbacks invokes every registered PostLoadCallback in order.
func (d *Driver) RunPostLoadCallbacks(root *Node) {
	for _, cb := range d.PostLoadCallbacks {
		cb(root)
	}
}

// registry is the process-wide, initialize-on-register, effectively
// immutable set of driver factories keyed by platform name (§5).
var (
	registryMu sync.RWMutex
	registry   = map[string]func() *Driver{}
)

// RegisterDriver registers a driver factory under name. Platform packages
// call this from an init() function, the way database/sql drivers
// register themselves; re-registering the same name overwrites the prior
// factory (useful for tests).
func RegisterDriver(name string, factory func() *Driver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// GetDriver looks up the driver factory registered under name and invokes
// it. It returns UnsupportedPlatformError if no such platform was
// registered.
func GetDriver(name string) (*Driver, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, &UnsupportedPlatformError{Platform: name}
	}
	return factory(), nil
}

// RegisteredPlatforms returns the sorted list of currently registered
// platform names.
func RegisteredPlatforms() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
