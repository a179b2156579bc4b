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

import "regexp"

// MatchRule is a predicate over a single line of text. Each field is
// either absent (nil), or a set of alternatives that are OR'd together
// ("any-match"); fields that are present are AND'd with each other.
type MatchRule struct {
	equals     []string
	startsWith []string
	endsWith   []string
	contains   []string
	reSearch   []*regexp.Regexp
	reSource   []string
}

// Equals builds a MatchRule that matches a line equal to one of values.
func Equals(values ...string) MatchRule { return MatchRule{equals: append([]string(nil), values...)} }

// StartsWith builds a MatchRule that matches a line starting with one of values.
func StartsWith(values ...string) MatchRule {
	return MatchRule{startsWith: append([]string(nil), values...)}
}

// EndsWith builds a MatchRule that matches a line ending with one of values.
func EndsWith(values ...string) MatchRule {
	return MatchRule{endsWith: append([]string(nil), values...)}
}

// Contains builds a MatchRule that matches a line containing one of values.
func Contains(values ...string) MatchRule {
	return MatchRule{contains: append([]string(nil), values...)}
}

// ReSearch builds a MatchRule that matches a line against one of the
// regular expressions in patterns (re.Search semantics: unanchored). The
// regexes are compiled once, here, following §9's "Regex rules should be
// compiled once at driver construction" guidance. A bad pattern is an
// InvalidRuleError, not a panic.
func ReSearch(patterns ...string) (MatchRule, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return MatchRule{}, &InvalidRuleError{Rule: "re_search", Msg: err.Error()}
		}
		compiled = append(compiled, re)
	}
	return MatchRule{reSearch: compiled, reSource: append([]string(nil), patterns...)}, nil
}

// MustReSearch is like ReSearch but panics on a bad pattern. It exists for
// driver rule tables, which are package-level literals built at init time
// the way the teacher builds regexp.MustCompile tables.
func MustReSearch(patterns ...string) MatchRule {
	m, err := ReSearch(patterns...)
	if err != nil {
		panic(err)
	}
	return m
}

// IsZero reports whether the MatchRule has no predicate fields set at all.
func (m MatchRule) IsZero() bool {
	return len(m.equals) == 0 && len(m.startsWith) == 0 && len(m.endsWith) == 0 &&
		len(m.contains) == 0 && len(m.reSearch) == 0
}

// Matches reports whether text satisfies every predicate field that is
// present on m.
func (m MatchRule) Matches(text string) bool {
	if len(m.equals) > 0 && !anyEqual(m.equals, text) {
		return false
	}
	if len(m.startsWith) > 0 && !anyPrefix(m.startsWith, text) {
		return false
	}
	if len(m.endsWith) > 0 && !anySuffix(m.endsWith, text) {
		return false
	}
	if len(m.contains) > 0 && !anyContains(m.contains, text) {
		return false
	}
	if len(m.reSearch) > 0 && !anyRegexSearch(m.reSearch, text) {
		return false
	}
	return true
}

func anyEqual(values []string, text string) bool {
	for _, v := range values {
		if v == text {
			return true
		}
	}
	return false
}

func anyPrefix(values []string, text string) bool {
	for _, v := range values {
		if len(text) >= len(v) && text[:len(v)] == v {
			return true
		}
	}
	return false
}

func anySuffix(values []string, text string) bool {
	for _, v := range values {
		if len(text) >= len(v) && text[len(text)-len(v):] == v {
			return true
		}
	}
	return false
}

func anyContains(values []string, text string) bool {
	for _, v := range values {
		if stringContains(text, v) {
			return true
		}
	}
	return false
}

func stringContains(haystack, needle string) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

func anyRegexSearch(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// MatchMode selects how a Lineage is matched against a node's ancestor
// chain. The reference behavior, and the default throughout this module,
// is MatchFloating; MatchStrict is exposed per the spec's Open Questions
// for drivers that need it.
type MatchMode int

const (
	// MatchFloating is the any-ancestor-subsequence mode: lineage rules
	// are matched in order against a strictly increasing sequence of
	// ancestor indices, anchored so that the final rule matches the node
	// itself, but otherwise free to skip ancestors.
	MatchFloating MatchMode = iota
	// MatchStrict requires the lineage to align with a contiguous run of
	// ancestors ending at the node: rule i matches ancestor len(path)-len(lineage)+i.
	MatchStrict
)

// Lineage is an ordered tuple of MatchRules anchored at a node and ending
// with the node itself as the last element.
type Lineage []MatchRule

// Matches reports whether path -- the ordered root-to-self ancestor chain
// of a node, inclusive of the node's own text as the last element --
// satisfies the lineage under mode.
func (l Lineage) Matches(path []string, mode MatchMode) bool {
	if len(l) == 0 || len(path) == 0 {
		return false
	}
	if mode == MatchStrict {
		return matchStrict(l, path)
	}
	return matchFloating(l, path)
}

func matchFloating(rules Lineage, path []string) bool {
	n := len(path)
	if !rules[len(rules)-1].Matches(path[n-1]) {
		return false
	}
	if len(rules) == 1 {
		return true
	}
	return subsequenceMatches(rules[:len(rules)-1], path[:n-1])
}

// subsequenceMatches reports whether there is a strictly increasing sequence
// of indices into ancestors such that rules[j] matches ancestors[index[j]].
// Greedily taking the earliest possible match for each rule in turn is
// correct: an earlier match index never leaves less room for subsequent
// rules than a later one would.
func subsequenceMatches(rules []MatchRule, ancestors []string) bool {
	ai := 0
	for _, r := range rules {
		found := false
		for ; ai < len(ancestors); ai++ {
			if r.Matches(ancestors[ai]) {
				found = true
				ai++
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchStrict(rules Lineage, path []string) bool {
	n, k := len(path), len(rules)
	if k > n {
		return false
	}
	start := n - k
	for i, r := range rules {
		if !r.Matches(path[start+i]) {
			return false
		}
	}
	return true
}
