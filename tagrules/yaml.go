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

package tagrules

import (
	"fmt"

	"github.com/derekparker/trie"
	"github.com/netdevops/hier-config/hierconfig"
	"gopkg.in/yaml.v3"
)

// fileRule is the on-disk shape of a single tag rule, e.g.:
//
//	lineage:
//	  - startswith: ntp
//	add_tags: [ntp]
type fileRule struct {
	Lineage []fileMatchRule `yaml:"lineage"`
	AddTags []string        `yaml:"add_tags"`
}

type fileMatchRule struct {
	Equals     []string `yaml:"equals,omitempty"`
	StartsWith []string `yaml:"startswith,omitempty"`
	EndsWith   []string `yaml:"endswith,omitempty"`
	Contains   []string `yaml:"contains,omitempty"`
	ReSearch   []string `yaml:"re_search,omitempty"`
}

// LoadRules parses a tag-rule file (the teacher's YAML-options-file
// convention, passed as the rules argument of cmd/hierconfig's tag
// subcommand) into Rules.
func LoadRules(data []byte) ([]Rule, error) {
	var raw []fileRule
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("tagrules: parsing rule file: %w", err)
	}

	rules := make([]Rule, 0, len(raw))
	for i, fr := range raw {
		lineage := make(hierconfig.Lineage, 0, len(fr.Lineage))
		for _, fm := range fr.Lineage {
			rule, err := toMatchRule(fm)
			if err != nil {
				return nil, fmt.Errorf("tagrules: rule %d: %w", i, err)
			}
			lineage = append(lineage, rule)
		}
		rules = append(rules, Rule{Lineage: lineage, Tags: fr.AddTags})
	}
	return rules, nil
}

func toMatchRule(fm fileMatchRule) (hierconfig.MatchRule, error) {
	switch {
	case len(fm.Equals) > 0:
		return hierconfig.Equals(fm.Equals...), nil
	case len(fm.StartsWith) > 0:
		return hierconfig.StartsWith(fm.StartsWith...), nil
	case len(fm.EndsWith) > 0:
		return hierconfig.EndsWith(fm.EndsWith...), nil
	case len(fm.Contains) > 0:
		return hierconfig.Contains(fm.Contains...), nil
	case len(fm.ReSearch) > 0:
		return hierconfig.ReSearch(fm.ReSearch...)
	default:
		return hierconfig.MatchRule{}, fmt.Errorf("rule has no match predicate")
	}
}

// TagIndex is a prefix-searchable set of every distinct tag name known to
// a loaded rule file, used by cmd/hierconfig to validate --include/
// --exclude flags; HasPrefix also accepts a tag-family prefix (e.g.
// "ntp-" matching "ntp-server", "ntp-acl").
type TagIndex struct {
	t *trie.Trie
}

// NewTagIndex builds a TagIndex over every tag named in rules.
func NewTagIndex(rules []Rule) *TagIndex {
	t := trie.New()
	for _, r := range rules {
		for _, tag := range r.Tags {
			t.Add(tag)
		}
	}
	return &TagIndex{t: t}
}

// HasPrefix reports whether any indexed tag begins with prefix.
func (ti *TagIndex) HasPrefix(prefix string) bool {
	return ti.t.HasKeysWithPrefix(prefix)
}

// Tags returns every distinct tag name in the index.
func (ti *TagIndex) Tags() []string {
	return ti.t.Keys()
}
