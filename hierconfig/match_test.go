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

import "testing"

func TestMatchRuleMatches(t *testing.T) {
	tests := []struct {
		desc string
		rule MatchRule
		in   string
		want bool
	}{
		{desc: "equals hit", rule: Equals("no shutdown"), in: "no shutdown", want: true},
		{desc: "equals miss", rule: Equals("no shutdown"), in: "shutdown", want: false},
		{desc: "equals any-match", rule: Equals("a", "b"), in: "b", want: true},
		{desc: "startswith hit", rule: StartsWith("interface "), in: "interface Vlan2", want: true},
		{desc: "startswith miss", rule: StartsWith("interface "), in: "no interface Vlan2", want: false},
		{desc: "endswith hit", rule: EndsWith(" debugging"), in: "logging console debugging", want: true},
		{desc: "contains hit", rule: Contains("ntp"), in: "no ntp server 1.2.3.4", want: true},
		{desc: "combined AND", rule: MatchRule{startsWith: []string{"vlan "}, contains: []string{"3"}}, in: "vlan 34", want: true},
		{desc: "combined AND miss", rule: MatchRule{startsWith: []string{"vlan "}, contains: []string{"9"}}, in: "vlan 34", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := tt.rule.Matches(tt.in); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReSearch(t *testing.T) {
	rule, err := ReSearch(`^vlan \d+$`)
	if err != nil {
		t.Fatalf("ReSearch: %v", err)
	}
	if !rule.Matches("vlan 100") {
		t.Errorf("expected match")
	}
	if rule.Matches("vlan abc") {
		t.Errorf("expected no match")
	}
	if _, err := ReSearch(`(`); err == nil {
		t.Errorf("expected error for invalid regex")
	}
}

func TestLineageMatchesFloating(t *testing.T) {
	lineage := Lineage{StartsWith("interface "), StartsWith("ip address")}
	path := []string{"interface Vlan2", "description foo", "ip address 1.1.1.1 255.255.255.0"}
	if !lineage.Matches(path, MatchFloating) {
		t.Errorf("expected floating match to skip the intervening description line")
	}
}

func TestLineageMatchesStrict(t *testing.T) {
	lineage := Lineage{StartsWith("interface "), StartsWith("ip address")}
	path := []string{"interface Vlan2", "description foo", "ip address 1.1.1.1 255.255.255.0"}
	if lineage.Matches(path, MatchStrict) {
		t.Errorf("expected strict match to fail across the intervening description line")
	}

	adjacentPath := []string{"interface Vlan2", "ip address 1.1.1.1 255.255.255.0"}
	if !lineage.Matches(adjacentPath, MatchStrict) {
		t.Errorf("expected strict match to succeed for adjacent ancestors")
	}
}

func TestLineageMatchesAnchorsAtNode(t *testing.T) {
	lineage := Lineage{StartsWith("vlan"), StartsWith("name")}
	if lineage.Matches([]string{"vlan 3", "mtu 9000"}, MatchFloating) {
		t.Errorf("expected no match: final rule must match the node itself")
	}
}

func TestLineageEmptyNeverMatches(t *testing.T) {
	if (Lineage{}).Matches([]string{"anything"}, MatchFloating) {
		t.Errorf("an empty lineage should never match")
	}
}
