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

package remediate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/netdevops/hier-config/drivers"
	"github.com/netdevops/hier-config/hierconfig"
	"github.com/netdevops/hier-config/parser"
	"github.com/netdevops/hier-config/render"
)

func mustIOS() *hierconfig.Driver {
	d, err := hierconfig.GetDriver(drivers.IOS)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRemediateVLANAddition(t *testing.T) {
	d := mustIOS()
	running, errs := parser.ParseCisco(d, "vlan 3\n  name old\n")
	if errs != nil {
		t.Fatalf("parse running: %v", errs)
	}
	generated, errs := parser.ParseCisco(d, "vlan 3\n  name new\nvlan 4\n  name v4\n")
	if errs != nil {
		t.Fatalf("parse generated: %v", errs)
	}

	result, err := Remediate(running, generated, d)
	if err != nil {
		t.Fatalf("Remediate: %v", err)
	}
	got := render.CiscoStyleText(d, result)
	want := "vlan 3\n  name new\nvlan 4\n  name v4\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected remediation (-want, +got):\n%s", diff)
	}
}

func TestRemediateInterfaceShutdownToggle(t *testing.T) {
	d := mustIOS()
	running, _ := parser.ParseCisco(d, "interface Vlan2\n  shutdown\n")
	generated, _ := parser.ParseCisco(d, "interface Vlan2\n  no shutdown\n")

	result, err := Remediate(running, generated, d)
	if err != nil {
		t.Fatalf("Remediate: %v", err)
	}
	got := render.CiscoStyleText(d, result)
	want := "interface Vlan2\n  no shutdown\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected remediation (-want, +got):\n%s", diff)
	}
}

func TestRemediateNegateWithRule(t *testing.T) {
	d := mustIOS()
	running, _ := parser.ParseCisco(d, "logging console debugging\n")
	generated, _ := parser.ParseCisco(d, "")

	result, err := Remediate(running, generated, d)
	if err != nil {
		t.Fatalf("Remediate: %v", err)
	}
	got := render.CiscoStyleText(d, result)
	want := "no logging console\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected remediation (-want, +got):\n%s", diff)
	}
}

func TestRollbackSwapsArguments(t *testing.T) {
	d := mustIOS()
	running, _ := parser.ParseCisco(d, "vlan 3\n  name old\n")
	generated, _ := parser.ParseCisco(d, "vlan 3\n  name new\nvlan 4\n  name v4\n")

	result, err := Rollback(running, generated, d)
	if err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	got := render.CiscoStyleText(d, result)
	if !strings.Contains(got, "no vlan 4") {
		t.Errorf("expected rollback to negate vlan 4, got:\n%s", got)
	}
	if !strings.Contains(got, "name old") {
		t.Errorf("expected rollback to restore name old, got:\n%s", got)
	}
}

func TestRemediateJunosFlatNegationUsesDelete(t *testing.T) {
	jd, err := hierconfig.GetDriver(drivers.Junos)
	if err != nil {
		t.Fatalf("GetDriver(junos): %v", err)
	}
	running, _ := parser.ParseJunosFlat(jd, "set interfaces irb unit 2 family inet disable\n")
	generated, _ := parser.ParseJunosFlat(jd, "")

	result, err := Remediate(running, generated, jd)
	if err != nil {
		t.Fatalf("Remediate: %v", err)
	}
	got := render.JunosStyleText(result)
	want := "delete interfaces irb unit 2 family inet disable\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected remediation (-want, +got):\n%s", diff)
	}
}

func TestRemediateIdempotentCommandSuppressesNegation(t *testing.T) {
	d := mustIOS()
	running, _ := parser.ParseCisco(d, "vlan 3\n  name old\n")
	generated, _ := parser.ParseCisco(d, "vlan 3\n  name new\n")

	result, err := Remediate(running, generated, d)
	if err != nil {
		t.Fatalf("Remediate: %v", err)
	}
	for _, n := range result.AllChildren() {
		if n.Text() == "no name old" {
			t.Errorf("expected the idempotent replacement to suppress the explicit negation, got %q in tree", n.Text())
		}
	}
}

func TestFutureOverlaysOverlappingSectionWithoutNegating(t *testing.T) {
	d := mustIOS()
	running, _ := parser.ParseCisco(d, "interface Vlan2\n  description old\n  mtu 1500\n")
	partial, _ := parser.ParseCisco(d, "interface Vlan2\n  shutdown\n")

	result := Future(running, partial, d)
	got := render.CiscoStyleText(d, result)
	want := "interface Vlan2\n  description old\n  mtu 1500\n  shutdown\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected future (-want, +got):\n%s", diff)
	}
	for _, n := range result.AllChildren() {
		if strings.HasPrefix(n.Text(), "no ") {
			t.Errorf("expected no negation in a future overlay, got %q in tree", n.Text())
		}
	}
}

func TestFutureAddsNewSections(t *testing.T) {
	d := mustIOS()
	running, _ := parser.ParseCisco(d, "vlan 3\n  name old\n")
	partial, _ := parser.ParseCisco(d, "vlan 4\n  name v4\n")

	result := Future(running, partial, d)
	got := render.CiscoStyleText(d, result)
	want := "vlan 3\n  name old\nvlan 4\n  name v4\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected future (-want, +got):\n%s", diff)
	}
}

func TestRemediateSectionalOverwriteNegatesThenReplaces(t *testing.T) {
	d := mustIOS()
	running, _ := parser.ParseCisco(d, "router bgp 65001\n  neighbor 10.0.0.1 remote-as 65002\n")
	generated, _ := parser.ParseCisco(d, "router bgp 65001\n  neighbor 10.0.0.2 remote-as 65003\n")

	result, err := Remediate(running, generated, d)
	if err != nil {
		t.Fatalf("Remediate: %v", err)
	}
	if _, ok := result.ChildByText("no router bgp 65001"); !ok {
		t.Errorf("expected the whole bgp section to be negated before replacement, got top-level %v", result.Children())
	}
	bgps := result.ChildrenByText("router bgp 65001")
	if len(bgps) != 1 {
		t.Fatalf("expected exactly one replacement router bgp 65001 section, got %d", len(bgps))
	}
	if _, ok := bgps[0].ChildByText("neighbor 10.0.0.2 remote-as 65003"); !ok {
		t.Errorf("expected the overwritten neighbor line to be present, got children %v", bgps[0].Children())
	}
}
