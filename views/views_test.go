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

package views

import (
	"testing"

	"github.com/netdevops/hier-config/hierconfig"
	"github.com/netdevops/hier-config/parser"
)

func TestHostname(t *testing.T) {
	d := hierconfig.NewDriver("views-test")
	root, _ := parser.ParseCisco(d, "hostname switch1\n")
	got, ok := Hostname(root)
	if !ok || got != "switch1" {
		t.Errorf("got %q, %v, want \"switch1\", true", got, ok)
	}
}

func TestInterfaceViews(t *testing.T) {
	d := hierconfig.NewDriver("views-test")
	root, _ := parser.ParseCisco(d, "interface Vlan2\n  description uplink\n  shutdown\n")
	ifaces, idx := InterfaceViews(root)
	if len(ifaces) != 1 {
		t.Fatalf("expected 1 interface, got %d", len(ifaces))
	}
	iv := ifaces[0]
	if iv.Name != "Vlan2" {
		t.Errorf("got name %q, want Vlan2", iv.Name)
	}
	if iv.Description != "uplink" {
		t.Errorf("got description %q, want uplink", iv.Description)
	}
	if !iv.ShutDown {
		t.Errorf("expected ShutDown to be true")
	}
	if !idx.HasKeysWithPrefix("Vlan") {
		t.Errorf("expected the interface index to contain a Vlan-prefixed key")
	}
}

func TestVLANs(t *testing.T) {
	d := hierconfig.NewDriver("views-test")
	root, _ := parser.ParseCisco(d, "vlan 3\n  name engineering\n")
	vlans := VLANs(root)
	if len(vlans) != 1 || vlans[0].ID != "3" || vlans[0].Name != "engineering" {
		t.Fatalf("unexpected vlans: %+v", vlans)
	}
}
