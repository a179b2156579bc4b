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

package render

import (
	"strings"
	"testing"

	"github.com/netdevops/hier-config/hierconfig"
	"github.com/netdevops/hier-config/parser"
)

func TestCiscoStyleTextRoundTrips(t *testing.T) {
	d := hierconfig.NewDriver("render-test")
	original := "interface Vlan2\n  description test\n  ip address 1.1.1.1 255.255.255.0\nhostname switch1\n"
	root, errs := parser.ParseCisco(d, original)
	if errs != nil {
		t.Fatalf("ParseCisco: %v", errs)
	}
	got := CiscoStyleText(d, root)
	if got != original {
		t.Errorf("round trip mismatch:\ngot:\n%s\nwant:\n%s", got, original)
	}
}

func TestJunosStyleTextRendersSetAndDelete(t *testing.T) {
	d := hierconfig.NewDriver("render-test")
	root, errs := parser.ParseJunosFlat(d, "set interfaces ge-0/0/0 disable\ndelete interfaces ge-0/0/0 description old\n")
	if errs != nil {
		t.Fatalf("ParseJunosFlat: %v", errs)
	}
	got := JunosStyleText(root)
	if !strings.Contains(got, "set interfaces ge-0/0/0 disable\n") {
		t.Errorf("missing set line, got:\n%s", got)
	}
	if !strings.Contains(got, "delete interfaces ge-0/0/0 description old\n") {
		t.Errorf("missing delete line, got:\n%s", got)
	}
}

func TestJunosStyleTextQuotesMultiWordSegments(t *testing.T) {
	root := hierconfig.NewRoot()
	a := root.AddChild("interfaces", false)
	b := a.AddChild("ge-0/0/0", false)
	c := b.AddChild("description", false)
	c.AddChild("uplink to core", false)

	got := JunosStyleText(root)
	want := `set interfaces ge-0/0/0 description "uplink to core"` + "\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
