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

package report

import (
	"testing"

	"google.golang.org/protobuf/proto"

	gpb "github.com/openconfig/gnmi/proto/gnmi"
	"github.com/netdevops/hier-config/hierconfig"
	"github.com/netdevops/hier-config/parser"
)

func TestAggregatorTagsNodesByDevice(t *testing.T) {
	d := hierconfig.NewDriver("report-test")
	a := NewAggregator(d)

	r1, _ := parser.ParseCisco(d, "hostname sw1\n")
	r2, _ := parser.ParseCisco(d, "hostname sw2\n")

	a.Add(DeviceResult{Device: "sw1", Remediation: r1})
	a.Add(DeviceResult{Device: "sw2", Remediation: r2})

	summary := Summary(a)
	if summary["sw1"] != 1 || summary["sw2"] != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestAggregatorAttributesSharedLineToFirstDevice(t *testing.T) {
	d := hierconfig.NewDriver("report-test")
	a := NewAggregator(d)

	r1, _ := parser.ParseCisco(d, "ntp server 10.0.0.1\n")
	r2, _ := parser.ParseCisco(d, "ntp server 10.0.0.1\n")

	a.Add(DeviceResult{Device: "sw1", Remediation: r1})
	a.Add(DeviceResult{Device: "sw2", Remediation: r2})

	shared, ok := a.Root().ChildByText("ntp server 10.0.0.1")
	if !ok {
		t.Fatalf("expected the shared line to be present in the aggregate")
	}
	if inst := shared.Instance(); inst == nil || a.Devices()[inst.ID-1] != "sw1" {
		t.Errorf("expected the shared line to stay attributed to sw1, got %+v", inst)
	}

	summary := Summary(a)
	if summary["sw1"] != 1 || summary["sw2"] != 0 {
		t.Errorf("unexpected summary for benign cross-device overlap: %+v", summary)
	}
}

func TestNotificationForEncodesLeaves(t *testing.T) {
	d := hierconfig.NewDriver("report-test")
	root, _ := parser.ParseCisco(d, "interface Vlan2\n  description test\n")

	notif := NotificationFor(1234, root)
	if len(notif.Update) != 1 {
		t.Fatalf("expected 1 update for the single leaf, got %d", len(notif.Update))
	}

	want := &gpb.Update{
		Path: &gpb.Path{Elem: []*gpb.PathElem{
			{Name: "interface Vlan2"},
			{Name: "description test"},
		}},
		Val: &gpb.TypedValue{Value: &gpb.TypedValue_StringVal{StringVal: "description test"}},
	}
	if got := notif.Update[0]; !proto.Equal(want, got) {
		t.Errorf("got update %v, want %v", got, want)
	}
}
