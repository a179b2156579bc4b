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

func TestAddChildIsIdempotent(t *testing.T) {
	root := NewRoot()
	a1 := root.AddChild("interface Vlan2", false)
	a2 := root.AddChild("interface Vlan2", false)
	if a1 != a2 {
		t.Errorf("expected AddChild to return the existing node on repeat insert")
	}
	if len(root.Children()) != 1 {
		t.Errorf("expected a single child, got %d", len(root.Children()))
	}
}

func TestAddChildAllowDuplicate(t *testing.T) {
	root := NewRoot()
	root.AddChild("permit ip any any", true)
	root.AddChild("permit ip any any", true)
	if len(root.Children()) != 2 {
		t.Errorf("expected two duplicate children, got %d", len(root.Children()))
	}
	if len(root.ChildrenByText("permit ip any any")) != 2 {
		t.Errorf("expected index to track both duplicates")
	}
}

func TestAddChildChecked(t *testing.T) {
	root := NewRoot()
	if _, err := root.AddChildChecked("vlan 3", false); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := root.AddChildChecked("vlan 3", false); err == nil {
		t.Errorf("expected DuplicateChildError on second insert")
	}
}

func TestDepthAndPath(t *testing.T) {
	root := NewRoot()
	iface := root.AddChild("interface Vlan2", false)
	addr := iface.AddChild("ip address 1.1.1.1 255.255.255.0", false)

	if got := root.Depth(); got != 0 {
		t.Errorf("root depth = %d, want 0", got)
	}
	if got := addr.Depth(); got != 2 {
		t.Errorf("addr depth = %d, want 2", got)
	}
	wantPath := []string{"interface Vlan2", "ip address 1.1.1.1 255.255.255.0"}
	gotPath := addr.Path()
	if len(gotPath) != len(wantPath) {
		t.Fatalf("Path() = %v, want %v", gotPath, wantPath)
	}
	for i := range wantPath {
		if gotPath[i] != wantPath[i] {
			t.Errorf("Path()[%d] = %q, want %q", i, gotPath[i], wantPath[i])
		}
	}
}

func TestDeepCopyMarksNew(t *testing.T) {
	root := NewRoot()
	vlan := root.AddChild("vlan 3", false)
	vlan.AddChild("name old", false)

	cp := vlan.DeepCopy(true)
	if !cp.IsNewInConfig() {
		t.Errorf("expected copy root to be marked new")
	}
	if len(cp.Children()) != 1 || !cp.Children()[0].IsNewInConfig() {
		t.Errorf("expected copied descendants to be marked new")
	}
	if cp.Parent() != nil {
		t.Errorf("expected a deep copy to be detached")
	}
	// Mutating the copy must not affect the original.
	cp.AddChild("mtu 9000", false)
	if len(vlan.Children()) != 1 {
		t.Errorf("original subtree was mutated by editing the copy")
	}
}

func TestShallowCopyHasNoChildren(t *testing.T) {
	root := NewRoot()
	vlan := root.AddChild("vlan 3", false)
	vlan.AddChild("name old", false)
	vlan.AddTags("vlans")

	cp := vlan.ShallowCopy()
	if len(cp.Children()) != 0 {
		t.Errorf("expected shallow copy to have no children")
	}
	if !cp.HasTag("vlans") {
		t.Errorf("expected shallow copy to retain tags")
	}
}

func TestAllChildrenSortedOrdersByWeight(t *testing.T) {
	root := NewRoot()
	b := root.AddChild("b", false)
	a := root.AddChild("a", false)
	c := root.AddChild("c", false)
	a.SetOrderWeight(100)
	b.SetOrderWeight(500)
	c.SetOrderWeight(500)

	got := root.AllChildrenSorted()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, n := range got {
		if n.Text() != want[i] {
			t.Errorf("AllChildrenSorted()[%d] = %q, want %q", i, n.Text(), want[i])
		}
	}
}

func TestGetChildAndIter(t *testing.T) {
	root := NewRoot()
	root.AddChild("interface Vlan2", false)
	root.AddChild("interface Vlan3", false)
	root.AddChild("hostname switch1", false)

	if _, ok := root.GetChild(StartsWith("interface ")); !ok {
		t.Errorf("expected to find an interface child")
	}
	matches := root.ChildrenIterByMatchRule(StartsWith("interface "))
	if len(matches) != 2 {
		t.Errorf("expected 2 interface matches, got %d", len(matches))
	}
}

func TestAdoptChildRejectsCycles(t *testing.T) {
	root := NewRoot()
	iface := root.AddChild("interface Vlan2", false)
	addr := iface.AddChild("ip address 1.1.1.1 255.255.255.0", false)

	if err := addr.AdoptChild(iface); err == nil {
		t.Errorf("expected AdoptChild to reject adopting an ancestor")
	}
	if err := iface.AdoptChild(iface); err == nil {
		t.Errorf("expected AdoptChild to reject self-adoption")
	}
	if len(iface.Children()) != 1 {
		t.Errorf("expected the rejected adoptions to leave the tree unchanged, got children %v", iface.Children())
	}
}

func TestAdoptChildReparents(t *testing.T) {
	root := NewRoot()
	a := root.AddChild("interface Vlan2", false)
	b := root.AddChild("interface Vlan3", false)
	mtu := a.AddChild("mtu 9000", false)

	if err := b.AdoptChild(mtu); err != nil {
		t.Fatalf("AdoptChild: %v", err)
	}
	if len(a.Children()) != 0 {
		t.Errorf("expected mtu 9000 to be detached from its old parent")
	}
	if got, ok := b.ChildByText("mtu 9000"); !ok || got != mtu {
		t.Errorf("expected mtu 9000 to be attached under its new parent")
	}
}

func TestSetTextReindexes(t *testing.T) {
	root := NewRoot()
	n := root.AddChild("shutdown", false)
	n.SetText("no shutdown")
	if _, ok := root.ChildByText("shutdown"); ok {
		t.Errorf("old text should no longer be indexed")
	}
	if got, ok := root.ChildByText("no shutdown"); !ok || got != n {
		t.Errorf("new text should be indexed to the same node")
	}
}
