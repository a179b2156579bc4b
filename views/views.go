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

// Package views is an external collaborator over hierconfig's core: it
// surfaces vendor-specific semantic fields -- hostname, interfaces, VLANs
// -- by lineage-matching into the tree. The core itself has no notion of
// any of these; see spec §4.7.
package views

import (
	"strings"

	"github.com/derekparker/trie"
	"github.com/netdevops/hier-config/hierconfig"
)

// Hostname returns the device hostname declared in root, and whether a
// hostname line was found.
func Hostname(root *hierconfig.Node) (string, bool) {
	n, ok := root.GetChild(hierconfig.StartsWith("hostname"))
	if !ok {
		return "", false
	}
	fields := strings.Fields(n.Text())
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}

// Interface is a single interface section's well-known fields, surfaced
// from its subtree without the caller needing to know the underlying
// command syntax.
type Interface struct {
	Name        string
	Description string
	ShutDown    bool
	Node        *hierconfig.Node
}

// InterfaceViews returns one Interface per top-level "interface ..."
// section in root, indexed by a prefix trie over interface names so
// callers can resolve "Gi0/*"-style queries without a linear scan.
func InterfaceViews(root *hierconfig.Node) ([]Interface, *trie.Trie) {
	idx := trie.New()
	var out []Interface

	for _, n := range root.ChildrenIterByMatchRule(hierconfig.StartsWith("interface")) {
		name := strings.TrimSpace(strings.TrimPrefix(n.Text(), "interface"))
		iv := Interface{Name: name, Node: n}

		if desc, ok := n.GetChild(hierconfig.StartsWith("description")); ok {
			iv.Description = strings.TrimSpace(strings.TrimPrefix(desc.Text(), "description"))
		}
		if _, ok := n.GetChild(hierconfig.Equals("shutdown")); ok {
			iv.ShutDown = true
		}

		idx.Add(name)
		out = append(out, iv)
	}
	return out, idx
}

// VLAN is a single "vlan N" section's well-known fields.
type VLAN struct {
	ID   string
	Name string
	Node *hierconfig.Node
}

// VLANs returns one VLAN per top-level "vlan ..." section in root.
func VLANs(root *hierconfig.Node) []VLAN {
	var out []VLAN
	for _, n := range root.ChildrenIterByMatchRule(hierconfig.StartsWith("vlan")) {
		id := strings.TrimSpace(strings.TrimPrefix(n.Text(), "vlan"))
		v := VLAN{ID: id, Node: n}
		if name, ok := n.GetChild(hierconfig.StartsWith("name")); ok {
			v.Name = strings.TrimSpace(strings.TrimPrefix(name.Text(), "name"))
		}
		out = append(out, v)
	}
	return out
}
