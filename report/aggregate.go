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

// Package report aggregates remediation trees from multiple devices into
// a single report and exports them as gNMI notifications, the
// multi-device supplement called out in SPEC_FULL.md. Like views, it is
// an external collaborator: it consumes the core's Merge and tagging
// primitives without the core knowing anything about devices or reports.
package report

import (
	"fmt"
	"sort"

	"github.com/netdevops/hier-config/hierconfig"
)

// DeviceResult is one device's contribution to a report: its hostname and
// the remediation tree computed for it.
type DeviceResult struct {
	Device      string
	Remediation *hierconfig.Node
}

// Aggregator merges per-device remediation trees into one combined tree,
// tagging every node with the hierconfig.Instance of the device that
// contributed it so a caller can still tell which device a given line
// came from after the merge.
type Aggregator struct {
	driver *hierconfig.Driver
	root   *hierconfig.Node
	nextID int
	byName map[string]int
}

// NewAggregator returns an empty Aggregator for the given driver. Every
// device added to it must share that driver's platform, since merging
// trees built under different rule bundles has no well-defined semantics
// (duplicate-child allowance, negation syntax, and indentation could all
// disagree).
func NewAggregator(d *hierconfig.Driver) *Aggregator {
	return &Aggregator{
		driver: d,
		root:   hierconfig.NewRoot(),
		byName: map[string]int{},
	}
}

// Add merges result's tree into the aggregate, recording its device name
// as an Instance on every node it newly contributes. A node that already
// existed in the aggregate (another device configured the same line first)
// keeps its original Instance; hierconfig.Merge can never fail, so Add has
// nothing to report back.
func (a *Aggregator) Add(result DeviceResult) {
	id, ok := a.byName[result.Device]
	if !ok {
		a.nextID++
		id = a.nextID
		a.byName[result.Device] = id
	}

	before := map[*hierconfig.Node]bool{}
	for _, n := range a.root.AllChildren() {
		before[n] = true
	}

	hierconfig.Merge(a.root, result.Remediation, a.driver)

	inst := &hierconfig.Instance{ID: id, Tags: map[string]struct{}{}, Comments: map[string]struct{}{}}
	for _, n := range a.root.AllChildren() {
		if before[n] {
			continue
		}
		n.SetInstance(inst)
	}
}

// Root returns the aggregated tree built so far.
func (a *Aggregator) Root() *hierconfig.Node {
	return a.root
}

// Devices returns the names of every device added so far, in the order
// their IDs were assigned.
func (a *Aggregator) Devices() []string {
	out := make([]string, len(a.byName))
	for name, id := range a.byName {
		out[id-1] = name
	}
	return out
}

// Summary counts how many nodes in the aggregate came from each device.
func Summary(a *Aggregator) map[string]int {
	counts := map[string]int{}
	names := a.Devices()
	for _, n := range a.root.AllChildren() {
		inst := n.Instance()
		if inst == nil || inst.ID < 1 || inst.ID > len(names) {
			continue
		}
		counts[names[inst.ID-1]]++
	}
	return counts
}

// FormatSummary renders Summary's counts as sorted "device: N lines"
// entries, used by cmd/hierconfig's report subcommand for human-readable
// output.
func FormatSummary(a *Aggregator) []string {
	counts := Summary(a)
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]string, len(names))
	for i, name := range names {
		out[i] = fmt.Sprintf("%s: %d lines", name, counts[name])
	}
	return out
}
