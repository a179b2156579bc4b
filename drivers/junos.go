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

package drivers

import (
	"github.com/netdevops/hier-config/hierconfig"
	"github.com/netdevops/hier-config/parser"
)

// Junos is the platform name for Juniper devices expressed in the flat
// "set"/"delete" grammar. Negation on Junos is not a text prefix -- it is
// a different verb applied to the same path -- so this driver overrides
// NegateNode instead of relying on NegationPrefix/NegateWithRules.
const Junos = "junos"

func newJunosDriver() *hierconfig.Driver {
	d := hierconfig.NewDriver(Junos)

	d.IdempotentCommands = []hierconfig.Lineage{
		{hierconfig.StartsWith("interfaces"), hierconfig.Contains("unit"), hierconfig.StartsWith("description")},
	}

	d.NegateNode = junosNegateNode
	d.SwapNegation = junosSwapNegation

	return d
}

// junosNegateNode deep-copies running's entire subtree under parent and
// tags every leaf parser.JunosDeletedTag, rather than rewriting a single
// node's text with a negation prefix. Since an intermediate segment node
// (e.g. "interfaces" or "unit") has no standalone command meaning on
// Junos, negating a whole missing section means negating every full path
// it contains; render.JunosStyleText renders a JunosDeletedTag leaf as a
// "delete" statement and everything else as "set".
func junosNegateNode(d *hierconfig.Driver, parent, running *hierconfig.Node) *hierconfig.Node {
	copy := parent.AddDeepCopyOf(running)
	tagJunosLeavesDeleted(copy)
	return copy
}

func tagJunosLeavesDeleted(n *hierconfig.Node) {
	if len(n.Children()) == 0 {
		n.AddTags(parser.JunosDeletedTag)
		return
	}
	for _, c := range n.Children() {
		tagJunosLeavesDeleted(c)
	}
}

// junosSwapNegation never recognizes text as already negated and always
// returns "", false, since Junos distinguishes set/delete by
// parser.JunosDeletedTag, not by a textual prefix.
func junosSwapNegation(d *hierconfig.Driver, text string) (string, bool) {
	return "", false
}

func init() {
	hierconfig.RegisterDriver(Junos, newJunosDriver)
}
