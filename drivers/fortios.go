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
	"regexp"
	"strings"

	"github.com/netdevops/hier-config/hierconfig"
)

// FortiOS is the platform name for Fortinet FortiGate devices, whose
// "config"/"next"/"end" grammar nests sections without changing real
// column indentation.
const FortiOS = "fortios"

var (
	fortiConfigStart = regexp.MustCompile(`^config `)
	fortiConfigEnd   = regexp.MustCompile(`^end$`)
	fortiEditStart   = regexp.MustCompile(`^edit `)
	fortiEditEnd     = regexp.MustCompile(`^next$`)
)

func newFortiOSDriver() *hierconfig.Driver {
	d := hierconfig.NewDriver(FortiOS)

	d.IndentAdjust = []hierconfig.IndentAdjustRule{
		{StartExpr: fortiConfigStart, EndExpr: fortiConfigEnd},
		{StartExpr: fortiEditStart, EndExpr: fortiEditEnd},
	}

	d.IdempotentCommands = []hierconfig.Lineage{
		{hierconfig.StartsWith("edit")},
		{hierconfig.StartsWith("set")},
	}

	d.IdempotentFor = fortiIdempotentFor

	return d
}

// fortiIdempotentFor additionally requires the object name -- the first
// argument word -- to match on both sides, since FortiOS "set" commands
// inside different "edit <object>" blocks are never interchangeable even
// when their lineage and command prefix agree.
func fortiIdempotentFor(d *hierconfig.Driver, node *hierconfig.Node, others []*hierconfig.Node) (*hierconfig.Node, bool) {
	for _, lineage := range d.IdempotentCommands {
		if !lineage.Matches(node.Path(), d.MatchMode) {
			continue
		}
		last := lineage[len(lineage)-1]
		for _, o := range others {
			if o.Text() == node.Text() {
				continue
			}
			if !last.Matches(o.Text()) {
				continue
			}
			if objectName(node.Text()) != "" && objectName(node.Text()) == objectName(o.Text()) {
				return o, true
			}
		}
	}
	return nil, false
}

// objectName returns the second whitespace-delimited field of text (the
// argument following the command verb), or "" if there is none.
func objectName(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

func init() {
	hierconfig.RegisterDriver(FortiOS, newFortiOSDriver)
}
