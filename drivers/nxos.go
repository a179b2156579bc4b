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

import "github.com/netdevops/hier-config/hierconfig"

// NXOS is the platform name for Cisco Nexus (NX-OS) switches.
const NXOS = "nxos"

func newNXOSDriver() *hierconfig.Driver {
	d := hierconfig.NewDriver(NXOS)

	d.IdempotentCommands = []hierconfig.Lineage{
		{hierconfig.StartsWith("vlan"), hierconfig.StartsWith("name")},
		{hierconfig.StartsWith("interface"), hierconfig.StartsWith("description")},
		{hierconfig.StartsWith("interface"), hierconfig.StartsWith("ip address")},
		{hierconfig.StartsWith("interface"), hierconfig.StartsWith("switchport access vlan")},
	}

	d.ParentAllowsDuplicateChild = []hierconfig.Lineage{
		{hierconfig.StartsWith("ip access-list")},
	}

	d.SectionalExitingRules = []hierconfig.SectionalExitingRule{
		{Lineage: hierconfig.Lineage{hierconfig.StartsWith("vrf context")}, ExitText: "exit-vrf"},
	}

	d.PostLoadCallbacks = []hierconfig.PostLoadCallback{aclSequencer(hierconfig.StartsWith("ip access-list"))}

	return d
}

func init() {
	hierconfig.RegisterDriver(NXOS, newNXOSDriver)
}
