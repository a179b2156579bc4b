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

// IOS is the platform name for classic Cisco IOS / IOS-XE devices.
const IOS = "ios"

func newIOSDriver() *hierconfig.Driver {
	d := hierconfig.NewDriver(IOS)

	d.IdempotentCommands = []hierconfig.Lineage{
		{hierconfig.StartsWith("vlan"), hierconfig.StartsWith("name")},
		{hierconfig.StartsWith("interface"), hierconfig.StartsWith("description")},
		{hierconfig.StartsWith("interface"), hierconfig.StartsWith("ip address")},
	}

	d.NegateWithRules = []hierconfig.NegateWithRule{
		{Lineage: hierconfig.Lineage{hierconfig.StartsWith("logging console")}, Use: "no logging console"},
	}

	d.SectionalExitingRules = []hierconfig.SectionalExitingRule{
		{Lineage: hierconfig.Lineage{hierconfig.StartsWith("router bgp")}, ExitText: "exit-address-family"},
	}

	d.SectionalOverwrite = []hierconfig.Lineage{
		{hierconfig.StartsWith("router bgp")},
	}

	d.ParentAllowsDuplicateChild = []hierconfig.Lineage{
		{hierconfig.StartsWith("ip access-list")},
		{hierconfig.StartsWith("ipv6 access-list")},
	}

	d.OrderingRules = []hierconfig.OrderingRule{
		{Lineage: hierconfig.Lineage{hierconfig.StartsWith("no vlan")}, Weight: 100},
		{Lineage: hierconfig.Lineage{hierconfig.StartsWith("no interface")}, Weight: 100},
		{Lineage: hierconfig.Lineage{hierconfig.StartsWith("vlan")}, Weight: 400},
		{Lineage: hierconfig.Lineage{hierconfig.StartsWith("interface")}, Weight: 400},
	}

	d.PostLoadCallbacks = []hierconfig.PostLoadCallback{aclSequencer(hierconfig.StartsWith("ip access-list"))}

	return d
}

func init() {
	hierconfig.RegisterDriver(IOS, newIOSDriver)
}
