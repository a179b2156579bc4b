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

// IOSXR is the platform name for Cisco IOS-XR devices, which share most of
// IOS's grammar but commit configuration sections atomically (no implicit
// negate-then-add under "router bgp").
const IOSXR = "iosxr"

func newIOSXRDriver() *hierconfig.Driver {
	d := hierconfig.NewDriver(IOSXR)

	d.IdempotentCommands = []hierconfig.Lineage{
		{hierconfig.StartsWith("interface"), hierconfig.StartsWith("description")},
	}

	d.SectionalOverwriteNoNegate = []hierconfig.Lineage{
		{hierconfig.StartsWith("router bgp")},
		{hierconfig.StartsWith("route-policy")},
	}

	d.ParentAllowsDuplicateChild = []hierconfig.Lineage{
		{hierconfig.StartsWith("ipv4 access-list")},
		{hierconfig.StartsWith("ipv6 access-list")},
	}

	d.PostLoadCallbacks = []hierconfig.PostLoadCallback{aclSequencer(hierconfig.StartsWith("ipv4 access-list"))}

	return d
}

func init() {
	hierconfig.RegisterDriver(IOSXR, newIOSXRDriver)
}
