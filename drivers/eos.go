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

// EOS is the platform name for Arista EOS switches.
const EOS = "eos"

func newEOSDriver() *hierconfig.Driver {
	d := hierconfig.NewDriver(EOS)

	d.IdempotentCommands = []hierconfig.Lineage{
		{hierconfig.StartsWith("interface"), hierconfig.StartsWith("description")},
		{hierconfig.StartsWith("interface"), hierconfig.StartsWith("ip address")},
	}

	d.NegateWithRules = []hierconfig.NegateWithRule{
		{Lineage: hierconfig.Lineage{hierconfig.StartsWith("logging console")}, Use: "no logging console"},
	}

	d.ParentAllowsDuplicateChild = []hierconfig.Lineage{
		{hierconfig.StartsWith("ip access-list")},
	}

	d.SectionalOverwrite = []hierconfig.Lineage{
		{hierconfig.StartsWith("router bgp")},
	}

	return d
}

func init() {
	hierconfig.RegisterDriver(EOS, newEOSDriver)
}
