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

// Package drivers holds the per-platform rule-bundle factories and
// registers each with hierconfig's platform registry on import. Callers
// that need a specific platform import this package for its side effects
// (the init() registrations) and then call hierconfig.GetDriver(name).
package drivers

import "github.com/netdevops/hier-config/hierconfig"

// Generic is the platform name for a driver with no platform-specific
// rules -- spec-mandated defaults only (2-space indent, "no " negation
// prefix, floating lineage matching). Useful as a base for ad hoc
// configurations and in tests.
const Generic = "generic"

func newGenericDriver() *hierconfig.Driver {
	return hierconfig.NewDriver(Generic)
}

func init() {
	hierconfig.RegisterDriver(Generic, newGenericDriver)
}
