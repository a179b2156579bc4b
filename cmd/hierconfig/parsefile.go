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

package main

import (
	"fmt"
	"os"

	"github.com/netdevops/hier-config/drivers"
	"github.com/netdevops/hier-config/hierconfig"
	"github.com/netdevops/hier-config/parser"
	"github.com/netdevops/hier-config/render"
)

// driverFor resolves the --platform flag to a registered Driver. drivers
// is imported for its init-time RegisterDriver side effects, the Supported
// list used in the flag's help text, and the Junos platform name.
func driverFor(platform string) (*hierconfig.Driver, error) {
	if platform == "" {
		return nil, fmt.Errorf("--platform is required, one of: %v", drivers.Supported)
	}
	return hierconfig.GetDriver(platform)
}

// parseFile reads path and parses it with the grammar appropriate for
// platform: Junos gets its flat set/delete parser, everything else gets
// the Cisco-style indentation parser.
func parseFile(d *hierconfig.Driver, platform, path string) (*hierconfig.Node, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var root *hierconfig.Node
	var errs hierconfig.Errors
	if platform == drivers.Junos {
		root, errs = parser.ParseJunosFlat(d, string(text))
	} else {
		root, errs = parser.ParseCisco(d, string(text))
	}
	if errs != nil {
		return nil, fmt.Errorf("parsing %s: %v", path, errs)
	}
	return root, nil
}

// renderText renders root back to platform's native text form.
func renderText(d *hierconfig.Driver, platform string, root *hierconfig.Node) string {
	if platform == drivers.Junos {
		return render.JunosStyleText(root)
	}
	return render.CiscoStyleText(d, root)
}
