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
	"strconv"

	"github.com/netdevops/hier-config/hierconfig"
)

// aclSequencer returns a PostLoadCallback that walks every top-level
// section matching headerRule and, for each child line lacking a leading
// sequence number, assigns one in increments of 10.
func aclSequencer(headerRule hierconfig.MatchRule) hierconfig.PostLoadCallback {
	return func(root *hierconfig.Node) {
		for _, acl := range root.ChildrenIterByMatchRule(headerRule) {
			seq := 10
			for _, line := range acl.Children() {
				if !startsWithDigit(line.Text()) {
					line.SetText(strconv.Itoa(seq) + " " + line.Text())
				}
				seq += 10
			}
		}
	}
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
