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

package report

import (
	"github.com/netdevops/hier-config/hierconfig"
	gpb "github.com/openconfig/gnmi/proto/gnmi"
)

// NotificationFor encodes a single device's remediation tree as a gNMI
// Notification message: every leaf becomes an Update whose path is the
// leaf's lineage and whose value is its command text. Negation lines are
// encoded as ordinary Updates; no Delete entries are produced. No network I/O is performed here or anywhere in this
// module; callers that want to actually push the notification own that.
func NotificationFor(timestamp int64, root *hierconfig.Node) *gpb.Notification {
	notif := &gpb.Notification{Timestamp: timestamp}

	for _, n := range root.AllChildren() {
		if len(n.Children()) != 0 {
			continue
		}
		path := &gpb.Path{Elem: pathElems(n)}
		notif.Update = append(notif.Update, &gpb.Update{
			Path: path,
			Val: &gpb.TypedValue{
				Value: &gpb.TypedValue_StringVal{StringVal: n.Text()},
			},
		})
	}
	return notif
}

// pathElems turns a node's Path() into gNMI path elements, one per
// ancestor segment (including the leaf itself).
func pathElems(n *hierconfig.Node) []*gpb.PathElem {
	segments := n.Path()
	elems := make([]*gpb.PathElem, len(segments))
	for i, s := range segments {
		elems[i] = &gpb.PathElem{Name: s}
	}
	return elems
}
