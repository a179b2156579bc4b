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

package hierconfig

// Merge consumes other by copying its subtree into self, combining any
// sections that already exist under self rather than duplicating them.
//
// Merge never raises DuplicateChildError. When a lineage allows duplicate
// children, there is no reliable by-text correspondence between self's
// existing children and other's, so every child of other is appended as an
// independent new sibling (the ACL-style "just append another entry"
// case). When duplicates are not allowed, a child with matching text is
// treated as the same object the two trees are merging into and the merge
// recurses into it, unioning tags and comments, rather than treating the
// text collision as a conflict -- this is what lets Merge combine two
// devices that both legitimately configure "ntp server 10.0.0.1" without
// manufacturing an error out of agreement. DuplicateChildError is raised
// only by the lower-level AddChildChecked, for callers building a tree by
// hand who want to be told about an unexpected second insert.
func Merge(self, other *Node, driver *Driver) {
	mergeChildren(self, other, driver)
}

func mergeChildren(self, other *Node, driver *Driver) {
	allowDup := driver.ParentAllowsDuplicate(self)
	for _, oc := range other.children {
		if allowDup {
			self.AddDeepCopyOf(oc)
			continue
		}
		sc, existed := self.ChildByText(oc.text)
		if !existed {
			sc = self.AddShallowCopyOf(oc, false)
			sc.SetIsNewInConfig(true)
		}
		sc.AddTags(oc.Tags()...)
		sc.AddComments(oc.Comments()...)
		if oc.Instance() != nil && sc.Instance() == nil {
			sc.SetInstance(oc.Instance())
		}
		mergeChildren(sc, oc, driver)
	}
}
