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

// Package remediate computes the minimal edit tree that transforms one
// hierconfig.Node tree into another, following a platform Driver's
// negation, sectional, idempotency, and ordering rules, per spec §4.3.
package remediate

import "github.com/netdevops/hier-config/hierconfig"

// Remediate walks generated and running in parallel and returns a new
// tree of the commands needed to turn running into generated. An error is
// only possible if grafting a scratch subtree back onto the result would
// create a cycle, which AdoptChild refuses to do.
func Remediate(running, generated *hierconfig.Node, d *hierconfig.Driver) (*hierconfig.Node, error) {
	result := hierconfig.NewRoot()
	if err := remediateLevel(result, generated, running, d); err != nil {
		return nil, err
	}
	d.ApplySectionalExits(result)
	d.ApplyOrdering(result)
	return result, nil
}

// Rollback returns the remediation that would undo applying generated over
// running -- the same algorithm with the arguments swapped.
func Rollback(running, generated *hierconfig.Node, d *hierconfig.Driver) (*hierconfig.Node, error) {
	return Remediate(generated, running, d)
}

// Future overlays generated onto running without computing negations:
// every addition and recursive change generated would introduce is
// applied, but nothing running has that generated lacks is ever negated.
// It is the "what would the device look like" preview, as opposed to
// Remediate's "what commands would I issue".
func Future(running, generated *hierconfig.Node, d *hierconfig.Driver) *hierconfig.Node {
	result := running.DeepCopy(false)
	futureLevel(result, generated, d)
	d.ApplyOrdering(result)
	return result
}

func futureLevel(dst *hierconfig.Node, gen *hierconfig.Node, d *hierconfig.Driver) {
	dstQueues := childQueuesByText(dst)

	for _, g := range gen.Children() {
		queue := dstQueues[g.Text()]
		if len(queue) == 0 {
			dst.AddDeepCopyOf(g)
			continue
		}
		existing := queue[0]
		dstQueues[g.Text()] = queue[1:]
		futureLevel(existing, g, d)
	}
}

// remediateLevel populates dst with the edits needed to bring run's
// children in line with gen's children, recursing per sibling set.
func remediateLevel(dst *hierconfig.Node, gen, run *hierconfig.Node, d *hierconfig.Driver) error {
	runQueues := childQueuesByText(run)
	consumed := map[*hierconfig.Node]bool{}

	// Step 1 & 3: walk gen's children in order, pairing each against the
	// next same-text entry still unconsumed in run (a FIFO per distinct
	// text handles both the common case of unique siblings and the
	// duplicate-children-allowed case of repeated ones uniformly).
	for _, g := range gen.Children() {
		queue := runQueues[g.Text()]
		if len(queue) == 0 {
			// Addition: present in generated, absent from running.
			added := dst.AddDeepCopyOf(g)
			added.SetIsNewInConfig(true)
			continue
		}
		r := queue[0]
		runQueues[g.Text()] = queue[1:]
		consumed[r] = true
		if err := remediatePair(dst, g, r, d); err != nil {
			return err
		}
	}

	// Step 2: whatever run's children were never paired off above must be
	// negated (or suppressed/skipped), visited in running's own order so
	// output ordering stays deterministic before Driver.ApplyOrdering runs.
	for _, r := range run.Children() {
		if !consumed[r] {
			negate(dst, r, gen, d)
		}
	}
	return nil
}

// remediatePair handles a sibling pair present, by text, in both trees.
func remediatePair(dst *hierconfig.Node, g, r *hierconfig.Node, d *hierconfig.Driver) error {
	switch {
	case d.MatchesAny(d.SectionalOverwrite, g.Path()):
		d.NegateNode(d, dst, r)
		added := dst.AddDeepCopyOf(g)
		added.SetIsNewInConfig(true)

	case d.MatchesAny(d.SectionalOverwriteNoNegate, g.Path()):
		added := dst.AddDeepCopyOf(g)
		added.SetIsNewInConfig(true)

	default:
		scratch := hierconfig.NewRoot()
		if err := remediateLevel(scratch, g, r, d); err != nil {
			return err
		}
		if len(scratch.Children()) == 0 {
			return nil
		}
		shallow := dst.AddShallowCopyOf(g, d.ParentAllowsDuplicate(dst))
		// AdoptChild detaches each child from scratch, so iterate a copy.
		children := append([]*hierconfig.Node(nil), scratch.Children()...)
		for _, child := range children {
			if err := shallow.AdoptChild(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// negate appends to dst the synthetic node needed to remove r, honoring
// idempotent-command suppression (the replacement in gen already
// supersedes r), idempotent-command avoidance, and the driver's negation
// hook (which may decline to emit anything, e.g. for an unmatched command
// under a restrictive NegationDefaultWhen).
func negate(dst *hierconfig.Node, r *hierconfig.Node, gen *hierconfig.Node, d *hierconfig.Driver) {
	if d.MatchesAny(d.IdempotentCommandsAvoid, r.Path()) {
		return
	}
	if _, ok := d.IdempotentFor(d, r, gen.Children()); ok {
		return
	}
	d.NegateNode(d, dst, r)
}

// childQueuesByText groups node's children into FIFO queues keyed by text,
// preserving insertion order within each queue.
func childQueuesByText(node *hierconfig.Node) map[string][]*hierconfig.Node {
	out := map[string][]*hierconfig.Node{}
	for _, c := range node.Children() {
		out[c.Text()] = append(out[c.Text()], c)
	}
	return out
}
