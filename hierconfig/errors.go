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

// Package hierconfig implements the hierarchical configuration engine: the
// Node/Root tree data model, MatchRule/Lineage predicates, and the Driver
// rule bundle that the parser, renderer, and remediation engine are built
// on top of.
package hierconfig

import "fmt"

// Errors is a slice of error, following the teacher's aggregate-error
// pattern: a parse or driver-construction pass can accumulate more than one
// problem before surfacing them together.
type Errors []error

// Error implements the error interface.
func (e Errors) Error() string {
	return ToString([]error(e))
}

// String implements the stringer interface.
func (e Errors) String() string {
	return e.Error()
}

// NewErrs returns a slice of error with a single element err. If err is
// nil, NewErrs returns nil.
func NewErrs(err error) Errors {
	if err == nil {
		return nil
	}
	return Errors{err}
}

// AppendErr appends err to errs if it is not nil and returns the result.
func AppendErr(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	return append(errs, err)
}

// AppendErrs appends newErrs to errs and returns the result.
func AppendErrs(errs, newErrs Errors) Errors {
	if len(newErrs) == 0 {
		return errs
	}
	for _, e := range newErrs {
		errs = AppendErr(errs, e)
	}
	return errs
}

// ToString returns a string representation of errs. Nil errors are skipped.
func ToString(errs []error) string {
	var out string
	for i, e := range errs {
		if e == nil {
			continue
		}
		if i != 0 {
			out += ", "
		}
		out += e.Error()
	}
	return out
}

// ParseError is raised when the parser encounters inconsistent
// indentation, a missing parent, or a malformed `set`/`delete` line.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d (%q): %s", e.Line, e.Text, e.Msg)
}

// DuplicateChildError is raised by AddChildChecked when asked to insert a
// sibling whose text is already present under a parent that does not
// allow duplicate children. Merge never raises it: a same-text collision
// there is treated as the same section from two sources, not a conflict.
type DuplicateChildError struct {
	Parent string
	Text   string
}

func (e *DuplicateChildError) Error() string {
	return fmt.Sprintf("duplicate child %q under parent %q", e.Text, e.Parent)
}

// UnsupportedPlatformError is raised when a driver factory lookup fails.
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform %q", e.Platform)
}

// InvalidRuleError is raised when a rule's payload fails validation. It is
// returned by ReSearch for an uncompilable regex; an empty lineage is not
// rejected (it simply never matches).
type InvalidRuleError struct {
	Rule string
	Msg  string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid rule %s: %s", e.Rule, e.Msg)
}

// CycleDetectedError is a defensive error: a reparenting operation would
// have created a cycle in the tree.
type CycleDetectedError struct {
	Text string
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("reparenting %q would create a cycle", e.Text)
}
