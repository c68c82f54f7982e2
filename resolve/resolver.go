// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"log/slog"

	"fillmore-labs.com/protoscope/jsast"
	"fillmore-labs.com/protoscope/predicate"
)

// Resolver reconstructs member sets. It holds no state between calls and is
// safe for concurrent use over disjoint or shared read-only trees.
type Resolver struct {
	logger *slog.Logger
}

// New creates a [Resolver].
func New(opts ...Option) *Resolver {
	r := &Resolver{logger: slog.New(slog.DiscardHandler)}

	for _, opt := range opts {
		if opt != nil {
			opt.apply(r)
		}
	}

	return r
}

var defaultResolver = New()

// Properties resolves target in scope using a default [Resolver].
func Properties(scope jsast.Scope, target jsast.Node) (PropertySet, error) {
	return defaultResolver.Properties(scope, target)
}

// Augmentation resolves the members assigned to name in scope using a default [Resolver].
func Augmentation(scope jsast.Scope, name string) (PropertySet, error) {
	return defaultResolver.Augmentation(scope, name)
}

// Properties returns the members target holds at runtime, as far as scope reveals them:
//
//   - function or arrow: absent
//   - object literal: its own properties in declared order
//   - class: its static members in body order, then the augmentation of its name
//   - identifier: the augmentation of the name
//   - merge call: the contribution of each argument, left to right
//
// Any other shape is absent.
func (r *Resolver) Properties(scope jsast.Scope, target jsast.Node) (PropertySet, error) {
	res := resolution{logger: r.logger, scope: scope}

	props, ok, err := res.properties(target)
	if err != nil || !ok {
		return PropertySet{}, err
	}

	return Resolved(props...), nil
}

// Augmentation returns the members added to name by sibling statements of scope:
//
//	name = { ... }                   // literal properties
//	name.key = value                 // a single descriptor
//	var name = { ... }               // literal properties
//	var name = Object.assign(...)    // merged members
//
// The result is always present, possibly empty.
func (r *Resolver) Augmentation(scope jsast.Scope, name string) (PropertySet, error) {
	res := resolution{logger: r.logger, scope: scope}

	props, err := res.augmentation(name)
	if err != nil {
		return PropertySet{}, err
	}

	return Resolved(props...), nil
}

// MergeArguments returns the members contributed by the arguments of a merge call.
// Object literal arguments contribute their properties, identifiers their
// augmentation; other arguments contribute nothing.
func (r *Resolver) MergeArguments(scope jsast.Scope, call *jsast.CallExpression) (PropertySet, error) {
	res := resolution{logger: r.logger, scope: scope}

	props, err := res.mergeArguments(call)
	if err != nil {
		return PropertySet{}, err
	}

	return Resolved(props...), nil
}

// StaticMembers returns the members of a class body carrying the static marker, in body order.
func StaticMembers(body *jsast.ClassBody) []Property {
	if body == nil {
		return nil
	}

	var props []Property

	for _, member := range body.Body {
		if !member.IsStatic() {
			continue
		}

		switch m := member.(type) {
		case *jsast.MethodDefinition:
			var value jsast.Expr
			if m.Value != nil {
				value = m.Value
			}

			props = append(props, Property{Key: m.Key, Value: value, Computed: m.Computed, Source: m})

		case *jsast.PropertyDefinition:
			props = append(props, Property{Key: m.Key, Value: m.Value, Computed: m.Computed, Source: m})
		}
	}

	return props
}

// ObjectProperties returns the own properties of an object literal in declared order.
// Spread entries yield descriptors without key.
func ObjectProperties(obj *jsast.ObjectExpression) []Property {
	props := make([]Property, 0, len(obj.Properties))

	for _, member := range obj.Properties {
		switch m := member.(type) {
		case *jsast.Property:
			props = append(props, Property{Key: m.Key, Value: m.Value, Computed: m.Computed, Source: m})

		case *jsast.SpreadElement:
			props = append(props, Property{Value: m.Argument, Source: m})
		}
	}

	return props
}

// isMergeCall returns n as a call when it is a merge call.
func isMergeCall(n jsast.Node) (*jsast.CallExpression, bool) {
	if !predicate.IsMergeCall(n) {
		return nil, false
	}

	call, ok := n.(*jsast.CallExpression)

	return call, ok
}
