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
	"iter"
	"slices"

	"fillmore-labs.com/protoscope/jsast"
)

// Property is a member descriptor: a key and the value stored under it.
type Property struct {
	// Key is the member key, nil for spread entries of object literals.
	Key jsast.Expr

	// Value is the stored value, nil for class fields without initializer.
	Value jsast.Expr

	// Computed is set for keys in brackets, like [k]: v.
	Computed bool

	// Source is the node the descriptor was read from: an object property,
	// a spread element, a class member or an augmenting assignment.
	Source jsast.Node
}

// Name returns the key name. Keys other than plain identifiers yield a [*KeyError].
func (p Property) Name() (string, error) {
	if id, ok := p.Key.(*jsast.Identifier); ok && !p.Computed {
		return id.Name, nil
	}

	return "", &KeyError{Property: p}
}

// PropertySet is the ordered result of a resolution.
//
// The zero value is absent: the target was not a recognized shape. This is
// distinct from a resolved set that happens to be empty.
type PropertySet struct {
	props    []Property
	resolved bool
}

// Resolved returns a resolved set holding props.
func Resolved(props ...Property) PropertySet {
	return PropertySet{props: props, resolved: true}
}

// Resolved reports whether the set is present.
func (s PropertySet) Resolved() bool { return s.resolved }

// Len returns the number of descriptors.
func (s PropertySet) Len() int { return len(s.props) }

// All iterates over the descriptors in discovery order.
func (s PropertySet) All() iter.Seq[Property] {
	return slices.Values(s.props)
}

// Properties returns a copy of the descriptors in discovery order.
func (s PropertySet) Properties() []Property {
	return slices.Clone(s.props)
}

// Names maps each descriptor to its key name, in discovery order and
// including duplicates.
func (s PropertySet) Names() ([]string, error) {
	if !s.resolved {
		return nil, ErrUnresolved
	}

	names := make([]string, 0, len(s.props))

	for _, p := range s.props {
		name, err := p.Name()
		if err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	return names, nil
}

// Group reduces the set to a name→value mapping where a later descriptor
// overwrites an earlier one with the same name. An absent set yields absent [Members].
func (s PropertySet) Group() (Members, error) {
	if !s.resolved {
		return Members{}, nil
	}

	m := Members{
		values:   make(map[string]jsast.Expr, len(s.props)),
		resolved: true,
	}

	for _, p := range s.props {
		name, err := p.Name()
		if err != nil {
			return Members{}, err
		}

		if _, seen := m.values[name]; !seen {
			m.names = append(m.names, name)
		}

		m.values[name] = p.Value
	}

	return m, nil
}

// Members is a last-write-wins mapping of member names to values.
// The zero value is absent, see [PropertySet].
type Members struct {
	values   map[string]jsast.Expr
	names    []string // first-seen order
	resolved bool
}

// Resolved reports whether the mapping is present.
func (m Members) Resolved() bool { return m.resolved }

// Len returns the number of distinct names.
func (m Members) Len() int { return len(m.names) }

// Lookup returns the value stored last under name.
func (m Members) Lookup(name string) (jsast.Expr, bool) {
	v, ok := m.values[name]

	return v, ok
}

// Names returns the distinct names in order of first appearance.
func (m Members) Names() []string {
	return slices.Clone(m.names)
}

// All iterates over names in order of first appearance with their final values.
func (m Members) All() iter.Seq2[string, jsast.Expr] {
	return func(yield func(string, jsast.Expr) bool) {
		for _, name := range m.names {
			if !yield(name, m.values[name]) {
				return
			}
		}
	}
}
