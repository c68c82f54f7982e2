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

package config

import "fmt"

// Rule represents a specific diagnostic rule of the analyzer.
type Rule uint8

const (
	// MergeRule reports objects composed with merge calls.
	MergeRule Rule = 1 << iota

	// ExtendsRule reports synthetic inheritance helpers emitted by down-level compilers.
	ExtendsRule

	// SuperRule reports explicit superclass prototype dispatch.
	SuperRule

	// ThisRule reports member initializers depending on instance context.
	ThisRule
)

func (r Rule) String() string {
	switch r {
	case MergeRule:
		return "merge"

	case ExtendsRule:
		return "extends"

	case SuperRule:
		return "super"

	case ThisRule:
		return "this"

	default:
		return fmt.Sprintf("Rule(%d)", uint8(r))
	}
}

// Rules is the set of enabled rules.
type Rules = BitMask[Rule]

// DefaultRules returns the rules enabled without explicit configuration.
func DefaultRules() Rules {
	return NewBitMask(MergeRule, ExtendsRule, SuperRule, ThisRule)
}

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// ReportUnresolved reports members that could not be resolved, for example because of cycles.
	ReportUnresolved
)

func (c Config) String() string {
	switch c {
	case IncludeGenerated:
		return "generated"

	case ReportUnresolved:
		return "unresolved"

	default:
		return fmt.Sprintf("Config(%d)", uint8(c))
	}
}

// Behavior holds behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the behavior without explicit configuration.
func DefaultBehavior() Behavior {
	return NewBitMask(ReportUnresolved)
}
