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

// Package resolve statically reconstructs the members an entity holds at runtime.
//
// # Overview
//
// Given a scope and a target (an object literal, a class, a bare name or a
// merge call), the resolver scans the sibling statements of the scope and
// returns the ordered [PropertySet] the target will hold:
//
//	var Base = { init: function () {} };  // declaration
//	Base.render = function () {};         // augmentation
//	var Child = Object.assign({}, Base, { // merge call
//	    init: function () {}
//	});
//
// Resolving Child yields init, render and init, in discovery order.
// [PropertySet.Group] reduces this to a name→value mapping where the last
// write wins.
//
// # Coverage
//
// Resolution is read-only, bounded to one scope level and never descends into
// function bodies. Deliberately not captured:
//
//   - assignments to deeper paths, like Base.a.b = v
//   - computed assignments, like Base[k] = v
//   - merge arguments other than object literals and identifiers,
//     for example imported values or nested calls
//
// Identifier chains are followed recursively with an in-progress set, so a
// self-referential scope yields a [CycleError] instead of recursing forever.
package resolve
