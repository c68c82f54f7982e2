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

// Package jsast declares the syntax tree vocabulary inspected by protoscope.
//
// The node set is closed: every node implements [Node] and exactly one of
// the marker interfaces [Expr], [Stmt], [ObjectMember], [ClassMember] or
// [Comment]. Consumers dispatch with type switches instead of comparing
// kind strings, and a [Kind] is available for messages and serialization.
//
// Trees are produced by a front end and treated as immutable afterwards.
// Positions are [token.Pos] values relative to a [token.FileSet], so
// JavaScript sources share the position machinery of the Go toolchain.
//
// # Scopes
//
// A [Scope] is the ordered statement list of exactly one nesting level, a
// program or a single function body. Analyses operating on a scope never
// descend into nested function bodies.
package jsast
