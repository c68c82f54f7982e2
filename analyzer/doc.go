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

// Package analyzer implements the protoscope static analysis pass.
//
// # Overview
//
// ProtoScope detects legacy object and prototype composition in JavaScript,
// so that a rewriter can reconstruct equivalent class declarations.
//
// # Example
//
// Before:
//
//	var Dialog = _extends({}, Base, {
//	    title: this.defaultTitle,
//	    open: function () {
//	        Base.prototype.open.apply(this, arguments);
//	    }
//	});
//
// Reported:
//
//	Object 'Dialog' inherits 2 members: 'title' and 'open' (ps:extends)
//	Member 'title' initializer depends on instance context (ps:this)
//	Superclass dispatch of 'open' can use super.open() (ps:super)
//
// # Rules
//
//   - merge: objects composed with Object.assign
//   - extends: objects composed with the _extends helper
//   - super: explicit superclass prototype dispatch
//   - this: member initializers depending on the instance context
//
// Members that cannot be resolved, for example because of cyclic
// composition, are reported as ps:cycle.
package analyzer
