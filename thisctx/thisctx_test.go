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

package thisctx_test

import (
	"testing"

	"fillmore-labs.com/protoscope/internal/testsource"
	. "fillmore-labs.com/protoscope/thisctx"
)

func TestUses(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want bool
	}{
		// keep-sorted start
		{name: "argument", src: `method(this)`, want: true},
		{name: "argument_member", src: `method(this.a)`, want: true},
		{name: "arrow_argument", src: `method(() => this)`},
		{name: "binary", src: `this.a + 1`},
		{name: "call_on_this", src: `this.thing()`, want: true},
		{name: "class_argument", src: `method(class { m() { return this; } })`},
		{name: "computed_property", src: `a[this]`},
		{name: "function_argument", src: `method(function () { return this; })`},
		{name: "identifier", src: `a`},
		{name: "later_argument", src: `method(1, "x", this)`, want: true},
		{name: "literal", src: `42`},
		{name: "member_chain", src: `this.a.b`, want: true},
		{name: "method_argument", src: `obj.method(this)`, want: true},
		{name: "object_literal", src: `{a: this}`},
		{name: "plain_call", src: `method(a, b)`},
		{name: "this", src: `this`, want: true},
		// keep-sorted end
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Uses(testsource.Expr(t, tt.src)); got != tt.want {
				t.Errorf("Uses(%q) = %t, want %t", tt.src, got, tt.want)
			}
		})
	}
}

func TestUsesNil(t *testing.T) {
	t.Parallel()

	if Uses(nil) {
		t.Error("Expected Uses(nil) to be false")
	}
}
