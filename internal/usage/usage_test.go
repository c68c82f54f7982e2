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

package usage_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/protoscope/internal/config"
	"fillmore-labs.com/protoscope/internal/target"
	"fillmore-labs.com/protoscope/internal/testsource"
	. "fillmore-labs.com/protoscope/internal/usage"
)

func TestTrack(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name       string
		src        string
		dispatches []string
		instance   []string
	}{
		{
			name: "class_dispatch",
			src: `class A extends Base {
  init() { Base.prototype.init.apply(this, arguments); }
  exit() { Base.prototype.init.apply(this, arguments); }
}`,
			dispatches: []string{"Base.init"},
		},
		{
			name: "class_static_this",
			src:  `class A { static a = this.b; static c = 1; static f = () => this; d = this.e; }`,
			instance: []string{"a"},
		},
		{
			name: "class_without_superclass",
			src:  `class A { init() { Base.prototype.init.apply(this, arguments); } }`,
		},
		{
			name: "merge_dispatch",
			src: `var A = _extends({}, Base, {
  init: function () { Base.prototype.init.apply(this, arguments); },
  run() { Base.prototype.run.apply(this, arguments); },
  other: 1
});`,
			dispatches: []string{"Base.init", "Base.run"},
		},
		{
			name:     "merge_this",
			src:      `var A = Object.assign({}, Base, {a: this.x, b: foo(this), c: foo(), m: function () { return this; }});`,
			instance: []string{"a", "b"},
		},
		{
			name: "nested_function",
			src: `var A = _extends({}, Base, {
  init: function () { return function () { Base.prototype.init.apply(this, arguments); }; }
});`,
		},
		{
			name:     "object",
			src:      `var A = {a: this, [b]: this, c: 2};`,
			instance: []string{"a"},
		},
	}

	stage := New(config.DefaultRules())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, f := testsource.Parse(t, tt.src)

			targets := target.Collect(t.Context(), f.Program.Scope())
			if len(targets) != 1 {
				t.Fatalf("Expected one target, got %d", len(targets))
			}

			r := stage.Track(t.Context(), targets[0])

			var dispatches, instance []string
			for _, d := range r.Dispatches {
				dispatches = append(dispatches, d.SuperClass+"."+d.Method.Name)
			}

			for _, u := range r.Instance {
				instance = append(instance, u.Name)
			}

			if diff := cmp.Diff(tt.dispatches, dispatches); diff != "" {
				t.Errorf("Dispatches mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.instance, instance); diff != "" {
				t.Errorf("Instance uses mismatch (-want +got):\n%s", diff)
			}

			if r.Empty() != (len(tt.dispatches) == 0 && len(tt.instance) == 0) {
				t.Errorf("Empty() = %t", r.Empty())
			}
		})
	}
}

func TestTrackDisabled(t *testing.T) {
	t.Parallel()

	_, f := testsource.Parse(t, `class A extends B { static a = this; m() { B.prototype.m.apply(this, arguments); } }`)

	targets := target.Collect(t.Context(), f.Program.Scope())

	var rules config.Rules
	rules.Enable(config.MergeRule)

	if r := New(rules).Track(t.Context(), targets[0]); !r.Empty() {
		t.Errorf("Expected no uses with super and this rules disabled, got %+v", r)
	}
}
