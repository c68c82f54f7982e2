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

package target_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/protoscope/internal/target"
	"fillmore-labs.com/protoscope/internal/testsource"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want []string
	}{
		{
			name: "merge_declaration",
			src:  `var A = Object.assign({}, B), C = _extends({}, D);`,
			want: []string{"A:merge", "C:merge"},
		},
		{
			name: "merge_assignment",
			src:  `A = Object.assign({}, B); A += 1; A.x = Object.assign({}, B);`,
			want: []string{"A:merge"},
		},
		{
			name: "classes",
			src:  `class A {} var B = class {}; C = class D extends A {};`,
			want: []string{"A:class", "B:class", "C:class"},
		},
		{
			name: "objects",
			src:  `var A = {a: 1}; let B; const C = f({});`,
			want: []string{"A:object"},
		},
		{
			name: "nested_scope",
			src:  `function f() { var A = {}; } { var B = {}; }`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, f := testsource.Parse(t, tt.src)

			var got []string
			for _, target := range Collect(t.Context(), f.Program.Scope()) {
				got = append(got, target.Name.Name+":"+target.Shape.String())
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTargetAccessors(t *testing.T) {
	t.Parallel()

	_, f := testsource.Parse(t, `class A extends B { m() {} } var C = _extends({}, A);`)

	targets := Collect(t.Context(), f.Program.Scope())
	if len(targets) != 2 {
		t.Fatalf("Expected 2 targets, got %d", len(targets))
	}

	class, merge := targets[0], targets[1]

	if _, ok := class.Call(); ok {
		t.Error("Expected no merge call for class target")
	}

	if class.SuperClass() == nil || class.ClassBody() == nil || len(class.ClassBody().Body) != 1 {
		t.Error("Expected superclass and body for class target")
	}

	if call, ok := merge.Call(); !ok || len(call.Arguments) != 2 {
		t.Error("Expected merge call with 2 arguments")
	}

	if merge.SuperClass() != nil || merge.ClassBody() != nil {
		t.Error("Expected no class information for merge target")
	}
}
