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

package jsparse_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/protoscope/internal/jsparse"
	"fillmore-labs.com/protoscope/internal/testsource"
	"fillmore-labs.com/protoscope/jsast"
)

func kinds[N jsast.Node](nodes []N) []jsast.Kind {
	k := make([]jsast.Kind, 0, len(nodes))
	for _, n := range nodes {
		k = append(k, n.Kind())
	}

	return k
}

func TestParseStatements(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want []jsast.Kind
	}{
		{
			name: "expression",
			src:  `a = 1;`,
			want: []jsast.Kind{jsast.KindExpressionStatement},
		},
		{
			name: "declarations",
			src:  `var a; let b = 1; const c = {};`,
			want: []jsast.Kind{jsast.KindVariableDeclaration, jsast.KindVariableDeclaration, jsast.KindVariableDeclaration},
		},
		{
			name: "function_and_class",
			src:  `function f() {} function* g() {} class C {}`,
			want: []jsast.Kind{jsast.KindFunctionDeclaration, jsast.KindFunctionDeclaration, jsast.KindClassDeclaration},
		},
		{
			name: "empty_and_comments",
			src:  "; // line\n/* block */ ;",
			want: []jsast.Kind{},
		},
		{
			name: "opaque",
			src:  `if (a) { b(); }`,
			want: []jsast.Kind{jsast.KindOpaque},
		},
		{
			name: "block",
			src:  `{ a(); }`,
			want: []jsast.Kind{jsast.KindBlockStatement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, f := testsource.Parse(t, tt.src)

			if diff := cmp.Diff(tt.want, kinds(f.Program.Body)); diff != "" {
				t.Errorf("Parse(%q) statements mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestParseDeclarationKind(t *testing.T) {
	t.Parallel()

	_, f := testsource.Parse(t, `var a; let b = 1; const c = {};`)

	var got []string
	for _, d := range testsource.All[*jsast.VariableDeclaration](f.Program) {
		got = append(got, d.DeclKind)
	}

	if diff := cmp.Diff([]string{"var", "let", "const"}, got); diff != "" {
		t.Errorf("Declaration kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExpressions(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want jsast.Kind
	}{
		{name: "identifier", src: `a`, want: jsast.KindIdentifier},
		{name: "this", src: `this`, want: jsast.KindThisExpression},
		{name: "number", src: `42`, want: jsast.KindLiteral},
		{name: "string", src: `"s"`, want: jsast.KindLiteral},
		{name: "template", src: "`t`", want: jsast.KindLiteral},
		{name: "null", src: `null`, want: jsast.KindLiteral},
		{name: "member", src: `a.b`, want: jsast.KindMemberExpression},
		{name: "subscript", src: `a[b]`, want: jsast.KindMemberExpression},
		{name: "call", src: `f(1, 2)`, want: jsast.KindCallExpression},
		{name: "object", src: `{a: 1}`, want: jsast.KindObjectExpression},
		{name: "assignment", src: `a = b`, want: jsast.KindAssignmentExpression},
		{name: "augmented", src: `a += b`, want: jsast.KindAssignmentExpression},
		{name: "function", src: `function () {}`, want: jsast.KindFunctionExpression},
		{name: "arrow", src: `x => x`, want: jsast.KindArrowFunctionExpression},
		{name: "class", src: `class {}`, want: jsast.KindClassExpression},
		{name: "binary", src: `a + b`, want: jsast.KindOpaque},
		{name: "nested_parens", src: `((a))`, want: jsast.KindIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := testsource.Expr(t, tt.src).Kind(); got != tt.want {
				t.Errorf("Expr(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseMember(t *testing.T) {
	t.Parallel()

	m, ok := testsource.Expr(t, `Base.prototype[key]`).(*jsast.MemberExpression)
	if !ok {
		t.Fatal("Expected member expression")
	}

	if !m.Computed {
		t.Error("Expected computed member access")
	}

	inner, ok := m.Object.(*jsast.MemberExpression)
	if !ok || inner.Computed {
		t.Fatalf("Expected plain inner member access, got %#v", m.Object)
	}

	if id, ok := inner.Property.(*jsast.Identifier); !ok || id.Name != "prototype" {
		t.Errorf("Got property %#v, expected prototype", inner.Property)
	}
}

func TestParseObject(t *testing.T) {
	t.Parallel()

	obj, ok := testsource.Expr(t, `{a: 1, b, c() {}, [d]: 2, ...e, "f": 3}`).(*jsast.ObjectExpression)
	if !ok {
		t.Fatal("Expected object expression")
	}

	want := []jsast.Kind{
		jsast.KindProperty, jsast.KindProperty, jsast.KindProperty,
		jsast.KindProperty, jsast.KindSpreadElement, jsast.KindProperty,
	}
	if diff := cmp.Diff(want, kinds(obj.Properties)); diff != "" {
		t.Fatalf("Object members mismatch (-want +got):\n%s", diff)
	}

	if p := obj.Properties[1].(*jsast.Property); !p.Shorthand {
		t.Error("Expected shorthand property")
	}

	if p := obj.Properties[2].(*jsast.Property); !p.Method || p.Value.Kind() != jsast.KindFunctionExpression {
		t.Error("Expected method property")
	}

	if p := obj.Properties[3].(*jsast.Property); !p.Computed {
		t.Error("Expected computed property")
	}

	if p := obj.Properties[5].(*jsast.Property); p.Key.Kind() != jsast.KindLiteral {
		t.Errorf("Got key kind %v, expected literal", p.Key.Kind())
	}
}

func TestParseClass(t *testing.T) {
	t.Parallel()

	const src = `class A extends B {
  static x = 1;
  y = 2;
  constructor() { super(); }
  static create() {}
  get z() { return 1; }
}`

	_, f := testsource.Parse(t, src)

	c, ok := f.Program.Body[0].(*jsast.ClassDeclaration)
	if !ok {
		t.Fatalf("Expected class declaration, got %T", f.Program.Body[0])
	}

	if c.ID == nil || c.ID.Name != "A" {
		t.Errorf("Got class id %v, expected A", c.ID)
	}

	if id, ok := c.SuperClass.(*jsast.Identifier); !ok || id.Name != "B" {
		t.Errorf("Got superclass %#v, expected B", c.SuperClass)
	}

	type member struct {
		Kind   jsast.Kind
		Static bool
		Method string
	}

	got := make([]member, 0, len(c.Body.Body))
	for _, m := range c.Body.Body {
		var kind string
		if m, ok := m.(*jsast.MethodDefinition); ok {
			kind = m.MethodKind
		}

		got = append(got, member{Kind: m.Kind(), Static: m.IsStatic(), Method: kind})
	}

	want := []member{
		{Kind: jsast.KindPropertyDefinition, Static: true},
		{Kind: jsast.KindPropertyDefinition},
		{Kind: jsast.KindMethodDefinition, Method: "constructor"},
		{Kind: jsast.KindMethodDefinition, Static: true, Method: "method"},
		{Kind: jsast.KindMethodDefinition, Method: "get"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Class members mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDynamicImport(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		opts []Option
		want jsast.Kind
	}{
		{name: "enabled", want: jsast.KindImport},
		{name: "disabled", opts: []Option{WithExtensions(jsast.NewExtensions())}, want: jsast.KindOpaque},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, f := testsource.Parse(t, `import("./module");`, tt.opts...)

			call := testsource.First[*jsast.CallExpression](f.Program)
			if call == nil {
				t.Fatal("Expected call expression")
			}

			if got := call.Callee.Kind(); got != tt.want {
				t.Errorf("Got callee %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestParseComments(t *testing.T) {
	t.Parallel()

	const src = "/* @generated */\nvar a = 1; // nolint:protoscope\n"

	_, f := testsource.Parse(t, src)

	want := []string{"/* @generated */", "// nolint:protoscope"}

	got := make([]string, 0, len(f.Comments))
	for _, c := range f.Comments {
		got = append(got, c.Text())
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Comments mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		src     string
		opts    []Option
		wantErr error
	}{
		{name: "syntax", src: `var = ;`, wantErr: ErrSyntax},
		{name: "too_large", src: `var a = 1;`, opts: []Option{WithMaxFileSize(4)}, wantErr: ErrFileTooLarge},
		{name: "invalid_utf8", src: "var a = '\xff';", wantErr: ErrInvalidContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.opts...).Parse(t.Context(), token.NewFileSet(), "test.js", []byte(tt.src))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.src, err, tt.wantErr)
			}
		})
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := New().Parse(t.Context(), token.NewFileSet(), "test.js", []byte("var a = 1;\nvar = ;\n"))

	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Expected *SyntaxError, got %v", err)
	}

	if serr.Position.Line != 2 {
		t.Errorf("Got error line %d, expected 2", serr.Position.Line)
	}
}
