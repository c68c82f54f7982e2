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

package jsparse

// tree-sitter-javascript node types.
const (
	// keep-sorted start
	tsArguments              = "arguments"
	tsArrowFunction          = "arrow_function"
	tsAssignmentExpression   = "assignment_expression"
	tsAugmentedAssignment    = "augmented_assignment_expression"
	tsCallExpression         = "call_expression"
	tsClass                  = "class"
	tsClassBody              = "class_body"
	tsClassDeclaration       = "class_declaration"
	tsClassHeritage          = "class_heritage"
	tsComment                = "comment"
	tsComputedPropertyName   = "computed_property_name"
	tsEmptyStatement         = "empty_statement"
	tsExpressionStatement    = "expression_statement"
	tsFalse                  = "false"
	tsFieldDefinition        = "field_definition"
	tsFormalParameters       = "formal_parameters"
	tsFunction               = "function" // function expression before grammar v0.21
	tsFunctionDeclaration    = "function_declaration"
	tsFunctionExpression     = "function_expression"
	tsGeneratorFunction      = "generator_function"
	tsGeneratorFunctionDecl  = "generator_function_declaration"
	tsIdentifier             = "identifier"
	tsImport                 = "import"
	tsLexicalDeclaration     = "lexical_declaration"
	tsMemberExpression       = "member_expression"
	tsMethodDefinition       = "method_definition"
	tsNull                   = "null"
	tsNumber                 = "number"
	tsObject                 = "object"
	tsOptionalChain          = "optional_chain"
	tsPair                   = "pair"
	tsParenthesizedExpr      = "parenthesized_expression"
	tsPrivatePropertyIdent   = "private_property_identifier"
	tsProgram                = "program"
	tsPropertyIdentifier     = "property_identifier"
	tsRegex                  = "regex"
	tsReturnStatement        = "return_statement"
	tsShorthandPropertyIdent = "shorthand_property_identifier"
	tsSpreadElement          = "spread_element"
	tsStatementBlock         = "statement_block"
	tsStatementIdentifier    = "statement_identifier"
	tsString                 = "string"
	tsSubscriptExpression    = "subscript_expression"
	tsSuper                  = "super"
	tsTemplateString         = "template_string"
	tsThis                   = "this"
	tsTrue                   = "true"
	tsUndefined              = "undefined"
	tsVariableDeclaration    = "variable_declaration"
	tsVariableDeclarator     = "variable_declarator"
	// keep-sorted end
)

// Anonymous modifier tokens.
const (
	tokAsync  = "async"
	tokGet    = "get"
	tokSet    = "set"
	tokStar   = "*"
	tokStatic = "static"
)
