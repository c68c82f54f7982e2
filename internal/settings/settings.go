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

// Package settings decodes protoscope configuration files into analyzer options.
package settings

import (
	"fmt"
	"os"

	"github.com/golangci/plugin-module-register/register"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/protoscope/analyzer"
	"fillmore-labs.com/protoscope/jsast"
)

// Settings holds the optional analyzer configuration. Unset fields keep the analyzer defaults.
type Settings struct {
	// Merge enables reporting of Object.assign compositions.
	Merge *bool `json:"merge,omitzero"`
	// Extends enables reporting of _extends compositions.
	Extends *bool `json:"extends,omitzero"`
	// Super enables superclass dispatch checks.
	Super *bool `json:"super,omitzero"`
	// This enables instance context checks.
	This *bool `json:"this,omitzero"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
	// Unresolved enables reporting of members that cannot be resolved.
	Unresolved *bool `json:"unresolved,omitzero"`
	// DynamicImport enables the dynamic import syntax extension.
	DynamicImport *bool `json:"dynamic-import,omitzero"`
}

// Decode converts untyped settings, as produced by YAML or JSON decoders, into [Settings].
func Decode(raw any) (Settings, error) {
	if raw == nil {
		return Settings{}, nil
	}

	return register.DecodeSettings[Settings](raw)
}

// Load reads a YAML configuration file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("can't parse config %s: %w", path, err)
	}

	s, err := Decode(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return s, nil
}

// Options converts the set fields into analyzer options.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Merge, analyzer.WithMerge)
	opts = appendOption(opts, s.Extends, analyzer.WithExtends)
	opts = appendOption(opts, s.Super, analyzer.WithSuper)
	opts = appendOption(opts, s.This, analyzer.WithThis)
	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.Unresolved, analyzer.WithUnresolved)
	opts = appendOption(opts, s.DynamicImport, withDynamicImport)

	return opts
}

func withDynamicImport(enabled bool) analyzer.Option {
	var ext jsast.Extensions
	ext.Set(jsast.DynamicImport, enabled)

	return analyzer.WithExtensions(ext)
}

func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
