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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/protoscope/internal/config"
	"fillmore-labs.com/protoscope/internal/run"
	"fillmore-labs.com/protoscope/jsast"
)

// Option configures specific behavior of a [New] protoscope analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithUnresolved is an [Option] to configure reporting of members that cannot be resolved.
func WithUnresolved(unresolved bool) Option { return unresolvedOption{unresolved: unresolved} }

type unresolvedOption struct{ unresolved bool }

func (o unresolvedOption) apply(r *run.Options) {
	r.Behavior.Set(config.ReportUnresolved, o.unresolved)
}

func (o unresolvedOption) LogAttr() slog.Attr {
	return slog.Bool("unresolved", o.unresolved)
}

// WithMerge is an [Option] to configure whether Object.assign compositions are reported.
func WithMerge(merge bool) Option { return mergeOption{merge: merge} }

type mergeOption struct{ merge bool }

func (o mergeOption) apply(r *run.Options) {
	r.Rules.Set(config.MergeRule, o.merge)
}

func (o mergeOption) LogAttr() slog.Attr {
	return slog.Bool("merge", o.merge)
}

// WithExtends is an [Option] to configure whether _extends compositions are reported.
func WithExtends(extends bool) Option { return extendsOption{extends: extends} }

type extendsOption struct{ extends bool }

func (o extendsOption) apply(r *run.Options) {
	r.Rules.Set(config.ExtendsRule, o.extends)
}

func (o extendsOption) LogAttr() slog.Attr {
	return slog.Bool("extends", o.extends)
}

// WithSuper is an [Option] to configure whether superclass dispatch checks are enabled.
func WithSuper(super bool) Option { return superOption{super: super} }

type superOption struct{ super bool }

func (o superOption) apply(r *run.Options) {
	r.Rules.Set(config.SuperRule, o.super)
}

func (o superOption) LogAttr() slog.Attr {
	return slog.Bool("super", o.super)
}

// WithThis is an [Option] to configure whether instance context checks are enabled.
func WithThis(this bool) Option { return thisOption{this: this} }

type thisOption struct{ this bool }

func (o thisOption) apply(r *run.Options) {
	r.Rules.Set(config.ThisRule, o.this)
}

func (o thisOption) LogAttr() slog.Attr {
	return slog.Bool("this", o.this)
}

// WithExtensions is an [Option] to configure the optional syntax the analyzed trees may contain.
func WithExtensions(ext jsast.Extensions) Option { return extensionsOption{ext: ext} }

type extensionsOption struct{ ext jsast.Extensions }

func (o extensionsOption) apply(r *run.Options) {
	r.Extensions = o.ext
}

func (o extensionsOption) LogAttr() slog.Attr {
	return slog.Bool("dynamic-import", o.ext.Enabled(jsast.DynamicImport))
}

// WithLogger is an [Option] to configure the logger for debug output.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	if o.logger != nil {
		r.Logger = o.logger
	}
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
