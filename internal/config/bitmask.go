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

package config

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Flag is the set of unsigned integer types usable as bit flags.
type Flag interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 // constraints.Unsigned would be fine, but it lives in golang.org/x/exp
}

// BitMask is a generic type that represents a bitmask for managing binary flags.
type BitMask[T Flag] struct {
	value T
}

// NewBitMask creates a new typed [BitMask] instance with the specified flags enabled.
func NewBitMask[T Flag](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// Set adjusts the bitmask by enabling or disabling the specified option.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets the given flag in the current bitmask, enabling the specified option.
func (b *BitMask[T]) Enable(flag T) {
	b.value |= flag
}

// Disable removes the specified flag from the current bitmask, disabling the associated option.
func (b *BitMask[T]) Disable(flag T) {
	b.value &^= flag
}

// Enabled checks if any of the specified options is enabled in the current bitmask.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.value&flag != 0
}

// All iterates over the enabled single-bit flags, lowest bit first.
func (b BitMask[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := uint64(b.value); v != 0; v &= v - 1 {
			if !yield(T(1) << bits.TrailingZeros64(v)) {
				return
			}
		}
	}
}

// String lists the enabled flags in brackets, formatted with their String method where available.
func (b BitMask[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for flag := range b.All() {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}

		_, _ = fmt.Fprint(&sb, flag)
	}

	sb.WriteByte(']')

	return sb.String()
}
