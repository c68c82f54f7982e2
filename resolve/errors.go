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

package resolve

import (
	"errors"
	"strings"
)

var (
	// ErrCycle is returned when member augmentation of a name depends on itself.
	ErrCycle = errors.New("cyclic member augmentation")

	// ErrNonPlainKey is returned when a member key is not a plain name.
	ErrNonPlainKey = errors.New("member key is not a plain name")

	// ErrUnresolved is returned when names are requested from an absent property set.
	ErrUnresolved = errors.New("members not resolved")
)

// CycleError reports the chain of names that lead back to a name still being resolved.
type CycleError struct {
	// Path lists the names in resolution order, the last one repeating an earlier one.
	Path []string
}

func (e *CycleError) Error() string {
	return ErrCycle.Error() + ": " + strings.Join(e.Path, " -> ")
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// KeyError reports a descriptor without a plain name key.
type KeyError struct {
	Property Property
}

func (e *KeyError) Error() string {
	switch {
	case e.Property.Key == nil:
		return ErrNonPlainKey.Error() + ": no key"

	case e.Property.Computed:
		return ErrNonPlainKey.Error() + ": computed " + e.Property.Key.Kind().String()

	default:
		return ErrNonPlainKey.Error() + ": " + e.Property.Key.Kind().String()
	}
}

func (e *KeyError) Unwrap() error { return ErrNonPlainKey }
