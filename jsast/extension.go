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

package jsast

import (
	"strconv"

	"fillmore-labs.com/protoscope/internal/config"
)

// Extension identifies an optional syntax extension a tree may contain.
type Extension uint8

const (
	// DynamicImport indicates trees may contain [Import] callee nodes.
	DynamicImport Extension = 1 << iota
)

func (e Extension) String() string {
	if e == DynamicImport {
		return "dynamic-import"
	}

	return "Extension(" + strconv.Itoa(int(e)) + ")"
}

// Extensions is the set of optional syntax extensions supplied by the caller.
type Extensions = config.BitMask[Extension]

// NewExtensions returns an extension set with the given extensions enabled.
func NewExtensions(exts ...Extension) Extensions {
	return config.NewBitMask(exts...)
}
