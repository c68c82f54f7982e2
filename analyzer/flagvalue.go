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
	"strconv"
	"strings"

	"fillmore-labs.com/protoscope/internal/config"
)

// flagValue binds one flag of a bit mask to a boolean command line flag.
//
// The zero value reads as false, which [flag.FlagSet.PrintDefaults] relies on.
type flagValue[F config.Flag] struct {
	mask *config.BitMask[F]
	flag F
}

func newFlagValue[F config.Flag](mask *config.BitMask[F], flag F) flagValue[F] {
	return flagValue[F]{mask: mask, flag: flag}
}

// Set implements [flag.Value].
func (v flagValue[F]) Set(s string) error {
	enabled, err := parseBool(s)
	if err != nil {
		return err
	}

	v.mask.Set(v.flag, enabled)

	return nil
}

// String implements [flag.Value].
func (v flagValue[F]) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v flagValue[F]) Get() any {
	return v.enabled()
}

// IsBoolFlag marks the value as a boolean flag, so that -name alone enables it.
func (flagValue[F]) IsBoolFlag() bool { return true }

func (v flagValue[F]) enabled() bool {
	return v.mask != nil && v.mask.Enabled(v.flag)
}

// parseBool accepts the [strconv.ParseBool] forms plus on/off and yes/no.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil

	case "off", "no":
		return false, nil

	default:
		return strconv.ParseBool(s)
	}
}
