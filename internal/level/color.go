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

package level

import (
	"fmt"
	"strings"
)

// Color specifies when output is colored.
type Color uint8

const (
	// ColorAuto colors output written to a terminal.
	ColorAuto Color = iota

	// ColorOn always colors output.
	ColorOn

	// ColorOff never colors output.
	ColorOff
)

// MarshalText implements [encoding.TextMarshaler].
func (o Color) MarshalText() ([]byte, error) {
	switch o {
	case ColorAuto:
		return []byte("auto"), nil

	case ColorOn:
		return []byte("on"), nil

	case ColorOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown color level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Color) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "auto":
		*o = ColorAuto

	case "on", "true", "always":
		*o = ColorOn

	case "off", "false", "never":
		*o = ColorOff

	default:
		return fmt.Errorf("unknown color level %q", string(text))
	}

	return nil
}

// Enabled reports whether output is colored, given whether it goes to a terminal.
func (o Color) Enabled(terminal bool) bool {
	switch o {
	case ColorOn:
		return true

	case ColorOff:
		return false

	default:
		return terminal
	}
}

func (o Color) String() string {
	b, _ := o.MarshalText()

	return string(b)
}

// Set implements [github.com/spf13/pflag.Value].
func (o *Color) Set(s string) error { return o.UnmarshalText([]byte(s)) }

// Type implements [github.com/spf13/pflag.Value].
func (*Color) Type() string { return "color" }
