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

package astutil

import (
	"fmt"

	"golang.org/x/tools/go/analysis"
)

// Reporter receives the diagnostics of one analyzed file.
type Reporter func(analysis.Diagnostic)

// InternalError reports a broken analyzer invariant at rng.
// The message is prefixed with "Internal Error:" and carries the category "internal",
// so drivers can set it apart from findings in the analyzed source.
func (r Reporter) InternalError(rng analysis.Range, format string, args ...any) {
	r(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: "internal",
		Message:  "Internal Error: " + fmt.Sprintf(format, args...),
	})
}
