// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"runtime"
	"strings"
)

// maxDepth bounds how many callers a [Violation] records.
const maxDepth = 16

// callerStack returns the function names of the callers of [Fail],
// innermost first. The [Assert] frame is left out, and the walk ends
// at the first frame of package runtime or testing.
func callerStack() []string {
	pcs := make([]uintptr, maxDepth)
	// skip runtime.Callers, callerStack and Fail
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return nil
	}
	var names []string
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var fr runtime.Frame
		fr, more = frames.Next()
		if strings.HasPrefix(fr.Function, "runtime.") || strings.HasPrefix(fr.Function, "testing.") {
			break
		}
		if fr.Function == assertFunc {
			continue
		}
		names = append(names, fr.Function)
	}
	return names
}

const assertFunc = "github.com/DveloperY0115/PBRT/base/check.Assert"
