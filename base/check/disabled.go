// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build nocheck

package check

// Enabled is whether invariant checks run.
// Build without the nocheck tag to enable them.
const Enabled = false
