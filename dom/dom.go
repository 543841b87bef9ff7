// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dom implements the validity-domain guard applied by every property
// correlation. Each correlation owns its documented bounds; this package only
// checks a value against them and reports the violation.
package dom

import "github.com/cpmech/gosl/chk"

// Range returns an error if v lies outside [min, max]
//  name -- human-readable subject of the check; e.g. "temperature"
func Range(name string, v, min, max float64) error {
	if v < min || v > max {
		return chk.Err("%s = %g is outside validity range [%g, %g]", name, v, min, max)
	}
	return nil
}

// Min returns an error if v < min (one-sided bound)
func Min(name string, v, min float64) error {
	if v < min {
		return chk.Err("%s = %g is below minimum valid value %g", name, v, min)
	}
	return nil
}
