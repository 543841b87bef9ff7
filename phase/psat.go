// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phase implements phase-change properties of seawater: vapour
// pressure, latent heat of vaporisation, boiling point elevation and surface
// tension. All correlations are closed-form fits; temperatures are in °C
// (ITS-90) and salinities in g/kg (reference-composition salinity).
package phase

import (
	"math"

	"github.com/cpmech/gosw/dom"
)

// Psat computes the vapour pressure of seawater [N/m²]
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 180
//   S -- salinity [g/kg]. 0 ≤ S ≤ 160
//  Note:
//   pure-water part: six-coefficient ln-form over absolute temperature;
//   salinity correction factor after Nayar et al. (2016)
func Psat(T, S float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 180); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 160); err != nil {
		return 0, err
	}
	const (
		a1 = -5800.2206
		a2 = 1.3914993
		a3 = -0.048640239
		a4 = 4.1764768e-5
		a5 = -1.4452093e-8
		a6 = 6.5459673
		b1 = -4.5818e-4
		b2 = -2.0443e-6
	)
	TK := T + 273.15
	pw := math.Exp(a1/TK + a2 + a3*TK + a4*TK*TK + a5*TK*TK*TK + a6*math.Log(TK))
	return pw * math.Exp(b1*S+b2*S*S), nil
}
