// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"

	"github.com/cpmech/gosw/dom"
)

// critical temperature of water [K] used by the IAPWS surface tension form
const tcritW = 647.096

// SfcTension computes the surface tension of seawater [mN/m]
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 90
//   S -- salinity [g/kg]. 0 ≤ S ≤ 131
//  Note:
//   pure-water part: IAPWS (2014) power law in reduced temperature;
//   salinity factor after Nayar et al. (2014)
func SfcTension(T, S float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 90); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 131); err != nil {
		return 0, err
	}
	const (
		b1 = 3.766e-4
		b2 = 2.347e-6
	)
	x := 1.0 - (T+273.15)/tcritW
	sigW := 235.8 * math.Pow(x, 1.256) * (1.0 - 0.625*x)
	return sigW * (1.0 + b1*S + b2*S*T), nil
}
