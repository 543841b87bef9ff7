// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"math"

	"github.com/cpmech/gosw/dom"
	"github.com/cpmech/gosw/phase"
)

// Conductivity computes the thermal conductivity of seawater at atmospheric
// pressure [W/(m·K)]; Jamieson and Tudhope fit on the IPTS-68 temperature
// scale and Knudsen practical salinity
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 180
//   S -- salinity [g/kg]. 0 ≤ S ≤ 160
func Conductivity(T, S float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 180); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 160); err != nil {
		return 0, err
	}
	T68 := 1.00024 * (T + 273.15)
	SP := S / 1.00472
	log10k := math.Log10(240.0+2.0e-4*SP) +
		0.434*(2.3-(343.5+3.7e-2*SP)/T68)*
			math.Pow(1.0-T68/(647.0+3.0e-2*SP), 1.0/3.0)
	return math.Pow(10.0, log10k) / 1000.0, nil
}

// pressure-corrected thermal conductivity fit; Nayar et al. (2016). The
// salinity dependence is below the fit accuracy and does not appear.
const (
	kp1 = 0.55286
	kp2 = 3.4025e-4
	kp3 = 1.8364e-3
	kp4 = -3.3058e-7
)

// ConductivityP computes the thermal conductivity of seawater at elevated
// pressure [W/(m·K)]. This is a different correlation from Conductivity,
// with a narrower temperature range; the two must not be mixed.
//  Input:
//   T -- temperature [°C]. 10 ≤ T ≤ 90
//   S -- salinity [g/kg]. 0 ≤ S ≤ 120
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
func ConductivityP(T, S, P float64) (float64, error) {
	if err := dom.Range("temperature", T, 10, 90); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 120); err != nil {
		return 0, err
	}
	psat, err := phase.Psat(T, S)
	if err != nil {
		return 0, err
	}
	if err := dom.Range("pressure", P, psat/1e6, 12); err != nil {
		return 0, err
	}
	return kp1 + kp2*P + kp3*T + kp4*T*T*T, nil
}
