// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "github.com/cpmech/gosw/dom"

// specific enthalpy of seawater at the reference pressure; Nayar et al.
// (2016). Salinity enters in kg/kg.
const (
	hb1  = -2.34825e4
	hb2  = 3.15183e5
	hb3  = 2.80269e6
	hb4  = -1.44606e7
	hb5  = 7.82607e3
	hb6  = -4.41733e1
	hb7  = 2.1394e-1
	hb8  = -1.99108e4
	hb9  = 2.77846e4
	hb10 = 9.72801e1
)

// pressure correction of the specific enthalpy; Nayar et al. (2016).
// Salinity enters in g/kg.
const (
	hp1 = 996.7767
	hp2 = -3.2406
	hp3 = 0.0127
	hp4 = -4.7723e-5
	hp5 = -1.1748
	hp6 = 0.01169
	hp7 = -2.6185e-5
	hp8 = 7.0661e-8
)

// Enthalpy computes the specific enthalpy of seawater [J/kg]
//  Input:
//   T -- temperature [°C]. 10 ≤ T ≤ 120
//   S -- salinity [g/kg]. 0 ≤ S ≤ 120
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
func Enthalpy(T, S, P float64) (float64, error) {
	if err := dom.Range("temperature", T, 10, 120); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 120); err != nil {
		return 0, err
	}
	if err := checkPressure(T, S, P); err != nil {
		return 0, err
	}
	p0, err := RefPressure(T, S)
	if err != nil {
		return 0, err
	}
	s := S / 1000.0
	hW := 141.355 + 4202.070*T - 0.535*T*T + 0.004*T*T*T
	h := hW - s*(hb1+hb2*s+hb3*s*s+hb4*s*s*s+hb5*T+hb6*T*T+hb7*T*T*T+
		hb8*s*T+hb9*s*s*T+hb10*s*T*T)
	return h + (P-p0)*(hp1+hp2*T+hp3*T*T+hp4*T*T*T+
		S*(hp5+hp6*T+hp7*T*T+hp8*T*T*T)), nil
}

// IntEnergy computes the specific internal energy of seawater [J/kg],
// u = h − P/ρ
//  Input: as Enthalpy
func IntEnergy(T, S, P float64) (float64, error) {
	h, err := Enthalpy(T, S, P)
	if err != nil {
		return 0, err
	}
	rho, err := Density(T, S, P)
	if err != nil {
		return 0, err
	}
	return h - P*1e6/rho, nil
}
