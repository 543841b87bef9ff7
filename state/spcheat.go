// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "github.com/cpmech/gosw/dom"

// specific heat capacity of seawater at the reference pressure; Jamieson and
// Tudhope fit as given by Sharqawy, Lienhard and Zubair (2010). The fit is
// expressed on the IPTS-68 temperature scale and Knudsen practical salinity,
// hence the unit conversions below.
const (
	cpa1 = 5.328
	cpa2 = -9.76e-2
	cpa3 = 4.04e-4
	cpb1 = -6.913e-3
	cpb2 = 7.351e-4
	cpb3 = -3.15e-6
	cpc1 = 9.6e-6
	cpc2 = -1.927e-6
	cpc3 = 8.23e-9
	cpd1 = 2.5e-9
	cpd2 = 1.666e-9
	cpd3 = -7.125e-12
)

// pressure correction of the specific heat capacity; Nayar et al. (2016).
// Salinity enters in g/kg.
const (
	cpp1 = -3.1118
	cpp2 = 1.57e-2
	cpp3 = 5.1014e-5
	cpp4 = -1.0302e-6
	cpp5 = 1.07e-2
	cpp6 = -3.9716e-5
	cpp7 = 3.2088e-8
	cpp8 = 1.0119e-9
)

// SpcHeat computes the specific heat capacity of seawater at constant
// pressure [J/(kg·K)]
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 180
//   S -- salinity [g/kg]. 0 ≤ S ≤ 180
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
func SpcHeat(T, S, P float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 180); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 180); err != nil {
		return 0, err
	}
	if err := checkPressure(T, S, P); err != nil {
		return 0, err
	}
	p0, err := RefPressure(T, S)
	if err != nil {
		return 0, err
	}

	// IPTS-68 temperature [K] and Knudsen practical salinity
	T68 := 1.00024 * (T + 273.15)
	SP := S / 1.00472

	A := cpa1 + cpa2*SP + cpa3*SP*SP
	B := cpb1 + cpb2*SP + cpb3*SP*SP
	C := cpc1 + cpc2*SP + cpc3*SP*SP
	D := cpd1 + cpd2*SP + cpd3*SP*SP
	cp := 1000.0 * (A + B*T68 + C*T68*T68 + D*T68*T68*T68)

	return cp + (P-p0)*(cpp1+cpp2*T+cpp3*T*T+cpp4*T*T*T+
		S*(cpp5+cpp6*T+cpp7*T*T+cpp8*T*T*T)), nil
}
