// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosw/dom"
)

// pure-water part of the specific Gibbs energy [J/kg]
const (
	gw1 = 9.920e1
	gw2 = -6.336
	gw3 = -7.094
	gw4 = -4.366e-3
	gw5 = 7.971e-5
)

// salinity correction of the specific Gibbs energy at the reference pressure:
// nine-coefficient family in S [g/kg], T and S·ln(S). The same family,
// differentiated with respect to S, produces both chemical potentials.
const (
	gb1 = -2.4771
	gb2 = -2.2564e-2
	gb3 = 1.2846e-4
	gb4 = -1.1443e-7
	gb5 = 7.3214e-3
	gb6 = -5.9012e-5
	gb7 = -1.281e-5
	gb8 = 8.8389e-1
	gb9 = 3.2436e-3
)

// pressure correction of the specific Gibbs energy. Salinity enters in g/kg.
const (
	gp1 = 996.7767
	gp2 = -3.2406
	gp3 = 1.27e-2
	gp4 = -4.7723e-5
	gp5 = -7.0178e-1
	gp6 = 1.1690e-2
)

// checkGibbs validates the common domain of the Gibbs-energy family
func checkGibbs(T, S, P float64) error {
	if err := dom.Range("temperature", T, 10, 120); err != nil {
		return err
	}
	if err := dom.Range("salinity", S, 0, 120); err != nil {
		return err
	}
	return checkPressure(T, S, P)
}

// gibbsW evaluates the pure-water Gibbs energy [J/kg]
func gibbsW(T float64) float64 {
	return gw1 + gw2*T + gw3*T*T + gw4*T*T*T + gw5*T*T*T*T
}

// Gibbs computes the specific Gibbs energy of seawater [J/kg]
//  Input:
//   T -- temperature [°C]. 10 ≤ T ≤ 120
//   S -- salinity [g/kg]. 0 ≤ S ≤ 120
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
//  Note: at S = 0 the whole salinity correction, including the S·ln(S)
//  mixing term, is skipped; the logarithm is never evaluated
func Gibbs(T, S, P float64) (float64, error) {
	if err := checkGibbs(T, S, P); err != nil {
		return 0, err
	}
	p0, err := RefPressure(T, S)
	if err != nil {
		return 0, err
	}
	res := gibbsW(T)
	if S > 0 {
		res += S*(gb1+gb2*T+gb3*T*T+gb4*T*T*T) + gb5*S*S + gb6*S*S*T + gb7*S*S*S +
			(gb8+gb9*T)*S*math.Log(S)
	}
	return res + (P-p0)*(gp1+gp2*T+gp3*T*T+gp4*T*T*T+S*(gp5+gp6*T)), nil
}

// DGibbsDS computes the analytic salinity derivative ∂g/∂S of the seawater
// Gibbs energy [J/kg per g/kg]. It is the building block of the chemical
// potentials of water and salt.
//  Input:
//   T -- temperature [°C]. 10 ≤ T ≤ 120
//   S -- salinity [g/kg]. 0 < S ≤ 120 (the logarithmic term forbids S = 0)
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
func DGibbsDS(T, S, P float64) (float64, error) {
	if err := checkGibbs(T, S, P); err != nil {
		return 0, err
	}
	if S == 0 {
		return 0, chk.Err("salinity = 0 is outside the domain of ∂g/∂S (logarithmic mixing term)")
	}
	p0, err := RefPressure(T, S)
	if err != nil {
		return 0, err
	}
	res := gb1 + gb2*T + gb3*T*T + gb4*T*T*T + 2.0*gb5*S + 2.0*gb6*S*T + 3.0*gb7*S*S +
		(gb8+gb9*T)*(math.Log(S)+1.0)
	return res + (P-p0)*(gp5+gp6*T), nil
}
