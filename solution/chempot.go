// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solution

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosw/dom"
	"github.com/cpmech/gosw/state"
)

// ChemPotW computes the chemical potential of water in seawater [J/kg],
// μ_w = g − S·∂g/∂S
//  Input:
//   T -- temperature [°C]. 10 ≤ T ≤ 120
//   S -- salinity [g/kg]. 0 ≤ S ≤ 120
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
//  Note: at S = 0 the salinity term vanishes and ∂g/∂S (whose logarithmic
//  part is undefined there) is never evaluated
func ChemPotW(T, S, P float64) (float64, error) {
	if err := dom.Range("temperature", T, 10, 120); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 120); err != nil {
		return 0, err
	}
	g, err := state.Gibbs(T, S, P)
	if err != nil {
		return 0, err
	}
	if S == 0 {
		return g, nil
	}
	dgds, err := state.DGibbsDS(T, S, P)
	if err != nil {
		return 0, err
	}
	return g - S*dgds, nil
}

// ChemPotS computes the chemical potential of salt in seawater [J/kg],
// μ_s = g + (1000−S)·∂g/∂S
//  Input:
//   T -- temperature [°C]. 10 ≤ T ≤ 80
//   S -- salinity [g/kg]. 0.1 ≤ S ≤ 120
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
//  Note: above the reference pressure the fit is only supported on the
//  combined region S ≤ 42 g/kg and T ≤ 40 °C
func ChemPotS(T, S, P float64) (float64, error) {
	if err := dom.Range("temperature", T, 10, 80); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0.1, 120); err != nil {
		return 0, err
	}
	p0, err := state.RefPressure(T, S)
	if err != nil {
		return 0, err
	}
	if P > p0 && (S > 42 || T > 40) {
		return 0, chk.Err("pressure = %g MPa above the reference pressure %g requires salinity ≤ 42 g/kg and temperature ≤ 40 °C (S = %g, T = %g)", P, p0, S, T)
	}
	g, err := state.Gibbs(T, S, P)
	if err != nil {
		return 0, err
	}
	dgds, err := state.DGibbsDS(T, S, P)
	if err != nil {
		return 0, err
	}
	return g + (1000.0-S)*dgds, nil
}
