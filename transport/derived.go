// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import "github.com/cpmech/gosw/state"

// Diffusivity computes the thermal diffusivity of seawater [m²/s],
// α = k/(ρ·cp), with density and heat capacity taken at the reference
// pressure
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 180
//   S -- salinity [g/kg]. 0 ≤ S ≤ 150
func Diffusivity(T, S float64) (float64, error) {
	k, err := Conductivity(T, S)
	if err != nil {
		return 0, err
	}
	p0, err := state.RefPressure(T, S)
	if err != nil {
		return 0, err
	}
	rho, err := state.Density(T, S, p0)
	if err != nil {
		return 0, err
	}
	cp, err := state.SpcHeat(T, S, p0)
	if err != nil {
		return 0, err
	}
	return k / (rho * cp), nil
}

// Prandtl computes the Prandtl number of seawater [-], Pr = cp·μ/k, with the
// heat capacity taken at the reference pressure
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 180
//   S -- salinity [g/kg]. 0 ≤ S ≤ 150
func Prandtl(T, S float64) (float64, error) {
	mu, err := Viscosity(T, S)
	if err != nil {
		return 0, err
	}
	k, err := Conductivity(T, S)
	if err != nil {
		return 0, err
	}
	p0, err := state.RefPressure(T, S)
	if err != nil {
		return 0, err
	}
	cp, err := state.SpcHeat(T, S, p0)
	if err != nil {
		return 0, err
	}
	return cp * mu / k, nil
}
