// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transport implements the transport properties of seawater: dynamic
// and kinematic viscosity, thermal conductivity (ambient and
// pressure-dependent), thermal diffusivity and Prandtl number
package transport

import (
	"github.com/cpmech/gosw/dom"
	"github.com/cpmech/gosw/state"
)

// salinity multiplier of the dynamic viscosity; IAPWS (2008) pure-water part
// with seawater fit by Sharqawy, Lienhard and Zubair (2010). Salinity enters
// in kg/kg.
const (
	va1 = 1.541
	va2 = 1.998e-2
	va3 = -9.52e-5
	vb1 = 7.974
	vb2 = -7.561e-2
	vb3 = 4.724e-4
)

// Viscosity computes the dynamic viscosity of seawater [kg/(m·s)]
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 180
//   S -- salinity [g/kg]. 0 ≤ S ≤ 150
func Viscosity(T, S float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 180); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 150); err != nil {
		return 0, err
	}
	s := S / 1000.0
	muW := 4.2844e-5 + 1.0/(0.157*(T+64.993)*(T+64.993)-91.296)
	A := va1 + va2*T + va3*T*T
	B := vb1 + vb2*T + vb3*T*T
	return muW * (1.0 + A*s + B*s*s), nil
}

// Kviscosity computes the kinematic viscosity of seawater [m²/s] at the
// reference pressure
//  Input: as Viscosity
func Kviscosity(T, S float64) (float64, error) {
	mu, err := Viscosity(T, S)
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
	return mu / rho, nil
}
