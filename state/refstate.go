// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state implements the pressure-explicit thermodynamic state
// functions of seawater: density, specific volume, isothermal compressibility,
// isobaric expansivity, specific enthalpy, internal energy, specific entropy,
// specific Gibbs energy and specific heat capacity. Each correlation anchors
// its salinity/temperature part at a reference pressure P0 and applies its own
// pressure-correction term; P0 is re-resolved independently inside every call.
package state

import (
	"github.com/cpmech/gosw/dom"
	"github.com/cpmech/gosw/phase"
)

// Patm is the standard atmospheric pressure [MPa]
const Patm = 0.101325

// RefPressure resolves the reference pressure P0 [MPa] at which the
// salinity/temperature part of a correlation is anchored: atmospheric below
// 100 °C, otherwise the saturation pressure at (T, S)
//  Input:
//   T -- temperature [°C]
//   S -- salinity [g/kg]
func RefPressure(T, S float64) (float64, error) {
	if T < 100 {
		return Patm, nil
	}
	p, err := phase.Psat(T, S)
	if err != nil {
		return 0, err
	}
	return p / 1e6, nil
}

// checkPressure validates P [MPa] against [Psat(T,S), 12]. The lower bound is
// the saturation pressure: below it the liquid phase does not exist.
func checkPressure(T, S, P float64) error {
	psat, err := phase.Psat(T, S)
	if err != nil {
		return err
	}
	return dom.Range("pressure", P, psat/1e6, 12)
}
