// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solution implements the colligative properties of seawater as an
// electrolyte solution: osmotic coefficient, osmotic pressure and the
// chemical potentials of water and salt
package solution

import (
	"math"

	"github.com/cpmech/gosw/dom"
	"github.com/cpmech/gosw/state"
)

// mean molar mass of the dissolved species of reference-composition
// seawater [g/mol]
const molarMass = 31.4038218

// universal gas constant [J/(mol·K)]
const gasR = 8.3144598

// osmotic coefficient polynomial; fit after Sharqawy, Lienhard and Zubair
// (2010). Salinity enters in kg/kg.
const (
	oa1  = 8.9453e-1
	oa2  = 4.1561e-4
	oa3  = -4.6262e-6
	oa4  = 2.2211e-11
	oa5  = -1.1445e-1
	oa6  = -1.4783e-3
	oa7  = -1.3526e-8
	oa8  = 7.0132
	oa9  = 5.696e-2
	oa10 = -2.8624e-4
)

// the Pitzer–Brønsted branch is anchored at this salinity [g/kg]
const anchorS = 10.0

// molality returns the molality of dissolved species [mol/kg water]
func molality(S float64) float64 {
	s := S / 1000.0
	return s / (molarMass * 1e-3 * (1.0 - s))
}

// dMolalityDS returns ∂m/∂S [mol/kg water per g/kg]
func dMolalityDS(S float64) float64 {
	s := S / 1000.0
	return 1.0 / (1000.0 * molarMass * 1e-3 * (1.0 - s) * (1.0 - s))
}

// osmPoly evaluates the direct osmotic coefficient polynomial
func osmPoly(T, S float64) float64 {
	s := S / 1000.0
	return oa1 + oa2*T + oa3*T*T + oa4*T*T*T*T +
		s*(oa5+oa6*T+oa7*T*T*T) +
		s*s*(oa8+oa9*T+oa10*T*T)
}

// osmPolyDerivS evaluates ∂φ/∂S of the direct polynomial [1 per g/kg]
func osmPolyDerivS(T, S float64) float64 {
	s := S / 1000.0
	return (oa5 + oa6*T + oa7*T*T*T + 2.0*s*(oa8+oa9*T+oa10*T*T)) / 1000.0
}

// OsmCoeff computes the osmotic coefficient of seawater [-]
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 200
//   S -- salinity [g/kg]. 0 ≤ S ≤ 120
//  Note:
//   above 10 g/kg the direct polynomial applies; at and below 10 g/kg a
//   Pitzer–Brønsted extrapolation is used instead, with its two parameters
//   solved from the polynomial's value and slope at the 10 g/kg anchor so
//   that the two branches join continuously
func OsmCoeff(T, S float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 200); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 120); err != nil {
		return 0, err
	}
	if S > anchorS {
		return osmPoly(T, S), nil
	}

	// anchor conditions in molality space
	m0 := molality(anchorS)
	phi0 := osmPoly(T, anchorS)
	dphi0 := osmPolyDerivS(T, anchorS) / dMolalityDS(anchorS)

	// Pitzer–Brønsted: φ(m) = 1 − β·√m/(1+√m) + λ·m
	r0 := math.Sqrt(m0)
	u0 := r0 / (1.0 + r0)
	du0 := 1.0 / (2.0 * r0 * (1.0 + r0) * (1.0 + r0))
	beta := (1.0 - phi0 + dphi0*m0) / (u0 - m0*du0)
	lambda := dphi0 + beta*du0

	m := molality(S)
	rm := math.Sqrt(m)
	return 1.0 - beta*rm/(1.0+rm) + lambda*m, nil
}

// OsmPress computes the osmotic pressure of seawater [MPa] relative to pure
// water at the same temperature
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 180
//   S -- salinity [g/kg]. 0 ≤ S ≤ 120
func OsmPress(T, S float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 180); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 120); err != nil {
		return 0, err
	}
	phi, err := OsmCoeff(T, S)
	if err != nil {
		return 0, err
	}
	p0, err := state.RefPressure(T, 0)
	if err != nil {
		return 0, err
	}
	rhoW, err := state.Density(T, 0, p0)
	if err != nil {
		return 0, err
	}
	return phi * molality(S) * gasR * (T + 273.15) * rhoW * 1e-6, nil
}
