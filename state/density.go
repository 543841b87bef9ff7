// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math"

	"github.com/cpmech/gosw/dom"
)

// density of seawater at atmospheric pressure; Sharqawy, Lienhard and
// Zubair (2010). Salinity enters in kg/kg.
const (
	da1 = 9.999e2
	da2 = 2.034e-2
	da3 = -6.162e-3
	da4 = 2.261e-5
	da5 = -4.657e-8
	db1 = 8.020e2
	db2 = -2.001
	db3 = 1.677e-2
	db4 = -3.060e-5
	db5 = -1.613e-5
)

// isothermal compressibility polynomial of seawater; Nayar et al. (2016).
// The exponential pressure-correction factor of the density is the pressure
// integral of this same polynomial.
const (
	kc1 = 5.0792e-4
	kc2 = -3.4168e-6
	kc3 = 5.6931e-8
	kc4 = -3.7263e-10
	kc5 = 1.4465e-12
	kc6 = -1.7058e-15
	kc7 = -1.3389e-6
	kc8 = 4.8603e-9
	kc9 = -6.8039e-13
	kd1 = -1.1077e-6
	kd2 = 5.5584e-9
	kd3 = -4.2539e-11
	kd4 = 8.3702e-9
)

// densityP0 evaluates the density at the reference pressure [kg/m³]
func densityP0(T, S float64) float64 {
	s := S / 1000.0
	rhoW := da1 + da2*T + da3*T*T + da4*T*T*T + da5*T*T*T*T
	return rhoW + db1*s + db2*s*T + db3*s*T*T + db4*s*T*T*T + db5*s*s*T*T
}

// densityP0DerivT evaluates ∂ρ(T,S,P0)/∂T [kg/(m³·K)]
func densityP0DerivT(T, S float64) float64 {
	s := S / 1000.0
	dW := da2 + 2.0*da3*T + 3.0*da4*T*T + 4.0*da5*T*T*T
	return dW + db2*s + 2.0*db3*s*T + 3.0*db4*s*T*T + 2.0*db5*s*s*T
}

// compressTerms returns the pressure-independent (kb) and pressure-linear
// (kp) parts of the compressibility polynomial [1/MPa], [1/MPa²]
func compressTerms(T, S float64) (kb, kp float64) {
	kb = kc1 + kc2*T + kc3*T*T + kc4*T*T*T + kc5*T*T*T*T + kc6*T*T*T*T*T +
		S*(kd1+kd2*T+kd3*T*T)
	kp = kc7 + kc8*T + kc9*T*T*T + S*kd4
	return
}

// compressTermsDerivT returns ∂kb/∂T and ∂kp/∂T
func compressTermsDerivT(T, S float64) (dkb, dkp float64) {
	dkb = kc2 + 2.0*kc3*T + 3.0*kc4*T*T + 4.0*kc5*T*T*T + 5.0*kc6*T*T*T*T +
		S*(kd2+2.0*kd3*T)
	dkp = kc8 + 3.0*kc9*T*T
	return
}

// pressExponent evaluates the exponent of the density pressure-correction
// factor F(P) = exp(pressExponent)
func pressExponent(T, S, P, P0 float64) float64 {
	kb, kp := compressTerms(T, S)
	return (P-P0)*kb + 0.5*(P*P-P0*P0)*kp
}

// Density computes the density of seawater [kg/m³]
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 180
//   S -- salinity [g/kg]. 0 ≤ S ≤ 150
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
func Density(T, S, P float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 180); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 150); err != nil {
		return 0, err
	}
	if err := checkPressure(T, S, P); err != nil {
		return 0, err
	}
	p0, err := RefPressure(T, S)
	if err != nil {
		return 0, err
	}
	return densityP0(T, S) * math.Exp(pressExponent(T, S, P, p0)), nil
}

// Volume computes the specific volume of seawater [m³/kg]
//  Input: as Density
func Volume(T, S, P float64) (float64, error) {
	rho, err := Density(T, S, P)
	if err != nil {
		return 0, err
	}
	return 1.0 / rho, nil
}

// IsothComp computes the isothermal compressibility of seawater [1/MPa]
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 180
//   S -- salinity [g/kg]. 0 ≤ S ≤ 160
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
func IsothComp(T, S, P float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 180); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 160); err != nil {
		return 0, err
	}
	if err := checkPressure(T, S, P); err != nil {
		return 0, err
	}
	kb, kp := compressTerms(T, S)
	return kb + P*kp, nil
}

// IsobExp computes the isobaric thermal expansivity of seawater [1/K],
// defined as −(∂ρ/∂T)/ρ. The derivative is analytic: product and chain rule
// over ρ = ρ(T,S,P0)·F(P), with P0 held fixed.
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 180
//   S -- salinity [g/kg]. 0 ≤ S ≤ 150
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
func IsobExp(T, S, P float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 180); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 150); err != nil {
		return 0, err
	}
	if err := checkPressure(T, S, P); err != nil {
		return 0, err
	}
	p0, err := RefPressure(T, S)
	if err != nil {
		return 0, err
	}
	dkb, dkp := compressTermsDerivT(T, S)
	dExp := (P-p0)*dkb + 0.5*(P*P-p0*p0)*dkp
	return -(densityP0DerivT(T, S)/densityP0(T, S) + dExp), nil
}
