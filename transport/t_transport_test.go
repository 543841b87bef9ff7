// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosw/state"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_visc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("visc01. dynamic viscosity")

	mu, err := Viscosity(25, 35)
	if err != nil {
		tst.Errorf("Viscosity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "mu(25,35)", 5e-8, mu, 9.588282e-4)

	// salt thickens the liquid
	muW, err := Viscosity(25, 0)
	if err != nil {
		tst.Errorf("Viscosity failed: %v\n", err)
		return
	}
	if mu <= muW {
		tst.Errorf("salinity must increase viscosity: %g ≤ %g\n", mu, muW)
		return
	}

	if _, err := Viscosity(180.001, 35); err == nil {
		tst.Errorf("temperature above range must fail\n")
		return
	}
	if _, err := Viscosity(25, 150.001); err == nil {
		tst.Errorf("salinity above range must fail\n")
		return
	}

	if chk.Verbose {
		PlotViscosity("/tmp/gosw", "fig_viscosity", []float64{0, 35, 120}, 41)
	}
}

func Test_visc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("visc02. kinematic viscosity round trip")

	T, S := 25.0, 35.0
	nu, err := Kviscosity(T, S)
	if err != nil {
		tst.Errorf("Kviscosity failed: %v\n", err)
		return
	}
	mu, err := Viscosity(T, S)
	if err != nil {
		tst.Errorf("Viscosity failed: %v\n", err)
		return
	}
	p0, err := state.RefPressure(T, S)
	if err != nil {
		tst.Errorf("RefPressure failed: %v\n", err)
		return
	}
	rho, err := state.Density(T, S, p0)
	if err != nil {
		tst.Errorf("Density failed: %v\n", err)
		return
	}
	chk.Float64(tst, "nu = mu/rho", 1e-12, nu, mu/rho)
}

func Test_cond01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cond01. thermal conductivity (ambient)")

	k, err := Conductivity(25, 35)
	if err != nil {
		tst.Errorf("Conductivity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "k(25,35)", 2e-3, k, 0.6087)

	if _, err := Conductivity(25, 160); err != nil {
		tst.Errorf("upper salinity bound must be accepted: %v\n", err)
		return
	}
	if _, err := Conductivity(25, 160.001); err == nil {
		tst.Errorf("salinity above range must fail\n")
		return
	}
}

func Test_cond02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cond02. thermal conductivity (pressure-dependent)")

	k, err := ConductivityP(25, 35, 0.1)
	if err != nil {
		tst.Errorf("ConductivityP failed: %v\n", err)
		return
	}
	chk.Float64(tst, "k(25,35,0.1)", 1e-6, k, 0.5936387125)

	// narrower temperature range than the ambient correlation
	if _, err := ConductivityP(9.999, 35, 0.1); err == nil {
		tst.Errorf("temperature below range must fail\n")
		return
	}
	if _, err := ConductivityP(90.001, 35, 0.1); err == nil {
		tst.Errorf("temperature above range must fail\n")
		return
	}
	if _, err := ConductivityP(25, 35, 12.001); err == nil {
		tst.Errorf("pressure above range must fail\n")
		return
	}
}

func Test_diff01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diff01. thermal diffusivity consistency")

	T, S := 25.0, 35.0
	a, err := Diffusivity(T, S)
	if err != nil {
		tst.Errorf("Diffusivity failed: %v\n", err)
		return
	}
	k, err := Conductivity(T, S)
	if err != nil {
		tst.Errorf("Conductivity failed: %v\n", err)
		return
	}
	p0, err := state.RefPressure(T, S)
	if err != nil {
		tst.Errorf("RefPressure failed: %v\n", err)
		return
	}
	rho, err := state.Density(T, S, p0)
	if err != nil {
		tst.Errorf("Density failed: %v\n", err)
		return
	}
	cp, err := state.SpcHeat(T, S, p0)
	if err != nil {
		tst.Errorf("SpcHeat failed: %v\n", err)
		return
	}
	chk.Float64(tst, "α = k/(ρ·cp)", 1e-12, a, k/(rho*cp))
	chk.Float64(tst, "α(25,35) nominal", 5e-9, a, 1.486e-7)
}

func Test_prandtl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prandtl01. Prandtl number consistency")

	T, S := 25.0, 35.0
	pr, err := Prandtl(T, S)
	if err != nil {
		tst.Errorf("Prandtl failed: %v\n", err)
		return
	}
	mu, err := Viscosity(T, S)
	if err != nil {
		tst.Errorf("Viscosity failed: %v\n", err)
		return
	}
	k, err := Conductivity(T, S)
	if err != nil {
		tst.Errorf("Conductivity failed: %v\n", err)
		return
	}
	p0, err := state.RefPressure(T, S)
	if err != nil {
		tst.Errorf("RefPressure failed: %v\n", err)
		return
	}
	cp, err := state.SpcHeat(T, S, p0)
	if err != nil {
		tst.Errorf("SpcHeat failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pr = cp·μ/k", 1e-12, pr, cp*mu/k)
	chk.Float64(tst, "Pr(25,35) nominal", 0.03, pr, 6.30)
}
