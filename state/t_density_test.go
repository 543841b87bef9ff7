// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosw/phase"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_refp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refp01. reference pressure resolver")

	p0, err := RefPressure(25, 35)
	if err != nil {
		tst.Errorf("RefPressure failed: %v\n", err)
		return
	}
	chk.Float64(tst, "P0 below 100°C", 1e-15, p0, 0.101325)

	// above 100°C the reference is the saturation pressure in MPa
	p0, err = RefPressure(120, 35)
	if err != nil {
		tst.Errorf("RefPressure failed: %v\n", err)
		return
	}
	psat, err := phase.Psat(120, 35)
	if err != nil {
		tst.Errorf("Psat failed: %v\n", err)
		return
	}
	chk.Float64(tst, "P0 above 100°C", 1e-15, p0, psat/1e6)
}

func Test_dens01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dens01. density reference values")

	rho, err := Density(25, 0, Patm)
	if err != nil {
		tst.Errorf("Density failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rho(25,0,Patm)", 1e-3, rho, 996.8923)

	rho, err = Density(25, 35, 0.1)
	if err != nil {
		tst.Errorf("Density failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rho(25,35,0.1)", 1e-3, rho, 1023.56098)
	chk.Float64(tst, "rho(25,35,0.1) nominal", 0.5, rho, 1023.6)

	// pressure packs the liquid
	rhoHi, err := Density(25, 35, 12)
	if err != nil {
		tst.Errorf("Density failed: %v\n", err)
		return
	}
	if rhoHi <= rho {
		tst.Errorf("density must increase with pressure: %g ≤ %g\n", rhoHi, rho)
		return
	}

	// round trip with specific volume
	v, err := Volume(25, 35, 0.1)
	if err != nil {
		tst.Errorf("Volume failed: %v\n", err)
		return
	}
	chk.Float64(tst, "v·rho", 1e-15, v*rho, 1.0)

	if chk.Verbose {
		PlotDensity("/tmp/gosw", "fig_density", []float64{0, 35, 120}, 41)
	}
}

func Test_dens02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dens02. density validity bounds")

	if _, err := Density(0, 0, 0.101325); err != nil {
		tst.Errorf("lower corner must be accepted: %v\n", err)
		return
	}
	if _, err := Density(180, 150, 12); err != nil {
		tst.Errorf("upper corner must be accepted: %v\n", err)
		return
	}
	if _, err := Density(-0.001, 35, 0.101325); err == nil {
		tst.Errorf("temperature below range must fail\n")
		return
	}
	if _, err := Density(25, 150.001, 0.101325); err == nil {
		tst.Errorf("salinity above range must fail\n")
		return
	}
	if _, err := Density(25, 35, 12.001); err == nil {
		tst.Errorf("pressure above range must fail\n")
		return
	}

	// the lower pressure bound is the saturation pressure (≈0.0031 MPa here)
	if _, err := Density(25, 35, 0.003); err == nil {
		tst.Errorf("pressure below saturation must fail\n")
		return
	}
	if _, err := Density(25, 35, 0.0032); err != nil {
		tst.Errorf("pressure just above saturation must be accepted: %v\n", err)
		return
	}
}

func Test_dens03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dens03. expansivity against numerical ∂ρ/∂T")

	// points kept below 100°C so that P0 is constant in T
	points := [][]float64{
		{20, 35, 0.5},
		{60, 10, 2.0},
		{90, 120, 3.0},
	}
	for _, pt := range points {
		T, S, P := pt[0], pt[1], pt[2]
		beta, err := IsobExp(T, S, P)
		if err != nil {
			tst.Errorf("IsobExp failed: %v\n", err)
			return
		}
		rho, err := Density(T, S, P)
		if err != nil {
			tst.Errorf("Density failed: %v\n", err)
			return
		}
		dana := -beta * rho
		chk.DerivScaSca(tst, io.Sf("∂ρ/∂T at T=%g", T), 1e-6, dana, T, 1e-3, chk.Verbose, func(x float64) float64 {
			r, e := Density(x, S, P)
			if e != nil {
				tst.Errorf("Density failed: %v\n", e)
			}
			return r
		})
	}
}

func Test_dens04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dens04. compressibility against numerical ∂ρ/∂P")

	points := [][]float64{
		{25, 35, 2.0},
		{80, 60, 6.0},
		{120, 40, 9.0},
	}
	for _, pt := range points {
		T, S, P := pt[0], pt[1], pt[2]
		kt, err := IsothComp(T, S, P)
		if err != nil {
			tst.Errorf("IsothComp failed: %v\n", err)
			return
		}
		rho, err := Density(T, S, P)
		if err != nil {
			tst.Errorf("Density failed: %v\n", err)
			return
		}
		dana := rho * kt
		chk.DerivScaSca(tst, io.Sf("∂ρ/∂P at T=%g", T), 1e-6, dana, P, 1e-3, chk.Verbose, func(x float64) float64 {
			r, e := Density(T, S, x)
			if e != nil {
				tst.Errorf("Density failed: %v\n", e)
			}
			return r
		})
	}
}
