// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosw/exergy"
	"github.com/cpmech/gosw/phase"
	"github.com/cpmech/gosw/solution"
	"github.com/cpmech/gosw/state"
	"github.com/cpmech/gosw/transport"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	T := io.ArgToFloat(0, 25.0)
	S := io.ArgToFloat(1, 35.0)
	P := io.ArgToFloat(2, state.Patm)

	// message
	io.PfWhite("\nGosw -- Go Seawater Properties\n")
	io.Pf("Copyright 2016 The Gosw Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n")

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"temperature [C]", "T", T,
		"salinity [g/kg]", "S", S,
		"pressure [MPa]", "P", P,
	))

	// property table
	psat, err := phase.Psat(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	hfg, err := phase.LatentHeat(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	bpe, err := phase.BoilPtElev(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	sigma, err := phase.SfcTension(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	rho, err := state.Density(T, S, P)
	if err != nil {
		chk.Panic("%v", err)
	}
	kT, err := state.IsothComp(T, S, P)
	if err != nil {
		chk.Panic("%v", err)
	}
	beta, err := state.IsobExp(T, S, P)
	if err != nil {
		chk.Panic("%v", err)
	}
	h, err := state.Enthalpy(T, S, P)
	if err != nil {
		chk.Panic("%v", err)
	}
	u, err := state.IntEnergy(T, S, P)
	if err != nil {
		chk.Panic("%v", err)
	}
	s, err := state.Entropy(T, S, P)
	if err != nil {
		chk.Panic("%v", err)
	}
	g, err := state.Gibbs(T, S, P)
	if err != nil {
		chk.Panic("%v", err)
	}
	cp, err := state.SpcHeat(T, S, P)
	if err != nil {
		chk.Panic("%v", err)
	}
	mu, err := transport.Viscosity(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	nu, err := transport.Kviscosity(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	k, err := transport.Conductivity(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	alpha, err := transport.Diffusivity(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	pr, err := transport.Prandtl(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	phi, err := solution.OsmCoeff(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	pi, err := solution.OsmPress(T, S)
	if err != nil {
		chk.Panic("%v", err)
	}
	ef, err := exergy.FlowExergy(T, S, P, nil)
	if err != nil {
		chk.Panic("%v", err)
	}

	io.Pf("%v\n", io.ArgsTable("SEAWATER PROPERTIES",
		"vapour pressure [N/m2]", "psat", psat,
		"latent heat [J/kg]", "hfg", hfg,
		"boiling point elevation [K]", "bpe", bpe,
		"surface tension [mN/m]", "sigma", sigma,
		"density [kg/m3]", "rho", rho,
		"isothermal compressibility [1/MPa]", "kT", kT,
		"isobaric expansivity [1/K]", "beta", beta,
		"specific enthalpy [J/kg]", "h", h,
		"specific internal energy [J/kg]", "u", u,
		"specific entropy [J/(kg.K)]", "s", s,
		"specific Gibbs energy [J/kg]", "g", g,
		"specific heat capacity [J/(kg.K)]", "cp", cp,
		"dynamic viscosity [kg/(m.s)]", "mu", mu,
		"kinematic viscosity [m2/s]", "nu", nu,
		"thermal conductivity [W/(m.K)]", "k", k,
		"thermal diffusivity [m2/s]", "alpha", alpha,
		"Prandtl number [-]", "pr", pr,
		"osmotic coefficient [-]", "phi", phi,
		"osmotic pressure [MPa]", "pi", pi,
		"specific flow exergy [J/kg]", "ef", ef,
	))
}
