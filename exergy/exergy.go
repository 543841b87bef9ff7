// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exergy implements the specific flow exergy of seawater relative to
// a dead state
package exergy

import (
	"github.com/cpmech/gosw/dom"
	"github.com/cpmech/gosw/solution"
	"github.com/cpmech/gosw/state"
)

// DeadState holds the environment state against which the available work
// potential is measured
type DeadState struct {
	T0 float64 // dead-state temperature [°C]
	S0 float64 // dead-state salinity [g/kg]
	P0 float64 // dead-state pressure [MPa]
}

// Init initialises the dead state with the standard environment
func (o *DeadState) Init() {
	o.T0 = 25       // [°C]
	o.S0 = 35       // [g/kg]
	o.P0 = 0.101325 // [MPa]
}

// FlowExergy computes the specific flow exergy of seawater [J/kg]
//  Input:
//   T   -- temperature [°C]
//   S   -- salinity [g/kg]
//   P   -- absolute pressure [MPa]
//   dst -- dead state; nil means the standard environment (25, 35, 0.101325)
//  Note:
//   the thermomechanical part compares the state with the restricted dead
//   state (T0, S, P0); the chemical part compares the restricted dead state
//   with the total dead state (T0, S0, P0) through the chemical potentials
func FlowExergy(T, S, P float64, dst *DeadState) (float64, error) {
	var d DeadState
	if dst == nil {
		d.Init()
	} else {
		d = *dst
	}
	if err := dom.Min("dead state salinity", d.S0, 0.1); err != nil {
		return 0, err
	}

	// actual state
	h, err := state.Enthalpy(T, S, P)
	if err != nil {
		return 0, err
	}
	s, err := state.Entropy(T, S, P)
	if err != nil {
		return 0, err
	}

	// restricted dead state: dead-state temperature and pressure, actual salinity
	hr, err := state.Enthalpy(d.T0, S, d.P0)
	if err != nil {
		return 0, err
	}
	sr, err := state.Entropy(d.T0, S, d.P0)
	if err != nil {
		return 0, err
	}

	// chemical potentials at the restricted and total dead states
	muWr, err := solution.ChemPotW(d.T0, S, d.P0)
	if err != nil {
		return 0, err
	}
	muW0, err := solution.ChemPotW(d.T0, d.S0, d.P0)
	if err != nil {
		return 0, err
	}
	muS0, err := solution.ChemPotS(d.T0, d.S0, d.P0)
	if err != nil {
		return 0, err
	}
	var muSr float64
	if S > 0 {
		muSr, err = solution.ChemPotS(d.T0, S, d.P0)
		if err != nil {
			return 0, err
		}
	}

	T0K := d.T0 + 273.15
	wW := (1000.0 - S) / 1000.0
	wS := S / 1000.0
	res := (h - hr) - T0K*(s-sr) + wW*(muWr-muW0)
	if S > 0 {
		res += wS * (muSr - muS0)
	}
	return res, nil
}
