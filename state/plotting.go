// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotDensity plots density versus temperature at atmospheric pressure for a
// set of salinities [g/kg]
func PlotDensity(dirout, fnkey string, salinities []float64, np int) {
	T := utl.LinSpace(0, 99, np)
	R := make([]float64, np)
	for _, S := range salinities {
		for i := 0; i < np; i++ {
			rho, err := Density(T[i], S, Patm)
			if err != nil {
				chk.Panic("cannot compute density: %v", err)
			}
			R[i] = rho
		}
		plt.Plot(T, R, &plt.A{L: io.Sf("S=%g", S)})
	}
	plt.Gll("$T$ [°C]", "$\\rho$ [kg/m³]", nil)
	plt.Save(dirout, fnkey)
}
