// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotViscosity plots dynamic viscosity versus temperature for a set of
// salinities [g/kg]
func PlotViscosity(dirout, fnkey string, salinities []float64, np int) {
	T := utl.LinSpace(0, 180, np)
	M := make([]float64, np)
	for _, S := range salinities {
		for i := 0; i < np; i++ {
			mu, err := Viscosity(T[i], S)
			if err != nil {
				chk.Panic("cannot compute viscosity: %v", err)
			}
			M[i] = mu * 1000.0
		}
		plt.Plot(T, M, &plt.A{L: io.Sf("S=%g", S)})
	}
	plt.Gll("$T$ [°C]", "$\\mu$ [g/(m·s)]", nil)
	plt.Save(dirout, fnkey)
}
