// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotPsat plots vapour pressure curves versus temperature for a set of
// salinities [g/kg]
func PlotPsat(dirout, fnkey string, salinities []float64, np int) {
	T := utl.LinSpace(0, 180, np)
	P := make([]float64, np)
	for _, S := range salinities {
		for i := 0; i < np; i++ {
			p, err := Psat(T[i], S)
			if err != nil {
				chk.Panic("cannot compute Psat: %v", err)
			}
			P[i] = p / 1e6
		}
		plt.Plot(T, P, &plt.A{L: io.Sf("S=%g", S)})
	}
	plt.Gll("$T$ [°C]", "$p_{sat}$ [MPa]", nil)
	plt.Save(dirout, fnkey)
}
