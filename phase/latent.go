// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import "github.com/cpmech/gosw/dom"

// LatentHeat computes the latent heat of vaporisation of seawater [J/kg]
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 200
//   S -- salinity [g/kg]. 0 ≤ S ≤ 240
//  Reference: Sharqawy, Lienhard and Zubair (2010)
func LatentHeat(T, S float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 200); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 240); err != nil {
		return 0, err
	}
	const (
		a1 = 2.501e6
		a2 = -2.369e3
		a3 = 2.678e-1
		a4 = -8.103e-3
		a5 = -2.079e-5
	)
	hfgW := a1 + a2*T + a3*T*T + a4*T*T*T + a5*T*T*T*T
	return hfgW * (1.0 - S/1000.0), nil
}
