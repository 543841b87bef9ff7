// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import "github.com/cpmech/gosw/dom"

// BoilPtElev computes the boiling point elevation of seawater [K]
//  Input:
//   T -- temperature [°C]. 0 ≤ T ≤ 200
//   S -- salinity [g/kg]. 0 ≤ S ≤ 120
//  Note: internally the salinity enters in kg/kg
func BoilPtElev(T, S float64) (float64, error) {
	if err := dom.Range("temperature", T, 0, 200); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 120); err != nil {
		return 0, err
	}
	const (
		a1 = -4.584e-4
		a2 = 2.823e-1
		a3 = 17.95
		b1 = 1.536e-4
		b2 = 5.267e-2
		b3 = 6.56
	)
	s := S / 1000.0
	A := a1*T*T + a2*T + a3
	B := b1*T*T + b2*T + b3
	return A*s*s + B*s, nil
}
