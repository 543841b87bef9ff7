// Copyright 2016 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math"

	"github.com/cpmech/gosw/dom"
)

// specific entropy of seawater at the reference pressure; polynomial part
// after Sharqawy, Lienhard and Zubair (2010) with salinity in kg/kg, the
// logarithmic mixing term consistent with the Gibbs energy fit (salinity in
// g/kg)
const (
	sc1  = -4.231e2
	sc2  = 1.463e4
	sc3  = -9.880e4
	sc4  = 3.095e5
	sc5  = 2.562e1
	sc6  = -1.443e-1
	sc7  = 5.879e-4
	sc8  = -6.111e1
	sc9  = 8.041e1
	sc10 = 3.035e-1
	sc11 = -3.2436e-3
)

// pressure correction of the specific entropy. Salinity enters in g/kg.
const (
	sp1 = -6.2963e-2
	sp2 = -8.8239e-3
	sp3 = 3.1753e-5
	sp4 = 2.1117e-4
)

// Entropy computes the specific entropy of seawater [J/(kg·K)]
//  Input:
//   T -- temperature [°C]. 10 ≤ T ≤ 120
//   S -- salinity [g/kg]. 0 ≤ S ≤ 120
//   P -- absolute pressure [MPa]. Psat(T,S) ≤ P ≤ 12
//  Note: the logarithmic mixing term is skipped at S = 0
func Entropy(T, S, P float64) (float64, error) {
	if err := dom.Range("temperature", T, 10, 120); err != nil {
		return 0, err
	}
	if err := dom.Range("salinity", S, 0, 120); err != nil {
		return 0, err
	}
	if err := checkPressure(T, S, P); err != nil {
		return 0, err
	}
	p0, err := RefPressure(T, S)
	if err != nil {
		return 0, err
	}
	res := 0.1543 + 15.383*T - 2.996e-2*T*T + 8.193e-5*T*T*T - 1.370e-7*T*T*T*T
	if S > 0 {
		s := S / 1000.0
		res -= s * (sc1 + sc2*s + sc3*s*s + sc4*s*s*s + sc5*T + sc6*T*T + sc7*T*T*T +
			sc8*s*T + sc9*s*s*T + sc10*s*T*T)
		res += sc11 * S * math.Log(S)
	}
	return res + (P-p0)*(sp1+sp2*T+sp3*T*T+sp4*S), nil
}
