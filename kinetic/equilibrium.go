package kinetic

import (
	"math"

	"github.com/notargets/gokinetic/DV"
	"github.com/notargets/gokinetic/utils"
)

/*
	Maxwellian evaluates the local equilibrium density at every velocity
	node:

		rho * (lambda/pi)^(D/2) * exp(-lambda * |u - U|^2)

	vectorized over the grid; D is the velocity dimensionality.
*/
func Maxwellian(g *DV.Grid, prim []float64) (M utils.Matrix) {
	var (
		rho  = prim[0]
		lam  = prim[len(prim)-1]
		pref = rho * math.Pow(lam/math.Pi, 0.5*float64(g.Dim))
		cSq  = peculiarSq(g, prim)
	)
	M = utils.NewMatrix(g.Nu, g.Nv*g.Nw)
	for n := range cSq {
		M.DataP[n] = pref * math.Exp(-lam*cSq[n])
	}
	return
}

/*
	EquilibriumSet builds the per-model relaxation base target at a
	primitive state: the Maxwellian itself for 1F, the reduced (H,B) pair
	for 2F, the (H,B,R) triple for Rykov, and the (H0..H3) quadruple for the
	plasma closure. Shakhov/Rykov heat-flux corrections are applied on top
	by the caller.
*/
func EquilibriumSet(g *DV.Grid, model Model, prim []float64, gas *Gas) (eq *PDFSet) {
	eq = &PDFSet{Model: model}
	switch model {
	case M1F:
		eq.H = Maxwellian(g, prim)
	case R2F:
		eq.H = Maxwellian(g, prim)
		eq.B = eq.H.Copy().Scale(gas.K / (2. * prim[len(prim)-1]))
	case Rykov3F:
		var (
			lam, lar = prim[2], prim[3]
		)
		eq.H = Maxwellian(g, []float64{prim[0], prim[1], lam})
		eq.B = eq.H.Copy().Scale(gas.K / (2. * lam))
		eq.R = eq.H.Copy().Scale(gas.Kr / (4. * lar))
	case Plasma4F:
		var (
			lam  = prim[4]
			V, W = prim[2], prim[3]
		)
		eq.H0 = Maxwellian(g, []float64{prim[0], prim[1], lam})
		eq.H1 = eq.H0.Copy().Scale(V)
		eq.H2 = eq.H0.Copy().Scale(W)
		eq.H3 = eq.H0.Copy().Scale(V*V + W*W + 1./lam)
	}
	return
}

/*
	ShakhovCorrect adds the heat-flux correction that restores the correct
	Prandtl number under BGK relaxation (plain BGK gives Pr=1). The
	correction is proportional to

		0.8 * (1-Pr) * lambda^2/rho * (c . q) * (2*lambda*c^2 + K - 5)

	with the K-shifted constant (K-3 in place of K-5) for the folded
	internal-energy pdf. It mutates the target set in place.
*/
func ShakhovCorrect(g *DV.Grid, eq *PDFSet, prim, q []float64, gas *Gas) {
	var (
		rho  = prim[0]
		lam  = prim[len(prim)-1]
		pref = 0.8 * (1. - gas.Pr) * lam * lam / rho
		cSq  = peculiarSq(g, prim)
		cAx  = [3][]float64{g.U, g.V, g.W}
		K    float64
	)
	if eq.Model == R2F {
		K = gas.K
	}
	cq := make([]float64, g.Total())
	for d := 0; d < g.Dim; d++ {
		U := prim[d+1]
		for n := range cq {
			cq[n] += (cAx[d][n] - U) * q[d]
		}
	}
	h := eq.H.DataP
	for n := range h {
		h[n] += pref * cq[n] * (2.*lam*cSq[n] + K - 5.) * h[n]
	}
	if eq.Model == R2F {
		b := eq.B.DataP
		for n := range b {
			b[n] += pref * cq[n] * (2.*lam*cSq[n] + K - 3.) * b[n]
		}
	}
}
