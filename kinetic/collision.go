package kinetic

import (
	"math"

	"github.com/notargets/gokinetic/DV"
)

// VHSCollisionTime is the variable-hard-sphere relaxation time,
// tau = 2 * muRef * lambda^(1-omega) / rho.
func VHSCollisionTime(prim []float64, muRef, omega float64) float64 {
	var (
		rho = prim[0]
		lam = prim[len(prim)-1]
	)
	return 2. * muRef * math.Pow(lam, 1.-omega) / rho
}

// RefVHSViscosity is the reference viscosity implied by the Knudsen number
// and the VHS constants.
func RefVHSViscosity(kn, alpha, omega float64) float64 {
	return 5. * (alpha + 1.) * (alpha + 2.) * math.Sqrt(math.Pi) /
		(4. * alpha * (5. - 2.*omega) * (7. - 2.*omega)) * kn
}

/*
	AAPCollisionTime gives per-species relaxation times for a binary
	hard-sphere mixture after Andries-Aoki-Perthame: the relaxation
	frequency of species s sums cross-collision frequencies weighted by the
	reduced thermal speeds of both partners.
*/
func AAPCollisionTime(prim [2][]float64, mass [2]float64, kn float64) (tau [2]float64) {
	var (
		pref = 4. * math.Sqrt2 / (3. * math.Sqrt(math.Pi)) / kn
	)
	for s := 0; s < 2; s++ {
		var nu float64
		lamS := prim[s][len(prim[s])-1]
		for r := 0; r < 2; r++ {
			lamR := prim[r][len(prim[r])-1]
			nDens := prim[r][0] / mass[r]
			vth := math.Sqrt(0.5 * (1./(lamS*mass[s]) + 1./(lamR*mass[r])))
			nu += pref * nDens * vth
		}
		tau[s] = 1. / nu
	}
	return
}

/*
	AAPMixturePrim is the interspecies-equilibrated primitive pair: both
	species share the momentum-conserving mixture velocity, and the kinetic
	energy released by the velocity exchange is returned to the internal
	energies so that total energy is conserved exactly. The temperature
	parameters relax toward the common mixture temperature.

	dof is the per-particle thermal degrees of freedom (D + K).
*/
func AAPMixturePrim(prim [2][]float64, mass [2]float64, dof float64) (mix [2][]float64) {
	var (
		n        = len(prim[0])
		nVel     = n - 2
		rho      = [2]float64{prim[0][0], prim[1][0]}
		rhoT     = rho[0] + rho[1]
		uMix     = make([]float64, nVel)
		keBefore [2]float64
		eInt     [2]float64
		nNum     [2]float64
	)
	for s := 0; s < 2; s++ {
		mix[s] = make([]float64, n)
		mix[s][0] = rho[s]
		nNum[s] = rho[s] / mass[s]
		lam := prim[s][n-1]
		eInt[s] = dof * rho[s] / (4. * lam)
		for d := 0; d < nVel; d++ {
			uMix[d] += rho[s] * prim[s][d+1] / rhoT
			keBefore[s] += 0.5 * rho[s] * prim[s][d+1] * prim[s][d+1]
		}
	}
	// Friction heating: kinetic energy lost to the common velocity goes to
	// internal energy in proportion to mass
	var keAfter [2]float64
	for s := 0; s < 2; s++ {
		for d := 0; d < nVel; d++ {
			mix[s][d+1] = uMix[d]
			keAfter[s] += 0.5 * rho[s] * uMix[d] * uMix[d]
		}
	}
	dKE := (keBefore[0] + keBefore[1]) - (keAfter[0] + keAfter[1])
	eTotal := eInt[0] + eInt[1] + dKE
	// Common temperature: internal energy splits in proportion to number
	// density
	nTot := nNum[0] + nNum[1]
	for s := 0; s < 2; s++ {
		eS := eTotal * nNum[s] / nTot
		mix[s][n-1] = dof * rho[s] / (4. * eS)
	}
	return
}

// RykovZr is Parker's temperature-dependent rotational collision number,
// with Tt the translational temperature and T0, Z0 the reference constants.
func RykovZr(Tt, T0, Z0 float64) float64 {
	zr := Z0 / (1. + math.Pow(math.Pi, 1.5)/2.*math.Sqrt(T0/Tt) +
		(math.Pi+0.25*math.Pi*math.Pi)*T0/Tt)
	// Parker's fit drops below one at low temperature, where the blend
	// coefficient (1 - 1/Zr) changes sign and the update diverges
	if zr < 1 {
		zr = 1
	}
	return zr
}

/*
	RykovCorrect builds the six Rykov relaxation targets: the elastic triple
	(Ht,Bt,Rt) at the translational temperature and the inelastic triple
	(Hr,Br,Rr) at the equilibrium temperature, each with its Shakhov-type
	translational heat-flux correction and the w0/w1-weighted rotational
	heat-flux terms. q is the (translational, rotational) heat flux pair.
*/
func RykovCorrect(g *DV.Grid, prim, q []float64, gas *Gas) (el, inel *PDFSet) {
	var (
		rho      = prim[0]
		lam, lar = prim[2], prim[3]
		lat      = RykovLambdaT(prim, gas.Kr)
		qt, qr   = q[0], q[1]
	)
	build := func(lamT, lamR, w float64) (p *PDFSet) {
		var (
			pref = 0.8 * (1. - gas.Sigma) * lamT * lamT / rho
		)
		p = &PDFSet{Model: Rykov3F}
		p.H = Maxwellian(g, []float64{rho, prim[1], lamT})
		p.B = p.H.Copy().Scale(gas.K / (2. * lamT))
		p.R = p.H.Copy().Scale(gas.Kr / (4. * lamR))
		h, b, r := p.H.DataP, p.B.DataP, p.R.DataP
		for n := range h {
			c := g.U[n] - prim[1]
			cSq := c * c
			ht := pref * c * qt * (2.*lamT*cSq + gas.K - 5.)
			bt := pref * c * qt * (2.*lamT*cSq + gas.K - 3.)
			rt := 2. * w * lamT * c * qr / rho
			r[n] += r[n] * (ht + rt)
			h[n] += h[n] * ht
			b[n] += b[n] * bt
		}
		return
	}
	el = build(lat, lar, gas.W0)
	inel = build(lam, lam, gas.W1)
	return
}
