package sod_shock_tube

import (
	"math"

	"github.com/notargets/gokinetic/utils"
)

/*
	Analytic solution of the Sod shock tube on x in [0,1] with the
	discontinuity at x0 = 0.5 and the classic states

		left:  rho = 1,     P = 1,   u = 0
		right: rho = 0.125, P = 0.1, u = 0

	normalized so that P_l = rho_l = 1. gamma is a parameter so the solution
	can serve monatomic and diatomic runs alike. Valid while all five waves
	remain inside the domain.
*/

const (
	x0   = 0.5
	rhoR = 0.125
	pR   = 0.1
)

// DensityAt samples the exact density profile at time t for the given
// specific heat ratio.
func DensityAt(x []float64, t, gamma float64) (Rho []float64) {
	var (
		mu2     = (gamma - 1.) / (gamma + 1.)
		cL      = math.Sqrt(gamma)
		pPost   = postPressure(gamma)
		vPost   = 2. * (math.Sqrt(gamma) / (gamma - 1.)) * (1. - math.Pow(pPost, (gamma-1.)/(2.*gamma)))
		rhoPost = rhoR * ((pPost / pR) + mu2) / (1. + mu2*(pPost/pR))
		vShock  = vPost * (rhoPost / rhoR) / ((rhoPost / rhoR) - 1.)
		rhoMid  = math.Pow(pPost, 1./gamma)
		c2      = cL - 0.5*(gamma-1.)*vPost
		x1      = x0 - cL*t
		x2      = x0 + t*(vPost-c2)
		x3      = x0 + vPost*t
		x4      = x0 + vShock*t
	)
	Rho = make([]float64, len(x))
	for i, xi := range x {
		switch {
		case xi < x1:
			Rho[i] = 1.
		case xi < x2:
			// Rarefaction fan
			u := 2. / (gamma + 1.) * (cL + (xi-x0)/t)
			c := cL - 0.5*(gamma-1.)*u
			Rho[i] = math.Pow(c/cL, 2./(gamma-1.))
		case xi < x3:
			Rho[i] = rhoMid
		case xi < x4:
			Rho[i] = rhoPost
		default:
			Rho[i] = rhoR
		}
	}
	return
}

// WaveSpeeds returns the rarefaction head, contact and shock positions at
// time t, useful for bounding comparisons away from the discontinuities.
func WaveSpeeds(t, gamma float64) (xHead, xContact, xShock float64) {
	var (
		mu2     = (gamma - 1.) / (gamma + 1.)
		cL      = math.Sqrt(gamma)
		pPost   = postPressure(gamma)
		vPost   = 2. * (math.Sqrt(gamma) / (gamma - 1.)) * (1. - math.Pow(pPost, (gamma-1.)/(2.*gamma)))
		rhoPost = rhoR * ((pPost / pR) + mu2) / (1. + mu2*(pPost/pR))
		vShock  = vPost * (rhoPost / rhoR) / ((rhoPost / rhoR) - 1.)
	)
	xHead = x0 - cL*t
	xContact = x0 + vPost*t
	xShock = x0 + vShock*t
	return
}

// postPressure solves the Rankine-Hugoniot / rarefaction matching condition
// for the pressure between the contact and the shock by bisection. The
// residual is negative at pR and positive at pL, so the bracket is fixed.
func postPressure(gamma float64) float64 {
	f := func(p float64) float64 {
		var (
			mu2 = (gamma - 1.) / (gamma + 1.)
		)
		return (p-pR)*math.Sqrt(utils.POW(1.-mu2, 2)/(rhoR*(p+mu2*pR))) -
			2.*(math.Sqrt(gamma)/(gamma-1.))*(1.-math.Pow(p, (gamma-1.)/(2.*gamma)))
	}
	lo, hi := pR, 1.
	for i := 0; i < 100; i++ {
		p := 0.5 * (lo + hi)
		if f(p) > 0 {
			hi = p
		} else {
			lo = p
		}
	}
	return 0.5 * (lo + hi)
}
