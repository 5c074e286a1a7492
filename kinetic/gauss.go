package kinetic

import (
	"math"
)

// MNUM is the highest velocity-moment order carried by the closed-form
// Maxwellian recursions.
const MNUM = 7

/*
	GaussMoments evaluates the moments of a Maxwellian analytically instead
	of by quadrature. Half-range moments MuL/MuR are seeded with the
	complementary error function and extended by the recursion

		M[i] = U*M[i-1] + 0.5*(i-1)*M[i-2]/lambda

	Mxi carries the 0..2 order internal-energy moments for inK degrees of
	freedom. Mv/Mw are full-range transverse moments, nil when the primitive
	state has no such component.
*/
func GaussMoments(prim []float64, inK float64) (Mu, MuL, MuR, Mv, Mw, Mxi []float64) {
	var (
		n   = len(prim)
		U   = prim[1]
		lam = prim[n-1]
	)
	MuL = make([]float64, MNUM)
	MuR = make([]float64, MNUM)
	Mu = make([]float64, MNUM)

	MuL[0] = 0.5 * math.Erfc(-math.Sqrt(lam)*U)
	MuL[1] = U*MuL[0] + 0.5*math.Exp(-lam*U*U)/math.Sqrt(math.Pi*lam)
	MuR[0] = 0.5 * math.Erfc(math.Sqrt(lam)*U)
	MuR[1] = U*MuR[0] - 0.5*math.Exp(-lam*U*U)/math.Sqrt(math.Pi*lam)
	for i := 2; i < MNUM; i++ {
		MuL[i] = U*MuL[i-1] + 0.5*float64(i-1)*MuL[i-2]/lam
		MuR[i] = U*MuR[i-1] + 0.5*float64(i-1)*MuR[i-2]/lam
	}
	for i := 0; i < MNUM; i++ {
		Mu[i] = MuL[i] + MuR[i]
	}

	if n >= 4 {
		Mv = fullRangeMoments(prim[2], lam)
	}
	if n >= 5 {
		Mw = fullRangeMoments(prim[3], lam)
	}

	Mxi = make([]float64, 3)
	Mxi[0] = 1.
	Mxi[1] = 0.5 * inK / lam
	Mxi[2] = 0.25 * (inK*inK + 2.*inK) / (lam * lam)
	return
}

func fullRangeMoments(V, lam float64) (M []float64) {
	M = make([]float64, MNUM)
	M[0] = 1.
	M[1] = V
	for i := 2; i < MNUM; i++ {
		M[i] = V*M[i-1] + 0.5*float64(i-1)*M[i-2]/lam
	}
	return
}
