package kinetic

import (
	"github.com/notargets/gokinetic/DV"
	"github.com/notargets/gokinetic/utils"
)

// DiscreteMoment is the fundamental quadrature-sum primitive
// sum(weights * u^n * f); every higher moment is built from it.
func DiscreteMoment(f, u, w []float64, n int) (m float64) {
	for i, fv := range f {
		m += w[i] * utils.POW(u[i], n) * fv
	}
	return
}

// PeculiarMoment is the same sum taken over the peculiar velocity u-U.
func PeculiarMoment(f, u, w []float64, U float64, n int) (m float64) {
	for i, fv := range f {
		m += w[i] * utils.POW(u[i]-U, n) * fv
	}
	return
}

/*
	ConservedMoments produces the conserved vector (mass, momentum
	components, energy) from a distribution set on a velocity grid. The
	energy term is always the 0.5-weighted second moment plus the zeroth
	moment of any internal-energy pdf. The result is a fresh buffer; inputs
	are never aliased.
*/
func ConservedMoments(g *DV.Grid, F *PDFSet) (w []float64) {
	var (
		wq = g.Weights
	)
	switch F.Model {
	case M1F:
		f := F.H.DataP
		switch g.Dim {
		case 1:
			w = make([]float64, 3)
			w[0] = DiscreteMoment(f, g.U, wq, 0)
			w[1] = DiscreteMoment(f, g.U, wq, 1)
			w[2] = 0.5 * DiscreteMoment(f, g.U, wq, 2)
		case 2:
			w = make([]float64, 4)
			w[0] = DiscreteMoment(f, g.U, wq, 0)
			w[1] = DiscreteMoment(f, g.U, wq, 1)
			w[2] = DiscreteMoment(f, g.V, wq, 1)
			w[3] = 0.5 * (DiscreteMoment(f, g.U, wq, 2) + DiscreteMoment(f, g.V, wq, 2))
		case 3:
			w = make([]float64, 5)
			w[0] = DiscreteMoment(f, g.U, wq, 0)
			w[1] = DiscreteMoment(f, g.U, wq, 1)
			w[2] = DiscreteMoment(f, g.V, wq, 1)
			w[3] = DiscreteMoment(f, g.W, wq, 1)
			w[4] = 0.5 * (DiscreteMoment(f, g.U, wq, 2) +
				DiscreteMoment(f, g.V, wq, 2) + DiscreteMoment(f, g.W, wq, 2))
		}
	case R2F:
		h, b := F.H.DataP, F.B.DataP
		switch g.Dim {
		case 1:
			w = make([]float64, 3)
			w[0] = DiscreteMoment(h, g.U, wq, 0)
			w[1] = DiscreteMoment(h, g.U, wq, 1)
			w[2] = 0.5 * (DiscreteMoment(h, g.U, wq, 2) + DiscreteMoment(b, g.U, wq, 0))
		case 2:
			w = make([]float64, 4)
			w[0] = DiscreteMoment(h, g.U, wq, 0)
			w[1] = DiscreteMoment(h, g.U, wq, 1)
			w[2] = DiscreteMoment(h, g.V, wq, 1)
			w[3] = 0.5 * (DiscreteMoment(h, g.U, wq, 2) + DiscreteMoment(h, g.V, wq, 2) +
				DiscreteMoment(b, g.U, wq, 0))
		case 3:
			w = make([]float64, 5)
			w[0] = DiscreteMoment(h, g.U, wq, 0)
			w[1] = DiscreteMoment(h, g.U, wq, 1)
			w[2] = DiscreteMoment(h, g.V, wq, 1)
			w[3] = DiscreteMoment(h, g.W, wq, 1)
			w[4] = 0.5 * (DiscreteMoment(h, g.U, wq, 2) + DiscreteMoment(h, g.V, wq, 2) +
				DiscreteMoment(h, g.W, wq, 2) + DiscreteMoment(b, g.U, wq, 0))
		}
	case Rykov3F:
		h, b, r := F.H.DataP, F.B.DataP, F.R.DataP
		w = make([]float64, 4)
		w[0] = DiscreteMoment(h, g.U, wq, 0)
		w[1] = DiscreteMoment(h, g.U, wq, 1)
		w[3] = DiscreteMoment(r, g.U, wq, 0)
		w[2] = 0.5*(DiscreteMoment(h, g.U, wq, 2)+DiscreteMoment(b, g.U, wq, 0)) + w[3]
	case Plasma4F:
		h0, h1, h2, h3 := F.H0.DataP, F.H1.DataP, F.H2.DataP, F.H3.DataP
		w = make([]float64, 5)
		w[0] = DiscreteMoment(h0, g.U, wq, 0)
		w[1] = DiscreteMoment(h0, g.U, wq, 1)
		w[2] = DiscreteMoment(h1, g.U, wq, 0)
		w[3] = DiscreteMoment(h2, g.U, wq, 0)
		w[4] = 0.5 * (DiscreteMoment(h0, g.U, wq, 2) + DiscreteMoment(h3, g.U, wq, 0))
	}
	return
}

// PrimFromPDF recovers the primitive state directly from the distribution
// set, dispatching on the model tag.
func PrimFromPDF(g *DV.Grid, F *PDFSet, gas *Gas) (prim []float64) {
	w := ConservedMoments(g, F)
	switch F.Model {
	case Rykov3F:
		prim = RykovConservedToPrim(w, gas.Kr)
	default:
		prim = ConservedToPrim(w, gas.Gamma)
	}
	return
}

// Pressure is the closed-form scalar pressure of a primitive state.
func Pressure(prim []float64) float64 {
	return 0.5 * prim[0] / prim[len(prim)-1]
}

// Stress is the DxD peculiar-velocity second-moment tensor of the primary
// pdf.
func Stress(g *DV.Grid, F *PDFSet, prim []float64) (P utils.Matrix) {
	var (
		wq   = g.Weights
		f    = primaryPDF(F)
		D    = g.Dim
		c    = [3][]float64{g.U, g.V, g.W}
		bulk = [3]float64{}
	)
	for d := 1; d < len(prim)-1; d++ {
		bulk[d-1] = prim[d]
	}
	P = utils.NewMatrix(D, D)
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			var sum float64
			for n, fv := range f {
				sum += wq[n] * (c[i][n] - bulk[i]) * (c[j][n] - bulk[j]) * fv
			}
			P.Set(i, j, sum)
		}
	}
	return
}

/*
	HeatFlux computes the peculiar third-moment heat flux vector. For the
	Rykov model the result is the pair (translational, rotational); for all
	other models it has one component per velocity dimension.
*/
func HeatFlux(g *DV.Grid, F *PDFSet, prim []float64) (q []float64) {
	var (
		wq = g.Weights
	)
	switch F.Model {
	case M1F:
		f := F.H.DataP
		q = make([]float64, g.Dim)
		cSq := peculiarSq(g, prim)
		cAx := [3][]float64{g.U, g.V, g.W}
		for d := 0; d < g.Dim; d++ {
			U := prim[d+1]
			var sum float64
			for n, fv := range f {
				sum += wq[n] * (cAx[d][n] - U) * cSq[n] * fv
			}
			q[d] = 0.5 * sum
		}
	case R2F:
		h, b := F.H.DataP, F.B.DataP
		q = make([]float64, g.Dim)
		cSq := peculiarSq(g, prim)
		cAx := [3][]float64{g.U, g.V, g.W}
		for d := 0; d < g.Dim; d++ {
			U := prim[d+1]
			var sum float64
			for n := range h {
				sum += wq[n] * (cAx[d][n] - U) * (cSq[n]*h[n] + b[n])
			}
			q[d] = 0.5 * sum
		}
	case Rykov3F:
		h, b, r := F.H.DataP, F.B.DataP, F.R.DataP
		U := prim[1]
		q = make([]float64, 2)
		var qt, qr float64
		for n := range h {
			c := g.U[n] - U
			qt += wq[n] * c * (c*c*h[n] + b[n])
			qr += wq[n] * c * r[n]
		}
		q[0] = 0.5 * qt
		q[1] = qr
	case Plasma4F:
		h0, h3 := F.H0.DataP, F.H3.DataP
		U := prim[1]
		q = make([]float64, 1)
		var sum float64
		for n := range h0 {
			c := g.U[n] - U
			sum += wq[n] * c * (c*c*h0[n] + h3[n])
		}
		q[0] = 0.5 * sum
	}
	return
}

func primaryPDF(F *PDFSet) []float64 {
	if F.Model == Plasma4F {
		return F.H0.DataP
	}
	return F.H.DataP
}

// peculiarSq returns |u - U|^2 at every grid node.
func peculiarSq(g *DV.Grid, prim []float64) (cSq []float64) {
	cSq = make([]float64, g.Total())
	var (
		U, V, W float64
	)
	switch g.Dim {
	case 1:
		U = prim[1]
	case 2:
		U, V = prim[1], prim[2]
	case 3:
		U, V, W = prim[1], prim[2], prim[3]
	}
	for n := range cSq {
		cu := g.U[n] - U
		cSq[n] = cu * cu
		if g.Dim > 1 {
			cv := g.V[n] - V
			cSq[n] += cv * cv
		}
		if g.Dim > 2 {
			cw := g.W[n] - W
			cSq[n] += cw * cw
		}
	}
	return
}
