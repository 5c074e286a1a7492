package DV

import (
	"math"
)

/*
	A Grid is the discretized velocity space shared by every cell of the
	physical mesh: node coordinates, cell widths and quadrature weights over
	1, 2 or 3 velocity dimensions. It is built once at setup and never
	mutated afterward.

	The flattened storage convention matches the row-major layout of
	utils.Matrix: a distribution function over a 2D grid is an Nu x Nv
	matrix, so the flat index of node (i,j,k) is (i*Nv+j)*Nw + k.
*/
type Grid struct {
	Dim        int
	Nu, Nv, Nw int       // Nodes per axis, 1 for unused axes
	U, V, W    []float64 // Node coordinates, flattened, length Total()
	Du, Dv, Dw []float64 // Cell widths, flattened
	Weights    []float64 // Product quadrature weights, flattened
	Umin, Umax float64
	Vmin, Vmax float64
	Wmin, Wmax float64
}

func (g *Grid) Total() int { return g.Nu * g.Nv * g.Nw }

func NewGrid1D(umin, umax float64, nu, ghost int, rule QuadRule) (g *Grid, err error) {
	uc, uw, uq, err := Axis(umin, umax, nu, ghost, rule)
	if err != nil {
		return
	}
	n := len(uc)
	g = &Grid{
		Dim: 1, Nu: n, Nv: 1, Nw: 1,
		Umin: umin, Umax: umax,
		U: uc, Du: uw, Weights: uq,
	}
	g.V = make([]float64, n)
	g.W = make([]float64, n)
	g.Dv = make([]float64, n)
	g.Dw = make([]float64, n)
	return
}

func NewGrid2D(umin, umax, vmin, vmax float64, nu, nv, ghost int, rule QuadRule) (g *Grid, err error) {
	uc, uw, uq, err := Axis(umin, umax, nu, ghost, rule)
	if err != nil {
		return
	}
	vc, vw, vq, err := Axis(vmin, vmax, nv, ghost, rule)
	if err != nil {
		return
	}
	var (
		nU, nV = len(uc), len(vc)
		nTot   = nU * nV
	)
	g = &Grid{
		Dim: 2, Nu: nU, Nv: nV, Nw: 1,
		Umin: umin, Umax: umax, Vmin: vmin, Vmax: vmax,
		U: make([]float64, nTot), V: make([]float64, nTot), W: make([]float64, nTot),
		Du: make([]float64, nTot), Dv: make([]float64, nTot), Dw: make([]float64, nTot),
		Weights: make([]float64, nTot),
	}
	for i := 0; i < nU; i++ {
		for j := 0; j < nV; j++ {
			ind := i*nV + j
			g.U[ind], g.V[ind] = uc[i], vc[j]
			g.Du[ind], g.Dv[ind] = uw[i], vw[j]
			g.Weights[ind] = uq[i] * vq[j]
		}
	}
	return
}

func NewGrid3D(umin, umax, vmin, vmax, wmin, wmax float64, nu, nv, nw, ghost int, rule QuadRule) (g *Grid, err error) {
	uc, uw, uq, err := Axis(umin, umax, nu, ghost, rule)
	if err != nil {
		return
	}
	vc, vw, vq, err := Axis(vmin, vmax, nv, ghost, rule)
	if err != nil {
		return
	}
	wc, ww, wq, err := Axis(wmin, wmax, nw, ghost, rule)
	if err != nil {
		return
	}
	var (
		nU, nV, nW = len(uc), len(vc), len(wc)
		nTot       = nU * nV * nW
	)
	g = &Grid{
		Dim: 3, Nu: nU, Nv: nV, Nw: nW,
		Umin: umin, Umax: umax, Vmin: vmin, Vmax: vmax, Wmin: wmin, Wmax: wmax,
		U: make([]float64, nTot), V: make([]float64, nTot), W: make([]float64, nTot),
		Du: make([]float64, nTot), Dv: make([]float64, nTot), Dw: make([]float64, nTot),
		Weights: make([]float64, nTot),
	}
	for i := 0; i < nU; i++ {
		for j := 0; j < nV; j++ {
			for k := 0; k < nW; k++ {
				ind := (i*nV+j)*nW + k
				g.U[ind], g.V[ind], g.W[ind] = uc[i], vc[j], wc[k]
				g.Du[ind], g.Dv[ind], g.Dw[ind] = uw[i], vw[j], ww[k]
				g.Weights[ind] = uq[i] * vq[j] * wq[k]
			}
		}
	}
	return
}

// MixtureGrid holds one velocity grid per species of a binary mixture. The
// species grids cover the same nondimensional extent scaled by the square
// root of the mass ratio, so that both resolve their own thermal speeds.
type MixtureGrid struct {
	Species [2]*Grid
}

func NewMixtureGrid1D(umin, umax float64, nu, ghost int, rule QuadRule,
	mi, me float64) (mg *MixtureGrid, err error) {
	var (
		scale = [2]float64{1, math.Sqrt(mi / me)} // thermal speed scales with 1/sqrt(m)
	)
	mg = &MixtureGrid{}
	for s := 0; s < 2; s++ {
		mg.Species[s], err = NewGrid1D(umin*scale[s], umax*scale[s], nu, ghost, rule)
		if err != nil {
			return
		}
	}
	return
}
