package kinetic

import (
	"github.com/notargets/gokinetic/DV"
)

/*
	Cell owns the state of one physical mesh cell: conserved and primitive
	vectors, the distribution set, and the cell measure (length, area or
	volume). Plasma variants additionally carry electromagnetic field state
	and a per-species Lorentz force. Cells are allocated at mesh setup and
	updated in place every step; they are never resized.

	W, Prim and F are indexed by species; single-species runs use length 1.
*/
type Cell struct {
	W, Prim [][]float64
	F       []*PDFSet
	Measure float64
	// Electromagnetic state, plasma variants only
	E, B     [3]float64
	Phi, Psi float64
	Lorentz  [2][3]float64
}

// NewCell allocates a single-species cell at a uniform primitive state.
func NewCell(g *DV.Grid, model Model, prim []float64, gas *Gas, measure float64) (c *Cell) {
	c = &Cell{
		W:       make([][]float64, 1),
		Prim:    make([][]float64, 1),
		F:       make([]*PDFSet, 1),
		Measure: measure,
	}
	c.Prim[0] = append([]float64{}, prim...)
	switch model {
	case Rykov3F:
		c.W[0] = RykovPrimToConserved(prim, gas.Kr)
	default:
		c.W[0] = PrimToConserved(prim, gas.Gamma)
	}
	c.F[0] = EquilibriumSet(g, model, prim, gas)
	return
}

// NewMixtureCell allocates a two-species cell; grids holds the per-species
// velocity grids and prims the per-species primitive states.
func NewMixtureCell(grids [2]*DV.Grid, model Model, prims [2][]float64, gas *Gas, measure float64) (c *Cell) {
	c = &Cell{
		W:       make([][]float64, 2),
		Prim:    make([][]float64, 2),
		F:       make([]*PDFSet, 2),
		Measure: measure,
	}
	for s := 0; s < 2; s++ {
		c.Prim[s] = append([]float64{}, prims[s]...)
		c.W[s] = PrimToConserved(prims[s], gas.Gamma)
		c.F[s] = EquilibriumSet(grids[s], model, prims[s], gas)
	}
	return
}

/*
	FluxBundle is the transient, externally computed net flux into a cell
	for one time step: one conserved-moment flux vector and one flux array
	per distribution function, per species, plus electromagnetic flux for
	plasma variants.

	Convention: all fluxes are already integrated over the step (the flux
	evaluator multiplies by dt and face measure); the cell update divides by
	the cell measure only. dt enters the update arithmetic solely through
	the dt/tau relaxation ratio.
*/
type FluxBundle struct {
	W  [][]float64
	F  []*PDFSet
	EM *EMFlux
}

type EMFlux struct {
	E, B     [3]float64
	Phi, Psi float64
}

// NewFluxBundle allocates zeroed flux storage shaped like the cell state
// for nSpecies species with nCons conserved components each.
func NewFluxBundle(g *DV.Grid, model Model, nSpecies, nCons int) (fb *FluxBundle) {
	fb = &FluxBundle{
		W: make([][]float64, nSpecies),
		F: make([]*PDFSet, nSpecies),
	}
	for s := 0; s < nSpecies; s++ {
		fb.W[s] = make([]float64, nCons)
		fb.F[s] = NewPDFSet(model, g)
	}
	return
}

// Zero clears the bundle for reuse in the next step.
func (fb *FluxBundle) Zero() {
	for s := range fb.W {
		for i := range fb.W[s] {
			fb.W[s][i] = 0
		}
		for _, b := range fb.F[s].Buffers() {
			for i := range b.DataP {
				b.DataP[i] = 0
			}
		}
	}
	if fb.EM != nil {
		*fb.EM = EMFlux{}
	}
}
