package kinetic

import (
	"fmt"

	"github.com/notargets/gokinetic/DV"
)

/*
	Updater is the per-cell step operator. The distribution model, collision
	model and (for plasma variants) coupling constants are fixed at
	construction; Step dispatches on the tags, never on array shapes.
*/
type Updater struct {
	Grid      *DV.Grid
	Grids     [2]*DV.Grid // per-species grids; both point at Grid for single species
	Gas       *Gas
	Model     Model
	Collision Collision
	Plasma    *PlasmaConfig // nil for neutral runs
	Warnings  *WarningLog
}

// PlasmaConfig carries the two-species electromagnetic coupling constants.
type PlasmaConfig struct {
	Mass         [2]float64
	Charge       [2]float64
	DebyeLength  float64
	LarmorRadius float64
}

func NewUpdater(g *DV.Grid, gas *Gas, model Model, coll Collision) (up *Updater, err error) {
	if model == Plasma4F {
		err = fmt.Errorf("the %s model requires the two-species plasma constructor", model)
		return
	}
	switch coll {
	case Rykov:
		if model != Rykov3F {
			err = fmt.Errorf("collision model %s requires the %s distribution model", coll, Rykov3F)
			return
		}
	case Shakhov:
		if model == Rykov3F {
			err = fmt.Errorf("collision model %s is incompatible with the %s distribution model", coll, Rykov3F)
			return
		}
	}
	if model == Rykov3F && g.Dim != 1 {
		err = fmt.Errorf("the %s model requires a 1D velocity grid", model)
		return
	}
	up = &Updater{
		Grid:      g,
		Grids:     [2]*DV.Grid{g, g},
		Gas:       gas,
		Model:     model,
		Collision: coll,
		Warnings:  NewWarningLog(),
	}
	return
}

// NewPlasmaUpdater builds a two-species electromagnetic updater on
// per-species velocity grids.
func NewPlasmaUpdater(grids [2]*DV.Grid, gas *Gas, pc *PlasmaConfig, coll Collision) (up *Updater, err error) {
	if grids[0].Dim != 1 || grids[1].Dim != 1 {
		err = fmt.Errorf("the %s model requires 1D velocity grids", Plasma4F)
		return
	}
	// The heat-flux corrections act on the H pdf the plasma closure does
	// not carry, so only plain BGK relaxation is meaningful here
	if coll != BGK {
		err = fmt.Errorf("collision model %s is incompatible with the %s distribution model", coll, Plasma4F)
		return
	}
	up = &Updater{
		Grid:      grids[0],
		Grids:     grids,
		Gas:       gas,
		Model:     Plasma4F,
		Collision: coll,
		Plasma:    pc,
		Warnings:  NewWarningLog(),
	}
	return
}

/*
	Step advances one cell through the update state machine:

	Snapshot -> FluxIntegrate -> RecoverPrimitive -> {Rollback | Continue}
	-> AccumulateResidual -> BuildTarget -> [EM substep] ->
	UpdateDistributions

	No state is retried; rollback applies only to the conserved/primitive
	pair of the offending species, never to the distribution functions.

	Face fluxes in net are already time-integrated (see FluxBundle); dt
	enters here only through the dt/tau relaxation ratio.
*/
func (up *Updater) Step(c *Cell, net *FluxBundle, dt float64, res *Residual) {
	var (
		nS   = len(c.W)
		wOld = make([][]float64, nS)
	)
	// Snapshot for rollback and residuals
	for s := 0; s < nS; s++ {
		wOld[s] = append([]float64{}, c.W[s]...)
	}

	// Flux integration: explicit Euler update of the moment equations
	for s := 0; s < nS; s++ {
		for i := range c.W[s] {
			c.W[s][i] += net.W[s][i] / c.Measure
		}
	}

	// Primitive recovery with positivity protection: the conserved to
	// primitive map is undefined for non-positive temperature, so an
	// offending species is frozen at its pre-step macroscopic state while
	// its distributions still relax
	for s := 0; s < nS; s++ {
		var prim []float64
		switch up.Model {
		case Rykov3F:
			prim = RykovConservedToPrim(c.W[s], up.Gas.Kr)
		default:
			prim = ConservedToPrim(c.W[s], up.Gas.Gamma)
		}
		if !PrimValid(up.Model, prim) {
			copy(c.W[s], wOld[s])
			up.Warnings.Warnf("negative temperature in component %d", s)
			continue
		}
		c.Prim[s] = prim
	}

	// Interspecies source: explicit sub-step toward the AAP-equilibrated
	// mixture state using the mixture relaxation times
	var tau [2]float64
	if nS == 2 && up.Plasma != nil {
		prims := [2][]float64{c.Prim[0], c.Prim[1]}
		tau = AAPCollisionTime(prims, up.Plasma.Mass, up.Gas.Kn)
		mix := AAPMixturePrim(prims, up.Plasma.Mass, 3.+up.Gas.K)
		for s := 0; s < nS; s++ {
			phi := dt / tau[s]
			if phi > 1 {
				phi = 1
			}
			for i := range c.Prim[s] {
				c.Prim[s][i] += phi * (mix[s][i] - c.Prim[s][i])
			}
			c.W[s] = PrimToConserved(c.Prim[s], up.Gas.Gamma)
		}
	} else {
		for s := 0; s < nS; s++ {
			p := c.Prim[s]
			if up.Model == Rykov3F {
				// VHS time at the equilibrium lambda, not the trailing
				// rotational lambda
				p = p[:3]
			}
			tau[s] = VHSCollisionTime(p, up.Gas.MuRef, up.Gas.Omega)
		}
	}

	// Residual accumulation, additive only
	if res != nil {
		dw := make([]float64, len(c.W[0]))
		for s := 0; s < nS; s++ {
			for i := range dw {
				dw[i] = c.W[s][i] - wOld[s][i]
			}
			res.Accumulate(dw, c.W[s])
		}
	}

	// Relaxation target construction
	targets := make([]*PDFSet, nS)
	for s := 0; s < nS; s++ {
		targets[s] = up.buildTarget(up.Grids[s], c.Prim[s], c.F[s])
	}

	// Electromagnetic sub-step
	if up.Plasma != nil && net.EM != nil {
		up.emSubStep(c, net.EM, dt)
	}

	// Distribution update: first-order implicit treatment of the stiff
	// relaxation term, unconditionally stable for any dt/tau > 0
	for s := 0; s < nS; s++ {
		var (
			bufs  = c.F[s].Buffers()
			flux  = net.F[s].Buffers()
			tgt   = targets[s].Buffers()
			ratio = dt / tau[s]
			denom = 1. + ratio
		)
		for nb, b := range bufs {
			fD, tD, gD := flux[nb].DataP, b.DataP, tgt[nb].DataP
			for i := range tD {
				tD[i] = (tD[i] + fD[i]/c.Measure + ratio*gD[i]) / denom
			}
		}
	}

	// Rotational relaxation source: the macroscopic rotational energy
	// follows the same implicit blend as the R pdf, so W stays the moment
	// set of F under zero net flux. Total energy is untouched; the exchange
	// moves energy between the rotational and translational pools only.
	if up.Collision == Rykov {
		for s := 0; s < nS; s++ {
			var (
				prim  = c.Prim[s]
				lat   = RykovLambdaT(prim, up.Gas.Kr)
				zr    = RykovZr(0.5/lat, up.Gas.T0, up.Gas.Z0)
				erEq  = up.Gas.Kr * prim[0] / (4. * prim[2])
				ratio = dt / tau[s]
			)
			c.W[s][3] += ratio / zr * (erEq - c.W[s][3]) / (1. + ratio)
			c.Prim[s][3] = up.Gas.Kr * c.W[s][0] / (4. * c.W[s][3])
		}
	}

	// Plasma runs refresh the macroscopic state from the advanced pdfs so
	// the Lorentz momentum input is reflected in the moments
	if up.Plasma != nil {
		for s := 0; s < nS; s++ {
			c.W[s] = ConservedMoments(up.Grids[s], c.F[s])
			prim := ConservedToPrim(c.W[s], up.Gas.Gamma)
			if PrimValid(up.Model, prim) {
				c.Prim[s] = prim
			}
		}
	}
}

// buildTarget assembles the relaxation target for one species at its
// post-flux primitive state.
func (up *Updater) buildTarget(g *DV.Grid, prim []float64, F *PDFSet) (tgt *PDFSet) {
	switch up.Collision {
	case BGK:
		tgt = EquilibriumSet(g, up.Model, prim, up.Gas)
	case Shakhov:
		q := HeatFlux(g, F, prim)
		tgt = EquilibriumSet(g, up.Model, prim, up.Gas)
		ShakhovCorrect(g, tgt, prim, q, up.Gas)
	case Rykov:
		q := HeatFlux(g, F, prim)
		el, inel := RykovCorrect(g, prim, q, up.Gas)
		lat := RykovLambdaT(prim, up.Gas.Kr)
		zr := RykovZr(0.5/lat, up.Gas.T0, up.Gas.Z0)
		tgt = el
		elB, inelB := tgt.Buffers(), inel.Buffers()
		for nb := range elB {
			eD, iD := elB[nb].DataP, inelB[nb].DataP
			for i := range eD {
				eD[i] = (1.-1./zr)*eD[i] + iD[i]/zr
			}
		}
	}
	return
}
