package kinetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gokinetic/DV"
	"github.com/notargets/gokinetic/utils"
)

func TestStateConversions(t *testing.T) {
	// Round trips through the conserved map at each dimensionality
	{
		for _, prim := range [][]float64{
			{1, 0.3, 0.8},
			{0.7, -0.2, 0.5, 1.3},
			{1.4, 0.1, -0.4, 0.2, 0.9},
		} {
			gamma := HeatCapacityRatio(0, len(prim)-2)
			w := PrimToConserved(prim, gamma)
			back := ConservedToPrim(w, gamma)
			for i := range prim {
				assert.InDelta(t, prim[i], back[i], 1.e-13)
			}
		}
	}
	// Rykov variant carries the rotational energy separately
	{
		prim := []float64{0.8, 0.25, 1.1, 0.7}
		Kr := 2.
		w := RykovPrimToConserved(prim, Kr)
		assert.InDelta(t, 2.*0.8/(4.*0.7), w[3], 1.e-13)
		back := RykovConservedToPrim(w, Kr)
		for i := range prim {
			assert.InDelta(t, prim[i], back[i], 1.e-13)
		}
		// At rotational equilibrium the translational lambda matches both
		eq := []float64{0.8, 0.25, 1.1, 1.1}
		assert.InDelta(t, 1.1, RykovLambdaT(eq, Kr), 1.e-12)
	}
	// Validity screens out non-positive temperature
	{
		assert.True(t, PrimValid(M1F, []float64{1, 0, 1}))
		assert.False(t, PrimValid(M1F, []float64{1, 0, -0.1}))
		assert.False(t, PrimValid(M1F, []float64{-1, 0, 1}))
		assert.False(t, PrimValid(Rykov3F, []float64{1, 0, 1, -1}))
		assert.False(t, PrimValid(M1F, []float64{1, 0, math.NaN()}))
	}
}

/*
	The discrete moments of an equilibrium set must reproduce the conserved
	state that generated it, for every model closure. A Gaussian sampled at
	half-cell offsets with full tail coverage integrates to near machine
	precision, so the tolerances here are tight.
*/
func TestEquilibriumMoments(t *testing.T) {
	// 1F on a 1D grid
	{
		g, _ := DV.NewGrid1D(-10, 10, 100, 0, DV.Rectangle)
		gas := NewGas(1, 0, 1.e-3, 2./3., 1.0, 0.81)
		prim := []float64{1.2, 0.4, 0.9}
		eq := EquilibriumSet(g, M1F, prim, gas)
		w := ConservedMoments(g, eq)
		wx := PrimToConserved(prim, gas.Gamma)
		for i := range w {
			assert.InDelta(t, wx[i], w[i], 1.e-10)
		}
		back := PrimFromPDF(g, eq, gas)
		for i := range prim {
			assert.InDelta(t, prim[i], back[i], 1.e-10)
		}
	}
	// 2F on a 1D grid with two folded internal degrees of freedom
	{
		g, _ := DV.NewGrid1D(-10, 10, 100, 0, DV.Rectangle)
		gas := NewGas(1, 2, 1.e-3, 2./3., 1.0, 0.81)
		assert.InDelta(t, 5./3., gas.Gamma, 1.e-13)
		prim := []float64{1, 0.2, 0.8}
		eq := EquilibriumSet(g, R2F, prim, gas)
		w := ConservedMoments(g, eq)
		wx := PrimToConserved(prim, gas.Gamma)
		for i := range w {
			assert.InDelta(t, wx[i], w[i], 1.e-10)
		}
	}
	// 2F on a 2D grid with one folded degree of freedom
	{
		g, _ := DV.NewGrid2D(-8, 8, -8, 8, 64, 64, 0, DV.Rectangle)
		gas := NewGas(2, 1, 1.e-3, 2./3., 1.0, 0.81)
		prim := []float64{0.9, 0.3, -0.1, 1.1}
		eq := EquilibriumSet(g, R2F, prim, gas)
		w := ConservedMoments(g, eq)
		wx := PrimToConserved(prim, gas.Gamma)
		for i := range w {
			assert.InDelta(t, wx[i], w[i], 1.e-9)
		}
	}
	// Rykov triple at rotational equilibrium matches the closed form
	{
		g, _ := DV.NewGrid1D(-10, 10, 100, 0, DV.Rectangle)
		gas := NewGas(1, 2, 1.e-3, 2./3., 1.0, 0.81)
		gas.Kr = 2
		prim := []float64{1, 0.1, 0.9, 0.9}
		eq := EquilibriumSet(g, Rykov3F, prim, gas)
		w := ConservedMoments(g, eq)
		wx := RykovPrimToConserved(prim, gas.Kr)
		for i := range w {
			assert.InDelta(t, wx[i], w[i], 1.e-10)
		}
	}
	// Plasma quadruple closes the transverse moments exactly
	{
		g, _ := DV.NewGrid1D(-10, 10, 100, 0, DV.Rectangle)
		gas := NewGas(3, 0, 1.e-3, 1.0, 1.0, 0.81)
		prim := []float64{1, 0.2, -0.3, 0.15, 1.0}
		eq := EquilibriumSet(g, Plasma4F, prim, gas)
		w := ConservedMoments(g, eq)
		wx := PrimToConserved(prim, gas.Gamma)
		for i := range w {
			assert.InDelta(t, wx[i], w[i], 1.e-10)
		}
	}
}

func TestGaussMoments(t *testing.T) {
	var (
		g, _ = DV.NewGrid1D(-12, 12, 240, 0, DV.Rectangle)
		prim = []float64{1, 0.5, 1.2}
	)
	// Full and half-range closed-form moments against direct quadrature of
	// the unit-density Maxwellian
	M := Maxwellian(g, prim)
	Mu, MuL, MuR, _, _, Mxi := GaussMoments(prim, 2)
	for n := 0; n < MNUM; n++ {
		var full, left float64
		for i, u := range g.U {
			q := g.Weights[i] * utils.POW(u, n) * M.DataP[i]
			full += q
			if u > 0 {
				left += q
			}
		}
		assert.InDelta(t, full, Mu[n], 1.e-9)
		// Half-range sums carry the midpoint-rule boundary error at the
		// velocity cut, so the comparison is looser
		assert.InDelta(t, left, MuL[n], 2.e-3)
		assert.InDelta(t, full-left, MuR[n], 2.e-3)
	}
	// Internal-energy moments
	assert.InDelta(t, 1., Mxi[0], 1.e-13)
	assert.InDelta(t, 0.5*2./1.2, Mxi[1], 1.e-13)
	assert.InDelta(t, 0.25*(4.+4.)/(1.2*1.2), Mxi[2], 1.e-13)
}

func TestStressAndHeatFlux(t *testing.T) {
	var (
		g, _ = DV.NewGrid2D(-8, 8, -8, 8, 64, 64, 0, DV.Rectangle)
		gas  = NewGas(2, 1, 1.e-3, 2./3., 1.0, 0.81)
		prim = []float64{1, 0.2, -0.1, 1.0}
		eq   = EquilibriumSet(g, R2F, prim, gas)
	)
	// Equilibrium stress tensor is isotropic with pressure on the diagonal
	P := Stress(g, eq, prim)
	p := Pressure(prim)
	assert.InDelta(t, p, P.At(0, 0), 1.e-9)
	assert.InDelta(t, p, P.At(1, 1), 1.e-9)
	assert.InDelta(t, 0., P.At(0, 1), 1.e-9)
	// Equilibrium heat flux vanishes
	q := HeatFlux(g, eq, prim)
	assert.InDelta(t, 0., q[0], 1.e-9)
	assert.InDelta(t, 0., q[1], 1.e-9)
}
