package Relax1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gokinetic/DV"
	"github.com/notargets/gokinetic/kinetic"
)

func TestNewShock(t *testing.T) {
	c, err := NewShock(0.5, 0.1, 40, 32, 1.e-3, kinetic.R2F, kinetic.BGK, DV.Rectangle)
	assert.NoError(t, err)
	assert.Equal(t, 40, c.K)
	assert.InDelta(t, 5./3., c.Gas.Gamma, 1.e-13)
	// Initial discontinuity at the midpoint
	rho := c.Density()
	assert.InDelta(t, 1., rho[0], 1.e-12)
	assert.InDelta(t, 0.125, rho[39], 1.e-12)
	// dt bound from the velocity extent
	assert.InDelta(t, 0.5*(1./40.)/8., c.MaxDT(), 1.e-13)
}

/*
	Short Sod run: the discontinuity spreads but the far ends stay on their
	initial states, density remains positive and bounded by the left state,
	and no positivity rollbacks fire at this Knudsen number.
*/
func TestShockEvolution(t *testing.T) {
	c, err := NewShock(0.5, 0., 60, 48, 1.e-2, kinetic.R2F, kinetic.BGK, DV.Rectangle)
	assert.NoError(t, err)
	dt := c.MaxDT()
	for n := 0; n < 40; n++ {
		c.Step(dt)
	}
	rho := c.Density()
	assert.InDelta(t, 1., rho[1], 0.02)
	assert.InDelta(t, 0.125, rho[58], 0.02)
	for _, r := range rho {
		assert.False(t, math.IsNaN(r))
		assert.Greater(t, r, 0.)
		assert.Less(t, r, 1.05)
	}
	// The midpoint has been smeared toward the intermediate state
	mid := rho[30]
	assert.Greater(t, mid, 0.125)
	assert.Less(t, mid, 1.)
	assert.Equal(t, 0, c.Up.Warnings.Count())

	// Near the continuum limit the profile tracks the analytic solution
	assert.Less(t, c.DensityError(40.*dt), 0.2)
}

// The Newton-Cotes quadrature variant and the Shakhov collision path run
// through the same driver.
func TestShockVariants(t *testing.T) {
	c, err := NewShock(0.5, 0., 30, 41, 1.e-2, kinetic.R2F, kinetic.Shakhov, DV.Newton)
	assert.NoError(t, err)
	dt := c.MaxDT()
	for n := 0; n < 10; n++ {
		c.Step(dt)
	}
	for _, r := range c.Density() {
		assert.False(t, math.IsNaN(r))
		assert.Greater(t, r, 0.)
	}
	// Monatomic single-pdf variant
	c, err = NewShock(0.5, 0., 30, 41, 1.e-2, kinetic.M1F, kinetic.BGK, DV.Rectangle)
	assert.NoError(t, err)
	dt = c.MaxDT()
	for n := 0; n < 10; n++ {
		c.Step(dt)
	}
	for _, r := range c.Density() {
		assert.Greater(t, r, 0.)
	}
}
