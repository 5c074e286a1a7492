package sod_shock_tube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSod(t *testing.T) {
	var (
		gamma = 1.4
		tEnd  = 0.1
	)
	// Classic gamma = 1.4 post-shock pressure
	assert.InDelta(t, 0.30313, postPressure(gamma), 1.e-4)

	xHead, xContact, xShock := WaveSpeeds(tEnd, gamma)
	assert.Less(t, xHead, 0.5)
	assert.Greater(t, xShock, xContact)
	assert.InDelta(t, 0.5-tEnd*1.18322, xHead, 1.e-4)

	// Profile hits the known plateau values
	rho := DensityAt([]float64{0.05, xContact - 0.01, xContact + 0.01, 0.95}, tEnd, gamma)
	assert.InDelta(t, 1., rho[0], 1.e-12)
	assert.InDelta(t, 0.42632, rho[1], 1.e-4)
	assert.InDelta(t, 0.26557, rho[2], 1.e-4)
	assert.InDelta(t, 0.125, rho[3], 1.e-12)

	// Monotone decrease from left to right
	x := make([]float64, 101)
	for i := range x {
		x[i] = float64(i) / 100.
	}
	rho = DensityAt(x, tEnd, gamma)
	for i := 1; i < len(rho); i++ {
		assert.LessOrEqual(t, rho[i], rho[i-1]+1.e-12)
	}

	// The monatomic variant stays bracketed by the initial states
	rho = DensityAt(x, tEnd, 5./3.)
	for _, r := range rho {
		assert.LessOrEqual(t, r, 1.)
		assert.GreaterOrEqual(t, r, 0.125)
	}
}
