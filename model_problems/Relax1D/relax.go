package Relax1D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/gokinetic/DV"
	"github.com/notargets/gokinetic/kinetic"
	"github.com/notargets/gokinetic/sod_shock_tube"
)

/*
	Sod-type shock structure in one dimension: a discrete-velocity BGK or
	Shakhov solver on a uniform 1D mesh with first-order upwind kinetic face
	fluxes and fixed equilibrium inflow states at both ends. The serial
	driver mirrors the cavity model problem without the parallel sweep.
*/
type Shock struct {
	CFL, FinalTime float64
	K              int // number of physical cells
	Dx             float64
	Grid           *DV.Grid
	Gas            *kinetic.Gas
	Up             *kinetic.Updater
	Cells          []*kinetic.Cell
	Flux           []*kinetic.FluxBundle
	Res            *kinetic.Residual
	In, Out        []float64 // boundary primitive states
	ghost          [2]*kinetic.PDFSet
	nCons          int
	MaxIterations  int
}

func NewShock(CFL, FinalTime float64, K, nv int, kn float64,
	model kinetic.Model, coll kinetic.Collision, rule DV.QuadRule) (c *Shock, err error) {
	c = &Shock{
		CFL:           CFL,
		FinalTime:     FinalTime,
		K:             K,
		Dx:            1. / float64(K),
		MaxIterations: math.MaxInt32,
	}
	if c.Grid, err = DV.NewGrid1D(-8, 8, nv, 0, rule); err != nil {
		return
	}
	var inK float64
	if model == kinetic.R2F {
		inK = 2 // fold the two transverse translational dofs into B
	}
	c.Gas = kinetic.NewGas(1, inK, kn, 2./3., 1.0, 0.81)
	if c.Up, err = kinetic.NewUpdater(c.Grid, c.Gas, model, coll); err != nil {
		return
	}

	// Sod states: (rho, U, lambda) with lambda = rho/(2p)
	c.In = []float64{1, 0, 0.5}
	c.Out = []float64{0.125, 0, 0.625}
	c.nCons = 3
	c.Cells = make([]*kinetic.Cell, K)
	c.Flux = make([]*kinetic.FluxBundle, K)
	for k := 0; k < K; k++ {
		prim := c.In
		if k >= K/2 {
			prim = c.Out
		}
		c.Cells[k] = kinetic.NewCell(c.Grid, model, prim, c.Gas, c.Dx)
		c.Flux[k] = kinetic.NewFluxBundle(c.Grid, model, 1, c.nCons)
	}
	c.ghost[0] = kinetic.EquilibriumSet(c.Grid, model, c.In, c.Gas)
	c.ghost[1] = kinetic.EquilibriumSet(c.Grid, model, c.Out, c.Gas)
	c.Res = kinetic.NewResidual(c.nCons)
	return
}

func (c *Shock) MaxDT() float64 {
	umax := math.Max(math.Abs(c.Grid.Umax), math.Abs(c.Grid.Umin))
	return c.CFL * c.Dx / umax
}

func (c *Shock) Step(dt float64) {
	for k := 0; k < c.K; k++ {
		c.computeNetFlux(k, dt)
	}
	c.Res.Reset()
	for k := 0; k < c.K; k++ {
		c.Up.Step(c.Cells[k], c.Flux[k], dt, c.Res)
	}
}

func (c *Shock) computeNetFlux(k int, dt float64) {
	var (
		cell = c.Cells[k]
		net  = c.Flux[k]
		fL   = c.ghost[0]
		fR   = c.ghost[1]
	)
	net.Zero()
	if k > 0 {
		fL = c.Cells[k-1].F[0]
	}
	if k < c.K-1 {
		fR = c.Cells[k+1].F[0]
	}
	accumFace(c.Grid.U, net, fL, cell.F[0], dt, +1)
	accumFace(c.Grid.U, net, cell.F[0], fR, dt, -1)
	copy(net.W[0], kinetic.ConservedMoments(c.Grid, net.F[0]))
}

func accumFace(vel []float64, net *kinetic.FluxBundle, fL, fR *kinetic.PDFSet, scale, sign float64) {
	var (
		lBuf = fL.Buffers()
		rBuf = fR.Buffers()
		nBuf = net.F[0].Buffers()
	)
	for nb := range nBuf {
		l, r, out := lBuf[nb].DataP, rBuf[nb].DataP, nBuf[nb].DataP
		for n := range out {
			un := vel[n]
			phi := r[n]
			if un > 0 {
				phi = l[n]
			}
			out[n] += sign * un * phi * scale
		}
	}
}

func (c *Shock) Solve() {
	var (
		dt       = c.MaxDT()
		Time     float64
		steps    int
		finished bool
	)
	fmt.Printf("Sod Shock Structure in 1 Dimension\n")
	fmt.Printf("Model: %s, Collision: %s, Kn = %8.5f\n", c.Up.Model, c.Up.Collision, c.Gas.Kn)
	fmt.Printf("CFL = %8.4f, Num Cells K = %d, Velocity Nodes = %d\n\n", c.CFL, c.K, c.Grid.Total())
	elapsed := time.Duration(0)
	for !finished {
		start := time.Now()
		if Time+dt > c.FinalTime {
			dt = c.FinalTime - Time
		}
		c.Step(dt)
		elapsed += time.Now().Sub(start)
		steps++
		Time += dt
		finished = Time >= c.FinalTime || steps >= c.MaxIterations
		if finished || steps%50 == 0 {
			fmt.Printf("%8d%8.5f%8.5f", steps, Time, dt)
			for _, r := range c.Res.Norms(c.K) {
				fmt.Printf("%11.4e", r)
			}
			fmt.Printf("\n")
		}
	}
	rate := float64(elapsed.Microseconds()) / (float64(c.K * steps))
	fmt.Printf("\nRate of execution = %8.5f us/(cell*iteration) over %d iterations\n", rate, steps)
	fmt.Printf("L2 density error vs analytic Sod solution = %8.5f\n", c.DensityError(Time))
}

// DensityError is the RMS difference between the computed density profile
// and the analytic Sod solution at time Time, meaningful near the continuum
// limit.
func (c *Shock) DensityError(Time float64) (rms float64) {
	var (
		x   = make([]float64, c.K)
		rho = c.Density()
	)
	for k := range x {
		x[k] = (float64(k) + 0.5) * c.Dx
	}
	exact := sod_shock_tube.DensityAt(x, Time, c.Gas.Gamma)
	for k := range x {
		d := rho[k] - exact[k]
		rms += d * d
	}
	rms = math.Sqrt(rms / float64(c.K))
	return
}

// Density returns the density profile for post-processing.
func (c *Shock) Density() (rho []float64) {
	rho = make([]float64, c.K)
	for k, cell := range c.Cells {
		rho[k] = cell.Prim[0][0]
	}
	return
}
