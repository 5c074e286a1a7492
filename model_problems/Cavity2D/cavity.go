package Cavity2D

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/notargets/gokinetic/DV"
	"github.com/notargets/gokinetic/InputParameters"
	"github.com/notargets/gokinetic/kinetic"
	"github.com/notargets/gokinetic/utils"
)

/*
	Lid-driven cavity on a uniform Cartesian mesh: a single-species 2D
	discrete-velocity solver with BGK or Shakhov relaxation. Each time step
	runs one flux-evaluation pass (parallel over cells, reading only
	pre-step neighbor state), a barrier, then one cell-update pass (parallel
	over cells) with per-partition residual reduction.
*/
type Cavity struct {
	// Input parameters
	CFL, FinalTime float64
	Nx, Ny         int
	Dx, Dy         float64
	ULid           float64
	MaxIterations  int
	Grid           *DV.Grid
	Gas            *kinetic.Gas
	Up             *kinetic.Updater
	Cells          []*kinetic.Cell
	Flux           []*kinetic.FluxBundle
	Partitions     *utils.PartitionMap
	Res            *kinetic.Residual
	nCons          int
}

func NewCavity(ip *InputParameters.InputParameters, procLimit int) (c *Cavity, err error) {
	var (
		rule DV.QuadRule
	)
	if rule, err = DV.NewQuadRule(ip.Quadrature); err != nil {
		return
	}
	model, err := kinetic.NewModel(ip.Model)
	if err != nil {
		return
	}
	coll, err := kinetic.NewCollision(ip.CollisionModel)
	if err != nil {
		return
	}
	// 1F carries no B pdf to hold internal energy, so a nonzero InternalDOF
	// would put gamma out of step with the moment set
	if model == kinetic.M1F && ip.InternalDOF != 0 {
		err = fmt.Errorf("model %s cannot carry InternalDOF = %g", model, ip.InternalDOF)
		return
	}
	c = &Cavity{
		CFL:           ip.CFL,
		FinalTime:     ip.FinalTime,
		MaxIterations: ip.MaxIterations,
		Nx:            ip.Nx,
		Ny:            ip.Ny,
		ULid:          ip.LidVelocity,
	}
	c.Dx, c.Dy = 1./float64(c.Nx), 1./float64(c.Ny)
	vm := ip.VelocityMax
	if c.Grid, err = DV.NewGrid2D(-vm, vm, -vm, vm, ip.NVel, ip.NVel, 0, rule); err != nil {
		return
	}
	c.Gas = kinetic.NewGas(2, ip.InternalDOF, ip.Knudsen, ip.Prandtl, ip.Alpha, ip.Omega)
	if c.Up, err = kinetic.NewUpdater(c.Grid, c.Gas, model, coll); err != nil {
		return
	}

	// Uniform initial state: density 1, velocity 0, lambda 1
	prim0 := []float64{1, 0, 0, 1}
	c.nCons = len(prim0)
	measure := c.Dx * c.Dy
	c.Cells = make([]*kinetic.Cell, c.Nx*c.Ny)
	c.Flux = make([]*kinetic.FluxBundle, c.Nx*c.Ny)
	for id := range c.Cells {
		c.Cells[id] = kinetic.NewCell(c.Grid, model, prim0, c.Gas, measure)
		c.Flux[id] = kinetic.NewFluxBundle(c.Grid, model, 1, c.nCons)
	}
	if procLimit <= 0 {
		procLimit = 1
	}
	c.Partitions = utils.NewPartitionMap(procLimit, len(c.Cells))
	c.Res = kinetic.NewResidual(c.nCons)
	return
}

// MaxDT is the CFL-bounded explicit time step for the velocity extent.
func (c *Cavity) MaxDT() float64 {
	var (
		umax = math.Max(math.Abs(c.Grid.Umax), math.Abs(c.Grid.Umin)) + math.Abs(c.ULid)
		h    = math.Min(c.Dx, c.Dy)
	)
	return c.CFL * h / umax
}

/*
	Step advances the whole mesh by dt: flux pass, barrier, update pass,
	barrier. Residuals accumulate into private per-partition instances and
	merge after the update barrier; distribution and conserved arrays are
	exclusively owned per cell and need no synchronization.
*/
func (c *Cavity) Step(dt float64) {
	var (
		pm = c.Partitions
		NP = pm.ParallelDegree
		wg = sync.WaitGroup{}
	)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for id := kMin; id < kMax; id++ {
				c.computeNetFlux(id, dt)
			}
		}(np)
	}
	wg.Wait()
	c.Res.Reset()
	partRes := make([]*kinetic.Residual, NP)
	for np := 0; np < NP; np++ {
		partRes[np] = kinetic.NewResidual(c.nCons)
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for id := kMin; id < kMax; id++ {
				c.Up.Step(c.Cells[id], c.Flux[id], dt, partRes[np])
			}
		}(np)
	}
	wg.Wait()
	for np := 0; np < NP; np++ {
		c.Res.Merge(partRes[np])
	}
}

func (c *Cavity) Solve() {
	var (
		dt       = c.MaxDT()
		Time     float64
		steps    int
		finished bool
	)
	c.PrintInitialization()
	elapsed := time.Duration(0)
	for !finished {
		start := time.Now()
		c.Step(dt)
		elapsed += time.Now().Sub(start)
		steps++
		Time += dt
		finished = Time >= c.FinalTime || steps >= c.MaxIterations
		if finished || steps%50 == 0 || steps == 1 {
			c.PrintUpdate(Time, dt, steps)
		}
	}
	c.PrintFinal(elapsed, steps)
}

func (c *Cavity) PrintInitialization() {
	fmt.Printf("Lid-Driven Cavity, %dx%d cells, %d velocity nodes\n",
		c.Nx, c.Ny, c.Grid.Total())
	fmt.Printf("Collision model: %s, Kn = %8.5f\n", c.Up.Collision, c.Gas.Kn)
	fmt.Printf("Using %d go routines in parallel\n", c.Partitions.ParallelDegree)
	fmt.Printf("    iter    time   min_dt")
	for n := 0; n < c.nCons; n++ {
		fmt.Printf("       Res%d", n)
	}
	fmt.Printf("\n")
}

func (c *Cavity) PrintUpdate(Time, dt float64, steps int) {
	fmt.Printf("%8d%8.5f%8.5f", steps, Time, dt)
	for _, r := range c.Res.Norms(len(c.Cells)) {
		fmt.Printf("%11.4e", r)
	}
	fmt.Printf("\n")
}

func (c *Cavity) PrintFinal(elapsed time.Duration, steps int) {
	rate := float64(elapsed.Microseconds()) / (float64(len(c.Cells) * steps))
	fmt.Printf("\nRate of execution = %8.5f us/(cell*iteration) over %d iterations\n", rate, steps)
	if n := c.Up.Warnings.Count(); n > 0 {
		fmt.Printf("%d recoverable warnings accumulated\n", n)
	}
}

// Density returns the density field for post-processing.
func (c *Cavity) Density() (rho []float64) {
	rho = make([]float64, len(c.Cells))
	for id, cell := range c.Cells {
		rho[id] = cell.Prim[0][0]
	}
	return
}
