package kinetic

import (
	"math"
	"sync"
)

/*
	Residual holds the per-step convergence accumulators: RES is the sum of
	squared conserved-state change, AVG the sum of magnitudes. Cell updates
	accumulate additively; the driver reads norms after each full sweep. The
	accumulation order is advisory only, so partitioned workers accumulate
	into private instances and Merge after the barrier.
*/
type Residual struct {
	RES, AVG []float64
	mu       sync.Mutex
}

func NewResidual(n int) *Residual {
	return &Residual{
		RES: make([]float64, n),
		AVG: make([]float64, n),
	}
}

func (r *Residual) Accumulate(dw, w []float64) {
	r.mu.Lock()
	for i := range dw {
		r.RES[i] += dw[i] * dw[i]
		r.AVG[i] += math.Abs(w[i])
	}
	r.mu.Unlock()
}

func (r *Residual) Merge(o *Residual) {
	r.mu.Lock()
	for i := range o.RES {
		r.RES[i] += o.RES[i]
		r.AVG[i] += o.AVG[i]
	}
	r.mu.Unlock()
}

func (r *Residual) Reset() {
	r.mu.Lock()
	for i := range r.RES {
		r.RES[i] = 0
		r.AVG[i] = 0
	}
	r.mu.Unlock()
}

// Norms returns sqrt(N*RES)/AVG per conserved component, the standard
// normalized residual over N cells.
func (r *Residual) Norms(nCells int) (norms []float64) {
	r.mu.Lock()
	norms = make([]float64, len(r.RES))
	for i := range r.RES {
		norms[i] = math.Sqrt(float64(nCells)*r.RES[i]) / (r.AVG[i] + 1.e-13)
	}
	r.mu.Unlock()
	return
}
