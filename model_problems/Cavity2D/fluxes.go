package Cavity2D

import (
	"github.com/notargets/gokinetic/kinetic"
)

/*
	First-order upwind kinetic face fluxes. All face fluxes are accumulated
	already integrated over the step (multiplied by dt and the face length)
	so the cell update divides by the cell measure only; see the FluxBundle
	convention in the kinetic package.
*/

// computeNetFlux fills the per-cell net flux bundle from the four faces,
// reading only pre-step neighbor state.
func (c *Cavity) computeNetFlux(id int, dt float64) {
	var (
		i, j = id % c.Nx, id / c.Nx
		cell = c.Cells[id]
		net  = c.Flux[id]
	)
	net.Zero()

	// West and east faces, upwind along u
	if i == 0 {
		c.accumFace(net, c.wallPDF(cell.F[0], 0, +1, 0, 0), cell.F[0], 0, dt*c.Dy, +1)
	} else {
		c.accumFace(net, c.Cells[id-1].F[0], cell.F[0], 0, dt*c.Dy, +1)
	}
	if i == c.Nx-1 {
		c.accumFace(net, cell.F[0], c.wallPDF(cell.F[0], 0, -1, 0, 0), 0, dt*c.Dy, -1)
	} else {
		c.accumFace(net, cell.F[0], c.Cells[id+1].F[0], 0, dt*c.Dy, -1)
	}

	// South and north faces, upwind along v; the north boundary is the
	// moving lid
	if j == 0 {
		c.accumFace(net, c.wallPDF(cell.F[0], 1, +1, 0, 0), cell.F[0], 1, dt*c.Dx, +1)
	} else {
		c.accumFace(net, c.Cells[id-c.Nx].F[0], cell.F[0], 1, dt*c.Dx, +1)
	}
	if j == c.Ny-1 {
		c.accumFace(net, cell.F[0], c.wallPDF(cell.F[0], 1, -1, c.ULid, 0), 1, dt*c.Dx, -1)
	} else {
		c.accumFace(net, cell.F[0], c.Cells[id+c.Nx].F[0], 1, dt*c.Dx, -1)
	}

	// Conserved flux is exactly the moment set of the pdf flux
	copy(net.W[0], kinetic.ConservedMoments(c.Grid, net.F[0]))
}

// accumFace adds sign * (upwind pdf flux through one face) into the net
// bundle; fL/fR are the states on the low/high side of the face.
func (c *Cavity) accumFace(net *kinetic.FluxBundle, fL, fR *kinetic.PDFSet, axis int, scale, sign float64) {
	var (
		vel  = c.Grid.U
		lBuf = fL.Buffers()
		rBuf = fR.Buffers()
		nBuf = net.F[0].Buffers()
	)
	if axis == 1 {
		vel = c.Grid.V
	}
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

/*
	wallPDF builds the diffuse-reflection wall state for a boundary face:
	a Maxwellian at the wall velocity and temperature with its density set
	so the net mass flux through the face vanishes. sign is +1 when the
	wall sits on the low side of the cell (incoming nodes have positive
	face-normal velocity).
*/
func (c *Cavity) wallPDF(f *kinetic.PDFSet, axis int, sign, uw, vw float64) *kinetic.PDFSet {
	var (
		g       = c.Grid
		vel     = g.U
		wall    = kinetic.EquilibriumSet(g, f.Model, []float64{1, uw, vw, 1}, c.Gas)
		out, in float64
	)
	if axis == 1 {
		vel = g.V
	}
	var (
		h  = primaryOf(f)
		mw = primaryOf(wall)
	)
	for n := range h {
		un := vel[n]
		if sign*un < 0 {
			out += g.Weights[n] * un * h[n]
		} else {
			in += g.Weights[n] * un * mw[n]
		}
	}
	rhoW := -out / in
	for _, b := range wall.Buffers() {
		b.Scale(rhoW)
	}
	return wall
}

func primaryOf(f *kinetic.PDFSet) []float64 {
	return f.H.DataP
}
