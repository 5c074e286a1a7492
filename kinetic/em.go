package kinetic

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gokinetic/DV"
	"github.com/notargets/gokinetic/utils"
)

/*
	emSubStep advances the electromagnetic state of a plasma cell: field
	components are integrated from the caller-supplied flux, the stiff
	field/velocity coupling is solved implicitly (a 9x9 dense system, needed
	because plasma frequencies are far below the transport time scale), the
	per-species Lorentz force is derived, and each distribution is advected
	in velocity space by a shift along the resolved axis followed by the
	transverse moment shear.
*/
func (up *Updater) emSubStep(c *Cell, em *EMFlux, dt float64) {
	// Field flux integration, including the hyperbolic-cleaning potentials
	for k := 0; k < 3; k++ {
		c.E[k] += em.E[k] / c.Measure
		c.B[k] += em.B[k] / c.Measure
	}
	c.Phi += em.Phi / c.Measure
	c.Psi += em.Psi / c.Measure

	eNew, uNew, ok := up.emCoupling(c, dt)
	if !ok {
		up.Warnings.Warnf("singular field-velocity coupling system, skipping EM sub-step")
		return
	}
	c.E = eNew

	if fieldNaN(c) {
		up.Warnings.Warnf("NaN in electromagnetic field state")
	}

	// Lorentz force per species at the implicitly coupled state
	for s := 0; s < 2 && s < len(c.F); s++ {
		qm := up.Plasma.Charge[s] / (up.Plasma.Mass[s] * up.Plasma.LarmorRadius)
		c.Lorentz[s][0] = qm * (c.E[0] + uNew[s][1]*c.B[2] - uNew[s][2]*c.B[1])
		c.Lorentz[s][1] = qm * (c.E[1] + uNew[s][2]*c.B[0] - uNew[s][0]*c.B[2])
		c.Lorentz[s][2] = qm * (c.E[2] + uNew[s][0]*c.B[1] - uNew[s][1]*c.B[0])
	}

	// Velocity-space advection under the Lorentz force
	for s := 0; s < len(c.F); s++ {
		qm := up.Plasma.Charge[s] / (up.Plasma.Mass[s] * up.Plasma.LarmorRadius)
		shiftAndShear(up.Grids[s], c.F[s], c.Lorentz[s], qm*c.B[0]*dt, dt)
	}
}

/*
	emCoupling solves the semi-implicit field/velocity system

		E' + (dt/lD^2) * sum_s q_s n_s U'_s = E
		U'_s - dt*(q_s/m_s/rL) * (E' + U'_s x B) = U_s

	for the nine unknowns (E', U'_1, U'_2), with B held at its current
	value so the system stays linear.
*/
func (up *Updater) emCoupling(c *Cell, dt float64) (eNew [3]float64, uNew [2][3]float64, ok bool) {
	var (
		pc  = up.Plasma
		lD2 = pc.DebyeLength * pc.DebyeLength
		A   = mat.NewDense(9, 9, nil)
		b   = mat.NewVecDense(9, nil)
	)
	for s := 0; s < 2; s++ {
		nDens := c.Prim[s][0] / pc.Mass[s]
		for k := 0; k < 3; k++ {
			A.Set(k, k, 1)
			A.Set(k, 3+3*s+k, dt*pc.Charge[s]*nDens/lD2)
		}
	}
	for k := 0; k < 3; k++ {
		b.SetVec(k, c.E[k])
	}
	for s := 0; s < 2; s++ {
		var (
			qm  = pc.Charge[s] / (pc.Mass[s] * pc.LarmorRadius)
			row = 3 + 3*s
			u   = [3]float64{c.Prim[s][1], c.Prim[s][2], c.Prim[s][3]}
		)
		for k := 0; k < 3; k++ {
			A.Set(row+k, row+k, A.At(row+k, row+k)+1)
			A.Set(row+k, k, -dt*qm)
			b.SetVec(row+k, u[k])
		}
		// -dt*qm*(U' x B) terms, linear in U'
		A.Set(row+0, row+1, A.At(row+0, row+1)-dt*qm*c.B[2])
		A.Set(row+0, row+2, A.At(row+0, row+2)+dt*qm*c.B[1])
		A.Set(row+1, row+2, A.At(row+1, row+2)-dt*qm*c.B[0])
		A.Set(row+1, row+0, A.At(row+1, row+0)+dt*qm*c.B[2])
		A.Set(row+2, row+0, A.At(row+2, row+0)-dt*qm*c.B[1])
		A.Set(row+2, row+1, A.At(row+2, row+1)+dt*qm*c.B[0])
	}
	var x mat.VecDense
	if err := x.SolveVec(A, b); err != nil {
		return
	}
	for k := 0; k < 3; k++ {
		eNew[k] = x.AtVec(k)
		uNew[0][k] = x.AtVec(3 + k)
		uNew[1][k] = x.AtVec(6 + k)
	}
	ok = true
	return
}

/*
	shiftAndShear applies the free-streaming velocity-space advection of a
	reduced 1D3V distribution set under acceleration a: a linear-
	interpolation shift of every pdf along the resolved u axis, then the
	exact transverse-moment shear

		H1 -> H1 + b*H0, H2 -> H2 + c*H0,
		H3 -> H3 + 2b*H1 + 2c*H2 + (b^2+c^2)*H0

	followed by the magnetic rotation of the transverse moment pair through
	theta, the gyration angle over the step.
*/
func shiftAndShear(g *DV.Grid, F *PDFSet, accel [3]float64, theta, dt float64) {
	S := velocityShift(g, accel[0]*dt)
	for _, buf := range F.Buffers() {
		shifted := utils.NewMatrix(g.Nu, g.Nv*g.Nw)
		shifted.M.Mul(S, buf.M)
		copy(buf.DataP, shifted.DataP)
	}
	if F.Model != Plasma4F {
		return
	}
	var (
		bShift = accel[1] * dt
		cShift = accel[2] * dt
		h0     = F.H0.DataP
		h1     = F.H1.DataP
		h2     = F.H2.DataP
		h3     = F.H3.DataP
	)
	for i := range h0 {
		h3[i] += 2.*bShift*h1[i] + 2.*cShift*h2[i] + (bShift*bShift+cShift*cShift)*h0[i]
		h1[i] += bShift * h0[i]
		h2[i] += cShift * h0[i]
	}
	// Magnetic rotation of the transverse plane about the resolved axis
	sin, cos := math.Sin(theta), math.Cos(theta)
	for i := range h1 {
		v1 := cos*h1[i] + sin*h2[i]
		h2[i] = -sin*h1[i] + cos*h2[i]
		h1[i] = v1
	}
}

// velocityShift builds the sparse linear-interpolation operator for
// f_new(u) = f_old(u - s) on a uniform axis; mass leaving the grid is
// dropped.
func velocityShift(g *DV.Grid, s float64) *sparse.CSR {
	var (
		dok  = sparse.NewDOK(g.Nu, g.Nu)
		du   = g.Du[0]
		off  = s / du
		i0   = int(math.Floor(off))
		frac = off - math.Floor(off)
	)
	for i := 0; i < g.Nu; i++ {
		lo, hi := i-i0-1, i-i0
		if hi >= 0 && hi < g.Nu {
			dok.Set(i, hi, 1.-frac)
		}
		if lo >= 0 && lo < g.Nu {
			dok.Set(i, lo, frac)
		}
	}
	return dok.ToCSR()
}

func fieldNaN(c *Cell) bool {
	for k := 0; k < 3; k++ {
		if math.IsNaN(c.E[k]) || math.IsNaN(c.B[k]) {
			return true
		}
	}
	return math.IsNaN(c.Phi) || math.IsNaN(c.Psi)
}
