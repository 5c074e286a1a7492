package kinetic

import (
	"github.com/notargets/gokinetic/DV"
	"github.com/notargets/gokinetic/utils"
)

/*
	PDFSet is the per-cell record of distribution functions. Each model
	variant owns independent named buffers, all shaped Nu x Nv*Nw to match
	the velocity grid, so velocity-space operators can act on them as
	matrices. Buffers that the model does not use stay empty.
*/
type PDFSet struct {
	Model Model
	// H is the primary pdf for 1F/2F/3F, B the folded internal-energy pdf,
	// R the rotational-energy pdf
	H, B, R utils.Matrix
	// Reduced multi-moment set for the 1D3V plasma closure
	H0, H1, H2, H3 utils.Matrix
}

func NewPDFSet(model Model, g *DV.Grid) (p *PDFSet) {
	var (
		nr = g.Nu
		nc = g.Nv * g.Nw
	)
	p = &PDFSet{Model: model}
	switch model {
	case M1F:
		p.H = utils.NewMatrix(nr, nc)
	case R2F:
		p.H = utils.NewMatrix(nr, nc)
		p.B = utils.NewMatrix(nr, nc)
	case Rykov3F:
		p.H = utils.NewMatrix(nr, nc)
		p.B = utils.NewMatrix(nr, nc)
		p.R = utils.NewMatrix(nr, nc)
	case Plasma4F:
		p.H0 = utils.NewMatrix(nr, nc)
		p.H1 = utils.NewMatrix(nr, nc)
		p.H2 = utils.NewMatrix(nr, nc)
		p.H3 = utils.NewMatrix(nr, nc)
	}
	return
}

// Buffers returns the active distribution functions in canonical order.
func (p *PDFSet) Buffers() []*utils.Matrix {
	switch p.Model {
	case M1F:
		return []*utils.Matrix{&p.H}
	case R2F:
		return []*utils.Matrix{&p.H, &p.B}
	case Rykov3F:
		return []*utils.Matrix{&p.H, &p.B, &p.R}
	case Plasma4F:
		return []*utils.Matrix{&p.H0, &p.H1, &p.H2, &p.H3}
	}
	return nil
}

func (p *PDFSet) Copy() (R *PDFSet) {
	R = &PDFSet{Model: p.Model}
	dst := R.Buffers()
	for i, b := range p.Buffers() {
		*dst[i] = b.Copy()
	}
	return
}
