package DV

import (
	"fmt"
)

type QuadRule uint8

const (
	Rectangle QuadRule = iota
	Newton
	Gauss
)

func (qr QuadRule) String() string {
	return []string{"rectangle", "newton", "gauss"}[int(qr)]
}

func NewQuadRule(name string) (qr QuadRule, err error) {
	switch name {
	case "rectangle":
		qr = Rectangle
	case "newton":
		qr = Newton
	case "gauss":
		err = fmt.Errorf("unsupported quadrature: %s", name)
	default:
		err = fmt.Errorf("invalid quadrature rule: %s", name)
	}
	return
}

/*
	Newton-Cotes composite rule coefficients, a 5-point repeating pattern
	{14/45, 64/45, 24/45, 64/45, 28/45} indexed by 1-based node position
	modulo 4, with the two endpoints corrected to 14/45
*/
func newtonCotes(idx, num int) (nc float64) {
	if idx == 1 || idx == num {
		nc = 14. / 45.
		return
	}
	switch (((idx - 5) % 4) + 4) % 4 {
	case 0:
		nc = 28. / 45.
	case 1:
		nc = 64. / 45.
	case 2:
		nc = 24. / 45.
	case 3:
		nc = 64. / 45.
	}
	return
}

// Axis builds node centers, cell widths and quadrature weights over
// [umin,umax] with num interior nodes, plus ghost extra nodes beyond each
// bound for boundary stencils.
func Axis(umin, umax float64, num, ghost int, rule QuadRule) (centers, widths, weights []float64, err error) {
	var (
		nTot = num + 2*ghost
		du   = (umax - umin) / float64(num)
	)
	if num < 2 {
		err = fmt.Errorf("invalid velocity axis: need at least 2 nodes, have %d", num)
		return
	}
	centers = make([]float64, nTot)
	widths = make([]float64, nTot)
	weights = make([]float64, nTot)
	switch rule {
	case Rectangle:
		// Uniform node centers at half-cell offsets, weight equals width
		for i := 0; i < nTot; i++ {
			centers[i] = umin + (float64(i-ghost)+0.5)*du
			widths[i] = du
			weights[i] = du
		}
	case Newton:
		// The composite pattern closes only on whole 4-cell panels
		if (num-1)%4 != 0 {
			err = fmt.Errorf("newton-cotes quadrature needs 4k+1 nodes, have %d", num)
			return
		}
		// Node centers on the interval ends inclusive
		dn := (umax - umin) / float64(num-1)
		for i := 0; i < nTot; i++ {
			centers[i] = umin + float64(i-ghost)*dn
			widths[i] = dn
			weights[i] = dn * newtonCotes(i-ghost+1, num)
		}
	case Gauss:
		err = fmt.Errorf("unsupported quadrature: %s", rule)
	default:
		err = fmt.Errorf("invalid quadrature rule: %v", rule)
	}
	return
}
