package utils

import (
	"math"
)

// POW raises x to a small integer power by repeated multiplication, which
// the moment sums hit in their inner loops; math.Pow handles the rest.
func POW(x float64, p int) (y float64) {
	if p > 8 || p < -8 {
		return math.Pow(x, float64(p))
	}
	n := p
	if n < 0 {
		n = -n
	}
	y = 1
	v := x
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			y *= v
		}
		v *= v
	}
	if p < 0 {
		y = 1. / y
	}
	return
}
