package kinetic

import (
	"fmt"
	"math"
)

/*
	Model tags the distribution-function arity of a solver variant. Dispatch
	on the tag is resolved at construction time, never by inspecting array
	shapes at runtime.
*/
type Model uint8

const (
	M1F      Model = iota // single pdf, monatomic
	R2F                   // reduced pair (H,B), internal energy folded into B
	Rykov3F               // reduced triple (H,B,R), rotational relaxation
	Plasma4F              // reduced quadruple (H0..H3), 1D3V plasma closure
)

func (m Model) String() string {
	return []string{"1F", "2F", "rykov", "plasma"}[int(m)]
}

func NewModel(name string) (m Model, err error) {
	switch name {
	case "1F":
		m = M1F
	case "2F":
		m = R2F
	case "rykov":
		m = Rykov3F
	case "plasma":
		m = Plasma4F
	default:
		err = fmt.Errorf("unknown distribution model: %s", name)
	}
	return
}

type Collision uint8

const (
	BGK Collision = iota
	Shakhov
	Rykov
)

func (c Collision) String() string {
	return []string{"bgk", "shakhov", "rykov"}[int(c)]
}

func NewCollision(name string) (c Collision, err error) {
	switch name {
	case "bgk":
		c = BGK
	case "shakhov":
		c = Shakhov
	case "rykov":
		c = Rykov
	default:
		err = fmt.Errorf("unknown collision model: %s", name)
	}
	return
}

// Gas carries the material constants of one species.
type Gas struct {
	Gamma float64
	K     float64 // internal degrees of freedom folded into the B pdf
	Kr    float64 // rotational degrees of freedom (Rykov)
	Pr    float64
	Kn    float64
	MuRef float64
	Alpha float64 // VHS scattering exponent
	Omega float64 // VHS temperature exponent
	// Rykov rotational relaxation constants
	T0, Z0 float64 // reference temperature and collision number
	Sigma  float64 // translational heat flux relaxation parameter
	W0, W1 float64 // rotational heat flux coefficients
}

// NewGas fills in Gamma and MuRef from the dimensionality, internal DOF,
// Knudsen number and VHS constants.
func NewGas(dim int, K, kn, pr, alpha, omega float64) (gas *Gas) {
	gas = &Gas{
		Gamma: HeatCapacityRatio(K, dim),
		K:     K,
		Pr:    pr,
		Kn:    kn,
		Alpha: alpha,
		Omega: omega,
	}
	gas.MuRef = RefVHSViscosity(kn, alpha, omega)
	return
}

// HeatCapacityRatio gives gamma for K internal degrees of freedom on a
// D-dimensional velocity grid: (K+D+2)/(K+D).
func HeatCapacityRatio(K float64, D int) float64 {
	return (K + float64(D) + 2.) / (K + float64(D))
}

/*
	Primitive state is (density, bulk velocity components, lambda) where
	lambda = m/2kT is the inverse-temperature parameter. Conserved state is
	(mass, momentum components, total energy). Lengths 3, 4 and 5 cover the
	1D/2D/3D single-species variants.
*/
func PrimToConserved(prim []float64, gamma float64) (w []float64) {
	var (
		n   = len(prim)
		rho = prim[0]
		lam = prim[n-1]
		q2  float64
	)
	w = make([]float64, n)
	w[0] = rho
	for i := 1; i < n-1; i++ {
		w[i] = rho * prim[i]
		q2 += prim[i] * prim[i]
	}
	w[n-1] = 0.5*rho/lam/(gamma-1.) + 0.5*rho*q2
	return
}

func ConservedToPrim(w []float64, gamma float64) (prim []float64) {
	var (
		n   = len(w)
		rho = w[0]
		q2  float64
	)
	prim = make([]float64, n)
	prim[0] = rho
	for i := 1; i < n-1; i++ {
		prim[i] = w[i] / rho
		q2 += w[i] * w[i]
	}
	prim[n-1] = 0.5 * rho / (gamma - 1.) / (w[n-1] - 0.5*q2/rho)
	return
}

/*
	Rykov variant: conserved = (mass, momentum, total energy, rotational
	energy), primitive = (density, velocity, equilibrium lambda, rotational
	lambda). The translational lambda is derived on demand.
*/
func RykovPrimToConserved(prim []float64, Kr float64) (w []float64) {
	var (
		rho, u   = prim[0], prim[1]
		lam, lar = prim[2], prim[3]
	)
	w = make([]float64, 4)
	w[0] = rho
	w[1] = rho * u
	w[3] = Kr * rho / (4. * lar)
	w[2] = 0.5*rho*u*u + (3.+Kr)*rho/(4.*lam)
	return
}

func RykovConservedToPrim(w []float64, Kr float64) (prim []float64) {
	var (
		rho = w[0]
		u   = w[1] / rho
	)
	prim = make([]float64, 4)
	prim[0] = rho
	prim[1] = u
	prim[2] = (3. + Kr) * rho / (4. * (w[2] - 0.5*rho*u*u))
	prim[3] = Kr * rho / (4. * w[3])
	return
}

// RykovLambdaT is the translational inverse temperature implied by a Rykov
// primitive state, from the total energy net of rotational energy.
func RykovLambdaT(prim []float64, Kr float64) float64 {
	var (
		rho, u   = prim[0], prim[1]
		lam, lar = prim[2], prim[3]
		etot     = 0.5*rho*u*u + (3.+Kr)*rho/(4.*lam)
		erot     = Kr * rho / (4. * lar)
	)
	return 3. * rho / (4. * (etot - erot - 0.5*rho*u*u))
}

// PrimValid reports whether the temperature parameter(s) of a primitive
// state are physical.
func PrimValid(model Model, prim []float64) bool {
	if prim[0] <= 0 || math.IsNaN(prim[0]) {
		return false
	}
	switch model {
	case Rykov3F:
		return prim[2] > 0 && prim[3] > 0
	default:
		lam := prim[len(prim)-1]
		return lam > 0 && !math.IsNaN(lam)
	}
}
