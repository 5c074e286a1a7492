package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title          string  `yaml:"Title"`
	CFL            float64 `yaml:"CFL"`
	FinalTime      float64 `yaml:"FinalTime"`
	MaxIterations  int     `yaml:"MaxIterations"`
	Quadrature     string  `yaml:"Quadrature"`     // rectangle or newton
	CollisionModel string  `yaml:"CollisionModel"` // bgk, shakhov or rykov
	Model          string  `yaml:"Model"`          // 1F, 2F, rykov or plasma
	Knudsen        float64 `yaml:"Knudsen"`
	Prandtl        float64 `yaml:"Prandtl"`
	InternalDOF    float64 `yaml:"InternalDOF"`
	Omega          float64 `yaml:"Omega"` // VHS temperature exponent
	Alpha          float64 `yaml:"Alpha"` // VHS scattering exponent
	// Physical mesh
	Nx int `yaml:"Nx"`
	Ny int `yaml:"Ny"`
	// Velocity mesh
	NVel        int     `yaml:"NVel"`
	VelocityMax float64 `yaml:"VelocityMax"`
	// Cavity problem
	LidVelocity float64 `yaml:"LidVelocity"`
	// Rykov constants
	RykovT0    float64 `yaml:"RykovT0"`
	RykovZ0    float64 `yaml:"RykovZ0"`
	RykovSigma float64 `yaml:"RykovSigma"`
	RykovW0    float64 `yaml:"RykovW0"`
	RykovW1    float64 `yaml:"RykovW1"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%s]\t\t\t= Quadrature\n", ip.Quadrature)
	fmt.Printf("[%s]\t\t\t= Collision Model\n", ip.CollisionModel)
	fmt.Printf("[%s]\t\t\t= Distribution Model\n", ip.Model)
	fmt.Printf("%8.5f\t\t= Knudsen Number\n", ip.Knudsen)
	fmt.Printf("%8.5f\t\t= Prandtl Number\n", ip.Prandtl)
}
