/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gokinetic/InputParameters"
	"github.com/notargets/gokinetic/model_problems/Cavity2D"
)

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional lid-driven cavity solver",
	Long:  `Two dimensional lid-driven cavity with BGK or Shakhov relaxation`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			icFile, _ = cmd.Flags().GetString("inputConditionsFile")
			procs, _  = cmd.Flags().GetInt("procLimit")
			prof, _   = cmd.Flags().GetBool("profile")
		)
		if prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		ip := processInput(icFile)
		if procs <= 0 {
			procs = runtime.NumCPU()
		}
		c, err := Cavity2D.NewCavity(ip, procs)
		if err != nil {
			fmt.Printf("error: %s\n", err)
			return
		}
		c.Solve()
	},
}

func processInput(icFile string) (ip *InputParameters.InputParameters) {
	ip = &InputParameters.InputParameters{
		Title:          "Lid-Driven Cavity",
		CFL:            0.5,
		FinalTime:      10,
		MaxIterations:  100000,
		Quadrature:     "rectangle",
		CollisionModel: "bgk",
		Model:          "2F",
		Knudsen:        0.075,
		Prandtl:        2. / 3.,
		InternalDOF:    1,
		Omega:          0.81,
		Alpha:          1.0,
		Nx:             45,
		Ny:             45,
		NVel:           28,
		VelocityMax:    5,
		LidVelocity:    0.15,
	}
	if len(icFile) == 0 {
		fmt.Printf("using built-in cavity input parameters; supply -I to override\n")
		return
	}
	data, err := os.ReadFile(icFile)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error parsing input parameters: %s\n", err)
		os.Exit(1)
	}
	ip.Print()
	return
}

func init() {
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input parameters file")
	TwoDCmd.Flags().IntP("procLimit", "p", 0, "number of go routines (0 = NumCPU)")
	TwoDCmd.Flags().Bool("profile", false, "write a CPU profile")
}
