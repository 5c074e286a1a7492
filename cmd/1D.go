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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gokinetic/DV"
	"github.com/notargets/gokinetic/kinetic"
	"github.com/notargets/gokinetic/model_problems/Relax1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional shock structure solver",
	Long:  `One dimensional Sod shock structure with BGK or Shakhov relaxation`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			K, _         = cmd.Flags().GetInt("cells")
			nv, _        = cmd.Flags().GetInt("velocityNodes")
			CFL, _       = cmd.Flags().GetFloat64("CFL")
			finalTime, _ = cmd.Flags().GetFloat64("finalTime")
			kn, _        = cmd.Flags().GetFloat64("knudsen")
			modelS, _    = cmd.Flags().GetString("model")
			collS, _     = cmd.Flags().GetString("collision")
			quadS, _     = cmd.Flags().GetString("quadrature")
			prof, _      = cmd.Flags().GetBool("profile")
		)
		if prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		model, err := kinetic.NewModel(modelS)
		if err != nil {
			fmt.Printf("error: %s\n", err)
			return
		}
		coll, err := kinetic.NewCollision(collS)
		if err != nil {
			fmt.Printf("error: %s\n", err)
			return
		}
		rule, err := DV.NewQuadRule(quadS)
		if err != nil {
			fmt.Printf("error: %s\n", err)
			return
		}
		c, err := Relax1D.NewShock(CFL, finalTime, K, nv, kn, model, coll, rule)
		if err != nil {
			fmt.Printf("error: %s\n", err)
			return
		}
		c.Solve()
	},
}

func init() {
	OneDCmd.Flags().IntP("cells", "K", 200, "number of physical cells")
	OneDCmd.Flags().IntP("velocityNodes", "n", 64, "velocity nodes per axis")
	OneDCmd.Flags().Float64("CFL", 0.5, "CFL number")
	OneDCmd.Flags().Float64P("finalTime", "t", 0.15, "target end time")
	OneDCmd.Flags().Float64("knudsen", 1.e-3, "Knudsen number")
	OneDCmd.Flags().String("model", "2F", "distribution model: 1F or 2F")
	OneDCmd.Flags().String("collision", "bgk", "collision model: bgk or shakhov")
	OneDCmd.Flags().String("quadrature", "rectangle", "quadrature rule: rectangle or newton")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile")
}
