package main

import (
	"fmt"

	girder "Plateworks/internal/calc/girder"
	autodesign "Plateworks/internal/calc/premium/autodesign"

	"github.com/spf13/cobra"
)

var optIn autodesign.GirderAutoInput

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search for the lightest girder for a loading",
	Long: `Particle swarm search over flange, web and depth dimensions for the
lightest cross-section passing every check, snapped onto plate catalogs.

Example:
  plateworks optimize --grade E250 --span 10 --moment 1500 --shear 400 \
    --bearing 200 --symmetric`,
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	f := optimizeCmd.Flags()
	f.StringVar(&optIn.Grade, "grade", "E250", "steel grade (E250..E450)")
	f.Float64Var(&optIn.SpanM, "span", 0, "span (m) [required]")
	f.Float64Var(&optIn.MomentKNM, "moment", 0, "design moment (kNm) [required]")
	f.Float64Var(&optIn.ShearKN, "shear", 0, "design shear (kN) [required]")
	f.Float64Var(&optIn.BearingLengthMM, "bearing", 0, "stiff bearing length (mm)")
	f.StringVar(&optIn.Support, "support", girder.LaterallySupported, "lateral support condition")
	f.StringVar(&optIn.WebPhilosophy, "web", girder.ThickWeb, "web design philosophy")
	f.StringVar(&optIn.ShearMethod, "shear-method", girder.SimplePostCritical, "thin-web shear method")
	f.Float64Var(&optIn.DeflectionLimit, "defl-limit", 0, "deflection limit as span ratio (0 = NA)")
	f.BoolVar(&optIn.Symmetric, "symmetric", true, "force equal flanges")
	f.IntVar(&optIn.SwarmSize, "swarm", 0, "swarm size (0 = default)")
	f.IntVar(&optIn.MaxIter, "iters", 0, "iteration budget (0 = default)")
	f.Int64Var(&optIn.Seed, "seed", 0, "random seed")

	optimizeCmd.MarkFlagRequired("span")
	optimizeCmd.MarkFlagRequired("moment")
	optimizeCmd.MarkFlagRequired("shear")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	res, err := autodesign.Girder(optIn)
	if err != nil {
		return err
	}
	fmt.Printf("\nOptimized mass: %.0f kg over %.1f m (%d iterations)\n",
		res.MassKG, optIn.SpanM, res.Iterations)
	printResult(res.Result)
	if res.SpacingMM > 0 {
		fmt.Printf("  Stiffener spacing: %.0f mm, thickness %.0f mm\n\n", res.SpacingMM, res.StiffThkMM)
	}
	return nil
}
