package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	girder "Plateworks/internal/calc/girder"

	"github.com/spf13/cobra"
)

var checkIn girder.Input

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a plate girder cross-section",
	Long: `Run the full IS 800:2007 check suite for one cross-section:
classification, bending, shear, web bearing and buckling, stiffeners,
welds and deflection.

Example:
  plateworks check --grade E250 --span 10 --moment 1500 --shear 400 \
    --depth 1000 --flange-width 400 --flange-thk 25 --web-thk 16 --bearing 200`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	f := checkCmd.Flags()
	f.StringVar(&checkIn.Grade, "grade", "E250", "steel grade (E250..E450)")
	f.Float64Var(&checkIn.SpanM, "span", 0, "span (m) [required]")
	f.Float64Var(&checkIn.MomentKNM, "moment", 0, "design moment (kNm) [required]")
	f.Float64Var(&checkIn.ShearKN, "shear", 0, "design shear (kN) [required]")
	f.Float64Var(&checkIn.DepthMM, "depth", 0, "overall depth (mm) [required]")
	f.Float64Var(&checkIn.TopFlangeWMM, "flange-width", 0, "top flange width (mm) [required]")
	f.Float64Var(&checkIn.TopFlangeThkMM, "flange-thk", 0, "top flange thickness (mm) [required]")
	f.Float64Var(&checkIn.BotFlangeWMM, "bot-flange-width", 0, "bottom flange width (mm, defaults to top)")
	f.Float64Var(&checkIn.BotFlangeThkMM, "bot-flange-thk", 0, "bottom flange thickness (mm, defaults to top)")
	f.Float64Var(&checkIn.WebThkMM, "web-thk", 0, "web thickness (mm) [required]")
	f.Float64Var(&checkIn.BearingLengthMM, "bearing", 0, "stiff bearing length (mm)")
	f.StringVar(&checkIn.Support, "support", girder.LaterallySupported, "lateral support condition")
	f.StringVar(&checkIn.WebPhilosophy, "web", girder.ThickWeb, "web design philosophy")
	f.StringVar(&checkIn.ShearMethod, "shear-method", girder.SimplePostCritical, "thin-web shear method")
	f.Float64Var(&checkIn.StiffSpacingMM, "spacing", 0, "transverse stiffener spacing (mm, 0 = none)")
	f.Float64Var(&checkIn.DeflectionLimit, "defl-limit", 0, "deflection limit as span ratio (0 = NA)")

	checkCmd.MarkFlagRequired("span")
	checkCmd.MarkFlagRequired("moment")
	checkCmd.MarkFlagRequired("shear")
	checkCmd.MarkFlagRequired("depth")
	checkCmd.MarkFlagRequired("flange-width")
	checkCmd.MarkFlagRequired("flange-thk")
	checkCmd.MarkFlagRequired("web-thk")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkIn.BotFlangeWMM == 0 {
		checkIn.BotFlangeWMM = checkIn.TopFlangeWMM
	}
	if checkIn.BotFlangeThkMM == 0 {
		checkIn.BotFlangeThkMM = checkIn.TopFlangeThkMM
	}
	res, err := girder.CalculateSilent(checkIn)
	if err != nil {
		return err
	}
	printResult(res)
	return nil
}

func printResult(res girder.Result) {
	verdict := "SAFE"
	if !res.OK {
		verdict = "UNSAFE"
	}
	fmt.Printf("\nSection %s  [%s]  ->  %s\n\n", res.Designation, res.Class, verdict)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bending ratio:\t%.3f\t(Md = %.1f kNm)\n", res.MomentRatio, res.MomentCapacityKNM)
	fmt.Fprintf(w, "  Shear ratio:\t%.3f\t(Vd = %.1f kN)\n", res.ShearRatio, res.ShearCapacityKN)
	fmt.Fprintf(w, "  Web buckling ratio:\t%.3f\t\n", res.WebBucklingRatio)
	fmt.Fprintf(w, "  End stiffener ratio:\t%.3f\t\n", res.EndShearRatio)
	fmt.Fprintf(w, "  Deflection ratio:\t%.3f\t\n", res.DeflectionRatio)
	fmt.Fprintf(w, "  End stiffeners:\t2 x %.0f x %.0f mm\t\n", res.EndStiffWidthMM, res.EndStiffThkMM)
	fmt.Fprintf(w, "  Welds:\tweb-flange %.0f mm, stiffener %.0f mm\t\n", res.WeldWebFlangeMM, res.WeldStiffenerMM)
	w.Flush()
	if res.Notes != "" {
		fmt.Printf("\n  Conditions: %s\n", res.Notes)
	}
	fmt.Println()
}
