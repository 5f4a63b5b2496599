package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	girder "Plateworks/internal/calc/girder"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`

	Design girder.Input `json:"design"`
}

type Handler struct{}

// Generate runs the full check suite for the submitted girder and renders the
// verdict, the governing ratios and the detailing as a PDF calculation sheet.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Plate Girder Design Report"
	}
	res, err := girder.Calculate(input.Design)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Section %s (%s), grade %s", res.Designation, res.Class, input.Design.Grade))
	pdf.Ln(8)
	verdict := "SAFE"
	if !res.OK {
		verdict = "UNSAFE"
	}
	pdf.Cell(0, 8, fmt.Sprintf("Verdict: %s (utilization %.3f)", verdict, res.UtilizationRatio))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Check", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Ratio", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Capacity", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	row := func(name string, ratio float64, capacity string) {
		pdf.CellFormat(90, 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.3f", ratio), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, capacity, "1", 1, "R", false, 0, "")
	}
	row("Bending", res.MomentRatio, fmt.Sprintf("%.1f kNm", res.MomentCapacityKNM))
	row("Shear", res.ShearRatio, fmt.Sprintf("%.1f kN", res.ShearCapacityKN))
	row("Web buckling", res.WebBucklingRatio, "-")
	row("End stiffener", res.EndShearRatio, "-")
	row("Deflection", res.DeflectionRatio, "-")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("End stiffeners: 2 x %.0f x %.0f mm", res.EndStiffWidthMM, res.EndStiffThkMM))
	pdf.Ln(6)
	if res.StiffSpacingMM > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Intermediate stiffeners: %.0f mm thick at %.0f mm spacing", res.IntStiffThkMM, res.StiffSpacingMM))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Welds: web-flange %.0f mm, stiffener %.0f mm fillets", res.WeldWebFlangeMM, res.WeldStiffenerMM))
	pdf.Ln(6)
	if res.Notes != "" {
		pdf.MultiCell(0, 6, "Conditions: "+res.Notes, "", "L", false)
	}
	if input.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"girder-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
