package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	girder "Plateworks/internal/calc/girder"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type GirderImportResult struct {
	Count   int             `json:"count"`
	Results []girder.Result `json:"results"`
}

// Girder evaluates one girder per spreadsheet row. Rows that do not parse or
// do not compute are skipped, the rest are returned in order.
func (h *Handler) Girder(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []girder.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseGirderRow(rows[i])
		if err != nil {
			continue
		}
		res, err := girder.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GirderImportResult{Count: len(results), Results: results})
}

// expected columns: grade, span_m, moment_knm, shear_kn, depth, flange_w,
// flange_t, web_t, bearing, spacing(optional), deflection limit(optional)
func parseGirderRow(row []string) (girder.Input, error) {
	if len(row) < 9 {
		return girder.Input{}, fmt.Errorf("bad row")
	}
	grade := row[0]
	vals := make([]float64, 8)
	for i := 0; i < 8; i++ {
		v, err := toFloat(row[i+1])
		if err != nil {
			return girder.Input{}, err
		}
		vals[i] = v
	}
	in := girder.Input{
		Grade:           grade,
		SpanM:           vals[0],
		MomentKNM:       vals[1],
		ShearKN:         vals[2],
		DepthMM:         vals[3],
		TopFlangeWMM:    vals[4],
		TopFlangeThkMM:  vals[5],
		BotFlangeWMM:    vals[4],
		BotFlangeThkMM:  vals[5],
		WebThkMM:        vals[6],
		BearingLengthMM: vals[7],
	}
	if len(row) > 9 && row[9] != "" {
		spacing, _ := toFloat(row[9])
		if spacing > 0 {
			in.StiffSpacingMM = spacing
			in.WebPhilosophy = girder.ThinWeb
		}
	}
	if len(row) > 10 && row[10] != "" {
		in.DeflectionLimit, _ = toFloat(row[10])
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
