package batch

import (
	"fmt"

	girder "Plateworks/internal/calc/girder"
)

type GirderBatchInput struct {
	Items []girder.Input `json:"items"`
}

type GirderBatchResult struct {
	Results []girder.Result `json:"results"`
}

// CalculateGirder checks every submitted section. Logging stays quiet: a
// batch of hundreds of candidates must not flood the journal.
func CalculateGirder(in GirderBatchInput) (GirderBatchResult, error) {
	if len(in.Items) == 0 {
		return GirderBatchResult{}, fmt.Errorf("no items")
	}
	out := GirderBatchResult{Results: make([]girder.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := girder.CalculateSilent(item)
		if err != nil {
			return GirderBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
