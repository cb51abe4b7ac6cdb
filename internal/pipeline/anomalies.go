package pipeline

import (
	"sort"

	"paylens/internal/model"
)

// AnomalyReport holds the percentile threshold and the records strictly
// above it.
type AnomalyReport struct {
	Percentile float64
	Threshold  float64
	Records    []model.Payment
}

// DetectAnomalies computes the given percentile of the amount column over
// the full cleaned ledger and returns every record whose amount strictly
// exceeds it. Records at exactly the threshold are not flagged.
func DetectAnomalies(led *Ledger, percentile float64) AnomalyReport {
	rep := AnomalyReport{Percentile: percentile}
	if len(led.Records) == 0 {
		return rep
	}

	amounts := make([]float64, len(led.Records))
	for i, p := range led.Records {
		amounts[i] = p.Amount
	}
	sort.Float64s(amounts)
	rep.Threshold = Percentile(amounts, percentile)

	for _, p := range led.Records {
		if p.Amount > rep.Threshold {
			rep.Records = append(rep.Records, p)
		}
	}
	return rep
}
