package usecase

import "smeta_admin/internal/domain/entities"

// EstimateTotal derives the estimate's running total: the sum of each item's
// backend-owned total, with a missing total counted as zero. Pure function,
// recomputed on every snapshot so it can never drift from the item list. The
// estimate's currency is a display label only; no conversion happens here.
func EstimateTotal(items []entities.EstimateItem) float64 {
	var sum float64
	for _, it := range items {
		if it.Total != nil {
			sum += it.Total.Float64()
		}
	}
	return sum
}
