package flight

import (
	"math"
	"sort"
)

const (
	priceWeight    = 0.45
	durationWeight = 0.35
	stopsWeight    = 0.20
)

// SortValid reports whether by is a known sort key.
func SortValid(by string) bool {
	switch by {
	case "price", "duration", "departure_time", "arrival_time", "best_value":
		return true
	}
	return false
}

// ApplySorting returns a sorted copy; the input slice is left as is.
func ApplySorting(flights []Direction, sortOpt SortOptions) []Direction {
	sorted := make([]Direction, len(flights))
	copy(sorted, flights)
	if len(sorted) <= 1 {
		return sorted
	}

	desc := sortOpt.Order == "desc"

	// Stable sort so equal offers keep supplier order between requests
	switch sortOpt.By {
	case "price":
		sort.SliceStable(sorted, func(i, j int) bool {
			return less(sorted[i].Price(), sorted[j].Price(), desc)
		})
	case "duration":
		sort.SliceStable(sorted, func(i, j int) bool {
			return less(float64(sorted[i].TotalDuration()), float64(sorted[j].TotalDuration()), desc)
		})
	case "departure_time":
		sort.SliceStable(sorted, func(i, j int) bool {
			return less(float64(sorted[i].DepartureTime().Unix()), float64(sorted[j].DepartureTime().Unix()), desc)
		})
	case "arrival_time":
		sort.SliceStable(sorted, func(i, j int) bool {
			return less(float64(sorted[i].ArrivalTime().Unix()), float64(sorted[j].ArrivalTime().Unix()), desc)
		})
	case "best_value":
		calculateBestValueScores(sorted)
		// higher score is better, so the natural order is descending
		sort.SliceStable(sorted, func(i, j int) bool {
			return less(*sorted[i].BestValueScore, *sorted[j].BestValueScore, !desc)
		})
	}

	return sorted
}

func less(a, b float64, desc bool) bool {
	if desc {
		return a > b
	}
	return a < b
}

func calculateBestValueScores(flights []Direction) {
	minPrice, maxPrice := math.MaxFloat64, 0.0
	minDuration, maxDuration := math.MaxInt, 0
	minStops, maxStops := math.MaxInt, 0

	for _, f := range flights {
		minPrice = math.Min(minPrice, f.Price())
		maxPrice = math.Max(maxPrice, f.Price())
		minDuration = min(minDuration, f.TotalDuration())
		maxDuration = max(maxDuration, f.TotalDuration())
		minStops = min(minStops, f.Stops())
		maxStops = max(maxStops, f.Stops())
	}

	for i := range flights {
		normPrice := normalize(flights[i].Price(), minPrice, maxPrice)
		normDuration := normalize(float64(flights[i].TotalDuration()), float64(minDuration), float64(maxDuration))
		normStops := normalize(float64(flights[i].Stops()), float64(minStops), float64(maxStops))

		score := (priceWeight * normPrice) + (durationWeight * normDuration) + (stopsWeight * normStops)
		flights[i].BestValueScore = &score
	}
}

func normalize(val, min, max float64) float64 {
	if max > min {
		// Invert so that Lower (Price/Duration) = Higher Score (1.0)
		return 1.0 - (val-min)/(max-min)
	}
	return 1.0
}
