package opendigger

import "sort"

// Movement beyond these factors relative to the previous period counts
// as a trend. Exactly hitting a factor stays stable.
const (
	upFactor   = 1.1
	downFactor = 0.9
)

// classifyTrend compares the latest value against the previous period.
// The thresholds are strict: latest must exceed prev*1.1 to trend up and
// fall below prev*0.9 to trend down.
func classifyTrend(latest, prev float64) string {
	switch {
	case latest > prev*upFactor:
		return TrendUp
	case latest < prev*downFactor:
		return TrendDown
	default:
		return TrendStable
	}
}

// pointFromHistory condenses a period-indexed series into a MetricPoint.
// Periods are ordered lexicographically, which matches the dataset's
// YYYY-MM keys. Fewer than two periods yields a stable trend.
func pointFromHistory(history map[string]float64) (MetricPoint, bool) {
	if len(history) == 0 {
		return MetricPoint{}, false
	}

	periods := make([]string, 0, len(history))
	for p := range history {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	latest := periods[len(periods)-1]
	point := MetricPoint{
		Value:        history[latest],
		Trend:        TrendStable,
		LatestPeriod: latest,
	}

	if len(periods) >= 2 {
		prev := periods[len(periods)-2]
		point.Trend = classifyTrend(history[latest], history[prev])
	}
	return point, true
}
