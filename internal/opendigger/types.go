// Package opendigger fetches per-project time-series metrics from the
// OpenDigger dataset and condenses each series into a latest value with
// a trend classification.
package opendigger

// Trend classifications for a metric's most recent movement.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
	TrendError  = "error"
)

// Metric names fetched for every project.
const (
	MetricActivity        = "activity"
	MetricOpenRank        = "openrank"
	MetricContributors    = "contributors"
	MetricNewContributors = "new_contributors"
)

// Metrics lists the metric names in fetch order.
var Metrics = []string{
	MetricActivity,
	MetricOpenRank,
	MetricContributors,
	MetricNewContributors,
}

// MetricPoint is the condensed state of one metric series.
type MetricPoint struct {
	Value        float64 `json:"value"`
	Trend        string  `json:"trend"`
	LatestPeriod string  `json:"latest_period,omitempty"`
}

// MetricSnapshot maps metric names to their condensed points. A snapshot
// is a value object: replaced wholesale on refresh, never patched.
type MetricSnapshot map[string]MetricPoint

// ErrorPoint is the degraded point returned when a metric cannot be
// fetched. Callers must tolerate zero-valued metrics.
func ErrorPoint() MetricPoint {
	return MetricPoint{Value: 0, Trend: TrendError}
}
