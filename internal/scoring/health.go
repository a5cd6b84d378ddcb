package scoring

import (
	"math"

	"github.com/blackwell-systems/reporadar/internal/opendigger"
)

// HealthScore derives a 0-100 project health score from a metric
// snapshot. Each signal is capped before summing so no single signal can
// dominate:
//
//   - activity:               min(value, 100) * 0.4   (up to 40)
//   - contributor base:       min(value / 10, 15)     (up to 15)
//   - new-contributor ratio:  min(ratio * 100, 15)    (up to 15)
//   - openrank influence:     min(value, 30)          (up to 30)
//
// Missing metrics count as zero. The result is clamped to [0, 100] so
// malformed upstream data (negative values included) cannot leak out of
// range. Pure function, no I/O.
func HealthScore(snapshot opendigger.MetricSnapshot) float64 {
	score := 0.0

	activity := snapshot[opendigger.MetricActivity].Value
	score += math.Min(activity, 100) * 0.4

	contributors := snapshot[opendigger.MetricContributors].Value
	newContributors := snapshot[opendigger.MetricNewContributors].Value

	score += math.Min(contributors/10, 15)
	if contributors > 0 {
		newRatio := newContributors / contributors
		score += math.Min(newRatio*100, 15)
	}

	openrank := snapshot[opendigger.MetricOpenRank].Value
	score += math.Min(openrank, 30)

	return math.Max(0, math.Min(score, 100))
}
