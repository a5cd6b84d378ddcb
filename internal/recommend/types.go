// Package recommend runs the full ranking pass: metric snapshots, health
// and match scoring, reason synthesis, and priority-aware ranking.
package recommend

import (
	"github.com/blackwell-systems/reporadar/internal/catalog"
	"github.com/blackwell-systems/reporadar/internal/opendigger"
	"github.com/blackwell-systems/reporadar/internal/scoring"
)

// Recommendation is the derived result for one catalogued project.
// It lives for a single ranking pass; persistence is the caller's concern.
type Recommendation struct {
	Project       catalog.Project           `json:"project"`
	MatchScore    float64                   `json:"match_score"`
	HealthScore   float64                   `json:"health_score"`
	CombinedScore float64                   `json:"combined_score"`
	Breakdown     scoring.Breakdown         `json:"breakdown"`
	Reason        string                    `json:"reason"`
	IsPriority    bool                      `json:"is_priority"`
	Metrics       opendigger.MetricSnapshot `json:"metrics,omitempty"`
}

// Options tunes the combined-score blend and the priority boost.
type Options struct {
	// MatchWeight and HealthWeight blend the two scores into the
	// combined score.
	MatchWeight  float64
	HealthWeight float64

	// BoostThreshold and BoostAmount implement the priority
	// compensation: priority projects whose match score falls below the
	// threshold gain the flat boost so they are not buried.
	BoostThreshold float64
	BoostAmount    float64
}

// DefaultOptions returns the standard 0.7/0.3 blend with the sub-60
// priority boost of +20.
func DefaultOptions() Options {
	return Options{
		MatchWeight:    0.7,
		HealthWeight:   0.3,
		BoostThreshold: 60,
		BoostAmount:    20,
	}
}
