// Package store provides SQLite persistence for reporadar's run history.
package store

import "time"

// Run represents one recorded recommendation pass.
type Run struct {
	ID       int64     `json:"id"`
	TakenAt  time.Time `json:"taken_at"`
	Username string    `json:"username"`
	TopN     int       `json:"top_n"`
	Version  string    `json:"version"`
}

// RecommendationRow is a recommendation as persisted within a run.
type RecommendationRow struct {
	ID            int64   `json:"id"`
	RunID         int64   `json:"run_id"`
	Project       string  `json:"project"`
	MatchScore    float64 `json:"match_score"`
	HealthScore   float64 `json:"health_score"`
	CombinedScore float64 `json:"combined_score"`
	IsPriority    bool    `json:"is_priority"`
	Reason        string  `json:"reason"`
}

// RunDiff represents the comparison between two runs.
type RunDiff struct {
	Previous *Run         `json:"previous"`
	Current  *Run         `json:"current"`
	Deltas   []ScoreDelta `json:"deltas"`
}

// ScoreDelta represents the change in one project's combined score
// between two runs.
type ScoreDelta struct {
	Project   string  `json:"project"`
	Previous  float64 `json:"previous"`
	Current   float64 `json:"current"`
	Delta     float64 `json:"delta"`
	Direction string  `json:"direction"` // "improved", "regressed", "unchanged"
}
