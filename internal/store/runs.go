package store

import (
	"database/sql"
	"sort"
	"time"
)

// CreateRun inserts a new run and returns its ID.
func (db *DB) CreateRun(username string, topN int, version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO runs (taken_at, username, top_n, version) VALUES (?, ?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), username, topN, version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLatestRun returns the most recent run, or nil if none exist.
func (db *DB) GetLatestRun() (*Run, error) {
	row := db.conn.QueryRow("SELECT id, taken_at, username, top_n, version FROM runs ORDER BY id DESC LIMIT 1")
	return scanRun(row)
}

// GetRunN returns the Nth most recent run (1 = latest, 2 = previous, etc.).
func (db *DB) GetRunN(n int) (*Run, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, username, top_n, version FROM runs ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanRun(row)
}

// ListRuns returns up to limit runs, most recent first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.conn.Query(
		"SELECT id, taken_at, username, top_n, version FROM runs ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var takenAt string
		if err := rows.Scan(&r.ID, &takenAt, &r.Username, &r.TopN, &r.Version); err != nil {
			return nil, err
		}
		r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func scanRun(row *sql.Row) (*Run, error) {
	var r Run
	var takenAt string
	err := row.Scan(&r.ID, &takenAt, &r.Username, &r.TopN, &r.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &r, nil
}

// InsertRecommendation inserts a recommendation row for a run.
func (db *DB) InsertRecommendation(rec *RecommendationRow) error {
	_, err := db.conn.Exec(
		`INSERT INTO recommendations
		(run_id, project, match_score, health_score, combined_score, is_priority, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Project, rec.MatchScore, rec.HealthScore,
		rec.CombinedScore, rec.IsPriority, rec.Reason,
	)
	return err
}

// GetRecommendations returns all recommendations for a run, best first.
func (db *DB) GetRecommendations(runID int64) ([]RecommendationRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, run_id, project, match_score, health_score, combined_score, is_priority, reason
		 FROM recommendations WHERE run_id = ? ORDER BY combined_score DESC`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var recs []RecommendationRow
	for rows.Next() {
		var rec RecommendationRow
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Project, &rec.MatchScore,
			&rec.HealthScore, &rec.CombinedScore, &rec.IsPriority, &rec.Reason); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// DiffRuns compares the combined scores of two runs per project.
// Projects present in only one run are omitted.
func (db *DB) DiffRuns(previous, current *Run) (*RunDiff, error) {
	prevRecs, err := db.GetRecommendations(previous.ID)
	if err != nil {
		return nil, err
	}
	currRecs, err := db.GetRecommendations(current.ID)
	if err != nil {
		return nil, err
	}

	prevByProject := make(map[string]float64, len(prevRecs))
	for _, rec := range prevRecs {
		prevByProject[rec.Project] = rec.CombinedScore
	}

	diff := &RunDiff{Previous: previous, Current: current}
	for _, rec := range currRecs {
		prev, ok := prevByProject[rec.Project]
		if !ok {
			continue
		}
		delta := rec.CombinedScore - prev
		direction := "unchanged"
		if delta > 0 {
			direction = "improved"
		} else if delta < 0 {
			direction = "regressed"
		}
		diff.Deltas = append(diff.Deltas, ScoreDelta{
			Project:   rec.Project,
			Previous:  prev,
			Current:   rec.CombinedScore,
			Delta:     delta,
			Direction: direction,
		})
	}

	sort.Slice(diff.Deltas, func(i, j int) bool {
		return diff.Deltas[i].Project < diff.Deltas[j].Project
	})
	return diff, nil
}
