package recommend

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/blackwell-systems/reporadar/internal/catalog"
	"github.com/blackwell-systems/reporadar/internal/opendigger"
	"github.com/blackwell-systems/reporadar/internal/scoring"
)

// MetricSource supplies metric snapshots per repository. Implemented by
// the opendigger client; substituted in tests.
type MetricSource interface {
	Snapshot(ctx context.Context, repo string) opendigger.MetricSnapshot
}

// Engine scores every catalogued project against a profile and ranks
// the results.
type Engine struct {
	catalog map[string]catalog.Project
	metrics MetricSource
	scorer  *scoring.Scorer
	opts    Options
	logger  *zap.Logger
}

// New creates an Engine over the given catalogue and metric source.
func New(projects map[string]catalog.Project, metrics MetricSource, scorer *scoring.Scorer, opts Options, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog: projects,
		metrics: metrics,
		scorer:  scorer,
		opts:    opts,
		logger:  logger,
	}
}

// Recommend runs one full ranking pass and returns at most topN ordered
// recommendations. A failing catalogue entry is logged and skipped; the
// pass always completes for the remaining projects.
func (e *Engine) Recommend(ctx context.Context, profile scoring.Profile, topN int) []Recommendation {
	ids := make([]string, 0, len(e.catalog))
	for id := range e.catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	recs := make([]Recommendation, 0, len(ids))
	for _, id := range ids {
		rec, ok := e.scoreProject(ctx, profile, e.catalog[id])
		if !ok {
			continue
		}
		recs = append(recs, rec)
	}

	e.logger.Debug("ranking pass complete",
		zap.Int("scored", len(recs)), zap.Int("top_n", topN))

	return Rank(recs, topN, e.opts)
}

// scoreProject evaluates one catalogue entry. Scoring itself is pure,
// but a malformed entry must not abort the whole pass, so panics are
// contained here and reported as a skip.
func (e *Engine) scoreProject(ctx context.Context, profile scoring.Profile, project catalog.Project) (rec Recommendation, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("skipping catalogue entry",
				zap.String("project", project.ID), zap.Any("cause", r))
			ok = false
		}
	}()

	snapshot := e.metrics.Snapshot(ctx, project.ID)

	healthScore := scoring.HealthScore(snapshot)
	matchScore, breakdown := e.scorer.Score(profile, project, snapshot)
	reason := e.scorer.Reason(matchScore, breakdown, project, profile)

	return Recommendation{
		Project:       project,
		MatchScore:    matchScore,
		HealthScore:   healthScore,
		CombinedScore: e.opts.MatchWeight*matchScore + e.opts.HealthWeight*healthScore,
		Breakdown:     breakdown,
		Reason:        reason,
		IsPriority:    e.scorer.IsPriority(project),
		Metrics:       snapshot,
	}, true
}
