package opendigger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/blackwell-systems/reporadar/internal/cache"
)

const userAgent = "reporadar"

// Client fetches OpenDigger metrics over HTTP, memoizing whole snapshots
// in the TTL cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *cache.Store
	ttl        time.Duration
	logger     *zap.Logger
}

// NewClient creates a metrics client. The store may be nil to disable
// caching (used in tests).
func NewClient(baseURL string, timeout time.Duration, store *cache.Store, ttl time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		ttl:        ttl,
		logger:     logger,
	}
}

// Snapshot returns the condensed metric snapshot for a repository.
// It never fails: metrics that cannot be fetched degrade to zero-valued
// error points, and the ranking pass proceeds on whatever is available.
func (c *Client) Snapshot(ctx context.Context, repo string) MetricSnapshot {
	if c.store == nil {
		return c.fetchSnapshot(ctx, repo)
	}

	snap, err := cache.Fetch(c.store, "opendigger/"+repo, c.ttl, func() (MetricSnapshot, error) {
		return c.fetchSnapshot(ctx, repo), nil
	})
	if err != nil {
		// Unreachable in practice since the fetch never errors, but
		// degrade the same way everything else does.
		return c.fetchSnapshot(ctx, repo)
	}
	return snap
}

func (c *Client) fetchSnapshot(ctx context.Context, repo string) MetricSnapshot {
	snap := make(MetricSnapshot, len(Metrics))
	for _, metric := range Metrics {
		snap[metric] = c.fetchMetric(ctx, repo, metric)
	}
	return snap
}

// fetchMetric retrieves one metric series and condenses it. Any failure,
// including timeouts and non-200 responses, yields an error point.
func (c *Client) fetchMetric(ctx context.Context, repo, metric string) MetricPoint {
	url := fmt.Sprintf("%s/%s/%s.json", c.baseURL, repo, metric)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ErrorPoint()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("metric fetch failed",
			zap.String("repo", repo), zap.String("metric", metric), zap.Error(err))
		return ErrorPoint()
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("metric fetch non-200",
			zap.String("repo", repo), zap.String("metric", metric),
			zap.Int("status", resp.StatusCode))
		return ErrorPoint()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrorPoint()
	}
	return parseMetricBody(body)
}

// parseMetricBody accepts either a period-to-value object or a bare
// number, the two shapes the dataset serves.
func parseMetricBody(body []byte) MetricPoint {
	var history map[string]float64
	if err := json.Unmarshal(body, &history); err == nil {
		if point, ok := pointFromHistory(history); ok {
			return point
		}
		return ErrorPoint()
	}

	var value float64
	if err := json.Unmarshal(body, &value); err == nil {
		return MetricPoint{Value: value, Trend: TrendStable}
	}

	return ErrorPoint()
}
