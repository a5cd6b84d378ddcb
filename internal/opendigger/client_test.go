package opendigger

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func metricServer(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSnapshot_AllMetrics(t *testing.T) {
	srv := metricServer(t, map[string]string{
		"/acme/widget/activity.json":         `{"2024-01": 10, "2024-02": 12}`,
		"/acme/widget/openrank.json":         `{"2024-01": 5, "2024-02": 4}`,
		"/acme/widget/contributors.json":     `{"2024-02": 30}`,
		"/acme/widget/new_contributors.json": `3`,
	})

	c := NewClient(srv.URL, time.Second, nil, 0, nil)
	snap := c.Snapshot(context.Background(), "acme/widget")

	if got := snap[MetricActivity]; got.Value != 12 || got.Trend != TrendUp {
		t.Errorf("activity = %+v, want value 12 trend up", got)
	}
	if got := snap[MetricOpenRank]; got.Value != 4 || got.Trend != TrendDown {
		t.Errorf("openrank = %+v, want value 4 trend down", got)
	}
	if got := snap[MetricContributors]; got.Value != 30 || got.Trend != TrendStable {
		t.Errorf("contributors = %+v, want value 30 trend stable", got)
	}
	// A bare number is valid and reads as stable.
	if got := snap[MetricNewContributors]; got.Value != 3 || got.Trend != TrendStable {
		t.Errorf("new_contributors = %+v, want value 3 trend stable", got)
	}
}

func TestSnapshot_MissingMetricDegrades(t *testing.T) {
	srv := metricServer(t, map[string]string{
		"/acme/widget/activity.json": `{"2024-02": 8}`,
	})

	c := NewClient(srv.URL, time.Second, nil, 0, nil)
	snap := c.Snapshot(context.Background(), "acme/widget")

	if got := snap[MetricActivity]; got.Value != 8 {
		t.Errorf("activity = %+v, want value 8", got)
	}
	for _, metric := range []string{MetricOpenRank, MetricContributors, MetricNewContributors} {
		got := snap[metric]
		if got.Trend != TrendError || got.Value != 0 {
			t.Errorf("%s = %+v, want zero-valued error point", metric, got)
		}
	}
}

func TestSnapshot_UnreachableServer(t *testing.T) {
	srv := metricServer(t, nil)
	srv.Close()

	c := NewClient(srv.URL, time.Second, nil, 0, nil)
	snap := c.Snapshot(context.Background(), "acme/widget")

	if len(snap) != len(Metrics) {
		t.Fatalf("snapshot has %d metrics, want %d", len(snap), len(Metrics))
	}
	for metric, point := range snap {
		if point.Trend != TrendError {
			t.Errorf("%s trend = %q, want %q", metric, point.Trend, TrendError)
		}
	}
}

func TestParseMetricBody(t *testing.T) {
	cases := []struct {
		name string
		body string
		want MetricPoint
	}{
		{"history object", `{"2024-01": 1, "2024-02": 2}`,
			MetricPoint{Value: 2, Trend: TrendUp, LatestPeriod: "2024-02"}},
		{"bare number", `17.5`, MetricPoint{Value: 17.5, Trend: TrendStable}},
		{"empty object", `{}`, ErrorPoint()},
		{"garbage", `"not a metric"`, ErrorPoint()},
		{"truncated json", `{"2024-01":`, ErrorPoint()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseMetricBody([]byte(tc.body)); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
