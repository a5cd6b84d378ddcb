// Package github derives a developer profile from a user's public
// GitHub activity: repositories for skills, starred projects for
// interests, and aggregate stats for experience and activity.
package github

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

// Client talks to the GitHub REST API. The token is optional; without it
// the public rate limits apply.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	store      *cache.Store
	ttl        time.Duration
	logger     *zap.Logger
}

// NewClient creates a GitHub API client. The store may be nil to disable
// caching.
func NewClient(baseURL, token string, timeout time.Duration, store *cache.Store, ttl time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		ttl:        ttl,
		logger:     logger,
	}
}

// user is the subset of the GitHub user payload the analyzer reads.
type user struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

// repo is the subset of the repository payload the analyzer reads. The
// same shape serves both owned and starred repositories.
type repo struct {
	FullName    string   `json:"full_name"`
	Name        string   `json:"name"`
	Language    string   `json:"language"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	UpdatedAt   string   `json:"updated_at"`
}

// get fetches an API endpoint through the TTL cache and decodes the JSON
// payload into out.
func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	fetch := func() (json.RawMessage, error) {
		return c.fetch(ctx, endpoint)
	}

	var raw json.RawMessage
	var err error
	if c.store != nil {
		raw, err = cache.Fetch(c.store, "github/"+endpoint, c.ttl, fetch)
	} else {
		raw, err = fetch()
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("github request failed",
			zap.String("endpoint", endpoint), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("github: %s returned status %d", endpoint, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
