// Package config provides configuration loading and defaults for reporadar.
package config

import "time"

// DefaultConfigDir is the default location for reporadar configuration.
const DefaultConfigDir = "~/.config/reporadar"

// DefaultCacheDir is the default location for cached API responses.
const DefaultCacheDir = "~/.cache/reporadar"

// DefaultDBName is the filename for the SQLite run-history database.
const DefaultDBName = "reporadar.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultGitHubAPIURL is the GitHub REST API base URL.
const DefaultGitHubAPIURL = "https://api.github.com"

// DefaultOpenDiggerURL is the OpenDigger metrics base URL.
const DefaultOpenDiggerURL = "https://oss.x-lab.info/open_digger/github"

// DefaultProfileTTL is how long cached GitHub user data stays fresh.
// User activity moves quickly, so the window is short.
const DefaultProfileTTL = time.Hour

// DefaultMetricsTTL is how long cached OpenDigger metrics stay fresh.
// Project-level health changes slowly relative to how often the
// catalogue is re-ranked, so a full day is safe.
const DefaultMetricsTTL = 24 * time.Hour

// DefaultHTTPTimeout bounds every outbound API request.
const DefaultHTTPTimeout = 10 * time.Second

// DefaultTopN is the number of recommendations shown by default.
const DefaultTopN = 8

// DefaultWeights holds the default ranking weights and boost policy.
var DefaultWeights = Weights{
	Match:          0.7,
	Health:         0.3,
	BoostThreshold: 60,
	BoostAmount:    20,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
