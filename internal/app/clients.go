package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/blackwell-systems/reporadar/internal/cache"
	"github.com/blackwell-systems/reporadar/internal/config"
	"github.com/blackwell-systems/reporadar/internal/github"
	"github.com/blackwell-systems/reporadar/internal/logging"
	"github.com/blackwell-systems/reporadar/internal/opendigger"
	"github.com/blackwell-systems/reporadar/internal/output"
)

// setup loads config, builds the logger, and applies output preferences.
// Every subcommand starts here.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(flagJSON, flagVerbose)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}

	output.AutoDetect()
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	return cfg, logger, nil
}

// newClients wires the cache-backed API clients from config.
func newClients(cfg *config.Config, logger *zap.Logger) (*github.Client, *opendigger.Client, error) {
	store, err := cache.New(cfg.CacheDir, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("opening cache: %w", err)
	}

	gh := github.NewClient(cfg.GitHubAPIURL, cfg.GitHubToken, cfg.HTTPTimeout, store, cfg.TTL.Profile, logger)
	od := opendigger.NewClient(cfg.OpenDiggerURL, cfg.HTTPTimeout, store, cfg.TTL.Metrics, logger)
	return gh, od, nil
}
