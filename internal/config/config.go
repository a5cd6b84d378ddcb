package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level reporadar configuration.
type Config struct {
	CacheDir      string  `mapstructure:"cache_dir"`
	CatalogFile   string  `mapstructure:"catalog_file"`
	GitHubToken   string  `mapstructure:"github_token"`
	GitHubAPIURL  string  `mapstructure:"github_api_url"`
	OpenDiggerURL string  `mapstructure:"opendigger_url"`
	TopN          int     `mapstructure:"top_n"`
	TTL           TTL     `mapstructure:"ttl"`
	Weights       Weights `mapstructure:"weights"`
	Output        Output  `mapstructure:"output"`

	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// TTL defines the two cache freshness classes.
type TTL struct {
	Profile time.Duration `mapstructure:"profile"`
	Metrics time.Duration `mapstructure:"metrics"`
}

// Weights defines the ranking blend and the priority boost policy.
type Weights struct {
	Match          float64 `mapstructure:"match"`
	Health         float64 `mapstructure:"health"`
	BoostThreshold float64 `mapstructure:"boost_threshold"`
	BoostAmount    float64 `mapstructure:"boost_amount"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("cache_dir", DefaultCacheDir)
	v.SetDefault("github_api_url", DefaultGitHubAPIURL)
	v.SetDefault("opendigger_url", DefaultOpenDiggerURL)
	v.SetDefault("top_n", DefaultTopN)
	v.SetDefault("ttl.profile", DefaultProfileTTL)
	v.SetDefault("ttl.metrics", DefaultMetricsTTL)
	v.SetDefault("weights.match", DefaultWeights.Match)
	v.SetDefault("weights.health", DefaultWeights.Health)
	v.SetDefault("weights.boost_threshold", DefaultWeights.BoostThreshold)
	v.SetDefault("weights.boost_amount", DefaultWeights.BoostAmount)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("http_timeout", DefaultHTTPTimeout)

	// GITHUB_TOKEN from the environment wins over the config file so the
	// token never has to live on disk.
	v.SetDefault("github_token", "")
	_ = v.BindEnv("github_token", "GITHUB_TOKEN")

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Expand paths.
	cfg.CacheDir = expandPath(cfg.CacheDir)
	if cfg.CatalogFile != "" {
		cfg.CatalogFile = expandPath(cfg.CatalogFile)
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite run-history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
