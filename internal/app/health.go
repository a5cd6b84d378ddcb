package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/reporadar/internal/opendigger"
	"github.com/blackwell-systems/reporadar/internal/output"
	"github.com/blackwell-systems/reporadar/internal/scoring"
)

var healthCmd = &cobra.Command{
	Use:   "health <owner/repo>",
	Short: "Show a project's OpenDigger health metrics",
	Long: `Fetch the OpenDigger metric series for a repository, condense each into
its latest value and trend, and derive the 0-100 health score used in
ranking. Unavailable metrics degrade to zero rather than failing.`,
	Args: cobra.ExactArgs(1),
	RunE: runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	repo := args[0]
	if !strings.Contains(repo, "/") {
		return fmt.Errorf("repository must be owner/name, got %q", repo)
	}

	_, metrics, err := newClients(cfg, logger)
	if err != nil {
		return err
	}

	snapshot := metrics.Snapshot(cmd.Context(), repo)
	healthScore := scoring.HealthScore(snapshot)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Repo    string                    `json:"repo"`
			Health  float64                   `json:"health_score"`
			Metrics opendigger.MetricSnapshot `json:"metrics"`
		}{repo, healthScore, snapshot})
	}

	fmt.Println(output.Section(fmt.Sprintf("Project health: %s", repo)))
	fmt.Printf("\n %s %s\n\n", output.StyleLabel.Render("health score"), output.ScoreBar(healthScore, 100, 20))

	table := output.NewTable("METRIC", "VALUE", "TREND", "PERIOD")
	for _, name := range opendigger.Metrics {
		point := snapshot[name]
		period := point.LatestPeriod
		if period == "" {
			period = "-"
		}
		table.AddRow(name, fmt.Sprintf("%.2f", point.Value), output.TrendBadge(point.Trend), period)
	}
	table.Print()
	return nil
}
