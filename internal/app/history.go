package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/reporadar/internal/config"
	"github.com/blackwell-systems/reporadar/internal/output"
	"github.com/blackwell-systems/reporadar/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded recommendation runs and score changes",
	Long: `Show past recommendation runs from the history database. When at least
two runs exist, the two most recent are compared per project so score
movement is visible over time.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

// latestDiff compares the two most recent stored runs. It checks the
// database directly, not the listed (and possibly --limit-truncated)
// runs, so the comparison appears whenever two runs actually exist.
func latestDiff(db *store.DB) (*store.RunDiff, error) {
	previous, err := db.GetRunN(2)
	if err != nil {
		return nil, err
	}
	if previous == nil {
		return nil, nil
	}

	current, err := db.GetLatestRun()
	if err != nil {
		return nil, err
	}
	return db.DiffRuns(previous, current)
}

func runHistory(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = db.Close() }()

	runs, err := db.ListRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Run 'reporadar recommend' first.")
		return nil
	}

	diff, err := latestDiff(db)
	if err != nil {
		return fmt.Errorf("diffing runs: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Runs []store.Run    `json:"runs"`
			Diff *store.RunDiff `json:"diff,omitempty"`
		}{runs, diff})
	}

	fmt.Println(output.Section("Recommendation runs"))
	table := output.NewTable("ID", "TAKEN AT", "USER", "TOP N")
	for _, r := range runs {
		table.AddRow(
			fmt.Sprintf("%d", r.ID),
			r.TakenAt.Format("2006-01-02 15:04"),
			r.Username,
			fmt.Sprintf("%d", r.TopN),
		)
	}
	fmt.Println()
	table.Print()

	if diff != nil && len(diff.Deltas) > 0 {
		fmt.Println(output.Section("Score changes since previous run"))
		changes := output.NewTable("PROJECT", "PREVIOUS", "CURRENT", "CHANGE")
		for _, d := range diff.Deltas {
			changes.AddRow(
				d.Project,
				fmt.Sprintf("%.1f", d.Previous),
				fmt.Sprintf("%.1f", d.Current),
				output.DeltaArrow(d.Delta),
			)
		}
		fmt.Println()
		changes.Print()
	}
	return nil
}
