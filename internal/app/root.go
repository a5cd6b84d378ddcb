// Package app contains the Cobra command tree for reporadar.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "reporadar",
	Short: "Personalized open-source project recommendations",
	Long: `reporadar ranks a curated catalogue of open-source repositories against
a developer's skills, interests, and experience. It analyzes public GitHub
activity into a profile, blends a multi-factor affinity score with an
OpenDigger-derived project-health score, and emits an ordered shortlist.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("reporadar", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  recommend  Rank catalogued projects for a GitHub user or manual profile")
		fmt.Println("  profile    Analyze a GitHub user into a skill/interest profile")
		fmt.Println("  health     Show a project's OpenDigger health metrics")
		fmt.Println("  history    List recorded recommendation runs and score changes")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/reporadar/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
}
