package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/reporadar/internal/output"
)

var profileCmd = &cobra.Command{
	Use:   "profile <username>",
	Short: "Analyze a GitHub user into a skill/interest profile",
	Long: `Read a user's public repositories and starred projects and derive the
profile the recommendation engine scores against: skills, interests,
experience level, and an activity score.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gh, _, err := newClients(cfg, logger)
	if err != nil {
		return err
	}

	profile, err := gh.Analyze(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("analyzing user: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	fmt.Println(output.Section(fmt.Sprintf("Profile: %s", profile.Username)))
	fmt.Printf("\n %s %s\n", output.StyleLabel.Render("experience"), profile.ExperienceLevel)
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("activity"), output.ScoreBar(profile.ActivityScore, 100, 20))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("skills"), strings.Join(profile.Skills, ", "))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("interests"), strings.Join(profile.Interests, ", "))
	return nil
}
