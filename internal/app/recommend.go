package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/reporadar/internal/catalog"
	"github.com/blackwell-systems/reporadar/internal/config"
	"github.com/blackwell-systems/reporadar/internal/github"
	"github.com/blackwell-systems/reporadar/internal/output"
	"github.com/blackwell-systems/reporadar/internal/recommend"
	"github.com/blackwell-systems/reporadar/internal/scoring"
	"github.com/blackwell-systems/reporadar/internal/store"
)

var (
	recommendSkills    []string
	recommendInterests []string
	recommendLevel     string
	recommendTop       int
	recommendNoSave    bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [username]",
	Short: "Rank catalogued projects for a GitHub user or manual profile",
	Long: `Build a developer profile (from a GitHub username, or from --skills and
friends) and rank the project catalogue against it. Each project gets a
multi-factor match score, an OpenDigger health score, and a short reason;
the ordered shortlist is stored in the run history unless --no-save is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringSliceVar(&recommendSkills, "skills", nil, "Skills for a manual profile (skips GitHub analysis)")
	recommendCmd.Flags().StringSliceVar(&recommendInterests, "interests", nil, "Interests for a manual profile")
	recommendCmd.Flags().StringVar(&recommendLevel, "level", scoring.ExperienceIntermediate, "Experience level: beginner, intermediate, advanced")
	recommendCmd.Flags().IntVar(&recommendTop, "top", 0, "Number of recommendations to show (default from config)")
	recommendCmd.Flags().BoolVar(&recommendNoSave, "no-save", false, "Do not record this run in the history database")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gh, metrics, err := newClients(cfg, logger)
	if err != nil {
		return err
	}

	profile, err := buildProfile(cmd, args, gh)
	if err != nil {
		return err
	}

	projects, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	topN := recommendTop
	if topN <= 0 {
		topN = cfg.TopN
	}

	engine := recommend.New(projects, metrics, scoring.NewScorer(scoring.DefaultRules()), recommend.Options{
		MatchWeight:    cfg.Weights.Match,
		HealthWeight:   cfg.Weights.Health,
		BoostThreshold: cfg.Weights.BoostThreshold,
		BoostAmount:    cfg.Weights.BoostAmount,
	}, logger)

	recs := engine.Recommend(cmd.Context(), profile, topN)

	if !recommendNoSave {
		if err := saveRun(profile.Username, topN, recs); err != nil {
			// History is a convenience; a broken database should not
			// cost the user their results.
			logger.Warn("failed to record run", zap.Error(err))
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	renderRecommendations(profile, recs)
	return nil
}

// buildProfile returns a manual profile when --skills is given, otherwise
// analyzes the GitHub user named in args.
func buildProfile(cmd *cobra.Command, args []string, gh *github.Client) (scoring.Profile, error) {
	if len(recommendSkills) > 0 {
		username := ""
		if len(args) > 0 {
			username = args[0]
		}
		return scoring.Profile{
			Username:        username,
			Skills:          recommendSkills,
			Interests:       recommendInterests,
			ExperienceLevel: recommendLevel,
		}, nil
	}

	if len(args) == 0 {
		return scoring.Profile{}, fmt.Errorf("a GitHub username or --skills is required")
	}
	return gh.Analyze(cmd.Context(), args[0])
}

func saveRun(username string, topN int, recs []recommend.Recommendation) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	runID, err := db.CreateRun(username, topN, appVersion)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		row := &store.RecommendationRow{
			RunID:         runID,
			Project:       rec.Project.ID,
			MatchScore:    rec.MatchScore,
			HealthScore:   rec.HealthScore,
			CombinedScore: rec.CombinedScore,
			IsPriority:    rec.IsPriority,
			Reason:        rec.Reason,
		}
		if err := db.InsertRecommendation(row); err != nil {
			return err
		}
	}
	return nil
}

func renderRecommendations(profile scoring.Profile, recs []recommend.Recommendation) {
	subject := profile.Username
	if subject == "" {
		subject = "manual profile"
	}
	fmt.Println(output.Section(fmt.Sprintf("Recommendations for %s", subject)))

	if len(recs) == 0 {
		fmt.Println("\n No projects scored. Check the catalogue configuration.")
		return
	}

	for i, rec := range recs {
		marker := "  "
		if rec.IsPriority {
			marker = output.StyleWarning.Render("★ ")
		}

		fmt.Printf("\n %d. %s%s\n", i+1, marker, output.StyleBold.Render(rec.Project.ID))
		fmt.Printf("    %s\n", output.StyleMuted.Render(rec.Project.Description))
		fmt.Printf("    match   %s\n", output.ScoreBar(rec.MatchScore, scoring.MatchScoreCap, 20))
		fmt.Printf("    health  %s\n", output.ScoreBar(rec.HealthScore, 100, 20))

		tags := rec.Project.Tags
		if len(tags) > 5 {
			tags = tags[:5]
		}
		fmt.Printf("    tags    %s\n", strings.Join(tags, ", "))
		fmt.Printf("    %s\n", rec.Reason)

		if details := breakdownSummary(rec.Breakdown); details != "" {
			fmt.Printf("    %s\n", output.StyleMuted.Render(details))
		}
	}
	fmt.Println()
}

// breakdownSummary lists the non-zero components of a score breakdown.
func breakdownSummary(breakdown scoring.Breakdown) string {
	components := []struct {
		key   string
		label string
	}{
		{scoring.ComponentSkillMatch, "skills"},
		{scoring.ComponentInterestMatch, "interests"},
		{scoring.ComponentExperienceMatch, "experience"},
		{scoring.ComponentQualityBonus, "quality"},
		{scoring.ComponentPriorityBonus, "priority"},
		{scoring.ComponentHotTechBonus, "hot tech"},
	}

	var parts []string
	for _, c := range components {
		if v := breakdown[c.key]; v > 0 {
			parts = append(parts, fmt.Sprintf("%s %.0f", c.label, v))
		}
	}
	return strings.Join(parts, " · ")
}
