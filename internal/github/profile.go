package github

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blackwell-systems/reporadar/internal/scoring"
)

// keywordRule attaches a weight to a set of trigger keywords.
type keywordRule struct {
	keywords []string
	weight   int
}

// skillKeywords maps skill names to the keywords that signal them in
// repository descriptions and topics.
var skillKeywords = map[string]keywordRule{
	"python": {[]string{"python", "django", "flask", "fastapi", "pandas",
		"numpy", "scikit-learn", "tensorflow", "pytorch"}, 4},
	"javascript": {[]string{"javascript", "js", "react", "vue", "angular",
		"node", "express", "typescript"}, 4},
	"java":       {[]string{"java", "spring", "spring-boot", "hibernate", "android"}, 4},
	"typescript": {[]string{"typescript", "ts"}, 3},
	"go":         {[]string{"go", "golang"}, 3},
	"rust":       {[]string{"rust"}, 2},
	"machine-learning": {[]string{"machine learning", "ml", "deep learning",
		"ai", "tensorflow", "pytorch", "neural"}, 5},
	"data-science": {[]string{"data science", "data analysis", "data mining",
		"pandas", "numpy"}, 4},
	"frontend": {[]string{"frontend", "web", "css", "html", "react", "vue", "angular"}, 4},
	"backend":  {[]string{"backend", "api", "server", "database", "microservices", "rest"}, 4},
	"devops":   {[]string{"devops", "docker", "kubernetes", "ci/cd", "jenkins", "cloud-native"}, 3},
	"big-data": {[]string{"big data", "hadoop", "spark", "hive"}, 4},
	"data-visualization": {[]string{"data visualization", "visualization", "bi",
		"dashboard", "reporting", "charts"}, 3},
	"iot":         {[]string{"iot", "sensors", "embedded", "smart-home"}, 3},
	"open-source": {[]string{"open source", "github", "git"}, 2},
	"mobile":      {[]string{"mobile", "android", "ios", "flutter", "react-native"}, 3},
}

// interestKeywords maps interest categories to the keywords that signal
// them in starred-repository descriptions.
var interestKeywords = map[string]keywordRule{
	"web-development": {[]string{"web", "frontend", "backend", "framework",
		"fullstack", "javascript", "react", "vue"}, 3},
	"data-science": {[]string{"data", "analysis", "ml", "ai", "visualization"}, 3},
	"ai-ml": {[]string{"ai", "machine learning", "deep learning", "neural",
		"llm", "gpt"}, 4},
	"mobile":      {[]string{"mobile", "android", "ios", "flutter", "react-native"}, 2},
	"cloud":       {[]string{"cloud", "aws", "azure", "serverless", "kubernetes", "docker"}, 2},
	"oss-tooling": {[]string{"tools", "utilities", "productivity", "developer-tools"}, 2},
	"game-dev":    {[]string{"game", "unity", "unreal"}, 1},
	"blockchain":  {[]string{"blockchain", "crypto", "web3", "smart-contracts"}, 1},
	"big-data":    {[]string{"big data", "hadoop", "spark"}, 2},
	"iot":         {[]string{"iot", "smart-home", "sensors"}, 2},
}

// coreInterests get their counts amplified so broadly popular areas rank
// first in the interest list.
var coreInterests = map[string]bool{
	"ai-ml":           true,
	"data-science":    true,
	"web-development": true,
	"oss-tooling":     true,
}

// defaultSkills and defaultInterests keep the recommendation pass useful
// when a user's activity reveals nothing.
var defaultSkills = []string{"python", "javascript", "open-source", "git", "frontend", "backend"}

var defaultInterests = []string{"oss-tooling", "web-development", "data-science", "ai-ml", "cloud"}

const (
	maxSkills    = 20
	maxInterests = 15

	// recentWindowDays bounds what counts as recent repository activity.
	recentWindowDays = 90
)

// Analyze builds a profile from a user's public activity. Partial API
// failures degrade to sensible defaults instead of failing the run.
func (c *Client) Analyze(ctx context.Context, username string) (scoring.Profile, error) {
	if username == "" {
		return scoring.Profile{}, fmt.Errorf("github: username is empty")
	}

	profile := scoring.Profile{
		Username:        username,
		ExperienceLevel: scoring.ExperienceIntermediate,
	}

	var u user
	if err := c.get(ctx, "/users/"+username, &u); err != nil {
		c.logger.Warn("user lookup failed, continuing with defaults",
			zap.String("username", username), zap.Error(err))
	}

	var repos []repo
	if err := c.get(ctx, fmt.Sprintf("/users/%s/repos?per_page=100&sort=updated", username), &repos); err != nil {
		c.logger.Warn("repo listing failed", zap.String("username", username), zap.Error(err))
	}
	if len(repos) > 0 {
		profile.Skills = extractSkills(repos)
		profile.ExperienceLevel = assessExperience(repos)
		profile.ActivityScore = activityScore(repos, time.Now())
	}
	if len(profile.Skills) == 0 {
		profile.Skills = append([]string(nil), defaultSkills...)
	}

	var starred []repo
	if err := c.get(ctx, fmt.Sprintf("/users/%s/starred?per_page=60", username), &starred); err != nil {
		c.logger.Warn("starred listing failed", zap.String("username", username), zap.Error(err))
	}
	if len(starred) > 0 {
		profile.Interests = extractInterests(starred)
	}
	if len(profile.Interests) == 0 {
		profile.Interests = append([]string(nil), defaultInterests...)
	}

	profile.Skills = extendSkills(profile.Skills, profile.Interests)

	c.logger.Debug("profile built",
		zap.String("username", username),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("interests", len(profile.Interests)),
		zap.String("experience", profile.ExperienceLevel))

	return profile, nil
}

// extractSkills scores skills from repository languages, descriptions,
// and topics, returning them ordered by evidence strength.
func extractSkills(repos []repo) []string {
	counts := map[string]int{}

	for _, r := range repos {
		// The repository language is the strongest signal.
		if r.Language != "" {
			counts[strings.ToLower(r.Language)] += 5
		}

		text := strings.ToLower(r.Description + " " + strings.Join(r.Topics, " "))
		for skill, rule := range skillKeywords {
			if containsAny(text, rule.keywords) {
				counts[skill] += rule.weight
			}
		}
	}

	return topKeys(counts, maxSkills)
}

// extractInterests derives interest categories from starred repositories:
// topics count directly, descriptions through the category keyword table,
// and core interests get amplified.
func extractInterests(starred []repo) []string {
	counts := map[string]int{}

	limit := len(starred)
	if limit > 40 {
		limit = 40
	}

	for _, r := range starred[:limit] {
		for _, topic := range r.Topics {
			counts[strings.ToLower(topic)]++
		}

		desc := strings.ToLower(r.Description)
		for interest, rule := range interestKeywords {
			if containsAny(desc, rule.keywords) {
				counts[interest] += rule.weight
			}
		}
	}

	for interest := range counts {
		if coreInterests[interest] {
			counts[interest] = counts[interest] * 3 / 2
		}
	}

	return topKeys(counts, maxInterests)
}

// assessExperience grades a user from repository volume and traction.
func assessExperience(repos []repo) string {
	if len(repos) == 0 {
		return scoring.ExperienceIntermediate
	}

	repoCount := len(repos)
	totalStars, totalForks := 0, 0
	for _, r := range repos {
		totalStars += r.Stars
		totalForks += r.Forks
	}

	avgStars := float64(totalStars) / float64(repoCount)
	avgForks := float64(totalForks) / float64(repoCount)

	score := clamp01(float64(repoCount)/15)*0.3 +
		clamp01(avgStars/30)*0.25 +
		clamp01(avgForks/15)*0.25 +
		clamp01(float64(totalStars)/300)*0.2

	switch {
	case score > 0.7:
		return scoring.ExperienceAdvanced
	case score > 0.4:
		return scoring.ExperienceIntermediate
	default:
		return scoring.ExperienceBeginner
	}
}

// activityScore rates recent activity 0-100 from how many of the ten most
// recently updated repositories were touched within the recent window.
func activityScore(repos []repo, now time.Time) float64 {
	if len(repos) == 0 {
		return 0
	}

	recent := make([]repo, len(repos))
	copy(recent, repos)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].UpdatedAt > recent[j].UpdatedAt
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}

	count := 0
	cutoff := now.AddDate(0, 0, -recentWindowDays)
	for _, r := range recent {
		t, err := time.Parse(time.RFC3339, r.UpdatedAt)
		if err != nil {
			continue
		}
		if t.After(cutoff) {
			count++
		}
	}

	score := float64(count) / 10 * 100
	if score > 100 {
		score = 100
	}
	return score
}

// impliedSkills maps interest fragments to skills a user with that
// interest almost certainly has some footing in.
var impliedSkills = []struct {
	fragment string
	skills   []string
}{
	{"data", []string{"python", "data-science", "machine-learning"}},
	{"web", []string{"javascript", "frontend"}},
	{"ai", []string{"python", "machine-learning"}},
	{"ml", []string{"python", "machine-learning"}},
	{"backend", []string{"python", "backend"}},
	{"iot", []string{"big-data", "java"}},
	{"visualization", []string{"data-visualization", "javascript"}},
}

// extendSkills augments extracted skills with ones implied by the user's
// interests, preserving first-seen order and deduplicating.
func extendSkills(skills, interests []string) []string {
	extended := append([]string(nil), skills...)

	for _, interest := range interests {
		lower := strings.ToLower(interest)
		for _, imp := range impliedSkills {
			if strings.Contains(lower, imp.fragment) {
				extended = append(extended, imp.skills...)
				break
			}
		}
	}

	seen := map[string]bool{}
	unique := make([]string, 0, len(extended))
	for _, skill := range extended {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, skill)
	}

	if len(unique) > maxSkills {
		unique = unique[:maxSkills]
	}
	return unique
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// topKeys returns up to n keys ordered by count descending, breaking ties
// alphabetically so output is deterministic.
func topKeys(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
