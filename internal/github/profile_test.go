package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blackwell-systems/reporadar/internal/scoring"
)

func TestExtractSkills_LanguageOutweighsKeywords(t *testing.T) {
	repos := []repo{
		{Language: "Python", Description: "a web dashboard", Topics: []string{"frontend"}},
		{Language: "Python"},
	}

	skills := extractSkills(repos)
	if len(skills) == 0 || skills[0] != "python" {
		t.Fatalf("skills = %v, want python first", skills)
	}
}

func TestExtractSkills_KeywordsFromDescriptionAndTopics(t *testing.T) {
	repos := []repo{
		{Description: "deep learning experiments with pytorch", Topics: []string{"tensorflow"}},
	}

	skills := extractSkills(repos)
	found := map[string]bool{}
	for _, s := range skills {
		found[s] = true
	}
	if !found["machine-learning"] {
		t.Errorf("skills = %v, want machine-learning present", skills)
	}
	if !found["python"] {
		t.Errorf("skills = %v, want python via framework keywords", skills)
	}
}

func TestExtractSkills_Deterministic(t *testing.T) {
	repos := []repo{{Language: "Go"}, {Language: "Rust"}}
	first := fmt.Sprint(extractSkills(repos))
	for i := 0; i < 5; i++ {
		if got := fmt.Sprint(extractSkills(repos)); got != first {
			t.Fatalf("run %d gave %s, first gave %s", i, got, first)
		}
	}
}

func TestExtractInterests_CoreInterestAmplified(t *testing.T) {
	// ai-ml hits in both descriptions; amplification lifts it (core)
	// further ahead of cloud.
	starred := []repo{
		{Description: "an llm playground", Topics: []string{"cloud"}},
		{Description: "neural network zoo running on aws"},
	}

	interests := extractInterests(starred)
	if len(interests) == 0 || interests[0] != "ai-ml" {
		t.Fatalf("interests = %v, want ai-ml first", interests)
	}
}

func TestExtractInterests_TopicsCountDirectly(t *testing.T) {
	starred := []repo{
		{Topics: []string{"time-series", "time-series"}},
		{Topics: []string{"time-series"}},
	}

	interests := extractInterests(starred)
	if len(interests) == 0 || interests[0] != "time-series" {
		t.Fatalf("interests = %v, want time-series first", interests)
	}
}

func TestAssessExperience(t *testing.T) {
	manyStrong := make([]repo, 20)
	for i := range manyStrong {
		manyStrong[i] = repo{Stars: 100, Forks: 30}
	}

	cases := []struct {
		name  string
		repos []repo
		want  string
	}{
		{"no repos", nil, scoring.ExperienceIntermediate},
		{"single quiet repo", []repo{{}}, scoring.ExperienceBeginner},
		{"prolific with traction", manyStrong, scoring.ExperienceAdvanced},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := assessExperience(tc.repos); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestActivityScore(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fresh := now.AddDate(0, 0, -5).Format(time.RFC3339)
	stale := now.AddDate(0, 0, -200).Format(time.RFC3339)

	repos := []repo{
		{UpdatedAt: fresh},
		{UpdatedAt: fresh},
		{UpdatedAt: stale},
		{UpdatedAt: "not a timestamp"},
	}
	if got := activityScore(repos, now); got != 20 {
		t.Errorf("got %.1f, want 20 for 2 of 10 slots recent", got)
	}

	if got := activityScore(nil, now); got != 0 {
		t.Errorf("no repos: got %.1f, want 0", got)
	}

	all := make([]repo, 15)
	for i := range all {
		all[i] = repo{UpdatedAt: fresh}
	}
	if got := activityScore(all, now); got != 100 {
		t.Errorf("all recent: got %.1f, want 100", got)
	}
}

func TestExtendSkills(t *testing.T) {
	got := extendSkills([]string{"go"}, []string{"ai-ml", "web-development"})

	want := []string{"go", "python", "machine-learning", "javascript", "frontend"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestExtendSkills_Dedupes(t *testing.T) {
	got := extendSkills([]string{"python", "Python"}, []string{"ai"})
	count := 0
	for _, s := range got {
		if s == "python" || s == "Python" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("got %v, want a single python entry", got)
	}
}

func TestAnalyze_EmptyUsername(t *testing.T) {
	c := NewClient("http://unused", "", time.Second, nil, 0, nil)
	if _, err := c.Analyze(context.Background(), ""); err == nil {
		t.Fatal("expected an error")
	}
}

func TestAnalyze_BuildsProfileFromAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat":
			fmt.Fprint(w, `{"login": "octocat", "public_repos": 8}`)
		case "/users/octocat/repos":
			fmt.Fprint(w, `[
				{"name": "charts", "language": "JavaScript", "description": "dashboard charts",
				 "topics": ["visualization"], "stargazers_count": 50, "forks_count": 10,
				 "updated_at": "2026-08-20T10:00:00Z"},
				{"name": "etl", "language": "Python", "description": "pandas pipelines",
				 "stargazers_count": 5, "updated_at": "2026-08-25T10:00:00Z"}
			]`)
		case "/users/octocat/starred":
			fmt.Fprint(w, `[
				{"name": "llmkit", "description": "an llm toolkit", "topics": ["ai-ml"]}
			]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second, nil, 0, nil)
	profile, err := c.Analyze(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if profile.Username != "octocat" {
		t.Errorf("username = %q", profile.Username)
	}
	hasSkill := func(name string) bool {
		for _, s := range profile.Skills {
			if s == name {
				return true
			}
		}
		return false
	}
	if !hasSkill("javascript") || !hasSkill("python") {
		t.Errorf("skills = %v, want javascript and python", profile.Skills)
	}
	if len(profile.Interests) == 0 {
		t.Errorf("interests empty")
	}
	if profile.ActivityScore != 20 {
		t.Errorf("activity = %.1f, want 20", profile.ActivityScore)
	}
	if profile.ExperienceLevel == "" {
		t.Errorf("experience level empty")
	}
}

func TestAnalyze_APIDownFallsBackToDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second, nil, 0, nil)
	profile, err := c.Analyze(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("Analyze must degrade, got error: %v", err)
	}

	if len(profile.Skills) == 0 {
		t.Error("expected default skills")
	}
	if len(profile.Interests) == 0 {
		t.Error("expected default interests")
	}
	if profile.ExperienceLevel != scoring.ExperienceIntermediate {
		t.Errorf("experience = %q, want intermediate default", profile.ExperienceLevel)
	}
}
