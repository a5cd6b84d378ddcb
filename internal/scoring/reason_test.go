package scoring

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/reporadar/internal/catalog"
)

func TestReason_FallbackWhenNothingFires(t *testing.T) {
	s := NewScorer(DefaultRules())
	got := s.Reason(40, Breakdown{}, catalog.Project{}, Profile{})
	if got != "A solid open-source project worth exploring" {
		t.Errorf("got %q", got)
	}
}

func TestReason_ScoreTiers(t *testing.T) {
	s := NewScorer(DefaultRules())
	cases := []struct {
		score float64
		want  string
	}{
		{150, "Exceptional match"},
		{101, "Exceptional match"},
		{100, "Strong match"},
		{81, "Strong match"},
		{80, "Good match"},
		{61, "Good match"},
	}
	for _, tc := range cases {
		got := s.Reason(tc.score, Breakdown{}, catalog.Project{}, Profile{})
		if got != tc.want {
			t.Errorf("score %.0f: got %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestReason_OrderAndLimit(t *testing.T) {
	s := NewScorer(DefaultRules())
	breakdown := Breakdown{
		ComponentSkillMatch:    60,
		ComponentInterestMatch: 30,
		ComponentPriorityBonus: 60,
	}
	proj := catalog.Project{
		Tags:       []string{catalog.PriorityTag},
		Category:   "ai-ml",
		Difficulty: ExperienceAdvanced,
	}
	profile := Profile{ExperienceLevel: ExperienceAdvanced}

	got := s.Reason(120, breakdown, proj, profile)

	parts := strings.Split(got, " | ")
	if len(parts) != 4 {
		t.Fatalf("got %d fragments (%q), want 4", len(parts), got)
	}
	want := []string{
		"Exceptional match",
		"Multiple skills align closely",
		"Fits your core interests",
		"Featured priority project",
	}
	for i, fragment := range want {
		if parts[i] != fragment {
			t.Errorf("fragment %d = %q, want %q", i, parts[i], fragment)
		}
	}
}

func TestReason_DifficultyMention(t *testing.T) {
	s := NewScorer(DefaultRules())
	proj := catalog.Project{Difficulty: ExperienceBeginner}
	profile := Profile{ExperienceLevel: ExperienceBeginner}

	got := s.Reason(10, Breakdown{}, proj, profile)
	if got != "Difficulty suits beginner developers" {
		t.Errorf("got %q", got)
	}

	// An empty experience level never matches an empty difficulty.
	got = s.Reason(10, Breakdown{}, catalog.Project{}, Profile{})
	if strings.Contains(got, "Difficulty suits") {
		t.Errorf("empty levels should not fire the difficulty rule, got %q", got)
	}
}

func TestReason_Deterministic(t *testing.T) {
	s := NewScorer(DefaultRules())
	breakdown := Breakdown{ComponentSkillMatch: 40, ComponentInterestMatch: 20}
	proj := catalog.Project{Category: "frontend"}

	first := s.Reason(70, breakdown, proj, Profile{})
	for i := 0; i < 10; i++ {
		if got := s.Reason(70, breakdown, proj, Profile{}); got != first {
			t.Fatalf("run %d produced %q, first run %q", i, got, first)
		}
	}
}
