package scoring

import (
	"testing"

	"github.com/blackwell-systems/reporadar/internal/catalog"
	"github.com/blackwell-systems/reporadar/internal/opendigger"
)

func project(tags []string, category, difficulty string) catalog.Project {
	return catalog.Project{Tags: tags, Category: category, Difficulty: difficulty}
}

func TestScore_DirectHotSkillHit(t *testing.T) {
	s := NewScorer(DefaultRules())
	profile := Profile{Skills: []string{"python"}}
	proj := project([]string{"python", "ai-ml"}, "ai-ml", ExperienceIntermediate)

	total, breakdown := s.Score(profile, proj, opendigger.MetricSnapshot{})

	// python is a direct tag hit (25) plus the hot-skill bonus (10).
	if got, want := breakdown[ComponentSkillMatch], 35.0; got != want {
		t.Errorf("skill_match = %.2f, want %.2f", got, want)
	}
	// No experience level on the profile falls back to the default.
	if got, want := breakdown[ComponentExperienceMatch], 15.0; got != want {
		t.Errorf("experience_match = %.2f, want %.2f", got, want)
	}
	// python sits in the hot-tech table on both sides.
	if got, want := breakdown[ComponentHotTechBonus], 10.0; got != want {
		t.Errorf("hot_tech_bonus = %.2f, want %.2f", got, want)
	}
	if got, want := total, 60.0; got != want {
		t.Errorf("total = %.2f, want %.2f", got, want)
	}
}

func TestScore_AdjacentSkillCountsOnce(t *testing.T) {
	s := NewScorer(DefaultRules())
	profile := Profile{Skills: []string{"python"}}

	// django and flask are both adjacent to python; only the first
	// related match may count.
	proj := project([]string{"django", "flask"}, "web", ExperienceIntermediate)
	_, breakdown := s.Score(profile, proj, opendigger.MetricSnapshot{})

	// Related hit (15) plus the hot-skill related bonus (8).
	if got, want := breakdown[ComponentSkillMatch], 23.0; got != want {
		t.Errorf("skill_match = %.2f, want %.2f", got, want)
	}
}

func TestScore_SkillGroupBonus(t *testing.T) {
	s := NewScorer(DefaultRules())
	profile := Profile{Skills: []string{"javascript", "react"}}
	proj := project([]string{"javascript", "react"}, "frontend", ExperienceIntermediate)

	_, breakdown := s.Score(profile, proj, opendigger.MetricSnapshot{})

	// javascript 25+10, react 25, plus 2 overlapping members of the
	// frontend group at 5 each.
	if got, want := breakdown[ComponentSkillMatch], 70.0; got != want {
		t.Errorf("skill_match = %.2f, want %.2f", got, want)
	}
}

func TestScore_SkillMatchCapped(t *testing.T) {
	s := NewScorer(DefaultRules())
	profile := Profile{Skills: []string{"python", "machine-learning", "data-science"}}
	proj := project([]string{"python", "machine-learning", "data-science"}, "ai-ml", ExperienceAdvanced)

	_, breakdown := s.Score(profile, proj, opendigger.MetricSnapshot{})

	// Raw sum is well above the component cap.
	if got, want := breakdown[ComponentSkillMatch], 80.0; got != want {
		t.Errorf("skill_match = %.2f, want cap %.2f", got, want)
	}
}

func TestScore_InterestCategoryAccumulatesWithPartialHit(t *testing.T) {
	s := NewScorer(DefaultRules())
	profile := Profile{Interests: []string{"web-development"}}
	proj := project([]string{"javascript", "react"}, "frontend", ExperienceIntermediate)

	_, breakdown := s.Score(profile, proj, opendigger.MetricSnapshot{})

	// No direct or partial tag hit, but two category keywords overlap.
	if got, want := breakdown[ComponentInterestMatch], 12.0; got != want {
		t.Errorf("interest_match = %.2f, want %.2f", got, want)
	}
}

func TestScore_InterestPartialSubstringBothDirections(t *testing.T) {
	s := NewScorer(DefaultRules())

	// Interest contained in a tag.
	_, breakdown := s.Score(
		Profile{Interests: []string{"data"}},
		project([]string{"database"}, "database", ExperienceIntermediate),
		opendigger.MetricSnapshot{},
	)
	if got, want := breakdown[ComponentInterestMatch], 12.0; got != want {
		t.Errorf("interest in tag: interest_match = %.2f, want %.2f", got, want)
	}

	// Tag contained in an interest.
	_, breakdown = s.Score(
		Profile{Interests: []string{"databases"}},
		project([]string{"database"}, "database", ExperienceIntermediate),
		opendigger.MetricSnapshot{},
	)
	if got, want := breakdown[ComponentInterestMatch], 12.0; got != want {
		t.Errorf("tag in interest: interest_match = %.2f, want %.2f", got, want)
	}
}

func TestScore_InterestMatchCapped(t *testing.T) {
	s := NewScorer(DefaultRules())
	profile := Profile{Interests: []string{"ai-ml", "data-science"}}
	proj := project([]string{"ai", "machine-learning", "python", "data-science", "data-analysis"},
		"ai-ml", ExperienceAdvanced)

	_, breakdown := s.Score(profile, proj, opendigger.MetricSnapshot{})

	if got, want := breakdown[ComponentInterestMatch], 50.0; got != want {
		t.Errorf("interest_match = %.2f, want cap %.2f", got, want)
	}
}

func TestScore_ExperienceMatrix(t *testing.T) {
	s := NewScorer(DefaultRules())
	cases := []struct {
		level      string
		difficulty string
		want       float64
	}{
		{ExperienceBeginner, ExperienceBeginner, 30},
		{ExperienceBeginner, ExperienceAdvanced, 5},
		{ExperienceIntermediate, ExperienceIntermediate, 25},
		{ExperienceAdvanced, ExperienceAdvanced, 30},
		{ExperienceAdvanced, ExperienceBeginner, 10},
		{"wizard", ExperienceBeginner, 15},
		{ExperienceAdvanced, "unknown", 15},
	}
	for _, tc := range cases {
		_, breakdown := s.Score(
			Profile{ExperienceLevel: tc.level},
			project(nil, "", tc.difficulty),
			opendigger.MetricSnapshot{},
		)
		if got := breakdown[ComponentExperienceMatch]; got != tc.want {
			t.Errorf("%s vs %s: experience_match = %.2f, want %.2f",
				tc.level, tc.difficulty, got, tc.want)
		}
	}
}

func TestScore_QualityBonusFromHealth(t *testing.T) {
	s := NewScorer(DefaultRules())
	snap := snapshotOf(500, 500, 1000, 1000) // health 100

	_, breakdown := s.Score(Profile{}, project(nil, "", ""), snap)

	if got, want := breakdown[ComponentQualityBonus], 20.0; got != want {
		t.Errorf("quality_bonus = %.2f, want %.2f", got, want)
	}
}

func TestScore_PriorityBonusRequiresMarkerTag(t *testing.T) {
	s := NewScorer(DefaultRules())
	profile := Profile{Skills: []string{"java"}}

	// Trigger tags without the marker earn nothing.
	_, breakdown := s.Score(profile,
		project([]string{"iotdb", "time-series"}, "database", ExperienceAdvanced),
		opendigger.MetricSnapshot{})
	if got := breakdown[ComponentPriorityBonus]; got != 0 {
		t.Errorf("unmarked project: priority_bonus = %.2f, want 0", got)
	}

	_, breakdown = s.Score(profile,
		project([]string{catalog.PriorityTag, "iotdb", "time-series"}, "database", ExperienceAdvanced),
		opendigger.MetricSnapshot{})
	if got, want := breakdown[ComponentPriorityBonus], 60.0; got != want {
		t.Errorf("marked project: priority_bonus = %.2f, want %.2f", got, want)
	}
}

func TestScore_PriorityCategoriesStack(t *testing.T) {
	s := NewScorer(DefaultRules())
	profile := Profile{Skills: []string{"java"}}

	// dataease triggers the visualization category and iotdb the
	// time-series one; both bonuses apply on top of the baseline.
	proj := project([]string{catalog.PriorityTag, "dataease", "iotdb"}, "database", ExperienceAdvanced)
	_, breakdown := s.Score(profile, proj, opendigger.MetricSnapshot{})

	if got, want := breakdown[ComponentPriorityBonus], 80.0; got != want {
		t.Errorf("priority_bonus = %.2f, want %.2f", got, want)
	}
}

func TestScore_HotTechBonusCapped(t *testing.T) {
	s := NewScorer(DefaultRules())
	profile := Profile{Skills: []string{"machine-learning", "ai", "data-science"}}
	proj := project([]string{"machine-learning", "ai", "data-science"}, "ai-ml", ExperienceAdvanced)

	_, breakdown := s.Score(profile, proj, opendigger.MetricSnapshot{})

	if got, want := breakdown[ComponentHotTechBonus], 30.0; got != want {
		t.Errorf("hot_tech_bonus = %.2f, want cap %.2f", got, want)
	}
}

func TestScore_TotalClamped(t *testing.T) {
	s := NewScorer(DefaultRules())
	profile := Profile{
		Skills:          []string{"python", "machine-learning", "data-science", "javascript", "java", "ai"},
		Interests:       []string{"data-science", "ai-ml"},
		ExperienceLevel: ExperienceAdvanced,
	}
	proj := project(
		[]string{catalog.PriorityTag, "python", "machine-learning", "data-science", "ai", "javascript", "iotdb", "dataease"},
		"ai-ml", ExperienceAdvanced)
	snap := snapshotOf(500, 500, 1000, 1000)

	total, breakdown := s.Score(profile, proj, snap)

	if total != MatchScoreCap {
		t.Errorf("total = %.2f, want clamp %.2f", total, float64(MatchScoreCap))
	}
	sum := 0.0
	for _, v := range breakdown {
		sum += v
	}
	if sum <= MatchScoreCap {
		t.Errorf("breakdown sum %.2f should exceed the clamp for this fixture", sum)
	}
}

func TestIsPriority_CaseInsensitive(t *testing.T) {
	s := NewScorer(DefaultRules())
	if !s.IsPriority(project([]string{"Featured"}, "", "")) {
		t.Error("marker tag match should ignore case")
	}
	if s.IsPriority(project([]string{"featured-extras"}, "", "")) {
		t.Error("marker tag must match exactly, not by prefix")
	}
}
