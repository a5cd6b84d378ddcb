// Package scoring computes affinity and health scores for catalogued
// projects against a developer profile.
package scoring

// Experience levels shared by profiles and project difficulty ratings.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// Profile describes a developer's skills, interests, and experience.
// It is built once per analysis run and not mutated during scoring.
type Profile struct {
	Username        string   `json:"username,omitempty"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	ExperienceLevel string   `json:"experience_level"`
	ActivityScore   float64  `json:"activity_score"`
}

// Breakdown maps component names to their capped contributions.
// The capped sum of all components is the match score.
type Breakdown map[string]float64

// Breakdown component keys.
const (
	ComponentSkillMatch      = "skill_match"
	ComponentInterestMatch   = "interest_match"
	ComponentExperienceMatch = "experience_match"
	ComponentQualityBonus    = "quality_bonus"
	ComponentPriorityBonus   = "priority_bonus"
	ComponentHotTechBonus    = "hot_tech_bonus"
)
