package scoring

import (
	"math"
	"strings"

	"github.com/blackwell-systems/reporadar/internal/catalog"
	"github.com/blackwell-systems/reporadar/internal/opendigger"
)

// Scorer computes the multi-component affinity between a profile and a
// catalogued project. All lookup tables are injected via Rules.
type Scorer struct {
	rules Rules
}

// NewScorer creates a Scorer running on the given rule tables.
func NewScorer(rules Rules) *Scorer {
	return &Scorer{rules: rules}
}

// IsPriority reports whether the project carries the priority marker tag.
func (s *Scorer) IsPriority(project catalog.Project) bool {
	return project.HasTag(s.rules.PriorityTag)
}

// Score returns the capped match score and the per-component breakdown.
// Six additive components, each independently capped, with the total
// clamped to MatchScoreCap. Totals above 100 are deliberate headroom
// signalling exceptional fit.
func (s *Scorer) Score(profile Profile, project catalog.Project, snapshot opendigger.MetricSnapshot) (float64, Breakdown) {
	tags := project.TagsLower()
	isPriority := s.IsPriority(project)

	breakdown := Breakdown{}
	total := 0.0

	skillScore := s.skillMatch(profile.Skills, tags, isPriority)
	total += skillScore
	breakdown[ComponentSkillMatch] = skillScore

	interestScore := s.interestMatch(profile.Interests, tags)
	total += interestScore
	breakdown[ComponentInterestMatch] = interestScore

	expScore := s.experienceMatch(profile.ExperienceLevel, project.Difficulty)
	total += expScore
	breakdown[ComponentExperienceMatch] = expScore

	qualityBonus := HealthScore(snapshot) * qualityFactor
	total += qualityBonus
	breakdown[ComponentQualityBonus] = qualityBonus

	priorityBonus := s.priorityBonus(profile.Skills, tags, isPriority)
	total += priorityBonus
	breakdown[ComponentPriorityBonus] = priorityBonus

	hotTechBonus := s.hotTechBonus(profile.Skills, tags)
	total += hotTechBonus
	breakdown[ComponentHotTechBonus] = hotTechBonus

	return math.Min(total, MatchScoreCap), breakdown
}

// skillMatch scores direct tag hits, adjacency-graph hits, and skill-group
// overlap, capped at 80.
func (s *Scorer) skillMatch(skills []string, tags []string, isPriority bool) float64 {
	tagSet := toSet(tags)
	score := 0.0

	for _, skill := range skills {
		skillLower := strings.ToLower(skill)

		if tagSet[skillLower] {
			hit := float64(directSkillHit)
			if s.rules.HotSkills[skillLower] {
				hit += hotSkillBonus
			}
			if isPriority && s.rules.PrioritySkills[skillLower] {
				hit += prioritySkill
			}
			score += hit
			continue
		}

		// Indirect hit through the adjacency graph. Only the first
		// matching related term counts per skill.
		for _, related := range s.rules.SkillGraph[skillLower] {
			if tagSet[related] {
				hit := float64(relatedSkillHit)
				if s.rules.HotSkills[skillLower] {
					hit += relatedHotBonus
				}
				score += hit
				break
			}
		}
	}

	// Skill-group bonus: sharing two or more members of a thematic group
	// with the project earns points per overlapping member.
	for _, group := range s.rules.SkillGroups {
		groupSet := toSet(group)

		userInGroup := map[string]bool{}
		for _, skill := range skills {
			if lower := strings.ToLower(skill); groupSet[lower] {
				userInGroup[lower] = true
			}
		}

		projectInGroup := map[string]bool{}
		for _, tag := range tags {
			if groupSet[tag] {
				projectInGroup[tag] = true
			}
		}

		if len(userInGroup) >= 2 && len(projectInGroup) >= 2 {
			overlap := 0
			for member := range userInGroup {
				if projectInGroup[member] {
					overlap++
				}
			}
			score += float64(overlap * groupHitValue)
		}
	}

	return math.Min(score, skillMatchCap)
}

// interestMatch scores direct, partial (substring either direction), and
// category-keyword hits, capped at 50.
func (s *Scorer) interestMatch(interests []string, tags []string) float64 {
	tagSet := toSet(tags)
	score := 0.0

	for _, interest := range interests {
		interestLower := strings.ToLower(interest)

		if tagSet[interestLower] {
			score += directInterestHit
		} else if partialTagHit(interestLower, tags) {
			score += partialInterestHit
		}

		// Category keywords accumulate independently of direct hits.
		if keywords, ok := s.rules.InterestCategories[interestLower]; ok {
			overlap := 0
			for _, kw := range keywords {
				if tagSet[kw] {
					overlap++
				}
			}
			score += float64(overlap * interestKeywordHit)
		}
	}

	return math.Min(score, interestMatchCap)
}

// experienceMatch looks up the experience-level against difficulty table.
func (s *Scorer) experienceMatch(experience, difficulty string) float64 {
	if row, ok := s.rules.ExperienceMatrix[experience]; ok {
		if v, ok := row[difficulty]; ok {
			return v
		}
	}
	return experienceDefault
}

// priorityBonus awards the flat priority baseline plus a bonus per
// matching sub-category. Sub-category bonuses stack additively when a
// project triggers more than one, mirroring the reference behavior.
func (s *Scorer) priorityBonus(skills []string, tags []string, isPriority bool) float64 {
	if !isPriority {
		return 0
	}

	tagSet := toSet(tags)
	skillSet := map[string]bool{}
	for _, skill := range skills {
		skillSet[strings.ToLower(skill)] = true
	}

	bonus := float64(priorityBase)
	for _, category := range s.rules.PriorityCategories {
		if anyIn(category.TriggerTags, tagSet) && anyIn(category.Skills, skillSet) {
			bonus += priorityCategory
		}
	}
	return bonus
}

// hotTechBonus awards table points for technologies present on both
// sides, capped at 30.
func (s *Scorer) hotTechBonus(skills []string, tags []string) float64 {
	tagSet := toSet(tags)
	skillSet := map[string]bool{}
	for _, skill := range skills {
		skillSet[strings.ToLower(skill)] = true
	}

	bonus := 0.0
	for tech, points := range s.rules.HotTech {
		if skillSet[tech] && tagSet[tech] {
			bonus += points
		}
	}
	return math.Min(bonus, hotTechCap)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func anyIn(items []string, set map[string]bool) bool {
	for _, item := range items {
		if set[item] {
			return true
		}
	}
	return false
}

// partialTagHit reports whether the interest is a substring of any tag
// or any tag is a substring of the interest.
func partialTagHit(interest string, tags []string) bool {
	for _, tag := range tags {
		if strings.Contains(tag, interest) || strings.Contains(interest, tag) {
			return true
		}
	}
	return false
}
