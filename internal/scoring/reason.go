package scoring

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/reporadar/internal/catalog"
)

// reasonSeparator joins the individual reason fragments.
const reasonSeparator = " | "

// maxReasons caps how many rule texts make it into the final string.
const maxReasons = 4

// Reason renders a short human-readable justification from a score
// breakdown. It evaluates a fixed ordered rule list and keeps the first
// four matches; same inputs always produce the same text.
func (s *Scorer) Reason(matchScore float64, breakdown Breakdown, project catalog.Project, profile Profile) string {
	var reasons []string

	switch {
	case matchScore > 100:
		reasons = append(reasons, "Exceptional match")
	case matchScore > 80:
		reasons = append(reasons, "Strong match")
	case matchScore > 60:
		reasons = append(reasons, "Good match")
	}

	skillScore := breakdown[ComponentSkillMatch]
	switch {
	case skillScore > 50:
		reasons = append(reasons, "Multiple skills align closely")
	case skillScore > 30:
		reasons = append(reasons, "Key skills match")
	}

	interestScore := breakdown[ComponentInterestMatch]
	switch {
	case interestScore > 25:
		reasons = append(reasons, "Fits your core interests")
	case interestScore > 15:
		reasons = append(reasons, "Fits your interest areas")
	}

	if s.IsPriority(project) {
		reasons = append(reasons, "Featured priority project")
		priorityScore := breakdown[ComponentPriorityBonus]
		switch {
		case priorityScore > 50:
			reasons = append(reasons, "Highly relevant to your skill set")
		case priorityScore > 30:
			reasons = append(reasons, "Relevant to your skill set")
		}
	}

	switch project.Category {
	case "ai-ml":
		reasons = append(reasons, "Popular AI/ML domain")
	case "frontend":
		reasons = append(reasons, "Mainstream frontend stack")
	case "visualization":
		reasons = append(reasons, "Practical data visualization tool")
	case "database":
		reasons = append(reasons, "Core database technology")
	}

	if profile.ExperienceLevel != "" && profile.ExperienceLevel == project.Difficulty {
		reasons = append(reasons, fmt.Sprintf("Difficulty suits %s developers", profile.ExperienceLevel))
	}

	if len(reasons) == 0 {
		return "A solid open-source project worth exploring"
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return strings.Join(reasons, reasonSeparator)
}
