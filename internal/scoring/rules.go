package scoring

import "github.com/blackwell-systems/reporadar/internal/catalog"

// Point values and caps for the match components.
const (
	directSkillHit  = 25
	hotSkillBonus   = 10
	prioritySkill   = 15
	relatedSkillHit = 15
	relatedHotBonus = 8
	groupHitValue   = 5
	skillMatchCap   = 80

	directInterestHit  = 20
	partialInterestHit = 12
	interestKeywordHit = 6
	interestMatchCap   = 50

	experienceDefault = 15

	qualityFactor = 0.2

	priorityBase     = 40
	priorityCategory = 20

	hotTechCap = 30

	// MatchScoreCap bounds the total match score. Scores above 100 are
	// legitimate and signal exceptional fit.
	MatchScoreCap = 150
)

// PriorityCategory describes one flavour of featured project and the
// profile skills relevant to it.
type PriorityCategory struct {
	Name        string
	TriggerTags []string
	Skills      []string
}

// Rules holds the static lookup tables the Match Scorer runs on. They are
// injected at construction so tests can substitute smaller tables.
type Rules struct {
	// PriorityTag marks projects that receive the baseline priority bonus.
	PriorityTag string

	// HotSkills get extra weight on direct and related tag hits.
	HotSkills map[string]bool

	// PrioritySkills get an additional bonus on direct hits against
	// priority-marked projects.
	PrioritySkills map[string]bool

	// HotTech maps technology names to bonus points awarded when both
	// the profile and the project carry the technology.
	HotTech map[string]float64

	// SkillGraph maps a skill to terms considered adjacent to it.
	SkillGraph map[string][]string

	// SkillGroups are thematic clusters; sharing two or more members of
	// a group with a project earns a per-overlap bonus.
	SkillGroups [][]string

	// InterestCategories maps an interest to tag keywords counted for
	// the category-overlap bonus.
	InterestCategories map[string][]string

	// ExperienceMatrix scores experience level against project difficulty.
	ExperienceMatrix map[string]map[string]float64

	// PriorityCategories are the featured-project sub-categories.
	PriorityCategories []PriorityCategory
}

// DefaultRules returns the built-in scoring tables.
func DefaultRules() Rules {
	return Rules{
		PriorityTag: catalog.PriorityTag,

		HotSkills: map[string]bool{
			"python":           true,
			"javascript":       true,
			"machine-learning": true,
			"data-science":     true,
			"frontend":         true,
		},

		PrioritySkills: map[string]bool{
			"java":               true,
			"javascript":         true,
			"data-visualization": true,
			"big-data":           true,
			"iot":                true,
		},

		HotTech: map[string]float64{
			"machine-learning": 15,
			"ai":               15,
			"data-science":     12,
			"python":           10,
			"javascript":       10,
			"react":            8,
			"vue":              8,
			"big-data":         10,
			"iot":              8,
		},

		SkillGraph: map[string][]string{
			"python": {"django", "flask", "fastapi", "pandas", "numpy",
				"tensorflow", "pytorch", "machine-learning", "data-science", "data-analysis"},
			"javascript": {"react", "vue", "angular", "node", "typescript",
				"webpack", "frontend", "web", "express"},
			"java": {"spring", "spring-boot", "hibernate", "android",
				"backend", "enterprise", "microservices", "iotdb", "dataease"},
			"machine-learning": {"deep-learning", "ai", "neural-networks",
				"data-science", "python", "tensorflow", "pytorch"},
			"data-science": {"data-analysis", "data-mining", "statistics",
				"visualization", "big-data", "python", "pandas", "numpy", "machine-learning"},
			"frontend": {"javascript", "react", "vue", "css", "html",
				"responsive", "ui-ux", "web"},
			"big-data": {"hadoop", "spark", "hive", "data-analysis",
				"distributed", "data-warehouse", "iot", "iotdb"},
			"data-visualization": {"bi", "dashboard", "reporting", "charts",
				"data-analysis", "javascript", "python", "dataease"},
			"iot": {"sensors", "embedded", "time-series", "big-data",
				"real-time-analytics", "iotdb", "industrial-internet"},
			"devops": {"docker", "kubernetes", "ci-cd", "aws", "azure",
				"cloud-native", "infrastructure", "automation"},
		},

		SkillGroups: [][]string{
			{"python", "machine-learning", "data-science"},
			{"javascript", "frontend", "react", "vue"},
			{"java", "backend", "spring"},
			{"big-data", "iot", "data-analysis"},
		},

		InterestCategories: map[string][]string{
			"web-development": {"javascript", "react", "vue", "frontend", "web"},
			"data-science":    {"python", "data-analysis", "machine-learning", "ai", "data-science"},
			"ai-ml":           {"ai", "machine-learning", "deep-learning", "neural-networks", "python"},
			"iot":             {"iot", "sensors", "embedded", "time-series"},
		},

		ExperienceMatrix: map[string]map[string]float64{
			ExperienceBeginner: {
				ExperienceBeginner:     30,
				ExperienceIntermediate: 15,
				ExperienceAdvanced:     5,
			},
			ExperienceIntermediate: {
				ExperienceBeginner:     20,
				ExperienceIntermediate: 25,
				ExperienceAdvanced:     15,
			},
			ExperienceAdvanced: {
				ExperienceBeginner:     10,
				ExperienceIntermediate: 20,
				ExperienceAdvanced:     30,
			},
		},

		PriorityCategories: []PriorityCategory{
			{
				Name:        "visualization",
				TriggerTags: []string{"dataease", "data-visualization"},
				Skills:      []string{"data-visualization", "data-analysis", "javascript", "java"},
			},
			{
				Name:        "time-series-db",
				TriggerTags: []string{"iotdb", "time-series", "iot"},
				Skills:      []string{"big-data", "iot", "java", "database"},
			},
			{
				Name:        "analytics",
				TriggerTags: []string{"open-digger", "oss-analytics"},
				Skills:      []string{"data-analysis", "javascript", "oss-analytics"},
			},
		},
	}
}
