package catalog

// PriorityTag marks catalogue entries that get a baseline score
// elevation regardless of organic match strength.
const PriorityTag = "featured"

// Default returns the built-in project catalogue.
func Default() map[string]Project {
	projects := map[string]Project{
		// Featured projects.
		"apache/iotdb": {
			Tags: []string{"java", "time-series", "database", "iot", "featured",
				"apache", "big-data", "iotdb", "industrial-internet"},
			Category:    "database",
			Difficulty:  "intermediate",
			Description: "Apache IoTDB: high-performance time-series database",
		},
		"X-lab2017/open-digger": {
			Tags: []string{"javascript", "oss-analytics", "data-visualization", "featured",
				"metrics", "analytics", "open-digger", "data-mining", "github-analysis", "data-analysis"},
			Category:    "analytics",
			Difficulty:  "intermediate",
			Description: "OpenDigger: open-source ecosystem analytics platform",
		},
		"dataease/dataease": {
			Tags: []string{"java", "data-visualization", "bi", "featured", "low-code",
				"reporting", "dashboard", "business-intelligence", "dataease"},
			Category:    "visualization",
			Difficulty:  "beginner",
			Description: "DataEase: open-source data visualization and analysis tool",
		},

		// AI / machine learning.
		"pytorch/pytorch": {
			Tags: []string{"python", "deep-learning", "ai", "machine-learning", "framework",
				"neural-networks", "gpu", "research", "trending"},
			Category:    "ai-ml",
			Difficulty:  "advanced",
			Description: "PyTorch: open-source machine learning framework",
		},
		"tensorflow/tensorflow": {
			Tags: []string{"python", "machine-learning", "deep-learning", "ai", "google",
				"production", "deployment", "keras", "trending"},
			Category:    "ai-ml",
			Difficulty:  "advanced",
			Description: "TensorFlow: open-source machine learning platform",
		},
		"huggingface/transformers": {
			Tags: []string{"python", "nlp", "transformer", "pretrained-models", "bert",
				"gpt", "llm", "ai", "trending"},
			Category:    "ai-ml",
			Difficulty:  "intermediate",
			Description: "Transformers: pretrained models for natural language processing",
		},
		"langchain-ai/langchain": {
			Tags: []string{"python", "ai", "llm", "application-development", "framework",
				"machine-learning", "trending"},
			Category:    "ai-ml",
			Difficulty:  "intermediate",
			Description: "LangChain: framework for building LLM applications",
		},

		// Frontend.
		"vuejs/vue": {
			Tags: []string{"javascript", "frontend", "vue", "progressive", "components",
				"spa", "mvvm", "reactive", "trending"},
			Category:    "frontend",
			Difficulty:  "intermediate",
			Description: "Vue.js: progressive JavaScript framework",
		},
		"facebook/react": {
			Tags: []string{"javascript", "frontend", "react", "ui", "virtual-dom",
				"hooks", "ecosystem", "trending"},
			Category:    "frontend",
			Difficulty:  "intermediate",
			Description: "React: JavaScript library for building user interfaces",
		},
		"vercel/next.js": {
			Tags: []string{"javascript", "react", "ssr", "fullstack", "server-side-rendering",
				"framework", "static-generation", "frontend"},
			Category:    "frontend",
			Difficulty:  "intermediate",
			Description: "Next.js: full-stack React framework",
		},

		// Backend and databases.
		"spring-projects/spring-boot": {
			Tags: []string{"java", "backend", "spring", "microservices", "enterprise",
				"rest-api", "web", "dependency-injection"},
			Category:    "backend",
			Difficulty:  "intermediate",
			Description: "Spring Boot: Java framework for enterprise applications",
		},
		"ClickHouse/ClickHouse": {
			Tags: []string{"c++", "olap", "database", "columnar", "real-time-analytics",
				"performance", "big-data"},
			Category:    "database",
			Difficulty:  "advanced",
			Description: "ClickHouse: high-performance column-oriented database",
		},

		// Developer tools.
		"microsoft/vscode": {
			Tags: []string{"typescript", "editor", "ide", "developer-tools", "extensible",
				"lightweight", "cross-platform", "tools"},
			Category:    "dev-tools",
			Difficulty:  "beginner",
			Description: "VS Code: lightweight code editor",
		},

		// DevOps.
		"kubernetes/kubernetes": {
			Tags: []string{"go", "container-orchestration", "devops", "cloud-native",
				"microservices", "distributed", "automation", "trending"},
			Category:    "devops",
			Difficulty:  "advanced",
			Description: "Kubernetes: container orchestration platform",
		},
		"docker/compose": {
			Tags: []string{"go", "container-orchestration", "devops", "multi-container",
				"dev-environment", "deployment", "microservices", "tools"},
			Category:    "devops",
			Difficulty:  "intermediate",
			Description: "Docker Compose: tool for multi-container Docker applications",
		},
	}

	for id, p := range projects {
		p.ID = id
		projects[id] = p
	}
	return projects
}
