// Package catalog holds the curated set of open-source projects that
// reporadar ranks. The catalogue is configuration data: loaded once,
// never mutated during a scoring pass.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project describes one catalogued repository.
type Project struct {
	// ID is the owner/name key, e.g. "apache/iotdb".
	ID string `yaml:"-" json:"id"`

	// Tags are matched case-insensitively but stored as provided
	// so reports can display the original casing.
	Tags []string `yaml:"tags" json:"tags"`

	Category    string `yaml:"category" json:"category"`
	Difficulty  string `yaml:"difficulty" json:"difficulty"`
	Description string `yaml:"description" json:"description"`
}

// HasTag reports whether the project carries the given tag, ignoring case.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// TagsLower returns the project's tags lowercased, for matching.
func (p Project) TagsLower() []string {
	out := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		out[i] = strings.ToLower(t)
	}
	return out
}

// Load returns the catalogue from the given YAML file, or the built-in
// default catalogue when path is empty. The file maps "owner/name" keys
// to project records.
func Load(path string) (map[string]Project, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	raw := map[string]Project{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	projects := make(map[string]Project, len(raw))
	for id, p := range raw {
		p.ID = id
		projects[id] = p
	}
	return projects, nil
}
