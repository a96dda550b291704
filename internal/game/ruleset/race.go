package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Subrace holds the races table row of a single subrace.
//
// Properties is keyed by base property code; missing codes count as zero.
type Subrace struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Properties map[string]int `yaml:"properties"`
	Toughness  int            `yaml:"toughness"`
	Size       int            `yaml:"size"`
	Senses     int            `yaml:"senses"`
	WeightInKg float64        `yaml:"weight_kg"`
	HeightInCm float64        `yaml:"height_cm"`
}

// FemaleModifiers holds the adjustments a race applies to its female members.
type FemaleModifiers struct {
	Properties map[string]int `yaml:"properties"`
	Size       int            `yaml:"size"`
	WeightInKg float64        `yaml:"weight_kg"`
}

// Race defines a playable race and its subraces.
//
// Precondition: ID, Name and at least one subrace must be present after loading.
type Race struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Subraces    []Subrace       `yaml:"subraces"`
	Female      FemaleModifiers `yaml:"female"`
}

// Validate checks the loaded race definition.
//
// Postcondition: Returns nil if the definition is usable, or an error naming the first violation.
func (r *Race) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("race has empty id")
	}
	if r.Name == "" {
		return fmt.Errorf("race %q has empty name", r.ID)
	}
	if len(r.Subraces) == 0 {
		return fmt.Errorf("race %q has no subraces", r.ID)
	}
	seen := make(map[string]bool, len(r.Subraces))
	for _, s := range r.Subraces {
		if s.ID == "" {
			return fmt.Errorf("race %q has a subrace with empty id", r.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("race %q has duplicate subrace %q", r.ID, s.ID)
		}
		seen[s.ID] = true
		if s.WeightInKg <= 0 {
			return fmt.Errorf("race %q subrace %q: weight_kg must be positive", r.ID, s.ID)
		}
		if s.HeightInCm <= 0 {
			return fmt.Errorf("race %q subrace %q: height_cm must be positive", r.ID, s.ID)
		}
	}
	return nil
}

// LoadRaces reads all .yaml files in dir and parses each as a Race.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed and validated races (may be empty slice) or a non-nil error.
func LoadRaces(dir string) ([]*Race, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	races := make([]*Race, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var r Race
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parsing race file %s: %w", path, err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("validating race file %s: %w", path, err)
		}
		races = append(races, &r)
	}
	return races, nil
}
