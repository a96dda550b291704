package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profession defines a playable profession.
// PrimaryProperties is empty for professions that never level up (commoner).
//
// Precondition: ID and Name must be non-empty after loading.
type Profession struct {
	ID                string   `yaml:"id"`
	Name              string   `yaml:"name"`
	Description       string   `yaml:"description"`
	PrimaryProperties []string `yaml:"primary_properties"`
}

// LoadProfessions reads all .yaml files in dir and parses each as a Profession.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed professions (may be empty slice) or a non-nil error.
func LoadProfessions(dir string) ([]*Profession, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	professions := make([]*Profession, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var p Profession
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing profession file %s: %w", path, err)
		}
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("profession file %s: id and name must not be empty", path)
		}
		professions = append(professions, &p)
	}
	return professions, nil
}
