package models

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// NumExercises is the fixed length of the FMS screen. The 21-point maximum
// total (7 exercises x 3) depends on this cardinality.
const NumExercises = 7

//go:embed exercises.yaml
var exercisesYAML []byte

// Exercise is one of the seven fixed screening movements. Definitions are
// read-only reference data loaded once at startup.
type Exercise struct {
	ID              string            `yaml:"id" json:"id"`
	Name            string            `yaml:"name" json:"name"`
	Description     string            `yaml:"description" json:"description"`
	Instructions    string            `yaml:"instructions" json:"instructions"`
	ScoringCriteria map[string]string `yaml:"scoring_criteria" json:"scoring_criteria"`
}

// Catalog holds the exercise definitions in screening order. The order
// defines both the navigation sequence and the display order.
type Catalog struct {
	exercises []Exercise
	byID      map[string]Exercise
}

type catalogFile struct {
	Exercises []Exercise `yaml:"exercises"`
}

// LoadCatalog parses the embedded exercise definitions and validates the
// domain invariants: exactly seven exercises, unique IDs, and a rubric entry
// for each of the four score values.
func LoadCatalog() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(exercisesYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exercise catalog: %w", err)
	}

	if len(file.Exercises) != NumExercises {
		return nil, fmt.Errorf("exercise catalog must contain %d exercises, found %d", NumExercises, len(file.Exercises))
	}

	byID := make(map[string]Exercise, len(file.Exercises))
	for _, ex := range file.Exercises {
		if ex.ID == "" {
			return nil, fmt.Errorf("exercise %q has no id", ex.Name)
		}
		if _, dup := byID[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		if len(ex.ScoringCriteria) != 4 {
			return nil, fmt.Errorf("exercise %q must define 4 scoring criteria, found %d", ex.ID, len(ex.ScoringCriteria))
		}
		for _, key := range []string{"0", "1", "2", "3"} {
			if ex.ScoringCriteria[key] == "" {
				return nil, fmt.Errorf("exercise %q is missing criteria for score %s", ex.ID, key)
			}
		}
		byID[ex.ID] = ex
	}

	return &Catalog{exercises: file.Exercises, byID: byID}, nil
}

// Exercises returns the definitions in screening order.
func (c *Catalog) Exercises() []Exercise {
	return c.exercises
}

// Get looks up a single exercise by id. Returns ErrNotFound for unknown ids.
func (c *Catalog) Get(id string) (Exercise, error) {
	ex, ok := c.byID[id]
	if !ok {
		return Exercise{}, fmt.Errorf("exercise %q: %w", id, ErrNotFound)
	}
	return ex, nil
}

// IDs returns the exercise ids in screening order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.exercises))
	for i, ex := range c.exercises {
		ids[i] = ex.ID
	}
	return ids
}
