package models

import "fmt"

// Entry is the in-progress score for a single exercise within a session.
// A nil Score means the exercise has not been scored yet.
type Entry struct {
	ExerciseID string `json:"exercise_id"`
	Score      *int   `json:"score"`
	Pain       bool   `json:"pain"`
	Notes      string `json:"notes,omitempty"`
}

// ExerciseScore is the finalized, frozen form of an entry as it appears on a
// persisted test result.
type ExerciseScore struct {
	Score int    `json:"score"`
	Pain  bool   `json:"pain"`
	Notes string `json:"notes,omitempty"`
}

// ScoreMap maps exercise ids to their finalized scores.
type ScoreMap map[string]ExerciseScore

// SetScore assigns a score in {0,1,2,3}. While pain is flagged the score is
// locked at 0: non-zero values are silently ignored rather than rejected,
// matching the scoring UI which disables those options.
func (e *Entry) SetScore(value int) error {
	if value < 0 || value > 3 {
		return ErrInvalidScore
	}
	if e.Pain && value != 0 {
		return nil
	}
	e.Score = &value
	return nil
}

// SetPain flags pain during the movement. Pain dominates the score: setting
// the flag forces the score to 0. Clearing it leaves the score as-is; the
// previous value is not restored.
func (e *Entry) SetPain(flag bool) {
	e.Pain = flag
	if flag {
		zero := 0
		e.Score = &zero
	}
}

// SetNotes overwrites the free-text notes.
func (e *Entry) SetNotes(text string) {
	e.Notes = text
}

// Scored reports whether the exercise has a defined score. A pain-forced 0
// counts as scored.
func (e *Entry) Scored() bool {
	return e.Score != nil
}

// Validate checks a finalized score map against the catalog before it is
// allowed anywhere near the store: every catalog exercise must be scored,
// no unknown exercises, scores in range, and pain entries scored 0.
func (m ScoreMap) Validate(catalog *Catalog) error {
	for id := range m {
		if _, err := catalog.Get(id); err != nil {
			return err
		}
	}
	for _, id := range catalog.IDs() {
		s, ok := m[id]
		if !ok {
			return fmt.Errorf("exercise %q is unscored: %w", id, ErrIncompleteAssessment)
		}
		if s.Score < 0 || s.Score > 3 {
			return fmt.Errorf("exercise %q: %w", id, ErrInvalidScore)
		}
		if s.Pain && s.Score != 0 {
			return fmt.Errorf("exercise %q reports pain but is not scored 0: %w", id, ErrInvalidScore)
		}
	}
	return nil
}
