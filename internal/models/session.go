package models

import (
	"fmt"
	"time"
)

// Session is the mutable state of one in-progress assessment. It is owned by
// a single flow, lives in memory only, and is discarded once converted into
// a TestResult (or abandoned).
type Session struct {
	ID                   string            `json:"id"`
	ClientID             string            `json:"client_id"`
	CurrentExerciseIndex int               `json:"current_exercise_index"`
	Order                []string          `json:"order"`
	Entries              map[string]*Entry `json:"entries"`
	AssessorNotes        string            `json:"assessor_notes,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// EntryUpdate is a partial update for a single entry. Nil fields are left
// untouched.
type EntryUpdate struct {
	Score *int    `json:"score"`
	Pain  *bool   `json:"pain"`
	Notes *string `json:"notes"`
}

// NewSession seeds a session with the catalog's exercises in screening
// order, all unscored, positioned at the first exercise.
func NewSession(clientID string, catalog *Catalog) *Session {
	order := catalog.IDs()
	entries := make(map[string]*Entry, len(order))
	for _, id := range order {
		entries[id] = &Entry{ExerciseID: id}
	}
	now := time.Now().UTC()
	return &Session{
		ClientID:  clientID,
		Order:     order,
		Entries:   entries,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CurrentExerciseID returns the id of the exercise at the current index.
func (s *Session) CurrentExerciseID() string {
	return s.Order[s.CurrentExerciseIndex]
}

// Advance moves to the next exercise. Blocked with ErrInvalidTransition while
// the current exercise is unscored, and at the last exercise (submission is
// the only way forward from there).
func (s *Session) Advance() error {
	if !s.Entries[s.CurrentExerciseID()].Scored() {
		return ErrInvalidTransition
	}
	if s.CurrentExerciseIndex >= len(s.Order)-1 {
		return ErrInvalidTransition
	}
	s.CurrentExerciseIndex++
	s.touch()
	return nil
}

// Retreat moves back one exercise. Backward navigation is free: no score is
// required, but the index never goes below zero.
func (s *Session) Retreat() error {
	if s.CurrentExerciseIndex <= 0 {
		return ErrInvalidTransition
	}
	s.CurrentExerciseIndex--
	s.touch()
	return nil
}

// UpdateEntry merges a partial update into the entry for the given exercise.
// It is index-independent: any exercise may be updated regardless of the
// current position. Pain is applied before score so that a patch carrying
// both resolves with pain dominating.
func (s *Session) UpdateEntry(exerciseID string, update EntryUpdate) error {
	entry, ok := s.Entries[exerciseID]
	if !ok {
		return fmt.Errorf("exercise %q: %w", exerciseID, ErrNotFound)
	}
	// The whole patch is validated before any field is applied; a rejected
	// update leaves the entry exactly as it was.
	if update.Score != nil && (*update.Score < 0 || *update.Score > 3) {
		return ErrInvalidScore
	}
	if update.Pain != nil {
		entry.SetPain(*update.Pain)
	}
	if update.Score != nil {
		if err := entry.SetScore(*update.Score); err != nil {
			return err
		}
	}
	if update.Notes != nil {
		entry.SetNotes(*update.Notes)
	}
	s.touch()
	return nil
}

// IsComplete reports whether every exercise has a defined score. Pain does
// not exempt an exercise: a pain-forced 0 is a defined score.
func (s *Session) IsComplete() bool {
	for _, entry := range s.Entries {
		if !entry.Scored() {
			return false
		}
	}
	return true
}

// CurrentTotal is the running sum of defined scores, for live progress
// display. Unscored exercises contribute 0.
func (s *Session) CurrentTotal() int {
	total := 0
	for _, entry := range s.Entries {
		if entry.Scored() {
			total += *entry.Score
		}
	}
	return total
}

// Finalize freezes the session's entries into a ScoreMap, recording the
// assessor's closing notes. Fails with ErrIncompleteAssessment unless every
// exercise is scored; the session remains alive and resumable on failure.
func (s *Session) Finalize(assessorNotes string) (ScoreMap, error) {
	if !s.IsComplete() {
		return nil, ErrIncompleteAssessment
	}
	s.AssessorNotes = assessorNotes
	scores := make(ScoreMap, len(s.Entries))
	for id, entry := range s.Entries {
		scores[id] = ExerciseScore{
			Score: *entry.Score,
			Pain:  entry.Pain,
			Notes: entry.Notes,
		}
	}
	return scores, nil
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
