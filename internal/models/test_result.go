package models

import (
	"time"

	"gorm.io/datatypes"
)

// TestResult is the immutable, persisted outcome of one completed
// assessment. The id, test date and total score are assigned at creation and
// never change; deletion removes the whole record.
type TestResult struct {
	ID            string                       `gorm:"primaryKey" json:"id"`
	ClientID      string                       `gorm:"index;not null" json:"client_id"`
	Client        Client                       `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	TestDate      time.Time                    `json:"test_date"`
	Scores        datatypes.JSONType[ScoreMap] `json:"scores"`
	TotalScore    int                          `json:"total_score"`
	AssessorNotes *string                      `json:"assessor_notes,omitempty"`
}

// ScoreData unwraps the JSONB scores column.
func (t *TestResult) ScoreData() ScoreMap {
	return t.Scores.Data()
}
