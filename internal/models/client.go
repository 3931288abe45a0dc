package models

import "time"

// Client is a tracked client. The rollup fields (TotalTests, LatestScore,
// LastTestDate) are maintained by the repository when test results are
// created or deleted; they are never written by the scoring engine or by
// client update requests.
type Client struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"not null" json:"email"`
	Phone        *string    `json:"phone,omitempty"`
	DateOfBirth  *string    `json:"date_of_birth,omitempty"`
	Occupation   *string    `json:"occupation,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	TotalTests   int        `json:"total_tests"`
	LatestScore  *int       `json:"latest_score,omitempty"`
	LastTestDate *time.Time `json:"last_test_date,omitempty"`
}

// ClientUpdate is a partial update for a client's profile fields.
type ClientUpdate struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Occupation  *string `json:"occupation"`
}
