package repository

import (
	"context"
	"time"

	"github.com/Stephan2025u/FMS-NEW/internal/database"
)

// ScorePoint is one test on a client's progress timeline.
type ScorePoint struct {
	Date  time.Time `json:"date"`
	Value int       `json:"value"`
}

// GetScoreTimeline returns a client's total scores in chronological order,
// oldest first, for the progress chart.
func GetScoreTimeline(ctx context.Context, clientID string) ([]ScorePoint, error) {
	var points []ScorePoint
	err := database.DB.WithContext(ctx).Raw(`
		SELECT test_date AS date, total_score AS value
		FROM test_results
		WHERE client_id = ?
		ORDER BY test_date ASC;
	`, clientID).Scan(&points).Error
	if err != nil {
		return nil, wrapDBError("score timeline", err)
	}
	return points, nil
}
