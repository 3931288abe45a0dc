// Package scoring computes totals, pain indicators and risk interpretation
// for FMS score maps. Everything here is a pure function over finalized
// scores: it runs once at submission to derive the persisted total and again
// at display time to interpret it.
package scoring

import (
	"github.com/Stephan2025u/FMS-NEW/internal/models"
)

// Interpretation is the risk banding for a total score.
type Interpretation struct {
	Level       string `json:"level"`
	Description string `json:"description"`
}

// Risk banding thresholds. These are the standard movement-screen cut
// points; 14 and 17 are exact domain constants.
const (
	goodThreshold     = 17
	moderateThreshold = 14
)

// TotalScore sums all entry scores. For a complete screen the result lies in
// [0, 21].
func TotalScore(scores models.ScoreMap) int {
	total := 0
	for _, s := range scores {
		total += s.Score
	}
	return total
}

// PainIndicatorCount counts entries flagged with pain.
func PainIndicatorCount(scores models.ScoreMap) int {
	count := 0
	for _, s := range scores {
		if s.Pain {
			count++
		}
	}
	return count
}

// AveragePerExercise divides the total by the fixed number of screening
// exercises. The denominator is always 7, not the number of scored entries.
func AveragePerExercise(scores models.ScoreMap) float64 {
	return float64(TotalScore(scores)) / float64(models.NumExercises)
}

// Interpret maps a total score onto its risk band.
func Interpret(total int) Interpretation {
	switch {
	case total >= goodThreshold:
		return Interpretation{Level: "Good", Description: "Low risk of injury, good movement quality"}
	case total >= moderateThreshold:
		return Interpretation{Level: "Moderate", Description: "Moderate risk, some movement limitations"}
	default:
		return Interpretation{Level: "Needs Attention", Description: "Higher risk of injury, significant movement limitations"}
	}
}

// ScoreColor is the display tier for a single 0-3 exercise score.
func ScoreColor(score int) string {
	switch score {
	case 3:
		return "green"
	case 2:
		return "yellow"
	case 1:
		return "orange"
	default:
		return "red"
	}
}

// TotalColor is the display tier for a 0-21 total, using the same cut points
// as Interpret.
func TotalColor(total int) string {
	switch {
	case total >= goodThreshold:
		return "green"
	case total >= moderateThreshold:
		return "yellow"
	default:
		return "red"
	}
}
