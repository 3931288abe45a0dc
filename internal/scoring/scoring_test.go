package scoring

import (
	"testing"

	"github.com/Stephan2025u/FMS-NEW/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func screenScores(t *testing.T, score int) models.ScoreMap {
	t.Helper()
	catalog, err := models.LoadCatalog()
	require.NoError(t, err)

	scores := make(models.ScoreMap, models.NumExercises)
	for _, id := range catalog.IDs() {
		scores[id] = models.ExerciseScore{Score: score}
	}
	return scores
}

func TestTotalScore(t *testing.T) {
	assert.Equal(t, 21, TotalScore(screenScores(t, 3)))
	assert.Equal(t, 0, TotalScore(screenScores(t, 0)))

	scores := screenScores(t, 2)
	scores["deepSquat"] = models.ExerciseScore{Score: 0, Pain: true}
	assert.Equal(t, 12, TotalScore(scores))
}

func TestPainIndicatorCount(t *testing.T) {
	scores := screenScores(t, 2)
	assert.Equal(t, 0, PainIndicatorCount(scores))

	scores["hurdleStep"] = models.ExerciseScore{Score: 0, Pain: true}
	scores["rotaryStability"] = models.ExerciseScore{Score: 0, Pain: true}
	assert.Equal(t, 2, PainIndicatorCount(scores))
}

func TestAveragePerExercise_FixedDenominator(t *testing.T) {
	assert.InDelta(t, 3.0, AveragePerExercise(screenScores(t, 3)), 1e-9)
	assert.InDelta(t, 1.0, AveragePerExercise(screenScores(t, 1)), 1e-9)

	// The denominator is the number of screening exercises, not the number
	// of scored entries, even on an incomplete map.
	partial := models.ScoreMap{
		"deepSquat":  {Score: 3},
		"hurdleStep": {Score: 3},
	}
	assert.InDelta(t, 6.0/7.0, AveragePerExercise(partial), 1e-9)
}

func TestInterpret_Thresholds(t *testing.T) {
	tests := []struct {
		total     int
		wantLevel string
	}{
		{21, "Good"},
		{17, "Good"},
		{16, "Moderate"},
		{14, "Moderate"},
		{13, "Needs Attention"},
		{0, "Needs Attention"},
	}

	for _, tt := range tests {
		got := Interpret(tt.total)
		assert.Equal(t, tt.wantLevel, got.Level, "total %d", tt.total)
		assert.NotEmpty(t, got.Description, "total %d", tt.total)
	}
}

func TestInterpret_Descriptions(t *testing.T) {
	assert.Equal(t, "Low risk of injury, good movement quality", Interpret(18).Description)
	assert.Equal(t, "Moderate risk, some movement limitations", Interpret(15).Description)
	assert.Equal(t, "Higher risk of injury, significant movement limitations", Interpret(10).Description)
}

func TestColors(t *testing.T) {
	assert.Equal(t, "green", ScoreColor(3))
	assert.Equal(t, "yellow", ScoreColor(2))
	assert.Equal(t, "orange", ScoreColor(1))
	assert.Equal(t, "red", ScoreColor(0))

	assert.Equal(t, "green", TotalColor(17))
	assert.Equal(t, "yellow", TotalColor(14))
	assert.Equal(t, "red", TotalColor(13))
}

// Full-screen scenarios the engine must get exactly right.
func TestPerfectScreen(t *testing.T) {
	scores := screenScores(t, 3)

	assert.Equal(t, 21, TotalScore(scores))
	assert.Equal(t, 0, PainIndicatorCount(scores))
	assert.InDelta(t, 3.0, AveragePerExercise(scores), 1e-9)
	assert.Equal(t, "Good", Interpret(TotalScore(scores)).Level)
}

func TestScreenWithOnePainfulExercise(t *testing.T) {
	scores := screenScores(t, 2)
	scores["shoulderMobility"] = models.ExerciseScore{Score: 0, Pain: true}

	total := TotalScore(scores)
	assert.Equal(t, 12, total)
	assert.Equal(t, 1, PainIndicatorCount(scores))
	assert.Equal(t, "Needs Attention", Interpret(total).Level)
}
