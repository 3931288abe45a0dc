package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The catalog is fixed domain data: the screen is exactly these seven
// movements in this order, and the 21-point maximum depends on it.
func TestLoadCatalog_SevenCanonicalExercises(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	wantOrder := []string{
		"deepSquat",
		"hurdleStep",
		"inLineLunge",
		"shoulderMobility",
		"activeStraightLeg",
		"trunkStabilityPushup",
		"rotaryStability",
	}
	assert.Equal(t, wantOrder, catalog.IDs())
	assert.Len(t, catalog.Exercises(), NumExercises)
}

func TestLoadCatalog_RubricCoversAllScores(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	for _, ex := range catalog.Exercises() {
		assert.Len(t, ex.ScoringCriteria, 4, "exercise %s", ex.ID)
		for _, key := range []string{"0", "1", "2", "3"} {
			assert.NotEmpty(t, ex.ScoringCriteria[key], "exercise %s score %s", ex.ID, key)
		}
		// Score 0 is the pain score on every exercise.
		assert.Contains(t, ex.ScoringCriteria["0"], "Pain", "exercise %s", ex.ID)
		assert.NotEmpty(t, ex.Name)
		assert.NotEmpty(t, ex.Description)
		assert.NotEmpty(t, ex.Instructions)
	}
}

func TestCatalog_Get(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	ex, err := catalog.Get("deepSquat")
	require.NoError(t, err)
	assert.Equal(t, "Deep Squat", ex.Name)

	_, err = catalog.Get("backflip")
	assert.ErrorIs(t, err, ErrNotFound)
}
