package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Stephan2025u/FMS-NEW/internal/database"
	"github.com/Stephan2025u/FMS-NEW/internal/models"
	"github.com/Stephan2025u/FMS-NEW/internal/scoring"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateTestResult is the sole path by which assessment data becomes
// durable. The score map is validated before the store is touched, and the
// total score is computed core-side; the store never recomputes it. Record
// insert and client rollup commit in one transaction.
func CreateTestResult(ctx context.Context, catalog *models.Catalog, clientID string, scores models.ScoreMap, assessorNotes *string) (*models.TestResult, error) {
	if err := scores.Validate(catalog); err != nil {
		return nil, err
	}

	record := &models.TestResult{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		TestDate:      time.Now().UTC(),
		Scores:        datatypes.NewJSONType(scores),
		TotalScore:    scoring.TotalScore(scores),
		AssessorNotes: assessorNotes,
	}

	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, "id = ?", clientID).Error; err != nil {
			return err
		}
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		// Rollup maintenance lives here, with the store, not in the engine.
		return tx.Model(&models.Client{}).Where("id = ?", clientID).Updates(map[string]interface{}{
			"total_tests":    gorm.Expr("total_tests + 1"),
			"latest_score":   record.TotalScore,
			"last_test_date": record.TestDate,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %q: %w", clientID, models.ErrNotFound)
		}
		return nil, wrapDBError("create test result", err)
	}
	return record, nil
}

func GetTestResult(ctx context.Context, id string) (*models.TestResult, error) {
	var record models.TestResult
	result := database.DB.WithContext(ctx).First(&record, "id = ?", id)
	if result.Error != nil {
		return nil, wrapDBError("get test result", result.Error)
	}
	return &record, nil
}

// ListTestResultsForClient returns a client's records most recent first.
func ListTestResultsForClient(ctx context.Context, clientID string) ([]models.TestResult, error) {
	var records []models.TestResult
	result := database.DB.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("test_date DESC").
		Find(&records)
	if result.Error != nil {
		return nil, wrapDBError("list test results", result.Error)
	}
	return records, nil
}

// DeleteTestResult removes a whole record and recalculates the owning
// client's rollup from whatever remains.
func DeleteTestResult(ctx context.Context, id string) error {
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.TestResult
		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.TestResult{}, "id = ?", id).Error; err != nil {
			return err
		}
		return recalcClientRollup(tx, record.ClientID)
	})
	return wrapDBError("delete test result", err)
}

// recalcClientRollup rebuilds total_tests / latest_score / last_test_date
// from the client's remaining records, resetting them when none remain.
func recalcClientRollup(tx *gorm.DB, clientID string) error {
	var count int64
	if err := tx.Model(&models.TestResult{}).Where("client_id = ?", clientID).Count(&count).Error; err != nil {
		return err
	}

	fields := map[string]interface{}{
		"total_tests":    count,
		"latest_score":   nil,
		"last_test_date": nil,
	}
	if count > 0 {
		var latest models.TestResult
		if err := tx.Where("client_id = ?", clientID).Order("test_date DESC").First(&latest).Error; err != nil {
			return err
		}
		fields["latest_score"] = latest.TotalScore
		fields["last_test_date"] = latest.TestDate
	}
	return tx.Model(&models.Client{}).Where("id = ?", clientID).Updates(fields).Error
}
