package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Stephan2025u/FMS-NEW/internal/database"
	"github.com/Stephan2025u/FMS-NEW/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNoFields is returned when a client update carries nothing to change.
var ErrNoFields = errors.New("no fields to update")

// wrapDBError maps store-level failures onto the domain taxonomy:
// record-not-found becomes ErrNotFound, anything else a TransportError.
func wrapDBError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return &models.TransportError{Op: op, Err: err}
}

func CreateClient(ctx context.Context, client *models.Client) error {
	client.ID = uuid.NewString()
	client.CreatedAt = time.Now().UTC()
	result := database.DB.WithContext(ctx).Create(client)
	return wrapDBError("create client", result.Error)
}

func GetClient(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	result := database.DB.WithContext(ctx).First(&client, "id = ?", id)
	if result.Error != nil {
		return nil, wrapDBError("get client", result.Error)
	}
	return &client, nil
}

func ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	result := database.DB.WithContext(ctx).Order("created_at DESC").Find(&clients)
	if result.Error != nil {
		return nil, wrapDBError("list clients", result.Error)
	}
	return clients, nil
}

// UpdateClient applies the non-nil fields of the update. Rollup fields are
// deliberately not settable through this path.
func UpdateClient(ctx context.Context, id string, update models.ClientUpdate) (*models.Client, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.DateOfBirth != nil {
		fields["date_of_birth"] = *update.DateOfBirth
	}
	if update.Occupation != nil {
		fields["occupation"] = *update.Occupation
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	result := database.DB.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, wrapDBError("update client", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.ErrNotFound
	}
	return GetClient(ctx, id)
}

// DeleteClient removes a client and all of their test results.
func DeleteClient(ctx context.Context, id string) error {
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&models.TestResult{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Client{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return wrapDBError("delete client", err)
}
