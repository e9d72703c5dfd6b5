package storage

import (
	"context"

	"github.com/bodylog/bodylog/internal/models"
)

// MeasurementStorage defines interface for measurement persistence
type MeasurementStorage interface {
	// UpsertMeasurement inserts or replaces a record by id.
	// Конфликт по id разрешается последней записью (last write wins).
	UpsertMeasurement(ctx context.Context, m *models.Measurement) error

	// UpsertBatch inserts or replaces a set of records atomically
	UpsertBatch(ctx context.Context, records []*models.Measurement) error

	// GetUserMeasurements returns all records of a user for the given mode
	// sorted by date descending
	GetUserMeasurements(ctx context.Context, userID, mode string) ([]*models.Measurement, error)

	// DeleteMeasurement removes a record owned by the user.
	// Returns ErrRecordNotFound if no such record exists.
	DeleteMeasurement(ctx context.Context, userID, id string) error
}
