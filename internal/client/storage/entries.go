package storage

import (
	"context"

	"github.com/bodylog/bodylog/internal/models"
)

//go:generate moq -out entrystorage_mock.go . EntryStorage

// EntryStorage defines interface for the on-device entry store.
// Каждый датасет хранится целиком: нет частичных обновлений, вызывающий
// всегда передает полный желаемый набор записей.
type EntryStorage interface {
	// LoadEntries returns entries for the dataset sorted by date descending.
	// Отсутствующее или поврежденное значение дает пустой набор, не ошибку.
	LoadEntries(ctx context.Context, dataset models.DatasetKey) ([]models.Entry, error)

	// SaveEntries overwrites the dataset with the given set
	SaveEntries(ctx context.Context, dataset models.DatasetKey, entries []models.Entry) error
}
