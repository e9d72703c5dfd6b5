package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bodylog/bodylog/internal/client/storage"
	"github.com/bodylog/bodylog/internal/models"
)

// LoadEntries returns entries for the dataset sorted by date descending.
// Отсутствующее или поврежденное значение трактуется как пустой датасет:
// доступность данных важнее, чем сигнал о повреждении.
func (s *Storage) LoadEntries(ctx context.Context, dataset models.DatasetKey) ([]models.Entry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entries []models.Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntries)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(dataset))
		if data == nil {
			return nil
		}

		// Поврежденный JSON трактуем как отсутствие данных
		if err := json.Unmarshal(data, &entries); err != nil {
			entries = nil
			return nil
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	if entries == nil {
		return []models.Entry{}, nil
	}

	// Всегда сортируем по дате — новые сверху
	models.SortEntries(entries)

	return entries, nil
}

// SaveEntries overwrites the dataset with the given set.
// Набор сортируется перед записью, чтобы инвариант сортировки держался
// после каждой мутации.
func (s *Storage) SaveEntries(ctx context.Context, dataset models.DatasetKey, entries []models.Entry) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	models.SortEntries(entries)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketEntries)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		if err := bucket.Put([]byte(dataset), data); err != nil {
			return fmt.Errorf("failed to save entries: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
