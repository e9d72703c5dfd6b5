package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bodylog/bodylog/internal/client/storage"
	"github.com/bodylog/bodylog/internal/models"
)

// LoadPendingDeletes returns queued entry ids for the dataset
func (s *Storage) LoadPendingDeletes(ctx context.Context, dataset models.DatasetKey) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ids []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(dataset))
		if data == nil {
			return nil
		}

		// Поврежденный JSON трактуем как пустую очередь
		if err := json.Unmarshal(data, &ids); err != nil {
			ids = nil
			return nil
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load pending deletes: %w", err)
	}

	if ids == nil {
		return []string{}, nil
	}

	return ids, nil
}

// AddPendingDelete queues an id for remote deletion.
// Добавление уже стоящего в очереди id — no-op.
func (s *Storage) AddPendingDelete(ctx context.Context, dataset models.DatasetKey, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketPending)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		var ids []string
		if data := bucket.Get([]byte(dataset)); data != nil {
			// Поврежденную очередь начинаем заново
			if err := json.Unmarshal(data, &ids); err != nil {
				ids = nil
			}
		}

		for _, existing := range ids {
			if existing == id {
				return nil
			}
		}

		ids = append(ids, id)

		data, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("failed to marshal pending deletes: %w", err)
		}

		if err := bucket.Put([]byte(dataset), data); err != nil {
			return fmt.Errorf("failed to save pending deletes: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// ClearPendingDeletes removes all queued ids for the dataset
func (s *Storage) ClearPendingDeletes(ctx context.Context, dataset models.DatasetKey) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		if err := bucket.Delete([]byte(dataset)); err != nil {
			return fmt.Errorf("failed to clear pending deletes: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
