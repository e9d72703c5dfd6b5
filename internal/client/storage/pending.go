package storage

import (
	"context"

	"github.com/bodylog/bodylog/internal/models"
)

//go:generate moq -out pendingstorage_mock.go . PendingDeleteStorage

// PendingDeleteStorage defines interface for the per-dataset queue of entry
// ids, помеченных на удаление на сервере, но еще не подтвержденных
// (удаление выполнено офлайн или без авторизации).
// Инвариант: id в очереди означает что запись уже убрана из видимого
// локального списка — отложена только серверная часть удаления.
type PendingDeleteStorage interface {
	// LoadPendingDeletes returns queued ids for the dataset
	LoadPendingDeletes(ctx context.Context, dataset models.DatasetKey) ([]string, error)

	// AddPendingDelete queues an id for remote deletion.
	// Повторное добавление уже стоящего в очереди id — no-op.
	AddPendingDelete(ctx context.Context, dataset models.DatasetKey, id string) error

	// ClearPendingDeletes removes all queued ids for the dataset
	ClearPendingDeletes(ctx context.Context, dataset models.DatasetKey) error
}
