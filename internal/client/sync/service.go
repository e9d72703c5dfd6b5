// Package sync reconciles the local measurement store with the server.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	httpClient "github.com/bodylog/bodylog/internal/client/api"
	"github.com/bodylog/bodylog/internal/client/storage"
	"github.com/bodylog/bodylog/internal/models"
	"github.com/bodylog/bodylog/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс координатора синхронизации
type Service interface {
	// Reconcile выполняет полный цикл синхронизации датасета
	Reconcile(ctx context.Context, userID, accessToken string, dataset models.DatasetKey) (*Result, error)

	// GetPendingSyncCount возвращает количество несинхронизированных изменений
	GetPendingSyncCount(ctx context.Context, dataset models.DatasetKey) (int, error)
}

// Service handles synchronization between client and server
type service struct {
	apiClient      httpClient.ClientAPI
	entryStorage   storage.EntryStorage
	pendingStorage storage.PendingDeleteStorage
	logger         *slog.Logger
	busy           atomic.Bool
}

// NewService creates a new sync service
func NewService(apiClient httpClient.ClientAPI, entryStorage storage.EntryStorage, pendingStorage storage.PendingDeleteStorage, logger *slog.Logger) Service {
	return &service{
		apiClient:      apiClient,
		entryStorage:   entryStorage,
		pendingStorage: pendingStorage,
		logger:         logger,
	}
}

// Result contains sync operation results
type Result struct {
	Entries        []models.Entry // итоговый набор записей после синхронизации
	PushedEntries  int            // количество отправленных на сервер записей
	DeletedEntries int            // количество обработанных отложенных удалений
	PulledEntries  int            // количество полученных с сервера записей
	Skipped        bool           // синхронизация уже шла, цикл не запускался
	UsedLocal      bool           // сервер недоступен, возвращен локальный набор
}

// Reconcile performs full synchronization for one dataset
// 1. Pushes entries flagged as pending to the server
// 2. Processes the queue of deferred deletions
// 3. Pulls the fresh server set and overwrites the local one
//
// Любой отказ сервера не фатален: локальный набор остается источником
// правды до следующего цикла.
func (s *service) Reconcile(ctx context.Context, userID, accessToken string, dataset models.DatasetKey) (*Result, error) {
	// Одновременно может идти только один цикл
	if !s.busy.CompareAndSwap(false, true) {
		s.logger.Debug("sync already in progress, skipping", "dataset", dataset)
		return &Result{Skipped: true}, nil
	}
	defer s.busy.Store(false)

	if userID == "" || accessToken == "" {
		return nil, fmt.Errorf("sync requires an authenticated session")
	}
	if !dataset.Valid() {
		return nil, fmt.Errorf("unknown dataset: %s", dataset)
	}

	s.logger.Info("Starting synchronization", "user_id", userID, "dataset", dataset)

	result := &Result{}

	localEntries, err := s.entryStorage.LoadEntries(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load local entries: %w", err)
	}

	// Шаг 1: отправляем записи с флагом pending_sync
	localEntries = s.pushPending(ctx, accessToken, userID, dataset, localEntries, result)

	// Шаг 2: обрабатываем очередь отложенных удалений
	s.processPendingDeletes(ctx, accessToken, dataset, result)

	// Шаг 3: забираем свежий серверный набор
	records, err := s.apiClient.FetchMeasurements(ctx, accessToken, string(dataset))
	if err != nil {
		// Сервер недоступен: работаем с локальным набором
		s.logger.Warn("Fetch failed, falling back to local entries",
			"dataset", dataset,
			"error", err)
		result.Entries = localEntries
		result.UsedLocal = true
		return result, nil
	}

	fresh := make([]models.Entry, 0, len(records))
	for _, rec := range records {
		fresh = append(fresh, recordToEntry(rec))
	}
	models.SortEntries(fresh)

	if err := s.entryStorage.SaveEntries(ctx, dataset, fresh); err != nil {
		return nil, fmt.Errorf("failed to save fetched entries: %w", err)
	}

	result.PulledEntries = len(fresh)
	result.Entries = fresh

	s.logger.Info("Synchronization completed",
		"dataset", dataset,
		"pushed", result.PushedEntries,
		"deleted", result.DeletedEntries,
		"pulled", result.PulledEntries)

	return result, nil
}

// pushPending отправляет на сервер записи с флагом pending_sync.
// При успехе флаги снимаются и набор сохраняется локально, при отказе
// набор возвращается без изменений.
func (s *service) pushPending(ctx context.Context, accessToken, userID string, dataset models.DatasetKey, entries []models.Entry, result *Result) []models.Entry {
	var pending []api.MeasurementRecord
	for _, e := range entries {
		if e.PendingSync {
			pending = append(pending, entryToRecord(userID, dataset, e))
		}
	}

	if len(pending) == 0 {
		return entries
	}

	if err := s.apiClient.UpsertBatch(ctx, accessToken, pending); err != nil {
		// Флаги остаются, записи уйдут в следующем цикле
		s.logger.Warn("Failed to push pending entries",
			"dataset", dataset,
			"count", len(pending),
			"error", err)
		return entries
	}

	result.PushedEntries = len(pending)

	cleared := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		e.PendingSync = false
		cleared = append(cleared, e)
	}

	if err := s.entryStorage.SaveEntries(ctx, dataset, cleared); err != nil {
		s.logger.Warn("Failed to persist cleared sync flags", "error", err)
		return entries
	}

	return cleared
}

// processPendingDeletes прогоняет очередь отложенных удалений.
// Каждый id удаляется отдельно, отказы логируются. Очередь очищается
// безусловно: повторное удаление отсутствующей записи безопасно, а
// бесконечный рост очереди — нет.
func (s *service) processPendingDeletes(ctx context.Context, accessToken string, dataset models.DatasetKey, result *Result) {
	ids, err := s.pendingStorage.LoadPendingDeletes(ctx, dataset)
	if err != nil {
		s.logger.Warn("Failed to load pending deletes", "error", err)
		return
	}

	if len(ids) == 0 {
		return
	}

	for _, id := range ids {
		if err := s.apiClient.DeleteMeasurement(ctx, accessToken, id); err != nil {
			s.logger.Warn("Failed to delete remote entry",
				"entry_id", id,
				"error", err)
			continue
		}
		result.DeletedEntries++
	}

	if err := s.pendingStorage.ClearPendingDeletes(ctx, dataset); err != nil {
		s.logger.Warn("Failed to clear pending deletes", "error", err)
	}
}

// GetPendingSyncCount возвращает количество несинхронизированных изменений:
// записи с флагом pending_sync плюс очередь отложенных удалений
func (s *service) GetPendingSyncCount(ctx context.Context, dataset models.DatasetKey) (int, error) {
	entries, err := s.entryStorage.LoadEntries(ctx, dataset)
	if err != nil {
		return 0, fmt.Errorf("failed to load entries: %w", err)
	}

	count := 0
	for _, e := range entries {
		if e.PendingSync {
			count++
		}
	}

	ids, err := s.pendingStorage.LoadPendingDeletes(ctx, dataset)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending deletes: %w", err)
	}

	return count + len(ids), nil
}

// entryToRecord конвертирует локальную запись в API формат.
// Флаг pending_sync — чисто локальное состояние, на сервер не уходит.
func entryToRecord(userID string, dataset models.DatasetKey, e models.Entry) api.MeasurementRecord {
	return api.MeasurementRecord{
		ID:     e.ID,
		UserID: userID,
		Mode:   string(dataset),
		Date:   e.Date,
		Data:   e.Fields,
	}
}

// recordToEntry конвертирует серверную запись в локальный формат
func recordToEntry(rec api.MeasurementRecord) models.Entry {
	fields := rec.Data
	if fields == nil {
		fields = map[string]float64{}
	}
	return models.Entry{
		ID:     rec.ID,
		Date:   rec.Date,
		Fields: fields,
	}
}
