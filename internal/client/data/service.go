// Package data implements the mutation gateway over the local
// measurement store. Каждая мутация применяется локально всегда,
// а на сервер уходит по возможности: отказ удаленного хранилища
// переводит запись в состояние pending_sync или в очередь удалений.
package data

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	httpClient "github.com/bodylog/bodylog/internal/client/api"
	"github.com/bodylog/bodylog/internal/client/netmon"
	"github.com/bodylog/bodylog/internal/client/storage"
	"github.com/bodylog/bodylog/internal/models"
	"github.com/bodylog/bodylog/internal/validation"
	"github.com/bodylog/bodylog/pkg/api"
)

// SessionSource выдает актуальную сессию пользователя
type SessionSource interface {
	// Session returns the current session or auth.ErrNotAuthenticated
	Session(ctx context.Context) (*storage.AuthData, error)
}

// Service определяет интерфейс шлюза мутаций
type Service interface {
	AddEntry(ctx context.Context, dataset models.DatasetKey, date string, rawValues map[string]string) (*models.Entry, error)
	EditEntry(ctx context.Context, dataset models.DatasetKey, id string, rawValues map[string]string) (*models.Entry, error)
	DeleteEntry(ctx context.Context, dataset models.DatasetKey, id string) error
	ListEntries(ctx context.Context, dataset models.DatasetKey) ([]models.Entry, error)
}

type service struct {
	apiClient    httpClient.ClientAPI
	entryStorage storage.EntryStorage
	pendingStore storage.PendingDeleteStorage
	sessions     SessionSource
	net          netmon.Reachability
	logger       *slog.Logger
}

// NewService creates a new mutation gateway
func NewService(
	apiClient httpClient.ClientAPI,
	entryStorage storage.EntryStorage,
	pendingStore storage.PendingDeleteStorage,
	sessions SessionSource,
	net netmon.Reachability,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient:    apiClient,
		entryStorage: entryStorage,
		pendingStore: pendingStore,
		sessions:     sessions,
		net:          net,
		logger:       logger,
	}
}

// AddEntry creates a new entry for the given date.
// rawValues содержит сырой пользовательский ввод по ключам полей,
// пустая строка означает что поле не измерялось.
func (s *service) AddEntry(ctx context.Context, dataset models.DatasetKey, date string, rawValues map[string]string) (*models.Entry, error) {
	if err := validation.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	fields, err := normalizeFields(dataset, rawValues)
	if err != nil {
		return nil, err
	}

	entry := models.Entry{
		ID:     uuid.New().String(),
		Date:   date,
		Fields: fields,
	}

	session := s.currentSession(ctx)

	// Пытаемся сразу отправить на сервер
	if session != nil {
		if s.net.Online() {
			if err := s.apiClient.UpsertMeasurement(ctx, session.AccessToken, s.toRecord(session.UserID, dataset, entry)); err != nil {
				s.logger.Warn("Remote upsert failed, flagging entry for sync",
					"entry_id", entry.ID,
					"error", err)
				entry.PendingSync = true
			}
		} else {
			// Оффлайн: запись уйдет в следующем цикле синхронизации
			entry.PendingSync = true
		}
	}

	entries, err := s.entryStorage.LoadEntries(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	entries = append(entries, entry)

	if err := s.entryStorage.SaveEntries(ctx, dataset, entries); err != nil {
		return nil, fmt.Errorf("failed to save entries: %w", err)
	}

	return &entry, nil
}

// EditEntry updates field values of an existing entry.
// Пустая строка в rawValues убирает поле из записи. Несуществующий
// id — no-op, возвращается (nil, nil).
func (s *service) EditEntry(ctx context.Context, dataset models.DatasetKey, id string, rawValues map[string]string) (*models.Entry, error) {
	entries, err := s.entryStorage.LoadEntries(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	idx := -1
	for i := range entries {
		if entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	profile := models.ProfileFor(dataset)
	if profile == nil {
		return nil, fmt.Errorf("unknown dataset: %s", dataset)
	}

	updated := entries[idx].Clone()
	for key, raw := range rawValues {
		if !profile.HasField(key) {
			return nil, fmt.Errorf("unknown field %q for dataset %s", key, dataset)
		}
		value, present, err := validation.NormalizeFieldValue(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		if present {
			updated.Fields[key] = value
		} else {
			delete(updated.Fields, key)
		}
	}

	session := s.currentSession(ctx)

	if session != nil {
		if s.net.Online() {
			updated.PendingSync = false
			if err := s.apiClient.UpsertMeasurement(ctx, session.AccessToken, s.toRecord(session.UserID, dataset, updated)); err != nil {
				s.logger.Warn("Remote upsert failed, flagging entry for sync",
					"entry_id", updated.ID,
					"error", err)
				updated.PendingSync = true
			}
		} else {
			updated.PendingSync = true
		}
	}

	entries[idx] = updated

	if err := s.entryStorage.SaveEntries(ctx, dataset, entries); err != nil {
		return nil, fmt.Errorf("failed to save entries: %w", err)
	}

	return &updated, nil
}

// DeleteEntry removes an entry locally and remotely.
// Недоступность сервера ставит id в очередь отложенных удалений,
// локальная запись исчезает в любом случае.
func (s *service) DeleteEntry(ctx context.Context, dataset models.DatasetKey, id string) error {
	session := s.currentSession(ctx)

	if session != nil {
		remoteDone := false
		if s.net.Online() {
			if err := s.apiClient.DeleteMeasurement(ctx, session.AccessToken, id); err != nil {
				s.logger.Warn("Remote delete failed, queueing",
					"entry_id", id,
					"error", err)
			} else {
				remoteDone = true
			}
		}
		if !remoteDone {
			if err := s.pendingStore.AddPendingDelete(ctx, dataset, id); err != nil {
				return fmt.Errorf("failed to queue pending delete: %w", err)
			}
		}
	}

	entries, err := s.entryStorage.LoadEntries(ctx, dataset)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	filtered := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}

	if err := s.entryStorage.SaveEntries(ctx, dataset, filtered); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}

	return nil
}

// ListEntries returns the local set sorted by date descending
func (s *service) ListEntries(ctx context.Context, dataset models.DatasetKey) ([]models.Entry, error) {
	entries, err := s.entryStorage.LoadEntries(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

// currentSession возвращает сессию или nil для локального режима
func (s *service) currentSession(ctx context.Context) *storage.AuthData {
	if s.sessions == nil {
		return nil
	}
	session, err := s.sessions.Session(ctx)
	if err != nil {
		// Нет сессии или она не восстановилась: работаем локально
		s.logger.Debug("no usable session, staying local", "error", err)
		return nil
	}
	return session
}

func (s *service) toRecord(userID string, dataset models.DatasetKey, e models.Entry) api.MeasurementRecord {
	return api.MeasurementRecord{
		ID:     e.ID,
		UserID: userID,
		Mode:   string(dataset),
		Date:   e.Date,
		Data:   e.Fields,
	}
}

// normalizeFields валидирует сырой ввод против профиля датасета
func normalizeFields(dataset models.DatasetKey, rawValues map[string]string) (map[string]float64, error) {
	profile := models.ProfileFor(dataset)
	if profile == nil {
		return nil, fmt.Errorf("unknown dataset: %s", dataset)
	}

	fields := make(map[string]float64)
	for key, raw := range rawValues {
		if !profile.HasField(key) {
			return nil, fmt.Errorf("unknown field %q for dataset %s", key, dataset)
		}
		value, present, err := validation.NormalizeFieldValue(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		if present {
			fields[key] = value
		}
	}

	return fields, nil
}
