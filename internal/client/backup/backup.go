// Package backup exports and imports the local measurement store
// as a portable JSON archive.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bodylog/bodylog/internal/client/storage"
	"github.com/bodylog/bodylog/internal/models"
	"github.com/bodylog/bodylog/internal/validation"
)

// ArchiveVersion текущая версия формата архива
const ArchiveVersion = 1

// Archive представляет полный снимок локальных данных
type Archive struct {
	ExportedAt time.Time                          `json:"exported_at"`
	Data       map[models.DatasetKey][]models.Entry `json:"data"`
	Version    int                                `json:"version"`
}

// Service экспортирует и импортирует архивы
type Service struct {
	entryStorage storage.EntryStorage
}

// NewService creates a new backup service
func NewService(entryStorage storage.EntryStorage) *Service {
	return &Service{entryStorage: entryStorage}
}

// Export собирает снимок обоих датасетов
func (s *Service) Export(ctx context.Context) (*Archive, error) {
	data := make(map[models.DatasetKey][]models.Entry, 2)

	for _, dataset := range []models.DatasetKey{models.DatasetMale, models.DatasetFemale} {
		entries, err := s.entryStorage.LoadEntries(ctx, dataset)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s entries: %w", dataset, err)
		}
		data[dataset] = entries
	}

	return &Archive{
		Version:    ArchiveVersion,
		ExportedAt: time.Now().UTC(),
		Data:       data,
	}, nil
}

// ExportJSON возвращает архив в виде JSON с отступами
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	archive, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal archive: %w", err)
	}

	return data, nil
}

// Import replaces local data with the archive contents.
// Архив проверяется целиком до первой записи: одна невалидная запись
// отклоняет весь файл, частичный импорт невозможен. Пустой массив в
// архиве валиден и затирает датасет.
func (s *Service) Import(ctx context.Context, archive *Archive) error {
	if err := Validate(archive); err != nil {
		return err
	}

	for _, dataset := range []models.DatasetKey{models.DatasetMale, models.DatasetFemale} {
		entries := archive.Data[dataset]
		if err := s.entryStorage.SaveEntries(ctx, dataset, entries); err != nil {
			return fmt.Errorf("failed to save %s entries: %w", dataset, err)
		}
	}

	return nil
}

// ImportJSON разбирает и импортирует JSON архив
func (s *Service) ImportJSON(ctx context.Context, data []byte) error {
	var archive Archive
	if err := json.Unmarshal(data, &archive); err != nil {
		return fmt.Errorf("invalid archive: %w", err)
	}
	return s.Import(ctx, &archive)
}

// Validate проверяет структуру архива без побочных эффектов
func Validate(archive *Archive) error {
	if archive == nil {
		return fmt.Errorf("invalid archive: empty")
	}
	if archive.Version != ArchiveVersion {
		return fmt.Errorf("invalid archive: unsupported version %d", archive.Version)
	}
	if archive.Data == nil {
		return fmt.Errorf("invalid archive: missing data section")
	}

	for _, dataset := range []models.DatasetKey{models.DatasetMale, models.DatasetFemale} {
		entries, ok := archive.Data[dataset]
		if !ok {
			return fmt.Errorf("invalid archive: missing %s dataset", dataset)
		}
		for i, e := range entries {
			if e.ID == "" {
				return fmt.Errorf("invalid archive: %s entry %d has no id", dataset, i)
			}
			if err := validation.ValidateDate(e.Date); err != nil {
				return fmt.Errorf("invalid archive: %s entry %d: %w", dataset, i, err)
			}
		}
	}

	return nil
}
