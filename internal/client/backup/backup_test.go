package backup

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodylog/bodylog/internal/models"
)

// memStore минимальное хранилище записей в памяти
type memStore struct {
	data map[models.DatasetKey][]models.Entry
}

func newMemStore() *memStore {
	return &memStore{data: make(map[models.DatasetKey][]models.Entry)}
}

func (m *memStore) LoadEntries(ctx context.Context, dataset models.DatasetKey) ([]models.Entry, error) {
	out := make([]models.Entry, len(m.data[dataset]))
	copy(out, m.data[dataset])
	return out, nil
}

func (m *memStore) SaveEntries(ctx context.Context, dataset models.DatasetKey, entries []models.Entry) error {
	cp := make([]models.Entry, len(entries))
	copy(cp, entries)
	m.data[dataset] = cp
	return nil
}

func TestExport(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, store.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "m1", Date: "2026-03-01", Fields: map[string]float64{"weight": 82.5}},
	}))

	svc := NewService(store)

	archive, err := svc.Export(ctx)

	require.NoError(t, err)
	assert.Equal(t, ArchiveVersion, archive.Version)
	assert.False(t, archive.ExportedAt.IsZero())
	require.Len(t, archive.Data[models.DatasetMale], 1)
	assert.Empty(t, archive.Data[models.DatasetFemale])
	// Оба датасета присутствуют даже когда пусты
	_, ok := archive.Data[models.DatasetFemale]
	assert.True(t, ok)
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := newMemStore()
	ctx := context.Background()
	require.NoError(t, src.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "m1", Date: "2026-03-01", Fields: map[string]float64{"weight": 82.5}},
		{ID: "m2", Date: "2026-02-15", Fields: map[string]float64{"weight": 83.0, "chest": 101}},
	}))
	require.NoError(t, src.SaveEntries(ctx, models.DatasetFemale, []models.Entry{
		{ID: "f1", Date: "2026-03-02", Fields: map[string]float64{"weight": 61.2}},
	}))

	data, err := NewService(src).ExportJSON(ctx)
	require.NoError(t, err)

	dst := newMemStore()
	require.NoError(t, NewService(dst).ImportJSON(ctx, data))

	assert.Equal(t, src.data[models.DatasetMale], dst.data[models.DatasetMale])
	assert.Equal(t, src.data[models.DatasetFemale], dst.data[models.DatasetFemale])
}

func TestImport_OverwritesWithEmpty(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, store.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "old", Date: "2026-01-01", Fields: map[string]float64{"weight": 85}},
	}))

	archive := &Archive{
		Version: ArchiveVersion,
		Data: map[models.DatasetKey][]models.Entry{
			models.DatasetMale:   {},
			models.DatasetFemale: {},
		},
	}

	require.NoError(t, NewService(store).Import(ctx, archive))

	// Пустой массив в архиве затирает существующие данные
	assert.Empty(t, store.data[models.DatasetMale])
}

func TestImport_RejectsInvalidArchives(t *testing.T) {
	valid := func() *Archive {
		return &Archive{
			Version: ArchiveVersion,
			Data: map[models.DatasetKey][]models.Entry{
				models.DatasetMale: {
					{ID: "m1", Date: "2026-03-01", Fields: map[string]float64{"weight": 82.5}},
				},
				models.DatasetFemale: {},
			},
		}
	}

	tests := []struct {
		mutate  func(a *Archive)
		name    string
		wantErr string
	}{
		{
			name:    "unsupported version",
			mutate:  func(a *Archive) { a.Version = 99 },
			wantErr: "unsupported version",
		},
		{
			name:    "missing data",
			mutate:  func(a *Archive) { a.Data = nil },
			wantErr: "missing data",
		},
		{
			name:    "missing dataset",
			mutate:  func(a *Archive) { delete(a.Data, models.DatasetFemale) },
			wantErr: "missing female dataset",
		},
		{
			name: "entry without id",
			mutate: func(a *Archive) {
				a.Data[models.DatasetMale][0].ID = ""
			},
			wantErr: "has no id",
		},
		{
			name: "entry with bad date",
			mutate: func(a *Archive) {
				a.Data[models.DatasetMale][0].Date = "01.03.2026"
			},
			wantErr: "invalid archive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			ctx := context.Background()
			require.NoError(t, store.SaveEntries(ctx, models.DatasetMale, []models.Entry{
				{ID: "keep", Date: "2026-01-01", Fields: map[string]float64{"weight": 85}},
			}))

			archive := valid()
			tt.mutate(archive)

			err := NewService(store).Import(ctx, archive)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			// Невалидный архив не трогает локальные данные
			require.Len(t, store.data[models.DatasetMale], 1)
			assert.Equal(t, "keep", store.data[models.DatasetMale][0].ID)
		})
	}
}

func TestImportJSON_MalformedInput(t *testing.T) {
	err := NewService(newMemStore()).ImportJSON(context.Background(), []byte("{broken"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid archive")
}

func TestArchiveJSON_Shape(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	data, err := NewService(store).ExportJSON(ctx)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "version")
	assert.Contains(t, decoded, "exported_at")
	assert.Contains(t, decoded, "data")
}
