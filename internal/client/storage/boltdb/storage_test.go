package boltdb

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/bodylog/bodylog/internal/client/storage"
	"github.com/bodylog/bodylog/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestNew_CreatesBuckets(t *testing.T) {
	s := newTestStorage(t)

	err := s.db.View(func(tx *bbolt.Tx) error {
		assert.NotNil(t, tx.Bucket(bucketAuth))
		assert.NotNil(t, tx.Bucket(bucketEntries))
		assert.NotNil(t, tx.Bucket(bucketPending))
		return nil
	})
	require.NoError(t, err)
}

func TestLoadEntries_Empty(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entries, err := s.LoadEntries(ctx, models.DatasetMale)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestSaveEntries_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entries := []models.Entry{
		{ID: "a", Date: "2026-01-10", Fields: map[string]float64{models.FieldWeight: 82.5}},
		{ID: "b", Date: "2026-01-20", Fields: map[string]float64{models.FieldWeight: 81.9}},
		{ID: "c", Date: "2026-01-15", Fields: map[string]float64{models.FieldWeight: 82.1}, PendingSync: true},
	}

	err := s.SaveEntries(ctx, models.DatasetMale, entries)
	require.NoError(t, err)

	loaded, err := s.LoadEntries(ctx, models.DatasetMale)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	// Записи возвращаются по убыванию даты
	assert.Equal(t, "b", loaded[0].ID)
	assert.Equal(t, "c", loaded[1].ID)
	assert.Equal(t, "a", loaded[2].ID)
	assert.True(t, loaded[1].PendingSync)
	assert.Equal(t, 81.9, loaded[0].Fields[models.FieldWeight])
}

func TestSaveEntries_DatasetsAreIsolated(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "m1", Date: "2026-02-01", Fields: map[string]float64{models.FieldWeight: 90}},
	})
	require.NoError(t, err)

	err = s.SaveEntries(ctx, models.DatasetFemale, []models.Entry{
		{ID: "f1", Date: "2026-02-02", Fields: map[string]float64{models.FieldWeight: 60}},
	})
	require.NoError(t, err)

	male, err := s.LoadEntries(ctx, models.DatasetMale)
	require.NoError(t, err)
	female, err := s.LoadEntries(ctx, models.DatasetFemale)
	require.NoError(t, err)

	require.Len(t, male, 1)
	require.Len(t, female, 1)
	assert.Equal(t, "m1", male[0].ID)
	assert.Equal(t, "f1", female[0].ID)
}

func TestSaveEntries_OverwritesWithEmpty(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "a", Date: "2026-01-10", Fields: map[string]float64{models.FieldWeight: 82.5}},
	})
	require.NoError(t, err)

	err = s.SaveEntries(ctx, models.DatasetMale, []models.Entry{})
	require.NoError(t, err)

	loaded, err := s.LoadEntries(ctx, models.DatasetMale)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadEntries_CorruptData(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Пишем заведомо невалидный JSON напрямую
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketEntries).Put([]byte(models.DatasetMale), []byte("{not json"))
	})
	require.NoError(t, err)

	entries, err := s.LoadEntries(ctx, models.DatasetMale)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPendingDeletes_AddAndLoad(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.AddPendingDelete(ctx, models.DatasetMale, "id-1"))
	require.NoError(t, s.AddPendingDelete(ctx, models.DatasetMale, "id-2"))

	ids, err := s.LoadPendingDeletes(ctx, models.DatasetMale)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-1", "id-2"}, ids)
}

func TestPendingDeletes_AddIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.AddPendingDelete(ctx, models.DatasetMale, "id-1"))
	require.NoError(t, s.AddPendingDelete(ctx, models.DatasetMale, "id-1"))
	require.NoError(t, s.AddPendingDelete(ctx, models.DatasetMale, "id-1"))

	ids, err := s.LoadPendingDeletes(ctx, models.DatasetMale)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-1"}, ids)
}

func TestPendingDeletes_Clear(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.AddPendingDelete(ctx, models.DatasetFemale, "id-1"))
	require.NoError(t, s.ClearPendingDeletes(ctx, models.DatasetFemale))

	ids, err := s.LoadPendingDeletes(ctx, models.DatasetFemale)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Очистка пустой очереди не ошибка
	require.NoError(t, s.ClearPendingDeletes(ctx, models.DatasetFemale))
}

func TestAuth_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	auth := &storage.AuthData{
		Email:        "user@example.com",
		UserID:       "user-1",
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    1700000000,
	}

	require.NoError(t, s.SaveAuth(ctx, auth))

	loaded, err := s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, loaded)
}

func TestAuth_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetAuth(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestAuth_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAuth(ctx, &storage.AuthData{UserID: "user-1"}))
	require.NoError(t, s.DeleteAuth(ctx))

	_, err := s.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Повторное удаление не ошибка
	require.NoError(t, s.DeleteAuth(ctx))
}

func TestEntries_StoredAsJSON(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entry := models.Entry{
		ID:     "a",
		Date:   "2026-01-10",
		Fields: map[string]float64{models.FieldWeight: 82.5},
	}
	require.NoError(t, s.SaveEntries(ctx, models.DatasetMale, []models.Entry{entry}))

	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketEntries).Get([]byte(models.DatasetMale))
		require.NotNil(t, raw)

		var decoded []models.Entry
		require.NoError(t, json.Unmarshal(raw, &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, entry, decoded[0])
		return nil
	})
	require.NoError(t, err)
}
