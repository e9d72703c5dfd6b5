package data

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/bodylog/bodylog/internal/client/api"
	"github.com/bodylog/bodylog/internal/client/storage"
	"github.com/bodylog/bodylog/internal/models"
	"github.com/bodylog/bodylog/pkg/api"
)

// staticNet фиксированное состояние сети для тестов
type staticNet bool

func (n staticNet) Online() bool { return bool(n) }

// staticSession источник сессии для тестов
type staticSession struct {
	auth *storage.AuthData
	err  error
}

func (s *staticSession) Session(ctx context.Context) (*storage.AuthData, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.auth, nil
}

func loggedIn() *staticSession {
	return &staticSession{auth: &storage.AuthData{UserID: "user-1", AccessToken: "token"}}
}

func anonymous() *staticSession {
	return &staticSession{err: fmt.Errorf("not authenticated")}
}

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
	models.SortEntries(cp)
	m.data[dataset] = cp
	return nil
}

var _ storage.EntryStorage = (*memStore)(nil)

func TestAddEntry_NormalizesInput(t *testing.T) {
	store := newMemStore()
	svc := NewService(&httpClient.ClientAPIMock{}, store, &storage.PendingDeleteStorageMock{}, anonymous(), staticNet(false), slog.Default())

	entry, err := svc.AddEntry(context.Background(), models.DatasetMale, "2026-03-01", map[string]string{
		"weight": " 82.5 ",
		"chest":  "",
		"biceps": "38",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "2026-03-01", entry.Date)
	// Пустой ввод означает что поле не измерялось
	assert.Equal(t, map[string]float64{"weight": 82.5, "biceps": 38}, entry.Fields)
	// Без сессии запись чисто локальная
	assert.False(t, entry.PendingSync)
}

func TestAddEntry_RejectsBadInput(t *testing.T) {
	svc := NewService(&httpClient.ClientAPIMock{}, newMemStore(), &storage.PendingDeleteStorageMock{}, anonymous(), staticNet(false), slog.Default())
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, models.DatasetMale, "01.03.2026", map[string]string{"weight": "82"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")

	_, err = svc.AddEntry(ctx, models.DatasetMale, "2026-03-01", map[string]string{"weight": "-3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")

	// NaN и Inf парсятся strconv, но записью быть не могут
	for _, raw := range []string{"NaN", "Inf", "+Inf"} {
		_, err = svc.AddEntry(ctx, models.DatasetMale, "2026-03-01", map[string]string{"weight": raw})
		require.Error(t, err, raw)
		assert.Contains(t, err.Error(), "invalid value")
	}

	_, err = svc.AddEntry(ctx, models.DatasetMale, "2026-03-01", map[string]string{"glutes": "90"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")

	_, err = svc.AddEntry(ctx, "unknown", "2026-03-01", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dataset")
}

func TestAddEntry_OnlineUpsertsRemotely(t *testing.T) {
	store := newMemStore()
	apiMock := &httpClient.ClientAPIMock{
		UpsertMeasurementFunc: func(ctx context.Context, token string, record api.MeasurementRecord) error {
			assert.Equal(t, "token", token)
			assert.Equal(t, "user-1", record.UserID)
			assert.Equal(t, "male", record.Mode)
			return nil
		},
	}

	svc := NewService(apiMock, store, &storage.PendingDeleteStorageMock{}, loggedIn(), staticNet(true), slog.Default())

	entry, err := svc.AddEntry(context.Background(), models.DatasetMale, "2026-03-01", map[string]string{"weight": "82.5"})

	require.NoError(t, err)
	assert.False(t, entry.PendingSync)
	assert.Len(t, apiMock.UpsertMeasurementCalls(), 1)
}

func TestAddEntry_RemoteFailureFlagsPending(t *testing.T) {
	store := newMemStore()
	apiMock := &httpClient.ClientAPIMock{
		UpsertMeasurementFunc: func(ctx context.Context, token string, record api.MeasurementRecord) error {
			return fmt.Errorf("%w: timeout", httpClient.ErrUnavailable)
		},
	}

	svc := NewService(apiMock, store, &storage.PendingDeleteStorageMock{}, loggedIn(), staticNet(true), slog.Default())

	entry, err := svc.AddEntry(context.Background(), models.DatasetMale, "2026-03-01", map[string]string{"weight": "82.5"})

	require.NoError(t, err)
	assert.True(t, entry.PendingSync)

	saved, _ := store.LoadEntries(context.Background(), models.DatasetMale)
	require.Len(t, saved, 1)
	assert.True(t, saved[0].PendingSync)
}

func TestAddEntry_OfflineFlagsPending(t *testing.T) {
	store := newMemStore()

	svc := NewService(&httpClient.ClientAPIMock{}, store, &storage.PendingDeleteStorageMock{}, loggedIn(), staticNet(false), slog.Default())

	entry, err := svc.AddEntry(context.Background(), models.DatasetMale, "2026-03-01", map[string]string{"weight": "82.5"})

	require.NoError(t, err)
	assert.True(t, entry.PendingSync)
}

func TestAddEntry_KeepsSortOrder(t *testing.T) {
	store := newMemStore()
	svc := NewService(&httpClient.ClientAPIMock{}, store, &storage.PendingDeleteStorageMock{}, anonymous(), staticNet(false), slog.Default())
	ctx := context.Background()

	for _, date := range []string{"2026-02-01", "2026-03-01", "2026-01-15"} {
		_, err := svc.AddEntry(ctx, models.DatasetMale, date, map[string]string{"weight": "80"})
		require.NoError(t, err)
	}

	entries, err := svc.ListEntries(ctx, models.DatasetMale)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2026-03-01", entries[0].Date)
	assert.Equal(t, "2026-02-01", entries[1].Date)
	assert.Equal(t, "2026-01-15", entries[2].Date)
}

func TestEditEntry_UpdatesAndRemovesFields(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, store.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "a", Date: "2026-03-01", Fields: map[string]float64{"weight": 82.5, "chest": 101}},
	}))

	svc := NewService(&httpClient.ClientAPIMock{}, store, &storage.PendingDeleteStorageMock{}, anonymous(), staticNet(false), slog.Default())

	updated, err := svc.EditEntry(ctx, models.DatasetMale, "a", map[string]string{
		"weight": "82.0",
		"chest":  "", // пустая строка убирает поле
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, map[string]float64{"weight": 82.0}, updated.Fields)

	saved, _ := store.LoadEntries(ctx, models.DatasetMale)
	assert.Equal(t, map[string]float64{"weight": 82.0}, saved[0].Fields)
}

func TestEditEntry_MissingIDIsNoop(t *testing.T) {
	store := newMemStore()
	svc := NewService(&httpClient.ClientAPIMock{}, store, &storage.PendingDeleteStorageMock{}, anonymous(), staticNet(false), slog.Default())

	updated, err := svc.EditEntry(context.Background(), models.DatasetMale, "missing", map[string]string{"weight": "80"})

	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestEditEntry_RemoteFailureFlagsPending(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, store.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "a", Date: "2026-03-01", Fields: map[string]float64{"weight": 82.5}},
	}))

	apiMock := &httpClient.ClientAPIMock{
		UpsertMeasurementFunc: func(ctx context.Context, token string, record api.MeasurementRecord) error {
			return fmt.Errorf("%w: server error (500)", httpClient.ErrRemote)
		},
	}

	svc := NewService(apiMock, store, &storage.PendingDeleteStorageMock{}, loggedIn(), staticNet(true), slog.Default())

	updated, err := svc.EditEntry(ctx, models.DatasetMale, "a", map[string]string{"weight": "82.0"})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.PendingSync)
}

func TestDeleteEntry_OnlineDeletesRemotely(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, store.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "a", Date: "2026-03-01", Fields: map[string]float64{"weight": 82.5}},
	}))

	apiMock := &httpClient.ClientAPIMock{
		DeleteMeasurementFunc: func(ctx context.Context, token, id string) error {
			assert.Equal(t, "a", id)
			return nil
		},
	}
	pendingMock := &storage.PendingDeleteStorageMock{}

	svc := NewService(apiMock, store, pendingMock, loggedIn(), staticNet(true), slog.Default())

	require.NoError(t, svc.DeleteEntry(ctx, models.DatasetMale, "a"))

	saved, _ := store.LoadEntries(ctx, models.DatasetMale)
	assert.Empty(t, saved)
	// Очередь не трогалась
	assert.Len(t, pendingMock.AddPendingDeleteCalls(), 0)
}

func TestDeleteEntry_OfflineQueuesDelete(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, store.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "a", Date: "2026-03-01", Fields: map[string]float64{"weight": 82.5}},
	}))

	pendingMock := &storage.PendingDeleteStorageMock{
		AddPendingDeleteFunc: func(ctx context.Context, dataset models.DatasetKey, id string) error {
			assert.Equal(t, "a", id)
			return nil
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, store, pendingMock, loggedIn(), staticNet(false), slog.Default())

	require.NoError(t, svc.DeleteEntry(ctx, models.DatasetMale, "a"))

	saved, _ := store.LoadEntries(ctx, models.DatasetMale)
	assert.Empty(t, saved)
	assert.Len(t, pendingMock.AddPendingDeleteCalls(), 1)
}

func TestDeleteEntry_RemoteFailureQueuesDelete(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, store.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "a", Date: "2026-03-01", Fields: map[string]float64{"weight": 82.5}},
	}))

	apiMock := &httpClient.ClientAPIMock{
		DeleteMeasurementFunc: func(ctx context.Context, token, id string) error {
			return fmt.Errorf("%w: timeout", httpClient.ErrUnavailable)
		},
	}
	pendingMock := &storage.PendingDeleteStorageMock{
		AddPendingDeleteFunc: func(ctx context.Context, dataset models.DatasetKey, id string) error {
			return nil
		},
	}

	svc := NewService(apiMock, store, pendingMock, loggedIn(), staticNet(true), slog.Default())

	require.NoError(t, svc.DeleteEntry(ctx, models.DatasetMale, "a"))

	assert.Len(t, pendingMock.AddPendingDeleteCalls(), 1)
	saved, _ := store.LoadEntries(ctx, models.DatasetMale)
	assert.Empty(t, saved)
}

func TestDeleteEntry_AnonymousStaysLocal(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, store.SaveEntries(ctx, models.DatasetMale, []models.Entry{
		{ID: "a", Date: "2026-03-01", Fields: map[string]float64{"weight": 82.5}},
	}))

	pendingMock := &storage.PendingDeleteStorageMock{}

	svc := NewService(&httpClient.ClientAPIMock{}, store, pendingMock, anonymous(), staticNet(true), slog.Default())

	require.NoError(t, svc.DeleteEntry(ctx, models.DatasetMale, "a"))

	saved, _ := store.LoadEntries(ctx, models.DatasetMale)
	assert.Empty(t, saved)
	// Без сессии удаление не ставится в очередь
	assert.Len(t, pendingMock.AddPendingDeleteCalls(), 0)
}
