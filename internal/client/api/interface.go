package api

import (
	"context"

	"github.com/bodylog/bodylog/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс удаленного хранилища измерений
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	// Refresh обменивает refresh token на новую пару токенов
	Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error)
	// FetchMeasurements возвращает все записи пользователя для датасета
	FetchMeasurements(ctx context.Context, token, mode string) ([]api.MeasurementRecord, error)
	// UpsertMeasurement создает или обновляет одну запись
	UpsertMeasurement(ctx context.Context, token string, record api.MeasurementRecord) error
	// UpsertBatch создает или обновляет набор записей атомарно
	UpsertBatch(ctx context.Context, token string, records []api.MeasurementRecord) error
	// DeleteMeasurement удаляет запись по id
	DeleteMeasurement(ctx context.Context, token, id string) error
}
