// Package auth manages the client session lifecycle.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bodylog/bodylog/internal/client/api"
	"github.com/bodylog/bodylog/internal/client/storage"
	"github.com/bodylog/bodylog/internal/validation"
	pkgapi "github.com/bodylog/bodylog/pkg/api"
)

// ErrNotAuthenticated возвращается когда локальной сессии нет
var ErrNotAuthenticated = errors.New("not authenticated")

// Service предоставляет функции авторизации
type Service struct {
	apiClient api.ClientAPI
	authStore storage.AuthStorage
}

// NewService создает новый сервис авторизации
func NewService(apiClient api.ClientAPI, authStore storage.AuthStorage) *Service {
	return &Service{
		apiClient: apiClient,
		authStore: authStore,
	}
}

// Register регистрирует нового пользователя на сервере.
// Сессия при этом не создается, нужен отдельный Login.
func (s *Service) Register(ctx context.Context, email, password string) (*pkgapi.RegisterResponse, error) {
	// Валидация входных данных
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return resp, nil
}

// Login выполняет аутентификацию и сохраняет сессию локально
func (s *Service) Login(ctx context.Context, email, password string) (*storage.AuthData, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	auth := &storage.AuthData{
		Email:        email,
		UserID:       resp.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Unix() + resp.ExpiresIn,
	}

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return auth, nil
}

// Logout удаляет локальную сессию.
// Сервер не уведомляется: refresh токен просто истечет.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

// Session возвращает актуальную сессию.
// Истекший access token прозрачно обменивается через refresh.
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	if time.Now().Unix() < auth.ExpiresAt {
		return auth, nil
	}

	// Токен истек, пробуем обновить
	slog.Debug("access token expired, refreshing")

	resp, err := s.apiClient.Refresh(ctx, pkgapi.RefreshRequest{RefreshToken: auth.RefreshToken})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			// Refresh токен тоже мертв, сессия закончилась
			if delErr := s.authStore.DeleteAuth(ctx); delErr != nil {
				slog.Warn("failed to drop stale session", "error", delErr)
			}
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}

	auth.AccessToken = resp.AccessToken
	auth.RefreshToken = resp.RefreshToken
	auth.ExpiresAt = time.Now().Unix() + resp.ExpiresIn
	if resp.UserID != "" {
		auth.UserID = resp.UserID
	}

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save refreshed session: %w", err)
	}

	return auth, nil
}

// IsAuthenticated проверяет наличие локальной сессии
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get auth data: %w", err)
	}
	return true, nil
}
