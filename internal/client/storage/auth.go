package storage

import "context"

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthStorage defines interface for storing session data on client
type AuthStorage interface {
	// SaveAuth stores session data
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored session data
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored session data (logout)
	DeleteAuth(ctx context.Context) error
}

// AuthData представляет сохраненную сессию пользователя
type AuthData struct {
	Email        string `json:"email"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix time истечения access token
}
