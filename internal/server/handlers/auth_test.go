package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bodylog/bodylog/internal/models"
	"github.com/bodylog/bodylog/internal/server/storage"
	"github.com/bodylog/bodylog/pkg/api"
)

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users        map[string]*models.User // email -> User
	createError  error
	getUserError error
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Email]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// mockTokenStorage is a mock implementation of TokenStorage for testing
type mockTokenStorage struct {
	tokens        map[string]*models.RefreshToken // token -> RefreshToken
	saveError     error
	savedTokens   []*models.RefreshToken
	deletedTokens []string
}

func (m *mockTokenStorage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.tokens[token.Token] = token
	m.savedTokens = append(m.savedTokens, token)
	return nil
}

func (m *mockTokenStorage) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := m.tokens[token]
	if !ok {
		return nil, storage.ErrTokenNotFound
	}
	return rt, nil
}

func (m *mockTokenStorage) DeleteRefreshToken(ctx context.Context, token string) error {
	delete(m.tokens, token)
	m.deletedTokens = append(m.deletedTokens, token)
	return nil
}

func (m *mockTokenStorage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	return 0, nil
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:          []byte("test-secret"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func newTestAuthHandler() (*AuthHandler, *mockUserStorage, *mockTokenStorage) {
	users := &mockUserStorage{users: map[string]*models.User{}}
	tokens := &mockTokenStorage{tokens: map[string]*models.RefreshToken{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(logger, users, tokens, testJWTConfig()), users, tokens
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)

	return w
}

func TestAuthHandler_Register(t *testing.T) {
	h, users, _ := newTestAuthHandler()

	w := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
		Email:    "user@example.com",
		Password: "password123",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.UserID)

	// Пароль не хранится открытым текстом
	stored := users.users["user@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"invalid email", "not-an-email", "password123"},
		{"empty email", "", "password123"},
		{"short password", "user@example.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestAuthHandler()

			w := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
				Email:    tt.email,
				Password: tt.password,
			})

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h, _, _ := newTestAuthHandler()

	req := api.RegisterRequest{Email: "user@example.com", Password: "password123"}

	w := postJSON(t, h.Register, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, h.Register, "/api/v1/auth/register", req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func registerTestUser(t *testing.T, users *mockUserStorage, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           "user-1",
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	users.users[email] = user

	return user
}

func TestAuthHandler_Login(t *testing.T) {
	h, users, tokens := newTestAuthHandler()
	registerTestUser(t, users, "user@example.com", "password123")

	w := postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(15*60), resp.ExpiresIn)

	// Refresh token сохранен на сервере
	require.Len(t, tokens.savedTokens, 1)
	assert.Equal(t, "user-1", tokens.savedTokens[0].UserID)

	// Access token валидируется и несет user_id
	claims, err := ValidateAccessToken(testJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, users, _ := newTestAuthHandler()
	registerTestUser(t, users, "user@example.com", "password123")

	// Неверный пароль
	w := postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Несуществующий пользователь — тот же ответ, без утечки информации
	w = postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Refresh_RotatesToken(t *testing.T) {
	h, users, tokens := newTestAuthHandler()
	user := registerTestUser(t, users, "user@example.com", "password123")

	tokens.tokens["old-refresh"] = &models.RefreshToken{
		Token:     "old-refresh",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}

	w := postJSON(t, h.Refresh, "/api/v1/auth/refresh", api.RefreshRequest{
		RefreshToken: "old-refresh",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, "old-refresh", resp.RefreshToken)

	// Старый token отозван, новый сохранен
	assert.Contains(t, tokens.deletedTokens, "old-refresh")
	_, exists := tokens.tokens[resp.RefreshToken]
	assert.True(t, exists)
}

func TestAuthHandler_Refresh_Rejected(t *testing.T) {
	h, users, tokens := newTestAuthHandler()
	user := registerTestUser(t, users, "user@example.com", "password123")

	tokens.tokens["expired"] = &models.RefreshToken{
		Token:     "expired",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-25 * time.Hour),
	}

	tests := []struct {
		name  string
		token string
	}{
		{"unknown token", "never-issued"},
		{"expired token", "expired"},
		{"empty token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h.Refresh, "/api/v1/auth/refresh", api.RefreshRequest{
				RefreshToken: tt.token,
			})
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateAccessToken(cfg, "user-1", "user@example.com")
	require.NoError(t, err)

	other := cfg
	other.Secret = []byte("other-secret")

	_, err = ValidateAccessToken(other, token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenTTL = -time.Minute

	token, _, err := GenerateAccessToken(cfg, "user-1", "user@example.com")
	require.NoError(t, err)

	_, err = ValidateAccessToken(cfg, token)
	assert.Error(t, err)
}
