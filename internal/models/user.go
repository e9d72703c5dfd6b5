package models

import "time"

// User представляет зарегистрированного пользователя на сервере
type User struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`    // UUID пользователя
	Email        string    `json:"email"` // email (уникальный логин)
	PasswordHash string    `json:"-"`     // bcrypt хеш пароля, наружу не отдается
}

// RefreshToken представляет refresh token, сохраненный на сервере
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
}

// IsExpired проверяет истек ли срок действия токена
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
