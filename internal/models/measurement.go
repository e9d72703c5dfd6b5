package models

import "time"

// Measurement представляет серверную запись измерений.
// В отличие от клиентского Entry хранит владельца и датасет явно:
// сервер обслуживает многих пользователей.
type Measurement struct {
	UpdatedAt time.Time          `json:"updated_at"`
	Fields    map[string]float64 `json:"fields"`
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Mode      string             `json:"mode"`
	Date      string             `json:"date"`
}
