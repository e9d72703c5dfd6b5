package api

// MeasurementRecord представляет одну запись измерений в wire-формате.
// Поля измерений лежат в Data (имя поля -> значение); отсутствие ключа
// означает "не измерено" и отличается от нуля.
type MeasurementRecord struct {
	Data   map[string]float64 `json:"data"`
	ID     string             `json:"id"`      // UUID записи, ключ слияния local/remote
	UserID string             `json:"user_id"` // владелец записи
	Mode   string             `json:"mode"`    // dataset key: "male" или "female"
	Date   string             `json:"date"`    // календарная дата YYYY-MM-DD
}

// MeasurementsResponse представляет ответ сервера со списком записей,
// отсортированных по дате по убыванию
type MeasurementsResponse struct {
	Records []MeasurementRecord `json:"records"`
}

// BatchUpsertRequest представляет запрос на batch upsert записей
type BatchUpsertRequest struct {
	Records []MeasurementRecord `json:"records"`
}
