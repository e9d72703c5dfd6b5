package models

import "sort"

// DatasetKey идентифицирует коллекцию измерений (профиль пользователя).
// Записи никогда не переходят между датасетами.
type DatasetKey string

const (
	DatasetMale   DatasetKey = "male"
	DatasetFemale DatasetKey = "female"
)

// Valid проверяет что dataset key известен
func (d DatasetKey) Valid() bool {
	return d == DatasetMale || d == DatasetFemale
}

// Entry представляет одну запись измерений.
// Fields хранит значения по ключам профиля; отсутствие ключа означает
// "не измерено" и отличается от нулевого значения.
type Entry struct {
	Fields map[string]float64 `json:"fields"`
	ID     string             `json:"id"`   // UUID, назначается при создании, неизменяемый
	Date   string             `json:"date"` // календарная дата YYYY-MM-DD (ключ сортировки)

	// PendingSync транзитный флаг: запись изменена локально и еще не
	// подтверждена сервером. Не отправляется на сервер.
	PendingSync bool `json:"pending_sync,omitempty"`
}

// Clone создает глубокую копию записи
func (e *Entry) Clone() Entry {
	fields := make(map[string]float64, len(e.Fields))
	for k, v := range e.Fields {
		fields[k] = v
	}
	return Entry{
		ID:          e.ID,
		Date:        e.Date,
		Fields:      fields,
		PendingSync: e.PendingSync,
	}
}

// SortEntries сортирует записи по дате по убыванию (новые сверху).
// Для дат в формате YYYY-MM-DD лексикографическое сравнение совпадает с
// хронологическим. Сортировка стабильная: записи с одинаковой датой
// сохраняют порядок вставки.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}
