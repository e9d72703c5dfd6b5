package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bodylog/bodylog/internal/models"
	"github.com/bodylog/bodylog/internal/server/storage"
	"github.com/bodylog/bodylog/internal/validation"
	"github.com/bodylog/bodylog/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
	// EmailKey ключ для хранения email в контексте
	EmailKey contextKey = "email"
)

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetEmail извлекает email из контекста запроса
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// MeasurementsHandler обрабатывает запросы к записям измерений
type MeasurementsHandler struct {
	logger  *slog.Logger
	storage storage.MeasurementStorage
}

// NewMeasurementsHandler создает новый handler для измерений
func NewMeasurementsHandler(logger *slog.Logger, st storage.MeasurementStorage) *MeasurementsHandler {
	return &MeasurementsHandler{
		logger:  logger,
		storage: st,
	}
}

// List обрабатывает GET /api/v1/measurements?mode=male|female
// Возвращает все записи пользователя для датасета, отсортированные по дате по убыванию
func (h *MeasurementsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	mode := r.URL.Query().Get("mode")
	if !models.DatasetKey(mode).Valid() {
		h.sendError(w, "mode must be male or female", http.StatusBadRequest)
		return
	}

	records, err := h.storage.GetUserMeasurements(ctx, userID, mode)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get measurements",
			slog.Any("error", err), slog.String("user_id", userID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	apiRecords := make([]api.MeasurementRecord, 0, len(records))
	for _, m := range records {
		apiRecords = append(apiRecords, api.MeasurementRecord{
			ID:     m.ID,
			UserID: m.UserID,
			Mode:   m.Mode,
			Date:   m.Date,
			Data:   m.Fields,
		})
	}

	h.logger.InfoContext(ctx, "measurements listed",
		slog.String("user_id", userID),
		slog.String("mode", mode),
		slog.Int("count", len(apiRecords)))

	h.sendJSON(w, api.MeasurementsResponse{Records: apiRecords}, http.StatusOK)
}

// Upsert обрабатывает PUT /api/v1/measurements
// Создает или перезаписывает одну запись. Запись с существующим id
// замещается целиком: последняя запись побеждает.
func (h *MeasurementsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var record api.MeasurementRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.logger.WarnContext(ctx, "failed to decode upsert request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.toMeasurement(userID, record)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.storage.UpsertMeasurement(ctx, m); err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert measurement",
			slog.Any("error", err), slog.String("record_id", m.ID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "measurement upserted",
		slog.String("user_id", userID), slog.String("record_id", m.ID))

	w.WriteHeader(http.StatusNoContent)
}

// UpsertBatch обрабатывает POST /api/v1/measurements/batch
// Применяет набор записей атомарно: либо весь батч, либо ничего
func (h *MeasurementsHandler) UpsertBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.BatchUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode batch request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	records := make([]*models.Measurement, 0, len(req.Records))
	for _, record := range req.Records {
		m, err := h.toMeasurement(userID, record)
		if err != nil {
			h.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		records = append(records, m)
	}

	if err := h.storage.UpsertBatch(ctx, records); err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert batch",
			slog.Any("error", err), slog.String("user_id", userID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "batch upserted",
		slog.String("user_id", userID), slog.Int("count", len(records)))

	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/v1/measurements/{id}
// Удаление идемпотентно с точки зрения клиента: отсутствующая запись
// отвечает 404, клиент трактует это как уже выполненное удаление.
func (h *MeasurementsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.sendError(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := h.storage.DeleteMeasurement(ctx, userID, id); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			h.sendError(w, "record not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete measurement",
			slog.Any("error", err), slog.String("record_id", id))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "measurement deleted",
		slog.String("user_id", userID), slog.String("record_id", id))

	w.WriteHeader(http.StatusNoContent)
}

// toMeasurement валидирует wire-запись и конвертирует её в модель.
// user_id берется из токена, а не из тела запроса: клиент не может
// писать в чужие данные.
func (h *MeasurementsHandler) toMeasurement(userID string, record api.MeasurementRecord) (*models.Measurement, error) {
	if record.ID == "" {
		return nil, errors.New("record id is required")
	}
	if !models.DatasetKey(record.Mode).Valid() {
		return nil, errors.New("mode must be male or female")
	}
	if err := validation.ValidateDate(record.Date); err != nil {
		return nil, err
	}

	fields := record.Data
	if fields == nil {
		fields = map[string]float64{}
	}

	return &models.Measurement{
		ID:        record.ID,
		UserID:    userID,
		Mode:      record.Mode,
		Date:      record.Date,
		Fields:    fields,
		UpdatedAt: time.Now(),
	}, nil
}

// sendJSON отправляет JSON ответ
func (h *MeasurementsHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *MeasurementsHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
