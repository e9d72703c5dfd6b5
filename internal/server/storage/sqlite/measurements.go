package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bodylog/bodylog/internal/models"
	"github.com/bodylog/bodylog/internal/server/storage"
)

const upsertMeasurementQuery = `
	INSERT INTO measurements (id, user_id, mode, date, data, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		user_id = excluded.user_id,
		mode = excluded.mode,
		date = excluded.date,
		data = excluded.data,
		updated_at = excluded.updated_at
`

// UpsertMeasurement inserts or replaces a record by id
func (s *Storage) UpsertMeasurement(ctx context.Context, m *models.Measurement) error {
	data, err := json.Marshal(m.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	_, err = s.db.ExecContext(ctx, upsertMeasurementQuery,
		m.ID,
		m.UserID,
		m.Mode,
		m.Date,
		string(data),
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert measurement: %w", err)
	}

	return nil
}

// UpsertBatch inserts or replaces a set of records atomically.
// Все записи применяются в одной транзакции: либо весь батч, либо ничего.
func (s *Storage) UpsertBatch(ctx context.Context, records []*models.Measurement) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, upsertMeasurementQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, m := range records {
		data, err := json.Marshal(m.Fields)
		if err != nil {
			return fmt.Errorf("failed to marshal fields: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			m.ID,
			m.UserID,
			m.Mode,
			m.Date,
			string(data),
			m.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to upsert measurement %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetUserMeasurements returns all records of a user for the given mode
func (s *Storage) GetUserMeasurements(ctx context.Context, userID, mode string) ([]*models.Measurement, error) {
	query := `
		SELECT id, user_id, mode, date, data, updated_at
		FROM measurements
		WHERE user_id = ? AND mode = ?
		ORDER BY date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*models.Measurement, 0)
	for rows.Next() {
		m := &models.Measurement{}
		var data string

		if err := rows.Scan(&m.ID, &m.UserID, &m.Mode, &m.Date, &data, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}

		if err := json.Unmarshal([]byte(data), &m.Fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fields for %s: %w", m.ID, err)
		}

		records = append(records, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return records, nil
}

// DeleteMeasurement removes a record owned by the user
func (s *Storage) DeleteMeasurement(ctx context.Context, userID, id string) error {
	query := `DELETE FROM measurements WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete measurement: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}
