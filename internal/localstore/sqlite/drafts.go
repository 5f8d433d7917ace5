package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

func (s *Store) Draft(employeeID int, kind constants.FormKind) (models.FormData, bool, error) {
	row := s.db.QueryRow(
		`SELECT data FROM drafts WHERE employee_id = ? AND kind = ?`,
		employeeID, string(kind),
	)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return models.FormData{}, false, nil
		}
		return models.FormData{}, false, err
	}

	var data models.FormData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return models.FormData{}, false, fmt.Errorf("parsing draft: %w", err)
	}
	return data, true, nil
}

func (s *Store) SaveDraft(employeeID int, kind constants.FormKind, data models.FormData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serializing draft: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO drafts (employee_id, kind, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(employee_id, kind) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		employeeID, string(kind), string(raw), time.Now().Format(time.RFC3339),
	)
	return err
}

func (s *Store) DeleteDraft(employeeID int, kind constants.FormKind) error {
	_, err := s.db.Exec(
		`DELETE FROM drafts WHERE employee_id = ? AND kind = ?`,
		employeeID, string(kind),
	)
	return err
}
