package sqlite

import (
	"time"

	"github.com/ib-ingenieria/horas-cli/internal/models"
)

func (s *Store) Favorites(employeeID int) ([]models.Favorite, error) {
	rows, err := s.db.Query(`
		SELECT id, project_code, phase, discipline, activity, created_at
		FROM favorites WHERE employee_id = ?
		ORDER BY created_at`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []models.Favorite
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.ProjectCode, &f.Phase, &f.Discipline, &f.Activity, &f.CreatedAt); err != nil {
			return nil, err
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

func (s *Store) AddFavorite(employeeID int, fav models.Favorite) error {
	createdAt := fav.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().Format(time.RFC3339)
	}

	_, err := s.db.Exec(`
		INSERT INTO favorites (id, employee_id, project_code, phase, discipline, activity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		fav.ID, employeeID, fav.ProjectCode, fav.Phase, fav.Discipline, fav.Activity, createdAt,
	)
	return err
}

// DeleteFavorite removes a favorite. Returns the number of rows removed so
// the wrapper can report unknown ids.
func (s *Store) DeleteFavorite(employeeID int, id string) (int64, error) {
	res, err := s.db.Exec(
		`DELETE FROM favorites WHERE employee_id = ? AND id = ?`,
		employeeID, id,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
