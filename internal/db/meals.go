package db

import (
	"database/sql"
	"fmt"
	"time"

	"middag/internal/meal"
	"middag/internal/model"
)

// ListMeals retrieves all meals, optionally filtered by a case-insensitive
// substring match on guest or meal name. Ordered by cooked date descending,
// then guest ascending.
func (s *Store) ListMeals(filter string) ([]model.Meal, error) {
	query := `
		SELECT id, guest, name, cooked_on, diet, notes, created_at
		FROM meals
		WHERE (? = '' OR guest LIKE '%' || ? || '%' OR name LIKE '%' || ? || '%')
		ORDER BY cooked_on DESC, guest ASC
	`

	rows, err := s.db.Query(query, filter, filter, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	defer rows.Close()

	var results []model.Meal
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meal row: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meal rows: %w", err)
	}

	return results, nil
}

// Query returns a snapshot of all meals in list order. It implements
// meal.Repository.
func (s *Store) Query() ([]model.Meal, error) {
	return s.ListMeals("")
}

// GetMeal retrieves a single meal by id.
func (s *Store) GetMeal(id string) (model.Meal, error) {
	query := `
		SELECT id, guest, name, cooked_on, diet, notes, created_at
		FROM meals
		WHERE id = ?
	`

	m, err := scanMeal(s.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Meal{}, meal.ErrNotFound
		}
		return model.Meal{}, fmt.Errorf("failed to get meal: %w", err)
	}
	return m, nil
}

// Insert creates a new meal with the id it carries.
func (s *Store) Insert(m model.Meal) error {
	query := `
		INSERT INTO meals (id, guest, name, cooked_on, diet, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var diet, notes interface{}
	if m.Diet != nil {
		diet = *m.Diet
	}
	if m.Notes != nil {
		notes = *m.Notes
	}
	createdAt := time.Now().UTC().Format(time.RFC3339)
	if !m.CreatedAt.IsZero() {
		createdAt = m.CreatedAt.UTC().Format(time.RFC3339)
	}

	if _, err := s.db.Exec(query, m.ID, m.Guest, m.Name, m.CookedOn, diet, notes, createdAt); err != nil {
		return fmt.Errorf("failed to insert meal: %w", err)
	}
	return nil
}

// Update overwrites an existing meal's fields, leaving id and created_at
// unchanged. Returns meal.ErrNotFound if the meal no longer exists.
func (s *Store) Update(m model.Meal) error {
	query := `
		UPDATE meals
		SET guest = ?, name = ?, cooked_on = ?, diet = ?, notes = ?
		WHERE id = ?
	`

	var diet, notes interface{}
	if m.Diet != nil {
		diet = *m.Diet
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	result, err := s.db.Exec(query, m.Guest, m.Name, m.CookedOn, diet, notes, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return meal.ErrNotFound
	}
	return nil
}

// Delete removes a meal by id. Returns meal.ErrNotFound if the meal no longer
// exists.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec("DELETE FROM meals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return meal.ErrNotFound
	}
	return nil
}

// ListGuests retrieves per-guest aggregates for list display. Guests are
// grouped by exact stored value, not case-insensitively, matching the
// uniqueness rule used elsewhere.
func (s *Store) ListGuests() ([]model.GuestRow, error) {
	query := `
		SELECT guest, COUNT(id) as meal_count, MAX(cooked_on) as last_cooked
		FROM meals
		GROUP BY guest
		ORDER BY guest ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	var results []model.GuestRow
	for rows.Next() {
		var g model.GuestRow
		var lastCooked sql.NullString
		if err := rows.Scan(&g.Guest, &g.MealCount, &lastCooked); err != nil {
			return nil, fmt.Errorf("failed to scan guest row: %w", err)
		}
		g.LastCooked = lastCooked.String
		results = append(results, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guest rows: %w", err)
	}

	return results, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMeal(row rowScanner) (model.Meal, error) {
	var m model.Meal
	var diet, notes sql.NullString
	var createdAt string

	if err := row.Scan(&m.ID, &m.Guest, &m.Name, &m.CookedOn, &diet, &notes, &createdAt); err != nil {
		return model.Meal{}, err
	}

	if diet.Valid {
		d := diet.String
		m.Diet = &d
	}
	if notes.Valid {
		n := notes.String
		m.Notes = &n
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		m.CreatedAt = t
	}

	return m, nil
}
