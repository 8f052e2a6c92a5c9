package db

import (
	"fmt"
	"time"

	"middag/internal/model"

	"github.com/google/uuid"
)

// SeedSampleMeals inserts a few starter meals on first run. Does nothing if
// the database already contains meals.
func (s *Store) SeedSampleMeals() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(id) FROM meals").Scan(&count); err != nil {
		return fmt.Errorf("failed to count meals: %w", err)
	}
	if count > 0 {
		return nil
	}

	today := time.Now().Format("2006-01-02")
	samples := []model.Meal{
		{Guest: "Göran", Name: "Carbonara", CookedOn: today},
		{Guest: "Eriksson", Name: "Köttbullar", CookedOn: today},
		{Guest: "Farmor", Name: "Lax i ugn", CookedOn: today},
	}

	for _, m := range samples {
		m.ID = uuid.NewString()
		m.CreatedAt = time.Now().UTC()
		if err := s.Insert(m); err != nil {
			return fmt.Errorf("failed to seed sample meal: %w", err)
		}
	}
	return nil
}
