package meal

import (
	"errors"
	"fmt"
	"time"

	"middag/internal/model"

	"github.com/google/uuid"
)

// Commit validates the draft and writes it to the repository. In add mode a
// new meal with a fresh id is inserted; in edit mode the target meal's fields
// are overwritten while its id and creation time stay unchanged.
//
// Empty diet/notes input collapses to an absent value, never to an empty
// string. If the edited meal was deleted concurrently, the update is a no-op:
// the list view already reflects the disappearance.
func Commit(repo Repository, d model.Draft, mode model.FormMode) (model.Meal, error) {
	if result := Validate(d); !result.Valid {
		return model.Meal{}, &ValidationError{Result: result}
	}

	if original, ok := mode.Meal(); ok {
		updated := original
		applyDraft(&updated, d)
		if err := repo.Update(updated); err != nil {
			if errors.Is(err, ErrNotFound) {
				return updated, nil
			}
			return model.Meal{}, fmt.Errorf("failed to update meal: %w", err)
		}
		return updated, nil
	}

	created := model.Meal{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	applyDraft(&created, d)
	if err := repo.Insert(created); err != nil {
		return model.Meal{}, fmt.Errorf("failed to insert meal: %w", err)
	}
	return created, nil
}

// Delete removes a meal from the repository. A meal that is already gone is
// treated as deleted.
func Delete(repo Repository, id string) error {
	if err := repo.Delete(id); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	return nil
}

func applyDraft(m *model.Meal, d model.Draft) {
	m.Guest = d.Guest
	m.Name = d.Name
	m.CookedOn = d.CookedOn
	m.Diet = nilIfEmpty(d.Diet)
	m.Notes = nilIfEmpty(d.Notes)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
