// Package meal holds the meal record lifecycle: validation of a draft and
// committing it to the repository as an insert or an in-place update.
package meal

import (
	"errors"

	"middag/internal/model"
)

// ErrNotFound is returned by repository operations that target a meal id that
// no longer exists.
var ErrNotFound = errors.New("meal not found")

// Repository is the persistence collaborator holding the authoritative set of
// meal records. All mutations go through it; callers treat every call as
// synchronous and never retain references into its storage.
type Repository interface {
	// Query returns a point-in-time snapshot of all meals.
	Query() ([]model.Meal, error)
	Insert(m model.Meal) error
	// Update overwrites the fields of the meal with m.ID. Returns ErrNotFound
	// if no such meal exists.
	Update(m model.Meal) error
	// Delete removes the meal with the given id. Returns ErrNotFound if no
	// such meal exists.
	Delete(id string) error
}
