package suggest

import (
	"middag/internal/model"
	"middag/internal/textutil"
)

// DuplicateField selects which meal field duplicate detection compares.
type DuplicateField int

const (
	ByGuest DuplicateField = iota
	ByMealName
)

func (f DuplicateField) value(m model.Meal) string {
	if f == ByGuest {
		return m.Guest
	}
	return m.Name
}

// FindDuplicates returns the meals whose selected field matches value
// case-insensitively, in the same order as the input. A blank value yields
// no matches; excludeID omits the record currently being edited so it never
// matches itself. Pass "" for excludeID when adding a new meal.
func FindDuplicates(meals []model.Meal, field DuplicateField, value string, excludeID string) []model.Meal {
	if textutil.IsBlank(value) {
		return nil
	}

	var out []model.Meal
	for _, m := range meals {
		if excludeID != "" && m.ID == excludeID {
			continue
		}
		if textutil.EqualFold(field.value(m), value) {
			out = append(out, m)
		}
	}
	return out
}
