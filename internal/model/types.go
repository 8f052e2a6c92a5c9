package model

import "time"

// Meal represents one cooking event: which meal was cooked for which guest on which date.
type Meal struct {
	ID        string // uuid, assigned at creation and never reused
	Guest     string
	Name      string
	CookedOn  string // ISO 8601 date (YYYY-MM-DD)
	Diet      *string
	Notes     *string
	CreatedAt time.Time
}

// Draft is a non-persisted working copy of a meal, owned by a single form
// session. Optional fields are plain strings here; empty input collapses to
// an absent value when the draft is committed.
type Draft struct {
	Guest    string
	Name     string
	CookedOn string
	Diet     string
	Notes    string
}

// NewDraft returns an empty draft with the cooked date prefilled to today.
func NewDraft() Draft {
	return Draft{CookedOn: time.Now().Format("2006-01-02")}
}

// DraftFrom returns a draft populated from an existing meal.
func DraftFrom(meal Meal) Draft {
	d := Draft{
		Guest:    meal.Guest,
		Name:     meal.Name,
		CookedOn: meal.CookedOn,
	}
	if meal.Diet != nil {
		d.Diet = *meal.Diet
	}
	if meal.Notes != nil {
		d.Notes = *meal.Notes
	}
	return d
}

// FormMode says whether the form creates a new meal or edits an existing one.
type FormMode struct {
	meal *Meal
}

// AddMode returns the mode for creating a new meal.
func AddMode() FormMode {
	return FormMode{}
}

// EditMode returns the mode for editing an existing meal.
func EditMode(meal Meal) FormMode {
	return FormMode{meal: &meal}
}

// IsEdit reports whether the mode edits an existing meal.
func (m FormMode) IsEdit() bool {
	return m.meal != nil
}

// Meal returns the meal being edited, if any.
func (m FormMode) Meal() (Meal, bool) {
	if m.meal == nil {
		return Meal{}, false
	}
	return *m.meal, true
}

// MealID returns the id of the meal being edited, or "" in add mode.
func (m FormMode) MealID() string {
	if m.meal == nil {
		return ""
	}
	return m.meal.ID
}

// Title returns the form heading for the mode.
func (m FormMode) Title() string {
	if m.IsEdit() {
		return "Edit Meal"
	}
	return "New Meal"
}

// Field identifies a required form field, in focus priority order.
type Field int

const (
	FieldGuest Field = iota
	FieldMealName
)

func (f Field) String() string {
	switch f {
	case FieldGuest:
		return "guest"
	case FieldMealName:
		return "meal"
	default:
		return "unknown"
	}
}

// GuestRow represents a guest with aggregate stats for list display.
type GuestRow struct {
	Guest      string
	MealCount  int
	LastCooked string
}
