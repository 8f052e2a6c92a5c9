package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// MealsLoadedMsg is sent when meals are loaded.
type MealsLoadedMsg struct {
	Meals []Meal
}

// GuestsLoadedMsg is sent when guest aggregates are loaded.
type GuestsLoadedMsg struct {
	Guests []GuestRow
}

// MealDetailLoadedMsg is sent when a meal detail is loaded.
type MealDetailLoadedMsg struct {
	Meal Meal
}

// MealSavedMsg is sent when a meal is successfully saved.
type MealSavedMsg struct {
	ID        string
	Operation string // insert, update
	Before    *Meal
	After     Meal
}

// DeleteMealMsg is sent after a meal has been deleted.
type DeleteMealMsg struct {
	ID      string
	Deleted Meal
}

// FormCancelledMsg is sent when a form is cancelled.
type FormCancelledMsg struct{}

// Screen represents different app screens.
type Screen int

const (
	ScreenMeals Screen = iota
	ScreenGuests
	ScreenMealDetail
	ScreenMealForm
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
