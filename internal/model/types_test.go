package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDraftPrefillsToday(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, time.Now().Format("2006-01-02"), d.CookedOn)
	assert.Empty(t, d.Guest)
	assert.Empty(t, d.Name)
}

func TestDraftFrom(t *testing.T) {
	diet := "vegan"
	m := Meal{ID: "1", Guest: "Eva", Name: "Soppa", CookedOn: "2026-08-01", Diet: &diet}

	d := DraftFrom(m)
	assert.Equal(t, "Eva", d.Guest)
	assert.Equal(t, "Soppa", d.Name)
	assert.Equal(t, "2026-08-01", d.CookedOn)
	assert.Equal(t, "vegan", d.Diet)
	assert.Empty(t, d.Notes)
}

func TestFormMode(t *testing.T) {
	add := AddMode()
	assert.False(t, add.IsEdit())
	assert.Equal(t, "New Meal", add.Title())
	assert.Empty(t, add.MealID())
	_, ok := add.Meal()
	assert.False(t, ok)

	m := Meal{ID: "1", Guest: "Eva", Name: "Soppa"}
	edit := EditMode(m)
	assert.True(t, edit.IsEdit())
	assert.Equal(t, "Edit Meal", edit.Title())
	assert.Equal(t, "1", edit.MealID())
	got, ok := edit.Meal()
	assert.True(t, ok)
	assert.Equal(t, m, got)
}
