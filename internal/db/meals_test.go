package db

import (
	"path/filepath"
	"testing"
	"time"

	"middag/internal/meal"
	"middag/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testMeal(guest, name, cookedOn string) model.Meal {
	return model.Meal{
		ID:       uuid.NewString(),
		Guest:    guest,
		Name:     name,
		CookedOn: cookedOn,
	}
}

func TestInsertAndGetMeal(t *testing.T) {
	store := openTestStore(t)

	m := testMeal("Göran", "Carbonara", "2026-08-29")
	diet := "vegetarian"
	m.Diet = &diet
	m.CreatedAt = time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)

	require.NoError(t, store.Insert(m))

	got, err := store.GetMeal(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Göran", got.Guest)
	assert.Equal(t, "Carbonara", got.Name)
	assert.Equal(t, "2026-08-29", got.CookedOn)
	require.NotNil(t, got.Diet)
	assert.Equal(t, "vegetarian", *got.Diet)
	assert.Nil(t, got.Notes)
	assert.True(t, got.CreatedAt.Equal(m.CreatedAt))
}

func TestGetMealNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetMeal("missing")
	assert.ErrorIs(t, err, meal.ErrNotFound)
}

func TestOptionalFieldsRoundTripAsNull(t *testing.T) {
	store := openTestStore(t)

	m := testMeal("Eva", "Soppa", "2026-08-01")
	require.NoError(t, store.Insert(m))

	got, err := store.GetMeal(m.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Diet)
	assert.Nil(t, got.Notes)
}

func TestUpdateMeal(t *testing.T) {
	store := openTestStore(t)

	m := testMeal("Eva", "Soppa", "2026-08-01")
	require.NoError(t, store.Insert(m))

	notes := "extra dill"
	m.Name = "Fisksoppa"
	m.Notes = &notes
	require.NoError(t, store.Update(m))

	got, err := store.GetMeal(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fisksoppa", got.Name)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "extra dill", *got.Notes)
}

func TestUpdateMissingMeal(t *testing.T) {
	store := openTestStore(t)
	err := store.Update(testMeal("Eva", "Soppa", "2026-08-01"))
	assert.ErrorIs(t, err, meal.ErrNotFound)
}

func TestDeleteMeal(t *testing.T) {
	store := openTestStore(t)

	m := testMeal("Eva", "Soppa", "2026-08-01")
	require.NoError(t, store.Insert(m))
	require.NoError(t, store.Delete(m.ID))

	_, err := store.GetMeal(m.ID)
	assert.ErrorIs(t, err, meal.ErrNotFound)

	assert.ErrorIs(t, store.Delete(m.ID), meal.ErrNotFound)
}

func TestListMealsOrdering(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Insert(testMeal("Eva", "Soppa", "2026-08-01")))
	require.NoError(t, store.Insert(testMeal("Göran", "Carbonara", "2026-08-20")))
	require.NoError(t, store.Insert(testMeal("Anna", "Lax i ugn", "2026-08-20")))

	meals, err := store.ListMeals("")
	require.NoError(t, err)
	require.Len(t, meals, 3)

	// Newest cook date first, guest name breaking ties.
	assert.Equal(t, "Anna", meals[0].Guest)
	assert.Equal(t, "Göran", meals[1].Guest)
	assert.Equal(t, "Eva", meals[2].Guest)
}

func TestListMealsFilter(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Insert(testMeal("Eva", "Soppa", "2026-08-01")))
	require.NoError(t, store.Insert(testMeal("Göran", "Carbonara", "2026-08-20")))

	byGuest, err := store.ListMeals("eva")
	require.NoError(t, err)
	require.Len(t, byGuest, 1)
	assert.Equal(t, "Eva", byGuest[0].Guest)

	byName, err := store.ListMeals("carb")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Carbonara", byName[0].Name)

	none, err := store.ListMeals("pizza")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListGuestsAggregation(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Insert(testMeal("Eva", "Soppa", "2026-08-01")))
	require.NoError(t, store.Insert(testMeal("Eva", "Fisksoppa", "2026-08-15")))
	require.NoError(t, store.Insert(testMeal("eva", "Carbonara", "2026-08-10")))

	guests, err := store.ListGuests()
	require.NoError(t, err)
	require.Len(t, guests, 2)

	// Exact-string grouping keeps case variants apart.
	assert.Equal(t, "Eva", guests[0].Guest)
	assert.Equal(t, 2, guests[0].MealCount)
	assert.Equal(t, "2026-08-15", guests[0].LastCooked)
	assert.Equal(t, "eva", guests[1].Guest)
	assert.Equal(t, 1, guests[1].MealCount)
}

func TestSeedSampleMeals(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SeedSampleMeals())
	meals, err := store.Query()
	require.NoError(t, err)
	assert.NotEmpty(t, meals)

	// Seeding an already populated database is a no-op.
	before := len(meals)
	require.NoError(t, store.SeedSampleMeals())
	meals, err = store.Query()
	require.NoError(t, err)
	assert.Len(t, meals, before)
}
