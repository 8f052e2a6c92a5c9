package suggest

import (
	"testing"

	"middag/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mealsFixture() []model.Meal {
	return []model.Meal{
		{ID: "1", Guest: "Eva", Name: "Carbonara"},
		{ID: "2", Guest: "eva", Name: "Köttbullar"},
		{ID: "3", Guest: "Eva ", Name: "Lax i ugn"},
		{ID: "4", Guest: "Göran", Name: "carbonara"},
	}
}

func TestFindDuplicatesByGuest(t *testing.T) {
	got := FindDuplicates(mealsFixture(), ByGuest, "eva", "")
	require.Len(t, got, 2)
	// Input order preserved; "Eva " does not fold-match "eva".
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestFindDuplicatesByMealName(t *testing.T) {
	got := FindDuplicates(mealsFixture(), ByMealName, "CARBONARA", "")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestFindDuplicatesBlankValue(t *testing.T) {
	assert.Nil(t, FindDuplicates(mealsFixture(), ByGuest, "", ""))
	assert.Nil(t, FindDuplicates(mealsFixture(), ByGuest, "   ", ""))
}

func TestFindDuplicatesExcludesID(t *testing.T) {
	got := FindDuplicates(mealsFixture(), ByGuest, "eva", "1")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFindDuplicatesNoMatch(t *testing.T) {
	assert.Nil(t, FindDuplicates(mealsFixture(), ByGuest, "Farmor", ""))
	assert.Nil(t, FindDuplicates(nil, ByGuest, "Eva", ""))
}
