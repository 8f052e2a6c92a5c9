package meal

import (
	"errors"
	"testing"

	"middag/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory Repository for exercising commit semantics.
type memRepo struct {
	meals  []model.Meal
	failed error
}

func (r *memRepo) Query() ([]model.Meal, error) {
	if r.failed != nil {
		return nil, r.failed
	}
	out := make([]model.Meal, len(r.meals))
	copy(out, r.meals)
	return out, nil
}

func (r *memRepo) Insert(m model.Meal) error {
	if r.failed != nil {
		return r.failed
	}
	r.meals = append(r.meals, m)
	return nil
}

func (r *memRepo) Update(m model.Meal) error {
	if r.failed != nil {
		return r.failed
	}
	for i := range r.meals {
		if r.meals[i].ID == m.ID {
			r.meals[i] = m
			return nil
		}
	}
	return ErrNotFound
}

func (r *memRepo) Delete(id string) error {
	if r.failed != nil {
		return r.failed
	}
	for i := range r.meals {
		if r.meals[i].ID == id {
			r.meals = append(r.meals[:i], r.meals[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func TestCommitAddCreatesMeal(t *testing.T) {
	repo := &memRepo{}
	draft := model.Draft{Guest: "Göran", Name: "Carbonara", CookedOn: "2026-08-29"}

	saved, err := Commit(repo, draft, model.AddMode())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Göran", saved.Guest)
	assert.Equal(t, "Carbonara", saved.Name)
	assert.False(t, saved.CreatedAt.IsZero())
	require.Len(t, repo.meals, 1)
}

func TestCommitAddTwiceCreatesDistinctMeals(t *testing.T) {
	repo := &memRepo{}
	draft := model.Draft{Guest: "Eva", Name: "Soppa"}

	first, err := Commit(repo, draft, model.AddMode())
	require.NoError(t, err)
	second, err := Commit(repo, draft, model.AddMode())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	require.Len(t, repo.meals, 2)
}

func TestCommitEditMutatesOnlyTarget(t *testing.T) {
	repo := &memRepo{meals: []model.Meal{
		{ID: "1", Guest: "Eva", Name: "Soppa"},
		{ID: "2", Guest: "Göran", Name: "Carbonara"},
	}}

	original := repo.meals[0]
	draft := model.DraftFrom(original)
	draft.Name = "Fisksoppa"

	saved, err := Commit(repo, draft, model.EditMode(original))
	require.NoError(t, err)
	assert.Equal(t, "1", saved.ID)
	assert.Equal(t, "Fisksoppa", saved.Name)

	assert.Equal(t, "Fisksoppa", repo.meals[0].Name)
	assert.Equal(t, "Carbonara", repo.meals[1].Name)
}

func TestCommitEditPreservesIDAndCreatedAt(t *testing.T) {
	original := model.Meal{ID: "1", Guest: "Eva", Name: "Soppa"}
	repo := &memRepo{meals: []model.Meal{original}}

	draft := model.DraftFrom(original)
	draft.Guest = "Farmor"

	saved, err := Commit(repo, draft, model.EditMode(original))
	require.NoError(t, err)
	assert.Equal(t, original.ID, saved.ID)
	assert.Equal(t, original.CreatedAt, saved.CreatedAt)
}

func TestCommitEditDeletedMealIsNoOp(t *testing.T) {
	// The target was deleted between opening the form and saving.
	repo := &memRepo{}
	original := model.Meal{ID: "gone", Guest: "Eva", Name: "Soppa"}

	draft := model.DraftFrom(original)
	draft.Name = "Fisksoppa"

	saved, err := Commit(repo, draft, model.EditMode(original))
	require.NoError(t, err)
	assert.Equal(t, "Fisksoppa", saved.Name)
	assert.Empty(t, repo.meals)
}

func TestCommitInvalidDraft(t *testing.T) {
	repo := &memRepo{}
	_, err := Commit(repo, model.Draft{Guest: " ", Name: "Soppa"}, model.AddMode())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Result.Has(model.FieldGuest))
	assert.Empty(t, repo.meals)
}

func TestCommitOptionalFieldsCollapseToNil(t *testing.T) {
	repo := &memRepo{}
	draft := model.Draft{Guest: "Eva", Name: "Soppa", Diet: "", Notes: ""}

	saved, err := Commit(repo, draft, model.AddMode())
	require.NoError(t, err)
	assert.Nil(t, saved.Diet)
	assert.Nil(t, saved.Notes)

	draft.Diet = "vegetarian"
	saved, err = Commit(repo, draft, model.AddMode())
	require.NoError(t, err)
	require.NotNil(t, saved.Diet)
	assert.Equal(t, "vegetarian", *saved.Diet)
}

func TestCommitPropagatesRepositoryError(t *testing.T) {
	boom := errors.New("disk full")
	repo := &memRepo{failed: boom}

	_, err := Commit(repo, model.Draft{Guest: "Eva", Name: "Soppa"}, model.AddMode())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestDeleteIgnoresMissing(t *testing.T) {
	repo := &memRepo{meals: []model.Meal{{ID: "1", Guest: "Eva", Name: "Soppa"}}}

	require.NoError(t, Delete(repo, "1"))
	assert.Empty(t, repo.meals)

	// Deleting again is not an error.
	require.NoError(t, Delete(repo, "1"))
}

func TestDeletePropagatesOtherErrors(t *testing.T) {
	boom := errors.New("disk full")
	repo := &memRepo{failed: boom}
	assert.ErrorIs(t, Delete(repo, "1"), boom)
}
