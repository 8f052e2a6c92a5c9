package meal

import (
	"testing"

	"middag/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValid(t *testing.T) {
	result := Validate(model.Draft{Guest: "Göran", Name: "Carbonara"})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateBlankGuest(t *testing.T) {
	result := Validate(model.Draft{Guest: "   ", Name: "Carbonara"})
	assert.False(t, result.Valid)
	assert.True(t, result.Has(model.FieldGuest))
	assert.False(t, result.Has(model.FieldMealName))

	field, ok := result.FirstInvalid()
	require.True(t, ok)
	assert.Equal(t, model.FieldGuest, field)
}

func TestValidateBlankMealName(t *testing.T) {
	result := Validate(model.Draft{Guest: "Göran", Name: ""})
	assert.False(t, result.Valid)
	assert.True(t, result.Has(model.FieldMealName))

	field, ok := result.FirstInvalid()
	require.True(t, ok)
	assert.Equal(t, model.FieldMealName, field)
}

func TestValidateBothBlankGuestFirst(t *testing.T) {
	result := Validate(model.Draft{})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)

	// Guest outranks meal name for focus.
	field, ok := result.FirstInvalid()
	require.True(t, ok)
	assert.Equal(t, model.FieldGuest, field)
}

func TestFirstInvalidOnValidResult(t *testing.T) {
	result := Validate(model.Draft{Guest: "Eva", Name: "Soppa"})
	_, ok := result.FirstInvalid()
	assert.False(t, ok)
}

func TestValidateWhitespacePaddingOK(t *testing.T) {
	// Padded but non-blank values pass and are stored as typed.
	result := Validate(model.Draft{Guest: " Eva ", Name: " Lax i ugn "})
	assert.True(t, result.Valid)
}
