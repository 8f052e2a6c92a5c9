package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("Göran", "GÖRAN"))
	assert.True(t, EqualFold("eva", "EVA"))
	assert.True(t, EqualFold("", ""))
	assert.False(t, EqualFold("Eva", "Eva "))
	assert.False(t, EqualFold("Eva", "Evan"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Göran", "gö"))
	assert.True(t, ContainsFold("Köttbullar", "BULL"))
	assert.False(t, ContainsFold("Carbonara", "kött"))

	// Empty needle matches anything
	assert.True(t, ContainsFold("anything", ""))
	assert.True(t, ContainsFold("", ""))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank(" x "))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Carbonara", Capitalize("carbonara"))
	assert.Equal(t, "Lax i ugn", Capitalize("LAX I UGN"))
	assert.Equal(t, "Östen", Capitalize("östen"))
	assert.Equal(t, "", Capitalize(""))
}
