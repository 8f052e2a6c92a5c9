package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionsEmptyQuery(t *testing.T) {
	values := []string{"Göran", "Eriksson"}
	assert.Nil(t, Suggestions(values, ""))
}

func TestSuggestionsWhitespaceQueryStillFilters(t *testing.T) {
	// Only the literal empty string short-circuits; a whitespace query
	// runs the normal substring filter and matches nothing here.
	values := []string{"Göran", "Eriksson"}
	assert.Nil(t, Suggestions(values, "   "))

	// A value containing a space does match a space query.
	got := Suggestions([]string{"Lax i ugn"}, " ")
	assert.Equal(t, []string{"Lax i ugn"}, got)
}

func TestSuggestionsCaseInsensitiveMatch(t *testing.T) {
	values := []string{"Göran", "GORAN", "Eriksson"}
	got := Suggestions(values, "g")
	assert.Equal(t, []string{"GORAN", "Göran"}, got)
}

func TestSuggestionsExcludesExactFoldMatch(t *testing.T) {
	// A value case-insensitively equal to the query is not suggested.
	values := []string{"Eva", "Evan"}
	got := Suggestions(values, "eva")
	assert.Equal(t, []string{"Evan"}, got)
}

func TestSuggestionsDeduplicatesExactStrings(t *testing.T) {
	values := []string{"Göran", "Göran", "GÖRAN"}
	got := Suggestions(values, "gö")
	// Exact duplicates collapse; case variants stay distinct.
	assert.Equal(t, []string{"GÖRAN", "Göran"}, got)
}

func TestSuggestionsSorted(t *testing.T) {
	values := []string{"Zelda", "Anna", "Moa"}
	got := Suggestions(values, "a")
	assert.Equal(t, []string{"Anna", "Moa", "Zelda"}, got)
}

func TestSuggestionsNoMatches(t *testing.T) {
	assert.Nil(t, Suggestions([]string{"Göran"}, "xyz"))
	assert.Nil(t, Suggestions(nil, "g"))
}
