package ui

import (
	"strings"

	"middag/internal/model"
	"middag/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// MealDetailModel represents the meal detail screen.
type MealDetailModel struct {
	meal model.Meal
}

// NewMealDetailModel creates a new meal detail model.
func NewMealDetailModel(meal model.Meal) *MealDetailModel {
	return &MealDetailModel{meal: meal}
}

// View renders the meal detail.
func (m *MealDetailModel) View(width, height int) string {
	var sections []string

	// Keyboard shortcuts in top right corner
	shortcuts := HelpDescStyle.Render("e edit  d delete  h back")

	// Main info section
	var fields []string
	fields = append(fields, renderField("Guest", m.meal.Guest))
	fields = append(fields, renderField("Meal", m.meal.Name))
	fields = append(fields, renderField("Cooked On", util.FormatDate(m.meal.CookedOn)))
	fields = append(fields, renderField("Diet", util.FormatOptional(m.meal.Diet)))

	sections = append(sections, strings.Join(fields, "\n"))

	// Divider
	divider := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render(strings.Repeat("─", width-8))
	sections = append(sections, divider)

	// Notes section
	if m.meal.Notes != nil {
		sections = append(sections, LabelStyle.Render("Notes:"))
		sections = append(sections, NormalRowStyle.Render(*m.meal.Notes))
	} else {
		sections = append(sections, HelpDescStyle.Render("No notes for this meal"))
	}

	content := PanelStyle.
		Width(width - 4).
		Render(strings.Join(sections, "\n\n"))

	// Add shortcuts at the top
	header := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Right).
		Render(shortcuts)

	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}

func renderField(label, value string) string {
	if value == "" {
		value = "—"
	}
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(value)
}
