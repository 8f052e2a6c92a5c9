package ui

import (
	"fmt"
	"strings"

	"middag/internal/meal"
	"middag/internal/model"
	"middag/internal/suggest"
	"middag/internal/textutil"
	"middag/internal/util"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form field indexes.
const (
	fieldGuest = iota
	fieldMealName
	fieldDiet
	fieldNotes
	fieldDate
)

// MealFormModel represents the meal form.
type MealFormModel struct {
	repo  meal.Repository
	mode  model.FormMode
	meals []model.Meal // snapshot for suggestions and duplicate hints

	focusedField int
	inputs       []textinput.Model
	error        string

	showValidationErrors bool
	validation           meal.Result

	// Suggestion dropdown state. Suggestions are recomputed from the snapshot
	// on every keystroke; nothing is cached between keystrokes.
	suggestions   []string
	suggestCursor int
	showDropdown  bool
}

// NewMealFormModel creates a new meal form for the given mode.
func NewMealFormModel(repo meal.Repository, mode model.FormMode) *MealFormModel {
	inputs := make([]textinput.Model, 5)

	inputs[fieldGuest] = textinput.New()
	inputs[fieldGuest].Placeholder = "Who did you cook for?"
	inputs[fieldGuest].Focus()
	inputs[fieldGuest].CharLimit = 100

	inputs[fieldMealName] = textinput.New()
	inputs[fieldMealName].Placeholder = "What did you cook?"
	inputs[fieldMealName].CharLimit = 100

	inputs[fieldDiet] = textinput.New()
	inputs[fieldDiet].Placeholder = "Vegetarian, gluten-free... (optional)"
	inputs[fieldDiet].CharLimit = 100

	inputs[fieldNotes] = textinput.New()
	inputs[fieldNotes].Placeholder = "Your notes... (optional)"
	inputs[fieldNotes].CharLimit = 500

	inputs[fieldDate] = textinput.New()
	inputs[fieldDate].Placeholder = "June 20, 2025 (default: today)"
	inputs[fieldDate].CharLimit = 32

	m := &MealFormModel{
		repo:   repo,
		mode:   mode,
		inputs: inputs,
	}

	// Point-in-time snapshot; suggestions and duplicate hints observe it
	// for the whole form session.
	if meals, err := repo.Query(); err == nil {
		m.meals = meals
	}

	draft := model.NewDraft()
	if original, ok := mode.Meal(); ok {
		draft = model.DraftFrom(original)
	}
	m.inputs[fieldGuest].SetValue(draft.Guest)
	m.inputs[fieldMealName].SetValue(draft.Name)
	m.inputs[fieldDiet].SetValue(draft.Diet)
	m.inputs[fieldNotes].SetValue(draft.Notes)
	m.inputs[fieldDate].SetValue(util.FormatDate(draft.CookedOn))

	return m
}

// Update handles all messages.
func (m MealFormModel) Update(msg tea.Msg) (MealFormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Handle dropdown navigation when visible
	if m.showDropdown && m.suggestionField() {
		switch keyMsg.String() {
		case "esc":
			m.showDropdown = false
			return m, nil
		case "down", "ctrl+n":
			if m.suggestCursor < len(m.suggestions)-1 {
				m.suggestCursor++
			}
			return m, nil
		case "up", "ctrl+p":
			if m.suggestCursor > 0 {
				m.suggestCursor--
			}
			return m, nil
		case "enter", "tab":
			if m.suggestCursor < len(m.suggestions) {
				m.inputs[m.focusedField].SetValue(m.suggestions[m.suggestCursor])
				m.inputs[m.focusedField].CursorEnd()
				m.showDropdown = false
				m.nextField()
			}
			return m, nil
		}
	}

	// Handle form navigation
	switch keyMsg.String() {
	case "esc":
		if m.showDropdown {
			m.showDropdown = false
			return m, nil
		}
		return m, func() tea.Msg {
			return model.FormCancelledMsg{}
		}
	case "ctrl+s":
		return m.save()
	case "tab":
		if !m.showDropdown {
			m.nextField()
			return m, nil
		}
	case "shift+tab":
		m.showDropdown = false
		m.prevField()
		return m, nil
	}

	// Update current input
	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(keyMsg)

	// Recompute suggestions for the guest and meal name fields on every
	// keystroke. The filter is a cheap in-memory scan, so no debounce.
	if m.suggestionField() {
		query := m.inputs[m.focusedField].Value()
		m.suggestions = suggest.Suggestions(m.fieldValues(), query)
		m.suggestCursor = 0
		m.showDropdown = len(m.suggestions) > 0
	}

	return m, cmd
}

func (m *MealFormModel) suggestionField() bool {
	return m.focusedField == fieldGuest || m.focusedField == fieldMealName
}

// fieldValues returns every stored value of the focused field.
func (m *MealFormModel) fieldValues() []string {
	values := make([]string, 0, len(m.meals))
	for _, ml := range m.meals {
		if m.focusedField == fieldGuest {
			values = append(values, ml.Guest)
		} else {
			values = append(values, ml.Name)
		}
	}
	return values
}

func (m *MealFormModel) guestDuplicates() []model.Meal {
	return suggest.FindDuplicates(m.meals, suggest.ByGuest, m.inputs[fieldGuest].Value(), m.mode.MealID())
}

func (m *MealFormModel) mealNameDuplicates() []model.Meal {
	return suggest.FindDuplicates(m.meals, suggest.ByMealName, m.inputs[fieldMealName].Value(), m.mode.MealID())
}

func (m MealFormModel) save() (MealFormModel, tea.Cmd) {
	date, err := util.ParseDateInput(m.inputs[fieldDate].Value())
	if err != nil {
		m.error = "Invalid date format (e.g. June 20, 2025)"
		return m, nil
	}
	if date == "" {
		date = util.TodayISO()
	}

	draft := model.Draft{
		Guest:    m.inputs[fieldGuest].Value(),
		Name:     m.inputs[fieldMealName].Value(),
		CookedOn: date,
		Diet:     m.inputs[fieldDiet].Value(),
		Notes:    m.inputs[fieldNotes].Value(),
	}

	// Validate before committing so the form can flag fields and move focus
	// to the first invalid one. The draft is not cleared and the form stays
	// open until the user corrects it or cancels.
	if result := meal.Validate(draft); !result.Valid {
		m.showValidationErrors = true
		m.validation = result
		m.error = ""
		if field, ok := result.FirstInvalid(); ok {
			m.focusField(fieldIndex(field))
		}
		return m, nil
	}

	mode := m.mode
	repo := m.repo
	var before *model.Meal
	operation := "insert"
	if original, ok := mode.Meal(); ok {
		before = &original
		operation = "update"
	}

	return m, func() tea.Msg {
		saved, err := meal.Commit(repo, draft, mode)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.MealSavedMsg{
			ID:        saved.ID,
			Operation: operation,
			Before:    before,
			After:     saved,
		}
	}
}

func fieldIndex(field model.Field) int {
	if field == model.FieldGuest {
		return fieldGuest
	}
	return fieldMealName
}

func (m *MealFormModel) invalidField(idx int) bool {
	if !m.showValidationErrors {
		return false
	}
	switch idx {
	case fieldGuest:
		return m.validation.Has(model.FieldGuest)
	case fieldMealName:
		return m.validation.Has(model.FieldMealName)
	default:
		return false
	}
}

// View renders the form.
func (m *MealFormModel) View(width, height int) string {
	var fields []string

	title := LabelStyle.Render(m.mode.Title())
	fields = append(fields, title)

	guestField := m.renderValidatedField("Guest *", fieldGuest, "Guest is required", width)
	if dups := m.guestDuplicates(); m.focusedField != fieldGuest && m.inputs[fieldGuest].Value() != "" && len(dups) > 0 {
		hint := fmt.Sprintf("Cooked %d %s for this guest.", len(dups), util.Pluralize(len(dups), "meal", "meals"))
		guestField = lipgloss.JoinVertical(lipgloss.Left, guestField, HelpDescStyle.Render(hint))
	}
	fields = append(fields, guestField)

	mealField := m.renderValidatedField("Meal *", fieldMealName, "Meal is required", width)
	if dups := m.mealNameDuplicates(); m.focusedField != fieldMealName && m.inputs[fieldMealName].Value() != "" && len(dups) > 0 {
		name := textutil.Capitalize(dups[0].Name)
		hint := fmt.Sprintf("%s has been cooked for %d %s.", name, len(dups), util.Pluralize(len(dups), "guest", "guests"))
		mealField = lipgloss.JoinVertical(lipgloss.Left, mealField, HelpDescStyle.Render(hint))
	}
	fields = append(fields, mealField)

	fields = append(fields, renderFormField("Diet (optional)", m.inputs[fieldDiet], m.focusedField == fieldDiet))
	fields = append(fields, renderFormField("Notes (optional)", m.inputs[fieldNotes], m.focusedField == fieldNotes))
	fields = append(fields, renderFormField("Cooked On", m.inputs[fieldDate], m.focusedField == fieldDate))

	if m.error != "" {
		fields = append(fields, "")
		fields = append(fields, ErrorStyle.Render(m.error))
	}

	formContent := strings.Join(fields, "\n\n")

	content := PanelStyle.
		Width(width - 4).
		Height(height - 4).
		Render(formContent)

	return content
}

// renderValidatedField renders a required field with its suggestion dropdown
// and, after a failed save, its validation error.
func (m *MealFormModel) renderValidatedField(label string, idx int, errorText string, width int) string {
	invalid := m.invalidField(idx)

	style := BorderStyle
	if invalid {
		style = InvalidBorderStyle
	} else if m.focusedField == idx {
		style = ActiveBorderStyle
	}

	field := style.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		LabelStyle.Render(label),
		m.inputs[idx].View(),
	))

	if invalid {
		field = lipgloss.JoinVertical(lipgloss.Left, field, ErrorStyle.Render(errorText))
	}

	if m.focusedField == idx && m.showDropdown && len(m.suggestions) > 0 {
		field = lipgloss.JoinVertical(lipgloss.Left, field, m.renderDropdown(width-8))
	}

	return field
}

func (m *MealFormModel) renderDropdown(width int) string {
	var items []string

	for i, suggestion := range m.suggestions {
		style := NormalRowStyle
		if i == m.suggestCursor {
			style = SelectedRowStyle
		}

		availableWidth := width - 4
		line := style.Width(availableWidth).Render(util.TruncateString(suggestion, availableWidth))
		items = append(items, line)
	}

	help := HelpDescStyle.Render("↑/↓ move  enter/tab select  esc close")
	return BorderStyle.
		Width(width).
		Render(strings.Join(items, "\n") + "\n" + help)
}

func (m *MealFormModel) nextField() {
	m.inputs[m.focusedField].Blur()
	m.focusField((m.focusedField + 1) % len(m.inputs))
}

func (m *MealFormModel) prevField() {
	m.inputs[m.focusedField].Blur()
	idx := m.focusedField - 1
	if idx < 0 {
		idx = len(m.inputs) - 1
	}
	m.focusField(idx)
}

func (m *MealFormModel) focusField(idx int) {
	m.inputs[m.focusedField].Blur()
	m.focusedField = idx
	m.inputs[m.focusedField].Focus()
	m.showDropdown = false
	m.suggestions = nil
	m.suggestCursor = 0
}

func renderFormField(label string, input textinput.Model, focused bool) string {
	style := BorderStyle
	if focused {
		style = ActiveBorderStyle
	}

	field := lipgloss.JoinVertical(
		lipgloss.Left,
		LabelStyle.Render(label),
		input.View(),
	)

	return style.Render(field)
}
