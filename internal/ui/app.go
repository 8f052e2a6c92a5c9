package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"middag/internal/db"
	"middag/internal/meal"
	"middag/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the root Bubble Tea model.
type Model struct {
	store  *db.Store
	screen model.Screen
	mode   model.Mode
	gState GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool
	columnJump  bool

	// Live text search over guest and meal name
	searching   bool
	searchInput textinput.Model
	searchQuery string

	// Delete confirmation
	pendingDelete *model.Meal

	// Screen models
	meals      *MealsModel
	guests     *GuestsModel
	mealDetail *MealDetailModel
	mealForm   *MealFormModel

	keys      KeyMap
	formKeys  FormKeyMap
	prefs     UIPreferences
	undoStack []undoAction
	redoStack []undoAction
}

// New creates a new root model.
func New(store *db.Store) Model {
	search := textinput.New()
	search.Placeholder = "Search meal or guest..."
	search.Prompt = "find> "
	search.CharLimit = 100

	return Model{
		store:       store,
		screen:      model.ScreenMeals,
		mode:        model.ModeNav,
		gState:      GStateIdle,
		searchInput: search,
		keys:        DefaultKeyMap(),
		formKeys:    DefaultFormKeyMap(),
		prefs:       loadUIPreferences(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return loadMealsCmd(m.store, "")
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Delete confirmation swallows everything until answered
		if m.pendingDelete != nil {
			return m.handleDeleteConfirm(msg)
		}

		if m.searching {
			return m.handleSearchInput(msg)
		}

		if m.mode == model.ModeNav && m.columnJump {
			switch msg.String() {
			case "esc":
				m.columnJump = false
				m.info = ""
				return m, nil
			}
			if n, err := strconv.Atoi(msg.String()); err == nil {
				table := m.currentTable()
				if table != nil && table.JumpToColumn(n) {
					m.columnJump = false
					m.info = fmt.Sprintf("Jumped to column %d", n)
					m.persistCurrentTablePrefs()
					return m, nil
				}
				m.info = fmt.Sprintf("Column %d unavailable", n)
				return m, nil
			}
			m.columnJump = false
			m.info = ""
			return m, nil
		}

		// Handle help toggle
		if msg.String() == "?" && m.mode == model.ModeNav {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if msg.String() == "esc" || msg.String() == "?" {
				m.showingHelp = false
			}
			return m, nil
		}

		// Route to mode-specific handlers
		if m.mode == model.ModeNav {
			return m.handleNavMode(msg)
		}
		return m.handleInsertMode(msg)

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil

	case model.MealsLoadedMsg:
		m.meals = NewMealsModel(msg.Meals)
		m.meals.ApplyPrefs(m.prefs.Meals)
		m.error = ""
		return m, nil

	case model.GuestsLoadedMsg:
		m.guests = NewGuestsModel(msg.Guests)
		m.guests.ApplyPrefs(m.prefs.Guests)
		m.error = ""
		return m, nil

	case model.MealDetailLoadedMsg:
		m.mealDetail = NewMealDetailModel(msg.Meal)
		m.screen = model.ScreenMealDetail
		m.error = ""
		return m, nil

	case model.MealSavedMsg:
		if action := m.buildMealSaveAction(msg); action != nil {
			m.pushUndoAction(*action)
		}
		m.mode = model.ModeNav
		m.screen = model.ScreenMeals
		m.mealForm = nil
		m.info = "Meal saved"
		return m, tea.Batch(
			loadMealsCmd(m.store, m.searchQuery),
			loadGuestsCmd(m.store),
		)

	case model.DeleteMealMsg:
		if msg.Deleted.ID != "" {
			m.pushUndoAction(m.buildDeleteMealAction(msg))
		}
		m.screen = model.ScreenMeals
		m.mealDetail = nil
		m.info = "Meal deleted (u to undo)"
		return m, tea.Batch(
			loadMealsCmd(m.store, m.searchQuery),
			loadGuestsCmd(m.store),
		)

	case model.FormCancelledMsg:
		m.mode = model.ModeNav
		m.mealForm = nil
		if m.screen == model.ScreenMealForm {
			m.screen = model.ScreenMeals
		}
		return m, nil

	case undoAppliedMsg:
		return m, m.applyUndoResult(msg)

	default:
		// Pass all other messages to forms
		if m.mode == model.ModeInsert {
			return m.handleInsertMode(msg)
		}
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	var content string
	var breadcrumbParts []string

	showTabs := m.screen == model.ScreenMeals || m.screen == model.ScreenGuests

	// Header: 1 line, Footer: 1 line, Tabs: 2 lines (if shown)
	contentHeight := m.height - 4
	if showTabs {
		contentHeight -= 2
	}
	if m.searching {
		contentHeight--
	}

	switch m.screen {
	case model.ScreenMeals:
		breadcrumbParts = []string{"Meals"}
		if m.meals != nil {
			content = m.meals.View(m.width, contentHeight, m.searchQuery)
		}
	case model.ScreenGuests:
		breadcrumbParts = []string{"Guests"}
		if m.guests != nil {
			content = m.guests.View(m.width, contentHeight)
		}
	case model.ScreenMealDetail:
		breadcrumbParts = []string{"Meals", "Detail"}
		if m.mealDetail != nil {
			breadcrumbParts = []string{"Meals", m.mealDetail.meal.Name}
			content = m.mealDetail.View(m.width, contentHeight)
		}
	case model.ScreenMealForm:
		breadcrumbParts = []string{"Meals", "Form"}
		if m.mealForm != nil {
			breadcrumbParts = []string{"Meals", m.mealForm.mode.Title()}
			content = m.mealForm.View(m.width, contentHeight)
		}
	}

	header := renderHeader(breadcrumbParts, m.width)
	footer := RenderHelp(m.screen, m.mode, m.width)

	contentStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight)
	content = contentStyle.Render(content)

	var parts []string
	parts = append(parts, header)
	if showTabs {
		parts = append(parts, renderTabs(m.screen, m.width))
	}
	if m.searching {
		parts = append(parts, StatusBarStyle.Width(m.width).Render(m.searchInput.View()))
	}
	if m.pendingDelete != nil {
		prompt := fmt.Sprintf("Delete %q for %s? (y/n)", m.pendingDelete.Name, m.pendingDelete.Guest)
		parts = append(parts, WarnStyle.Width(m.width).Render(prompt))
	} else {
		if m.error != "" {
			parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.error))
		}
		if m.info != "" {
			parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
		}
	}
	parts = append(parts, content, footer)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderTabs(screen model.Screen, width int) string {
	tabs := []struct {
		name   string
		screen model.Screen
	}{
		{"Meals", model.ScreenMeals},
		{"Guests", model.ScreenGuests},
	}

	var tabStrings []string
	for _, tab := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(tab.name))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func renderHeader(breadcrumbParts []string, width int) string {
	title := HeaderStyle.Render("middag")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	now := time.Now()
	right := BreadcrumbStyle.Render(now.Format("Mon 02 Jan")) + "  "

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := width - leftLen - rightLen
	if padding < 0 {
		padding = 0
	}

	headerContent := left + strings.Repeat(" ", padding) + right
	return TitleStyle.Width(width).Render(headerContent)
}

func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	target := *m.pendingDelete
	m.pendingDelete = nil
	switch msg.String() {
	case "y", "Y":
		return m, deleteMealCmd(m.store, target.ID)
	default:
		m.info = "Delete cancelled"
		return m, nil
	}
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchQuery = strings.TrimSpace(m.searchInput.Value())
		return m, loadMealsCmd(m.store, m.searchQuery)
	case "esc":
		m.searching = false
		m.searchQuery = ""
		m.searchInput.SetValue("")
		return m, loadMealsCmd(m.store, "")
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t := m.currentTable(); t != nil {
		switch msg.String() {
		case "tab":
			t.NextColumn()
			m.persistCurrentTablePrefs()
			return m, nil
		case "shift+tab":
			t.PrevColumn()
			m.persistCurrentTablePrefs()
			return m, nil
		case "/":
			m.columnJump = true
			m.info = "Jump to column: press 1-9 (esc to cancel)"
			return m, nil
		case "s":
			t.SortActiveColumn(false)
			m.info = "Sorted ascending"
			m.persistCurrentTablePrefs()
			return m, nil
		case "S":
			t.SortActiveColumn(true)
			m.info = "Sorted descending"
			m.persistCurrentTablePrefs()
			return m, nil
		case "c":
			if t.HideActiveColumn() {
				m.info = "Column hidden"
				m.persistCurrentTablePrefs()
			} else {
				m.info = "Cannot hide last visible column"
			}
			return m, nil
		case "C":
			t.ShowAllColumns()
			m.info = "All columns shown"
			m.persistCurrentTablePrefs()
			return m, nil
		case "n":
			if t.FilterBySelectedValue() {
				m.info = "Filter applied from selected value"
				m.persistCurrentTablePrefs()
			} else {
				m.info = "No filterable value in selected cell"
			}
			return m, nil
		case "N":
			if t.ClearFilter() {
				m.info = "Filter cleared"
				m.persistCurrentTablePrefs()
			}
			return m, nil
		}
	}

	switch msg.String() {
	case "u":
		if len(m.undoStack) == 0 {
			m.info = "Nothing to undo"
			return m, nil
		}
		return m, m.undoCmd()
	case "ctrl+r":
		if len(m.redoStack) == 0 {
			m.info = "Nothing to redo"
			return m, nil
		}
		return m, m.redoCmd()
	}

	// Handle "gg" state machine
	if msg.String() == "g" {
		if m.gState == GStateIdle {
			m.gState = GStateFirstG
			return m, nil
		} else if m.gState == GStateFirstG {
			m.gState = GStateIdle
			return m.handleJumpToTop()
		}
	} else {
		if m.gState == GStateFirstG {
			m.gState = GStateIdle
		}
	}

	// Screen-specific navigation
	switch m.screen {
	case model.ScreenMeals:
		return m.handleMealsNav(msg)
	case model.ScreenGuests:
		return m.handleGuestsNav(msg)
	case model.ScreenMealDetail:
		return m.handleMealDetailNav(msg)
	}

	return m, nil
}

func (m *Model) currentTable() tableController {
	switch m.screen {
	case model.ScreenMeals:
		if m.meals != nil {
			return m.meals
		}
	case model.ScreenGuests:
		if m.guests != nil {
			return m.guests
		}
	}
	return nil
}

func (m *Model) persistCurrentTablePrefs() {
	switch m.screen {
	case model.ScreenMeals:
		if m.meals != nil {
			m.prefs.Meals = m.meals.Prefs()
		}
	case model.ScreenGuests:
		if m.guests != nil {
			m.prefs.Guests = m.guests.Prefs()
		}
	}
	_ = saveUIPreferences(m.prefs)
}

// handleInsertMode handles insert/edit mode input.
func (m Model) handleInsertMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.screen == model.ScreenMealForm && m.mealForm != nil {
		newForm, cmd := m.mealForm.Update(msg)
		m.mealForm = &newForm
		return m, cmd
	}
	return m, nil
}

func (m Model) handleJumpToTop() (tea.Model, tea.Cmd) {
	if m.meals != nil && m.screen == model.ScreenMeals {
		m.meals.JumpToTop()
	}
	if m.guests != nil && m.screen == model.ScreenGuests {
		m.guests.JumpToTop()
	}
	return m, nil
}

// Navigation handlers for each screen
func (m Model) handleMealsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.meals == nil {
		return m, nil
	}

	switch {
	case msg.String() == "q":
		return m, tea.Quit
	case msg.String() == "left" || msg.String() == "right" || msg.String() == "w":
		m.screen = model.ScreenGuests
		if m.guests == nil {
			return m, loadGuestsCmd(m.store)
		}
		return m, nil
	case msg.String() == "f":
		m.searching = true
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.Focus()
		m.info = ""
		return m, nil
	case msg.String() == "a":
		m.mode = model.ModeInsert
		m.screen = model.ScreenMealForm
		m.mealForm = NewMealFormModel(m.store, model.AddMode())
		return m, nil
	case msg.String() == "e":
		if selected := m.meals.SelectedMeal(); selected != nil {
			m.mode = model.ModeInsert
			m.screen = model.ScreenMealForm
			m.mealForm = NewMealFormModel(m.store, model.EditMode(*selected))
		}
		return m, nil
	case msg.String() == "d":
		if selected := m.meals.SelectedMeal(); selected != nil {
			target := *selected
			m.pendingDelete = &target
		}
		return m, nil
	case msg.String() == "enter" || msg.String() == "l":
		if selected := m.meals.SelectedMeal(); selected != nil {
			return m, loadMealDetailCmd(m.store, selected.ID)
		}
		return m, nil
	case msg.String() == "j" || msg.String() == "down":
		m.meals.MoveDown()
		return m, nil
	case msg.String() == "k" || msg.String() == "up":
		m.meals.MoveUp()
		return m, nil
	case msg.String() == "G":
		m.meals.JumpToBottom()
		return m, nil
	case msg.String() == "ctrl+d":
		m.meals.HalfPageDown(m.height / 2)
		return m, nil
	case msg.String() == "ctrl+u":
		m.meals.HalfPageUp(m.height / 2)
		return m, nil
	}

	return m, nil
}

func (m Model) handleGuestsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.guests == nil {
		return m, nil
	}

	switch {
	case msg.String() == "q":
		return m, tea.Quit
	case msg.String() == "left" || msg.String() == "right" || msg.String() == "m" ||
		msg.String() == "h" || msg.String() == "b":
		m.screen = model.ScreenMeals
		return m, nil
	case msg.String() == "a":
		m.mode = model.ModeInsert
		m.screen = model.ScreenMealForm
		m.mealForm = NewMealFormModel(m.store, model.AddMode())
		return m, nil
	case msg.String() == "enter" || msg.String() == "l":
		if selected := m.guests.SelectedGuest(); selected != nil {
			// Jump to the meals screen filtered to this guest
			m.screen = model.ScreenMeals
			m.searchQuery = selected.Guest
			m.searchInput.SetValue(selected.Guest)
			m.info = fmt.Sprintf("Showing meals for %s (esc f to clear)", selected.Guest)
			return m, loadMealsCmd(m.store, selected.Guest)
		}
		return m, nil
	case msg.String() == "j" || msg.String() == "down":
		m.guests.MoveDown()
		return m, nil
	case msg.String() == "k" || msg.String() == "up":
		m.guests.MoveUp()
		return m, nil
	case msg.String() == "G":
		m.guests.JumpToBottom()
		return m, nil
	case msg.String() == "ctrl+d":
		m.guests.HalfPageDown(m.height / 2)
		return m, nil
	case msg.String() == "ctrl+u":
		m.guests.HalfPageUp(m.height / 2)
		return m, nil
	}

	return m, nil
}

func (m Model) handleMealDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "h" || msg.String() == "esc" || msg.String() == "b":
		m.screen = model.ScreenMeals
		m.mealDetail = nil
		return m, nil
	case msg.String() == "e":
		if m.mealDetail != nil {
			m.mode = model.ModeInsert
			m.screen = model.ScreenMealForm
			m.mealForm = NewMealFormModel(m.store, model.EditMode(m.mealDetail.meal))
			return m, nil
		}
		return m, nil
	case msg.String() == "d":
		if m.mealDetail != nil {
			target := m.mealDetail.meal
			m.pendingDelete = &target
			return m, nil
		}
		return m, nil
	}
	return m, nil
}

// Commands

func loadMealsCmd(store *db.Store, filter string) tea.Cmd {
	return func() tea.Msg {
		meals, err := store.ListMeals(filter)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.MealsLoadedMsg{Meals: meals}
	}
}

func loadGuestsCmd(store *db.Store) tea.Cmd {
	return func() tea.Msg {
		guests, err := store.ListGuests()
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.GuestsLoadedMsg{Guests: guests}
	}
}

func loadMealDetailCmd(store *db.Store, id string) tea.Cmd {
	return func() tea.Msg {
		loaded, err := store.GetMeal(id)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load meal: %w", err)}
		}
		return model.MealDetailLoadedMsg{Meal: loaded}
	}
}

func deleteMealCmd(store *db.Store, id string) tea.Cmd {
	return func() tea.Msg {
		deleted, err := store.GetMeal(id)
		if err != nil {
			// Already gone; the list reload will reflect it.
			return model.DeleteMealMsg{ID: id}
		}

		if err := meal.Delete(store, id); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.DeleteMealMsg{ID: id, Deleted: deleted}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
