package ui

import (
	"strings"

	"middag/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders context-sensitive help footer.
func RenderHelp(screen model.Screen, mode model.Mode, width int) string {
	if mode == model.ModeInsert {
		return renderFormHelp(width)
	}

	switch screen {
	case model.ScreenMeals:
		return renderMealsHelp(width)
	case model.ScreenGuests:
		return renderGuestsHelp(width)
	case model.ScreenMealDetail:
		return renderMealDetailHelp(width)
	default:
		return renderDefaultHelp(width)
	}
}

func renderMealsHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("f", "find"),
		helpKey("tab", "next col"),
		helpKey("s/S", "sort"),
		helpKey("n/N", "filter"),
		helpKey("a", "add meal"),
		helpKey("w", "guests"),
		helpKey("enter", "details"),
		helpKey("/", "jump col"),
	}
	return renderHelpLine(keys, width)
}

func renderGuestsHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("tab", "next col"),
		helpKey("s/S", "sort"),
		helpKey("n/N", "filter"),
		helpKey("a", "add meal"),
		helpKey("m", "meals"),
		helpKey("enter", "guest's meals"),
		helpKey("u/ctrl+r", "undo/redo"),
	}
	return renderHelpLine(keys, width)
}

func renderMealDetailHelp(width int) string {
	keys := []string{
		helpKey("h/esc", "back"),
		helpKey("e", "edit"),
		helpKey("d", "delete"),
	}
	return renderHelpLine(keys, width)
}

func renderFormHelp(width int) string {
	keys := []string{
		helpKey("tab", "next field"),
		helpKey("shift+tab", "prev field"),
		helpKey("↑/↓", "suggestions"),
		helpKey("ctrl+s", "save"),
		helpKey("esc", "cancel"),
	}
	return renderHelpLine(keys, width)
}

func renderDefaultHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("h/l", "back/select"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation (Nav Mode)"),
		helpSection([]helpItem{
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"h / ← / b", "Go back / parent"},
			{"l / → / enter", "Open / select"},
			{"tab / shift+tab", "Cycle active column"},
			{"/ then 1-9", "Jump to column"},
			{"s / S", "Sort active column asc/desc"},
			{"c / C", "Hide active column / show all"},
			{"n / N", "Filter by selected value / clear"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"ctrl+d", "Half page down"},
			{"ctrl+u", "Half page up"},
			{"u / ctrl+r", "Undo / redo"},
			{"esc", "Cancel / close"},
			{"q", "Quit (from top-level)"},
			{"?", "Toggle help"},
		}),
		titleSection("Meals Screen"),
		helpSection([]helpItem{
			{"a", "Add meal"},
			{"f", "Search by meal or guest"},
			{"w", "Go to guests"},
			{"enter / l", "Open meal detail"},
		}),
		titleSection("Guests Screen"),
		helpSection([]helpItem{
			{"a", "Add meal"},
			{"m", "Go to meals"},
			{"enter / l", "Show the guest's meals"},
			{"b / h", "Back to meals"},
		}),
		titleSection("Meal Form (Insert/Edit Mode)"),
		helpSection([]helpItem{
			{"tab", "Next field (or accept suggestion)"},
			{"shift+tab", "Previous field"},
			{"↑ / ↓", "Move through suggestions"},
			{"ctrl+s", "Save"},
			{"esc", "Close suggestions / cancel"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
