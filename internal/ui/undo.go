package ui

import (
	"fmt"

	"middag/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

type undoAction struct {
	label string
	undo  func() error
	redo  func() error
}

type undoAppliedMsg struct {
	err       error
	action    undoAction
	direction string // undo, redo
}

func (m *Model) pushUndoAction(action undoAction) {
	m.undoStack = append(m.undoStack, action)
	m.redoStack = nil
}

func (m *Model) undoCmd() tea.Cmd {
	if len(m.undoStack) == 0 {
		return nil
	}
	action := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	return func() tea.Msg {
		err := action.undo()
		return undoAppliedMsg{err: err, action: action, direction: "undo"}
	}
}

func (m *Model) redoCmd() tea.Cmd {
	if len(m.redoStack) == 0 {
		return nil
	}
	action := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	return func() tea.Msg {
		err := action.redo()
		return undoAppliedMsg{err: err, action: action, direction: "redo"}
	}
}

// buildMealSaveAction turns a save into an undoable action. Meal ids are
// generated client-side, so undoing a delete or redoing an insert restores
// the exact same record.
func (m *Model) buildMealSaveAction(msg model.MealSavedMsg) *undoAction {
	switch msg.Operation {
	case "insert":
		after := msg.After
		return &undoAction{
			label: "meal saved",
			undo: func() error {
				return m.store.Delete(after.ID)
			},
			redo: func() error {
				return m.store.Insert(after)
			},
		}
	case "update":
		if msg.Before == nil {
			return nil
		}
		before := *msg.Before
		after := msg.After
		return &undoAction{
			label: "meal updated",
			undo: func() error {
				return m.store.Update(before)
			},
			redo: func() error {
				return m.store.Update(after)
			},
		}
	default:
		return nil
	}
}

func (m *Model) buildDeleteMealAction(msg model.DeleteMealMsg) undoAction {
	deleted := msg.Deleted
	return undoAction{
		label: "meal deleted",
		undo: func() error {
			return m.store.Insert(deleted)
		},
		redo: func() error {
			return m.store.Delete(deleted.ID)
		},
	}
}

func (m *Model) applyUndoResult(msg undoAppliedMsg) tea.Cmd {
	if msg.err != nil {
		m.error = fmt.Sprintf("Failed to %s: %v", msg.direction, msg.err)
		return nil
	}

	if msg.direction == "undo" {
		m.redoStack = append(m.redoStack, msg.action)
		m.info = fmt.Sprintf("Undid: %s", msg.action.label)
	} else {
		m.undoStack = append(m.undoStack, msg.action)
		m.info = fmt.Sprintf("Redid: %s", msg.action.label)
	}

	return tea.Batch(
		loadMealsCmd(m.store, m.searchQuery),
		loadGuestsCmd(m.store),
	)
}
