package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Querulantenkind/rnm/internal/display"
	"github.com/Querulantenkind/rnm/internal/executor"
	"github.com/Querulantenkind/rnm/internal/undo"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if m.dialog != dialogNone {
			return m.updateDialog(msg)
		}

		switch m.focus {
		case focusFiles:
			return m.updateFilesPanel(msg)
		default:
			return m.updateInputField(msg)
		}
	}

	return m, nil
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.dialog {
	case dialogConfirm:
		switch msg.String() {
		case "y", "enter":
			m.dialog = dialogNone
			m.executeRename()
		case "n", "esc", "q":
			m.dialog = dialogNone
		}
	default:
		// Any key dismisses help/success/error dialogs.
		m.dialog = dialogNone
		m.message = ""
	}
	return m, nil
}

func (m Model) updateFilesPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case " ":
		m.toggleSelection()
	case "a":
		m.selectAll()

	case "m":
		m.cycleMode()
	case "s":
		m.cycleSort()

	case "u":
		m.undoLast()

	case "tab":
		m.focus = focusSearch
		m.searchInput.Focus()
	case "shift+tab":
		m.focus = focusReplace
		m.replInput.Focus()

	case "enter":
		if m.hasChanges() {
			m.dialog = dialogConfirm
		}

	case "?":
		m.dialog = dialogHelp
	}

	return m, nil
}

func (m Model) updateInputField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blurInputs()
		m.focus = focusFiles
		return m, nil

	case "tab":
		m.blurInputs()
		if m.focus == focusSearch {
			m.focus = focusReplace
			m.replInput.Focus()
		} else {
			m.focus = focusFiles
		}
		return m, nil

	case "shift+tab":
		m.blurInputs()
		if m.focus == focusReplace {
			m.focus = focusSearch
			m.searchInput.Focus()
		} else {
			m.focus = focusFiles
		}
		return m, nil

	case "enter":
		if m.hasChanges() {
			m.dialog = dialogConfirm
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusSearch {
		m.searchInput, cmd = m.searchInput.Update(msg)
	} else {
		m.replInput, cmd = m.replInput.Update(msg)
	}
	m.refreshPreviews()
	return m, cmd
}

func (m *Model) blurInputs() {
	m.searchInput.Blur()
	m.replInput.Blur()
}

func (m *Model) executeRename() {
	exec := executor.New(m.store)
	desc := display.DescribeMode(m.mode(), m.options())

	count, err := exec.Run(m.previews, m.dir, desc)
	if err != nil {
		m.dialog = dialogError
		m.message = err.Error()
		return
	}

	m.dialog = dialogSuccess
	m.message = fmt.Sprintf("%d file(s) renamed", count)

	if err := m.reload(); err == nil {
		m.searchInput.SetValue("")
		m.replInput.SetValue("")
		m.refreshPreviews()
	}
}

func (m *Model) undoLast() {
	count, dir, err := undo.New(m.store).UndoLast()
	if err != nil {
		if errors.Is(err, undo.ErrNothingToUndo) {
			m.dialog = dialogError
			m.message = "Nothing to undo."
			return
		}
		m.dialog = dialogError
		m.message = err.Error()
		return
	}

	m.dialog = dialogSuccess
	m.message = fmt.Sprintf("%d file(s) restored in %s", count, dir)

	if err := m.reload(); err == nil {
		m.refreshPreviews()
	}
}
