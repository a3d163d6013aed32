package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Querulantenkind/rnm/internal/preview"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 1)
	focusedStyle  = panelStyle.BorderForeground(lipgloss.Color("14"))
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	markerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dirStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	oldNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	newNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	modeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const (
	filePanelRows    = 12
	previewPanelRows = 8
)

func (m Model) View() string {
	if m.width == 0 {
		m.width = 80
	}

	var b strings.Builder

	b.WriteString(m.viewFiles())
	b.WriteString("\n")
	b.WriteString(m.viewOperation())
	b.WriteString("\n")
	b.WriteString(m.viewPreview())
	b.WriteString("\n")
	b.WriteString(m.viewHelpBar())

	switch m.dialog {
	case dialogConfirm:
		return b.String() + "\n" + m.viewConfirm()
	case dialogHelp:
		return b.String() + "\n" + viewHelp()
	case dialogSuccess:
		return b.String() + "\n" + successStyle.Render(m.message)
	case dialogError:
		return b.String() + "\n" + errorStyle.Render(m.message)
	}

	return b.String()
}

func (m Model) viewFiles() string {
	title := titleStyle.Render(fmt.Sprintf("Files (%s) [%s]", m.dir, m.sortOrder))

	start := 0
	if m.cursor >= filePanelRows {
		start = m.cursor - filePanelRows + 1
	}
	end := min(start+filePanelRows, len(m.files))

	var rows []string
	for i := start; i < end; i++ {
		f := m.files[i]

		marker := " "
		if _, ok := m.selected[i]; ok {
			marker = markerStyle.Render("*")
		}

		name := runewidth.Truncate(f.Name, max(20, m.width-10), "…")
		if f.IsDir {
			name = dirStyle.Render(name + "/")
		}

		line := fmt.Sprintf("%s %s", marker, name)
		if i == m.cursor && m.focus == focusFiles {
			line = cursorStyle.Render(line)
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		rows = append(rows, dimStyle.Render("(no files)"))
	}

	style := panelStyle
	if m.focus == focusFiles {
		style = focusedStyle
	}
	return title + "\n" + style.Width(m.width-2).Render(strings.Join(rows, "\n"))
}

func (m Model) viewOperation() string {
	mode := modeStyle.Render(m.mode().DisplayName())

	search := m.searchInput.View()
	repl := m.replInput.View()

	var style lipgloss.Style
	switch m.focus {
	case focusSearch, focusReplace:
		style = focusedStyle
	default:
		style = panelStyle
	}

	content := fmt.Sprintf("Mode: %s\nSearch:  %s\nReplace: %s", mode, search, repl)
	return style.Width(m.width - 2).Render(content)
}

func (m Model) viewPreview() string {
	title := titleStyle.Render(fmt.Sprintf("Preview - %s", m.statusLine()))

	if m.previewErr != "" {
		return title + "\n" + panelStyle.Width(m.width-2).Render(errorStyle.Render(m.previewErr))
	}

	total := preview.Changes(m.previews)
	var rows []string
	shown := 0
	for _, p := range m.previews {
		if shown >= previewPanelRows {
			rows = append(rows, dimStyle.Render(fmt.Sprintf("… %d more", total-shown)))
			break
		}
		if !p.WillChange {
			continue
		}
		rows = append(rows, fmt.Sprintf("%s %s %s",
			oldNameStyle.Render(p.OriginalName),
			dimStyle.Render("->"),
			newNameStyle.Render(p.NewName)))
		shown++
	}
	if len(rows) == 0 {
		rows = append(rows, dimStyle.Render("(no changes)"))
	}

	return title + "\n" + panelStyle.Width(m.width-2).Render(strings.Join(rows, "\n"))
}

func (m Model) viewHelpBar() string {
	keys := []struct{ key, desc string }{
		{"j/k", "move"}, {"space", "select"}, {"a", "all"},
		{"m", "mode"}, {"s", "sort"}, {"tab", "input"},
		{"enter", "rename"}, {"u", "undo"}, {"?", "help"}, {"q", "quit"},
	}

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = helpKeyStyle.Render(k.key) + helpDescStyle.Render(":"+k.desc)
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewConfirm() string {
	n := preview.Changes(m.previews)
	return panelStyle.Render(fmt.Sprintf("Rename %d file(s)? %s / %s",
		n, helpKeyStyle.Render("y"), helpKeyStyle.Render("n")))
}

func viewHelp() string {
	lines := []string{
		"j/k, up/down   move cursor",
		"space          toggle selection (empty selection = all files)",
		"a              select/deselect all",
		"m              cycle rename mode",
		"s              cycle sort order",
		"tab/shift+tab  switch panel",
		"enter          confirm and rename",
		"u              undo last rename",
		"q, ctrl+c      quit",
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}
