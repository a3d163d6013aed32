// Package tui implements the interactive terminal frontend. It owns
// no rename logic: every keystroke that changes parameters calls the
// preview generator, submission calls the executor and the undo key
// calls the undo engine.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Querulantenkind/rnm/internal/config"
	"github.com/Querulantenkind/rnm/internal/history"
	"github.com/Querulantenkind/rnm/internal/preview"
	"github.com/Querulantenkind/rnm/internal/scanner"
	"github.com/Querulantenkind/rnm/pkg/types"
)

type focusedPanel int

const (
	focusFiles focusedPanel = iota
	focusSearch
	focusReplace
)

type dialogState int

const (
	dialogNone dialogState = iota
	dialogConfirm
	dialogHelp
	dialogSuccess
	dialogError
)

// Model is the bubbletea model for the interactive renamer.
type Model struct {
	dir     string
	pattern string

	files    []types.FileEntry
	cursor   int
	selected map[int]struct{}

	modeIdx   int
	sortOrder types.SortOrder

	focus       focusedPanel
	searchInput textinput.Model
	replInput   textinput.Model

	previews   []types.RenamePreview
	previewErr string

	dialog  dialogState
	message string

	store *history.Store

	width  int
	height int
}

// NewModel builds the initial model by scanning dir once.
func NewModel(dir, pattern string, cfg *config.Config) (Model, error) {
	m := Model{
		dir:       dir,
		pattern:   pattern,
		selected:  make(map[int]struct{}),
		sortOrder: cfg.DefaultSort,
		store:     history.NewStore(),
	}

	for i, mode := range types.AllModes {
		if mode == cfg.DefaultMode {
			m.modeIdx = i
		}
	}

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "search"
	m.searchInput.CharLimit = 256
	m.replInput = textinput.New()
	m.replInput.Placeholder = "replace"
	m.replInput.CharLimit = 256

	if err := m.reload(); err != nil {
		return Model{}, err
	}
	m.refreshPreviews()

	return m, nil
}

// Run starts the interactive UI and blocks until the user quits.
func Run(dir, pattern string, cfg *config.Config) error {
	m, err := NewModel(dir, pattern, cfg)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) mode() types.RenameMode {
	return types.AllModes[m.modeIdx]
}

func (m *Model) options() types.Options {
	opts := types.DefaultOptions()
	opts.Search = m.searchInput.Value()
	opts.Replace = m.replInput.Value()
	return opts
}

// reload rescans the directory, dropping cursor and selection state
// that no longer applies.
func (m *Model) reload() error {
	files, err := scanner.New(m.pattern, m.sortOrder).Scan(m.dir)
	if err != nil {
		return err
	}
	m.files = files
	m.selected = make(map[int]struct{})
	if m.cursor >= len(files) {
		m.cursor = 0
	}
	return nil
}

// refreshPreviews regenerates previews from the current inputs. A
// pattern error is shown in the preview pane instead of aborting.
func (m *Model) refreshPreviews() {
	previews, err := preview.Generate(m.files, m.selected, m.mode(), m.options())
	if err != nil {
		m.previews = nil
		m.previewErr = err.Error()
		return
	}
	m.previews = previews
	m.previewErr = ""
}

func (m *Model) hasChanges() bool {
	return preview.Changes(m.previews) > 0
}

func (m *Model) cycleMode() {
	m.modeIdx = (m.modeIdx + 1) % len(types.AllModes)
	m.refreshPreviews()
}

func (m *Model) cycleSort() {
	switch m.sortOrder {
	case types.SortByName:
		m.sortOrder = types.SortBySize
	case types.SortBySize:
		m.sortOrder = types.SortByModified
	default:
		m.sortOrder = types.SortByName
	}
	scanner.Sort(m.files, m.sortOrder)
	m.selected = make(map[int]struct{})
	m.refreshPreviews()
}

func (m *Model) toggleSelection() {
	if len(m.files) == 0 {
		return
	}
	if _, ok := m.selected[m.cursor]; ok {
		delete(m.selected, m.cursor)
	} else {
		m.selected[m.cursor] = struct{}{}
	}
	m.refreshPreviews()
}

func (m *Model) selectAll() {
	if len(m.selected) == len(m.files) {
		m.selected = make(map[int]struct{})
	} else {
		for i := range m.files {
			m.selected[i] = struct{}{}
		}
	}
	m.refreshPreviews()
}

func (m *Model) statusLine() string {
	return fmt.Sprintf("%d files, %d selected, %d changes",
		len(m.files), len(m.selected), preview.Changes(m.previews))
}
