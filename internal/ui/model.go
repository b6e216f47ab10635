// Package ui implements the interactive terminal interface: a tree of
// templates to browse, a fill view with live preview, and an error view
// shown when the prompts file cannot be loaded.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/mwestlund/promptdeck/internal/clipboard"
	"github.com/mwestlund/promptdeck/internal/editor"
	"github.com/mwestlund/promptdeck/internal/models"
	"github.com/mwestlund/promptdeck/internal/service"
	"github.com/mwestlund/promptdeck/internal/template"
)

const (
	doubleClickInterval = 400 * time.Millisecond
	statusTimeout       = 4 * time.Second

	// listTop is the number of header lines above the first tree row,
	// used to map mouse clicks to items.
	listTop = 2
)

// ViewMode represents the current view in the TUI.
type ViewMode int

const (
	ViewLibrary ViewMode = iota
	ViewFill
	ViewError
)

type statusTimeoutMsg struct{}

// clearStatusCmd returns a command that clears the status message after a
// delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusTimeoutMsg{}
	})
}

type editorFinishedMsg struct {
	err error
}

// Model is the root bubbletea model.
type Model struct {
	svc      *service.Service
	viewMode ViewMode

	width  int
	height int

	// Library view state. items is the current display list: the full
	// tree, or a flat match list while filtering.
	items       []models.TreeItem
	cursor      int
	scroll      int
	filtering   bool
	filterInput textinput.Model

	// Fill view state, nil outside ViewFill.
	fill *fillState

	loadErr   error
	statusMsg string

	help        help.Model
	libraryKeys libraryKeyMap
	fillKeys    fillKeyMap

	glamourRenderer *glamour.TermRenderer
	markdownPreview bool

	lastClickIndex int
	lastClickTime  time.Time
}

// NewModel creates the root model and performs the initial load. A load
// failure starts the app in the error view; it clears once a reload
// succeeds.
func NewModel(svc *service.Service) Model {
	filter := textinput.New()
	filter.Placeholder = "type to filter templates"
	filter.Prompt = "/ "
	filter.CharLimit = 100

	m := Model{
		svc:            svc,
		viewMode:       ViewLibrary,
		filterInput:    filter,
		help:           help.New(),
		libraryKeys:    newLibraryKeyMap(),
		fillKeys:       newFillKeyMap(),
		lastClickIndex: -1,
	}
	if renderer, err := createGlamourRenderer(svc.MarkdownStyle(), 80); err == nil {
		m.glamourRenderer = renderer
	}

	if err := svc.Reload(); err != nil {
		m.viewMode = ViewError
		m.loadErr = err
	} else {
		m.items = svc.TreeItems()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if renderer, err := createGlamourRenderer(m.svc.MarkdownStyle(), msg.Width-6); err == nil {
			m.glamourRenderer = renderer
		}
		if m.fill != nil {
			m.fill.resize(m.inputWidth(), m.previewHeight())
			m.refreshPreview()
		}
		return m, nil

	case statusTimeoutMsg:
		m.statusMsg = ""
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			return m.setStatus("Editor failed: " + msg.err.Error())
		}
		return m.reload()

	case tea.MouseMsg:
		if m.viewMode == ViewLibrary {
			return m.updateLibraryMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.viewMode {
		case ViewFill:
			return m.updateFill(msg)
		case ViewError:
			return m.updateError(msg)
		default:
			return m.updateLibrary(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.viewMode {
	case ViewFill:
		return m.fillView()
	case ViewError:
		return m.errorView()
	default:
		return m.libraryView()
	}
}

// ── library view ─────────────────────────────────────────────────────────

func (m Model) updateLibrary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filterInput.SetValue("")
			m.filterInput.Blur()
			m.items = m.svc.TreeItems()
			m.cursor, m.scroll = 0, 0
			return m, nil
		case "enter":
			return m.openSelected()
		case "up":
			m.moveCursor(-1)
			return m, nil
		case "down":
			m.moveCursor(1)
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.items = m.svc.FilterItems(m.filterInput.Value())
		m.cursor, m.scroll = 0, 0
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.libraryKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.libraryKeys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.libraryKeys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.libraryKeys.Open):
		return m.openSelected()
	case key.Matches(msg, m.libraryKeys.Reload):
		return m.reload()
	case key.Matches(msg, m.libraryKeys.Edit):
		return m, m.openEditorCmd()
	case key.Matches(msg, m.libraryKeys.Filter):
		m.filtering = true
		return m, m.filterInput.Focus()
	}
	return m, nil
}

func (m Model) updateLibraryMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y < listTop {
		return m, nil
	}
	index := m.scroll + msg.Y - listTop
	if index >= len(m.items) {
		return m, nil
	}

	now := time.Now()
	isDouble := index == m.lastClickIndex && now.Sub(m.lastClickTime) <= doubleClickInterval
	m.lastClickIndex, m.lastClickTime = index, now
	m.cursor = index
	if isDouble {
		return m.openSelected()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if visible := m.visibleRows(); m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
}

// openSelected enters the fill view for the selected tree item. Folder
// rows have no template and are not openable.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return m, nil
	}
	item := m.items[m.cursor]
	if item.TemplateIndex == nil {
		return m, nil
	}
	tmpl, ok := m.svc.Template(*item.TemplateIndex)
	if !ok {
		return m, nil
	}

	m.fill = newFillState(*item.TemplateIndex, tmpl)
	m.fill.resize(m.inputWidth(), m.previewHeight())
	m.viewMode = ViewFill
	m.refreshPreview()
	return m, textinput.Blink
}

func (m Model) libraryView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("promptdeck"))
	b.WriteString("  ")
	b.WriteString(pathStyle.Render(m.svc.PromptsPath()))
	b.WriteByte('\n')
	if m.filtering {
		b.WriteString(m.filterInput.View())
	}
	b.WriteByte('\n')

	end := min(m.scroll+m.visibleRows(), len(m.items))
	for i := m.scroll; i < end; i++ {
		item := m.items[i]
		label := strings.Repeat("  ", item.Depth) + item.Label
		switch {
		case i == m.cursor:
			b.WriteString(selectedStyle.Render("> " + label))
		case item.TemplateIndex == nil:
			b.WriteString(folderStyle.Render("  " + label + "/"))
		default:
			b.WriteString(itemStyle.Render("  " + label))
		}
		b.WriteByte('\n')
	}
	if len(m.items) == 0 {
		b.WriteString(pathStyle.Render("  no matching templates"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg))
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.libraryKeys))
	return b.String()
}

// ── fill view ────────────────────────────────────────────────────────────

func (m Model) updateFill(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.fill
	switch {
	case key.Matches(msg, m.fillKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.fillKeys.Back):
		m.fill = nil
		m.viewMode = ViewLibrary
		return m, nil
	case key.Matches(msg, m.fillKeys.Next):
		f.focusField(f.focused + 1)
		return m, textinput.Blink
	case key.Matches(msg, m.fillKeys.Prev):
		f.focusField(f.focused - 1)
		return m, textinput.Blink
	case key.Matches(msg, m.fillKeys.Reroll):
		template.Reroll(f.tokens)
		m.refreshPreview()
		return m.setStatus("Rerolled random choices")
	case key.Matches(msg, m.fillKeys.Copy):
		if err := clipboard.Copy(template.Render(f.tokens, f.fields)); err != nil {
			return m.setStatus(err.Error())
		}
		return m.setStatus("Copied to clipboard!")
	case key.Matches(msg, m.fillKeys.Markdown):
		if m.glamourRenderer == nil {
			return m.setStatus("Markdown preview unavailable")
		}
		m.markdownPreview = !m.markdownPreview
		m.refreshPreview()
		return m, nil
	}

	var cmd tea.Cmd
	if f.focused >= 0 && f.focused < len(f.inputs) {
		f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
		f.syncFields()
		m.refreshPreview()
	}
	return m, cmd
}

func (m Model) fillView() string {
	f := m.fill
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.name))
	b.WriteString("\n\n")

	if len(f.fields) == 0 {
		b.WriteString(labelStyle.Render("This template has no fillable fields."))
		b.WriteByte('\n')
	}
	for i := range f.fields {
		if i == f.focused {
			b.WriteString(focusedLabelStyle.Render(f.fields[i].Label))
		} else {
			b.WriteString(labelStyle.Render(f.fields[i].Label))
		}
		b.WriteByte('\n')
		b.WriteString(f.inputs[i].View())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	previewTitle := "Preview"
	if m.markdownPreview {
		previewTitle = "Preview (markdown)"
	}
	b.WriteString(previewTitleStyle.Render(previewTitle))
	b.WriteByte('\n')
	b.WriteString(previewBorderStyle.Render(f.preview.View()))
	b.WriteString("\n\n")
	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg))
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.fillKeys))
	return b.String()
}

// refreshPreview re-renders the fill view's output pane from the current
// tokens and field values.
func (m *Model) refreshPreview() {
	if m.fill == nil {
		return
	}
	rendered := template.Render(m.fill.tokens, m.fill.fields)
	if m.markdownPreview && m.glamourRenderer != nil {
		if md, err := m.glamourRenderer.Render(rendered); err == nil {
			m.fill.preview.SetContent(md)
			return
		}
	}
	m.fill.preview.SetContent(rendered)
}

// ── error view ───────────────────────────────────────────────────────────

func (m Model) updateError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "e":
		return m, m.openEditorCmd()
	case "r":
		return m.reload()
	}
	return m, nil
}

func (m Model) errorView() string {
	var b strings.Builder
	b.WriteString(errorTitleStyle.Render("promptdeck: cannot load templates"))
	b.WriteString("\n\n")
	if m.loadErr != nil {
		b.WriteString(errorStyle.Render(m.loadErr.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(labelStyle.Render("e: edit the prompts file • r: reload • q: quit"))
	b.WriteByte('\n')
	return b.String()
}

// ── shared helpers ───────────────────────────────────────────────────────

func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusMsg = text
	return m, clearStatusCmd()
}

// reload re-reads the prompts file. In the error view a failure replaces
// the error text; elsewhere it becomes transient status so in-progress
// state is not lost.
func (m Model) reload() (tea.Model, tea.Cmd) {
	if err := m.svc.Reload(); err != nil {
		if m.viewMode == ViewError {
			m.loadErr = err
			return m, nil
		}
		return m.setStatus(err.Error())
	}
	m.viewMode = ViewLibrary
	m.loadErr = nil
	m.fill = nil
	m.filtering = false
	m.filterInput.SetValue("")
	m.filterInput.Blur()
	m.items = m.svc.TreeItems()
	m.cursor, m.scroll = 0, 0
	return m.setStatus("Reloaded")
}

// openEditorCmd suspends the TUI and runs the external editor on the
// prompts file; the finished message triggers a reload.
func (m Model) openEditorCmd() tea.Cmd {
	editorCmd, err := editor.Resolve(m.svc.EditorOverride())
	if err != nil {
		return func() tea.Msg { return editorFinishedMsg{err} }
	}
	cmd, err := editor.Command(editorCmd, m.svc.PromptsPath())
	if err != nil {
		return func() tea.Msg { return editorFinishedMsg{err} }
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err}
	})
}

func (m Model) visibleRows() int {
	if m.height == 0 {
		return 20
	}
	return max(m.height-listTop-3, 1)
}

func (m Model) inputWidth() int {
	if m.width == 0 {
		return 60
	}
	return min(m.width-4, 80)
}

func (m Model) previewHeight() int {
	if m.fill == nil || m.height == 0 {
		return 8
	}
	return max(m.height-len(m.fill.fields)*2-9, 3)
}
