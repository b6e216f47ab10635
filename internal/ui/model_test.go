package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwestlund/promptdeck/internal/service"
)

const testPrompts = `## Writing/Email
Dear {name|recipient}, about {topic}.

## Writing/Summary
Summarize {text}.

## Standalone
Ship it {random|"today" "tomorrow"}.
`

// newTestModel builds a model over a temp library containing prompts.
func newTestModel(t *testing.T, prompts string) Model {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PROMPTDECK_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prompts.md"), []byte(prompts), 0644))
	svc, err := service.NewService()
	require.NoError(t, err)
	return NewModel(svc)
}

func pressKey(m Model, key tea.KeyMsg) Model {
	updated, _ := m.Update(key)
	return updated.(Model)
}

func pressRunes(m Model, s string) Model {
	for _, r := range s {
		m = pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNewModelStartsInLibraryView(t *testing.T) {
	m := newTestModel(t, testPrompts)
	assert.Equal(t, ViewLibrary, m.viewMode)
	require.Len(t, m.items, 4)

	view := m.View()
	assert.Contains(t, view, "promptdeck")
	assert.Contains(t, view, "Writing/")
	assert.Contains(t, view, "Email")
	assert.Contains(t, view, "Standalone")
}

func TestEnterOnFolderDoesNothing(t *testing.T) {
	m := newTestModel(t, testPrompts)
	require.Nil(t, m.items[0].TemplateIndex, "first row is the Writing folder")

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewLibrary, m.viewMode)
	assert.Nil(t, m.fill)
}

func TestOpenTemplateAndFill(t *testing.T) {
	m := newTestModel(t, testPrompts)
	m = pressRunes(m, "j") // onto Email
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, ViewFill, m.viewMode)
	require.NotNil(t, m.fill)
	assert.Equal(t, "Writing/Email", m.fill.name)
	require.Len(t, m.fill.fields, 2)
	assert.Equal(t, "name (recipient)", m.fill.fields[0].Label)
	assert.Equal(t, "topic", m.fill.fields[1].Label)
	assert.Equal(t, 0, m.fill.focused)

	m = pressRunes(m, "Ada")
	assert.Equal(t, "Ada", m.fill.fields[0].Value)
	assert.Contains(t, m.View(), "Dear Ada, about {topic}.")

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.fill.focused)
	m = pressRunes(m, "lunch")
	assert.Contains(t, m.View(), "Dear Ada, about lunch.")
}

func TestFocusWrapsAround(t *testing.T) {
	m := newTestModel(t, testPrompts)
	m = pressRunes(m, "j")
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.fill.inputs, 2)

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.fill.focused)
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.fill.focused)
}

func TestEscLeavesFillView(t *testing.T) {
	m := newTestModel(t, testPrompts)
	m = pressRunes(m, "j")
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewFill, m.viewMode)

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewLibrary, m.viewMode)
	assert.Nil(t, m.fill)
}

func TestRerollKeepsChoiceWithinOptions(t *testing.T) {
	m := newTestModel(t, testPrompts)
	m = pressRunes(m, "jjj") // Email, Summary, Standalone
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewFill, m.viewMode)

	for i := 0; i < 20; i++ {
		m = pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlR})
		view := m.View()
		shipped := strings.Contains(view, "Ship it today.") || strings.Contains(view, "Ship it tomorrow.")
		assert.True(t, shipped, "preview must show one of the options")
	}
	assert.Equal(t, "Rerolled random choices", m.statusMsg)
}

func TestFilterNarrowsAndEscRestores(t *testing.T) {
	m := newTestModel(t, testPrompts)
	m = pressRunes(m, "/")
	assert.True(t, m.filtering)

	m = pressRunes(m, "summ")
	require.Len(t, m.items, 1)
	assert.Equal(t, "Writing/Summary", m.items[0].Label)

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewFill, m.viewMode)
	assert.Equal(t, "Writing/Summary", m.fill.name)

	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.filtering)
	assert.Len(t, m.items, 4)
}

func TestFilterNoMatches(t *testing.T) {
	m := newTestModel(t, testPrompts)
	m = pressRunes(m, "/")
	m = pressRunes(m, "zzzz")
	assert.Empty(t, m.items)
	assert.Contains(t, m.View(), "no matching templates")

	// Enter on an empty list is a no-op.
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewLibrary, m.viewMode)
}

func TestCursorClampsAtEnds(t *testing.T) {
	m := newTestModel(t, testPrompts)
	m = pressRunes(m, "k")
	assert.Equal(t, 0, m.cursor)

	m = pressRunes(m, "jjjjjjjjjj")
	assert.Equal(t, len(m.items)-1, m.cursor)
}

func TestWindowResizePropagatesToFill(t *testing.T) {
	m := newTestModel(t, testPrompts)
	m = pressRunes(m, "j")
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 80, m.fill.inputs[0].Width, "input width caps at 80")
	assert.Equal(t, m.previewHeight(), m.fill.preview.Height)
}

func TestDoubleClickOpensTemplate(t *testing.T) {
	m := newTestModel(t, testPrompts)
	click := tea.MouseMsg{
		Y:      listTop + 1, // Email row
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}

	updated, _ := m.Update(click)
	m = updated.(Model)
	assert.Equal(t, ViewLibrary, m.viewMode, "single click only selects")
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(click)
	m = updated.(Model)
	require.Equal(t, ViewFill, m.viewMode)
	assert.Equal(t, "Writing/Email", m.fill.name)
}

func TestClickAboveListIsIgnored(t *testing.T) {
	m := newTestModel(t, testPrompts)
	updated, _ := m.Update(tea.MouseMsg{
		Y:      0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestStatusClearsOnTimeout(t *testing.T) {
	m := newTestModel(t, testPrompts)
	m = pressRunes(m, "r") // reload sets "Reloaded"
	assert.Equal(t, "Reloaded", m.statusMsg)

	updated, _ := m.Update(statusTimeoutMsg{})
	m = updated.(Model)
	assert.Empty(t, m.statusMsg)
}

func TestLoadFailureShowsErrorView(t *testing.T) {
	m := newTestModel(t, "no headings in this file\n")
	require.Equal(t, ViewError, m.viewMode)
	view := m.View()
	assert.Contains(t, view, "cannot load templates")
	assert.Contains(t, view, "no templates found")
}

func TestErrorViewRecoversAfterFix(t *testing.T) {
	m := newTestModel(t, "broken\n")
	require.Equal(t, ViewError, m.viewMode)

	path := m.svc.PromptsPath()
	require.NoError(t, os.WriteFile(path, []byte("## Fixed\nbody\n"), 0644))

	m = pressRunes(m, "r")
	assert.Equal(t, ViewLibrary, m.viewMode)
	assert.Nil(t, m.loadErr)
	require.Len(t, m.items, 1)
	assert.Equal(t, "Fixed", m.items[0].Label)
	assert.Equal(t, "Reloaded", m.statusMsg)
}

func TestReloadFailureOutsideErrorViewIsTransient(t *testing.T) {
	m := newTestModel(t, testPrompts)
	require.NoError(t, os.WriteFile(m.svc.PromptsPath(), []byte("broken\n"), 0644))

	m = pressRunes(m, "r")
	assert.Equal(t, ViewLibrary, m.viewMode, "browsing state survives a bad reload")
	assert.Len(t, m.items, 4)
	assert.Contains(t, m.statusMsg, "no templates found")
}

func TestEditorFailureBecomesStatus(t *testing.T) {
	m := newTestModel(t, testPrompts)
	updated, _ := m.Update(editorFinishedMsg{err: assert.AnError})
	m = updated.(Model)
	assert.Contains(t, m.statusMsg, "Editor failed")
}

func TestTemplateWithoutFields(t *testing.T) {
	m := newTestModel(t, "## Plain\nNothing to fill.\n")
	m = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewFill, m.viewMode)
	assert.Empty(t, m.fill.fields)
	assert.Contains(t, m.View(), "no fillable fields")
	assert.Contains(t, m.View(), "Nothing to fill.")
}
