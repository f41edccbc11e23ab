package cli

import (
	"strings"
	"testing"

	"github.com/alexanderramin/trapgrid/internal/config"
	"github.com/alexanderramin/trapgrid/internal/editor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }

func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func testModel() appModel {
	return newAppModel(config.Default(), editor.NoopObserver{})
}

func TestNewAppModelStartsAtBoard(t *testing.T) {
	m := testModel()

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewBoard, m.activeView().ID())
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := testModel()
	form := newStubView(ViewForm, "Rename", "form view")

	model, cmd := m.Update(pushViewMsg{view: form})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, form, m.activeView())

	model, cmd = m.Update(wizardCompleteMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewBoard, m.activeView().ID())

	// The board is never popped.
	model, _ = m.Update(wizardCompleteMsg{})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	m := testModel()
	v := newStubView(ViewBoard, "", "board")
	m.viewStack = []View{v}

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	require.Len(t, v.updateSeen, 1)
	assert.IsType(t, tea.WindowSizeMsg{}, v.updateSeen[0])
}

func TestAppModel_WizardCompletePopsAndRunsNext(t *testing.T) {
	m := testModel()
	m.viewStack = append(m.viewStack, newStubView(ViewForm, "Rename", "form"))

	ran := false
	next := func() tea.Msg { ran = true; return nil }

	model, cmd := m.Update(wizardCompleteMsg{nextCmd: next})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, ran)
}

func TestAppModel_HeaderShowsBreadcrumbAndMode(t *testing.T) {
	m := testModel()
	m.viewStack = append(m.viewStack, newStubView(ViewForm, "Rename", "form body"))

	view := stripANSI(m.View())
	assert.Contains(t, view, "trapgrid › Rename")
	assert.Contains(t, view, "mode")
	assert.Contains(t, view, "form body")
}

func TestAppModel_StatusBarShowsViewHelp(t *testing.T) {
	m := testModel()
	v := newStubView(ViewBoard, "", "board")
	v.shortHelp = []key.Binding{key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "do thing"))}
	m.viewStack = []View{v}

	view := stripANSI(m.View())
	assert.Contains(t, view, "x: do thing")
	assert.Contains(t, view, ": command")
}

func TestAppModel_FormReceivesGlobalKeys(t *testing.T) {
	m := testModel()
	form := newStubView(ViewForm, "Rename", "form")
	m.viewStack = append(m.viewStack, form)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(appModel)
	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
	require.Len(t, form.updateSeen, 1)
}

func TestAppModel_OutputViewportDismissedByPress(t *testing.T) {
	m := testModel()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = model.(appModel)
	model, _ = m.Update(cmdOutputMsg{output: "hello"})
	m = model.(appModel)
	require.True(t, m.outputActive)
	assert.Contains(t, stripANSI(m.View()), "hello")

	model, _ = m.Update(tea.MouseMsg{X: 1, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = model.(appModel)
	assert.False(t, m.outputActive)
	assert.Equal(t, 0, m.state.Editor.Board().Len())
}

func TestAppModel_ViewPadsToHeight(t *testing.T) {
	m := testModel()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 50})
	m = model.(appModel)

	lines := len(strings.Split(m.View(), "\n"))
	assert.GreaterOrEqual(t, lines, 50)
}
