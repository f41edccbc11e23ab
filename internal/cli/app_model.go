package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trapgrid/internal/cli/formatter"
	"github.com/alexanderramin/trapgrid/internal/config"
	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/alexanderramin/trapgrid/internal/editor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack over the board and a persistent command bar.
type appModel struct {
	state     *SharedState
	viewStack []View
	cmdBar    commandBar
	quitting  bool

	// Transient output from the command bar, shown instead of the board.
	lastOutput   string
	outputVP     viewport.Model
	outputActive bool
}

func newAppModel(cfg config.Config, observer editor.Observer, opts ...editor.Option) appModel {
	state := newSharedState(cfg, observer, opts...)

	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return appModel{
		state:     state,
		viewStack: []View{newBoardView(state)},
		cmdBar:    newCommandBar(state),
		outputVP:  vp,
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.cmdBar.SetWidth(msg.Width)
		if m.outputActive {
			m.outputVP.Width = msg.Width
			m.outputVP.Height = m.state.ContentHeight()
		}
		return m, m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case pushViewMsg:
		m.cmdBar.Blur()
		m.clearOutput()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case cmdOutputMsg:
		m.lastOutput = msg.output
		m.outputActive = true
		m.outputVP.SetContent(msg.output)
		m.outputVP.Width = m.state.Width
		m.outputVP.Height = m.state.ContentHeight()
		m.outputVP.GotoTop()
		return m, nil

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.clearOutput()
		return m, msg.nextCmd

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	if m.cmdBar.Focused() {
		return m, m.cmdBar.UpdateNonKey(msg)
	}
	return m, m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.clearOutput()
		}
		return m, m.cmdBar.Update(msg)
	}

	// Scroll keys move through command output; anything else dismisses it
	// and is then handled normally.
	if m.outputActive {
		if isOutputScrollKey(msg) {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		m.clearOutput()
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	// Forms take every key, including q and :.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		return m, m.forward(msg)
	}

	switch msg.String() {
	case ":":
		m.cmdBar.Focus()
		return m, nil
	case "q":
		m.quitting = true
		return m, tea.Quit
	}

	return m, m.forward(msg)
}

func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.outputActive {
		if tea.MouseEvent(msg).IsWheel() {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		if msg.Action == tea.MouseActionPress {
			m.clearOutput()
		}
		return m, nil
	}
	return m, m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}

	switch {
	case m.outputActive && m.state.Height > 0:
		sections = append(sections, m.outputVP.View())
	case m.lastOutput != "":
		sections = append(sections, m.lastOutput)
	default:
		if v := m.activeView(); v != nil {
			sections = append(sections, v.View())
		}
	}

	sections = append(sections, m.renderStatusBar(), m.cmdBar.View())
	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen line diff leaves no stale rows.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	header := formatter.StylePurple.Render("trapgrid")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	ed := m.state.Editor
	var held *domain.PlacedObject
	if obj, ok := ed.Held(); ok {
		held = &obj
	}
	header += "  " + formatter.FormatStatusLine(ed.Mode(), ed.Transform().Scale(), held)

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.outputActive && m.outputVP.TotalLineCount() > m.outputVP.Height {
		hints = append(hints,
			scrollIndicator(m.outputVP),
			formatter.Dim("↑↓ pgup/pgdn: scroll"),
			formatter.Dim("esc: dismiss"))
	} else if v := m.activeView(); v != nil && !m.outputActive {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if !m.cmdBar.Focused() && !m.outputActive {
		hints = append(hints, formatter.Dim(": command"), formatter.Dim("q: quit"))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

func (m *appModel) clearOutput() {
	m.lastOutput = ""
	m.outputActive = false
}

// outputViewportKeyMap restricts output scrolling to arrow and page keys
// so letters stay free for tools and global shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}
