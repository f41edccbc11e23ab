package cli

import (
	"github.com/alexanderramin/trapgrid/internal/editor"
	"github.com/alexanderramin/trapgrid/internal/viewport"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// boardView is the home view: the grid itself. Keys pick tools, the mouse
// places, drags, erases, renames and zooms.
type boardView struct {
	state *SharedState
}

func newBoardView(state *SharedState) *boardView {
	return &boardView{state: state}
}

func (v *boardView) Init() tea.Cmd { return nil }

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	case tea.MouseMsg:
		return v, v.handleMouse(msg)
	}
	return v, nil
}

func (v *boardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	ed := v.state.Editor
	switch msg.String() {
	case "esc":
		ed.CancelDrag()
	case "+", "=":
		ed.Wheel(viewport.ZoomIn)
	case "-":
		ed.Wheel(viewport.ZoomOut)
	default:
		ed.HandleKey(msg.String())
	}
	return nil
}

func (v *boardView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ed := v.state.Editor
	px, py := v.state.PixelAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			ed.PressAt(px, py)
		case tea.MouseButtonRight:
			return v.startRename(px, py)
		case tea.MouseButtonWheelUp:
			ed.Wheel(viewport.ZoomIn)
		case tea.MouseButtonWheelDown:
			ed.Wheel(viewport.ZoomOut)
		}
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			ed.ReleaseAt(px, py)
		}
	}
	return nil
}

// startRename opens the label form for the renamable marker under the
// pointer. Anywhere else the rename resolves immediately as a no-op.
func (v *boardView) startRename(px, py float64) tea.Cmd {
	ed := v.state.Editor
	row, col := ed.CellAt(px, py)
	target, ok := ed.RenameTarget(row, col)
	if !ok {
		ed.Rename(row, col, editor.Cancelled)
		return nil
	}

	var label string
	form := wizardRenameLabel(target, &label)
	done := func() tea.Cmd {
		ed.Rename(row, col, editor.FixedLabel(label))
		return nil
	}
	cancel := func() tea.Cmd {
		ed.Rename(row, col, editor.Cancelled)
		return nil
	}
	return pushView(newWizardView(v.state, "Rename", form, done, cancel))
}

func (v *boardView) View() string {
	w, h := v.state.Width, v.state.ContentHeight()
	if w <= 0 {
		w = 80
	}
	return newBoardCanvas(v.state, w, h).render()
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "" }

func (v *boardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "trap city banner drag train")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "erase")),
		key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("wheel/+-", "zoom")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "drop back")),
	}
}
