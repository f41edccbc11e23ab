package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizardView wraps a huh.Form as a View on the navigation stack.
// Completing the form runs done; Esc or an aborted form runs cancel.
// Either way exactly one callback runs and the view pops itself.
type wizardView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
	cancel   func() tea.Cmd
	finished bool
}

func newWizardView(state *SharedState, title string, form *huh.Form, done, cancel func() tea.Cmd) *wizardView {
	return &wizardView{
		state:    state,
		form:     form,
		titleStr: title,
		done:     done,
		cancel:   cancel,
	}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.finished {
		return v, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, v.complete(nil, v.cancel)
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		return v, v.complete(cmd, v.done)
	case huh.StateAborted:
		return v, v.complete(cmd, v.cancel)
	}
	return v, cmd
}

func (v *wizardView) complete(cmd tea.Cmd, cb func() tea.Cmd) tea.Cmd {
	v.finished = true
	var next tea.Cmd
	if cb != nil {
		next = cb()
	}
	return func() tea.Msg {
		return wizardCompleteMsg{nextCmd: tea.Batch(cmd, next)}
	}
}

func (v *wizardView) View() string {
	return v.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.titleStr }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
