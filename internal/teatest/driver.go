// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver stands in for tea.Program: it calls Update directly and
// executes the returned Cmds inline, feeding their messages back into the
// model until nothing is left. Cmds that block (cursor blink timers) are
// abandoned after a short timeout.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds a single Send may execute.
const MaxDrainDepth = 100

// cmdTimeout separates message factories, which return at once, from
// timer Cmds such as cursor blinks (~530ms).
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness around a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg comes out of a Cmd.
	Quitting bool
}

// Option configures a Driver.
type Option func(*Driver)

// New creates a Driver for model. Call DrainInit before sending input.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// DrainInit runs the model's Init command to completion.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains what it returns.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// ── keys ─────────────────────────────────────────────────────────────────────

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressType sends a special key such as tea.KeyEnter.
func (d *Driver) PressType(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.PressType(tea.KeyEnter) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.PressType(tea.KeyEsc) }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.PressType(tea.KeyCtrlC) }
func (d *Driver) PressUp()    { d.T.Helper(); d.PressType(tea.KeyUp) }
func (d *Driver) PressDown()  { d.T.Helper(); d.PressType(tea.KeyDown) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// ── mouse ────────────────────────────────────────────────────────────────────

func (d *Driver) mouse(x, y int, b tea.MouseButton, a tea.MouseAction) {
	d.T.Helper()
	d.Send(tea.MouseMsg{X: x, Y: y, Button: b, Action: a})
}

// Press sends a left-button press at terminal cell (x, y).
func (d *Driver) Press(x, y int) {
	d.T.Helper()
	d.mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress)
}

// Release sends a button release at (x, y). Terminals do not report which
// button was released.
func (d *Driver) Release(x, y int) {
	d.T.Helper()
	d.mouse(x, y, tea.MouseButtonNone, tea.MouseActionRelease)
}

// Click is Press followed by Release at the same position.
func (d *Driver) Click(x, y int) {
	d.T.Helper()
	d.Press(x, y)
	d.Release(x, y)
}

// Drag presses at (x0, y0), moves to (x1, y1) and releases there.
func (d *Driver) Drag(x0, y0, x1, y1 int) {
	d.T.Helper()
	d.Press(x0, y0)
	d.mouse(x1, y1, tea.MouseButtonLeft, tea.MouseActionMotion)
	d.Release(x1, y1)
}

// RightClick sends a right-button press at (x, y).
func (d *Driver) RightClick(x, y int) {
	d.T.Helper()
	d.mouse(x, y, tea.MouseButtonRight, tea.MouseActionPress)
}

// WheelUp sends one wheel-up notch at (x, y).
func (d *Driver) WheelUp(x, y int) {
	d.T.Helper()
	d.mouse(x, y, tea.MouseButtonWheelUp, tea.MouseActionPress)
}

// WheelDown sends one wheel-down notch at (x, y).
func (d *Driver) WheelDown(x, y int) {
	d.T.Helper()
	d.mouse(x, y, tea.MouseButtonWheelDown, tea.MouseActionPress)
}

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			d.drainCmd(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(m)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

// execCmdWithTimeout runs cmd and gives up after cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink message types of bubbles/cursor.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
