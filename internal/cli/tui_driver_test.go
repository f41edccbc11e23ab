package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/trapgrid/internal/config"
	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/alexanderramin/trapgrid/internal/editor"
	"github.com/alexanderramin/trapgrid/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func stripANSI(s string) string { return ansiRe.ReplaceAllString(s, "") }

// TestDriver wraps teatest.Driver with board-aware helpers. With the
// default config a cell is two characters wide and one line tall, and the
// board starts below the two header lines.
type TestDriver struct {
	*teatest.Driver
}

func NewTestDriver(t *testing.T, opts ...editor.Option) *TestDriver {
	t.Helper()
	m := newAppModel(config.Default(), editor.NoopObserver{}, opts...)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

// cellPos returns the terminal position of the top-left character of a cell.
func (d *TestDriver) cellPos(row, col int) (x, y int) {
	return d.appModel().state.ScreenPos(row, col)
}

func (d *TestDriver) ClickCell(row, col int) {
	d.T.Helper()
	d.Click(d.cellPos(row, col))
}

func (d *TestDriver) DragCell(fromRow, fromCol, toRow, toCol int) {
	d.T.Helper()
	x0, y0 := d.cellPos(fromRow, fromCol)
	x1, y1 := d.cellPos(toRow, toCol)
	d.Drag(x0, y0, x1, y1)
}

func (d *TestDriver) RightClickCell(row, col int) {
	d.T.Helper()
	d.RightClick(d.cellPos(row, col))
}

// Command focuses the command bar, runs input and blurs the bar again.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

// ClearInput empties a focused text field wherever its cursor is.
func (d *TestDriver) ClearInput() {
	d.T.Helper()
	for i := 0; i < labelCharLimit; i++ {
		d.PressType(tea.KeyBackspace)
		d.PressType(tea.KeyDelete)
	}
}

func (d *TestDriver) appModel() appModel { return d.Model.(appModel) }

func (d *TestDriver) Editor() *editor.Editor { return d.appModel().state.Editor }

func (d *TestDriver) Objects() []domain.PlacedObject { return d.Editor().Board().All() }

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.ID()
	}
	return ViewID(-1)
}

func (d *TestDriver) ViewStackLen() int { return len(d.appModel().viewStack) }

func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

func (d *TestDriver) OutputActive() bool { return d.appModel().outputActive }

func (d *TestDriver) PlainView() string { return stripANSI(d.View()) }
