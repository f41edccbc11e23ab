package cli

import (
	"strings"

	"github.com/alexanderramin/trapgrid/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// maxHistory bounds the in-memory command history.
const maxHistory = 200

// commandBar is the persistent text input at the bottom of the TUI.
// It accepts script lines and a few board commands, with verb suggestions
// and history navigation.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 200
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{input: ti, state: state}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool { return c.focused }

// SetWidth updates the input width after a terminal resize.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len(promptPlain) - 1
}

// Update handles key messages while the bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.addHistory(input)
		return executeCommand(c.state, input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages such as cursor blink.
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) View() string {
	if !c.focused {
		return promptPrefix() + formatter.Dim("press : to type a command")
	}
	return promptPrefix() + c.input.View()
}

const promptPlain = "trapgrid > "

func promptPrefix() string {
	return formatter.StylePurple.Render("trapgrid") + " " + formatter.Dim("❯") + " "
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	if n := len(c.history); n > 0 && c.history[n-1] == line {
		c.historyIdx = n
		return
	}
	c.history = append(c.history, line)
	if len(c.history) > maxHistory {
		c.history = c.history[len(c.history)-maxHistory:]
	}
	c.historyIdx = len(c.history)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

// updateSuggestions completes the first word against the command names,
// and the wheel and key arguments against their accepted values.
func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	parts := strings.Fields(text)
	if len(parts) == 0 {
		c.input.SetSuggestions(nil)
		return
	}
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		c.input.SetSuggestions(filterSuggestions(commandNames(), parts[0]))
		return
	}

	if len(parts) > 2 || (len(parts) == 2 && trailingSpace) {
		c.input.SetSuggestions(nil)
		return
	}

	var pool []string
	switch strings.ToLower(parts[0]) {
	case "wheel":
		pool = []string{"up", "down"}
	case "key":
		pool = []string{"1", "2", "3", "4", "5", "e"}
	}
	prefix := ""
	if len(parts) == 2 {
		prefix = parts[1]
	}
	var full []string
	for _, s := range filterSuggestions(pool, prefix) {
		full = append(full, parts[0]+" "+s)
	}
	c.input.SetSuggestions(full)
}

func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}
