package cli

import (
	"fmt"

	"github.com/alexanderramin/trapgrid/internal/cli/formatter"
	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// labelCharLimit caps label length in the rename form.
const labelCharLimit = 32

// trapgridHuhTheme returns a huh theme using the board's Gruvbox palette.
func trapgridHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// renameTitle is the form title for renaming obj.
func renameTitle(obj domain.PlacedObject) string {
	return fmt.Sprintf("Rename %s at (%d, %d)", obj.Type.DisplayName(), obj.Row, obj.Col)
}

// wizardRenameLabel builds a single-input form seeded with the current label.
// The typed value is written to result.
func wizardRenameLabel(obj domain.PlacedObject, result *string) *huh.Form {
	*result = obj.Label
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(renameTitle(obj)).
				Description("Enter saves, Esc keeps the current label.").
				CharLimit(labelCharLimit).
				Value(result),
		),
	).WithTheme(trapgridHuhTheme()).WithShowHelp(false)
}
