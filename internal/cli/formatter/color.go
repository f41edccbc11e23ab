package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/alexanderramin/trapgrid/internal/render"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// BoardBackground is the color translucent marker fills are composited over.
var BoardBackground = render.Fill{R: 0x28, G: 0x28, B: 0x28, A: 1}

// Predefined lipgloss styles.
var (
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

var (
	objectStyles = map[domain.ObjectType]lipgloss.Style{}
	areaStyle    = fillStyle(render.AreaFill).Foreground(ColorDim)
	gridStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(render.GridLineFill.Hex(BoardBackground))).Faint(true)
)

func init() {
	for _, t := range domain.ObjectTypes {
		objectStyles[t] = fillStyle(render.FillFor(t)).Foreground(ColorFg).Bold(true)
	}
}

func fillStyle(f render.Fill) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(f.Hex(BoardBackground)))
}

// ObjectStyle returns the cell style for a marker type.
func ObjectStyle(t domain.ObjectType) lipgloss.Style {
	if s, ok := objectStyles[t]; ok {
		return s
	}
	return fillStyle(render.FallbackFill).Foreground(ColorFg)
}

// AreaStyle is the style of banner area-of-effect cells.
func AreaStyle() lipgloss.Style { return areaStyle }

// GridStyle is the style of empty board cells.
func GridStyle() lipgloss.Style { return gridStyle }

// ModeIndicator returns a colored tool name such as "● City".
func ModeIndicator(m domain.Mode) string {
	switch m {
	case domain.ModeErase:
		return StyleRed.Render("● " + m.DisplayName())
	case domain.ModeDrag:
		return StyleYellow.Render("● " + m.DisplayName())
	}
	if t, ok := m.ObjectType(); ok {
		return ObjectStyle(t).Render(" " + m.DisplayName() + " ")
	}
	return StyleDim.Render("● " + m.DisplayName())
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}
