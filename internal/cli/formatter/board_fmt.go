package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/alexanderramin/trapgrid/internal/render"
)

// Board map glyphs.
const (
	GlyphEmpty = '.'
	GlyphArea  = '+'
)

var glyphs = map[domain.ObjectType]rune{
	domain.ObjectStronghold: 'X',
	domain.ObjectSettlement: 'C',
	domain.ObjectBanner:     'B',
	domain.ObjectConvoy:     'T',
}

// Glyph returns the map character for a marker type.
func Glyph(t domain.ObjectType) rune {
	if g, ok := glyphs[t]; ok {
		return g
	}
	return '?'
}

// FormatBoard renders the draw list as a one-character-per-cell map with
// row and column rulers. Objects outside the grid are not shown.
func FormatBoard(dl render.DrawList) string {
	var b strings.Builder

	b.WriteString("    ")
	for c := 0; c < dl.GridSize; c++ {
		if c%10 == 0 {
			b.WriteString(Dim(strconv.Itoa(c / 10)))
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("\n    ")
	for c := 0; c < dl.GridSize; c++ {
		b.WriteString(Dim(strconv.Itoa(c % 10)))
	}
	b.WriteString("\n")

	for r := 0; r < dl.GridSize; r++ {
		b.WriteString(Dim(fmt.Sprintf("%3d ", r)))
		for c := 0; c < dl.GridSize; c++ {
			if it, ok := dl.ItemAt(r, c); ok {
				b.WriteString(ObjectStyle(it.Type).Render(string(Glyph(it.Type))))
				continue
			}
			if dl.InArea(r, c) {
				b.WriteString(AreaStyle().Render(string(GlyphArea)))
				continue
			}
			b.WriteString(GridStyle().Render(string(GlyphEmpty)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatObjects renders the objects as a table in insertion order.
func FormatObjects(objects []domain.PlacedObject) string {
	if len(objects) == 0 {
		return Dim("No markers placed.") + "\n"
	}
	rows := make([][]string, 0, len(objects))
	for _, o := range objects {
		label := o.Label
		if label == "" {
			label = Dim("—")
		}
		rows = append(rows, []string{
			string(Glyph(o.Type)),
			o.Type.DisplayName(),
			strconv.Itoa(o.Row),
			strconv.Itoa(o.Col),
			fmt.Sprintf("%dx%d", o.Size(), o.Size()),
			label,
			Dim(o.ShortID()),
		})
	}
	return RenderTable([]string{"", "TYPE", "ROW", "COL", "SIZE", "LABEL", "ID"}, rows)
}

// FormatSummary renders the full replay report: board map, object table
// and the final editor state line.
func FormatSummary(dl render.DrawList, objects []domain.PlacedObject, mode domain.Mode, scale float64) string {
	var b strings.Builder
	b.WriteString(Header("Board"))
	b.WriteString("\n")
	b.WriteString(FormatBoard(dl))
	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Markers (%d)", len(objects))))
	b.WriteString("\n")
	b.WriteString(FormatObjects(objects))
	b.WriteString("\n")
	b.WriteString(FormatStatusLine(mode, scale, nil))
	b.WriteString("\n")
	return b.String()
}

// FormatStatusLine renders the tool, zoom and held marker.
func FormatStatusLine(mode domain.Mode, scale float64, held *domain.PlacedObject) string {
	parts := []string{
		Dim("mode ") + ModeIndicator(mode),
		Dim("zoom ") + StyleFg.Render(fmt.Sprintf("%.0f%%", scale*100)),
	}
	if held != nil {
		name := held.Type.DisplayName()
		if held.Label != "" {
			name += " " + strconv.Quote(held.Label)
		}
		parts = append(parts, Dim("holding ")+StyleYellow.Render(name))
	}
	return strings.Join(parts, Dim("  │  "))
}
