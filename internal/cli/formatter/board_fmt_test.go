package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/alexanderramin/trapgrid/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatBoard(t *testing.T) {
	trap := domain.NewPlacedObject(domain.ObjectStronghold, 0, 5)
	banner := domain.NewPlacedObject(domain.ObjectBanner, 0, 0)
	outside := domain.NewPlacedObject(domain.ObjectConvoy, -1, -1)
	dl := render.Plan([]domain.PlacedObject{*trap, *banner, *outside}, domain.GridSize)

	lines := strings.Split(stripANSI(FormatBoard(dl)), "\n")
	require.Len(t, lines, 2+domain.GridSize+1)

	assert.Equal(t, "    0         1         2         ", lines[0])
	assert.Equal(t, "    012345678901234567890123456789", lines[1])
	assert.Equal(t, "  0 B+++.XXX......................", lines[2])
	assert.Equal(t, "  2 ++++.XXX......................", lines[4])
	assert.Equal(t, "  3 ++++..........................", lines[5])
	assert.Equal(t, "  4 ..............................", lines[6])
	assert.Equal(t, " 29 ..............................", lines[2+29])
}

func TestFormatObjects(t *testing.T) {
	city := domain.NewPlacedObject(domain.ObjectSettlement, 8, 8)
	train := domain.NewPlacedObject(domain.ObjectConvoy, 1, 2)

	out := stripANSI(FormatObjects([]domain.PlacedObject{*city, *train}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "TYPE")
	assert.Contains(t, lines[0], "LABEL")
	assert.Contains(t, lines[2], "City")
	assert.Contains(t, lines[2], "2x2")
	assert.Contains(t, lines[2], city.ShortID())
	assert.Contains(t, lines[3], "Train")
	assert.Contains(t, lines[3], "—")
}

func TestFormatObjects_Empty(t *testing.T) {
	assert.Equal(t, "No markers placed.\n", stripANSI(FormatObjects(nil)))
}

func TestFormatStatusLine(t *testing.T) {
	held := domain.NewPlacedObject(domain.ObjectSettlement, 0, 0)
	held.Label = "Port"

	out := stripANSI(FormatStatusLine(domain.ModeDrag, 1.1, held))
	assert.Contains(t, out, "mode ● Drag")
	assert.Contains(t, out, "zoom 110%")
	assert.Contains(t, out, `holding City "Port"`)

	out = stripANSI(FormatStatusLine(domain.ModeCity, 1, nil))
	assert.Contains(t, out, "City")
	assert.NotContains(t, out, "holding")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{{"long", "x"}, {"s"}}))
	assert.Equal(t, "A     BB\n────  ──\nlong  x\ns     \n", out)
}
