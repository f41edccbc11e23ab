package render

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/trapgrid/internal/domain"
)

// Fill is a translucent RGB fill color.
type Fill struct {
	R, G, B uint8
	A       float64
}

// CSS returns the fill as an rgba() string.
func (f Fill) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", f.R, f.G, f.B, strconv.FormatFloat(f.A, 'f', -1, 64))
}

// Hex returns the fill composited over background bg as #rrggbb.
func (f Fill) Hex(bg Fill) string {
	mix := func(c, b uint8) uint8 {
		return uint8(float64(c)*f.A + float64(b)*(1-f.A) + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(f.R, bg.R), mix(f.G, bg.G), mix(f.B, bg.B))
}

var (
	FallbackFill = Fill{0, 0, 0, 1}

	// AreaFill tints banner area-of-effect cells.
	AreaFill = Fill{100, 255, 100, 0.2}

	// GridLineFill is the stroke color of grid lines.
	GridLineFill = Fill{0xdd, 0xdd, 0xdd, 1}
)

var palette = map[domain.ObjectType]Fill{
	domain.ObjectStronghold: {255, 100, 100, 0.6},
	domain.ObjectSettlement: {100, 100, 255, 0.6},
	domain.ObjectBanner:     {100, 255, 100, 0.6},
	domain.ObjectConvoy:     {80, 80, 80, 0.8},
}

// FillFor returns the fill color of a marker type, or FallbackFill for an
// unknown type.
func FillFor(t domain.ObjectType) Fill {
	if f, ok := palette[t]; ok {
		return f
	}
	return FallbackFill
}
