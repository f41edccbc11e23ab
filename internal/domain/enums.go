package domain

// GridSize is the side length of the board in cells.
const GridSize = 30

type ObjectType string

const (
	ObjectStronghold ObjectType = "bear_trap"
	ObjectSettlement ObjectType = "city"
	ObjectBanner     ObjectType = "banner"
	ObjectConvoy     ObjectType = "train"
)

// ObjectTypes lists every marker type in palette order.
var ObjectTypes = []ObjectType{ObjectStronghold, ObjectSettlement, ObjectBanner, ObjectConvoy}

// typeTraits holds the fixed per-type behavior of a marker.
type typeTraits struct {
	size         int
	defaultLabel string
	renamable    bool
	draggable    bool
	display      string
}

var traits = map[ObjectType]typeTraits{
	ObjectStronghold: {size: 3, defaultLabel: "Bear", renamable: true, draggable: true, display: "Bear Trap"},
	ObjectSettlement: {size: 2, defaultLabel: "City", renamable: true, draggable: true, display: "City"},
	ObjectBanner:     {size: 1, draggable: true, display: "Banner"},
	ObjectConvoy:     {size: 1, display: "Train"},
}

// Valid reports whether t is one of the known marker types.
func (t ObjectType) Valid() bool {
	_, ok := traits[t]
	return ok
}

// Size returns the footprint side length, or 0 for an unknown type.
func (t ObjectType) Size() int { return traits[t].size }

// DefaultLabel returns the label a freshly placed marker starts with.
func (t ObjectType) DefaultLabel() string { return traits[t].defaultLabel }

func (t ObjectType) Renamable() bool { return traits[t].renamable }

func (t ObjectType) Draggable() bool { return traits[t].draggable }

// DisplayName returns the human-facing name used in status lines.
func (t ObjectType) DisplayName() string {
	if d := traits[t].display; d != "" {
		return d
	}
	return string(t)
}

type Mode string

const (
	ModeBearTrap Mode = "bear_trap"
	ModeCity     Mode = "city"
	ModeBanner   Mode = "banner"
	ModeDrag     Mode = "drag"
	ModeTrain    Mode = "train"
	ModeErase    Mode = "erase"
)

// DefaultMode is the tool selected when an editor starts.
const DefaultMode = ModeBearTrap

var placeModes = map[Mode]ObjectType{
	ModeBearTrap: ObjectStronghold,
	ModeCity:     ObjectSettlement,
	ModeBanner:   ObjectBanner,
	ModeTrain:    ObjectConvoy,
}

// ObjectType returns the marker type a placement mode creates.
// ok is false for the drag and erase tools.
func (m Mode) ObjectType() (ObjectType, bool) {
	t, ok := placeModes[m]
	return t, ok
}

// ModeForKey maps a mode-select key to its tool.
func ModeForKey(key string) (Mode, bool) {
	switch key {
	case "1":
		return ModeBearTrap, true
	case "2":
		return ModeCity, true
	case "3":
		return ModeBanner, true
	case "4":
		return ModeDrag, true
	case "5":
		return ModeTrain, true
	case "e", "E":
		return ModeErase, true
	}
	return "", false
}

// DisplayName returns the tool name shown in the status bar.
func (m Mode) DisplayName() string {
	switch m {
	case ModeDrag:
		return "Drag"
	case ModeErase:
		return "Erase"
	}
	if t, ok := m.ObjectType(); ok {
		return t.DisplayName()
	}
	return string(m)
}
