// Package script parses and replays line-oriented editor event scripts.
//
//	# comments and blank lines are skipped
//	key 1      # trailing comments too, except after rename
//	click 105 105
//	press 170 170
//	release 10 10
//	rename 110 110 Gate #2
//	rename 110 110 !cancel
//	wheel up
//	cancel
//
// A rename label is the rest of the line taken as typed, so it may contain
// '#'. Coordinates are pixels and go through the editor's transform. They
// must be finite and within ±MaxCoordinate.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/trapgrid/internal/editor"
	"github.com/alexanderramin/trapgrid/internal/viewport"
)

var (
	// ErrUnknownVerb indicates a line whose first token is not a known verb.
	ErrUnknownVerb = errors.New("unknown verb")

	// ErrBadArgument indicates a missing or malformed argument.
	ErrBadArgument = errors.New("bad argument")
)

// CancelToken as a rename label makes the prompt report cancellation.
const CancelToken = "!cancel"

// MaxCoordinate bounds pixel coordinates so cell indexes stay in int range.
const MaxCoordinate = 1 << 30

type Verb string

const (
	VerbKey     Verb = "key"
	VerbPress   Verb = "press"
	VerbRelease Verb = "release"
	VerbClick   Verb = "click"
	VerbRename  Verb = "rename"
	VerbWheel   Verb = "wheel"
	VerbCancel  Verb = "cancel"
)

// Verbs lists every script verb.
var Verbs = []Verb{VerbKey, VerbPress, VerbRelease, VerbClick, VerbRename, VerbWheel, VerbCancel}

// Step is one parsed script line.
type Step struct {
	Line  int
	Verb  Verb
	Key   string
	X, Y  float64
	Label string
	// Cancel marks a rename whose prompt is dismissed.
	Cancel bool
	Zoom   viewport.ZoomDirection
}

// Parse reads a whole script. The first malformed line aborts parsing with
// an error naming its line number.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		step, ok, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if !ok {
			continue
		}
		step.Line = n
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return steps, nil
}

// ParseLine parses a single line. ok is false for blank and comment lines.
func ParseLine(line string) (step Step, ok bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Step{}, false, nil
	}

	step.Verb = Verb(strings.ToLower(fields[0]))
	if step.Verb != VerbRename {
		fields = stripComment(fields)
	}
	args := fields[1:]

	switch step.Verb {
	case VerbKey:
		if len(args) != 1 {
			return Step{}, false, fmt.Errorf("%w: key takes exactly one key", ErrBadArgument)
		}
		step.Key = args[0]

	case VerbPress, VerbRelease, VerbClick:
		if len(args) != 2 {
			return Step{}, false, fmt.Errorf("%w: %s takes <x> <y>", ErrBadArgument, step.Verb)
		}
		if step.X, step.Y, err = parsePoint(args); err != nil {
			return Step{}, false, err
		}

	case VerbRename:
		if len(args) < 2 {
			return Step{}, false, fmt.Errorf("%w: rename takes <x> <y> [label]", ErrBadArgument)
		}
		if step.X, step.Y, err = parsePoint(args[:2]); err != nil {
			return Step{}, false, err
		}
		label := strings.Join(args[2:], " ")
		if label == CancelToken {
			step.Cancel = true
		} else {
			step.Label = label
		}

	case VerbWheel:
		if len(args) != 1 {
			return Step{}, false, fmt.Errorf("%w: wheel takes up or down", ErrBadArgument)
		}
		switch strings.ToLower(args[0]) {
		case "up", "in":
			step.Zoom = viewport.ZoomIn
		case "down", "out":
			step.Zoom = viewport.ZoomOut
		default:
			return Step{}, false, fmt.Errorf("%w: wheel direction %q", ErrBadArgument, args[0])
		}

	case VerbCancel:
		if len(args) != 0 {
			return Step{}, false, fmt.Errorf("%w: cancel takes no arguments", ErrBadArgument)
		}

	default:
		return Step{}, false, fmt.Errorf("%w %q", ErrUnknownVerb, fields[0])
	}
	return step, true, nil
}

// stripComment drops everything from the first '#' onwards.
func stripComment(fields []string) []string {
	for i, f := range fields {
		if j := strings.IndexByte(f, '#'); j >= 0 {
			if j > 0 {
				return append(fields[:i:i], f[:j])
			}
			return fields[:i]
		}
	}
	return fields
}

func parsePoint(args []string) (x, y float64, err error) {
	if x, err = parseCoordinate("x", args[0]); err != nil {
		return 0, 0, err
	}
	if y, err = parseCoordinate("y", args[1]); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseCoordinate(axis, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) > MaxCoordinate {
		return 0, fmt.Errorf("%w: %s %q", ErrBadArgument, axis, s)
	}
	return v, nil
}

// Apply feeds steps into e in order.
func Apply(e *editor.Editor, steps []Step) {
	for _, s := range steps {
		ApplyStep(e, s)
	}
}

// ApplyStep feeds a single step into e.
func ApplyStep(e *editor.Editor, s Step) {
	switch s.Verb {
	case VerbKey:
		e.HandleKey(s.Key)
	case VerbPress:
		e.PressAt(s.X, s.Y)
	case VerbRelease:
		e.ReleaseAt(s.X, s.Y)
	case VerbClick:
		e.PressAt(s.X, s.Y)
		e.ReleaseAt(s.X, s.Y)
	case VerbRename:
		var p editor.LabelPrompter = editor.FixedLabel(s.Label)
		if s.Cancel {
			p = editor.Cancelled
		}
		e.RenameAt(s.X, s.Y, p)
	case VerbWheel:
		e.Wheel(s.Zoom)
	case VerbCancel:
		e.CancelDrag()
	}
}

// Run parses r and applies it to e.
func Run(e *editor.Editor, r io.Reader) error {
	steps, err := Parse(r)
	if err != nil {
		return err
	}
	Apply(e, steps)
	return nil
}
