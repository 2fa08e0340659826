// Package layout describes physical board layouts: where each GPIO pin sits on
// the controller face and how large its button is.
package layout

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
)

// Group classifies a button on the board face.
type Group string

const (
	GroupDpad    Group = "dpad"
	GroupMain    Group = "main"
	GroupAux     Group = "aux"
	GroupTrigger Group = "trigger"
	GroupAddon   Group = "addon"
)

// Size is the drawn button size. An empty size means SizeMedium.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

var (
	ErrNotFound  = errors.New("board layout not found")
	ErrDuplicate = errors.New("duplicate pin")
)

// ButtonPosition places one pin on the board.
type ButtonPosition struct {
	Pin   int    `json:"pin"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label"`
	Group Group  `json:"group"`
	Size  Size   `json:"size,omitempty"`
}

// EffectiveSize returns the size with the default applied.
func (b ButtonPosition) EffectiveSize() Size {
	if b.Size == "" {
		return SizeMedium
	}
	return b.Size
}

// BoardLayout is a named board face.
type BoardLayout struct {
	BoardLabel string           `json:"boardLabel"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Buttons    []ButtonPosition `json:"buttons"`
}

// ValidationError describes a single invalid field of a layout.
type ValidationError struct {
	Board string
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("layout %q: %s: %s", e.Board, e.Field, e.Msg)
}

// Validate checks board dimensions, pin uniqueness, group and size values, and
// that every button lies on the board.
func (l *BoardLayout) Validate() error {
	verr := func(field, format string, args ...any) error {
		return &ValidationError{Board: l.BoardLabel, Field: field, Msg: fmt.Sprintf(format, args...)}
	}
	if l.BoardLabel == "" {
		return verr("boardLabel", "must not be empty")
	}
	if l.Width <= 0 || l.Height <= 0 {
		return verr("size", "width and height must be positive, got %dx%d", l.Width, l.Height)
	}
	pins := make(map[int]bool, len(l.Buttons))
	for i, b := range l.Buttons {
		field := fmt.Sprintf("buttons[%d]", i)
		if b.Pin < 0 {
			return verr(field, "negative pin %d", b.Pin)
		}
		if pins[b.Pin] {
			return fmt.Errorf("%w %d: %w", ErrDuplicate, b.Pin, verr(field, "pin already placed"))
		}
		pins[b.Pin] = true
		switch b.Group {
		case GroupDpad, GroupMain, GroupAux, GroupTrigger, GroupAddon:
		default:
			return verr(field, "unknown group %q", b.Group)
		}
		switch b.Size {
		case "", SizeSmall, SizeMedium, SizeLarge:
		default:
			return verr(field, "unknown size %q", b.Size)
		}
		if b.X < 0 || b.X > l.Width || b.Y < 0 || b.Y > l.Height {
			return verr(field, "position (%d,%d) outside %dx%d board", b.X, b.Y, l.Width, l.Height)
		}
	}
	return nil
}

// Button returns the position of pin, if placed.
func (l *BoardLayout) Button(pin int) (ButtonPosition, bool) {
	for _, b := range l.Buttons {
		if b.Pin == pin {
			return b, true
		}
	}
	return ButtonPosition{}, false
}

// Load decodes and validates a layout.
func Load(r io.Reader) (*BoardLayout, error) {
	var l BoardLayout
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("failed to decode board layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadFile reads a layout from a BoardLayout.json file.
func LoadFile(p string) (*BoardLayout, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return l, nil
}

//go:embed boards/*.json
var boardFS embed.FS

var builtin = mustLoadBuiltin()

func mustLoadBuiltin() []*BoardLayout {
	entries, err := boardFS.ReadDir("boards")
	if err != nil {
		panic(err)
	}
	var out []*BoardLayout
	for _, e := range entries {
		f, err := boardFS.Open(path.Join("boards", e.Name()))
		if err != nil {
			panic(err)
		}
		l, err := Load(f)
		_ = f.Close()
		if err != nil {
			panic(fmt.Sprintf("builtin layout %s: %v", e.Name(), err))
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BoardLabel < out[j].BoardLabel })
	return out
}

// Builtin returns the labels of the embedded layouts, sorted.
func Builtin() []string {
	out := make([]string, len(builtin))
	for i, l := range builtin {
		out[i] = l.BoardLabel
	}
	return out
}

// Find returns a copy of the built-in layout with the given board label.
func Find(boardLabel string) (*BoardLayout, error) {
	for _, l := range builtin {
		if l.BoardLabel == boardLabel {
			c := *l
			c.Buttons = append([]ButtonPosition(nil), l.Buttons...)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, boardLabel)
}
