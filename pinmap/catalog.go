package pinmap

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/Alia5/gpiomap/gpio"
)

var ErrDuplicateLabel = errors.New("duplicate option label")

// Display group labels of the default catalog.
const (
	GroupButtons       = "Buttons"
	GroupCustomButtons = "Custom Buttons"
	GroupCustomDpad    = "Custom Dpad"
)

// Group is a labelled run of options, as presented by a selector.
type Group struct {
	Label   string
	Options []Option
}

// Catalog is the immutable, ordered option inventory. The codec scans mask
// options in the order they were given here.
type Catalog struct {
	actions []ActionOption
	buttons []ButtonMaskOption
	dpad    []DpadMaskOption
	byLabel map[string]Option
}

// NewCatalog builds a catalog. Labels must be unique and every mask option must
// carry exactly one bit.
func NewCatalog(actions []ActionOption, buttons []ButtonMaskOption, dpad []DpadMaskOption) (*Catalog, error) {
	c := &Catalog{
		actions: append([]ActionOption(nil), actions...),
		buttons: append([]ButtonMaskOption(nil), buttons...),
		dpad:    append([]DpadMaskOption(nil), dpad...),
		byLabel: make(map[string]Option, len(actions)+len(buttons)+len(dpad)),
	}
	add := func(o Option) error {
		if _, dup := c.byLabel[o.Label()]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, o.Label())
		}
		c.byLabel[o.Label()] = o
		return nil
	}
	for _, o := range c.actions {
		if o.Action.IsCombo() {
			return nil, fmt.Errorf("combo marker %s cannot be an action option", o.Action)
		}
		if err := add(o); err != nil {
			return nil, err
		}
	}
	for _, o := range c.buttons {
		if bits.OnesCount32(uint32(o.Bit)) != 1 {
			return nil, fmt.Errorf("button mask option %q must set exactly one bit, has %#x", o.Name, o.Bit)
		}
		if err := add(o); err != nil {
			return nil, err
		}
	}
	for _, o := range c.dpad {
		if bits.OnesCount32(uint32(o.Bit)) != 1 {
			return nil, fmt.Errorf("dpad mask option %q must set exactly one bit, has %#x", o.Name, o.Bit)
		}
		if err := add(o); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Lookup finds an option by label.
func (c *Catalog) Lookup(label string) (Option, bool) {
	o, ok := c.byLabel[label]
	return o, ok
}

// Groups returns the options grouped for display.
func (c *Catalog) Groups() []Group {
	g := []Group{
		{Label: GroupButtons, Options: make([]Option, 0, len(c.actions))},
		{Label: GroupCustomButtons, Options: make([]Option, 0, len(c.buttons))},
		{Label: GroupCustomDpad, Options: make([]Option, 0, len(c.dpad))},
	}
	for _, o := range c.actions {
		g[0].Options = append(g[0].Options, o)
	}
	for _, o := range c.buttons {
		g[1].Options = append(g[1].Options, o)
	}
	for _, o := range c.dpad {
		g[2].Options = append(g[2].Options, o)
	}
	return g
}

// ButtonMasks returns the button mask options in catalog order.
func (c *Catalog) ButtonMasks() []ButtonMaskOption {
	return append([]ButtonMaskOption(nil), c.buttons...)
}

// DpadMasks returns the dpad mask options in catalog order.
func (c *Catalog) DpadMasks() []DpadMaskOption {
	return append([]DpadMaskOption(nil), c.dpad...)
}

var defaultCatalog = mustDefaultCatalog()

// Default returns the catalog of every non-combo action plus the button and
// direction mask bits.
func Default() *Catalog {
	return defaultCatalog
}

func mustDefaultCatalog() *Catalog {
	var actions []ActionOption
	for _, a := range gpio.Actions() {
		if a.IsCombo() {
			continue
		}
		actions = append(actions, ActionOption{Action: a})
	}
	buttons := []ButtonMaskOption{
		{"B1", gpio.MaskB1, gpio.ButtonPressB1},
		{"B2", gpio.MaskB2, gpio.ButtonPressB2},
		{"B3", gpio.MaskB3, gpio.ButtonPressB3},
		{"B4", gpio.MaskB4, gpio.ButtonPressB4},
		{"L1", gpio.MaskL1, gpio.ButtonPressL1},
		{"R1", gpio.MaskR1, gpio.ButtonPressR1},
		{"L2", gpio.MaskL2, gpio.ButtonPressL2},
		{"R2", gpio.MaskR2, gpio.ButtonPressR2},
		{"S1", gpio.MaskS1, gpio.ButtonPressS1},
		{"S2", gpio.MaskS2, gpio.ButtonPressS2},
		{"L3", gpio.MaskL3, gpio.ButtonPressL3},
		{"R3", gpio.MaskR3, gpio.ButtonPressR3},
		{"A1", gpio.MaskA1, gpio.ButtonPressA1},
		{"A2", gpio.MaskA2, gpio.ButtonPressA2},
		{"A3", gpio.MaskA3, gpio.ButtonPressA3},
		{"A4", gpio.MaskA4, gpio.ButtonPressA4},
		{"E1", gpio.MaskE1, gpio.ButtonPressE1},
		{"E2", gpio.MaskE2, gpio.ButtonPressE2},
		{"E3", gpio.MaskE3, gpio.ButtonPressE3},
		{"E4", gpio.MaskE4, gpio.ButtonPressE4},
		{"E5", gpio.MaskE5, gpio.ButtonPressE5},
		{"E6", gpio.MaskE6, gpio.ButtonPressE6},
		{"E7", gpio.MaskE7, gpio.ButtonPressE7},
		{"E8", gpio.MaskE8, gpio.ButtonPressE8},
		{"E9", gpio.MaskE9, gpio.ButtonPressE9},
		{"E10", gpio.MaskE10, gpio.ButtonPressE10},
		{"E11", gpio.MaskE11, gpio.ButtonPressE11},
		{"E12", gpio.MaskE12, gpio.ButtonPressE12},
	}
	dpad := []DpadMaskOption{
		{"UP", gpio.MaskUp, gpio.ButtonPressUp},
		{"DOWN", gpio.MaskDown, gpio.ButtonPressDown},
		{"LEFT", gpio.MaskLeft, gpio.ButtonPressLeft},
		{"RIGHT", gpio.MaskRight, gpio.ButtonPressRight},
	}
	c, err := NewCatalog(actions, buttons, dpad)
	if err != nil {
		panic(err)
	}
	return c
}
