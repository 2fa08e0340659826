package pinmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/gpiomap/gpio"
	"github.com/Alia5/gpiomap/pinmap"
)

func option(t *testing.T, label string) pinmap.Option {
	t.Helper()
	o, ok := pinmap.Default().Lookup(label)
	require.True(t, ok, "no option %q", label)
	return o
}

func labels(opts []pinmap.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label()
	}
	return out
}

func TestEncode(t *testing.T) {
	c := pinmap.Default()
	b1, _ := c.Lookup("B1")
	b2, _ := c.Lookup("B2")
	up, _ := c.Lookup("UP")
	left, _ := c.Lookup("LEFT")
	s2Press, _ := c.Lookup("BUTTON_PRESS_S2")
	turbo, _ := c.Lookup("BUTTON_PRESS_TURBO")

	tests := []struct {
		name      string
		selection []pinmap.Option
		expected  pinmap.Payload
	}{
		{
			name:      "empty selection clears the pin",
			selection: nil,
			expected:  pinmap.Payload{Action: gpio.None},
		},
		{
			name:      "single action",
			selection: []pinmap.Option{turbo},
			expected:  pinmap.Payload{Action: gpio.ButtonPressTurbo},
		},
		{
			name:      "single button mask option selects its press action",
			selection: []pinmap.Option{b2},
			expected:  pinmap.Payload{Action: gpio.ButtonPressB2},
		},
		{
			name:      "single dpad mask option selects its press action",
			selection: []pinmap.Option{left},
			expected:  pinmap.Payload{Action: gpio.ButtonPressLeft},
		},
		{
			name:      "two button masks",
			selection: []pinmap.Option{b1, b2},
			expected:  pinmap.Payload{Action: gpio.CustomButtonCombo, CustomButtonMask: 0b011},
		},
		{
			name:      "action added last replaces the combo",
			selection: []pinmap.Option{b1, b2, s2Press},
			expected:  pinmap.Payload{Action: gpio.ButtonPressS2},
		},
		{
			name:      "action followed by masks is dropped from the fold",
			selection: []pinmap.Option{s2Press, b1},
			expected:  pinmap.Payload{Action: gpio.CustomButtonCombo, CustomButtonMask: uint32(gpio.MaskB1)},
		},
		{
			name:      "same mask twice cancels",
			selection: []pinmap.Option{b1, b1},
			expected:  pinmap.Payload{Action: gpio.CustomButtonCombo},
		},
		{
			name:      "mixed masks keep both fields",
			selection: []pinmap.Option{b1, up},
			expected: pinmap.Payload{
				Action:           gpio.CustomButtonCombo,
				CustomButtonMask: uint32(gpio.MaskB1),
				CustomDpadMask:   uint32(gpio.MaskUp),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pinmap.Encode(tt.selection))
		})
	}
}

// Only dpad options still seed CUSTOM_BUTTON_COMBO; the dpad mask is filled
// but the payload decodes as an empty button combo.
func TestEncodeDpadOnlyComboKeepsButtonComboAction(t *testing.T) {
	c := pinmap.Default()
	p := pinmap.Encode([]pinmap.Option{option(t, "UP"), option(t, "RIGHT")})

	assert.Equal(t, gpio.CustomButtonCombo, p.Action)
	assert.Equal(t, uint32(0), p.CustomButtonMask)
	assert.Equal(t, uint32(gpio.MaskUp|gpio.MaskRight), p.CustomDpadMask)
	assert.Empty(t, c.Decode(p))
	assert.Equal(t, pinmap.LabelNone, c.ResolveLabel(p, nil))
}

func TestDecode(t *testing.T) {
	c := pinmap.Default()

	tests := []struct {
		name     string
		payload  pinmap.Payload
		expected []string
	}{
		{
			name:     "none",
			payload:  pinmap.None(),
			expected: []string{"NONE"},
		},
		{
			name:     "reserved",
			payload:  pinmap.Payload{Action: gpio.Reserved},
			expected: []string{"RESERVED"},
		},
		{
			name:     "plain press",
			payload:  pinmap.Payload{Action: gpio.ButtonPressR3},
			expected: []string{"BUTTON_PRESS_R3"},
		},
		{
			name:     "button combo in catalog order",
			payload:  pinmap.Payload{Action: gpio.CustomButtonCombo, CustomButtonMask: uint32(gpio.MaskS2 | gpio.MaskB4 | gpio.MaskE12)},
			expected: []string{"B4", "S2", "E12"},
		},
		{
			name:     "dpad combo",
			payload:  pinmap.Payload{Action: gpio.CustomDpadCombo, CustomDpadMask: uint32(gpio.MaskRight | gpio.MaskUp)},
			expected: []string{"UP", "RIGHT"},
		},
		{
			name:     "button combo ignores the dpad mask",
			payload:  pinmap.Payload{Action: gpio.CustomButtonCombo, CustomButtonMask: uint32(gpio.MaskA1), CustomDpadMask: uint32(gpio.MaskDown)},
			expected: []string{"A1"},
		},
		{
			name:     "zero mask combo",
			payload:  pinmap.Payload{Action: gpio.CustomDpadCombo},
			expected: []string{},
		},
		{
			name:     "unknown bits are dropped",
			payload:  pinmap.Payload{Action: gpio.CustomButtonCombo, CustomButtonMask: 1<<31 | uint32(gpio.MaskL1)},
			expected: []string{"L1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, labels(c.Decode(tt.payload)))
		})
	}
}

func TestRoundTripPlainActions(t *testing.T) {
	c := pinmap.Default()

	assert.Equal(t, []pinmap.Option{pinmap.ActionOption{Action: gpio.None}}, c.Decode(pinmap.Encode(nil)))

	for _, a := range gpio.Actions() {
		if a.IsCombo() {
			continue
		}
		t.Run(a.String(), func(t *testing.T) {
			sel := []pinmap.Option{pinmap.ActionOption{Action: a}}
			assert.Equal(t, sel, c.Decode(pinmap.Encode(sel)))
		})
	}
}

func TestSequentialMultiSelectDecodesInCatalogOrder(t *testing.T) {
	c := pinmap.Default()
	orders := [][]string{
		{"B1", "B2", "R2"},
		{"R2", "B1", "B2"},
		{"B2", "R2", "B1"},
		{"E3", "A2", "S1", "B4"},
	}
	catalogOrder := func(set []string) []string {
		var out []string
		for _, o := range c.ButtonMasks() {
			for _, l := range set {
				if o.Name == l {
					out = append(out, l)
				}
			}
		}
		return out
	}

	for _, order := range orders {
		var sel []pinmap.Option
		var p pinmap.Payload
		for _, l := range order {
			sel = append(sel, option(t, l))
			p = pinmap.Encode(sel)
		}
		assert.Equal(t, catalogOrder(order), labels(c.Decode(p)), "order %v", order)
	}
}

func TestEndToEndComboPin(t *testing.T) {
	c := pinmap.Default()
	p := pinmap.Payload{Action: gpio.CustomButtonCombo, CustomButtonMask: 0b011}

	decoded := c.Decode(p)
	require.Len(t, decoded, 2)
	assert.Equal(t, pinmap.ButtonMaskOption{Name: "B1", Bit: gpio.MaskB1, Action: gpio.ButtonPressB1}, decoded[0])
	assert.Equal(t, pinmap.ButtonMaskOption{Name: "B2", Bit: gpio.MaskB2, Action: gpio.ButtonPressB2}, decoded[1])
	assert.Equal(t, pinmap.LabelCombo, c.ResolveLabel(p, nil))
	assert.Equal(t, p, pinmap.Encode(decoded))
}
