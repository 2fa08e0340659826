package gpio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/gpiomap/gpio"
)

func TestActionNamesRoundTrip(t *testing.T) {
	seen := map[gpio.Action]bool{}
	for _, a := range gpio.Actions() {
		require.False(t, seen[a], "duplicate action value %d", a)
		seen[a] = true

		parsed, err := gpio.ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in       string
		expected gpio.Action
		wantErr  bool
	}{
		{in: "NONE", expected: gpio.None},
		{in: "button_press_b1", expected: gpio.ButtonPressB1},
		{in: " custom_dpad_combo ", expected: gpio.CustomDpadCombo},
		{in: "-5", expected: gpio.Reserved},
		{in: "0", expected: gpio.AssignedToAddon},
		{in: "999", wantErr: true},
		{in: "BUTTON_PRESS_B9", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := gpio.ParseAction(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "ASSIGNED_TO_ADDON", gpio.AssignedToAddon.String())
	assert.Equal(t, "SUSTAIN_4_8_WAY_MODE", gpio.Sustain4Way8WayMode.String())
	assert.Equal(t, "GpioAction(500)", gpio.Action(500).String())
	assert.False(t, gpio.Action(500).Known())
}

func TestIsCombo(t *testing.T) {
	for _, a := range gpio.Actions() {
		want := a == gpio.CustomButtonCombo || a == gpio.CustomDpadCombo
		assert.Equal(t, want, a.IsCombo(), a.String())
	}
}
