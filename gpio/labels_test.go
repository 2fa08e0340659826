package gpio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/gpiomap/gpio"
)

func TestButtonLabels(t *testing.T) {
	for _, lt := range gpio.LabelTypes() {
		names, err := gpio.ButtonLabels(lt, false)
		require.NoError(t, err, lt)
		name, ok := names.Lookup("B1")
		assert.True(t, ok, lt)
		assert.NotEmpty(t, name, lt)
	}

	_, err := gpio.ButtonLabels("sega", false)
	assert.Error(t, err)
}

func TestButtonLabelsSwapTpShare(t *testing.T) {
	plain, err := gpio.ButtonLabels(gpio.LabelsPS4, false)
	require.NoError(t, err)
	swapped, err := gpio.ButtonLabels("PS4", true)
	require.NoError(t, err)

	assert.Equal(t, "Share", plain["S1"])
	assert.Equal(t, "Touchpad", plain["A2"])
	assert.Equal(t, "Touchpad", swapped["S1"])
	assert.Equal(t, "Share", swapped["A2"])

	xinput, err := gpio.ButtonLabels(gpio.LabelsXInput, true)
	require.NoError(t, err)
	assert.Equal(t, "Back", xinput["S1"])
}

func TestButtonNamesLookup(t *testing.T) {
	names := gpio.ButtonNames{"B1": "A", "A2": ""}

	v, ok := names.Lookup("B1")
	assert.True(t, ok)
	assert.Equal(t, "A", v)

	_, ok = names.Lookup("A2")
	assert.False(t, ok)
	_, ok = names.Lookup("L9")
	assert.False(t, ok)
}
