package pinmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/gpiomap/gpio"
	"github.com/Alia5/gpiomap/pinmap"
)

func TestDefaultCatalogGroups(t *testing.T) {
	groups := pinmap.Default().Groups()
	require.Len(t, groups, 3)

	assert.Equal(t, pinmap.GroupButtons, groups[0].Label)
	assert.Equal(t, pinmap.GroupCustomButtons, groups[1].Label)
	assert.Equal(t, pinmap.GroupCustomDpad, groups[2].Label)

	for _, o := range groups[0].Options {
		a, ok := o.(pinmap.ActionOption)
		require.True(t, ok)
		assert.False(t, a.Action.IsCombo(), "combo marker %s offered as an action", a.Action)
	}
	assert.Len(t, groups[1].Options, 28)
	assert.Equal(t, []string{"UP", "DOWN", "LEFT", "RIGHT"}, labels(groups[2].Options))
}

func TestDefaultCatalogMaskBitsAreDistinct(t *testing.T) {
	var seen uint32
	for _, o := range pinmap.Default().ButtonMasks() {
		assert.Zero(t, seen&uint32(o.Bit), o.Name)
		seen |= uint32(o.Bit)
		assert.Equal(t, "BUTTON_PRESS_"+o.Name, o.Action.String())
	}
}

func TestNewCatalogRejects(t *testing.T) {
	_, err := pinmap.NewCatalog(
		[]pinmap.ActionOption{{Action: gpio.ButtonPressB1}},
		[]pinmap.ButtonMaskOption{{Name: "BUTTON_PRESS_B1", Bit: gpio.MaskB1}},
		nil,
	)
	assert.ErrorIs(t, err, pinmap.ErrDuplicateLabel)

	_, err = pinmap.NewCatalog(nil, []pinmap.ButtonMaskOption{{Name: "B1B2", Bit: gpio.MaskB1 | gpio.MaskB2}}, nil)
	assert.Error(t, err)

	_, err = pinmap.NewCatalog(nil, nil, []pinmap.DpadMaskOption{{Name: "NONE"}})
	assert.Error(t, err)

	_, err = pinmap.NewCatalog([]pinmap.ActionOption{{Action: gpio.CustomDpadCombo}}, nil, nil)
	assert.Error(t, err)
}

func TestCustomCatalogDecodeOrder(t *testing.T) {
	c, err := pinmap.NewCatalog(nil, []pinmap.ButtonMaskOption{
		{Name: "Second", Bit: gpio.MaskB2, Action: gpio.ButtonPressB2},
		{Name: "First", Bit: gpio.MaskB1, Action: gpio.ButtonPressB1},
	}, nil)
	require.NoError(t, err)

	got := c.Decode(pinmap.Payload{Action: gpio.CustomButtonCombo, CustomButtonMask: 0b11})
	assert.Equal(t, []string{"Second", "First"}, labels(got))
}
