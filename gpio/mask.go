package gpio

// ButtonMask is the bitfield stored in a pin's customButtonMask.
type ButtonMask uint32

// Button bitmasks used by CUSTOM_BUTTON_COMBO
const (
	MaskB1  ButtonMask = 1 << 0
	MaskB2  ButtonMask = 1 << 1
	MaskB3  ButtonMask = 1 << 2
	MaskB4  ButtonMask = 1 << 3
	MaskL1  ButtonMask = 1 << 4
	MaskR1  ButtonMask = 1 << 5
	MaskL2  ButtonMask = 1 << 6
	MaskR2  ButtonMask = 1 << 7
	MaskS1  ButtonMask = 1 << 8
	MaskS2  ButtonMask = 1 << 9
	MaskL3  ButtonMask = 1 << 10
	MaskR3  ButtonMask = 1 << 11
	MaskA1  ButtonMask = 1 << 12
	MaskA2  ButtonMask = 1 << 13
	MaskA3  ButtonMask = 1 << 14
	MaskA4  ButtonMask = 1 << 15
	MaskE1  ButtonMask = 1 << 16
	MaskE2  ButtonMask = 1 << 17
	MaskE3  ButtonMask = 1 << 18
	MaskE4  ButtonMask = 1 << 19
	MaskE5  ButtonMask = 1 << 20
	MaskE6  ButtonMask = 1 << 21
	MaskE7  ButtonMask = 1 << 22
	MaskE8  ButtonMask = 1 << 23
	MaskE9  ButtonMask = 1 << 24
	MaskE10 ButtonMask = 1 << 25
	MaskE11 ButtonMask = 1 << 26
	MaskE12 ButtonMask = 1 << 27
)

// DpadMask is the bitfield stored in a pin's customDpadMask.
type DpadMask uint32

// Direction bitmasks used by CUSTOM_DPAD_COMBO
const (
	MaskUp    DpadMask = 1 << 0
	MaskDown  DpadMask = 1 << 1
	MaskLeft  DpadMask = 1 << 2
	MaskRight DpadMask = 1 << 3
)
