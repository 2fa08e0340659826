package pinmap

import "github.com/Alia5/gpiomap/gpio"

// IsEditable reports whether a pin holding a may be edited at all. Reserved and
// addon-owned pins are locked.
func IsEditable(a gpio.Action) bool {
	return a != gpio.Reserved && a != gpio.AssignedToAddon
}

// IsMultiCapable reports whether the editor for a pin holding a may offer a
// multi-selection.
func IsMultiCapable(a gpio.Action) bool {
	return IsEditable(a)
}
