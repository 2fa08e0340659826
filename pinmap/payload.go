// Package pinmap converts between the persisted per-pin Payload and the ordered
// option selection a pin editor works with.
//
// Everything in this package is a pure function of its arguments. Callers own
// the pin assignment set and commit the Payloads returned here.
package pinmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Alia5/gpiomap/gpio"
)

var (
	ErrMaskWithoutCombo = errors.New("mask set on a non-combo action")
	ErrBothMasks        = errors.New("button and dpad masks both set")
	ErrInvalidPinKey    = errors.New("invalid pin key")
)

// Payload is the persisted assignment of a single pin.
type Payload struct {
	Action           gpio.Action `json:"action" yaml:"action" toml:"action"`
	CustomButtonMask uint32      `json:"customButtonMask" yaml:"customButtonMask" toml:"customButtonMask"`
	CustomDpadMask   uint32      `json:"customDpadMask" yaml:"customDpadMask" toml:"customDpadMask"`
}

// None returns the "no assignment" payload.
func None() Payload {
	return Payload{Action: gpio.None}
}

// Single returns a payload for a plain action with both masks cleared.
func Single(a gpio.Action) Payload {
	return Payload{Action: a}
}

// Validate checks the mask invariants. Decode tolerates invalid payloads; this
// is for loaders that want to report them.
func (p Payload) Validate() error {
	if p.CustomButtonMask != 0 && p.CustomDpadMask != 0 {
		return ErrBothMasks
	}
	switch {
	case p.CustomButtonMask != 0 && p.Action != gpio.CustomButtonCombo:
		return fmt.Errorf("%w: %s has customButtonMask %#x", ErrMaskWithoutCombo, p.Action, p.CustomButtonMask)
	case p.CustomDpadMask != 0 && p.Action != gpio.CustomDpadCombo:
		return fmt.Errorf("%w: %s has customDpadMask %#x", ErrMaskWithoutCombo, p.Action, p.CustomDpadMask)
	}
	return nil
}

// PinKey formats the store key for a pin number, e.g. 3 => "pin03".
func PinKey(pin int) string {
	return fmt.Sprintf("pin%02d", pin)
}

// ParsePinKey is the inverse of PinKey.
func ParsePinKey(key string) (int, error) {
	digits, ok := strings.CutPrefix(key, "pin")
	if !ok || len(digits) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPinKey, key)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPinKey, key)
	}
	return n, nil
}
