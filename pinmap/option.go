package pinmap

import "github.com/Alia5/gpiomap/gpio"

// Option is one entry a pin editor can select. It is one of ActionOption,
// ButtonMaskOption or DpadMaskOption.
type Option interface {
	// Label is the stable, catalog-unique identifier of the option.
	Label() string
	// Value is the action the option stands for when selected on its own.
	Value() gpio.Action

	isOption()
}

// ActionOption selects a discrete action.
type ActionOption struct {
	Action gpio.Action
}

func (o ActionOption) Label() string      { return o.Action.String() }
func (o ActionOption) Value() gpio.Action { return o.Action }
func (ActionOption) isOption()            {}

// ButtonMaskOption toggles one bit of the custom button mask.
type ButtonMaskOption struct {
	Name   string
	Bit    gpio.ButtonMask
	Action gpio.Action
}

func (o ButtonMaskOption) Label() string      { return o.Name }
func (o ButtonMaskOption) Value() gpio.Action { return o.Action }
func (ButtonMaskOption) isOption()            {}

// DpadMaskOption toggles one bit of the custom dpad mask.
type DpadMaskOption struct {
	Name   string
	Bit    gpio.DpadMask
	Action gpio.Action
}

func (o DpadMaskOption) Label() string      { return o.Name }
func (o DpadMaskOption) Value() gpio.Action { return o.Action }
func (DpadMaskOption) isOption()            {}
