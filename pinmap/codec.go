package pinmap

import "github.com/Alia5/gpiomap/gpio"

// Decode expands a payload into the selection a multi-select editor shows.
// Combo payloads yield their mask options in catalog order; bits with no
// catalog option are dropped. A combo with an empty mask decodes to nothing.
func (c *Catalog) Decode(p Payload) []Option {
	switch p.Action {
	case gpio.CustomButtonCombo:
		out := []Option{}
		for _, o := range c.buttons {
			if p.CustomButtonMask&uint32(o.Bit) != 0 {
				out = append(out, o)
			}
		}
		return out
	case gpio.CustomDpadCombo:
		out := []Option{}
		for _, o := range c.dpad {
			if p.CustomDpadMask&uint32(o.Bit) != 0 {
				out = append(out, o)
			}
		}
		return out
	default:
		return []Option{ActionOption{Action: p.Action}}
	}
}

// Encode collapses a selection into a payload. selection is ordered with the
// most recently added option last.
//
//   - no options: NONE
//   - one option: that option's action with clear masks
//   - several, last one an action: the action replaces the combo
//   - several, otherwise: a CUSTOM_BUTTON_COMBO with every mask bit XORed in
//
// The combo fold is seeded with CUSTOM_BUTTON_COMBO even when only dpad
// options are selected.
func Encode(selection []Option) Payload {
	switch len(selection) {
	case 0:
		return None()
	case 1:
		return Single(selection[0].Value())
	}

	if last, ok := selection[len(selection)-1].(ActionOption); ok {
		return Single(last.Action)
	}

	p := Payload{Action: gpio.CustomButtonCombo}
	for _, o := range selection {
		switch o := o.(type) {
		case ButtonMaskOption:
			p.CustomButtonMask ^= uint32(o.Bit)
		case DpadMaskOption:
			p.CustomDpadMask ^= uint32(o.Bit)
		case ActionOption:
			// superseded by the mask options that follow it
		}
	}
	return p
}
