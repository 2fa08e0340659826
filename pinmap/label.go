package pinmap

import (
	"strings"

	"github.com/Alia5/gpiomap/gpio"
)

const actionLabelPrefix = "BUTTON_PRESS_"

// Short labels drawn on a pin.
const (
	LabelNone     = "---"
	LabelAddon    = "Addon"
	LabelReserved = "Rsvd"
	LabelCombo    = "Combo"
	LabelUnknown  = "?"
)

// NameLookup provides custom display names keyed by button key (B1, S2, ...).
// gpio.ButtonNames implements it.
type NameLookup interface {
	Lookup(key string) (string, bool)
}

// Translator resolves a message key such as "Proto:GpioAction.NONE".
type Translator func(key string) string

// LabelKey derives the lookup key of an option label: the text after the last
// "BUTTON_PRESS_", or the label itself.
func LabelKey(label string) string {
	if i := strings.LastIndex(label, actionLabelPrefix); i >= 0 {
		return label[i+len(actionLabelPrefix):]
	}
	return label
}

// ResolveLabel returns the short text shown on a pin. names may be nil.
func (c *Catalog) ResolveLabel(p Payload, names NameLookup) string {
	switch p.Action {
	case gpio.None:
		return LabelNone
	case gpio.AssignedToAddon:
		return LabelAddon
	case gpio.Reserved:
		return LabelReserved
	}

	sel := c.Decode(p)
	switch {
	case len(sel) == 0:
		return LabelNone
	case len(sel) > 1:
		return LabelCombo
	}

	key := LabelKey(sel[0].Label())
	if key == "" {
		return LabelUnknown
	}
	if names != nil {
		if name, ok := names.Lookup(key); ok {
			return name
		}
	}
	return key
}

// OptionLabel returns the text for an option in a selector: the custom button
// name when there is one, otherwise the translated action name.
func OptionLabel(o Option, names NameLookup, t Translator) string {
	label := o.Label()
	if key := LabelKey(label); key != "" && names != nil {
		if name, ok := names.Lookup(key); ok {
			return name
		}
	}
	if t == nil {
		return label
	}
	return t("Proto:GpioAction." + label)
}
