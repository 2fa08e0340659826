// Package view turns a profile and a board layout into pin spots and draws them
// on a terminal.
package view

import (
	"fmt"

	"github.com/Alia5/gpiomap/layout"
	"github.com/Alia5/gpiomap/pinmap"
	"github.com/Alia5/gpiomap/profile"
)

// NoSelection marks that no pin is selected.
const NoSelection = -1

// Spot is the drawable state of one pin.
type Spot struct {
	Position layout.ButtonPosition
	Payload  pinmap.Payload
	// ActionLabel is the short assignment text, e.g. "A", "Combo", "---".
	ActionLabel string
	Title       string
	Selected    bool
	Disabled    bool
	None        bool
}

// Spots resolves every layout pin that has a payload in s. Pins without a
// payload are skipped.
func Spots(l *layout.BoardLayout, s profile.Store, c *pinmap.Catalog, names pinmap.NameLookup, selected int) []Spot {
	out := make([]Spot, 0, len(l.Buttons))
	for _, b := range l.Buttons {
		p, ok := s.Get(pinmap.PinKey(b.Pin))
		if !ok {
			continue
		}
		label := c.ResolveLabel(p, names)
		out = append(out, Spot{
			Position:    b,
			Payload:     p,
			ActionLabel: label,
			Title:       fmt.Sprintf("GP%d - %s", b.Pin, b.Label),
			Selected:    b.Pin == selected,
			Disabled:    !pinmap.IsEditable(p.Action),
			None:        label == pinmap.LabelNone,
		})
	}
	return out
}
