package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Alia5/gpiomap/gpio"
	"github.com/Alia5/gpiomap/internal/log"
	"github.com/Alia5/gpiomap/pinmap"
	"github.com/Alia5/gpiomap/profile"
)

// Assign edits one pin of a profile.
type Assign struct {
	ProfileFlags `embed:""`
	Pin          int      `help:"GPIO pin number" required:"" short:"p"`
	Append       bool     `help:"Add to the pin's current selection instead of replacing it"`
	Selection    []string `arg:"" optional:"" help:"Option labels to select, most recent last; none clears the pin"`
	Output       `kong:"-"`
}

// Run is called by Kong when the assign command is executed.
func (a *Assign) Run(logger *slog.Logger, journal log.Journal, catalog *pinmap.Catalog, names gpio.ButtonNames) error {
	path, file, prof, err := a.load()
	if err != nil {
		return err
	}
	key := pinmap.PinKey(a.Pin)

	sel, err := lookupOptions(catalog, a.Selection)
	if err != nil {
		return err
	}
	if a.Append {
		if current, ok := prof.Get(key); ok {
			sel = append(catalog.Decode(current), sel...)
		}
	}

	before, after, err := profile.Apply(prof, key, sel)
	if err != nil {
		return err
	}
	journal.Record(prof.Label, key, before, after)

	if err := profile.Save(path, file); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	label := catalog.ResolveLabel(after, names)
	logger.Info("Assigned pin", "profile", prof.Label, "pin", key, "action", after.Action, "label", label)
	_, err = fmt.Fprintf(a.stdout(), "GP%d: %s\n", a.Pin, label)
	return err
}
