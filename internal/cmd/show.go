package cmd

import (
	"log/slog"
	"os"

	"github.com/Alia5/gpiomap/gpio"
	"github.com/Alia5/gpiomap/internal/view"
	"github.com/Alia5/gpiomap/pinmap"
)

// Show draws a profile's assignments on a board layout.
type Show struct {
	ProfileFlags `embed:""`
	LayoutFlags  `embed:""`
	Select       int `help:"Highlight this GPIO pin" default:"-1"`
	Width        int `help:"Board width in columns (0 = terminal width)" default:"0"`
	Output       `kong:"-"`
}

// Run is called by Kong when the show command is executed.
func (s *Show) Run(logger *slog.Logger, catalog *pinmap.Catalog, names gpio.ButtonNames) error {
	l, err := s.resolve()
	if err != nil {
		return err
	}
	_, _, prof, err := s.load()
	if err != nil {
		return err
	}
	if err := prof.Validate(); err != nil {
		logger.Warn("Profile has invalid pins", "profile", prof.Label, "error", err)
	}

	spots := view.Spots(l, prof, catalog, names, s.Select)
	if skipped := len(l.Buttons) - len(spots); skipped > 0 {
		logger.Debug("Skipped layout pins without assignment", "count", skipped)
	}

	width := s.Width
	if width <= 0 {
		width = view.TerminalWidth(os.Stdout, 80)
	}
	return view.Render(s.stdout(), l, spots, width)
}
