package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Alia5/gpiomap/layout"
)

// LayoutCommand groups board layout subcommands.
type LayoutCommand struct {
	List LayoutList `cmd:"" help:"List the built-in board layouts"`
	Oled LayoutOLED `cmd:"" name:"oled" help:"Print DEFAULT_BOARD_LAYOUT_A/B macros for the firmware display"`
}

type LayoutList struct {
	Output `kong:"-"`
}

// Run is called by Kong when the layout list command is executed.
func (l *LayoutList) Run() error {
	for _, name := range layout.Builtin() {
		b, err := layout.Find(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(l.stdout(), "%s\t%dx%d\t%d pins\n", b.BoardLabel, b.Width, b.Height, len(b.Buttons))
	}
	return nil
}

type LayoutOLED struct {
	LayoutFlags `embed:""`
	Output      `kong:"-"`
}

// Run is called by Kong when the layout oled command is executed.
func (l *LayoutOLED) Run(logger *slog.Logger) error {
	b, err := l.resolve()
	if err != nil {
		return err
	}
	logger.Debug("Generating OLED layout macros", "layout", b.BoardLabel, "buttons", len(b.Buttons))
	_, err = fmt.Fprint(l.stdout(), layout.OLEDMacros(b))
	return err
}
