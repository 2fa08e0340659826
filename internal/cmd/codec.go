package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/gpiomap/gpio"
	applog "github.com/Alia5/gpiomap/internal/log"
	"github.com/Alia5/gpiomap/pinmap"
)

// Decode prints the selection a payload expands to.
type Decode struct {
	PayloadFlags `embed:""`
	Output       `kong:"-"`
}

// Run is called by Kong when the decode command is executed.
func (d *Decode) Run(logger *slog.Logger, catalog *pinmap.Catalog, names gpio.ButtonNames) error {
	p, err := d.payload()
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		logger.Warn("Payload breaks mask invariants; stray bits are ignored", "error", err)
	}
	sel := catalog.Decode(p)
	logger.Log(context.Background(), applog.LevelTrace, "Decoded payload", "action", p.Action, "options", len(sel))
	for _, o := range sel {
		fmt.Fprintf(d.stdout(), "%s\t%s\n", o.Label(), pinmap.OptionLabel(o, names, nil))
	}
	return nil
}

// Encode prints the payload a selection collapses to.
type Encode struct {
	Selection []string `arg:"" optional:"" help:"Selected option labels, most recent last (see 'gpiomap options')"`
	Format    string   `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output    `kong:"-"`
}

// Run is called by Kong when the encode command is executed.
func (e *Encode) Run(logger *slog.Logger, catalog *pinmap.Catalog) error {
	sel, err := lookupOptions(catalog, e.Selection)
	if err != nil {
		return err
	}
	p := pinmap.Encode(sel)
	logger.Debug("Encoded selection", "options", len(sel), "action", p.Action)

	var data []byte
	switch e.Format {
	case "yaml":
		data, err = yaml.Marshal(p)
	case "toml":
		data, err = toml.Marshal(p)
	default:
		data, err = json.Marshal(p)
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	_, err = e.stdout().Write(data)
	return err
}

// Label prints the short text a pin with this payload shows.
type Label struct {
	PayloadFlags `embed:""`
	Output       `kong:"-"`
}

// Run is called by Kong when the label command is executed.
func (l *Label) Run(catalog *pinmap.Catalog, names gpio.ButtonNames) error {
	p, err := l.payload()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(l.stdout(), catalog.ResolveLabel(p, names))
	return err
}

// Options lists every selectable option by group.
type Options struct {
	Output `kong:"-"`
}

// Run is called by Kong when the options command is executed.
func (o *Options) Run(catalog *pinmap.Catalog, names gpio.ButtonNames) error {
	w := o.stdout()
	for _, g := range catalog.Groups() {
		fmt.Fprintf(w, "%s:\n", g.Label)
		for _, opt := range g.Options {
			fmt.Fprintf(w, "  %-30s %s\n", opt.Label(), pinmap.OptionLabel(opt, names, nil))
		}
	}
	return nil
}
