// Package config defines the root command line of gpiomap.
package config

import "github.com/Alia5/gpiomap/internal/cmd"

// CLI is the Kong root. Flags may also come from JSON, YAML or TOML config files.
type CLI struct {
	Config string `help:"Path to a config file (.json, .yaml or .toml)" type:"path" env:"GPIOMAP_CONFIG"`

	cmd.Globals `embed:""`

	Decode  cmd.Decode         `cmd:"" help:"Expand a pin payload into its option selection"`
	Encode  cmd.Encode         `cmd:"" help:"Collapse an option selection into a pin payload"`
	Label   cmd.Label          `cmd:"" help:"Print the short label a pin payload is drawn with"`
	Options cmd.Options        `cmd:"" help:"List the selectable options"`
	Show    cmd.Show           `cmd:"" help:"Draw a profile's pin assignments on a board layout"`
	Assign  cmd.Assign         `cmd:"" help:"Assign options to one pin of a profile"`
	Profile cmd.ProfileCommand `cmd:"" help:"Profile file management"`
	Layout  cmd.LayoutCommand  `cmd:"" help:"Board layout tools"`
	Cfg     cmd.ConfigCommand  `cmd:"" name:"config" help:"Configuration file helpers"`
}
