package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Alia5/gpiomap/gpio"
	"github.com/Alia5/gpiomap/internal/configpaths"
	"github.com/Alia5/gpiomap/layout"
	"github.com/Alia5/gpiomap/pinmap"
	"github.com/Alia5/gpiomap/profile"
)

// Output lets tests capture what a command prints.
type Output struct {
	Out io.Writer `kong:"-"`
}

func (o Output) stdout() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// ProfileFlags select one profile in a profile file.
type ProfileFlags struct {
	Profiles string `help:"Profile file (.json, .yaml or .toml). Defaults to profiles.json in the config dir" type:"path" env:"GPIOMAP_PROFILES"`
	Index    int    `help:"Profile index within the file" default:"0" short:"i"`
}

func (f ProfileFlags) path() (string, error) {
	if f.Profiles != "" {
		return f.Profiles, nil
	}
	p, err := configpaths.DefaultProfilesPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve default profiles path: %w", err)
	}
	return p, nil
}

func (f ProfileFlags) load() (string, *profile.File, *profile.Profile, error) {
	path, err := f.path()
	if err != nil {
		return "", nil, nil, err
	}
	file, err := profile.Load(path)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	prof, err := file.Profile(f.Index)
	if err != nil {
		return "", nil, nil, err
	}
	return path, file, prof, nil
}

// LayoutFlags select a built-in board layout or a BoardLayout.json file.
type LayoutFlags struct {
	Layout     string `help:"Built-in board layout label" default:"Pico Leverless" env:"GPIOMAP_LAYOUT"`
	LayoutFile string `help:"Board layout JSON file; overrides --layout" type:"existingfile"`
}

func (f LayoutFlags) resolve() (*layout.BoardLayout, error) {
	if f.LayoutFile != "" {
		return layout.LoadFile(f.LayoutFile)
	}
	return layout.Find(f.Layout)
}

// PayloadFlags describe a payload on the command line.
type PayloadFlags struct {
	Action     string `help:"GPIO action name or value" default:"NONE" short:"a"`
	ButtonMask uint32 `help:"customButtonMask bitfield" default:"0"`
	DpadMask   uint32 `help:"customDpadMask bitfield" default:"0"`
}

func (f PayloadFlags) payload() (pinmap.Payload, error) {
	a, err := gpio.ParseAction(f.Action)
	if err != nil {
		return pinmap.Payload{}, err
	}
	return pinmap.Payload{Action: a, CustomButtonMask: f.ButtonMask, CustomDpadMask: f.DpadMask}, nil
}

func lookupOptions(c *pinmap.Catalog, labels []string) ([]pinmap.Option, error) {
	out := make([]pinmap.Option, 0, len(labels))
	for _, l := range labels {
		o, ok := c.Lookup(l)
		if !ok {
			return nil, fmt.Errorf("unknown option %q; see 'gpiomap options'", l)
		}
		out = append(out, o)
	}
	return out, nil
}
