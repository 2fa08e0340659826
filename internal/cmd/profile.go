package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/gpiomap/profile"
)

// ProfileCommand groups profile-related subcommands.
type ProfileCommand struct {
	Init ProfileInit `cmd:"" help:"Add a profile with every layout pin unassigned"`
	List ProfileList `cmd:"" help:"List the profiles in a profile file"`
}

// ProfileInit appends a fresh profile to a profile file, creating the file if needed.
type ProfileInit struct {
	LayoutFlags `embed:""`
	Profiles    string `help:"Profile file (.json, .yaml or .toml). Defaults to profiles.json in the config dir" type:"path" env:"GPIOMAP_PROFILES"`
	Label       string `help:"Profile label" default:"Profile"`
	Disabled    bool   `help:"Create the profile disabled"`
}

// Run is called by Kong when the profile init command is executed.
func (p *ProfileInit) Run(logger *slog.Logger) error {
	l, err := p.resolve()
	if err != nil {
		return err
	}
	path, err := ProfileFlags{Profiles: p.Profiles}.path()
	if err != nil {
		return err
	}

	file := &profile.File{}
	if existing, err := profile.Load(path); err == nil {
		file = existing
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	prof := profile.New(p.Label, l)
	prof.Enabled = !p.Disabled
	file.Profiles = append(file.Profiles, *prof)

	if err := profile.Save(path, file); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}
	logger.Info("Created profile", "path", path, "index", len(file.Profiles)-1, "label", p.Label, "layout", l.BoardLabel, "pins", len(prof.Pins))
	return nil
}

// ProfileList prints index, label and state of every profile.
type ProfileList struct {
	Profiles string `help:"Profile file (.json, .yaml or .toml). Defaults to profiles.json in the config dir" type:"path" env:"GPIOMAP_PROFILES"`
	Output   `kong:"-"`
}

// Run is called by Kong when the profile list command is executed.
func (p *ProfileList) Run() error {
	path, err := ProfileFlags{Profiles: p.Profiles}.path()
	if err != nil {
		return err
	}
	file, err := profile.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}
	for i, prof := range file.Profiles {
		state := "enabled"
		if !prof.Enabled {
			state = "disabled"
		}
		fmt.Fprintf(p.stdout(), "%d\t%s\t%s\t%d pins\n", i, prof.Label, state, len(prof.Pins))
	}
	return nil
}
