package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/gpiomap/pinmap"
)

// File is the on-disk collection of profiles.
type File struct {
	Profiles []Profile `json:"profiles" yaml:"profiles" toml:"profiles"`
}

// Profile returns the profile at index.
func (f *File) Profile(index int) (*Profile, error) {
	if index < 0 || index >= len(f.Profiles) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrProfileIndex, index, len(f.Profiles))
	}
	return &f.Profiles[index], nil
}

// SetPin stores a payload for one pin of the profile at index.
func (f *File) SetPin(index int, pinKey string, p pinmap.Payload) error {
	prof, err := f.Profile(index)
	if err != nil {
		return err
	}
	prof.Set(pinKey, p)
	return nil
}

// FormatFromPath picks json, yaml or toml from the file extension.
func FormatFromPath(p string) (string, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(p))
	}
}

// Marshal encodes f in the given format.
func Marshal(f *File, format string) ([]byte, error) {
	switch format {
	case "json":
		b, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "yaml":
		return yaml.Marshal(f)
	case "toml":
		return toml.Marshal(*f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Unmarshal decodes data in the given format.
func Unmarshal(data []byte, format string) (*File, error) {
	var f File
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(data, &f)
	case "yaml":
		err = yaml.Unmarshal(data, &f)
	case "toml":
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s profiles: %w", format, err)
	}
	return &f, nil
}

// Load reads a profile file, picking the format by extension.
func Load(p string) (*File, error) {
	format, err := FormatFromPath(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data, format)
}

// Save writes f to p, creating the parent directory if needed.
func Save(p string, f *File) error {
	format, err := FormatFromPath(p)
	if err != nil {
		return err
	}
	data, err := Marshal(f, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}
