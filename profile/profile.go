// Package profile holds pin assignment sets and persists them to disk.
package profile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Alia5/gpiomap/layout"
	"github.com/Alia5/gpiomap/pinmap"
)

var (
	ErrUnknownPin     = errors.New("pin has no assignment")
	ErrProfileIndex   = errors.New("profile index out of range")
	ErrPinLocked      = errors.New("pin is locked")
	ErrUnknownFormat  = errors.New("unsupported profile file format")
	ErrInvalidPayload = errors.New("invalid pin payload")
)

// Store is the per-pin view of an assignment set.
type Store interface {
	Get(pinKey string) (pinmap.Payload, bool)
	Set(pinKey string, p pinmap.Payload)
}

// Profile is one named pin assignment set.
type Profile struct {
	Label   string                    `json:"profileLabel" yaml:"profileLabel" toml:"profileLabel"`
	Enabled bool                      `json:"enabled" yaml:"enabled" toml:"enabled"`
	Pins    map[string]pinmap.Payload `json:"pins" yaml:"pins" toml:"pins"`
}

// New creates a profile with every pin of l set to NONE.
func New(label string, l *layout.BoardLayout) *Profile {
	p := &Profile{
		Label:   label,
		Enabled: true,
		Pins:    make(map[string]pinmap.Payload, len(l.Buttons)),
	}
	for _, b := range l.Buttons {
		p.Pins[pinmap.PinKey(b.Pin)] = pinmap.None()
	}
	return p
}

func (p *Profile) Get(pinKey string) (pinmap.Payload, bool) {
	v, ok := p.Pins[pinKey]
	return v, ok
}

func (p *Profile) Set(pinKey string, v pinmap.Payload) {
	if p.Pins == nil {
		p.Pins = map[string]pinmap.Payload{}
	}
	p.Pins[pinKey] = v
}

// PinKeys returns the keys of all assigned pins, sorted.
func (p *Profile) PinKeys() []string {
	keys := make([]string, 0, len(p.Pins))
	for k := range p.Pins {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate reports every pin whose payload breaks the mask invariants.
func (p *Profile) Validate() error {
	var errs []error
	for _, k := range p.PinKeys() {
		if err := p.Pins[k].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w %s: %w", ErrInvalidPayload, k, err))
		}
	}
	return errors.Join(errs...)
}

// Apply encodes selection and stores it for pinKey. Locked and unknown pins are
// refused. It returns the previous and the new payload.
func Apply(s Store, pinKey string, selection []pinmap.Option) (before, after pinmap.Payload, err error) {
	before, ok := s.Get(pinKey)
	if !ok {
		return before, before, fmt.Errorf("%w: %s", ErrUnknownPin, pinKey)
	}
	if !pinmap.IsEditable(before.Action) {
		return before, before, fmt.Errorf("%w: %s is %s", ErrPinLocked, pinKey, before.Action)
	}
	after = pinmap.Encode(selection)
	s.Set(pinKey, after)
	return before, after, nil
}
