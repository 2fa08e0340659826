package testing

import (
	"sync"
	"testing"

	"github.com/Alia5/gpiomap/pinmap"
)

// MockStore is an in-memory profile.Store that remembers every Set.
type MockStore struct {
	Pins map[string]pinmap.Payload
	Sets []string
}

func (m *MockStore) Get(pinKey string) (pinmap.Payload, bool) {
	p, ok := m.Pins[pinKey]
	return p, ok
}

func (m *MockStore) Set(pinKey string, p pinmap.Payload) {
	if m.Pins == nil {
		m.Pins = map[string]pinmap.Payload{}
	}
	m.Pins[pinKey] = p
	m.Sets = append(m.Sets, pinKey)
}

// CreateMockStore returns a store holding pins.
func CreateMockStore(t *testing.T, pins map[string]pinmap.Payload) *MockStore {
	t.Helper()
	cp := make(map[string]pinmap.Payload, len(pins))
	for k, v := range pins {
		cp[k] = v
	}
	return &MockStore{Pins: cp}
}

// JournalEntry is one recorded pin change.
type JournalEntry struct {
	Profile string
	PinKey  string
	Before  pinmap.Payload
	After   pinmap.Payload
}

// MockJournal collects Record calls.
type MockJournal struct {
	mu      sync.Mutex
	Entries []JournalEntry
}

func (m *MockJournal) Record(profile, pinKey string, before, after pinmap.Payload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, JournalEntry{Profile: profile, PinKey: pinKey, Before: before, After: after})
}
