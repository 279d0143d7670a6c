// Package installed tracks which connector apps the user has installed.
package installed

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrUnknownApp is returned when installing an id the catalog does not know.
var ErrUnknownApp = errors.New("unknown app")

// Record is one installation.
type Record struct {
	AppID       string
	InstalledAt time.Time
}

// Store is the installed-apps collaborator. InstalledIDs returns ids in
// install order. Install is idempotent; Uninstall of an absent id is a no-op.
type Store interface {
	InstalledIDs() ([]string, error)
	Records() ([]Record, error)
	Install(id string) error
	Uninstall(id string) error
}

type options struct {
	known func(id string) bool
	now   func() time.Time
}

// Option configures a Store.
type Option func(*options)

// KnownApps restricts installs to ids accepted by known.
func KnownApps(known func(id string) bool) Option {
	return func(o *options) {
		o.known = known
	}
}

// WithClock overrides the time source used for install timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) *options {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) check(id string) error {
	if o.known != nil && !o.known(id) {
		return fmt.Errorf("%w: %q", ErrUnknownApp, id)
	}
	return nil
}

// Memory is an in-process Store.
type Memory struct {
	mu      sync.RWMutex
	opts    *options
	records []Record
}

// NewMemory creates an empty in-memory store.
func NewMemory(opts ...Option) *Memory {
	return &Memory{opts: buildOptions(opts)}
}

func (m *Memory) InstalledIDs() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, len(m.records))
	for i, r := range m.records {
		ids[i] = r.AppID
	}
	return ids, nil
}

func (m *Memory) Records() ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Record(nil), m.records...), nil
}

func (m *Memory) Install(id string) error {
	if err := m.opts.check(id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.AppID == id {
			return nil
		}
	}
	m.records = append(m.records, Record{AppID: id, InstalledAt: m.opts.now()})
	return nil
}

func (m *Memory) Uninstall(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.records {
		if r.AppID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}
