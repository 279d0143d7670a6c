package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-palette/pkg/catalog"
	"github.com/mattsolo1/grove-palette/pkg/filter"
	"github.com/mattsolo1/grove-palette/pkg/installed"
	"github.com/mattsolo1/grove-palette/pkg/premium"
	"github.com/mattsolo1/grove-palette/pkg/search"
	"github.com/mattsolo1/grove-palette/pkg/sections"
	"github.com/mattsolo1/grove-palette/pkg/session"
)

// Service is the palette core: catalog, classification, search, aggregation
// and the session state of one sidebar.
type Service struct {
	Catalog    *catalog.Store
	Classifier *premium.Classifier
	Filter     *filter.Filter
	Engine     *search.Engine
	Aggregator *sections.Aggregator
	Session    *session.State
	Installed  installed.Store
	Config     *Config

	logger *logrus.Entry

	mu          sync.RWMutex
	premiumUser bool
}

// Config holds service configuration
type Config struct {
	// DataDir holds the installed-apps database. Empty keeps installs in memory.
	DataDir string
	// CatalogDir overrides the embedded catalog file by file.
	CatalogDir string
	PremiumUser bool
	// Keywords are extra premium markers matched as plain substrings.
	Keywords []string

	Latency          time.Duration
	LibraryLatency   time.Duration
	TemplatesLatency time.Duration
}

// DefaultConfig returns an in-memory configuration over the embedded catalog.
func DefaultConfig() *Config {
	return &Config{Keywords: premium.DefaultKeywords}
}

// New creates a palette service
func New(config *Config, logger *logrus.Entry) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = logrus.NewEntry(l)
	}

	var (
		store *catalog.Store
		err   error
	)
	if config.CatalogDir != "" {
		store, err = catalog.LoadDir(config.CatalogDir)
	} else {
		store, err = catalog.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	known := installed.KnownApps(func(id string) bool {
		_, ok := store.App(id)
		return ok
	})
	var inst installed.Store
	if config.DataDir != "" {
		inst, err = installed.NewRegistry(config.DataDir, known)
		if err != nil {
			return nil, fmt.Errorf("open installed registry: %w", err)
		}
	} else {
		inst = installed.NewMemory(known)
	}

	return NewWithStores(config, store, inst, logger), nil
}

// NewWithStores wires a service around an already loaded catalog and
// installed-apps store.
func NewWithStores(config *Config, store *catalog.Store, inst installed.Store, logger *logrus.Entry) *Service {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = logrus.NewEntry(l)
	}

	index := premium.NewIndex(store.Apps(), config.Keywords)
	classifier := premium.NewClassifier(index, logger)
	engine := search.NewEngine(store, logger)

	s := &Service{
		Catalog:     store,
		Classifier:  classifier,
		Filter:      filter.New(classifier),
		Engine:      engine,
		Aggregator:  sections.New(store, engine, logger),
		Installed:   inst,
		Config:      config,
		logger:      logger.WithField("component", "service"),
		premiumUser: config.PremiumUser,
	}
	s.Session = session.New(classifier, session.WithTier(s), session.WithLogger(logger))

	s.logger.WithFields(logrus.Fields{
		"actions":      store.TotalActionCount(),
		"apps":         len(store.Apps()),
		"premium_apps": index.Size(),
	}).Debug("Palette service ready")
	return s
}

// Close releases the installed-apps store if it holds resources.
func (s *Service) Close() error {
	if c, ok := s.Installed.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// IsPremiumUser implements session.Tier.
func (s *Service) IsPremiumUser() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.premiumUser
}

// SetPremiumUser changes the account tier for the rest of the session.
func (s *Service) SetPremiumUser(v bool) {
	s.mu.Lock()
	s.premiumUser = v
	s.mu.Unlock()
}
