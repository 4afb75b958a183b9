// Package service provides the business logic layer for the day-flow
// application. It wraps the record store, the activity timer subsystem, and
// config, providing a clean API for both CLI and TUI frontends.
package service

import (
	"github.com/JithinPanicker/day-flow/internal/config"
	"github.com/JithinPanicker/day-flow/internal/store"
)

// Services holds all service instances used by the application
type Services struct {
	Entry  *EntryService
	Timer  *TimerService
	Search *SearchService
	Config *ConfigService

	store *store.Store
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	dbPath, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithStore(st, configPath, cfg), nil
}

// NewServicesWithStore creates a Services instance around an already open
// store (useful for testing).
func NewServicesWithStore(st *store.Store, configPath string, cfg config.Config) *Services {
	entryService := NewEntryService(st)
	timerService := NewTimerService(st, cfg)
	searchService := NewSearchService(st)
	configService := NewConfigService(configPath, cfg)

	return &Services{
		Entry:  entryService,
		Timer:  timerService,
		Search: searchService,
		Config: configService,
		store:  st,
	}
}

// Close releases the underlying store.
func (s *Services) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
