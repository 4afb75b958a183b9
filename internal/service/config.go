package service

import (
	"fmt"

	"github.com/JithinPanicker/day-flow/internal/config"
)

// ConfigService provides access to the application configuration
type ConfigService struct {
	configPath string
	cfg        config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{configPath: configPath, cfg: cfg}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.cfg
}

// Update saves the configuration to disk and keeps the in-memory copy in sync.
func (s *ConfigService) Update(cfg config.Config) error {
	if err := config.Save(s.configPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	s.cfg = cfg
	return nil
}

// Reload re-reads the configuration from disk.
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}
