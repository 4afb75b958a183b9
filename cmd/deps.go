package cmd

import (
	"io"
	"os"

	"github.com/JithinPanicker/day-flow/internal/config"
	"github.com/JithinPanicker/day-flow/internal/service"
	"github.com/JithinPanicker/day-flow/internal/store"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Exit       func(code int)
	StorePath  func() (string, error)
	ConfigPath func() (string, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		StorePath:  store.DefaultPath,
		ConfigPath: config.GetConfigPath,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// openServices builds the service layer from the configured paths.
// The caller owns the returned Services and must Close it.
func openServices() (*service.Services, error) {
	dbPath, err := deps.StorePath()
	if err != nil {
		return nil, err
	}

	configPath, err := deps.ConfigPath()
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

	return service.NewServicesWithStore(st, configPath, cfg), nil
}
