// Package di wires the application together.
package di

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"scriptherder.io/cli/internal/application/appconfig"
	"scriptherder.io/cli/internal/infrastructure/gitrepo"
	"scriptherder.io/cli/internal/infrastructure/logging"
	"scriptherder.io/cli/internal/interfaces/cli"
)

// Container holds all application dependencies. Configuration and the
// logger are built lazily by initialize, after the CLI has parsed the
// machine config path from its persistent flags.
type Container struct {
	Config    *appconfig.AppConfig
	Logger    *zap.Logger
	Inspector *gitrepo.Inspector

	CLI *cli.CLIContainer
}

// NewContainer creates the dependency injection container.
func NewContainer() *Container {
	c := &Container{
		Inspector: gitrepo.NewInspector(),
	}
	c.CLI = &cli.CLIContainer{
		Inspector: c.Inspector,
		Bootstrap: c.initialize,
	}
	return c
}

// initialize assembles the configuration stack and the logger. The
// environment overlay is always registered so SH_-prefixed variables outrank
// every file scope.
func (c *Container) initialize(machinePath string, verbose bool) error {
	cfg, err := appconfig.Bootstrap(machinePath)
	if err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	cfg.UseEnv()

	var logger *zap.Logger
	if verbose {
		logger, err = logging.New(zapcore.DebugLevel)
	} else {
		logger, err = logging.FromConfig(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.Config = cfg
	c.Logger = logger
	c.CLI.Config = cfg
	c.CLI.Logger = logger

	logger.Debug("configuration initialized",
		zap.String("machine_path", cfg.MachinePath()),
		zap.Int("scopes", len(cfg.Scopes())),
	)
	return nil
}
