// Package appconfig assembles the concrete configuration source stack for a
// running process: the machine-scope document, the working-directory scope,
// the project scope reached through the machine file's redirect pointer, and
// an optional environment overlay.
package appconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"scriptherder.io/cli/internal/core/config"
	"scriptherder.io/cli/internal/infrastructure/storage"
)

// ConfigFileName is the conventional hidden filename identifying the
// cwd-scope and project-scope config files.
const ConfigFileName = ".config-sh.json"

// EnvPrefix is prepended (with "_") to the verbatim dotted key for
// environment lookups, e.g. SH_core.log.level.
const EnvPrefix = "SH"

// Scope pairs a registered source with a display name, in precedence order.
type Scope struct {
	Name   string
	Source config.Source
}

// AppConfig owns the resolver and the canonical machine config path that
// anchors relative project-scope redirects. Built once per process.
type AppConfig struct {
	Resolver *config.Resolver

	machinePath string
	machine     *config.Document
	scopes      []Scope
}

// Bootstrap builds the source stack from the machine config file path.
// The machine file and its parent directory are created when missing; the
// cwd scope is only picked up when its file already exists; the project
// scope is force-created once the redirect pointer is set. Failures here are
// fatal to startup and propagate.
func Bootstrap(machinePath string) (*AppConfig, error) {
	abs, err := filepath.Abs(machinePath)
	if err != nil {
		return nil, fmt.Errorf("appconfig: resolve machine path: %w", err)
	}

	a := &AppConfig{
		Resolver:    config.NewResolver(),
		machinePath: abs,
	}

	if err := ensureConfigFile(abs); err != nil {
		return nil, fmt.Errorf("appconfig: machine scope: %w", err)
	}
	machine, err := config.LoadDocument(storage.NewFileBacking(abs), true)
	if err != nil {
		return nil, fmt.Errorf("appconfig: machine scope: %w", err)
	}
	a.machine = machine
	a.registerDefault("machine", machine)

	cwd, err := a.loadCwdScope()
	if err != nil {
		return nil, fmt.Errorf("appconfig: cwd scope: %w", err)
	}
	a.registerDefault("cwd", cwd)

	project, err := a.loadProjectScope()
	if err != nil {
		return nil, fmt.Errorf("appconfig: project scope: %w", err)
	}
	a.registerDefault("project", project)

	return a, nil
}

// UseEnv layers the environment source on top of every registered scope.
func (a *AppConfig) UseEnv() {
	a.registerTop("environment", config.NewEnvSource(EnvPrefix))
}

// MachinePath returns the canonical path of the machine config file.
func (a *AppConfig) MachinePath() string {
	return a.machinePath
}

// Scopes lists the registered scopes in descending precedence order.
func (a *AppConfig) Scopes() []Scope {
	return a.scopes
}

// Sync persists every modified writable scope, one outcome per attempt.
func (a *AppConfig) Sync() []error {
	return a.Resolver.Sync()
}

// Value reads a recognized key through the resolver with conversion to T.
func Value[T any](a *AppConfig, key config.Key) (T, bool) {
	return config.Resolve[T](a.Resolver, string(key))
}

// SetValue writes a recognized key, reporting whether a mutable scope took it.
func SetValue[T any](a *AppConfig, key config.Key, value T) bool {
	return config.Put(a.Resolver, string(key), value)
}

// RepoPath returns the configured project directory, resolved the same way
// the project scope resolves it.
func (a *AppConfig) RepoPath() (string, bool) {
	raw, ok := Value[string](a, config.KeyRepoPath)
	if !ok {
		return "", false
	}
	return a.resolveAgainstMachine(raw), true
}

func (a *AppConfig) registerDefault(name string, s config.Source) {
	a.Resolver.RegisterDefault(s)
	a.scopes = append(a.scopes, Scope{Name: name, Source: s})
}

func (a *AppConfig) registerTop(name string, s config.Source) {
	a.Resolver.RegisterTop(s)
	a.scopes = append([]Scope{{Name: name, Source: s}}, a.scopes...)
}

// loadCwdScope picks up an existing config file in the working directory.
// Nothing is ever created for this scope.
func (a *AppConfig) loadCwdScope() (config.Source, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Absent{}, nil
	}
	path := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return config.Absent{}, nil
	}
	doc, err := config.LoadDocument(storage.NewFileBacking(path), true)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// loadProjectScope follows the machine document's redirect pointer. A
// relative pointer resolves against the machine file's parent directory, not
// the process working directory, so the machine file can point at a config
// that travels with a specific checkout.
func (a *AppConfig) loadProjectScope() (config.Source, error) {
	raw, ok := config.Get[string](a.machine, string(config.KeyRepoPath))
	if !ok {
		return config.Absent{}, nil
	}

	dir := a.resolveAgainstMachine(raw)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := ensureConfigFile(path); err != nil {
		return nil, err
	}
	doc, err := config.LoadDocument(storage.NewFileBacking(path), true)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (a *AppConfig) resolveAgainstMachine(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(filepath.Dir(a.machinePath), path)
}

// ensureConfigFile creates the parent directory and seeds the file with an
// empty object when missing.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte("{}"), 0o644)
}

// DefaultMachinePath locates the machine config file in the user's home
// directory, falling back to the bare filename when home is unknown.
func DefaultMachinePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(home, ConfigFileName)
}
