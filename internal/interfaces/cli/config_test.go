package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scriptherder.io/cli/internal/application/appconfig"
)

// testContainer wires a CLIContainer over a throwaway machine config,
// without the environment overlay so ambient variables cannot leak in.
func testContainer(t *testing.T) *CLIContainer {
	t.Helper()
	t.Chdir(t.TempDir())

	container := &CLIContainer{}
	container.Bootstrap = func(machinePath string, verbose bool) error {
		cfg, err := appconfig.Bootstrap(machinePath)
		if err != nil {
			return err
		}
		container.Config = cfg
		return nil
	}
	return container
}

func runCommand(t *testing.T, container *CLIContainer, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(container)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

// TestConfigCommand_SetThenGet tests the write-then-read flow end to end
func TestConfigCommand_SetThenGet(t *testing.T) {
	container := testContainer(t)
	machinePath := filepath.Join(t.TempDir(), ".config-sh.json")

	runCommand(t, container, "--config", machinePath, "config", "core.log.level", "debug")

	data, err := os.ReadFile(machinePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"core.log.level": "debug"`)

	out := runCommand(t, container, "--config", machinePath, "config", "core.log.level")
	assert.Contains(t, out, "debug")
}

// TestConfigCommand_MissingKey tests the read miss message
func TestConfigCommand_MissingKey(t *testing.T) {
	container := testContainer(t)
	machinePath := filepath.Join(t.TempDir(), ".config-sh.json")

	out := runCommand(t, container, "--config", machinePath, "config", "core.user.name")
	assert.Contains(t, out, "No value found for key: core.user.name")
}

// TestConfigCommand_ListKnownKeys tests --list output
func TestConfigCommand_ListKnownKeys(t *testing.T) {
	container := testContainer(t)
	machinePath := filepath.Join(t.TempDir(), ".config-sh.json")

	out := runCommand(t, container, "--config", machinePath, "config", "--list")
	assert.Contains(t, out, "core.repo.path")
	assert.Contains(t, out, "core.user.name")
	assert.Contains(t, out, "core.user.email")
	assert.Contains(t, out, "core.log.level")
}

// TestConfigCommand_NoArgs tests that a bare config call is an error
func TestConfigCommand_NoArgs(t *testing.T) {
	container := testContainer(t)
	machinePath := filepath.Join(t.TempDir(), ".config-sh.json")

	var out bytes.Buffer
	cmd := NewRootCommand(container)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", machinePath, "config"})
	assert.Error(t, cmd.Execute())
}
