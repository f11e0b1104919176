package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scriptherder.io/cli/internal/application/appconfig"
	"scriptherder.io/cli/internal/core/ports"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds the dependencies for CLI commands. Config and Logger
// are populated by Bootstrap once the persistent flags have been parsed.
type CLIContainer struct {
	Config    *appconfig.AppConfig
	Logger    *zap.Logger
	Inspector ports.RepoInspector

	// Bootstrap builds Config and Logger for the given machine config path.
	// Wired by the DI container.
	Bootstrap func(machinePath string, verbose bool) error
}

// NewRootCommand represents the base command when called without any
// subcommands.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sherd",
		Short: "Script Herder CLI - layered configuration and repository tools",
		Long: `Script Herder CLI resolves configuration from machine, working-directory,
project, and environment scopes into one view with deterministic precedence.

Values read through the CLI come from the highest-precedence scope that
defines them; writes land in the highest-precedence writable scope.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			machinePath, _ := cmd.Flags().GetString("config")
			if machinePath == "" {
				machinePath = appconfig.DefaultMachinePath()
			}
			verbose, _ := cmd.Flags().GetBool("verbose")

			if err := container.Bootstrap(machinePath, verbose); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().String("config", "", "Machine config file path (default is $HOME/"+appconfig.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolP("verbose", "t", false, "Verbose output")

	rootCmd.AddCommand(NewConfigCommand(container))
	rootCmd.AddCommand(NewRepoCommand(container))
	rootCmd.AddCommand(NewBrowseCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary.
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute adds all child commands to the root command and runs it.
func Execute(container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
