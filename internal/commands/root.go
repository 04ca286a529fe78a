package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/mps7/internal/buildinfo"
	"github.com/cleared-dev/mps7/internal/config"
	"github.com/cleared-dev/mps7/internal/ledger"
	"github.com/cleared-dev/mps7/internal/logger"
)

type globalFlags struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:     "mps7",
		Short:   "Read MPS7 binary transaction logs",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.DefaultFile, "config file")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(newReportCommand(&g))
	rootCmd.AddCommand(newBalanceCommand(&g))
	rootCmd.AddCommand(newCheckCommand(&g))
	rootCmd.AddCommand(newInitConfigCommand())

	return rootCmd
}

func (g *globalFlags) logger(cmd *cobra.Command) zerolog.Logger {
	return logger.New(cmd.ErrOrStderr(), g.verbose)
}

// loadConfig reads the config file; a missing default file is not an error.
func (g *globalFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.Load(g.configPath)
	}
	return config.LoadOrDefault(g.configPath)
}

// parseFile reads a whole log into memory and parses it.
func parseFile(log zerolog.Logger, path string) (*ledger.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debug().Str("file", path).Int("bytes", len(data)).Msg("read log")

	res, err := ledger.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().
		Uint8("version", res.Header.Version).
		Int("entries", len(res.Entries)).
		Int("users", res.State.Len()).
		Msg("parsed log")
	return res, nil
}
