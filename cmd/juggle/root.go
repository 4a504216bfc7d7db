package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/juggle/config"
	"github.com/katalvlaran/juggle/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries the persistent flags and the logger built from them.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}
	root := &cobra.Command{
		Use:   "juggle",
		Short: "Search and analyse siteswap juggling patterns",
		Long: `juggle enumerates valid siteswap patterns for one or more jugglers,
filters them by throw counts and sub-patterns, and computes the
transitions into and out of a pattern.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.New(level, a.logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML generation profile")
	pf.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(newGenerateCmd(a), newAnalyzeCmd(a), newVersionCmd())

	return root
}

// loadConfig returns the profile named by --config, or the defaults.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("config loaded", "path", a.configPath)

	return cfg, nil
}
