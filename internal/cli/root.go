package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rugbyops/zoneclips/internal/config"
)

var (
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zoneclips",
		Short: "Rugby clip board grouped by pitch zone",
		Long: `zoneclips serves a session-authenticated web app for browsing and
managing short video clips tagged by rugby pitch zone, and provides
local account administration against the same record store.

Registration always produces an inactive player account, so the first
admin has to be created here: zoneclips users create --admin --active.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			logger = newLogger(cfg.Env)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to yaml config file (env: CONFIG_PATH)")

	// Add subcommands
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newUsersCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(env string) *slog.Logger {
	if env == "local" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
