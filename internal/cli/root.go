package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vishant-raz/notion-gpt-api/internal/config"
	"github.com/vishant-raz/notion-gpt-api/internal/logger"
)

var (
	cfg *config.Config

	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "notion-gpt-server",
	Short: "HTTP façade over a Notion task collection",
	Long: `notion-gpt-server exposes CRUD and query routes over a single Notion
database of task records, authenticated by a shared-secret header.

Run without arguments to start the server. Configuration comes from the
environment (API_KEY, NOTION_TOKEN, NOTION_DATABASE_ID, PORT).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		// Override with CLI flags if provided
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}

		logConfig := logger.DefaultConfig()
		logConfig.Level = logger.ParseLevel(cfg.LogLevel)
		logConfig.FilePath = cfg.LogFile
		logConfig.Console = cfg.LogConsole
		if cfg.Debug {
			logConfig.Level = logger.DEBUG
		}

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("notion-gpt-server started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: runServe,

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("notion-gpt-server exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", true, "Enable console logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}
