package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/meeting-scheduler/cmd/cli/commands"
	"github.com/jakechorley/meeting-scheduler/internal/config"
	"github.com/jakechorley/meeting-scheduler/pkg/db"
	"github.com/jakechorley/meeting-scheduler/pkg/postgres"
	"github.com/jakechorley/meeting-scheduler/pkg/utils/logging"
)

var (
	env string
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Meeting scheduler CLI - Recommend meeting dates from participant availability",
		Long: `A CLI tool for collecting participant availability, tuning scheduling settings,
recommending meeting dates and publishing the schedule to Google Sheets.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Database != nil {
				app.Database.Close()
			}
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	_ = rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.AddParticipantCmd(app))
	rootCmd.AddCommand(commands.UpdateParticipantCmd(app))
	rootCmd.AddCommand(commands.RemoveParticipantCmd(app))
	rootCmd.AddCommand(commands.ListParticipantsCmd(app))
	rootCmd.AddCommand(commands.ShowSettingsCmd(app))
	rootCmd.AddCommand(commands.SetSettingsCmd(app))
	rootCmd.AddCommand(commands.ResetSettingsCmd(app))
	rootCmd.AddCommand(commands.RecommendCmd(app))
	rootCmd.AddCommand(commands.ImportParticipantsCmd(app))
	rootCmd.AddCommand(commands.PublishScheduleCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, config and store
func initApp() error {
	var err error
	app.Env = env
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully", zap.String("store", app.Cfg.Store))

	app.Database, err = openStore(app.Ctx, app.Cfg, app.Logger)
	if err != nil {
		return err
	}
	app.Logger.Info("Store initialized successfully")

	return nil
}

// openStore connects to the configured store, migrating postgres to the latest schema
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (db.Database, error) {
	switch cfg.Store {
	case config.StorePostgres:
		logger.Info("Connecting to postgres")
		pg, err := postgres.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}

		logger.Info("Running migrations")
		if err := pg.RunMigrations(ctx); err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return pg, nil

	case config.StoreFile:
		logger.Info("Opening data file", zap.String("path", cfg.DataFile))
		fileDB, err := db.NewFileDB(cfg.DataFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open data file: %w", err)
		}
		return fileDB, nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
