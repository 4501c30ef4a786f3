package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/passeio-api/internal/config"
	"github.com/phrazzld/passeio-api/internal/platform/database"
	"github.com/phrazzld/passeio-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "passeio-api",
		Short: "passeio API server",
		Long: `passeio-api serves the guide and tour registry over HTTP.

Examples:
  passeio-api serve                # start the HTTP server
  passeio-api migrate up           # apply pending migrations
  passeio-api migrate status       # list migration state`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "path to a dotenv file (default .env)")

	cmd.AddCommand(newServeCmd(opts), newMigrateCmd(opts))
	return cmd
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.bootstrap()
			if err != nil {
				return err
			}

			db, err := database.Open(cmd.Context(), databaseConfig(cfg), log)
			if err != nil {
				return err
			}

			if cfg.Database.AutoMigrate {
				if err := database.Migrate(cmd.Context(), db.DB, db.Driver, database.MigrateUp, log); err != nil {
					_ = db.Close()
					return err
				}
			}

			app, err := newApplication(cfg, log, db)
			if err != nil {
				_ = db.Close()
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return app.startHTTPServer(cmd.Context(), app.setupRouter())
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|status|version|reset>",
		Short:     "Run database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{database.MigrateUp, database.MigrateDown, database.MigrateStatus, database.MigrateVersion, database.MigrateReset},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.bootstrap()
			if err != nil {
				return err
			}
			log = log.With("correlation_id", uuid.NewString())

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			db, err := database.Open(ctx, databaseConfig(cfg), log)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("failed to close database connection", slog.String("error", err.Error()))
				}
			}()

			return database.Migrate(ctx, db.DB, db.Driver, args[0], log)
		},
	}
}

// bootstrap loads configuration and installs the configured logger as default.
func (o *rootOptions) bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadWithOptions(config.Options{ConfigFile: o.configFile, EnvFile: o.envFile})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel, Output: os.Stdout})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", string(database.DetectDriver(cfg.Database.URL))))
	return cfg, log, nil
}

func databaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		URL:                    cfg.Database.URL,
		MaxOpenConns:           cfg.Database.MaxOpenConns,
		MaxIdleConns:           cfg.Database.MaxIdleConns,
		ConnMaxLifetimeMinutes: cfg.Database.ConnMaxLifetimeMinutes,
	}
}
