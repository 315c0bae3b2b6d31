package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"fleet-field-api/internal/config"
	"fleet-field-api/internal/database"
)

// app carries what every subcommand needs once the root has loaded config
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

// newRootCmd builds the fieldctl command tree
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "fieldctl",
		Short:        "Maintenance commands for the fleet field service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level, err := zapcore.ParseLevel(cfg.Logger.Level)
			if err != nil {
				level = zapcore.InfoLevel
			}
			zcfg := zap.NewProductionConfig()
			zcfg.Level = zap.NewAtomicLevelAt(level)
			zcfg.OutputPaths = []string{"stderr"}
			logger, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "configs/config.yaml", "config file")

	rootCmd.AddCommand(newMigrateCmd(a))
	rootCmd.AddCommand(newPurgeEntityCmd(a))

	return rootCmd
}

// openDB connects with the loaded database settings
func (a *app) openDB() (*gorm.DB, error) {
	return database.New(database.Config{
		Driver:          a.cfg.Database.Driver,
		DSN:             a.cfg.Database.GetDSN(),
		MaxOpenConns:    a.cfg.Database.MaxOpenConns,
		MaxIdleConns:    a.cfg.Database.MaxIdleConns,
		ConnMaxLifetime: a.cfg.Database.ConnMaxLifetime,
	})
}
