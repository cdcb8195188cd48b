// Package main is the operator CLI. It runs the schema migrations and seeds
// the exercise library without starting the HTTP service.
package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iquadra-Harsh/wellness-wizard/internal/config"
	"github.com/iquadra-Harsh/wellness-wizard/internal/db"
)

var (
	flagEnv        string
	flagConfigPath string
	flagVerbose    bool

	cfg    *config.Config
	dbPool *pgxpool.Pool
)

var rootCmd = &cobra.Command{
	Use:           "wwctl",
	Short:         "Wellness wizard operations",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}

		var err error
		cfg, err = config.Load(flagEnv, flagConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPool, err = db.NewDBPool(cmd.Context(), db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     cfg.PostgresUser,
			DBPassword: cfg.PostgresPassword,
		})
		if err != nil {
			return fmt.Errorf("new db pool: %w", err)
		}
		return dbPool.Ping(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if dbPool != nil {
			dbPool.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedExercisesCmd)
}
