package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"careerpath/internal/config"
	"careerpath/internal/db"
	"careerpath/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "careerctl",
	Short:         "Career path administration",
	Long:          "careerctl migrates the schema, seeds the reference catalog and generates or inspects user roadmaps.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("driver", "", "Database driver: mysql, postgres or sqlite (overrides DB_DRIVER)")
	rootCmd.PersistentFlags().String("sqlite-path", "", "SQLite database file (overrides SQLITE_PATH)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(roadmapCmd)
}

// openDB loads configuration, applies flag overrides and connects.
func openDB(cmd *cobra.Command) (*config.Config, *gorm.DB, *logger.Logger, error) {
	cfg := config.Load()
	if v, _ := cmd.Flags().GetString("driver"); v != "" {
		cfg.DBDriver = v
	}
	if v, _ := cmd.Flags().GetString("sqlite-path"); v != "" {
		cfg.SQLitePath = v
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, nil, nil, err
	}
	gormDB, err := db.Open(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, gormDB, log, nil
}
