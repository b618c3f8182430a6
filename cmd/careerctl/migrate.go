package main

import (
	"github.com/spf13/cobra"

	"careerpath/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, gormDB, log, err := openDB(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		if reset, _ := cmd.Flags().GetBool("reset"); reset {
			log.Warn("dropping all tables")
			if err := db.Reset(gormDB); err != nil {
				return err
			}
		}
		if err := db.Migrate(gormDB); err != nil {
			return err
		}
		log.Info("schema migrated")
		return nil
	},
}

func init() {
	migrateCmd.Flags().Bool("reset", false, "Drop every table before migrating")
}
