package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"careerpath/internal/catalog"
	"careerpath/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the reference catalog (skills, goals, resources, quizzes)",
	Long:  "Seed inserts whatever part of the catalog is missing. Existing rows are left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, gormDB, log, err := openDB(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		if err := db.Migrate(gormDB); err != nil {
			return err
		}
		stats, err := catalog.Seed(cmd.Context(), gormDB, c, log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "inserted %d skills, %d goals, %d resources, %d quiz questions\n",
			stats.Skills, stats.Goals, stats.Resources, stats.Questions)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("file", "", "YAML catalog to seed instead of the built-in one")
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return catalog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return catalog.Parse(data)
}
