package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iquadra-Harsh/wellness-wizard/internal/db"
	"github.com/iquadra-Harsh/wellness-wizard/internal/exerciselib"
)

var seedFile string

var seedExercisesCmd = &cobra.Command{
	Use:   "seed-exercises",
	Short: "Load a free-exercise-db JSON catalog into the exercise library",
	Long: `Loads the exercises of a free-exercise-db JSON catalog. Existing
exercises with the same id are updated in place, so the command can be
rerun after the catalog changes.

  wwctl seed-exercises --file ./exercises.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()

		if err := db.Migrate(cmd.Context(), dbPool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		repo := exerciselib.NewRepo(dbPool, cfg.ExerciseCacheSizeMB)
		count, err := repo.Seed(cmd.Context(), f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d exercises\n", count)
		return nil
	},
}

func init() {
	seedExercisesCmd.Flags().StringVarP(&seedFile, "file", "f", "", "path of the JSON catalog")
	_ = seedExercisesCmd.MarkFlagRequired("file")
}
