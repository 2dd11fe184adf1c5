package cmd

import (
	"time"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/seed"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := openDB(); err != nil {
			return err
		}
		logger.WithComponent("database").Info("✅ Migration complete")
		return nil
	},
}

var resetCatalog bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo menu, gallery and workshops",
	Long: `seed writes the catalog embedded in the binary. Without --reset it
does nothing when menu items already exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		catalog, err := seed.Load()
		if err != nil {
			return err
		}
		_, err = seed.Apply(db, catalog, resetCatalog, time.Now())
		return err
	},
}

func init() {
	seedCmd.Flags().BoolVar(&resetCatalog, "reset", false, "clear catalog tables before seeding")
}
