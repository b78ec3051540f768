package cmd

import (
	"errors"

	"craftstore/feature/inventory"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the inventory table",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		if rt.db == nil {
			return errors.New("database connection required")
		}

		if err := inventory.NewRepository(rt.db).Migrate(cmd.Context()); err != nil {
			return err
		}
		rt.log.Info("Inventory table migrated")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
