package cmd

import (
	"fmt"

	"craftstore/feature/crafting"

	"github.com/spf13/cobra"
)

var stationFlag string

// recipesCmd represents the recipes command
var recipesCmd = &cobra.Command{
	Use:   "recipes [player]",
	Short: "List a station's recipes and whether each can be crafted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		svc := crafting.NewService(rt.store, rt.cfg.Storage.Bucket, rt.cfg.MasterData, rt.log, rt.db, rt.cfg.Server.Station)

		mask, err := svc.RecipeMask(cmd.Context(), args[0], stationFlag)
		if err != nil {
			return err
		}

		craftable := 0
		for _, r := range mask {
			color := colorRed
			if r.Craftable {
				color = colorGreen
				craftable++
			}
			fmt.Printf("%s%6d%s  %s\n", color, r.RecipeID, colorReset, r.Name)
		}
		fmt.Printf("\n%d of %d recipes craftable\n", craftable, len(mask))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(recipesCmd)
	recipesCmd.Flags().StringVar(&stationFlag, "station", "", "Station to list (windmill, cooking); defaults to SERVER_STATION")
}
