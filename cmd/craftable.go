package cmd

import (
	"fmt"

	"craftstore/feature/crafting"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// craftableCmd represents the craftable command
var craftableCmd = &cobra.Command{
	Use:   "craftable [player] [recipe]",
	Short: "Check whether a player can craft a recipe from storage",
	Long:  `Evaluates one recipe (by id or name) against the player's bag, house storage and tool storage.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		svc := crafting.NewService(rt.store, rt.cfg.Storage.Bucket, rt.cfg.MasterData, rt.log, rt.db, rt.cfg.Server.Station)

		rt.log.Debug("Evaluating recipe", zap.String("player", args[0]), zap.String("recipe", args[1]))
		report, err := svc.EvaluateRecipe(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		printReport(report)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(craftableCmd)
}

func printReport(report *crafting.RecipeReport) {
	verdict := colorRed + "NO" + colorReset
	if report.Craftable {
		verdict = colorGreen + "YES" + colorReset
	}

	fmt.Println("\n--- Recipe Detail View ---")
	fmt.Printf("Recipe:         %d (%s)\n", report.RecipeID, report.Name)
	fmt.Printf("Station:        %s\n", report.Station)
	fmt.Printf("Player:         %s\n", report.PlayerID)
	fmt.Printf("Craftable:      %s\n", verdict)
	fmt.Println("--------------------------")

	for _, line := range report.Lines {
		if line.Empty {
			continue
		}
		mark := colorRed + "x" + colorReset
		if line.Enough {
			mark = colorGreen + "v" + colorReset
		}
		fmt.Printf("[%s] %-8s %-6d need %-4d stored %-5s total %d\n",
			mark, line.Kind, line.TargetID, line.Required, line.Label, line.Total)
	}
	fmt.Println("--------------------------")
}
