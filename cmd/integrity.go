package cmd

import (
	"context"

	"craftstore/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on master data and the inventory schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// masterdataCmd represents the integrity masterdata command
var masterdataCmd = &cobra.Command{
	Use:   "masterdata",
	Short: "Check the group and recipe master objects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the inventory database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(masterdataCmd, serverCmd)
}

func runIntegrityChecks(ctx context.Context, runMasterData, runServer bool) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	logg := rt.log
	svc := integrity.NewService(rt.store, rt.cfg.Storage.Bucket, rt.cfg.MasterData, logg, rt.db)

	if runMasterData {
		logg.Info("Checking master data...")
		report, err := svc.CheckMasterData(ctx)
		if err != nil {
			return err
		}

		switch {
		case len(report.Missing) > 0:
			logg.Warn("Missing master data objects", zap.Strings("missing", report.Missing))
		case report.Status != "ok":
			for _, e := range report.Errors {
				logg.Warn("Master data problem", zap.String("error", e))
			}
		default:
			logg.Info("Master data is intact.",
				zap.Int("groups", report.Groups),
				zap.Int("recipes", report.Recipes))
		}
	}

	if runServer {
		logg.Info("Checking server schema integrity...")
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
			return nil
		}

		if report.Matched {
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
			return nil
		}

		logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}

	return nil
}
