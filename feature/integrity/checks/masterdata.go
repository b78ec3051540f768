package checks

import (
	"context"
	"fmt"

	"craftstore/core/crafting"
	"craftstore/core/masterdata"
	"craftstore/core/storage"
)

// MasterDataReport describes the master data objects in the bucket.
type MasterDataReport struct {
	Missing []string `json:"missing"`
	Groups  int      `json:"groups"`
	Recipes int      `json:"recipes"`
	Errors  []string `json:"errors"`
	Status  string   `json:"status"` // "ok", "error"
}

// CheckMasterData verifies that every master data object exists and parses.
// Parsing is skipped while any object is missing.
func CheckMasterData(ctx context.Context, client storage.Client, bucket string, cfg masterdata.Config) (*MasterDataReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	report := &MasterDataReport{
		Missing: []string{},
		Errors:  []string{},
		Status:  "ok",
	}

	for _, object := range cfg.Objects() {
		found, err := storage.ObjectExists(ctx, client, bucket, object)
		if err != nil {
			return nil, err
		}
		if !found {
			report.Missing = append(report.Missing, object)
		}
	}

	if len(report.Missing) > 0 {
		report.Status = "error"
		return report, nil
	}

	catalog, err := masterdata.Load(ctx, client, bucket, cfg)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		report.Status = "error"
		return report, nil
	}

	report.Groups = len(catalog.Groups)
	report.Recipes = len(catalog.Recipes)

	// Group lines pointing at unknown groups never become craftable.
	for _, r := range catalog.Recipes {
		for i, line := range r.Lines {
			if line.IsEmpty() || line.Kind != crafting.Group {
				continue
			}
			if _, ok := catalog.Groups.TryResolve(line.TargetID); !ok {
				report.Errors = append(report.Errors,
					fmt.Sprintf("recipe %d line %d: unknown group %d", r.ID, i, line.TargetID))
				report.Status = "error"
			}
		}
	}

	return report, nil
}
