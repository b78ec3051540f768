package crafting

import (
	"craftstore/core/crafting"
)

// BuildReport evaluates req and annotates every slot, empty ones included.
func BuildReport(ev *crafting.Evaluator, req crafting.RecipeRequirement) (*RecipeReport, error) {
	craftable, err := ev.IsCraftable(req)
	if err != nil {
		return nil, err
	}

	report := &RecipeReport{
		Craftable: craftable,
		Lines:     make([]LineReport, 0, len(req.Lines)),
	}

	for i, line := range req.Lines {
		lr := LineReport{
			Slot:     i,
			TargetID: line.TargetID,
			Kind:     line.Kind,
			Required: line.RequiredStack,
		}
		if line.IsEmpty() {
			lr.Empty = true
			report.Lines = append(report.Lines, lr)
			continue
		}

		inStorage, err := ev.AvailableDisplayAmount(line, req.Groups)
		if err != nil {
			return nil, err
		}
		total, err := ev.TotalAmount(line, req.Groups)
		if err != nil {
			return nil, err
		}

		lr.InStorage = inStorage
		lr.Total = total
		lr.Label = crafting.DisplayLabel(inStorage)
		lr.Enough = inStorage >= line.RequiredStack
		report.Lines = append(report.Lines, lr)
	}

	return report, nil
}
