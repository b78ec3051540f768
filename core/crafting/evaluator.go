package crafting

import (
	"fmt"
	"strconv"
)

// DisplayCap is the largest amount rendered exactly in ingredient labels.
const DisplayCap = 999

// Evaluator answers craftability questions against one snapshot.
type Evaluator struct {
	snapshot Snapshot
}

// NewEvaluator creates an evaluator for the snapshot.
func NewEvaluator(snapshot Snapshot) *Evaluator {
	return &Evaluator{snapshot: snapshot}
}

// IsCraftable reports whether every line of req is covered by bag, house and tool storage.
// It stops at the first insufficient line. Malformed lines are reported before any counting.
func (e *Evaluator) IsCraftable(req RecipeRequirement) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, err
	}

	pools := e.snapshot.Select(AllStorages...)
	for _, line := range req.Lines {
		if line.IsEmpty() {
			continue
		}
		if Available(pools, line, req.Groups) < line.RequiredStack {
			return false, nil
		}
	}
	return true, nil
}

// AvailableDisplayAmount returns the amount of line's target held in house and tool storage.
func (e *Evaluator) AvailableDisplayAmount(line RequiredItemLine, groups GroupResolver) (int, error) {
	if err := line.Validate(); err != nil {
		return 0, err
	}
	if line.IsEmpty() {
		return 0, nil
	}
	return Available(e.snapshot.Select(StorageOnly...), line, groups), nil
}

// TotalAmount returns the amount of line's target across all storages, bag included.
func (e *Evaluator) TotalAmount(line RequiredItemLine, groups GroupResolver) (int, error) {
	if err := line.Validate(); err != nil {
		return 0, err
	}
	if line.IsEmpty() {
		return 0, nil
	}
	return Available(e.snapshot.Select(AllStorages...), line, groups), nil
}

// DisplayLabel renders an ingredient amount, saturating at "999+".
func DisplayLabel(amount int) string {
	if amount > DisplayCap {
		return fmt.Sprintf("%d+", DisplayCap)
	}
	return strconv.Itoa(amount)
}
