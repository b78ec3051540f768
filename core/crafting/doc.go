// Package crafting decides whether a recipe can be fulfilled from a player's storages.
//
// It works on a read-only Snapshot of three storage pools (the carried bag, house storage
// and tool storage) and never reserves or withdraws items.
//
// # Aggregation
//
// Aggregate sums item stacks across a selection of pools for a predicate. Two selections are used:
//   - AllStorages (bag, house, tool): decides craftability.
//   - StorageOnly (house, tool): the per-ingredient amount shown next to the bag amount.
//
// # Evaluation
//
// The Evaluator walks a recipe's required-item lines in order and stops at the first line that
// cannot be covered. Lines with a zero target or zero required stack are always satisfied.
//
// Group lines use the first non-zero member of the group only; members are not summed.
//
// # Usage
//
//	ev := crafting.NewEvaluator(snapshot)
//	ok, err := ev.IsCraftable(crafting.RecipeRequirement{Lines: lines, Groups: groups})
package crafting
