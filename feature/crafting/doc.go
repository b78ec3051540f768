// Package crafting implements the craft-from-storage feature.
//
// It joins three sources: the player's storage pools from the inventory database, the
// recipe and group masters from object storage, and the evaluator in core/crafting.
//
// # Reports
//
// A recipe report carries the overall verdict (bag, house and tool storage combined) and one
// entry per required-item slot with the storage-only amount, its "999+" label and whether
// storage alone covers the slot.
//
// # HTTP Endpoints
//
//   - POST /crafting/evaluate : Evaluate an inline requirement against inline pools.
//   - GET /crafting/players/:player/recipes : Recipe mask for a station (?station=cooking).
//   - GET /crafting/players/:player/recipes/:recipe : Detailed report by recipe id or name.
package crafting
