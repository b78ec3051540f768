// Package masterdata loads the crafting master data the evaluator needs from object storage.
//
// Two JSON objects are read from the configured bucket:
//   - The group master (default gamedata/ItemGroupData.json): group id -> accepted item ids.
//   - The recipe master (default gamedata/RecipeData.json): recipes with their station and
//     required-item lists in the host encoding, e.g. "(1203, 2)" plus a parallel type list.
//
// Required items are parsed once here, at the boundary. A malformed tuple fails the whole load
// instead of being coerced to zero.
//
// # Caching
//
// Cache keeps the last loaded Catalog for a TTL. Concurrent reloads are collapsed with
// singleflight so a burst of requests triggers a single download.
//
// # Usage
//
//	cache := masterdata.NewCache(client, cfg.Storage.Bucket, cfg.MasterData)
//	catalog, err := cache.Get(ctx)
//	recipe, ok := catalog.FindRecipe("wooden chair")
package masterdata
