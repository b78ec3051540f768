// Package integrity provides health checks for the data the crafting feature depends on.
//
// # Checks Provided
//
//   - MasterData: The group and recipe master objects exist in the bucket, parse, and every
//     group line of a recipe points at a known group.
//   - Server: The connected database schema matches the inventory model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/masterdata : Runs the master data check.
//   - GET /integrity/server : Runs the server schema check.
package integrity
