// Package config provides configuration management for craftstore.
//
// Values come from environment variables, optionally seeded from a .env file, and fall back
// to the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Database: inventory database connection (mysql or sqlite)
//   - Storage: S3/MinIO credentials and bucket holding the master data
//   - MasterData: group and recipe master object names, cache TTL
//   - Log: logging level and format
//
// Nested keys map to upper-case env names joined by underscores, e.g. MASTERDATA_CACHE_TTL_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
