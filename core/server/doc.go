// Package server holds the HTTP server configuration and constants.
//
// The Config struct defines the HTTP port, the API key and the default crafting station
// (windmill crafting page or cooking recipe selector) used when listing recipe masks.
package server
