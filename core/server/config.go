package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Station is the crafting station listed when a request does not name one.
	Station string `mapstructure:"station" default:"windmill"`
}

const (
	StationWindmill = "windmill"
	StationCooking  = "cooking"
)

// IsValidStation checks if the configured station is known.
func (c Config) IsValidStation() bool {
	return IsStation(c.Station)
}

// IsStation reports whether name is a known crafting station.
func IsStation(name string) bool {
	switch name {
	case StationWindmill, StationCooking:
		return true
	default:
		return false
	}
}
