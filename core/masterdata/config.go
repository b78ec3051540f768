package masterdata

import "time"

// Config holds the location of the master data objects.
type Config struct {
	// GroupObject is the object name of the group master JSON.
	GroupObject string `mapstructure:"group_object" default:"gamedata/ItemGroupData.json"`
	// RecipeObject is the object name of the recipe master JSON.
	RecipeObject string `mapstructure:"recipe_object" default:"gamedata/RecipeData.json"`
	// CacheTTLSeconds is how long a loaded catalog is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// TTL returns the cache lifetime.
func (c Config) TTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Objects returns the object names the loader reads.
func (c Config) Objects() []string {
	return []string{c.GroupObject, c.RecipeObject}
}
