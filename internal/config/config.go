// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CrewFile and FlightsFile point at the JSON record files.
	CrewFile    string `koanf:"crew_file"`
	FlightsFile string `koanf:"flights_file"`

	// Locations lists the base-location network the reachability graph covers.
	Locations []string `koanf:"locations"`

	// DefaultTopK is the recommendation count when the request does not ask
	// for one; MaxTopK caps what a request may ask for.
	DefaultTopK int `koanf:"default_top_k"`
	MaxTopK     int `koanf:"max_top_k"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		Addr:        ":9080",
		CrewFile:    "data/crew_data.json",
		FlightsFile: "data/flights_data.json",
		Locations:   []string{"DEL", "BOM", "BLR", "HYD", "GOI"},
		DefaultTopK: 5,
		MaxTopK:     20,
	}
}
