package config

// Default returns the default configuration: no named locations, permissive
// coordinates and warnings-only logging.
func Default() Config {
	humanReadable := false
	return Config{
		Locations:   []Location{},
		Coordinates: Permissive,
		LogLevel:    "warn",
		Output: OutputPreferences{
			HumanReadable: &humanReadable,
		},
	}
}
