package config

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${SUNTIMES_HOME}/config.yaml'.
type Config struct {
	Locations   []Location        `yaml:"locations"`
	Coordinates CoordinatePolicy  `yaml:"coordinates"`
	LogLevel    string            `yaml:"log-level"`
	Output      OutputPreferences `yaml:"output"`
}

// A Location is a named pair of coordinates, in degrees.
type Location struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// OutputPreferences control how results are printed by the `suntimes` CLI.
type OutputPreferences struct {
	HumanReadable *bool `yaml:"human-readable,omitempty"`
}

// CoordinatePolicy determines how coordinates outside of the physically
// meaningful ranges are treated.
type CoordinatePolicy string

const (
	// Permissive passes any coordinates on to the computation.
	Permissive CoordinatePolicy = "permissive"
	// Strict rejects latitudes outside [-90,90] and longitudes outside
	// [-180,180].
	Strict CoordinatePolicy = "strict"
)

// CheckCoordinates returns an error if the policy rejects the coordinates.
func (p CoordinatePolicy) CheckCoordinates(latitude, longitude float64) error {
	if p != Strict {
		return nil
	}
	if !(latitude >= -90 && latitude <= 90) {
		return fmt.Errorf("latitude %f outside of [-90,90]", latitude)
	}
	if !(longitude >= -180 && longitude <= 180) {
		return fmt.Errorf("longitude %f outside of [-180,180]", longitude)
	}
	return nil
}

// Lookup returns the location with the given name.
func (c Config) Lookup(name string) (Location, bool) {
	for _, l := range c.Locations {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Location{}, false
}

// Level returns the configured log level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level '%s' (%w)", c.LogLevel, err)
	}
	return level, nil
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment the default configuration.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)
	if err := result.validate(); err != nil {
		return defaultConfig, err
	}

	return result, nil
}

func (c Config) validate() error {
	switch c.Coordinates {
	case Permissive, Strict:
	default:
		return fmt.Errorf("unknown coordinate policy '%s'", c.Coordinates)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, l := range c.Locations {
		if l.Name == "" {
			return fmt.Errorf("location without name (%f,%f)", l.Latitude, l.Longitude)
		}
	}
	return nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if len(augment.Locations) > 0 {
		result.Locations = augment.Locations
	}
	if augment.Coordinates != "" {
		result.Coordinates = augment.Coordinates
	}
	if augment.LogLevel != "" {
		result.LogLevel = augment.LogLevel
	}
	if augment.Output.HumanReadable != nil {
		result.Output.HumanReadable = augment.Output.HumanReadable
	}

	return result
}

// HomeDir returns the suntimes home directory, '${SUNTIMES_HOME}' if set,
// '${HOME}/.config/suntimes' otherwise.
func HomeDir() string {
	home := os.Getenv("SUNTIMES_HOME")
	if home == "" {
		return path.Join(os.Getenv("HOME"), ".config", "suntimes")
	}
	return strings.TrimRight(home, "/")
}

// Load reads the configuration from the config file in the given home
// directory and applies overrides from the environment
// ('SUNTIMES_LOG_LEVEL', 'SUNTIMES_COORDINATES').
//
// A missing config file yields the default configuration.
func Load(homeDir string) (Config, error) {
	result := Default()

	yamlData, err := os.ReadFile(path.Join(homeDir, "config.yaml"))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return result, fmt.Errorf("can't read config file (%w)", err)
	default:
		result, err = ParseConfigAugmentDefaults(yamlData)
		if err != nil {
			return result, err
		}
	}

	return result.withEnvOverrides()
}

func (base Config) withEnvOverrides() (Config, error) {
	result := base.augmentWith(Config{
		LogLevel:    os.Getenv("SUNTIMES_LOG_LEVEL"),
		Coordinates: CoordinatePolicy(os.Getenv("SUNTIMES_COORDINATES")),
	})
	if err := result.validate(); err != nil {
		return base, fmt.Errorf("invalid environment override (%w)", err)
	}
	return result, nil
}
