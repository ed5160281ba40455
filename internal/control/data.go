package control

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/suntimes/internal/config"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
	Config      config.Config
}

// LoadEnvData determines the base directory and loads the configuration from
// it.
func LoadEnvData() (*EnvData, error) {
	var envData EnvData

	envData.BaseDirPath = config.HomeDir()

	configData, err := config.Load(envData.BaseDirPath)
	if err != nil {
		return nil, fmt.Errorf("can't load config from '%s' (%w)", envData.BaseDirPath, err)
	}
	envData.Config = configData

	log.Debug().
		Str("dir", envData.BaseDirPath).
		Int("locations", len(configData.Locations)).
		Str("coordinates", string(configData.Coordinates)).
		Msg("loaded config")

	return &envData, nil
}
