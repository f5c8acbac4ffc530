package pedia

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "stationpedia.yaml"

// LoadConfig reads a YAML config and fills the holes with defaults.
// The default config path is optional: when nothing sits there, the
// defaults are the config. A path the caller names explicitly has to
// exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			config := DefaultConfig()
			return &config, nil
		}
		err := errors.Wrap(err, "pedia.LoadConfig error")
		return nil, err
	}

	config := Config{}
	err = yaml.Unmarshal(bs, &config)
	if err != nil {
		err := errors.Wrap(err, "pedia.LoadConfig error")
		return nil, err
	}
	config = config.WithDefaults()
	return &config, nil
}
