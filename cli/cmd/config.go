package cmd

import (
	"errors"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// StoreConfig selects and configures the comment cache backend. An empty Dsn
// means "use the in-memory default"; a non-empty one selects pgstore, the
// same either/or the teacher expresses as a connection-string-keyed
// map[string]DatabaseConfig in its own config.go, simplified here to a single
// backend since docwiki only ever talks to one cache.
type StoreConfig struct {
	Dsn string `yaml:"dsn"`
}

type Config struct {
	Store       StoreConfig `yaml:"store"`
	ServiceName string      `yaml:"servicename"`
}

// LoadConfig reads docwiki.yaml from --directory, the same file-location
// convention as the teacher's LoadConfig (config.go), renamed from
// sqlcode.yaml.
func LoadConfig() (Config, error) {
	configFilename := path.Join(directory, "docwiki.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, errors.New("no docwiki.yaml found in --directory")
	}

	raw, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
