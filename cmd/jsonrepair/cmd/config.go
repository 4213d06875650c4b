package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults read from an optional .jsonrepair.yaml in the
// current directory. A positive --max-depth flag overrides MaxDepth;
// --pretty can only switch pretty-printing on, so pretty: true in the file
// stays in effect. NDJSON is read but no command uses it.
type Config struct {
	MaxDepth int  `yaml:"max-depth"`
	Pretty   bool `yaml:"pretty"`
	NDJSON   bool `yaml:"ndjson"`
}

// LoadConfig reads .jsonrepair.yaml from the current directory. A
// missing file is not an error — the CLI runs fine on flags/defaults
// alone.
func LoadConfig() (Config, error) {
	data, err := os.ReadFile(".jsonrepair.yaml")
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
