package devhost

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes the environment variables overriding the [Host] table.
const EnvPrefix = "RWHOST"

var validate = validator.New()

// Config contains all host options of the config file
type Config struct {
	CommandPrefix         string `validate:"required"`
	UnknownCommandMessage string
	LogLevel              string `validate:"oneof=trace debug info warn warning error"`
}

// DefaultConfig returns the default host settings
func DefaultConfig() Config {
	return Config{
		CommandPrefix:         "/",
		UnknownCommandMessage: "Unknown command. Type /help for a list.",
		LogLevel:              "info",
	}
}

// LoadConfig reads the [Host] table of the TOML file at path over the
// defaults, then applies environment overrides. An empty path skips the
// file.
func LoadConfig(path string) (Config, error) {
	file := struct{ Host Config }{Host: DefaultConfig()}

	if path != "" {
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return Config{}, fmt.Errorf("reading host config: %w", err)
		}
	}

	cfg := file.Host
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading host environment: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid host config: %w", err)
	}
	return cfg, nil
}
