package rwplugin

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
)

// EnvPrefix prefixes the environment variables that override the config
// file, e.g. RWPLUGIN_BROADCAST_INTERVAL.
const EnvPrefix = "RWPLUGIN"

var validate = validator.New()

// Config contains all plugin options of the config file
type Config struct {
	Name      string `validate:"required"`
	Broadcast BroadcastConfig
}

// BroadcastConfig drives the Broadcaster
type BroadcastConfig struct {
	Enabled      bool
	Interval     int      `validate:"gt=0"` // seconds
	Messages     []string `validate:"dive,required"`
	MessagesFile string   // one message per line, merged with Messages on Starting
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Name: "ExamplePlugin",
		Broadcast: BroadcastConfig{
			Enabled:  true,
			Interval: 30,
			Messages: []string{
				"Welcome to the server!",
				"Type /hello to say hello.",
				"Remember to take breaks!",
				"This message was brought to you by the example plugin.",
			},
		},
	}
}

// LoadConfig reads the [Plugin] table of the TOML file at path over the
// defaults, applies environment overrides and validates the result. An
// empty path skips the file.
func LoadConfig(path string) (Config, error) {
	file := struct{ Plugin Config }{Plugin: DefaultConfig()}

	if path != "" {
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return Config{}, fmt.Errorf("reading plugin config: %w", err)
		}
	}

	cfg := file.Plugin
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading plugin environment: %w", err)
	}

	cfg.Broadcast.Messages = lo.FilterMap(cfg.Broadcast.Messages, func(m string, _ int) (string, bool) {
		m = strings.TrimSpace(m)
		return m, m != ""
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg for values the plugin cannot run with.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid plugin config: %w", err)
	}
	if c.Broadcast.Enabled && len(c.Broadcast.Messages) == 0 && c.Broadcast.MessagesFile == "" {
		return fmt.Errorf("invalid plugin config: %w", ErrNoMessages)
	}
	return nil
}
