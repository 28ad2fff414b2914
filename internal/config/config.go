package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/haytac/emojipack/internal/emoji"
	"github.com/haytac/emojipack/internal/logging"
)

// ErrValidation marks configuration rejected before the pipeline does any
// I/O.
var ErrValidation = errors.New("invalid configuration")

// AppConfig holds the application configuration.
type AppConfig struct {
	Prefix            string         `mapstructure:"prefix"`
	Suffix            string         `mapstructure:"suffix"`
	Output            string         `mapstructure:"output" validate:"required"`
	Limit             int            `mapstructure:"limit" validate:"min=0"`
	AllowEmptyAffixes bool           `mapstructure:"allow_empty_affixes"`
	KeepObsoleted     bool           `mapstructure:"keep_obsoleted"`
	SourceURL         string         `mapstructure:"source_url" validate:"required,url"`
	Log               logging.Config `mapstructure:"log"`
}

var validate = validator.New()

// LoadConfig loads configuration from file and environment variables.
// Precedence, lowest first: defaults, config file, EMOJIPACK_* env vars,
// flags bound by the CLI layer.
func LoadConfig(configPath string) (*AppConfig, error) {
	var cfg AppConfig

	viper.SetDefault("prefix", ":")
	viper.SetDefault("suffix", ":")
	viper.SetDefault("output", "emoji-snippets.alfredsnippets")
	viper.SetDefault("limit", 0)
	viper.SetDefault("allow_empty_affixes", false)
	viper.SetDefault("keep_obsoleted", false)
	viper.SetDefault("source_url", emoji.DefaultSourceURL)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.console", true)
	viper.SetDefault("log.time_format", "15:04:05")

	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.emojipack")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	viper.SetEnvPrefix("EMOJIPACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded configuration, including the cross-field rule
// that at least one of prefix/suffix is set unless explicitly overridden.
// Runs before any fetch or write.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if c.Prefix == "" && c.Suffix == "" && !c.AllowEmptyAffixes {
		return fmt.Errorf("%w: prefix and suffix are both empty; bare keywords would expand on plain words (use allow_empty_affixes to override)", ErrValidation)
	}
	return nil
}
