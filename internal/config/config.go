package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds analyzer settings.
type Config struct {
	Output OutputConfig  `mapstructure:"output"`
	Log    LoggingConfig `mapstructure:"log"`
	Serial string        `mapstructure:"serial"`
}

// OutputConfig selects how decoded results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig sets the logrus level.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from path (optional), then COMBUSTION_* env vars.
// A missing default config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("combustion")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix("COMBUSTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", "json")
	v.SetDefault("log.level", "info")
	v.SetDefault("serial", "")
}
