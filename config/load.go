package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/codecraft/errors"
)

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the codecraft configuration. The result is cached; call Reset
// to force a reload (useful for testing).
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "unmarshal config from %s", configPath)
	}
	return &config, nil
}

// Reset clears the cached configuration.
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with environment binding, defaults, and the
// optional codecraft.toml in the working directory.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()
	v.SetEnvPrefix("CODECRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	v.SetConfigName("codecraft")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	// Missing config file is fine; defaults and env vars apply.
	_ = v.ReadInConfig()

	viperInstance = v
	return v
}
