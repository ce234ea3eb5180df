package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/huynhanx03/boundedq/pkg/settings"
)

const envPrefix = "BOUNDEDQ"

// loadConfig reads path (if set) and BOUNDEDQ_* environment variables on top
// of the built-in defaults.
func loadConfig(path string) (settings.Config, error) {
	var cfg settings.Config

	v := viper.New()
	v.SetDefault("queue.capacity", 100)
	v.SetDefault("logger.log_level", "info")
	v.SetDefault("demo.push_count", 5)
	v.SetDefault("demo.pop_count", 3)
	v.SetDefault("demo.start_delay", 10)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}
