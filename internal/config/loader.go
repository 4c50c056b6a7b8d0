package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	envPrefix      = "GO_ENTRY_ENGINE"
)

// Load reads the service configuration from the first config.json found in
// the search paths. Individual keys can be overridden through
// GO_ENTRY_ENGINE_* environment variables (dots become underscores), and
// GO_ENTRY_ENGINE_CONFIG points at an explicit file instead of searching.
func Load(searchPaths ...string) (Config, error) {
	var cfg Config

	if len(searchPaths) == 0 {
		searchPaths = []string{"/config", "./config", "."}
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType("json")
	for _, dir := range searchPaths {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", v.ConfigFileUsed(), err)
	}

	cfg.ApplyDefaults()

	return cfg, nil
}
