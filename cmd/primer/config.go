package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// appConfig holds the runtime configuration for the TUI.
type appConfig struct {
	CatalogPath    string `mapstructure:"catalog-path"`
	HistoryPath    string `mapstructure:"history-path"`
	StartTopic     string `mapstructure:"start-topic"`
	ShowTravelDemo bool   `mapstructure:"show-travel-demo"`
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	defaultHistoryPath := filepath.Join(home, ".local", "share", "primer", "history.jsonl")

	v := viper.New()
	v.SetEnvPrefix("PRIMER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("catalog-path", "")
	v.SetDefault("history-path", defaultHistoryPath)
	v.SetDefault("start-topic", "")
	v.SetDefault("show-travel-demo", true)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "primer", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	// Expand ~ in paths.
	for _, p := range []*string{&cfg.CatalogPath, &cfg.HistoryPath} {
		if strings.HasPrefix(*p, "~/") {
			*p = filepath.Join(home, (*p)[2:])
		}
	}

	return cfg, nil
}
