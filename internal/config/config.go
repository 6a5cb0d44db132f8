package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SHOPPING_LOG_LEVEL.
const EnvPrefix = "SHOPPING"

// Config holds everything the binary reads at startup.
type Config struct {
	Theme         string
	SeedFile      string
	HideCompleted bool
	SearchTerm    string
	Log           Log
}

type Log struct {
	File  string
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "classic")
	v.SetDefault("seed", "")
	v.SetDefault("hide_completed", false)
	v.SetDefault("search", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load reads configuration into v and returns it.
// With file empty, shopping.yaml is looked up in the working directory and
// $HOME/.config/shopping; not finding one is fine. An explicit file must exist.
// Flags bound to v before Load take precedence over file and env.
func Load(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("shopping")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "shopping"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Theme:         v.GetString("theme"),
		SeedFile:      v.GetString("seed"),
		HideCompleted: v.GetBool("hide_completed"),
		SearchTerm:    v.GetString("search"),
		Log: Log{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
	}, nil
}
