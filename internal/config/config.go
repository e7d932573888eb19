// Package config loads user-level default metadata for new projects.
//
// Defaults come from three layers, lowest priority first: built-in
// placeholders, an optional pyhatch.yml config file, and PYHATCH_*
// environment variables. The resolved Defaults value is passed explicitly
// into the resolver so nothing reads global state at resolve time.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Built-in placeholder metadata, used when neither the config file nor the
// environment provides a value.
const (
	DefaultAuthor      = "Your Name"
	DefaultEmail       = "your.email@example.com"
	DefaultDescription = "A Python project"
)

// Defaults holds the metadata applied to a project when the user omits the
// corresponding flag.
type Defaults struct {
	Author      string
	Email       string
	Description string
}

// BuiltinDefaults returns the placeholder metadata without consulting the
// config file or environment.
func BuiltinDefaults() Defaults {
	return Defaults{
		Author:      DefaultAuthor,
		Email:       DefaultEmail,
		Description: DefaultDescription,
	}
}

// Load reads defaults from pyhatch.yml and the environment.
//
// The config file is searched in $PYHATCH_CONFIG_DIR, then
// ~/.config/pyhatch. A missing file is not an error; built-in placeholders
// apply. Environment variables PYHATCH_AUTHOR, PYHATCH_EMAIL and
// PYHATCH_DESCRIPTION override file values.
func Load() (Defaults, error) {
	v := viper.New()
	v.SetConfigName("pyhatch")
	v.SetConfigType("yaml")

	if dir := os.Getenv("PYHATCH_CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pyhatch"))
	}

	v.SetEnvPrefix("PYHATCH")
	v.AutomaticEnv()

	v.SetDefault("author", DefaultAuthor)
	v.SetDefault("email", DefaultEmail)
	v.SetDefault("description", DefaultDescription)

	if err := v.ReadInConfig(); err != nil {
		// Only a missing config file is tolerated
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Defaults{}, err
		}
	}

	return Defaults{
		Author:      v.GetString("author"),
		Email:       v.GetString("email"),
		Description: v.GetString("description"),
	}, nil
}
