// Package config loads SDK configuration from config files, .env files, and
// WORDCAB_* environment variables, in that order of increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOptions controls where Load looks for configuration.
type LoaderOptions struct {
	// ConfigFile is an explicit config file path. Empty means search.
	ConfigFile string
	// EnvFile is an explicit .env path. Empty means load ./.env when present.
	EnvFile string
}

// Load resolves configuration for the SDK. Missing files are not an error:
// the zero config plus defaults is a valid setup.
func Load(opts LoaderOptions) (*Config, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix("WORDCAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Env bindings need explicit keys because nothing registers them otherwise.
	for _, key := range []string{"base_url", "timeout", "retry", "logging.level", "logging.format", "logging.output", "logging.no_color", "logging.no_timestamp"} {
		_ = v.BindEnv(key)
	}

	if file := resolveConfigFile(opts.ConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveConfigFile returns the explicit path or the first standard location
// that exists.
func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidates := []string{"./wordcab.yml", "./config/wordcab.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".wordcab", "config.yml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadEnvFile(explicit string) {
	if explicit != "" {
		_ = godotenv.Load(explicit)
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}
