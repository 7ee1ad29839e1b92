package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/workledger/date"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file.
const (
	EnvConfig        = "WL_CONFIG"
	EnvData          = "WL_DATA"
	EnvSessionSecret = "WL_SESSION_SECRET"
	EnvToday         = "WL_TODAY"
)

const (
	defaultData          = ".workledger"
	defaultSessionSecret = "workledger-local-session"
)

// Config is the configuration of the wl command.
type Config struct {
	// Data is the storage location, see storage.Open.
	Data string `yaml:"data"`
	// SessionSecret signs the session tokens.
	SessionSecret string `yaml:"session_secret"`
	// LogLevel is the minimum level logged with -v.
	LogLevel string `yaml:"log_level"`
	// Today pins the current date, when set.
	Today string `yaml:"today"`
}

// DefaultConfigPath returns where the configuration file is looked for when
// neither -config nor WL_CONFIG is set.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "workledger", "config.yaml")
}

// LoadConfig reads the configuration file at path, then applies the
// environment read with getenv. A missing file is only an error when
// required.
func LoadConfig(path string, required bool, getenv func(string) string) (Config, error) {
	cfg := Config{Data: defaultData, SessionSecret: defaultSessionSecret}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !required:
		case err != nil:
			return Config{}, fmt.Errorf("could not read configuration: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("could not parse configuration %q: %w", path, err)
			}
		}
	}
	for env, field := range map[string]*string{
		EnvData:          &cfg.Data,
		EnvSessionSecret: &cfg.SessionSecret,
		EnvToday:         &cfg.Today,
	} {
		if v := getenv(env); v != "" {
			*field = v
		}
	}
	if cfg.Today != "" {
		if _, err := date.Parse(cfg.Today); err != nil {
			return Config{}, fmt.Errorf("invalid today in configuration: %w", err)
		}
	}
	return cfg, nil
}

// Clock returns the function giving the current date.
func (c Config) Clock() func() date.Date {
	if c.Today == "" {
		return date.Today
	}
	today := date.MustParse(c.Today)
	return func() date.Date { return today }
}
