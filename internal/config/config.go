package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/pakaje/pakaje/internal/branding"
	"github.com/pakaje/pakaje/internal/manifest"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyFile     = "file"
	KeyLogLevel = "log_level"
)

// DefaultLogLevel is used when log_level is unset or unparsable.
const DefaultLogLevel = "info"

// ErrUnknownKey is returned by Set for keys outside Keys().
var ErrUnknownKey = errors.New("unknown config key")

// setting describes one user-settable key.
type setting struct {
	key   string
	def   string
	usage string
	check func(string) error
}

var settings = []setting{
	{
		key:   KeyFile,
		def:   manifest.DefaultPath,
		usage: "manifest path used when --file is not given",
	},
	{
		key:   KeyLogLevel,
		def:   DefaultLogLevel,
		usage: "minimum log level (debug, info, warn, error, fatal)",
		check: func(v string) error {
			_, err := log.ParseLevel(v)
			return err
		},
	},
}

func lookup(key string) (setting, bool) {
	i := slices.IndexFunc(settings, func(s setting) bool { return s.key == key })
	if i < 0 {
		return setting{}, false
	}
	return settings[i], true
}

// Keys returns the known configuration keys in display order.
func Keys() []string {
	keys := make([]string, len(settings))
	for i, s := range settings {
		keys[i] = s.key
	}
	return keys
}

// Usage returns the one-line description of key, or "" for unknown keys.
func Usage(key string) string {
	s, _ := lookup(key)
	return s.usage
}

// Dir returns the config directory: $PAKAJE_HOME when set, ~/.pakaje
// otherwise, ./.pakaje when the home directory cannot be resolved.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the path of the YAML config file inside Dir.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load points viper at the config file and the PAKAJE_* environment and
// registers the defaults. A missing config file is not an error.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	for _, s := range settings {
		viper.SetDefault(s.key, s.def)
	}

	_ = viper.ReadInConfig()
}

// Get returns the effective value of key.
func Get(key string) string {
	return viper.GetString(key)
}

// Check reports whether value is acceptable for key.
func Check(key, value string) error {
	s, ok := lookup(key)
	if !ok {
		return fmt.Errorf("%w %q (known: %v)", ErrUnknownKey, key, Keys())
	}
	if s.check == nil {
		return nil
	}
	if err := s.check(value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}

// Set checks value, then persists it to the config file, creating the
// config directory on first use.
func Set(key, value string) error {
	if err := Check(key, value); err != nil {
		return err
	}

	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
