// Package config loads command line settings from mform.yaml, MFORM_*
// environment variables and flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-mform/pkg/model"
)

// Config holds the resolved settings.
type Config struct {
	Theme    string         `mapstructure:"theme"`
	Mode     string         `mapstructure:"mode"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Output   OutputConfig   `mapstructure:"output"`
	Themes   ThemesConfig   `mapstructure:"themes"`
}

// ThemesConfig lists go-theme manifest files registered next to the bundled
// default theme.
type ThemesConfig struct {
	Manifests []string `mapstructure:"manifests"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DatabaseConfig names the database `sql` option queries run against.
// An empty driver disables them.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// OutputConfig controls how rendered markup is written.
type OutputConfig struct {
	Path       string `mapstructure:"path"`
	WithAssets bool   `mapstructure:"with_assets"`
}

// FormMode returns the configured mode, add unless "edit" is set.
func (c Config) FormMode() model.Mode {
	return model.ParseMode(c.Mode)
}

// flagKeys maps flag names onto configuration keys.
var flagKeys = map[string]string{
	"theme":          "theme",
	"mode":           "mode",
	"log-level":      "log.level",
	"db-driver":      "database.driver",
	"db-dsn":         "database.dsn",
	"output":         "output.path",
	"with-assets":    "output.with_assets",
	"theme-manifest": "themes.manifests",
}

// Load resolves the configuration. file names an explicit config file; when
// empty, mform.yaml is looked up in the working directory and may be absent.
// Flags that were set on flags override every other source.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("theme", "default")
	v.SetDefault("mode", string(model.ModeAdd))
	v.SetDefault("log.level", "warn")
	v.SetDefault("database.driver", "")
	v.SetDefault("database.dsn", "")
	v.SetDefault("output.path", "")
	v.SetDefault("output.with_assets", false)
	v.SetDefault("themes.manifests", []string{})

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("mform")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MFORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Mode)) {
	case "", string(model.ModeAdd), string(model.ModeEdit):
	default:
		return fmt.Errorf("config: mode must be %q or %q, got %q", model.ModeAdd, model.ModeEdit, cfg.Mode)
	}
	if cfg.Database.Driver != "" && strings.TrimSpace(cfg.Database.DSN) == "" {
		return fmt.Errorf("config: database.dsn is required for driver %s", cfg.Database.Driver)
	}
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = "default"
	}
	return nil
}
