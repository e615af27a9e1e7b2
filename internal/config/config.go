package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/Veraticus/bookmgr/internal/common"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g. BOOKMGR_STORAGE_BACKEND.
const EnvPrefix = "BOOKMGR"

// EnvKeyReplacer maps nested keys to env var names: storage.backend -> STORAGE_BACKEND.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Config holds all settings for a bookmgr session.
type Config struct {
	Logging LoggingConfig
	Storage StorageConfig
	UI      UIConfig
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// StorageConfig selects the book store backend.
type StorageConfig struct {
	Backend string
}

// UIConfig controls terminal output.
type UIConfig struct {
	Color bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("storage.backend", "memory")
	v.SetDefault("ui.color", true)
}

// Load reads the configuration from v and validates it.
// Values come from, in order of precedence: flags bound to v, BOOKMGR_ env
// vars, the config file, defaults.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Storage: StorageConfig{
			Backend: v.GetString("storage.backend"),
		},
		UI: UIConfig{
			Color: v.GetBool("ui.color"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, common.NewUserError("invalid configuration", fmt.Errorf("%w: %w", common.ErrInvalidConfig, err))
	}
	return cfg, nil
}

// Validate checks every setting against its allowed values.
func (c *Config) Validate() error {
	return validation.Errors{
		"logging.level": validation.Validate(c.Logging.Level,
			validation.Required, validation.In("debug", "info", "warn", "error")),
		"logging.format": validation.Validate(c.Logging.Format,
			validation.Required, validation.In("console", "json")),
		"storage.backend": validation.Validate(c.Storage.Backend,
			validation.Required, validation.In("memory", "sqlite")),
	}.Filter()
}

// LoadEnvFile loads a .env file into the process environment. Variables
// already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
