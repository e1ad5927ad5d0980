package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Branches BranchesConfig `yaml:"branches" mapstructure:"branches"`
	Layout   LayoutConfig   `yaml:"layout" mapstructure:"layout"`
	Compose  ComposeConfig  `yaml:"compose" mapstructure:"compose"`
	Batch    BatchConfig    `yaml:"batch" mapstructure:"batch"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// BranchesConfig configures where branch reference data comes from.
type BranchesConfig struct {
	// TablePath is an optional YAML file overlaid on the compiled-in table.
	TablePath       string `yaml:"table_path" mapstructure:"table_path"`
	WatchDebounceMs int    `yaml:"watch_debounce_ms" mapstructure:"watch_debounce_ms"`
}

// LayoutConfig selects and configures the layout engine.
type LayoutConfig struct {
	Engine string       `yaml:"engine" mapstructure:"engine"` // "html" or "chrome"
	Chrome ChromeConfig `yaml:"chrome" mapstructure:"chrome"`
}

// ChromeConfig configures headless Chrome PDF printing.
type ChromeConfig struct {
	Bin         string `yaml:"bin" mapstructure:"bin"`
	ControlURL  string `yaml:"control_url" mapstructure:"control_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	// ConnectAttempts is how many times to try launching or attaching.
	ConnectAttempts int `yaml:"connect_attempts" mapstructure:"connect_attempts"`
}

// ComposeConfig holds document defaults.
type ComposeConfig struct {
	LogoURL            string  `yaml:"logo_url" mapstructure:"logo_url"`
	DefaultHourlyRate  float64 `yaml:"default_hourly_rate" mapstructure:"default_hourly_rate"`
	DefaultMileageRate float64 `yaml:"default_mileage_rate" mapstructure:"default_mileage_rate"`
	ManagerPhone       string  `yaml:"manager_phone" mapstructure:"manager_phone"`
}

// BatchConfig configures batch generation.
type BatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AGREEMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("branches.table_path", "")
	v.SetDefault("branches.watch_debounce_ms", 250)
	v.SetDefault("layout.engine", "html")
	v.SetDefault("layout.chrome.bin", "")
	v.SetDefault("layout.chrome.control_url", "")
	v.SetDefault("layout.chrome.timeout_secs", 30)
	v.SetDefault("layout.chrome.connect_attempts", 3)
	v.SetDefault("compose.logo_url", "")
	v.SetDefault("compose.default_hourly_rate", 36.0)
	v.SetDefault("compose.default_mileage_rate", 0.67)
	v.SetDefault("compose.manager_phone", "1-800-2-OPTIONS")
	v.SetDefault("batch.max_concurrent", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command needs. Mode is the command family:
// "compose" for single and batch generation, "watch" for table watching.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "compose":
		switch c.Layout.Engine {
		case "html":
		case "chrome":
			if c.Layout.Chrome.TimeoutSecs <= 0 {
				errs = append(errs, "layout.chrome.timeout_secs must be > 0")
			}
			if c.Layout.Chrome.ConnectAttempts < 1 {
				errs = append(errs, "layout.chrome.connect_attempts must be >= 1")
			}
		default:
			errs = append(errs, fmt.Sprintf("layout.engine %q must be html or chrome", c.Layout.Engine))
		}
		if c.Batch.MaxConcurrent < 1 || c.Batch.MaxConcurrent > 64 {
			errs = append(errs, "batch.max_concurrent must be between 1 and 64")
		}
		if c.Compose.DefaultHourlyRate < 0 {
			errs = append(errs, "compose.default_hourly_rate must be >= 0")
		}
		if c.Compose.DefaultMileageRate < 0 {
			errs = append(errs, "compose.default_mileage_rate must be >= 0")
		}
	case "watch":
		if c.Branches.TablePath == "" {
			errs = append(errs, "branches.table_path is required")
		}
		if c.Branches.WatchDebounceMs < 0 {
			errs = append(errs, "branches.watch_debounce_ms must be >= 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
