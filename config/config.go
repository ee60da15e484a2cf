package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	Board    BoardConfig `mapstructure:"board"`
	Tick     TickConfig  `mapstructure:"tick"`
	Frontend string      `mapstructure:"frontend"`
	RNG      RNGConfig   `mapstructure:"rng"`
	Log      LogConfig   `mapstructure:"log"`
	Audio    AudioConfig `mapstructure:"audio"`
}

type BoardConfig struct {
	Height int `mapstructure:"height"`
	Width  int `mapstructure:"width"`
}

type TickConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// RNGConfig selects the food placement source: "hardware" or "seeded".
type RNGConfig struct {
	Source string `mapstructure:"source"`
	Seed   uint64 `mapstructure:"seed"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

const (
	configName = "snake"
	envPrefix  = "SNAKE"
)

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("board.height", 10)
	v.SetDefault("board.width", 10)
	v.SetDefault("tick.interval", "200ms")
	v.SetDefault("frontend", "console")
	v.SetDefault("rng.source", "hardware")
	v.SetDefault("rng.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "snake.log")
	v.SetDefault("audio.enabled", false)
}

// Flags returns the command-line flag set. Names match the config keys.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("snake", pflag.ContinueOnError)
	fs.String("config", "", "Path to a config file (yaml, json or toml)")
	fs.Int("board.height", 10, "Board height in cells")
	fs.Int("board.width", 10, "Board width in cells")
	fs.Duration("tick.interval", 200*time.Millisecond, "Delay between ticks")
	fs.String("frontend", "console", "Frontend: console, terminal, window")
	fs.String("rng.source", "hardware", "Food placement randomness: hardware, seeded")
	fs.Uint64("rng.seed", 0, "Seed for the seeded source")
	fs.String("log.level", "info", "Log level: trace, debug, info, warn, error")
	fs.String("log.file", "snake.log", "Log file path")
	fs.Bool("audio.enabled", false, "Play sound cues")
	return fs
}

// Load resolves configuration from defaults, an optional config file,
// SNAKE_* environment variables and the given flags, in increasing
// priority. A missing default config file is not an error.
func Load(fs *pflag.FlagSet, configDirs ...string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := ""
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("error binding flags: %w", err)
		}
		if f := fs.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(configName)
		for _, dir := range configDirs {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Board.Height <= 0 || c.Board.Width <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Tick.Interval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.Tick.Interval)
	}
	switch c.RNG.Source {
	case "hardware", "seeded":
	default:
		return fmt.Errorf("unknown rng source %q", c.RNG.Source)
	}
	return nil
}
