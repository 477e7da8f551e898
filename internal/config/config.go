package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/benjaminschreck/go-deck/pkg/deck"
)

// EnvPrefix is prepended to every environment override, e.g. DECK_SERVER_ADDR.
const EnvPrefix = "DECK"

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// WatchConfig holds configuration for watch mode.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all runtime configuration of the deck CLI.
// Values are populated from .deck.yaml, DECK_* env vars, and CLI flags.
type Config struct {
	LogLevel         string       `mapstructure:"log_level"`
	Title            string       `mapstructure:"title"`
	Creator          string       `mapstructure:"creator"`
	Application      string       `mapstructure:"application"`
	ThemeName        string       `mapstructure:"theme_name"`
	SlideWidth       int64        `mapstructure:"slide_width"`
	SlideHeight      int64        `mapstructure:"slide_height"`
	CompressionLevel int          `mapstructure:"compression_level"`
	Store            bool         `mapstructure:"store"`
	Output           string       `mapstructure:"output"`
	Server           ServerConfig `mapstructure:"server"`
	Watch            WatchConfig  `mapstructure:"watch"`
}

// BindEnv maps DECK_* variables onto config keys; nested keys use
// underscores (server.addr -> DECK_SERVER_ADDR).
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	defaults := deck.DefaultConfig()

	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("title", defaults.Title)
	viper.SetDefault("creator", defaults.Creator)
	viper.SetDefault("application", defaults.Application)
	viper.SetDefault("theme_name", defaults.ThemeName)
	viper.SetDefault("slide_width", defaults.SlideWidth)
	viper.SetDefault("slide_height", defaults.SlideHeight)
	viper.SetDefault("compression_level", defaults.CompressionLevel)
	viper.SetDefault("store", defaults.Store)
	viper.SetDefault("output", "presentation.pptx")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.max_body_bytes", 10<<20)
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("watch.debounce", 250*time.Millisecond)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Deck().Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Watch.Debounce < 0 {
		return Config{}, fmt.Errorf("invalid config: negative watch debounce %s", cfg.Watch.Debounce)
	}
	return cfg, nil
}

// Deck returns the library configuration carried by cfg.
func (c Config) Deck() *deck.Config {
	return deck.NewConfigWithDefaults(&deck.Config{
		LogLevel:         strings.ToLower(c.LogLevel),
		Title:            c.Title,
		Creator:          c.Creator,
		Application:      c.Application,
		ThemeName:        c.ThemeName,
		SlideWidth:       c.SlideWidth,
		SlideHeight:      c.SlideHeight,
		CompressionLevel: c.CompressionLevel,
		Store:            c.Store,
	})
}
