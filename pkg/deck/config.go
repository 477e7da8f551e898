package deck

import (
	"compress/flate"
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/benjaminschreck/go-deck/pkg/deck/opc"
	"github.com/benjaminschreck/go-deck/pkg/deck/render"
)

// Config contains all configuration options for package assembly
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// Title and Creator are written to the core document properties.
	Title   string
	Creator string
	// Application is written to the extended document properties.
	Application string
	// ThemeName names the generated theme.
	ThemeName string
	// SlideWidth and SlideHeight are the slide size in EMU.
	SlideWidth  int64
	SlideHeight int64
	// CompressionLevel is the flate level for archive entries; 0 means default.
	CompressionLevel int
	// Store writes archive entries uncompressed.
	Store bool
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		Title:       "Presentation",
		Creator:     "go-deck",
		Application: "go-deck",
		ThemeName:   "Office Theme",
		SlideWidth:  10 * render.EMUPerInch,
		SlideHeight: 7.5 * render.EMUPerInch,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// DECK_LOG_LEVEL
	if val := os.Getenv("DECK_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// DECK_TITLE
	if val := os.Getenv("DECK_TITLE"); val != "" {
		config.Title = val
	}

	// DECK_CREATOR
	if val := os.Getenv("DECK_CREATOR"); val != "" {
		config.Creator = val
	}

	// DECK_APPLICATION
	if val := os.Getenv("DECK_APPLICATION"); val != "" {
		config.Application = val
	}

	// DECK_THEME_NAME
	if val := os.Getenv("DECK_THEME_NAME"); val != "" {
		config.ThemeName = val
	}

	// DECK_SLIDE_WIDTH / DECK_SLIDE_HEIGHT
	if val := os.Getenv("DECK_SLIDE_WIDTH"); val != "" {
		if emu, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.SlideWidth = emu
		}
	}
	if val := os.Getenv("DECK_SLIDE_HEIGHT"); val != "" {
		if emu, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.SlideHeight = emu
		}
	}

	// DECK_COMPRESSION_LEVEL
	if val := os.Getenv("DECK_COMPRESSION_LEVEL"); val != "" {
		if level, err := strconv.Atoi(val); err == nil {
			config.CompressionLevel = level
		}
	}

	// DECK_STORE
	if val := os.Getenv("DECK_STORE"); val != "" {
		config.Store = parseBool(val)
	}

	return config
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	config := *overrides

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.Title == "" {
		config.Title = defaults.Title
	}
	if config.Creator == "" {
		config.Creator = defaults.Creator
	}
	if config.Application == "" {
		config.Application = defaults.Application
	}
	if config.ThemeName == "" {
		config.ThemeName = defaults.ThemeName
	}
	if config.SlideWidth == 0 {
		config.SlideWidth = defaults.SlideWidth
	}
	if config.SlideHeight == 0 {
		config.SlideHeight = defaults.SlideHeight
	}

	return &config
}

// Slide sizes PowerPoint accepts, in EMU.
const (
	minSlideSize = 914400
	maxSlideSize = 51206400
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[strings.ToLower(strings.TrimSpace(c.LogLevel))] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	return c.validateLayout()
}

// validateLayout checks the settings that shape the archive itself.
func (c *Config) validateLayout() error {
	if c.SlideWidth < minSlideSize || c.SlideWidth > maxSlideSize {
		return errors.New("slide width out of range: " + strconv.FormatInt(c.SlideWidth, 10))
	}

	if c.SlideHeight < minSlideSize || c.SlideHeight > maxSlideSize {
		return errors.New("slide height out of range: " + strconv.FormatInt(c.SlideHeight, 10))
	}

	if c.CompressionLevel < flate.HuffmanOnly || c.CompressionLevel > flate.BestCompression {
		return errors.New("compression level out of range: " + strconv.Itoa(c.CompressionLevel))
	}

	return nil
}

// writeOptions maps the archive settings onto the package writer.
func (c *Config) writeOptions() opc.WriteOptions {
	return opc.WriteOptions{
		Store: c.Store,
		Level: c.CompressionLevel,
	}
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// Option adjusts the configuration of a single Compose or Write call.
type Option func(*Config)

// WithConfig replaces the base configuration.
func WithConfig(cfg *Config) Option {
	return func(c *Config) {
		*c = *NewConfigWithDefaults(cfg)
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithCreator sets the document author.
func WithCreator(creator string) Option {
	return func(c *Config) { c.Creator = creator }
}

// WithSlideSize sets the slide size in EMU.
func WithSlideSize(width, height int64) Option {
	return func(c *Config) {
		c.SlideWidth = width
		c.SlideHeight = height
	}
}

// resolveConfig applies opts over the global configuration.
func resolveConfig(opts []Option) (*Config, error) {
	config := GetGlobalConfig()
	for _, opt := range opts {
		opt(config)
	}
	if err := config.validateLayout(); err != nil {
		return nil, err
	}
	return config, nil
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
