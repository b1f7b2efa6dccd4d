package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/nutritionlabel/internal/display"
)

// EnvConfig names the environment variable that points at an explicit config file.
const EnvConfig = "NUTRITIONLABEL_CONFIG"

// DefaultSampleVideoURL is a public HLS test stream used by the captions and
// audio description playgrounds.
const DefaultSampleVideoURL = "https://devstreaming-cdn.apple.com/videos/streaming/examples/img_bipbop_adv_example_fmp4/master.m3u8"

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Catalog  CatalogConfig
	Media    MediaConfig
	Display  DisplayConfig
	Layout   LayoutConfig
	History  HistoryConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// CatalogConfig points at an optional replacement feature table.
type CatalogConfig struct {
	Path string
}

// MediaConfig holds the sample media shown by the hearing playgrounds.
type MediaConfig struct {
	SampleVideoURL string `mapstructure:"sample_video_url"`
}

// DisplayConfig is the persisted display context.
type DisplayConfig struct {
	TextSize                  string `mapstructure:"text_size"`
	ColorScheme               string `mapstructure:"color_scheme"`
	Contrast                  string
	ReduceMotion              bool `mapstructure:"reduce_motion"`
	DifferentiateWithoutColor bool `mapstructure:"differentiate_without_color"`
}

// LayoutConfig holds layout tuning.
type LayoutConfig struct {
	BadgeSpacing int `mapstructure:"badge_spacing"`
}

// HistoryConfig bounds the recently viewed list. Visits older than Retention
// are pruned at startup; zero keeps everything.
type HistoryConfig struct {
	Limit     int
	Retention time.Duration
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
	Path  string
}

// LoadFile reads configuration from path and env. An empty path searches the
// default config directory. Env var overrides use prefix NUTRITIONLABEL_.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "nutritionlabel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NUTRITIONLABEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Layout.BadgeSpacing < 0 {
		return Config{}, fmt.Errorf("layout.badge_spacing must be non-negative, got %d", c.Layout.BadgeSpacing)
	}
	if c.History.Retention < 0 {
		return Config{}, fmt.Errorf("history.retention must be non-negative, got %s", c.History.Retention)
	}
	if c.History.Limit <= 0 {
		c.History.Limit = 5
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	home := homeDir()
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "nutritionlabel", "nutritionlabel.db"))
	v.SetDefault("catalog.path", "")
	v.SetDefault("media.sample_video_url", DefaultSampleVideoURL)
	v.SetDefault("display.text_size", display.Large.String())
	v.SetDefault("display.color_scheme", display.Dark.String())
	v.SetDefault("display.contrast", display.StandardContrast.String())
	v.SetDefault("display.reduce_motion", false)
	v.SetDefault("display.differentiate_without_color", false)
	v.SetDefault("layout.badge_spacing", 1)
	v.SetDefault("history.limit", 5)
	v.SetDefault("history.retention", "2160h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "nutritionlabel", "nutritionlabel.log"))
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

// DisplayContext converts the persisted strings into a validated display context.
func (c Config) DisplayContext() (display.Context, error) {
	size, err := display.ParseTextSize(c.Display.TextSize)
	if err != nil {
		return display.Context{}, err
	}
	scheme, err := display.ParseColorScheme(c.Display.ColorScheme)
	if err != nil {
		return display.Context{}, err
	}
	contrast, err := display.ParseContrast(c.Display.Contrast)
	if err != nil {
		return display.Context{}, err
	}
	return display.Context{
		TextSize:                  size,
		ColorScheme:               scheme,
		Contrast:                  contrast,
		ReduceMotion:              c.Display.ReduceMotion,
		DifferentiateWithoutColor: c.Display.DifferentiateWithoutColor,
	}, nil
}

// WithDisplay returns a copy of c carrying ctx as its display settings.
func (c Config) WithDisplay(ctx display.Context) Config {
	c.Display = DisplayConfig{
		TextSize:                  ctx.TextSize.String(),
		ColorScheme:               ctx.ColorScheme.String(),
		Contrast:                  ctx.Contrast.String(),
		ReduceMotion:              ctx.ReduceMotion,
		DifferentiateWithoutColor: ctx.DifferentiateWithoutColor,
	}
	return c
}

// Path is the config file display changes are saved to when no explicit file
// was given.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".config", "nutritionlabel", "config.toml")
}

// SaveFile writes cfg to path, creating the config directory if needed.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("media.sample_video_url", cfg.Media.SampleVideoURL)
	v.Set("display.text_size", cfg.Display.TextSize)
	v.Set("display.color_scheme", cfg.Display.ColorScheme)
	v.Set("display.contrast", cfg.Display.Contrast)
	v.Set("display.reduce_motion", cfg.Display.ReduceMotion)
	v.Set("display.differentiate_without_color", cfg.Display.DifferentiateWithoutColor)
	v.Set("layout.badge_spacing", cfg.Layout.BadgeSpacing)
	v.Set("history.limit", cfg.History.Limit)
	v.Set("history.retention", cfg.History.Retention.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
