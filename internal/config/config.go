package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `toml:"ui"`
	Web WebConfig `toml:"web"`
	Log LogConfig `toml:"log"`
}

// UIConfig selects the front-end.
type UIConfig struct {
	Mode      string `toml:"mode"`
	AltScreen bool   `mapstructure:"alt_screen" toml:"alt_screen"`
}

// WebConfig holds HTTP server settings.
type WebConfig struct {
	Addr            string        `toml:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" toml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" toml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" toml:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" toml:"max_body_bytes"`
}

// LogConfig holds slog settings. An empty File in TUI mode discards logs.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

const (
	ModeTUI = "tui"
	ModeWeb = "web"
)

// Load reads configuration from .env, file and env. Env var overrides use
// prefix CARDCHECK_.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CARDCHECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cardcheck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CARDCHECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Mode = strings.ToLower(c.UI.Mode)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.mode", ModeTUI)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("web.addr", "127.0.0.1:8080")
	v.SetDefault("web.read_timeout", 5*time.Second)
	v.SetDefault("web.write_timeout", 10*time.Second)
	v.SetDefault("web.shutdown_timeout", 5*time.Second)
	v.SetDefault("web.max_body_bytes", 4096)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// Validate rejects values no component understands.
func (c Config) Validate() error {
	switch strings.ToLower(c.UI.Mode) {
	case ModeTUI, ModeWeb:
	default:
		return fmt.Errorf("ui.mode %q: want %q or %q", c.UI.Mode, ModeTUI, ModeWeb)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: want text or json", c.Log.Format)
	}
	if c.Web.MaxBodyBytes <= 0 {
		return fmt.Errorf("web.max_body_bytes must be positive, got %d", c.Web.MaxBodyBytes)
	}
	return checkLoopback(c.Web.Addr)
}

// checkLoopback rejects listen addresses reachable from other hosts. The
// page posts card fields in plain HTTP.
func checkLoopback(addr string) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("web.addr %q: %w", addr, err)
	}
	if strings.EqualFold(host, "localhost") {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return nil
	}
	return fmt.Errorf("web.addr %q: host must be loopback (localhost, 127.0.0.1 or ::1)", addr)
}

// Dump writes cfg as TOML.
func Dump(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
