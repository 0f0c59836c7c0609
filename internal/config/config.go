package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	HomeDir         string `toml:"-"`
	ApplicationsDir string `toml:"applications_dir"`
	IconDir         string `toml:"icon_dir"`
	HistoryDB       string `toml:"history_db"`

	Dict      DictConfig      `toml:"dict"`
	JetBrains JetBrainsConfig `toml:"jetbrains"`
}

type DictConfig struct {
	Trigger        string   `toml:"trigger"`
	From           string   `toml:"from"`
	To             string   `toml:"to"`
	MinQueryLength int      `toml:"min_query_length"`
	UserAgent      string   `toml:"user_agent"`
	Timeout        Duration `toml:"timeout"`
	// Endpoint may contain "{pair}", replaced by the lowercase language pair (e.g. "deen").
	Endpoint string `toml:"endpoint"`
}

type JetBrainsConfig struct {
	Trigger      string `toml:"trigger"`
	XDGConfigDir string `toml:"xdg_config_dir"`
}

// Duration lets TOML values like "10s" decode into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 6.3; WOW64; rv:30.0) Gecko/20100101 Firefox/30.0"

// Default returns the built-in configuration rooted at home.
func Default(home string) *Config {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		xdg = filepath.Join(home, ".config")
	}
	return &Config{
		HomeDir:         home,
		ApplicationsDir: filepath.Join(home, ".local", "share", "applications"),
		IconDir:         filepath.Join(home, ".local", "share", "lpk", "icons"),
		HistoryDB:       filepath.Join(home, ".config", "lpk", "history.db"),
		Dict: DictConfig{
			Trigger:        "dict ",
			From:           "de",
			To:             "en",
			MinQueryLength: 4,
			UserAgent:      DefaultUserAgent,
			Timeout:        Duration{10 * time.Second},
			Endpoint:       "https://{pair}.dict.cc/",
		},
		JetBrains: JetBrainsConfig{
			Trigger:      "jb ",
			XDGConfigDir: filepath.Join(xdg, "JetBrains"),
		},
	}
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadFile(home, filepath.Join(home, ".config", "lpk", "config.toml"))
}

// LoadFile overlays cfgPath (when it exists) onto the defaults for home.
func LoadFile(home, cfgPath string) (*Config, error) {
	cfg := Default(home)

	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.ApplicationsDir = expandHome(cfg.ApplicationsDir, home)
	cfg.IconDir = expandHome(cfg.IconDir, home)
	cfg.HistoryDB = expandHome(cfg.HistoryDB, home)
	cfg.JetBrains.XDGConfigDir = expandHome(cfg.JetBrains.XDGConfigDir, home)

	if cfg.Dict.MinQueryLength < 0 {
		return nil, fmt.Errorf("config %s: dict.min_query_length must not be negative", cfgPath)
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
