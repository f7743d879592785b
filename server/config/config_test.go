package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.TickRate() != 32*time.Millisecond {
		t.Fatalf("TickRate = %v, want 32ms", cfg.TickRate())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.toml")
	data := []byte(`
addr = ":9090"
field_width = 640
paddle_width = 80
ball_speed = 6.5
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("BREAKOUT_BALL_SPEED", "9")
	t.Setenv("BREAKOUT_MAX_PLAYERS", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.FieldWidth != 640 || cfg.PaddleWidth != 80 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.BallSpeed != 9 || cfg.MaxPlayers != 2 {
		t.Fatalf("env values not applied: %+v", cfg)
	}
	if cfg.FieldHeight != Default().FieldHeight {
		t.Fatalf("unset value lost its default: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("BREAKOUT_TICK_MS", "fast")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for non-numeric tick")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero tick":       func(c *Config) { c.TickMs = 0 },
		"paddle too wide": func(c *Config) { c.PaddleWidth = c.FieldWidth + 1 },
		"ball wider":      func(c *Config) { c.BallSize = c.PaddleWidth + 1 },
		"no speed":        func(c *Config) { c.BallSpeed = 0 },
		"short field":     func(c *Config) { c.FieldHeight = 20 },
		"no queue":        func(c *Config) { c.SendQueueSize = 0 },
		"no players":      func(c *Config) { c.MaxPlayers = 0 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}
