package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config is everything the server needs to build rooms and engines.
type Config struct {
	Addr          string  `toml:"addr"`
	TickMs        int     `toml:"tick_ms"`
	FieldWidth    float64 `toml:"field_width"`
	FieldHeight   float64 `toml:"field_height"`
	PaddleWidth   float64 `toml:"paddle_width"`
	PaddleHeight  float64 `toml:"paddle_height"`
	PaddleMargin  float64 `toml:"paddle_margin"`
	BallSize      float64 `toml:"ball_size"`
	BallSpeed     float64 `toml:"ball_speed"`
	SendQueueSize int     `toml:"send_queue_size"`
	MaxPlayers    int     `toml:"max_players"`
}

func Default() Config {
	return Config{
		Addr:          ":8080",
		TickMs:        32,
		FieldWidth:    800,
		FieldHeight:   600,
		PaddleWidth:   100,
		PaddleHeight:  12,
		PaddleMargin:  30,
		BallSize:      10,
		BallSpeed:     8,
		SendQueueSize: 100,
		MaxPlayers:    4,
	}
}

// TickRate is the engine tick interval
func (c Config) TickRate() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// Load builds a Config from defaults, the optional TOML file at path, a .env
// file in the working directory and BREAKOUT_* environment variables, in
// that order of precedence from lowest to highest.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		log.Printf("Loaded config file %s", path)
	}

	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return cfg, errors.Wrap(err, "load .env")
		}
	} else {
		log.Println("Successfully loaded environment variables")
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("BREAKOUT_ADDR"); v != "" {
		cfg.Addr = v
	}

	ints := map[string]*int{
		"BREAKOUT_TICK_MS":     &cfg.TickMs,
		"BREAKOUT_MAX_PLAYERS": &cfg.MaxPlayers,
	}
	for name, dst := range ints {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", name)
		}
		*dst = n
	}

	floats := map[string]*float64{
		"BREAKOUT_FIELD_WIDTH":  &cfg.FieldWidth,
		"BREAKOUT_FIELD_HEIGHT": &cfg.FieldHeight,
		"BREAKOUT_BALL_SPEED":   &cfg.BallSpeed,
	}
	for name, dst := range floats {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "parse %s", name)
		}
		*dst = f
	}

	return nil
}

func (c Config) Validate() error {
	switch {
	case c.TickMs <= 0:
		return errors.Errorf("tick_ms must be positive, got %d", c.TickMs)
	case c.FieldWidth <= 0 || c.FieldHeight <= 0:
		return errors.Errorf("field size must be positive, got %gx%g", c.FieldWidth, c.FieldHeight)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return errors.Errorf("paddle size must be positive, got %gx%g", c.PaddleWidth, c.PaddleHeight)
	case c.PaddleWidth > c.FieldWidth:
		return errors.Errorf("paddle width %g exceeds field width %g", c.PaddleWidth, c.FieldWidth)
	case c.PaddleMargin+c.PaddleHeight+c.BallSize > c.FieldHeight:
		return errors.Errorf("paddle does not fit in a field %g high", c.FieldHeight)
	case c.BallSize <= 0 || c.BallSize > c.PaddleWidth:
		return errors.Errorf("ball size must be in (0, %g], got %g", c.PaddleWidth, c.BallSize)
	case c.BallSpeed <= 0:
		return errors.Errorf("ball speed must be positive, got %g", c.BallSpeed)
	case c.SendQueueSize <= 0:
		return errors.Errorf("send_queue_size must be positive, got %d", c.SendQueueSize)
	case c.MaxPlayers <= 0:
		return errors.Errorf("max_players must be positive, got %d", c.MaxPlayers)
	}
	return nil
}
