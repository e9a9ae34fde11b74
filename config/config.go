// Package config resolves runtime settings: built-in defaults, an optional YAML file,
// then MULTIPONG_* environment overrides
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/multi-pong/constant"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "MULTIPONG_"

// Config holds game configuration
type Config struct {
	// Window
	Title   string `yaml:"title"    env:"TITLE"`
	WindowX int    `yaml:"window_x" env:"WINDOW_X"`
	WindowY int    `yaml:"window_y" env:"WINDOW_Y"`
	Width   int    `yaml:"width"    env:"WIDTH"`
	Height  int    `yaml:"height"   env:"HEIGHT"`

	// Arena
	WallThickness int     `yaml:"wall_thickness" env:"WALL_THICKNESS"`
	PaddleHeight  float64 `yaml:"paddle_height"  env:"PADDLE_HEIGHT"`
	PaddleOffset  float64 `yaml:"paddle_offset"  env:"PADDLE_OFFSET"`
	PaddleSpeed   float64 `yaml:"paddle_speed"   env:"PADDLE_SPEED"`

	// Balls
	BallCount int     `yaml:"ball_count" env:"BALL_COUNT"`
	BallSpeed float64 `yaml:"ball_speed" env:"BALL_SPEED"`

	// Timing
	FPSCap       int     `yaml:"fps_cap"        env:"FPS_CAP"`
	MaxDeltaTime float64 `yaml:"max_delta_time" env:"MAX_DELTA_TIME"`

	// Terminal key latching
	KeyHold   time.Duration `yaml:"key_hold"   env:"KEY_HOLD"`
	KeyRepeat time.Duration `yaml:"key_repeat" env:"KEY_REPEAT"`
}

// Default returns the classic 1024x768, three-ball setup
func Default() Config {
	return Config{
		Title:         constant.WindowTitle,
		WindowX:       constant.WindowX,
		WindowY:       constant.WindowY,
		Width:         constant.WindowWidth,
		Height:        constant.WindowHeight,
		WallThickness: constant.WallThickness,
		PaddleHeight:  constant.PaddleHeight,
		PaddleOffset:  constant.PaddleOffset,
		PaddleSpeed:   constant.PaddleSpeed,
		BallCount:     constant.InitialBallCount,
		BallSpeed:     constant.BallSpeed,
		FPSCap:        constant.FPSCap,
		MaxDeltaTime:  constant.MaxDeltaTime,
		KeyHold:       constant.KeyHoldWindow,
		KeyRepeat:     constant.KeyRepeatGrace,
	}
}

// Load resolves defaults, then the YAML file at path (skipped when empty), then environment
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv overlays MULTIPONG_* variables onto cfg; unset variables leave fields untouched
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func decodeFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// Empty file keeps defaults
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Width, c.Height)
	case c.WallThickness <= 0:
		return fmt.Errorf("config: wall thickness must be positive, got %d", c.WallThickness)
	case c.PaddleHeight <= 0:
		return fmt.Errorf("config: paddle height must be positive, got %g", c.PaddleHeight)
	case c.PaddleHeight+2*float64(c.WallThickness) > float64(c.Height):
		return fmt.Errorf("config: paddle height %g plus walls does not fit window height %d", c.PaddleHeight, c.Height)
	case c.PaddleSpeed < 0:
		return fmt.Errorf("config: paddle speed must not be negative, got %g", c.PaddleSpeed)
	case c.BallCount <= 0:
		return fmt.Errorf("config: ball count must be positive, got %d", c.BallCount)
	case c.FPSCap <= 0 || c.FPSCap > 1000:
		return fmt.Errorf("config: fps cap must be in [1, 1000], got %d", c.FPSCap)
	case c.MaxDeltaTime <= 0:
		return fmt.Errorf("config: max delta time must be positive, got %g", c.MaxDeltaTime)
	case c.KeyHold < 0 || c.KeyRepeat < 0:
		return fmt.Errorf("config: key latch durations must not be negative")
	}
	return nil
}

// FrameInterval is the minimum milliseconds per frame, integer division as the ticks counter is in ms
func (c Config) FrameInterval() uint32 {
	return uint32(1000 / c.FPSCap)
}

// PaddleMinY is the lowest legal paddle center
func (c Config) PaddleMinY() float64 {
	return c.PaddleHeight/2 + float64(c.WallThickness)
}

// PaddleMaxY is the highest legal paddle center
func (c Config) PaddleMaxY() float64 {
	return float64(c.Height) - c.PaddleHeight/2 - float64(c.WallThickness)
}
