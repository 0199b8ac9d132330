package arbor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional YAML configuration for a scene.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Input  InputConfig  `yaml:"input"`
	Scroll ScrollConfig `yaml:"scroll"`
}

// InputConfig contains pointer and wheel settings.
type InputConfig struct {
	DragDeadZone int `yaml:"drag_dead_zone"`
	WheelStep    int `yaml:"wheel_step"`
}

// ScrollConfig contains the defaults used by Scene.AnimateScroll.
type ScrollConfig struct {
	Duration float32 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			DragDeadZone: defaultDragDeadZone,
			WheelStep:    defaultWheelStep,
		},
		Scroll: ScrollConfig{
			Duration: defaultScrollDuration,
			Ease:     "out-cubic",
		},
	}
}

// LoadConfig reads the YAML file at path. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Scroll.Ease = strings.TrimSpace(cfg.Scroll.Ease)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Input.DragDeadZone < 0 {
		return fmt.Errorf("input.drag_dead_zone must not be negative, got %d", c.Input.DragDeadZone)
	}
	if c.Input.WheelStep <= 0 {
		return fmt.Errorf("input.wheel_step must be positive, got %d", c.Input.WheelStep)
	}
	if c.Scroll.Duration < 0 {
		return fmt.Errorf("scroll.duration must not be negative, got %v", c.Scroll.Duration)
	}
	if _, err := EaseByName(c.Scroll.Ease); err != nil {
		return fmt.Errorf("scroll.ease: %w", err)
	}
	return nil
}

// ApplyConfig validates cfg and applies it to the scene.
func (s *Scene) ApplyConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	fn, _ := EaseByName(cfg.Scroll.Ease)
	s.SetDebugMode(cfg.Debug)
	s.SetDragDeadZone(cfg.Input.DragDeadZone)
	s.SetWheelStep(cfg.Input.WheelStep)
	s.SetScrollAnimation(cfg.Scroll.Duration, fn)
	return nil
}
