package gameconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for any out-of-range value.
var ErrInvalidConfig = errors.New("invalid config")

// LoadFile reads a YAML file over Default and validates the result. Keys
// missing from the file keep their default values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values the simulation divides by or bounds against.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size must be positive, got %vx%v", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	}
	if c.Player.Width > c.Canvas.Width {
		return fmt.Errorf("%w: player wider than canvas", ErrInvalidConfig)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, c.Loop.TickRate)
	}
	if c.Collectible.FadeStep <= 0 {
		return fmt.Errorf("%w: collectible fade step must be positive", ErrInvalidConfig)
	}
	switch c.Recovery.Policy {
	case RecoveryRespawn, RecoverySnapToGround:
	default:
		return fmt.Errorf("%w: unknown recovery policy %q", ErrInvalidConfig, c.Recovery.Policy)
	}
	return nil
}

// ParsePolicy maps a flag value onto a RecoveryPolicy.
func ParsePolicy(s string) (RecoveryPolicy, error) {
	switch p := RecoveryPolicy(s); p {
	case RecoveryRespawn, RecoverySnapToGround:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown recovery policy %q", ErrInvalidConfig, s)
}
