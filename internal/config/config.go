// Package config provides YAML-based gameplay configuration loading
// for the simulation.
package config

import (
	"errors"
	"fmt"
)

// PresentsConfig contains every gameplay constant of the simulation.
type PresentsConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Surfaces   SurfaceConfig    `yaml:"surfaces"`
	Damage     DamageConfig     `yaml:"damage"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Chimney    SizeConfig       `yaml:"chimney"`
	HealthBar  HealthBarConfig  `yaml:"health_bar"`
	FrameRate  int              `yaml:"frame_rate"`
}

// ScreenConfig is the size of the simulated world in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player motion parameters.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to vertical velocity every frame
	JumpForce float64 `yaml:"jump_force"` // Upward impulse magnitude
	MoveSpeed float64 `yaml:"move_speed"` // Horizontal speed while a direction is held
}

// PlayerConfig defines the player body and spawn point.
type PlayerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	StartX    float64 `yaml:"start_x"` // Spawn center
	StartY    float64 `yaml:"start_y"`
	MaxHealth int     `yaml:"max_health"`
}

// SurfaceConfig defines the per-frame effect of special platforms.
type SurfaceConfig struct {
	SnowNudge float64 `yaml:"snow_nudge"` // Upward displacement on snow
	IceNudge  float64 `yaml:"ice_nudge"`  // Horizontal slip on ice
}

// DamageConfig defines contact damage per hostile kind.
type DamageConfig struct {
	Parent int `yaml:"parent"`
	CEO    int `yaml:"ceo"` // Also used for projectiles
}

// EnemyConfig defines enemy bodies and behavior timing.
type EnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PatrolSpeed  float64 `yaml:"patrol_speed"`
	FireInterval int     `yaml:"fire_interval"` // Frames between CEO shots
}

// ProjectileConfig defines projectile bodies.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// SizeConfig is a plain width/height pair.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HealthBarConfig places the health bar overlay in world units.
type HealthBarConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable world.
func (c PresentsConfig) Validate() error {
	sizes := []struct {
		name string
		w, h float64
	}{
		{"screen", c.Screen.Width, c.Screen.Height},
		{"player", c.Player.Width, c.Player.Height},
		{"enemies", c.Enemies.Width, c.Enemies.Height},
		{"projectile", c.Projectile.Width, c.Projectile.Height},
		{"chimney", c.Chimney.Width, c.Chimney.Height},
	}
	for _, s := range sizes {
		if s.w <= 0 || s.h <= 0 {
			return fmt.Errorf("%w: %s size must be positive, got %gx%g", ErrInvalidConfig, s.name, s.w, s.h)
		}
	}

	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("%w: player.max_health must be positive", ErrInvalidConfig)
	}
	if c.Damage.Parent < 0 || c.Damage.CEO < 0 {
		return fmt.Errorf("%w: damage must not be negative", ErrInvalidConfig)
	}
	if c.Enemies.FireInterval <= 0 {
		return fmt.Errorf("%w: enemies.fire_interval must be positive", ErrInvalidConfig)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive", ErrInvalidConfig)
	}
	return nil
}
