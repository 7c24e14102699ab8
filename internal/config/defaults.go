package config

import (
	_ "embed"
)

//go:embed defaults/presents.yaml
var defaultPresentsYAML []byte

// DefaultPresentsConfig returns the built-in gameplay constants.
func DefaultPresentsConfig() PresentsConfig {
	return PresentsConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:   0.5,
			JumpForce: 10,
			MoveSpeed: 5,
		},
		Player: PlayerConfig{
			Width:     50,
			Height:    50,
			StartX:    200,
			StartY:    150,
			MaxHealth: 6,
		},
		Surfaces: SurfaceConfig{
			SnowNudge: 3,
			IceNudge:  5,
		},
		Damage: DamageConfig{
			Parent: 1,
			CEO:    2,
		},
		Enemies: EnemyConfig{
			Width:        50,
			Height:       50,
			PatrolSpeed:  2,
			FireInterval: 60, // one second at 60fps
		},
		Projectile: ProjectileConfig{
			Width:  10,
			Height: 5,
			Speed:  5,
		},
		Chimney: SizeConfig{
			Width:  50,
			Height: 100,
		},
		HealthBar: HealthBarConfig{
			X:      10,
			Y:      10,
			Width:  200,
			Height: 20,
		},
		FrameRate: 60,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPresentsYAML
}
