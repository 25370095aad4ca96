package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/pong4p.yaml
var defaultPong4PYAML []byte

// DefaultDodgerConfig returns the default Avoid the Dots configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		Title: "Avoid the Dots",
		Field: Field{Width: 1280, Height: 720},
		Player: DodgerPlayer{
			Size:          50,
			Acceleration:  2,
			Friction:      1,
			MaxHealth:     100,
			HitDamage:     10,
			RegenAmount:   1,
			RegenInterval: 1,
		},
		Obstacles: DodgerObstacles{
			Size:          10,
			Speed:         10,
			SpawnInterval: 0.1,
			DespawnMargin: 10,
		},
		Explosion: DodgerExplosion{
			Particles:    36,
			Power:        5,
			ParticleSize: 5,
			Decay:        0.1,
		},
	}
}

// DefaultFlappyConfig returns the default Flappy Box configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Title: "Flappy Box",
		Field: Field{Width: 640, Height: 360},
		Player: FlappyPlayer{
			Size:             50,
			LaunchVelocity:   10,
			Gravity:          1,
			TerminalVelocity: -10,
		},
		Pipes: FlappyPipes{
			Width:         50,
			Height:        300,
			Speed:         5,
			SpawnInterval: 1,
			Offset:        250,
			SpawnMargin:   100,
		},
		Lava: FlappyLava{
			Height: 10,
		},
		Score: ScoreStyle{
			Inset:    50,
			FontSize: 15,
		},
	}
}

// DefaultPongConfig returns the default 2-player Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Title:   "PONG",
		Field:   Field{Width: 1280, Height: 720},
		Players: 2,
		Paddles: PongPaddles{
			Thickness: 10,
			Length:    100,
			Margin:    50,
			Speed:     5,
		},
		Ball: PongBall{
			Size:  5,
			Speed: 5,
		},
		Score: ScoreStyle{
			Inset:    50,
			FontSize: 36,
		},
	}
}

// DefaultPong4PConfig returns the default 4-player Pong configuration.
func DefaultPong4PConfig() PongConfig {
	cfg := DefaultPongConfig()
	cfg.Field = Field{Width: 720, Height: 720}
	cfg.Players = 4
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dodger":
		return defaultDodgerYAML
	case "flappy":
		return defaultFlappyYAML
	case "pong":
		return defaultPongYAML
	case "pong4p":
		return defaultPong4PYAML
	default:
		return nil
	}
}
