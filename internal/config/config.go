// Package config provides YAML-based game configuration loading for the arcade.
// Every game gets one immutable tuning value, built once at program start and
// handed to the game constructor.
package config

import "fmt"

// Field is the logical resolution of a game in pixels.
type Field struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DodgerConfig contains all configuration for Avoid the Dots.
type DodgerConfig struct {
	Title     string          `yaml:"title"`
	Field     Field           `yaml:"field"`
	Player    DodgerPlayer    `yaml:"player"`
	Obstacles DodgerObstacles `yaml:"obstacles"`
	Explosion DodgerExplosion `yaml:"explosion"`
}

// DodgerPlayer defines the player box, its momentum and health.
type DodgerPlayer struct {
	Size          int     `yaml:"size"`
	Acceleration  int     `yaml:"acceleration"` // Added per held key per tick
	Friction      int     `yaml:"friction"`     // Removed toward zero every tick
	MaxHealth     int     `yaml:"max_health"`
	HitDamage     int     `yaml:"hit_damage"`
	RegenAmount   int     `yaml:"regen_amount"`
	RegenInterval float64 `yaml:"regen_interval"` // Seconds
}

// DodgerObstacles defines the falling/rising dots.
type DodgerObstacles struct {
	Size          int     `yaml:"size"`
	Speed         int     `yaml:"speed"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds
	DespawnMargin int     `yaml:"despawn_margin"` // Pixels past the far edge
}

// DodgerExplosion defines the death particle burst.
type DodgerExplosion struct {
	Particles    int     `yaml:"particles"`
	Power        float64 `yaml:"power"`
	ParticleSize int     `yaml:"particle_size"`
	Decay        float64 `yaml:"decay"` // Opacity lost per tick
}

// FlappyConfig contains all configuration for Flappy Box.
type FlappyConfig struct {
	Title  string       `yaml:"title"`
	Field  Field        `yaml:"field"`
	Player FlappyPlayer `yaml:"player"`
	Pipes  FlappyPipes  `yaml:"pipes"`
	Lava   FlappyLava   `yaml:"lava"`
	Score  ScoreStyle   `yaml:"score"`
}

// FlappyPlayer defines the box and its vertical physics.
// Velocities are positive upward.
type FlappyPlayer struct {
	Size             int `yaml:"size"`
	LaunchVelocity   int `yaml:"launch_velocity"`
	Gravity          int `yaml:"gravity"`
	TerminalVelocity int `yaml:"terminal_velocity"`
}

// FlappyPipes defines pipe pairs.
type FlappyPipes struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Speed         int     `yaml:"speed"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds
	Offset        int     `yaml:"offset"`         // Distance from gap center to each pipe's center
	SpawnMargin   int     `yaml:"spawn_margin"`   // Gap center stays this far from top and bottom
}

// FlappyLava defines the hazard strip along the bottom edge.
type FlappyLava struct {
	Height int `yaml:"height"`
}

// ScoreStyle places score text.
type ScoreStyle struct {
	Inset    int     `yaml:"inset"` // Distance of the score box center from its edge
	FontSize float64 `yaml:"font_size"`
}

// PongConfig contains all configuration for 2- and 4-player Pong.
type PongConfig struct {
	Title   string      `yaml:"title"`
	Field   Field       `yaml:"field"`
	Players int         `yaml:"players"` // 2 or 4
	Paddles PongPaddles `yaml:"paddles"`
	Ball    PongBall    `yaml:"ball"`
	Score   ScoreStyle  `yaml:"score"`
}

// PongPaddles defines paddle geometry and speed.
type PongPaddles struct {
	Thickness int `yaml:"thickness"`
	Length    int `yaml:"length"`
	Margin    int `yaml:"margin"` // Distance of the paddle center from its edge
	Speed     int `yaml:"speed"`
}

// PongBall defines the ball.
type PongBall struct {
	Size  int `yaml:"size"`
	Speed int `yaml:"speed"`
}

// Validate reports the first invalid setting.
func (f Field) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("field must be positive, got %dx%d", f.Width, f.Height)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c DodgerConfig) Validate() error {
	if err := c.Field.Validate(); err != nil {
		return err
	}
	switch {
	case c.Player.Size <= 0:
		return fmt.Errorf("player.size must be positive")
	case c.Player.Acceleration <= 0:
		return fmt.Errorf("player.acceleration must be positive")
	case c.Player.Friction < 0:
		return fmt.Errorf("player.friction must not be negative")
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("player.max_health must be positive")
	case c.Player.HitDamage < 0 || c.Player.RegenAmount < 0:
		return fmt.Errorf("player.hit_damage and player.regen_amount must not be negative")
	case c.Player.RegenInterval <= 0:
		return fmt.Errorf("player.regen_interval must be positive")
	case c.Obstacles.Size <= 0 || c.Obstacles.Speed <= 0:
		return fmt.Errorf("obstacles.size and obstacles.speed must be positive")
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("obstacles.spawn_interval must be positive")
	case c.Explosion.Particles < 0 || c.Explosion.ParticleSize <= 0:
		return fmt.Errorf("explosion.particles must not be negative and explosion.particle_size must be positive")
	case c.Explosion.Power <= 0:
		return fmt.Errorf("explosion.power must be positive")
	}
	return nil
}

// Validate reports the first invalid setting.
func (c FlappyConfig) Validate() error {
	if err := c.Field.Validate(); err != nil {
		return err
	}
	switch {
	case c.Player.Size <= 0:
		return fmt.Errorf("player.size must be positive")
	case c.Player.LaunchVelocity <= 0:
		return fmt.Errorf("player.launch_velocity must be positive")
	case c.Player.Gravity <= 0:
		return fmt.Errorf("player.gravity must be positive")
	case c.Player.TerminalVelocity >= 0:
		return fmt.Errorf("player.terminal_velocity must be negative")
	case c.Pipes.Width <= 0 || c.Pipes.Height <= 0 || c.Pipes.Speed <= 0:
		return fmt.Errorf("pipes.width, pipes.height and pipes.speed must be positive")
	case c.Pipes.SpawnInterval <= 0:
		return fmt.Errorf("pipes.spawn_interval must be positive")
	case c.Pipes.SpawnMargin < 0 || 2*c.Pipes.SpawnMargin >= c.Field.Height:
		return fmt.Errorf("pipes.spawn_margin must leave room for the gap")
	case c.Lava.Height < 0:
		return fmt.Errorf("lava.height must not be negative")
	}
	return nil
}

// Validate reports the first invalid setting.
func (c PongConfig) Validate() error {
	if err := c.Field.Validate(); err != nil {
		return err
	}
	switch {
	case c.Players != 2 && c.Players != 4:
		return fmt.Errorf("players must be 2 or 4, got %d", c.Players)
	case c.Paddles.Thickness <= 0 || c.Paddles.Length <= 0 || c.Paddles.Speed <= 0:
		return fmt.Errorf("paddles.thickness, paddles.length and paddles.speed must be positive")
	case c.Ball.Size <= 0 || c.Ball.Speed <= 0:
		return fmt.Errorf("ball.size and ball.speed must be positive")
	}
	return nil
}
