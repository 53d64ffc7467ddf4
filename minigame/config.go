package minigame

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid minigame config")
	// ErrSeedsDoNotFit is returned when NumSeeds seeds cannot be spaced
	// SeedSpace apart inside the usable width.
	ErrSeedsDoNotFit = errors.New("seeds do not fit playfield width")
)

// Config holds every tunable of the minigame. Distances are pixels, times
// seconds, velocities pixels per second.
//
// Config file location: data/minigame.yaml (optional; missing fields keep
// their defaults).
type Config struct {
	// Width and Height are the playfield size.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// WallThickness is the width of each side wall and the floor.
	WallThickness float64 `yaml:"wallThickness"`

	BallRadius float64 `yaml:"ballRadius"`
	// BallMargin keeps seeds this far from the side edges.
	BallMargin float64 `yaml:"ballMargin"`
	BallStartX float64 `yaml:"ballStartX"`
	BallStartY float64 `yaml:"ballStartY"`

	Gravity  float64 `yaml:"gravity"`
	XAccel   float64 `yaml:"xAccel"`
	Friction float64 `yaml:"friction"`
	MaxXVel  float64 `yaml:"maxXVel"`
	// BounceVel is the upward speed the floor sets on contact.
	BounceVel float64 `yaml:"bounceVel"`

	NumSeeds   int     `yaml:"numSeeds"`
	SeedSpace  float64 `yaml:"seedSpace"`
	SeedRadius float64 `yaml:"seedRadius"`
	// SeedMinY and SeedMaxY bound seed heights as fractions of Height.
	SeedMinY float64 `yaml:"seedMinY"`
	SeedMaxY float64 `yaml:"seedMaxY"`

	// BirdArrivalRate is the mean number of birds spawned per second.
	BirdArrivalRate float64 `yaml:"birdArrivalRate"`
	BirdSpeed       float64 `yaml:"birdSpeed"`
	BirdDrift       float64 `yaml:"birdDrift"`
	BirdRadius      float64 `yaml:"birdRadius"`
	// BirdCollisionRadius is smaller than BirdRadius to forgive near misses.
	BirdCollisionRadius float64 `yaml:"birdCollisionRadius"`

	Lives int `yaml:"lives"`

	BPM        float64 `yaml:"bpm"`
	IntroBeats float64 `yaml:"introBeats"`
	RestTime   float64 `yaml:"restTime"`
	// MusicFadeOut is how long the music fades when a round ends, on sound
	// players that can fade. Zero cuts it.
	MusicFadeOut float64 `yaml:"musicFadeOut"`
	// MaxStep caps the integration step.
	MaxStep float64 `yaml:"maxStep"`

	ParticleCapacity int     `yaml:"particleCapacity"`
	ParticleGravity  float64 `yaml:"particleGravity"`
	ParticleMargin   float64 `yaml:"particleMargin"`
	ParticleSize     float64 `yaml:"particleSize"`

	Juice JuiceLevel `yaml:"juice"`
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		Width:         320,
		Height:        240,
		WallThickness: 8,

		BallRadius: 6,
		BallMargin: 24,
		BallStartX: 160,
		BallStartY: 60,

		Gravity:   500,
		XAccel:    900,
		Friction:  250,
		MaxXVel:   180,
		BounceVel: 380,

		NumSeeds:   8,
		SeedSpace:  28,
		SeedRadius: 4,
		SeedMinY:   0.2,
		SeedMaxY:   0.6,

		BirdArrivalRate:     0.5,
		BirdSpeed:           50,
		BirdDrift:           10,
		BirdRadius:          8,
		BirdCollisionRadius: 5,

		Lives: 3,

		BPM:        120,
		IntroBeats: 8,
		RestTime:   2.0,
		MaxStep:    1.0 / 30,

		MusicFadeOut: 0.75,

		ParticleCapacity: 2000,
		ParticleGravity:  300,
		ParticleMargin:   20,
		ParticleSize:     2,

		Juice: 3,
	}
}

// IntroTime is the length of the intro in seconds.
func (c Config) IntroTime() float64 {
	return c.IntroBeats / c.BPM * 60
}

// ParseConfig parses YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("minigame: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("minigame: failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first problem that would make the simulation
// misbehave.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"ballRadius", c.BallRadius},
		{"bounceVel", c.BounceVel},
		{"bpm", c.BPM},
		{"maxStep", c.MaxStep},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("minigame: %s must be positive, got %v: %w", p.name, p.v, ErrInvalidConfig)
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"wallThickness", c.WallThickness},
		{"ballMargin", c.BallMargin},
		{"gravity", c.Gravity},
		{"xAccel", c.XAccel},
		{"friction", c.Friction},
		{"maxXVel", c.MaxXVel},
		{"seedSpace", c.SeedSpace},
		{"seedRadius", c.SeedRadius},
		{"birdArrivalRate", c.BirdArrivalRate},
		{"birdSpeed", c.BirdSpeed},
		{"birdDrift", c.BirdDrift},
		{"birdCollisionRadius", c.BirdCollisionRadius},
		{"introBeats", c.IntroBeats},
		{"restTime", c.RestTime},
		{"musicFadeOut", c.MusicFadeOut},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			return fmt.Errorf("minigame: %s must not be negative, got %v: %w", p.name, p.v, ErrInvalidConfig)
		}
	}
	if c.NumSeeds < 1 {
		return fmt.Errorf("minigame: numSeeds must be at least 1, got %d: %w", c.NumSeeds, ErrInvalidConfig)
	}
	if c.Lives < 1 {
		return fmt.Errorf("minigame: lives must be at least 1, got %d: %w", c.Lives, ErrInvalidConfig)
	}
	if c.BirdCollisionRadius > c.BirdRadius {
		return fmt.Errorf("minigame: birdCollisionRadius %v exceeds birdRadius %v: %w",
			c.BirdCollisionRadius, c.BirdRadius, ErrInvalidConfig)
	}
	if c.SeedMinY < 0 || c.SeedMaxY > 1 || c.SeedMinY > c.SeedMaxY {
		return fmt.Errorf("minigame: seed height band [%v, %v] must lie within [0, 1]: %w",
			c.SeedMinY, c.SeedMaxY, ErrInvalidConfig)
	}
	if !c.Juice.Valid() {
		return fmt.Errorf("minigame: juice %d: %w", c.Juice, ErrJuiceLevelRange)
	}
	usable := c.Width - 2*c.BallMargin
	if usable <= 0 {
		return fmt.Errorf("minigame: ballMargin %v leaves no usable width: %w", c.BallMargin, ErrInvalidConfig)
	}
	if float64(c.NumSeeds)*c.SeedSpace > usable {
		return fmt.Errorf("minigame: %d seeds spaced %v need %v, usable width is %v: %w",
			c.NumSeeds, c.SeedSpace, float64(c.NumSeeds)*c.SeedSpace, usable, ErrSeedsDoNotFit)
	}
	return nil
}
