package minigame

import (
	"errors"
	"fmt"
)

// JuiceLevel selects a preset bundle of feedback intensity, from 0 (plain)
// to MaxJuice (everything on).
type JuiceLevel int

// MaxJuice is the highest juice level.
const MaxJuice JuiceLevel = 5

const juiceLevels = int(MaxJuice) + 1

// ErrJuiceLevelRange is returned for juice levels outside [0, MaxJuice].
var ErrJuiceLevelRange = errors.New("juice level out of range")

// Valid reports whether l lies in [0, MaxJuice].
func (l JuiceLevel) Valid() bool {
	return l >= 0 && l <= MaxJuice
}

// Clamp returns l limited to [0, MaxJuice].
func (l JuiceLevel) Clamp() JuiceLevel {
	if l < 0 {
		return 0
	}
	if l > MaxJuice {
		return MaxJuice
	}
	return l
}

// MustJuiceLevel converts n, panicking if it is out of range.
func MustJuiceLevel(n int) JuiceLevel {
	l := JuiceLevel(n)
	if !l.Valid() {
		panic(fmt.Sprintf("minigame: juice level %d: %v", n, ErrJuiceLevelRange))
	}
	return l
}

// ShakeSettings controls screen shake after a bird hit.
type ShakeSettings struct {
	// Translate is the peak offset in pixels.
	Translate float64
	// Rotate is the peak rotation in radians.
	Rotate float64
	// Duration is how long the shake takes to decay.
	Duration float64
}

// ParticleSettings sizes the particle bursts.
type ParticleSettings struct {
	Seed     int
	Bird     int
	Bounce   int
	Lose     int
	MaxSpeed float64
}

// DetailSettings toggles cosmetic drawing.
type DetailSettings struct {
	Background bool
	Clouds     bool
	BirdWings  bool
	BallShine  bool
	HitFlash   bool
}

// SoundSettings names the sound assets to play. Empty names are silent.
type SoundSettings struct {
	Intro  string
	Music  string
	Bounce string
	Seed   string
	Hit    string
	Win    string
	Lose   string
}

var shakeTable = [juiceLevels]ShakeSettings{
	{},
	{Translate: 1, Duration: 0.15},
	{Translate: 2, Duration: 0.2},
	{Translate: 4, Rotate: 0.01, Duration: 0.25},
	{Translate: 6, Rotate: 0.02, Duration: 0.3},
	{Translate: 9, Rotate: 0.04, Duration: 0.4},
}

var particleTable = [juiceLevels]ParticleSettings{
	{},
	{Seed: 4, Lose: 10, MaxSpeed: 40},
	{Seed: 8, Bird: 6, Lose: 20, MaxSpeed: 60},
	{Seed: 16, Bird: 12, Bounce: 3, Lose: 40, MaxSpeed: 80},
	{Seed: 32, Bird: 24, Bounce: 6, Lose: 80, MaxSpeed: 110},
	{Seed: 64, Bird: 48, Bounce: 12, Lose: 200, MaxSpeed: 150},
}

var detailTable = [juiceLevels]DetailSettings{
	{},
	{Background: true},
	{Background: true, BallShine: true},
	{Background: true, BallShine: true, BirdWings: true},
	{Background: true, BallShine: true, BirdWings: true, Clouds: true},
	{Background: true, BallShine: true, BirdWings: true, Clouds: true, HitFlash: true},
}

var soundTable = [juiceLevels]SoundSettings{
	{},
	{Win: "sfx/win", Lose: "sfx/lose"},
	{Win: "sfx/win", Lose: "sfx/lose", Seed: "sfx/seed"},
	{Win: "sfx/win", Lose: "sfx/lose", Seed: "sfx/seed", Hit: "sfx/hit", Bounce: "sfx/bounce"},
	{Win: "sfx/win", Lose: "sfx/lose", Seed: "sfx/seed", Hit: "sfx/hit", Bounce: "sfx/bounce",
		Intro: "sfx/intro"},
	{Win: "sfx/win", Lose: "sfx/lose", Seed: "sfx/seed", Hit: "sfx/hit", Bounce: "sfx/bounce",
		Intro: "sfx/intro", Music: "music/minigame"},
}

// ShakeFor returns the shake settings for l, clamped.
func ShakeFor(l JuiceLevel) ShakeSettings { return shakeTable[l.Clamp()] }

// ParticlesFor returns the particle settings for l, clamped.
func ParticlesFor(l JuiceLevel) ParticleSettings { return particleTable[l.Clamp()] }

// DetailFor returns the detail settings for l, clamped.
func DetailFor(l JuiceLevel) DetailSettings { return detailTable[l.Clamp()] }

// SoundsFor returns the sound settings for l, clamped.
func SoundsFor(l JuiceLevel) SoundSettings { return soundTable[l.Clamp()] }
