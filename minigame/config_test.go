package minigame

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestIntroTime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BPM = 120
	cfg.IntroBeats = 8
	assertNear(t, "intro", cfg.IntroTime(), 4)
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("numSeeds: 4\nbounceVel: 300\njuice: 5\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.NumSeeds != 4 || cfg.BounceVel != 300 || cfg.Juice != 5 {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	if cfg.Width != DefaultConfig().Width {
		t.Errorf("width = %v, want default", cfg.Width)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"seeds do not fit", "numSeeds: 20\nseedSpace: 40\n", ErrSeedsDoNotFit},
		{"juice too high", "juice: 6\n", ErrJuiceLevelRange},
		{"juice negative", "juice: -1\n", ErrJuiceLevelRange},
		{"no lives", "lives: 0\n", ErrInvalidConfig},
		{"negative gravity", "gravity: -1\n", ErrInvalidConfig},
		{"zero bpm", "bpm: 0\n", ErrInvalidConfig},
		{"collision radius too big", "birdCollisionRadius: 20\n", ErrInvalidConfig},
		{"seed band inverted", "seedMinY: 0.8\nseedMaxY: 0.2\n", ErrInvalidConfig},
		{"margin eats width", "ballMargin: 200\n", ErrInvalidConfig},
		{"negative music fade", "musicFadeOut: -1\n", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseConfigMalformed(t *testing.T) {
	if _, err := ParseConfig([]byte("width: [1, 2")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minigame.yaml")
	if err := os.WriteFile(path, []byte("lives: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Lives != 5 {
		t.Errorf("lives = %d, want 5", cfg.Lives)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}
}

func TestJuiceClamp(t *testing.T) {
	tests := []struct {
		in, want JuiceLevel
	}{
		{-3, 0},
		{0, 0},
		{3, 3},
		{5, 5},
		{9, 5},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(); got != tt.want {
			t.Errorf("JuiceLevel(%d).Clamp() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMustJuiceLevelPanics(t *testing.T) {
	if got := MustJuiceLevel(2); got != 2 {
		t.Errorf("MustJuiceLevel(2) = %d", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for level 6")
		}
	}()
	MustJuiceLevel(6)
}

func TestJuiceTablesScale(t *testing.T) {
	if SoundsFor(0) != (SoundSettings{}) || ParticlesFor(0) != (ParticleSettings{}) {
		t.Error("level 0 should be plain")
	}
	if SoundsFor(4).Music != "" || SoundsFor(MaxJuice).Music == "" {
		t.Error("music should only play at the top level")
	}
	for l := JuiceLevel(1); l <= MaxJuice; l++ {
		if ParticlesFor(l).Seed < ParticlesFor(l-1).Seed {
			t.Errorf("seed particles shrink at level %d", l)
		}
		if ShakeFor(l).Translate < ShakeFor(l-1).Translate {
			t.Errorf("shake shrinks at level %d", l)
		}
	}
	if ShakeFor(99) != ShakeFor(MaxJuice) || DetailFor(-1) != DetailFor(0) {
		t.Error("out of range lookups should clamp")
	}
}

func TestPlaceSeedsSpacing(t *testing.T) {
	cfg := DefaultConfig()
	h := newHarness(t, nil)
	for round := 0; round < 20; round++ {
		seeds := placeSeeds(cfg, h.g.rng)
		if len(seeds) != cfg.NumSeeds {
			t.Fatalf("seeds = %d, want %d", len(seeds), cfg.NumSeeds)
		}
		for i, s := range seeds {
			if s.X < cfg.BallMargin || s.X > cfg.Width-cfg.BallMargin {
				t.Errorf("seed %d x = %v outside margins", i, s.X)
			}
			if s.Y < cfg.Height*cfg.SeedMinY || s.Y > cfg.Height*cfg.SeedMaxY {
				t.Errorf("seed %d y = %v outside band", i, s.Y)
			}
		}
	}
}

func TestPlaceSeedsTerminatesWhenCrowded(t *testing.T) {
	cfg := DefaultConfig()
	// Bypasses Validate: 50 seeds 28 apart cannot fit in 272 pixels.
	cfg.NumSeeds = 50
	h := newHarness(t, nil)
	seeds := placeSeeds(cfg, h.g.rng)
	if len(seeds) != 50 {
		t.Errorf("seeds = %d, want 50", len(seeds))
	}
}
