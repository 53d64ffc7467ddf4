// farmball is the playable minigame: pick a juice level in the menu, then
// bounce the ball with the arrow keys to collect every seed before the birds
// take your lives.
//
//	go run ./demos/farmball -juice 5 -assets ./assets -volume 0.5 -verbose
//
// An input script (see ph.LoadScript) can drive the session; the window
// closes once the script finishes.
package main

import (
	"flag"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/phanxgames/ph"
	"github.com/phanxgames/ph/game"
	"github.com/phanxgames/ph/minigame"
)

const (
	sampleRate  = 48000
	windowScale = 3
)

func main() {
	configPath := flag.String("config", "", "minigame YAML config (defaults when empty)")
	assetsDir := flag.String("assets", "", "directory of .png/.wav/.ogg assets")
	juice := flag.Int("juice", -1, "initial juice level 0-5 (config value when negative)")
	scriptPath := flag.String("script", "", "JSON input script to replay")
	seed := flag.Uint64("seed", 0, "random seed (time based when zero)")
	volume := flag.Float64("volume", 1, "master volume 0-1")
	verbose := flag.Bool("verbose", false, "print log output")
	debug := flag.Bool("debug", false, "FPS overlay and layer tracing")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg := minigame.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = minigame.LoadConfig(*configPath); err != nil {
			fatal(err)
		}
	}
	if *juice >= 0 {
		cfg.Juice = minigame.JuiceLevel(*juice).Clamp()
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	store := ph.NewStore()
	if *assetsDir != "" {
		var err error
		if store, err = ph.LoadStore(os.DirFS(*assetsDir), sampleRate); err != nil {
			fatal(err)
		}
		log.Printf("farmball: loaded %d assets from %s", store.Len(), *assetsDir)
	}

	clock := &ph.TickClock{}
	mixer := ph.NewMixer(clock, ph.NewAudioVoiceFactory(audio.NewContext(sampleRate), store))
	mixer.SetDebugMode(*debug)
	mixer.SetMasterVolume(*volume)

	m := ph.NewLayerManager()
	m.SetDebugMode(*debug)
	if _, err := game.NewController(m, game.Options{
		Config: cfg,
		Clock:  clock,
		Sound:  mixer,
		Rand:   ph.NewRand(*seed),
		Images: store,
		Debug:  *debug,
	}); err != nil {
		fatal(err)
	}

	quit := false
	input := ph.NewInput(clock)
	input.Transform = func(x, y float64) (float64, float64) {
		return math.Max(0, math.Min(cfg.Width, x)), math.Max(0, math.Min(cfg.Height, y))
	}
	input.Fallback = func(ev ph.InputEvent) {
		if ev.Kind != ph.InputKeyDown {
			return
		}
		switch ev.Key {
		case ebiten.KeyF11:
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		case ebiten.KeyEscape:
			quit = true
		}
	}

	hooks := []func(now float64){mixer.Update}
	var script *ph.ScriptRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			fatal(err)
		}
		if script, err = ph.LoadScript(data); err != nil {
			fatal(err)
		}
		hooks = append(hooks, func(float64) { script.Step(m) })
	}

	err := ph.Run(m, ph.RunConfig{
		Title:        "farmball",
		Width:        int(cfg.Width),
		Height:       int(cfg.Height),
		Scale:        windowScale,
		Clock:        clock,
		Input:        input,
		BeforeUpdate: hooks,
		ShouldQuit: func() bool {
			return quit || (script != nil && script.Done())
		},
	})
	mixer.StopAll()
	if err != nil {
		fatal(err)
	}
}

// fatal reports err even when logging is silenced.
func fatal(err error) {
	log.SetOutput(os.Stderr)
	log.Fatal(err)
}
